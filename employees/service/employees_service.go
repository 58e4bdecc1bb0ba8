package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/doitintl/hello/agent-data-api/common"
	employees "github.com/doitintl/hello/agent-data-api/employees/domain"
	"github.com/doitintl/hello/agent-data-api/framework/connection"
	"github.com/doitintl/hello/agent-data-api/logger"
	"github.com/doitintl/hello/agent-data-api/tabular"
	"github.com/doitintl/hello/agent-data-api/tabular/dal"
	"github.com/doitintl/hello/agent-data-api/tabular/dal/iface"
)

type EmployeesService struct {
	loggerProvider logger.Provider
	// sheet is nil when the spreadsheet could not be reached at startup.
	sheet iface.Sheet
	name  string

	// writes serializes the check then write sequences of this process.
	writes sync.Mutex
}

// NewEmployeesService never fails; without Sheets credentials every data
// operation answers with a connection error.
func NewEmployeesService(log logger.Provider, conn *connection.Connection) *EmployeesService {
	cfg := common.LoadSheetsConfig()

	var sheet iface.Sheet
	if conn.Sheets != nil {
		sheet = dal.NewSheets(conn.Sheets, conn.Drive, cfg.SpreadsheetID)
	}

	return NewEmployeesServiceWith(log, sheet, cfg.SpreadsheetName)
}

func NewEmployeesServiceWith(log logger.Provider, sheet iface.Sheet, name string) *EmployeesService {
	return &EmployeesService{
		loggerProvider: log,
		sheet:          sheet,
		name:           name,
	}
}

func (s *EmployeesService) load(ctx context.Context) (*tabular.Table, error) {
	if s.sheet == nil {
		return nil, tabular.RemoteAccess(nil, employees.ErrNotConnected.Error())
	}

	return s.sheet.Load(ctx, s.name)
}

func (s *EmployeesService) ListUsers(ctx context.Context) (*tabular.Table, error) {
	return s.load(ctx)
}

func (s *EmployeesService) GetUser(ctx context.Context, id string) (*tabular.Table, error) {
	t, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	found := t.Where(func(r tabular.Record) bool {
		return tabular.Match(r[employees.ColumnNum], id, true)
	})

	if found.Empty() {
		return nil, tabular.NotFound(employees.ErrUserNotFound(id).Error())
	}

	return found, nil
}

// SearchUsers keeps the users matching every filter.
func (s *EmployeesService) SearchUsers(ctx context.Context, req SearchRequest) (*tabular.Table, error) {
	t, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	columns := make([]string, 0, len(req.Filters))
	for c := range req.Filters {
		columns = append(columns, c)
	}

	sort.Strings(columns)

	for _, c := range columns {
		t, err = tabular.Filter(t, tabular.Query{
			Column: c,
			Value:  req.Filters[c],
			Exact:  req.Exact,
		})
		if err != nil {
			return nil, err
		}
	}

	return t, nil
}

func (s *EmployeesService) CreateUser(ctx context.Context, user employees.User) (*employees.User, error) {
	s.writes.Lock()
	defer s.writes.Unlock()

	t, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if t.Find(employees.ColumnNum, user.Key()) != nil {
		return nil, tabular.Conflict(employees.ErrDuplicateNum(user.Key()).Error())
	}

	if err := s.sheet.AppendRecord(ctx, s.name, user.Record()); err != nil {
		return nil, err
	}

	s.loggerProvider(ctx).Infof("user %s created", user.Key())

	return &user, nil
}

// UpdateField overwrites a single cell of the user keyed by id.
func (s *EmployeesService) UpdateField(ctx context.Context, id string, update employees.FieldUpdate) (*MessageResponse, error) {
	l := s.loggerProvider(ctx)

	if s.sheet == nil {
		return nil, tabular.RemoteAccess(nil, employees.ErrNotConnected.Error())
	}

	if err := s.sheet.UpdateCell(ctx, s.name, id, update.ColumnName, update.NewValue); err != nil {
		if errors.Is(err, tabular.ErrNotFound) {
			l.Warningf("update of user %s failed: %v", id, err)
			return nil, tabular.NotFound(employees.ErrUpdateFailed(id).Error())
		}

		return nil, err
	}

	msg := fmt.Sprintf("Actualización exitosa: ID=%s, Columna='%s' actualizada a: %s", id, update.ColumnName, update.NewValue)
	l.Info(msg)

	return &MessageResponse{Message: msg}, nil
}

// ReplaceUser writes every column of user one cell at a time. A failure part
// way leaves the earlier cells written.
func (s *EmployeesService) ReplaceUser(ctx context.Context, id string, user employees.User) (*employees.User, error) {
	if user.Key() != id {
		return nil, tabular.Validation(employees.ErrKeyMismatch.Error())
	}

	if s.sheet == nil {
		return nil, tabular.RemoteAccess(nil, employees.ErrNotConnected.Error())
	}

	s.writes.Lock()
	defer s.writes.Unlock()

	record := user.Record()

	for _, c := range employees.UserColumns[1:] {
		if err := s.sheet.UpdateCell(ctx, s.name, id, c, record[c]); err != nil {
			if errors.Is(err, tabular.ErrNotFound) {
				return nil, tabular.NotFound(employees.ErrUpdateFailed(id).Error())
			}

			return nil, err
		}
	}

	return &user, nil
}
