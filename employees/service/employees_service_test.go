package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	employees "github.com/doitintl/hello/agent-data-api/employees/domain"
	"github.com/doitintl/hello/agent-data-api/logger"
	"github.com/doitintl/hello/agent-data-api/tabular"
	"github.com/doitintl/hello/agent-data-api/tabular/dal/mocks"
)

// memorySheet keeps the worksheet rows in memory, keyed by the first column.
type memorySheet struct {
	mu    sync.Mutex
	table *tabular.Table
}

func (m *memorySheet) Load(context.Context, string) (*tabular.Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.table.Clone(), nil
}

func (m *memorySheet) AppendRecord(_ context.Context, _ string, record tabular.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.table = m.table.Append(m.table.Columns, record)

	return nil
}

func (m *memorySheet) UpdateCell(_ context.Context, _, key, column string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.table.HasColumn(column) {
		return tabular.NotFound("column %s not found", column)
	}

	r := m.table.Find(m.table.Columns[0], key)
	if r == nil {
		return tabular.NotFound("record %s not found", key)
	}

	r[column] = value

	return nil
}

func num(v int64) *int64 {
	return &v
}

func newSheet() *memorySheet {
	return &memorySheet{table: tabular.NewTable(
		employees.UserColumns,
		tabular.Record{"num": int64(1), "Name": "Ana", "Job": "Dev", "Address": "Calle 1", "RequestedTimeOff": int64(0)},
		tabular.Record{"num": int64(2), "Name": "Luis", "Job": "Ops", "Address": "Calle 2", "RequestedTimeOff": int64(4)},
	)}
}

func names(t *tabular.Table) []string {
	out := make([]string, 0)
	for _, r := range t.Rows {
		out = append(out, r.String("Name"))
	}

	return out
}

func TestEmployeesService_Search(t *testing.T) {
	s := NewEmployeesServiceWith(logger.FromContext, newSheet(), "Datos_Usuarios_IA")
	ctx := context.Background()

	got, err := s.SearchUsers(ctx, SearchRequest{Filters: map[string]string{"name": "an"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana"}, names(got))

	got, err = s.SearchUsers(ctx, SearchRequest{Filters: map[string]string{"Name": "an"}, Exact: true})
	require.NoError(t, err)
	assert.Equal(t, []string{}, names(got))

	got, err = s.SearchUsers(ctx, SearchRequest{Filters: map[string]string{"Address": "calle", "Job": "ops"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Luis"}, names(got))

	_, err = s.SearchUsers(ctx, SearchRequest{Filters: map[string]string{"Salary": "1"}})
	assert.ErrorIs(t, err, tabular.ErrInvalidColumn)
}

func TestEmployeesService_CreateThenList(t *testing.T) {
	s := NewEmployeesServiceWith(logger.FromContext, newSheet(), "Datos_Usuarios_IA")
	ctx := context.Background()

	_, err := s.CreateUser(ctx, employees.User{Num: num(3), Name: "Sam", Job: "QA", Address: "Calle 3", RequestedTimeOff: num(1)})
	require.NoError(t, err)

	all, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Luis", "Sam"}, names(all))
	assert.Equal(t, int64(3), all.Rows[2]["num"])

	_, err = s.CreateUser(ctx, employees.User{Num: num(2), Name: "Otro", Job: "QA", Address: "x", RequestedTimeOff: num(0)})
	assert.ErrorIs(t, err, tabular.ErrConflict)
}

func TestEmployeesService_GetUser(t *testing.T) {
	s := NewEmployeesServiceWith(logger.FromContext, newSheet(), "Datos_Usuarios_IA")

	got, err := s.GetUser(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"Luis"}, names(got))

	_, err = s.GetUser(context.Background(), "7")
	assert.ErrorIs(t, err, tabular.ErrNotFound)
}

func TestEmployeesService_UpdateField(t *testing.T) {
	s := NewEmployeesServiceWith(logger.FromContext, newSheet(), "Datos_Usuarios_IA")
	ctx := context.Background()

	res, err := s.UpdateField(ctx, "1", employees.FieldUpdate{ColumnName: "RequestedTimeOff", NewValue: "5"})
	require.NoError(t, err)
	assert.Equal(t, "Actualización exitosa: ID=1, Columna='RequestedTimeOff' actualizada a: 5", res.Message)

	_, err = s.UpdateField(ctx, "1", employees.FieldUpdate{ColumnName: "Salary", NewValue: "5"})
	assert.ErrorIs(t, err, tabular.ErrNotFound)
	assert.Equal(t, "No se pudo actualizar el registro 1. Verifique si el ID o el nombre de la columna son correctos.", err.Error())

	_, err = s.UpdateField(ctx, "8", employees.FieldUpdate{ColumnName: "Job", NewValue: "x"})
	assert.ErrorIs(t, err, tabular.ErrNotFound)
}

func TestEmployeesService_ReplaceUser(t *testing.T) {
	sheet := mocks.NewSheet(t)
	s := NewEmployeesServiceWith(logger.FromContext, sheet, "Datos_Usuarios_IA")

	user := employees.User{Num: num(2), Name: "Luis M", Job: "SRE", Address: "Calle 9", RequestedTimeOff: num(1)}

	sheet.On("UpdateCell", mock.Anything, "Datos_Usuarios_IA", "2", "Name", "Luis M").Return(nil).Once()
	sheet.On("UpdateCell", mock.Anything, "Datos_Usuarios_IA", "2", "Job", "SRE").Return(nil).Once()
	sheet.On("UpdateCell", mock.Anything, "Datos_Usuarios_IA", "2", "Address", "Calle 9").Return(nil).Once()
	sheet.On("UpdateCell", mock.Anything, "Datos_Usuarios_IA", "2", "RequestedTimeOff", int64(1)).Return(nil).Once()

	got, err := s.ReplaceUser(context.Background(), "2", user)
	require.NoError(t, err)
	assert.Equal(t, user, *got)

	_, err = s.ReplaceUser(context.Background(), "3", user)
	assert.ErrorIs(t, err, tabular.ErrValidation)
}

func TestEmployeesService_NotConnected(t *testing.T) {
	s := NewEmployeesServiceWith(logger.FromContext, nil, "Datos_Usuarios_IA")
	ctx := context.Background()

	_, err := s.ListUsers(ctx)
	assert.ErrorIs(t, err, tabular.ErrRemoteAccess)
	assert.Equal(t, "Error de conexión con Google Sheets. Revise credenciales.", err.Error())

	_, err = s.UpdateField(ctx, "1", employees.FieldUpdate{ColumnName: "Job"})
	assert.ErrorIs(t, err, tabular.ErrRemoteAccess)

	_, err = s.ReplaceUser(ctx, "1", employees.User{Num: num(1)})
	assert.ErrorIs(t, err, tabular.ErrRemoteAccess)
}
