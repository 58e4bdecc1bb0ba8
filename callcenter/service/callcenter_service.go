package service

import (
	"context"

	callcenter "github.com/doitintl/hello/agent-data-api/callcenter/domain"
	"github.com/doitintl/hello/agent-data-api/common"
	"github.com/doitintl/hello/agent-data-api/framework/connection"
	"github.com/doitintl/hello/agent-data-api/logger"
	"github.com/doitintl/hello/agent-data-api/tabular"
	"github.com/doitintl/hello/agent-data-api/tabular/dal"
	"github.com/doitintl/hello/agent-data-api/tabular/dal/iface"
)

type CallCenterService struct {
	loggerProvider logger.Provider
	records        iface.Loader
	key            string
}

// NewCallCenterService reads the call records from the configured bucket,
// keeping the first successful load for the life of the process.
func NewCallCenterService(log logger.Provider, conn *connection.Connection) (*CallCenterService, error) {
	cfg := common.LoadObjectStorageConfig()
	if missing := cfg.MissingVars(); len(missing) > 0 {
		return nil, tabular.Configuration(missing...)
	}

	var objects iface.Loader

	switch {
	case cfg.Provider == common.ObjectStorageGCS && conn.GCS != nil:
		objects = dal.NewGCSObject(conn.GCS, cfg.Bucket)
	case cfg.Provider != common.ObjectStorageGCS && conn.S3 != nil:
		objects = dal.NewS3Object(conn.S3, cfg.Bucket)
	default:
		return nil, tabular.Configuration("OBJECT_STORAGE_PROVIDER")
	}

	return NewCallCenterServiceWith(log, dal.NewMemoized(objects), cfg.Key), nil
}

func NewCallCenterServiceWith(log logger.Provider, records iface.Loader, key string) *CallCenterService {
	return &CallCenterService{
		loggerProvider: log,
		records:        records,
		key:            key,
	}
}

// Warm loads the records ahead of the first request.
func (s *CallCenterService) Warm(ctx context.Context) error {
	_, err := s.load(ctx)
	return err
}

func (s *CallCenterService) load(ctx context.Context) (*tabular.Table, error) {
	t, err := s.records.Load(ctx, s.key)
	if err != nil {
		return nil, tabular.RemoteAccess(err, "CSV not loaded")
	}

	return t, nil
}

func (s *CallCenterService) All(ctx context.Context) (*tabular.Table, error) {
	return s.load(ctx)
}

// Search matches field by its exact name and value as a case-insensitive substring.
func (s *CallCenterService) Search(ctx context.Context, query callcenter.Query) (*SearchResponse, error) {
	t, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if !t.HasColumn(query.Field) {
		return nil, &callcenter.InvalidFieldError{Field: query.Field}
	}

	found, err := tabular.Filter(t, tabular.Query{
		Column:       query.Field,
		Value:        query.Value,
		StrictColumn: true,
	})
	if err != nil {
		return nil, err
	}

	return &SearchResponse{
		Count:   found.Len(),
		Results: found.Records(),
	}, nil
}

func (s *CallCenterService) ByUser(ctx context.Context, userID string) (*tabular.Table, error) {
	t, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	found := t.Where(func(r tabular.Record) bool {
		return tabular.Match(r[callcenter.ColumnUser], userID, true)
	})

	if found.Empty() {
		return nil, tabular.NotFound(callcenter.ErrUserNotFound.Error())
	}

	return found, nil
}
