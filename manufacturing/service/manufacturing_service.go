package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/doitintl/hello/agent-data-api/common"
	"github.com/doitintl/hello/agent-data-api/framework/connection"
	manufacturing "github.com/doitintl/hello/agent-data-api/manufacturing/domain"
	"github.com/doitintl/hello/agent-data-api/logger"
	"github.com/doitintl/hello/agent-data-api/slice"
	"github.com/doitintl/hello/agent-data-api/tabular"
	"github.com/doitintl/hello/agent-data-api/tabular/dal"
	"github.com/doitintl/hello/agent-data-api/tabular/dal/iface"
)

const (
	statusRunning  = "Manufacturing AI API running"
	statusFiveWhys = "5Whys added successfully"

	defaultFiveWhysPath = "5whys.csv"
)

type ManufacturingService struct {
	loggerProvider logger.Provider
	catalog        *manufacturing.Catalog
	files          iface.Store
	appender       iface.Appender
	// repo is nil when GitHub is not configured.
	repo     iface.Store
	repoPath string
}

func NewManufacturingService(log logger.Provider, conn *connection.Connection) (*ManufacturingService, error) {
	catalog, err := manufacturing.LoadCatalog(common.GetEnv("MANUFACTURING_CATALOG", ""))
	if err != nil {
		return nil, err
	}

	files := dal.NewLocalFile(common.DataDir(), tabular.CSVOptions{Encodings: tabular.DefaultEncodings})

	var repo iface.Store

	cfg := common.LoadGitHubConfig()
	if len(cfg.MissingVars()) == 0 && conn.GitHub != nil {
		repo = dal.NewGitHub(conn.GitHub, cfg.Repo, cfg.Branch, tabular.CSVOptions{})
	}

	return NewManufacturingServiceWith(log, catalog, files, repo, common.GetEnv("CSV_5WHYS_PATH", defaultFiveWhysPath)), nil
}

// NewManufacturingServiceWith builds the service over the given stores. repo may be nil.
func NewManufacturingServiceWith(log logger.Provider, catalog *manufacturing.Catalog, files iface.Store, repo iface.Store, repoPath string) *ManufacturingService {
	return &ManufacturingService{
		loggerProvider: log,
		catalog:        catalog,
		files:          files,
		appender:       dal.NewAppender(files),
		repo:           repo,
		repoPath:       repoPath,
	}
}

func (s *ManufacturingService) Status() Status {
	return Status{
		Status:            statusRunning,
		DatasetsAvailable: s.catalog.Names(),
	}
}

func (s *ManufacturingService) Guide() map[string]manufacturing.Guide {
	return s.catalog.Guide()
}

func (s *ManufacturingService) load(ctx context.Context, name string) (*tabular.Table, error) {
	d, ok := s.catalog.Lookup(name)
	if !ok {
		return nil, manufacturing.ErrInvalidDataset
	}

	return s.files.Load(ctx, d.File)
}

func (s *ManufacturingService) QueryData(ctx context.Context, req DataRequest) (*DataResponse, error) {
	t, err := s.load(ctx, req.Dataset)
	if err != nil {
		return nil, err
	}

	if req.Column != "" && req.Value != "" {
		t, err = tabular.Filter(t, tabular.Query{
			Column: req.Column,
			Value:  req.Value,
			Exact:  req.Exact,
		})
		if err != nil {
			return nil, err
		}
	}

	return &DataResponse{
		Dataset: strings.ToLower(req.Dataset),
		Rows:    t.Len(),
		Columns: t.Columns,
		Data:    t.Records(),
	}, nil
}

// GetPart looks the part up in the first BOM column whose name mentions "part".
func (s *ManufacturingService) GetPart(ctx context.Context, partNumber string) (*PartResponse, error) {
	t, err := s.load(ctx, "bom")
	if err != nil {
		return nil, err
	}

	i := slice.FindSubFold(t.Columns, "part")
	if i < 0 {
		return nil, tabular.RemoteAccess(nil, manufacturing.ErrNoPartColumn(t.Columns).Error())
	}

	column := t.Columns[i]

	found := t.Where(func(r tabular.Record) bool {
		return r[column] != nil && strings.EqualFold(tabular.FormatValue(r[column]), partNumber)
	})

	if found.Empty() {
		return nil, tabular.NotFound(manufacturing.ErrPartNumberMissing(partNumber).Error())
	}

	return &PartResponse{
		PartNumber: partNumber,
		RowsFound:  found.Len(),
		Data:       found.Records(),
	}, nil
}

// AddFiveWhys saves the analysis locally and then commits the whole dataset to
// GitHub when configured. Commit failures are reported, not returned.
func (s *ManufacturingService) AddFiveWhys(ctx context.Context, analysis manufacturing.FiveWhys) (*FiveWhysResponse, error) {
	l := s.loggerProvider(ctx)

	d, ok := s.catalog.Lookup(manufacturing.FiveWhysDataset)
	if !ok {
		return nil, manufacturing.ErrInvalidDataset
	}

	t, _, err := s.appender.Append(ctx, d.File, manufacturing.FiveWhysColumns, analysis.Record(), "")
	if err != nil {
		return nil, err
	}

	res := &FiveWhysResponse{Status: statusFiveWhys}

	if s.repo == nil {
		res.CommitResult = manufacturing.GitHubNotConfigured
		return res, nil
	}

	commit, err := s.repo.Save(ctx, s.repoPath, t, fmt.Sprintf("Add 5Whys analysis %s", analysis.AnalysisID))
	if err != nil {
		l.Warningf("5whys %s saved locally, commit failed: %v", analysis.AnalysisID, err)
		res.CommitResult = fmt.Sprintf("GitHub error: %v", err)

		return res, nil
	}

	res.CommitResult = commit.Revision

	return res, nil
}
