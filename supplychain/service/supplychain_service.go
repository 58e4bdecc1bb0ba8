package service

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/doitintl/hello/agent-data-api/common"
	"github.com/doitintl/hello/agent-data-api/framework/connection"
	"github.com/doitintl/hello/agent-data-api/logger"
	supplychain "github.com/doitintl/hello/agent-data-api/supplychain/domain"
	"github.com/doitintl/hello/agent-data-api/tabular"
	"github.com/doitintl/hello/agent-data-api/tabular/dal"
	"github.com/doitintl/hello/agent-data-api/tabular/dal/iface"
)

const orderAdded = "Orden agregada y commit realizado con éxito ✅"

// Paths of the datasets in the repository.
type Paths struct {
	Inventory string
	Transit   string
	Orders    string
}

func pathsFromEnv() Paths {
	return Paths{
		Inventory: common.GetEnv("PATH_INVENTARIO", "SupplyChain/INVENTARIODB.csv"),
		Transit:   common.GetEnv("PATH_TRANSITO", "SupplyChain/Inventario_transit.csv"),
		Orders:    common.GetEnv("PATH_ORDENES", "SupplyChain/OrdenDeSurtido.csv"),
	}
}

type SupplyChainService struct {
	loggerProvider logger.Provider
	store          iface.Loader
	appender       iface.Appender
	paths          Paths
}

// NewSupplyChainService fails when GitHub is not configured.
func NewSupplyChainService(log logger.Provider, conn *connection.Connection) (*SupplyChainService, error) {
	cfg := common.LoadGitHubConfig()
	if missing := cfg.MissingVars(); len(missing) > 0 {
		return nil, tabular.Configuration(missing...)
	}

	if conn.GitHub == nil {
		return nil, tabular.Configuration("GITHUB_TOKEN")
	}

	repo := dal.NewGitHub(conn.GitHub, cfg.Repo, cfg.Branch, tabular.CSVOptions{Encodings: []tabular.Encoding{tabular.UTF8}})

	return NewSupplyChainServiceWith(log, dal.NewMemoized(repo), pathsFromEnv()), nil
}

func NewSupplyChainServiceWith(log logger.Provider, store iface.Store, paths Paths) *SupplyChainService {
	return &SupplyChainService{
		loggerProvider: log,
		store:          store,
		appender:       dal.NewAppender(store),
		paths:          paths,
	}
}

// byPart returns the rows of path whose part number is exactly partNumber.
func (s *SupplyChainService) byPart(ctx context.Context, path, partNumber string) (*tabular.Table, error) {
	t, err := s.store.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	if !t.HasColumn(supplychain.ColumnPartNumber) {
		return nil, tabular.InvalidColumn(supplychain.ColumnPartNumber, t.Columns)
	}

	return t.Where(func(r tabular.Record) bool {
		return tabular.Match(r[supplychain.ColumnPartNumber], partNumber, true)
	}), nil
}

func (s *SupplyChainService) Inventory(ctx context.Context, partNumber string) (*tabular.Table, error) {
	t, err := s.byPart(ctx, s.paths.Inventory, partNumber)
	if err != nil {
		return nil, err
	}

	if t.Empty() {
		return nil, tabular.NotFound(supplychain.ErrNotInInventory.Error())
	}

	return t, nil
}

func (s *SupplyChainService) Transit(ctx context.Context, partNumber string) (*tabular.Table, error) {
	t, err := s.byPart(ctx, s.paths.Transit, partNumber)
	if err != nil {
		return nil, err
	}

	if t.Empty() {
		return nil, tabular.NotFound(supplychain.ErrNotInTransit.Error())
	}

	return t, nil
}

func (s *SupplyChainService) ListOrders(ctx context.Context) (*tabular.Table, error) {
	return s.store.Load(ctx, s.paths.Orders)
}

func (s *SupplyChainService) AddOrder(ctx context.Context, order supplychain.Order) (*OrderResponse, error) {
	if err := s.appendOrder(ctx, order, fmt.Sprintf("Agregada orden %s", order.PartNumber)); err != nil {
		return nil, err
	}

	return &OrderResponse{
		Message: orderAdded,
		Order:   order,
	}, nil
}

// CreateAutomaticOrder orders the quantity in transit for a part present in
// both inventory and transit.
func (s *SupplyChainService) CreateAutomaticOrder(ctx context.Context, partNumber string) (*OrderResponse, error) {
	inventory, err := s.byPart(ctx, s.paths.Inventory, partNumber)
	if err != nil {
		return nil, err
	}

	transit, err := s.byPart(ctx, s.paths.Transit, partNumber)
	if err != nil {
		return nil, err
	}

	if inventory.Empty() || transit.Empty() {
		return nil, tabular.NotFound(supplychain.ErrNotInBoth.Error())
	}

	sent := make([]float64, 0, transit.Len())
	for _, r := range transit.Rows {
		sent = append(sent, r.Float(supplychain.ColumnQuantitySent))
	}

	order := supplychain.Order{
		PartNumber:   partNumber,
		Description:  inventory.First().String(supplychain.ColumnDescription),
		Quantity:     supplychain.Quantity(int64(floats.Sum(sent))),
		ShippingType: supplychain.AutomaticShipping,
	}

	if err := s.appendOrder(ctx, order, fmt.Sprintf("Orden automática creada para %s", partNumber)); err != nil {
		return nil, err
	}

	return &OrderResponse{
		Message: fmt.Sprintf("Orden automática creada y enviada al repo GitHub para %s", partNumber),
		Order:   order,
	}, nil
}

func (s *SupplyChainService) appendOrder(ctx context.Context, order supplychain.Order, message string) error {
	_, res, err := s.appender.Append(ctx, s.paths.Orders, supplychain.OrderColumns, order.Record(), message)
	if err != nil {
		return err
	}

	s.loggerProvider(ctx).Infof("order for %s committed as %s", order.PartNumber, res.Revision)

	return nil
}
