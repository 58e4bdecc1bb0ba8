package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/doitintl/hello/agent-data-api/common"
	"github.com/doitintl/hello/agent-data-api/framework/connection"
	"github.com/doitintl/hello/agent-data-api/logger"
	sales "github.com/doitintl/hello/agent-data-api/sales/domain"
	"github.com/doitintl/hello/agent-data-api/tabular"
	"github.com/doitintl/hello/agent-data-api/tabular/dal"
	"github.com/doitintl/hello/agent-data-api/tabular/dal/iface"
)

const (
	defaultProductsPath = "att_wifi_products.csv"
	defaultSalesPath    = "AgenteSeller/Ventas.csv"

	saleAdded = "Venta agregada y commit realizado con éxito ✅"
)

type SalesService struct {
	loggerProvider logger.Provider
	products       iface.Loader
	ledger         iface.Loader
	appender       iface.Appender
	productsPath   string
	salesPath      string
}

// NewSalesService fails when GitHub is not configured.
func NewSalesService(log logger.Provider, conn *connection.Connection) (*SalesService, error) {
	cfg := common.LoadGitHubConfig()
	if missing := cfg.MissingVars(); len(missing) > 0 {
		return nil, tabular.Configuration(missing...)
	}

	if conn.GitHub == nil {
		return nil, tabular.Configuration("GITHUB_TOKEN")
	}

	ledger := dal.NewMemoized(dal.NewGitHub(conn.GitHub, cfg.Repo, cfg.Branch, tabular.CSVOptions{Encodings: []tabular.Encoding{tabular.UTF8}}))

	return NewSalesServiceWith(
		log,
		dal.NewLocalFile(common.DataDir(), tabular.CSVOptions{}),
		ledger,
		common.GetEnv("PRODUCTS_PATH", defaultProductsPath),
		common.GetEnv("VENTAS_PATH", defaultSalesPath),
	), nil
}

func NewSalesServiceWith(log logger.Provider, products iface.Loader, ledger iface.Store, productsPath, salesPath string) *SalesService {
	return &SalesService{
		loggerProvider: log,
		products:       products,
		ledger:         ledger,
		appender:       dal.NewAppender(ledger),
		productsPath:   productsPath,
		salesPath:      salesPath,
	}
}

func (s *SalesService) ListProducts(ctx context.Context) (*tabular.Table, error) {
	t, err := s.products.Load(ctx, s.productsPath)
	if errors.Is(err, tabular.ErrNotFound) {
		return nil, tabular.RemoteAccess(nil, sales.ErrLocalFileMissing(s.productsPath).Error())
	}

	return t, err
}

// matchProducts keeps products whose id equals query or whose name contains it,
// both ignoring case.
func matchProducts(t *tabular.Table, query string) *tabular.Table {
	return t.Where(func(r tabular.Record) bool {
		if r[sales.ColumnProductID] != nil && strings.EqualFold(r.String(sales.ColumnProductID), query) {
			return true
		}

		return tabular.Match(r[sales.ColumnProductName], query, false)
	})
}

func (s *SalesService) SearchProducts(ctx context.Context, query string) (*tabular.Table, error) {
	t, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	found := matchProducts(t, query)
	if found.Empty() {
		return nil, tabular.NotFound(sales.ErrProductNotFound.Error())
	}

	return found, nil
}

func (s *SalesService) ListSales(ctx context.Context) (*tabular.Table, error) {
	return s.ledger.Load(ctx, s.salesPath)
}

// AddSale records the sale against the first matching catalog product and
// commits the ledger.
func (s *SalesService) AddSale(ctx context.Context, sale sales.Sale) (*AddSaleResponse, error) {
	l := s.loggerProvider(ctx)

	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	match := matchProducts(products, sale.Product).First()
	if match == nil {
		return nil, sales.ErrProductNotInCatalog
	}

	name := match.String(sales.ColumnProductName)

	_, res, err := s.appender.Append(ctx, s.salesPath, sales.LedgerColumns, sale.LedgerRecord(name), fmt.Sprintf("Agregada venta de %s", sale.FullName))
	if err != nil {
		return nil, err
	}

	l.Infof("sale of %s committed as %s", name, res.Revision)

	return &AddSaleResponse{
		Message: saleAdded,
		Sale:    sale,
	}, nil
}
