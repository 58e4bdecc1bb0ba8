//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	sales "github.com/doitintl/hello/agent-data-api/sales/domain"
	"github.com/doitintl/hello/agent-data-api/sales/service"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

type SalesIface interface {
	ListProducts(ctx context.Context) (*tabular.Table, error)
	SearchProducts(ctx context.Context, query string) (*tabular.Table, error)
	ListSales(ctx context.Context) (*tabular.Table, error)
	AddSale(ctx context.Context, sale sales.Sale) (*service.AddSaleResponse, error)
}
