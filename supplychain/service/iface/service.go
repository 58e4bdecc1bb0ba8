//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	supplychain "github.com/doitintl/hello/agent-data-api/supplychain/domain"
	"github.com/doitintl/hello/agent-data-api/supplychain/service"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

type SupplyChainIface interface {
	Inventory(ctx context.Context, partNumber string) (*tabular.Table, error)
	Transit(ctx context.Context, partNumber string) (*tabular.Table, error)
	ListOrders(ctx context.Context) (*tabular.Table, error)
	AddOrder(ctx context.Context, order supplychain.Order) (*service.OrderResponse, error)
	CreateAutomaticOrder(ctx context.Context, partNumber string) (*service.OrderResponse, error)
}
