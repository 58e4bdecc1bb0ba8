//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	mes "github.com/doitintl/hello/agent-data-api/mes/domain"
	"github.com/doitintl/hello/agent-data-api/mes/service"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

type MESIface interface {
	Index() service.Index
	ListOrders(ctx context.Context) ([]tabular.OrderedRecord, error)
	ActiveOrders(ctx context.Context) ([]tabular.OrderedRecord, error)
	CurrentProduction(ctx context.Context) ([]service.LineProduction, error)
	AnalyzeShift(ctx context.Context, req service.ShiftRequest) (*service.ShiftAnalysis, error)
	MaterialConsumption(ctx context.Context, orderID string) ([]tabular.OrderedRecord, error)
	MissingMaterials(ctx context.Context, req service.MaterialRequest) (*service.MissingMaterials, error)
	ListDowntime(ctx context.Context) ([]tabular.OrderedRecord, error)
	ListScrap(ctx context.Context) ([]tabular.OrderedRecord, error)
	ComputeOEE(ctx context.Context, line string) (*mes.OEE, error)
	AssignedStaff(ctx context.Context) ([]tabular.OrderedRecord, error)
}
