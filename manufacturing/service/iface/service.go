//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	manufacturing "github.com/doitintl/hello/agent-data-api/manufacturing/domain"
	"github.com/doitintl/hello/agent-data-api/manufacturing/service"
)

type ManufacturingIface interface {
	Status() service.Status
	Guide() map[string]manufacturing.Guide
	QueryData(ctx context.Context, req service.DataRequest) (*service.DataResponse, error)
	GetPart(ctx context.Context, partNumber string) (*service.PartResponse, error)
	AddFiveWhys(ctx context.Context, analysis manufacturing.FiveWhys) (*service.FiveWhysResponse, error)
}
