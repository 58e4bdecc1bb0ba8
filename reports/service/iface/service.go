//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	reports "github.com/doitintl/hello/agent-data-api/reports/domain"
	"github.com/doitintl/hello/agent-data-api/reports/service"
)

type ReportsIface interface {
	SendActivityReports(ctx context.Context, payload reports.Payload) *service.SendReport
}
