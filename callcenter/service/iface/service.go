//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	callcenter "github.com/doitintl/hello/agent-data-api/callcenter/domain"
	"github.com/doitintl/hello/agent-data-api/callcenter/service"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

type CallCenterIface interface {
	Warm(ctx context.Context) error
	All(ctx context.Context) (*tabular.Table, error)
	Search(ctx context.Context, query callcenter.Query) (*service.SearchResponse, error)
	ByUser(ctx context.Context, userID string) (*tabular.Table, error)
}
