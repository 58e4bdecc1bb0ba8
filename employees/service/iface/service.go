//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	employees "github.com/doitintl/hello/agent-data-api/employees/domain"
	"github.com/doitintl/hello/agent-data-api/employees/service"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

type EmployeesIface interface {
	ListUsers(ctx context.Context) (*tabular.Table, error)
	GetUser(ctx context.Context, id string) (*tabular.Table, error)
	SearchUsers(ctx context.Context, req service.SearchRequest) (*tabular.Table, error)
	CreateUser(ctx context.Context, user employees.User) (*employees.User, error)
	UpdateField(ctx context.Context, id string, update employees.FieldUpdate) (*service.MessageResponse, error)
	ReplaceUser(ctx context.Context, id string, user employees.User) (*employees.User, error)
}
