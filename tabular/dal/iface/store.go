package iface

import (
	"context"

	"github.com/doitintl/hello/agent-data-api/tabular"
)

//go:generate mockery --output=../mocks --all

// Loader reads a named dataset.
type Loader interface {
	Load(ctx context.Context, name string) (*tabular.Table, error)
}

// Store reads a named dataset and persists the whole table back.
type Store interface {
	Loader
	Save(ctx context.Context, name string, table *tabular.Table, message string) (*tabular.WriteResult, error)
}

// Sheet is a spreadsheet whose first worksheet holds a header row followed by
// records keyed by their first column.
type Sheet interface {
	Loader
	AppendRecord(ctx context.Context, name string, record tabular.Record) error
	UpdateCell(ctx context.Context, name, key, column string, value any) error
}

// Appender adds one record to a dataset and persists it.
type Appender interface {
	Append(ctx context.Context, name string, columns []string, record tabular.Record, message string) (*tabular.Table, *tabular.WriteResult, error)
}
