package dal

import (
	"context"
	"sync"

	"github.com/doitintl/hello/agent-data-api/tabular"
	"github.com/doitintl/hello/agent-data-api/tabular/dal/iface"
)

// Appender adds records to datasets of a store, one writer per dataset at a
// time within the process.
type Appender struct {
	store iface.Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewAppender(store iface.Store) *Appender {
	return &Appender{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

func (a *Appender) lock(name string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()

	l, ok := a.locks[name]
	if !ok {
		l = &sync.Mutex{}
		a.locks[name] = l
	}

	return l
}

// Append loads name, adds record as the last row and saves the whole table.
// Columns of record unknown to the dataset are added after the existing ones.
func (a *Appender) Append(ctx context.Context, name string, columns []string, record tabular.Record, message string) (*tabular.Table, *tabular.WriteResult, error) {
	l := a.lock(name)

	l.Lock()
	defer l.Unlock()

	t, err := a.store.Load(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	updated := t.Append(columns, record)

	res, err := a.store.Save(ctx, name, updated, message)
	if err != nil {
		return nil, nil, err
	}

	return updated, res, nil
}
