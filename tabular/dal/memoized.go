package dal

import (
	"context"
	"sync"

	"github.com/doitintl/hello/agent-data-api/tabular"
	"github.com/doitintl/hello/agent-data-api/tabular/dal/iface"
)

type slot struct {
	mu    sync.Mutex
	table *tabular.Table
}

// Memoized keeps the first successful load of each dataset for the life of the
// process. Callers always receive a copy. A successful Save replaces the slot
// with the saved table; a failed one leaves it untouched.
type Memoized struct {
	loader iface.Loader

	mu    sync.Mutex
	slots map[string]*slot
}

func NewMemoized(loader iface.Loader) *Memoized {
	return &Memoized{
		loader: loader,
		slots:  make(map[string]*slot),
	}
}

func (m *Memoized) slot(name string) *slot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.slots[name]
	if !ok {
		s = &slot{}
		m.slots[name] = s
	}

	return s
}

// Load returns the memoized table, loading it on first use. Concurrent first
// loads of one name share a single fetch.
func (m *Memoized) Load(ctx context.Context, name string) (*tabular.Table, error) {
	s := m.slot(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.table != nil {
		return s.table.Clone(), nil
	}

	t, err := m.loader.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	s.table = t.Clone()

	return t, nil
}

func (m *Memoized) Save(ctx context.Context, name string, table *tabular.Table, message string) (*tabular.WriteResult, error) {
	store, ok := m.loader.(iface.Store)
	if !ok {
		return nil, tabular.RemoteAccess(nil, "dataset %s is read only", name)
	}

	res, err := store.Save(ctx, name, table, message)
	if err != nil {
		return nil, err
	}

	s := m.slot(name)

	s.mu.Lock()
	s.table = table.Clone()
	s.mu.Unlock()

	return res, nil
}

// Cached reports whether name has been loaded.
func (m *Memoized) Cached(name string) bool {
	s := m.slot(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.table != nil
}
