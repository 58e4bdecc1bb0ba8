package dal

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/doitintl/hello/agent-data-api/metrics"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

const backendLocal = "local"

// LocalFile stores datasets as CSV or xlsx files under a directory.
type LocalFile struct {
	dir  string
	opts tabular.CSVOptions
}

func NewLocalFile(dir string, opts tabular.CSVOptions) *LocalFile {
	return &LocalFile{
		dir:  dir,
		opts: opts,
	}
}

func (d *LocalFile) path(name string) string {
	return filepath.Join(d.dir, filepath.Clean("/"+name))
}

func isExcel(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".xlsx" || ext == ".xlsm"
}

func (d *LocalFile) Load(ctx context.Context, name string) (t *tabular.Table, err error) {
	defer func() { metrics.ObserveDataset(backendLocal, "load", err) }()

	data, err := os.ReadFile(d.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, tabular.NotFound("file %s not found", name)
	}

	if err != nil {
		return nil, tabular.RemoteAccess(err, "could not read %s", name)
	}

	if isExcel(name) {
		return tabular.ParseExcel(data)
	}

	return tabular.ParseCSV(data, d.opts)
}

// Save replaces the file with the full table, writing through a temporary file
// in the same directory.
func (d *LocalFile) Save(ctx context.Context, name string, table *tabular.Table, message string) (res *tabular.WriteResult, err error) {
	defer func() { metrics.ObserveDataset(backendLocal, "save", err) }()

	var data []byte

	if isExcel(name) {
		data, err = tabular.EncodeExcel(table, "")
	} else {
		data, err = tabular.EncodeCSV(table)
	}

	if err != nil {
		return nil, err
	}

	path := d.path(name)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, tabular.RemoteAccess(err, "could not write %s", name)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-"+filepath.Base(path))
	if err != nil {
		return nil, tabular.RemoteAccess(err, "could not write %s", name)
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, tabular.RemoteAccess(err, "could not write %s", name)
	}

	if err := tmp.Close(); err != nil {
		return nil, tabular.RemoteAccess(err, "could not write %s", name)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return nil, tabular.RemoteAccess(err, "could not write %s", name)
	}

	return &tabular.WriteResult{Message: message}, nil
}
