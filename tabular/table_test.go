package tabular

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inventory() *Table {
	return NewTable(
		[]string{"Numero_Parte", "Descripcion", "Stock"},
		Record{"Numero_Parte": "P-100", "Descripcion": "Tornillo acero", "Stock": int64(40)},
		Record{"Numero_Parte": "P-200", "Descripcion": "Tuerca", "Stock": nil},
		Record{"Numero_Parte": "p-100b", "Descripcion": "Arandela", "Stock": 2.0},
	)
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  []string
		kind  Kind
	}{
		{
			name:  "substring ignores case",
			query: Query{Column: "Numero_Parte", Value: "p-100"},
			want:  []string{"P-100", "p-100b"},
		},
		{
			name:  "exact is case sensitive",
			query: Query{Column: "Numero_Parte", Value: "p-100", Exact: true},
			want:  []string{},
		},
		{
			name:  "column resolved ignoring case",
			query: Query{Column: "descripcion", Value: "TUERCA"},
			want:  []string{"P-200"},
		},
		{
			name:  "strict column",
			query: Query{Column: "descripcion", Value: "tuerca", StrictColumn: true},
			kind:  KindInvalidColumn,
		},
		{
			name:  "unknown column",
			query: Query{Column: "Precio", Value: "1"},
			kind:  KindInvalidColumn,
		},
		{
			name:  "floats compare with one decimal",
			query: Query{Column: "Stock", Value: "2.0", Exact: true},
			want:  []string{"p-100b"},
		},
		{
			name:  "nil never matches",
			query: Query{Column: "Stock", Value: ""},
			want:  []string{"P-100", "p-100b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := inventory()

			got, err := Filter(table, tt.query)

			if tt.kind != 0 {
				assert.Equal(t, tt.kind, KindOf(err))
				assert.Contains(t, err.Error(), "Numero_Parte")
				return
			}

			require.NoError(t, err)

			parts := make([]string, 0)
			for _, r := range got.Rows {
				parts = append(parts, r.String("Numero_Parte"))
			}

			assert.Equal(t, tt.want, parts)
			assert.Equal(t, 3, table.Len())
		})
	}
}

func TestAppendUnionsColumns(t *testing.T) {
	table := inventory()

	got := table.Append([]string{"Numero_Parte", "Proveedor"}, Record{"Numero_Parte": "P-300", "Proveedor": "ACME"})

	assert.Equal(t, []string{"Numero_Parte", "Descripcion", "Stock", "Proveedor"}, got.Columns)
	assert.Equal(t, 4, got.Len())
	assert.Nil(t, got.Rows[0]["Proveedor"])
	assert.Nil(t, got.Rows[3]["Stock"])
	assert.Equal(t, "ACME", got.Rows[3]["Proveedor"])

	assert.Equal(t, 3, table.Len())
	assert.False(t, table.HasColumn("Proveedor"))
}

func TestCloneIsIndependent(t *testing.T) {
	table := inventory()

	clone := table.Clone()
	clone.Rows[0]["Stock"] = int64(0)
	clone.Columns[0] = "changed"

	assert.Equal(t, int64(40), table.Rows[0]["Stock"])
	assert.Equal(t, "Numero_Parte", table.Columns[0])
}

func TestRecordsKeepColumnOrder(t *testing.T) {
	table := NewTable(
		[]string{"z", "a", "m"},
		Record{"a": int64(1), "m": nil, "z": "last"},
	)

	data, err := json.Marshal(table.Records())

	require.NoError(t, err)
	assert.Equal(t, `[{"z":"last","a":1,"m":null}]`, string(data))
}

func TestRecordsOfEmptyTable(t *testing.T) {
	data, err := json.Marshal(NewTable([]string{"a"}).Records())

	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "7", FormatValue(7))
	assert.Equal(t, "7.0", FormatValue(7.0))
	assert.Equal(t, "0.125", FormatValue(0.125))
	assert.Equal(t, "True", FormatValue(true))
	assert.Equal(t, "x", FormatValue("x"))
}

func TestNormalizeUnsigned(t *testing.T) {
	assert.Equal(t, int64(7), Normalize(uint64(7)))
	assert.Equal(t, int64(math.MaxInt64), Normalize(uint64(math.MaxInt64)))
	assert.Equal(t, uint64(math.MaxUint64), Normalize(uint64(math.MaxUint64)))
	assert.Equal(t, "18446744073709551615", FormatValue(uint64(math.MaxUint64)))

	f, ok := AsFloat(uint64(math.MaxUint64))
	assert.True(t, ok)
	assert.Greater(t, f, float64(0))

	_, ok = AsInt(uint64(math.MaxUint64))
	assert.False(t, ok)
}

func TestInferColumn(t *testing.T) {
	assert.Equal(t, []any{int64(1), nil, int64(3)}, InferColumn([]string{"1", "", "3"}))
	assert.Equal(t, []any{1.5, float64(2)}, InferColumn([]string{"1.5", "2"}))
	assert.Equal(t, []any{true, false}, InferColumn([]string{"True", "false"}))
	assert.Equal(t, []any{"1", "a"}, InferColumn([]string{"1", "a"}))
	assert.Equal(t, []any{nil, nil}, InferColumn([]string{"", ""}))
}

func TestErrorKinds(t *testing.T) {
	err := NotFound("Producto %s no encontrado", "X")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.Equal(t, 404, err.(*Error).StatusCode())
	assert.Equal(t, 409, WriteConflict(nil, "sha mismatch").(*Error).StatusCode())
	assert.Equal(t, 409, Conflict("duplicate").(*Error).StatusCode())
	assert.Equal(t, 400, InvalidColumn("x", nil).(*Error).StatusCode())
	assert.Equal(t, 422, Validation("bad").(*Error).StatusCode())
	assert.Equal(t, 500, Configuration("GITHUB_TOKEN").(*Error).StatusCode())
	assert.Equal(t, 500, RemoteAccess(nil, "down").(*Error).StatusCode())
	assert.Contains(t, Configuration("A", "B").Error(), "A, B")
}
