package employees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	for raw, want := range map[string]string{"7": "7", "007": "7", "0": "0", "-3": "-3"} {
		got, err := ParseID(raw)

		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	for _, raw := range []string{"", "abc", "7.5", "1e3"} {
		_, err := ParseID(raw)
		assert.Error(t, err, raw)
	}
}

func TestUserRecord(t *testing.T) {
	zero := int64(0)
	n := int64(12)

	u := User{Num: &n, Name: "Ana", Job: "Dev", Address: "Calle 1", RequestedTimeOff: &zero}

	assert.Equal(t, "12", u.Key())
	assert.Equal(t, map[string]any{
		"num":              int64(12),
		"Name":             "Ana",
		"Job":              "Dev",
		"Address":          "Calle 1",
		"RequestedTimeOff": int64(0),
	}, u.Record())
}
