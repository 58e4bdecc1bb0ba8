package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveDataset(t *testing.T) {
	ObserveDataset("github", "load", nil)
	ObserveDataset("github", "load", errors.New("down"))
	ObserveDataset("github", "load", nil)

	assert.Equal(t, float64(2), testutil.ToFloat64(DatasetOps.WithLabelValues("github", "load", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(DatasetOps.WithLabelValues("github", "load", "error")))
}

func TestHandler(t *testing.T) {
	ObserveDataset("local", "save", nil)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "agent_data_dataset_operations_total"))
}
