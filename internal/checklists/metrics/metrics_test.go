package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/checklists/internal/checklists/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	c.RecordSessionIssued()
	c.RecordSessionIssued()
	c.RecordSessionsRevoked(3)
	c.RecordSessionsRevoked(0)
	c.RecordChecklistCreated()
	c.RecordHTTPRequest(http.MethodGet, "GET /checklists", http.StatusOK, 15*time.Millisecond)

	count, err := testutil.GatherAndCount(reg,
		"checklists_sessions_issued_total",
		"checklists_sessions_revoked_total",
		"checklists_checklists_created_total",
		"checklists_http_requests_total",
		"checklists_http_request_duration_seconds",
	)
	require.NoError(t, err)
	require.Equal(t, 5, count)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range mfs {
		if m := mf.GetMetric(); len(m) == 1 && m[0].GetCounter() != nil {
			values[mf.GetName()] = m[0].GetCounter().GetValue()
		}
	}
	require.Equal(t, 2.0, values["checklists_sessions_issued_total"])
	require.Equal(t, 3.0, values["checklists_sessions_revoked_total"])
	require.Equal(t, 1.0, values["checklists_checklists_created_total"])
}

func TestHandlerServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	c.RecordChecklistCreated()

	rec := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "checklists_checklists_created_total 1")
}

func TestOrNop(t *testing.T) {
	require.Equal(t, metrics.Nop{}, metrics.OrNop(nil))

	c := metrics.NewCollector(prometheus.NewRegistry())
	require.Same(t, c, metrics.OrNop(c))
}
