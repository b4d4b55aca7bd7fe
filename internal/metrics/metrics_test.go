package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWrite(t *testing.T) {
	before := testutil.ToFloat64(writesTotal.WithLabelValues("append", "success"))

	RecordWrite("append", true)

	assert.Equal(t, before+1, testutil.ToFloat64(writesTotal.WithLabelValues("append", "success")))
}

func TestRecordRead_CountsBytesOnSuccessOnly(t *testing.T) {
	before := testutil.ToFloat64(readBytesServed)

	RecordRead("window", 100, true)
	RecordRead("window", 50, false)

	assert.Equal(t, before+100, testutil.ToFloat64(readBytesServed))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	RecordHTTPRequest(http.MethodGet, "/api/list", http.StatusOK, 10*time.Millisecond)
	RecordSearch(time.Second, 2, true)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fileview_http_requests_total")
	assert.Contains(t, rec.Body.String(), "fileview_search_duration_seconds")
}
