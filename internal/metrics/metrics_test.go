package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOperation(t *testing.T) {
	before := testutil.ToFloat64(syncOperationsTotal.WithLabelValues("push", StatusNoop))

	RecordOperation("push", StatusNoop, 10*time.Millisecond)

	after := testutil.ToFloat64(syncOperationsTotal.WithLabelValues("push", StatusNoop))
	assert.Equal(t, before+1, after)
}

func TestRecordBlobBytes(t *testing.T) {
	up := testutil.ToFloat64(blobBytesUploaded)
	down := testutil.ToFloat64(blobBytesDownloaded)

	RecordBlobUpload(128)
	RecordBlobDownload(64)

	assert.Equal(t, up+128, testutil.ToFloat64(blobBytesUploaded))
	assert.Equal(t, down+64, testutil.ToFloat64(blobBytesDownloaded))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/items/{id}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/42", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/items/{id}", "418")))
}

func TestHandler_ExposesSyncMetrics(t *testing.T) {
	RecordOperation("merge", StatusSuccess, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "itemsync_operations_total"))
}
