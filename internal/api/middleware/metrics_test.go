package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type recordingCollector struct {
	method string
	path   string
	status string
}

func (c *recordingCollector) ObserveHTTPRequest(method, path, status string, _ float64) {
	c.method = method
	c.path = path
	c.status = status
}

func TestMetrics_ObservesPathTemplate(t *testing.T) {
	collector := &recordingCollector{}

	r := mux.NewRouter()
	r.Use(Metrics(collector))
	r.HandleFunc("/api/bookings/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/b1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.MethodGet, collector.method)
	assert.Equal(t, "/api/bookings/{id}", collector.path)
	assert.Equal(t, "404", collector.status)
}

func TestStatusRecorder_FlushPassthrough(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := &statusRecorder{ResponseWriter: rec, status: http.StatusOK}

	sr.Flush()
	assert.True(t, rec.Flushed)
}
