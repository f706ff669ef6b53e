package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRouteTemplate(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/doctors/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	router.Use(Middleware)

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/doctors/{id}", "404")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"a", "b", "c"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/doctors/"+id, nil))
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}

func TestBusinessCounters(t *testing.T) {
	booked := testutil.ToFloat64(bookingsTotal.WithLabelValues(OutcomeConflict))
	RecordBooking(OutcomeConflict)
	assert.Equal(t, booked+1, testutil.ToFloat64(bookingsTotal.WithLabelValues(OutcomeConflict)))

	paid := testutil.ToFloat64(paymentsTotal.WithLabelValues(OutcomeSuccess))
	RecordPayment(OutcomeSuccess)
	assert.Equal(t, paid+1, testutil.ToFloat64(paymentsTotal.WithLabelValues(OutcomeSuccess)))

	created := testutil.ToFloat64(processesCreated)
	RecordProcessCreated()
	assert.Equal(t, created+1, testutil.ToFloat64(processesCreated))

	replays := testutil.ToFloat64(idempotentReplays.WithLabelValues("appointment"))
	RecordIdempotentReplay("appointment")
	assert.Equal(t, replays+1, testutil.ToFloat64(idempotentReplays.WithLabelValues("appointment")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordProcessCreated()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "medisync_processes_created_total"))
}
