package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/middleware"
)

// Метрики группируются по шаблону маршрута
func TestMetrics_RoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := middleware.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/recipe/tags/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, id := range []string{"a", "b", "c"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/recipe/tags/"+id, nil))
	}

	n, err := testutil.GatherAndCount(reg, "recipe_api_http_requests_total")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
