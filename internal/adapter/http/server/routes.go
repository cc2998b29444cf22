package server

import (
	"net/http"

	"github.com/Temutjin2k/driver-twin/internal/adapter/http/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Temutjin2k/driver-twin/docs" // swagger docs
)

// setupRoutes - setups http routes
func setupRoutes(mux *http.ServeMux, routes *handlers, m *middleware.Middleware) {
	// System Health
	mux.HandleFunc("/health", routes.health.HealthCheck)

	setupSwaggerRoutes(mux)
	setupMetricsRoute(mux)

	setupTwinRoutes(mux, routes, m)
}

// setupTwinRoutes setups the digital twin endpoints. A worker reads their own
// twin; admins read anyone's.
func setupTwinRoutes(mux *http.ServeMux, routes *handlers, m *middleware.Middleware) {
	mux.Handle("GET /workers/{worker_id}/profile", m.RequireWorkerAccess(routes.twin.GetProfile))           // Learned behavioral profile
	mux.Handle("GET /workers/{worker_id}/optimization", m.RequireWorkerAccess(routes.twin.GetOptimization)) // Ranked schedule scenarios
	mux.Handle("POST /workers/{worker_id}/activity", m.RequireWorkerAccess(routes.activity.RecordActivity)) // Direct trip ingestion
}

// setupSwaggerRoutes configures the Swagger UI endpoint
func setupSwaggerRoutes(mux *http.ServeMux) {
	swaggerURL := httpSwagger.InstanceName("twin")
	mux.HandleFunc("/swagger/", httpSwagger.Handler(swaggerURL))
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func setupMetricsRoute(mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.Handler())
}
