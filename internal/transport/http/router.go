package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"hydration-service/internal/transport/http/middleware"
)

// Router sets up HTTP routes
type Router struct {
	handler *HydrationHandler
	limiter *middleware.RateLimiter
	log     *zap.Logger
	mux     *http.ServeMux
}

// NewRouter creates a new router
func NewRouter(handler *HydrationHandler, limiter *middleware.RateLimiter, log *zap.Logger) *Router {
	return &Router{
		handler: handler,
		limiter: limiter,
		log:     log,
		mux:     http.NewServeMux(),
	}
}

// Setup configures all routes
func (r *Router) Setup() http.Handler {
	r.mux.HandleFunc("/api/v1/onboarding/complete", r.handler.CompleteOnboarding)

	r.mux.HandleFunc("/api/v1/profile", r.handler.GetProfile)
	r.mux.HandleFunc("/api/v1/profile/update", r.handler.UpdateProfile)

	r.mux.HandleFunc("/api/v1/containers/create", r.handler.CreateContainerType)
	r.mux.HandleFunc("/api/v1/containers/list", r.handler.ListContainerTypes)
	r.mux.HandleFunc("/api/v1/containers/delete", r.handler.DeleteContainerType)

	r.mux.HandleFunc("/api/v1/intake/log", r.handler.LogIntake)
	r.mux.HandleFunc("/api/v1/intake/today", r.handler.GetToday)

	r.mux.HandleFunc("/api/v1/stats/weekly", r.handler.GetWeeklySeries)
	r.mux.HandleFunc("/api/v1/stats/summary", r.handler.GetSummary)

	r.mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	r.mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	var handler http.Handler = r.mux

	handler = middleware.Logging(r.log)(handler)

	handler = r.limiter.Middleware(handler)

	return handler
}
