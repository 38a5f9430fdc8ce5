package http

import (
	"net/http"

	"surgitrack/internal/delivery/http/handler"
	"surgitrack/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	patientHandler    *handler.PatientHandler
	surgeryHandler    *handler.SurgeryHandler
	statsHandler      *handler.StatsHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	metricsMiddleware *middleware.MetricsMiddleware
	protectRecords    bool
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	surgeryHandler *handler.SurgeryHandler,
	statsHandler *handler.StatsHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
	protectRecords bool,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		patientHandler:    patientHandler,
		surgeryHandler:    surgeryHandler,
		statsHandler:      statsHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		metricsMiddleware: metricsMiddleware,
		protectRecords:    protectRecords,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	r.router.HandleFunc("/", r.banner).Methods(http.MethodGet)
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	api.HandleFunc("/stats", r.statsHandler.GetStats).Methods(http.MethodGet)

	// Auth routes
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", r.authHandler.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	auth.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Record reads
	api.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/surgeries", r.surgeryHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/surgeries/{id}", r.surgeryHandler.Get).Methods(http.MethodGet)

	// Record mutations, gated behind a session when configured
	records := api.NewRoute().Subrouter()
	if r.protectRecords {
		records.Use(r.authMiddleware.RequireAuth)
	}
	records.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	records.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPatch)
	records.HandleFunc("/surgeries", r.surgeryHandler.Create).Methods(http.MethodPost)
	records.HandleFunc("/surgeries/{id}", r.surgeryHandler.Update).Methods(http.MethodPatch)

	// Preflight requests are answered by the CORS middleware.
	r.router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	return r.router
}

func (r *Router) banner(w http.ResponseWriter, req *http.Request) {
	w.Write([]byte("Surgery Tracker API running. Try /api/stats"))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
