package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/luay-ju/formilon-project/internal/service"
	"github.com/luay-ju/formilon-project/internal/transport/rest/handler"
	"github.com/luay-ju/formilon-project/internal/transport/rest/middleware"
	"github.com/luay-ju/formilon-project/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	FormService       *service.FormService
	SubmissionService *service.SubmissionService
	ResultsService    *service.ResultsService
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	formHandler := handler.NewFormHandler(c.FormService)
	submissionHandler := handler.NewSubmissionHandler(c.SubmissionService, c.FormService)
	resultsHandler := handler.NewResultsHandler(c.ResultsService, c.FormService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/forms/{formId}/view", formHandler.GetPublic).Methods("GET", "OPTIONS")
	v1.HandleFunc("/submissions", submissionHandler.Create).Methods("POST", "OPTIONS")

	// WebSocket routes (token in query param)
	v1.HandleFunc("/ws/forms/{formId}/results", wsHandler.ResultsWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Owner routes (require auth)
	ownerRoutes := v1.NewRoute().Subrouter()
	ownerRoutes.Use(authMW.RequireUser)

	ownerRoutes.HandleFunc("/forms", formHandler.Create).Methods("POST", "OPTIONS")
	ownerRoutes.HandleFunc("/forms", formHandler.List).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/forms/{formId}", formHandler.Get).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/forms/{formId}", formHandler.Update).Methods("PUT", "OPTIONS")
	ownerRoutes.HandleFunc("/forms/{formId}", formHandler.Delete).Methods("DELETE", "OPTIONS")
	ownerRoutes.HandleFunc("/forms/{formId}/publish", formHandler.Publish).Methods("POST", "OPTIONS")
	ownerRoutes.HandleFunc("/forms/{formId}/submissions", submissionHandler.ListByForm).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/forms/{formId}/submissions/{submissionId}", submissionHandler.Get).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/forms/{formId}/results", resultsHandler.Get).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
