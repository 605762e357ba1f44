package http

import (
	"net/http"
	"strings"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/http/handler"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	ratingHandler     *handler.RatingHandler
	rateReplyHandler  *handler.RateReplyHandler
	auditLogHandler   *handler.AuditLogHandler
	imageHandler      http.Handler
	imagePath         string
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	ratingHandler *handler.RatingHandler,
	rateReplyHandler *handler.RateReplyHandler,
	auditLogHandler *handler.AuditLogHandler,
	imageHandler http.Handler,
	imagePath string,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		ratingHandler:     ratingHandler,
		rateReplyHandler:  rateReplyHandler,
		auditLogHandler:   auditLogHandler,
		imageHandler:      imageHandler,
		imagePath:         "/" + strings.Trim(imagePath, "/") + "/",
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public routes
	api.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/forget-password", r.authHandler.ForgetPassword).Methods(http.MethodPost)
	api.HandleFunc("/reset-password", r.authHandler.ResetPassword).Methods(http.MethodPost)
	api.HandleFunc("/hospitals/{id}/rating", r.ratingHandler.HospitalSummary).Methods(http.MethodGet)

	// Protected routes
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)
	protected.HandleFunc("/profile", r.authHandler.GetProfile).Methods(http.MethodGet)
	protected.HandleFunc("/profile", r.authHandler.UpdateProfile).Methods(http.MethodPut)
	protected.HandleFunc("/profile/image", r.authHandler.UploadProfileImage).Methods(http.MethodPost)

	// Ratings
	protected.HandleFunc("/rates", r.ratingHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/rates", r.ratingHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/rates/{id}", r.ratingHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/rates/{id}", r.ratingHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/rates/{id}", r.ratingHandler.Delete).Methods(http.MethodDelete)

	// Rating replies
	protected.HandleFunc("/rate-replies", r.rateReplyHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/rate-replies", r.rateReplyHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/rate-replies/{id}", r.rateReplyHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/rate-replies/{id}", r.rateReplyHandler.Delete).Methods(http.MethodDelete)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/rates", r.ratingHandler.AdminList).Methods(http.MethodGet)
	admin.HandleFunc("/rates/{id}", r.ratingHandler.AdminUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/rates/{id}", r.ratingHandler.AdminDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/rate-replies/{id}", r.rateReplyHandler.AdminDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Uploaded profile images
	r.router.PathPrefix(r.imagePath).Handler(r.imageHandler).Methods(http.MethodGet)

	// Preflight requests need a matched route for the CORS middleware to run
	r.router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(r.preflight)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) preflight(w http.ResponseWriter, req *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
