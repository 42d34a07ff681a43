package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"roboticsclub/internal/delivery/http/controllers"
	"roboticsclub/internal/delivery/http/middleware"
	"roboticsclub/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	workshopController *controllers.WorkshopController,
	memberController *controllers.MemberController,
	statsController *controllers.StatsController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Public
	mux.HandleFunc("POST /auth/login", authController.Login)
	mux.HandleFunc("GET /events", eventController.List)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetByID)
	mux.HandleFunc("POST /workshops/{workshopID}/registrations", workshopController.Register)
	mux.HandleFunc("POST /membership/applications", memberController.Apply)

	// Admin
	mux.HandleFunc("POST /events", auth(eventController.Create))
	mux.HandleFunc("PUT /events/{eventID}", auth(eventController.Update))
	mux.HandleFunc("DELETE /events/{eventID}", auth(eventController.Delete))
	mux.HandleFunc("GET /workshops/{workshopID}/registrations", auth(workshopController.ListRegistrations))
	mux.HandleFunc("PATCH /registrations/{registrationID}", auth(workshopController.UpdateRegistration))
	mux.HandleFunc("DELETE /registrations/{registrationID}", auth(workshopController.DeleteRegistration))
	mux.HandleFunc("GET /membership/applications", auth(memberController.List))
	mux.HandleFunc("GET /membership/applications/{applicationID}", auth(memberController.GetByID))
	mux.HandleFunc("PATCH /membership/applications/{applicationID}", auth(memberController.Review))
	mux.HandleFunc("DELETE /membership/applications/{applicationID}", auth(memberController.Delete))
	mux.HandleFunc("GET /admin/stats", auth(statsController.Dashboard))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
