package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gazi-Farhana/summer-camp-server/internal/auth"
	"github.com/Gazi-Farhana/summer-camp-server/internal/handlers"
	"github.com/Gazi-Farhana/summer-camp-server/internal/middleware"
	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
	"github.com/Gazi-Farhana/summer-camp-server/internal/repository"
	"github.com/Gazi-Farhana/summer-camp-server/internal/utils"
)

// Deps carries the constructed collaborators for the route table.
type Deps struct {
	Tokens    *auth.Service
	Users     repository.UserRepository
	Courses   repository.CourseRepository
	Cart      repository.CartRepository
	Payments  repository.PaymentRepository
	Mailer    *utils.Mailer
	StripeKey string
}

func SetupRouter(d Deps) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestID, middleware.Metrics)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is healthy"))
	}).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	tokenHandler := handlers.NewTokenHandler(d.Tokens)
	userHandler := handlers.NewUserHandler(d.Users)
	courseHandler := handlers.NewCourseHandler(d.Courses, d.Mailer)
	cartHandler := handlers.NewCartHandler(d.Cart)
	paymentHandler := handlers.NewPaymentHandler(d.Payments, d.StripeKey)

	// Open routes
	router.HandleFunc("/jwt", tokenHandler.IssueToken).Methods("POST")
	router.HandleFunc("/courses", courseHandler.GetCourses).Methods("GET")
	router.HandleFunc("/courses/popular", courseHandler.GetPopular).Methods("GET")
	router.HandleFunc("/users", userHandler.Register).Methods("POST")
	router.HandleFunc("/cart", cartHandler.Add).Methods("POST")
	router.HandleFunc("/payment-intent", paymentHandler.CreateIntent).Methods("POST")

	// Token-guarded routes
	authed := router.NewRoute().Subrouter()
	authed.Use(middleware.RequireAuth(d.Tokens))
	authed.HandleFunc("/cart", cartHandler.List).Methods("GET")
	authed.HandleFunc("/cart/enrolled", cartHandler.ListEnrolled).Methods("GET")
	authed.HandleFunc("/cart/{id}", cartHandler.GetOne).Methods("GET")
	authed.HandleFunc("/cart/{id}", cartHandler.Remove).Methods("DELETE")
	authed.HandleFunc("/users/admin/{email}", userHandler.IsAdmin).Methods("GET")
	authed.HandleFunc("/users/mentor/{email}", userHandler.IsMentor).Methods("GET")
	authed.HandleFunc("/payments", paymentHandler.Settle).Methods("POST")
	authed.HandleFunc("/payments", paymentHandler.History).Methods("GET")

	// Admin-only routes
	admin := router.NewRoute().Subrouter()
	admin.Use(middleware.RequireAuth(d.Tokens), middleware.RequireRole(d.Users, models.RoleAdmin))
	admin.HandleFunc("/courses/uncensored", courseHandler.GetUncensored).Methods("GET")
	admin.HandleFunc("/users", userHandler.GetUsers).Methods("GET")
	admin.HandleFunc("/users/{id}", userHandler.Promote).Methods("PUT")
	admin.HandleFunc("/courses/status/{id}", courseHandler.SetStatus).Methods("PUT")
	admin.HandleFunc("/courses/feedback/{id}", courseHandler.SetFeedback).Methods("PUT")

	// Mentor-only routes
	mentor := router.NewRoute().Subrouter()
	mentor.Use(middleware.RequireAuth(d.Tokens), middleware.RequireRole(d.Users, models.RoleMentor))
	mentor.HandleFunc("/courses", courseHandler.CreateCourse).Methods("POST")
	mentor.HandleFunc("/courses/my-courses", courseHandler.GetMyCourses).Methods("GET")
	mentor.HandleFunc("/courses/myClasses/{id}", courseHandler.GetMyClass).Methods("GET")
	mentor.HandleFunc("/courses/my-course", courseHandler.UpdateMyCourse).Methods("PUT")

	return router
}
