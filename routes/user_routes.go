package routes

import (
	"playerhub_server/controllers"
	"playerhub_server/middleware"
	"playerhub_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up routes for account operations under /api/users.
// Registration and login are public; everything else requires a bearer
// token.
func RegisterUserRoutes(r *mux.Router, users *services.UserService, tokens *services.TokenService) {
	controller := controllers.NewUserController(users)

	public := r.PathPrefix("/api/users").Subrouter()
	public.HandleFunc("", controller.Register).Methods("POST")
	public.HandleFunc("/login", controller.Login).Methods("POST")

	protected := r.PathPrefix("/api/users").Subrouter()
	protected.Use(middleware.Authenticate(tokens))
	protected.HandleFunc("", controller.List).Methods("GET")
	protected.HandleFunc("/profile", controller.GetProfile).Methods("GET")
	protected.HandleFunc("/profile", controller.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/profile", controller.DeleteProfile).Methods("DELETE")
}
