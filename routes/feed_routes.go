package routes

import (
	"playerhub_server/controllers"
	"playerhub_server/middleware"
	"playerhub_server/services"

	"github.com/gorilla/mux"
)

// RegisterFeedRoutes sets up routes for the video feed under /api/feed.
func RegisterFeedRoutes(r *mux.Router, feeds *services.FeedService, users *services.UserService, tokens *services.TokenService) {
	controller := controllers.NewFeedController(feeds, users)

	feedRouter := r.PathPrefix("/api/feed").Subrouter()
	feedRouter.Use(middleware.Authenticate(tokens))
	feedRouter.HandleFunc("", controller.Create).Methods("POST")
	feedRouter.HandleFunc("", controller.List).Methods("GET")
}
