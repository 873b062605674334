package routes

import (
	"playerhub_server/controllers"
	"playerhub_server/middleware"
	"playerhub_server/services"

	"github.com/gorilla/mux"
)

// RegisterMediaRoutes sets up presigned-URL routes under /api/media.
func RegisterMediaRoutes(r *mux.Router, s3svc *services.S3Service, tokens *services.TokenService) {
	controller := controllers.NewMediaController(s3svc)

	mediaRouter := r.PathPrefix("/api/media").Subrouter()
	mediaRouter.Use(middleware.Authenticate(tokens))
	mediaRouter.HandleFunc("/upload-url", controller.GenerateUploadURL).Methods("POST")
	mediaRouter.HandleFunc("/read-url", controller.GenerateReadURL).Methods("POST")
}
