package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"playerhub_server/config"
	"playerhub_server/routes"
	"playerhub_server/services"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	region := os.Getenv("AWS_REGION")

	log.Println("Initializing DynamoDB client...")
	dynamoClient, err := services.InitializeDynamoDBClient(ctx, region)
	if err != nil {
		log.Fatalf("Failed to initialize DynamoDB client: %v", err)
	}
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	log.Println("Initializing S3 client...")
	s3Client, err := services.InitializeS3Client(ctx, region)
	if err != nil {
		log.Fatalf("Failed to initialize S3 client: %v", err)
	}
	s3Service := services.NewS3Service(s3Client, cfg.VideoBucket)
	log.Println("S3 client initialized.")

	// Initialize services
	tokenService := services.NewTokenService(cfg.JWTSecret)
	userService := services.NewUserService(dynamoService, tokenService, cfg.UserTable, cfg.UserEmailIndex)
	feedService := services.NewFeedService(dynamoService, s3Service, cfg.FeedTable, cfg.CloudFrontDomain)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to PlayerHub")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterUserRoutes(r, userService, tokenService)
	routes.RegisterFeedRoutes(r, feedService, userService, tokenService)
	routes.RegisterMediaRoutes(r, s3Service, tokenService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
