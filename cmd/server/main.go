// cmd/server/main.go
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	_ "github.com/hades874/10MS-Req-Dash/docs" // Required for Swagger
	"github.com/hades874/10MS-Req-Dash/internal/api"
	"github.com/hades874/10MS-Req-Dash/internal/api/handlers"
	"github.com/hades874/10MS-Req-Dash/internal/auth"
	"github.com/hades874/10MS-Req-Dash/internal/config"
	"github.com/hades874/10MS-Req-Dash/internal/directory"
	"github.com/hades874/10MS-Req-Dash/internal/googleauth"
	"github.com/hades874/10MS-Req-Dash/internal/ratelimit"
	"github.com/hades874/10MS-Req-Dash/internal/sheets"
	"github.com/hades874/10MS-Req-Dash/internal/storage"
)

// @title           Content Ops Requisition Dashboard API
// @version         1.0
// @description     API for viewing and updating content operations requisitions backed by Google Sheets

// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                         header
// @name                       Authorization
func main() {

	gin.SetMode(gin.ReleaseMode)

	f, _ := os.Create("gin.log")
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)

	// Load configuration from .env
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using system environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create database configuration
	dbConfig := storage.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
	}

	// Create database if it doesn't exist
	rootDb, err := storage.NewDB(storage.Config{
		Host:     dbConfig.Host,
		Port:     dbConfig.Port,
		User:     dbConfig.User,
		Password: dbConfig.Password,
		DBName:   "",
	})
	if err != nil {
		log.Fatalf("Failed to connect to MySQL: %v", err)
	}

	_, err = rootDb.Exec("CREATE DATABASE IF NOT EXISTS " + dbConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	rootDb.Close()

	// Connect to the application database
	db, err := storage.NewDB(dbConfig)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := storage.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Directory store, seeded from the env blob on first run
	store := directory.NewStore(db)
	if err := store.Seed(cfg.Seed.TeamMembersData); err != nil {
		log.Fatalf("Failed to seed team members: %v", err)
	}
	managers := directory.NewManagerList(cfg.Seed.ManagersData)

	// Sheet write credentials are optional; without them the API is
	// read-only and status updates fail with a configuration error.
	var tokens sheets.TokenSource
	if cfg.Google.ServiceAccountCredentials != "" {
		account, err := googleauth.ParseCredentials(cfg.Google.ServiceAccountCredentials)
		if err != nil {
			log.Fatalf("Failed to parse service account credentials: %v", err)
		}
		tokens = googleauth.NewServiceTokenSource(account)
	} else {
		log.Printf("GOOGLE_SERVICE_ACCOUNT_CREDENTIALS not set; status updates disabled")
	}

	sheetsClient := sheets.NewClient(cfg.Google.SheetsAPIKey, cfg.Google.SpreadsheetID, tokens)
	userInfo := googleauth.NewUserInfoClient()
	resolver := auth.NewResolver(store, managers, userInfo)
	oauthCfg := googleauth.NewOAuthConfig(cfg.Google)

	rateLimiter, err := ratelimit.NewRateLimiter(cfg.Redis.URL)
	if err != nil {
		log.Fatalf("Failed to initialize rate limiter: %v", err)
	}
	defer rateLimiter.Close()

	// Set up and start the server
	h := handlers.NewHandler(store, sheetsClient, resolver, userInfo, oauthCfg, cfg.Env)
	router := api.SetupRouter(h, resolver, rateLimiter)

	serverAddr := fmt.Sprintf(":%s", cfg.Server.Port)
	if cfg.Env == "development" {
		log.Printf("Server starting on http://localhost%s", serverAddr)
		log.Printf("Swagger UI available at http://localhost%s/swagger/index.html", serverAddr)
	}

	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
