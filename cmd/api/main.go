package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"picdrop/internal/config"
	"picdrop/internal/database"
	"picdrop/internal/hosting"
	"picdrop/internal/middleware"
	"picdrop/internal/upload"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	hostingClient := hosting.New(hosting.Config{
		APIKey:   cfg.HostingAPIKey,
		Endpoint: cfg.HostingEndpoint,
		Timeout:  cfg.HostingTimeout,
	})

	repo := upload.NewRepository(db)
	service := upload.NewService(repo, hostingClient)
	handler := upload.NewHandler(service)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/healthz", healthz(db))

	api := r.Group("/api")
	upload.RegisterRoutes(api, handler)

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
