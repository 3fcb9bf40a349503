package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/wkchan/ifa-report-service/config"
	"github.com/wkchan/ifa-report-service/handler"
	"github.com/wkchan/ifa-report-service/parser"
	"github.com/wkchan/ifa-report-service/service"
)

func main() {
	// Load environment variables from .env when present
	godotenv.Load()

	// Initialize configuration
	cfg := config.LoadConfig()
	gin.SetMode(cfg.GinMode)

	// Initialize the narrative parser and session store
	profileParser := parser.New()
	sessionStore := service.NewSessionStore()

	// Initialize PDF processor for uploaded notes documents
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	profileService := service.NewProfileService(profileParser, sessionStore, pdfProcessor)

	// Initialize handler layer
	reportHandler := handler.NewReportHandler(profileService)

	// Setup Gin router
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "IFA Report Generator",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		report := api.Group("/report")
		{
			report.POST("/parse", reportHandler.ParseReport)
			report.GET("/:id", reportHandler.GetReport)
			report.PUT("/:id/field", reportHandler.UpdateField)
			report.POST("/:id/items", reportHandler.AddItem)
		}
	}

	// Start server
	log.Printf("Starting IFA Report Generator Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
