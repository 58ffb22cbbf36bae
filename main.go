// @title           Estimator API
// @version         1.0
// @description     Estimate builder backend - estimates, catalog, templates, exports and documents.

// @contact.name   API Support

// @host      localhost:8080

// @BasePath  /

// @schemes http
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "estimator/docs"
	"estimator/handlers"
	"estimator/services"
	"estimator/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	// The UI is a local PWA; only loopback origins are expected.
	corsConfig.AllowOrigins = []string{
		"http://localhost:8080",
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:8080",
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding",
		"Accept", "Origin", "X-Requested-With", "Authorization",
		"Cache-Control",
	}
	corsConfig.AllowMethods = []string{
		"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD",
	}
	corsConfig.ExposeHeaders = []string{
		"Content-Length", "Content-Type", "Content-Disposition",
	}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

func main() {
	db := storage.InitDB()
	defer db.Close()

	// First run gets a working catalog, templates and company profile.
	// BOOTSTRAP_FILE overrides the built-in defaults.
	if err := storage.Seed(db, storage.LoadBootstrap(os.Getenv("BOOTSTRAP_FILE"))); err != nil {
		log.Printf("[seed] failed: %v", err)
	}

	backup := services.StartBackupScheduler(db)

	r := gin.Default()
	r.Use(cors.New(CORSConfig()))

	// ==================== ESTIMATES ====================
	r.GET("/api/estimates", handlers.GetEstimates(db))
	r.POST("/api/estimates", handlers.CreateEstimate(db))
	r.GET("/api/estimates/:id", handlers.GetEstimate(db))
	r.PUT("/api/estimates/:id", handlers.UpdateEstimate(db))
	r.DELETE("/api/estimates/:id", handlers.DeleteEstimate(db))
	r.POST("/api/estimates/:id/duplicate", handlers.DuplicateEstimate(db))
	r.GET("/api/estimates/:id/pdf", handlers.GenerateEstimatePDF(db))
	r.GET("/api/estimates/:id/qr", handlers.GenerateEstimateQRJPEG(db))

	// ==================== CATALOG ====================
	r.GET("/api/items", handlers.GetItems(db))
	r.POST("/api/items", handlers.CreateItem(db))
	r.POST("/api/items/remember", handlers.RememberItem(db))
	r.PUT("/api/items/:id", handlers.UpdateItem(db))
	r.DELETE("/api/items/:id", handlers.DeleteItem(db))
	r.GET("/api/categories", handlers.GetCategories(db))
	r.POST("/api/categories", handlers.CreateCategory(db))
	r.PUT("/api/categories/:id", handlers.UpdateCategory(db))
	r.DELETE("/api/categories/:id", handlers.DeleteCategory(db))

	// ==================== TEMPLATES ====================
	r.GET("/api/templates", handlers.GetTemplates(db))
	r.POST("/api/templates", handlers.CreateTemplate(db))
	r.GET("/api/templates/:id", handlers.GetTemplate(db))
	r.PUT("/api/templates/:id", handlers.UpdateTemplate(db))
	r.DELETE("/api/templates/:id", handlers.DeleteTemplate(db))
	r.POST("/api/templates/:id/apply/:estimateId", handlers.ApplyTemplate(db))

	// ==================== SETTINGS & DASHBOARD ====================
	r.GET("/api/settings/company", handlers.GetCompanyProfile(db))
	r.PUT("/api/settings/company", handlers.UpdateCompanyProfile(db))
	r.GET("/api/dashboard", handlers.GetDashboard(db))

	// ==================== EXPORT / IMPORT ====================
	r.GET("/api/export", handlers.ExportJSON(db))
	r.GET("/api/export/xlsx", handlers.ExportXLSX(db))
	r.POST("/api/import", handlers.ImportJSON(db))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	portInt, err := strconv.Atoi(port)
	if err != nil || portInt < 0 || portInt > 65535 {
		log.Fatalf("Invalid PORT environment variable: %s", port)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if backup != nil {
		backup.Stop()
	}
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server exited")
}
