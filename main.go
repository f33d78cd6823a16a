package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ChurchSite/controllers"
	"github.com/ChurchSite/initializers"
	"github.com/ChurchSite/middlewares"
	"github.com/ChurchSite/services"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectDB()
	services.InitEmailService()
}

func main() {
	router := gin.Default()

	// Any origin may call the public endpoints; the admin dashboard is served
	// from a separate host. Preflight answers 200 with an empty body.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	corsConfig.OptionsResponseStatusCode = http.StatusOK
	router.Use(cors.New(corsConfig))

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "error": "Method not allowed"})
	})

	getKey := func(c *gin.Context) string {
		if gin.Mode() == gin.DebugMode {
			return c.FullPath()
		}
		return c.ClientIP()
	}

	router.GET("/health", controllers.HealthCheck)

	router.POST("/contact", middlewares.RateLimitMiddleware(2, 4, getKey), controllers.SubmitContact)
	router.GET("/contact", controllers.GetContactSubmissions)

	router.POST("/prayer-requests", middlewares.RateLimitMiddleware(2, 4, getKey), controllers.SubmitPrayerRequest)
	router.GET("/prayers", controllers.GetPrayerRequests)

	router.GET("/themes", controllers.GetThemes)
	router.POST("/themes", middlewares.RateLimitMiddleware(5, 5, getKey), controllers.UpdateTheme)

	router.POST("/admin/login", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.AdminLogin)

	// Diagnostic endpoint; remove from the route table in production.
	router.GET("/test-db", controllers.TestDatabase)

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "3001"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
