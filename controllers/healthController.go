package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChurchSite/initializers"
)

// HealthCheck confirms the API process is up. It deliberately does not touch
// the database; use /test-db for that.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "API server is running",
	})
}

// TestDatabase verifies connectivity and reports row counts. Diagnostic only;
// this is the one endpoint allowed to echo error detail, and deployments can
// leave it unrouted in production.
func TestDatabase(c *gin.Context) {
	contactCount, err := initializers.DB.From("contact_submission").Count()
	if err != nil {
		log.Printf("Database connection error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Database connection failed",
			"details": err.Error(),
		})
		return
	}

	prayerCount, err := initializers.DB.From("prayer_request").Count()
	if err != nil {
		log.Printf("Database connection error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Database connection failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected successfully",
		"counts": gin.H{
			"contacts": contactCount,
			"prayers":  prayerCount,
		},
	})
}
