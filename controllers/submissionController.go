package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ChurchSite/initializers"
	"github.com/ChurchSite/models"
	"github.com/ChurchSite/services"
	"github.com/doug-martin/goqu/v9"
)

const defaultListLimit = 50

// parseLimit reads ?limit= and falls back to the default when the value is
// missing, non-numeric, or not positive.
func parseLimit(c *gin.Context) uint {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		return defaultListLimit
	}
	return uint(limit)
}

func optionalField(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func defaultLanguage(language string) string {
	language = strings.TrimSpace(language)
	if language == "" {
		return "en"
	}
	return language
}

// insertPrayerRequest persists a prayer request and returns the generated id.
// A blank name is stored as NULL and marks the request anonymous; rendering
// "Anonymous" is left to presentation layers.
func insertPrayerRequest(name string, email string, phone string, message string, language string) (int, error) {
	prayer := models.PrayerRequest{
		Name:         optionalField(name),
		Email:        optionalField(email),
		Phone:        optionalField(phone),
		Request_Text: message,
		Is_Anonymous: strings.TrimSpace(name) == "",
		Language:     defaultLanguage(language),
		Status:       "active",
	}

	insert := initializers.DB.Insert("prayer_request").Rows(prayer).Returning("prayer_request_id")

	var insertedID int
	_, err := insert.Executor().ScanVal(&insertedID)
	return insertedID, err
}

func notifyStaff(submissionType string, name string, email string, text string) {
	emailService := services.GetEmailService()
	if emailService == nil {
		return
	}
	go func() {
		if err := emailService.SendSubmissionNotification(submissionType, name, email, text); err != nil {
			log.Printf("Failed to send submission notification: %v", err)
		}
	}()
}

// SubmitContact handles the public contact form. Submissions that mention
// prayer are routed to the prayer_request table instead of contact_submission.
func SubmitContact(c *gin.Context) {
	var submission models.ContactSubmissionCreate

	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	name := strings.TrimSpace(submission.Name)
	email := strings.TrimSpace(submission.Email)
	subject := strings.TrimSpace(submission.Subject)
	message := strings.TrimSpace(submission.Message)

	if name == "" || email == "" || subject == "" || message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields"})
		return
	}

	language := defaultLanguage(submission.Language)
	submissionType := services.ClassifySubmission(subject, message, language)

	var insertedID int
	var err error

	if submissionType == services.SubmissionTypePrayer {
		insertedID, err = insertPrayerRequest(name, email, submission.Phone, message, language)
	} else {
		contact := models.ContactSubmission{
			Name:     name,
			Email:    email,
			Phone:    optionalField(submission.Phone),
			Subject:  subject,
			Message:  message,
			Language: language,
			Status:   "new",
		}

		insert := initializers.DB.Insert("contact_submission").Rows(contact).Returning("contact_submission_id")
		_, err = insert.Executor().ScanVal(&insertedID)
	}

	if err != nil {
		log.Printf("Failed to save submission: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save submission"})
		return
	}

	notifyStaff(submissionType, name, email, message)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      insertedID,
		"type":    submissionType,
	})
}

// SubmitPrayerRequest handles direct prayer request submissions. Name, email
// and phone are optional; the request text is not.
func SubmitPrayerRequest(c *gin.Context) {
	var prayer models.PrayerRequestCreate

	if err := c.ShouldBindJSON(&prayer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(prayer.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Prayer request text is required"})
		return
	}

	insertedID, err := insertPrayerRequest(prayer.Name, prayer.Email, prayer.Phone, strings.TrimSpace(prayer.Message), prayer.Language)
	if err != nil {
		log.Printf("Failed to save prayer request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save prayer request"})
		return
	}

	notifyStaff(services.SubmissionTypePrayer, prayer.Name, prayer.Email, prayer.Message)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      insertedID,
		"type":    services.SubmissionTypePrayer,
	})
}

// GetContactSubmissions lists contact submissions, newest first.
func GetContactSubmissions(c *gin.Context) {
	var submissions []models.ContactSubmission

	err := initializers.DB.From("contact_submission").
		Order(goqu.C("datetime_create").Desc()).
		Limit(parseLimit(c)).
		ScanStructs(&submissions)

	if err != nil {
		log.Printf("Failed to fetch contact submissions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch contact submissions"})
		return
	}

	if submissions == nil {
		submissions = []models.ContactSubmission{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "contacts": submissions})
}

// GetPrayerRequests lists active prayer requests, newest first. Archived
// requests are never surfaced here.
func GetPrayerRequests(c *gin.Context) {
	var prayers []models.PrayerRequest

	err := initializers.DB.From("prayer_request").
		Where(goqu.C("status").Eq("active")).
		Order(goqu.C("datetime_create").Desc()).
		Limit(parseLimit(c)).
		ScanStructs(&prayers)

	if err != nil {
		log.Printf("Failed to fetch prayer requests: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch prayer requests"})
		return
	}

	if prayers == nil {
		prayers = []models.PrayerRequest{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "prayers": prayers})
}
