package controllers

import (
	"time"

	"github.com/ChurchSite/models"
	"golang.org/x/crypto/bcrypt"
)

// Test fixture data for use in tests

// MockAdminUser creates a sample active admin with a bcrypt hashed password.
// Password is "password123" - use this in tests
func MockAdminUser() models.AdminUser {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	return models.AdminUser{
		Admin_User_ID:   1,
		Name:            "Site Admin",
		Email:           "admin@example.com",
		Password_Hash:   string(hashedPassword),
		Is_Active:       true,
		Datetime_Create: time.Now(),
	}
}

// MockInactiveAdminUser creates a deactivated admin account for testing
func MockInactiveAdminUser() models.AdminUser {
	admin := MockAdminUser()
	admin.Admin_User_ID = 2
	admin.Email = "former-admin@example.com"
	admin.Is_Active = false
	return admin
}

// MockContactSubmission creates a sample stored contact submission
func MockContactSubmission() models.ContactSubmission {
	phone := "1234567890"
	return models.ContactSubmission{
		Contact_Submission_ID: 1,
		Name:                  "Jane Visitor",
		Email:                 "jane@example.com",
		Phone:                 &phone,
		Subject:               "Service times",
		Message:               "What time is the Sunday service?",
		Language:              "en",
		Status:                "new",
		Datetime_Create:       time.Now(),
	}
}

// MockPrayerRequest creates a sample active prayer request
func MockPrayerRequest() models.PrayerRequest {
	name := "John Member"
	email := "john@example.com"
	return models.PrayerRequest{
		Prayer_Request_ID: 1,
		Name:              &name,
		Email:             &email,
		Request_Text:      "Please pray for my family",
		Is_Anonymous:      false,
		Language:          "en",
		Status:            "active",
		Datetime_Create:   time.Now(),
	}
}
