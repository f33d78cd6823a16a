package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	c, w := SetupTestContext()
	c.Request = httptest.NewRequest("GET", "/health", nil)

	HealthCheck(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "OK", response["status"])
}

func TestTestDatabase(t *testing.T) {
	t.Run("reports row counts", func(t *testing.T) {
		_, mock, cleanup := SetupTestDB(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT COUNT\(\*\) AS "count" FROM "contact_submission"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
		mock.ExpectQuery(`SELECT COUNT\(\*\) AS "count" FROM "prayer_request"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

		c, w := SetupTestContext()
		c.Request = httptest.NewRequest("GET", "/test-db", nil)

		TestDatabase(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Success bool               `json:"success"`
			Counts  map[string]float64 `json:"counts"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &response)
		assert.True(t, response.Success)
		assert.Equal(t, float64(12), response.Counts["contacts"])
		assert.Equal(t, float64(4), response.Counts["prayers"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("connection failure includes detail", func(t *testing.T) {
		_, mock, cleanup := SetupTestDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

		c, w := SetupTestContext()
		c.Request = httptest.NewRequest("GET", "/test-db", nil)

		TestDatabase(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, false, response["success"])
		assert.Equal(t, "Database connection failed", response["error"])
		// Diagnostic endpoint is the one place detail is echoed.
		assert.NotNil(t, response["details"])
	})
}
