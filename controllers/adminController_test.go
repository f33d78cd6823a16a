package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ChurchSite/models"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var adminColumns = []string{
	"admin_user_id", "name", "email", "password_hash",
	"is_active", "datetime_last_login", "datetime_create",
}

func adminRow(admin models.AdminUser) *sqlmock.Rows {
	return sqlmock.NewRows(adminColumns).AddRow(
		admin.Admin_User_ID, admin.Name, admin.Email, admin.Password_Hash,
		admin.Is_Active, admin.Datetime_Last_Login, admin.Datetime_Create,
	)
}

// Test AdminLogin - credential verification without user enumeration
func TestAdminLogin(t *testing.T) {
	tests := []struct {
		name            string
		body            map[string]interface{}
		storedAdmin     *models.AdminUser
		expectLastLogin bool
		expectedStatus  int
	}{
		{
			name:            "valid credentials",
			body:            map[string]interface{}{"email": "admin@example.com", "password": "password123"},
			storedAdmin:     adminPtr(MockAdminUser()),
			expectLastLogin: true,
			expectedStatus:  http.StatusOK,
		},
		{
			name:           "wrong password",
			body:           map[string]interface{}{"email": "admin@example.com", "password": "wrong"},
			storedAdmin:    adminPtr(MockAdminUser()),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown email",
			body:           map[string]interface{}{"email": "nobody@example.com", "password": "password123"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "deactivated account",
			body:           map[string]interface{}{"email": "former-admin@example.com", "password": "password123"},
			storedAdmin:    adminPtr(MockInactiveAdminUser()),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing password",
			body:           map[string]interface{}{"email": "admin@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing email",
			body:           map[string]interface{}{"password": "password123"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.expectedStatus != http.StatusBadRequest {
				rows := sqlmock.NewRows(adminColumns)
				if tt.storedAdmin != nil {
					rows = adminRow(*tt.storedAdmin)
				}
				mock.ExpectQuery(`SELECT .* FROM "admin_user" WHERE \("email" = '.*'\)`).
					WillReturnRows(rows)
			}
			if tt.expectLastLogin {
				mock.ExpectExec(`UPDATE "admin_user" SET "datetime_last_login"=NOW\(\)`).
					WillReturnResult(sqlmock.NewResult(0, 1))
			}

			c, w := SetupTestContext()
			bodyBytes, _ := json.Marshal(tt.body)
			c.Request = httptest.NewRequest("POST", "/admin/login", bytes.NewBuffer(bodyBytes))
			c.Request.Header.Set("Content-Type", "application/json")

			AdminLogin(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)

			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, true, response["success"])
				admin := response["admin"].(map[string]interface{})
				assert.Equal(t, float64(1), admin["id"])
				assert.Equal(t, "Site Admin", admin["name"])
				assert.Equal(t, "admin@example.com", admin["email"])
				// The hash must never appear in a response.
				assert.NotContains(t, w.Body.String(), "password_hash")
				assert.NotContains(t, w.Body.String(), "$2a$")
			} else {
				assert.Equal(t, false, response["success"])
				assert.NotNil(t, response["error"])
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAdminLoginFailuresAreIdentical(t *testing.T) {
	responses := make([]string, 0, 2)

	for _, body := range []map[string]interface{}{
		{"email": "nobody@example.com", "password": "password123"},
		{"email": "admin@example.com", "password": "wrong"},
	} {
		_, mock, cleanup := SetupTestDB(t)

		rows := sqlmock.NewRows(adminColumns)
		if body["email"] == "admin@example.com" {
			rows = adminRow(MockAdminUser())
		}
		mock.ExpectQuery("SELECT").WillReturnRows(rows)

		c, w := SetupTestContext()
		bodyBytes, _ := json.Marshal(body)
		c.Request = httptest.NewRequest("POST", "/admin/login", bytes.NewBuffer(bodyBytes))
		c.Request.Header.Set("Content-Type", "application/json")

		AdminLogin(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		responses = append(responses, w.Body.String())
		cleanup()
	}

	assert.Equal(t, responses[0], responses[1])
}

func adminPtr(admin models.AdminUser) *models.AdminUser {
	return &admin
}
