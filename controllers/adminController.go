package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChurchSite/initializers"
	"github.com/ChurchSite/models"
	"github.com/doug-martin/goqu/v9"
	"golang.org/x/crypto/bcrypt"
)

// AdminLogin verifies admin credentials. Unknown email, deactivated account,
// and wrong password all produce the identical 401 body so callers cannot
// enumerate accounts. No session token is issued; session management belongs
// to the caller.
func AdminLogin(c *gin.Context) {
	var login models.AdminLogin

	if err := c.ShouldBindJSON(&login); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and password are required"})
		return
	}

	if login.Email == "" || login.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and password are required"})
		return
	}

	var admin models.AdminUser
	found, err := initializers.DB.From("admin_user").
		Where(goqu.C("email").Eq(login.Email)).
		ScanStruct(&admin)

	if err != nil {
		log.Printf("Failed to look up admin user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Login failed"})
		return
	}

	if !found || !admin.Is_Active {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password_Hash), []byte(login.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
		return
	}

	update := initializers.DB.Update("admin_user").
		Set(goqu.Record{"datetime_last_login": goqu.L("NOW()")}).
		Where(goqu.C("admin_user_id").Eq(admin.Admin_User_ID)).
		Executor()

	if _, err := update.Exec(); err != nil {
		log.Printf("Failed to update last login time: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Login failed"})
		return
	}

	log.Printf("Admin login successful: %s", admin.Email)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"admin": models.AdminIdentity{
			ID:    admin.Admin_User_ID,
			Name:  admin.Name,
			Email: admin.Email,
		},
	})
}
