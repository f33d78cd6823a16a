package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ChurchSite/initializers"
	"github.com/ChurchSite/models"
	"github.com/doug-martin/goqu/v9"
)

const winterThemeKey = "winter_theme_enabled"

// themeSettingKey builds the site_setting key for a theme toggle. Keys are
// derived from the theme name so additional themes can be added without a
// schema change.
func themeSettingKey(theme string) string {
	return fmt.Sprintf("%s_theme_enabled", theme)
}

// GetThemes reports the current theme toggles. The flag is stored as the
// literal text "true"/"false"; anything else, including a missing row, reads
// as disabled.
func GetThemes(c *gin.Context) {
	var value string
	_, err := initializers.DB.From("site_setting").
		Select("setting_value").
		Where(goqu.C("setting_key").Eq(winterThemeKey)).
		ScanVal(&value)

	if err != nil {
		log.Printf("Failed to fetch theme settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch theme settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"themes": gin.H{
			"winter": value == "true",
		},
	})
}

// UpdateTheme flips a theme toggle. The upsert is a single
// INSERT .. ON CONFLICT statement so concurrent admins cannot lose updates.
func UpdateTheme(c *gin.Context) {
	var update models.ThemeUpdate

	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	if update.Theme == "" || update.Enabled == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields: theme, enabled"})
		return
	}

	if update.Theme != "winter" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": `Invalid theme. Only "winter" is supported.`})
		return
	}

	enabled := *update.Enabled
	value := strconv.FormatBool(enabled)
	updatedBy := update.AdminEmail
	if updatedBy == "" {
		updatedBy = "admin"
	}

	setting := models.SiteSetting{
		Setting_Key:   themeSettingKey(update.Theme),
		Setting_Value: value,
		Updated_By:    updatedBy,
	}

	upsert := initializers.DB.Insert("site_setting").
		Rows(setting).
		OnConflict(goqu.DoUpdate("setting_key", goqu.Record{
			"setting_value":   value,
			"updated_by":      updatedBy,
			"datetime_update": goqu.L("NOW()"),
		})).
		Executor()

	if _, err := upsert.Exec(); err != nil {
		log.Printf("Failed to update theme settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update theme settings"})
		return
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	log.Printf("Theme '%s' %s by %s", update.Theme, state, updatedBy)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Winter theme " + state,
		"theme":   update.Theme,
		"enabled": enabled,
	})
}
