package models

import "time"

// SiteSetting is a key/value row for global toggles. Values are stored as
// text ("true"/"false" for the theme flags) to stay compatible with rows
// written by earlier deployments.
type SiteSetting struct {
	Site_Setting_ID int       `json:"id" goqu:"skipinsert"`
	Setting_Key     string    `json:"key"`
	Setting_Value   string    `json:"value"`
	Updated_By      string    `json:"updatedBy"`
	Datetime_Update time.Time `json:"updatedAt" goqu:"skipinsert"`
}

type ThemeUpdate struct {
	Theme      string `json:"theme"`
	Enabled    *bool  `json:"enabled"`
	AdminEmail string `json:"adminEmail"`
}
