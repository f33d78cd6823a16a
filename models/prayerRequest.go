package models

import "time"

type PrayerRequest struct {
	Prayer_Request_ID int       `json:"id" goqu:"skipinsert"`
	Name              *string   `json:"name"`
	Email             *string   `json:"email"`
	Phone             *string   `json:"phone"`
	Request_Text      string    `json:"requestText"`
	Is_Anonymous      bool      `json:"isAnonymous"`
	Language          string    `json:"language"`
	Status            string    `json:"status"`
	Datetime_Create   time.Time `json:"createdAt" goqu:"skipinsert"`
}

type PrayerRequestCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
	Language string `json:"language"`
}
