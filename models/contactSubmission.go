package models

import "time"

type ContactSubmission struct {
	Contact_Submission_ID int       `json:"id" goqu:"skipinsert"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	Phone                 *string   `json:"phone"`
	Subject               string    `json:"subject"`
	Message               string    `json:"message"`
	Language              string    `json:"language"`
	Status                string    `json:"status"`
	Datetime_Create       time.Time `json:"createdAt" goqu:"skipinsert"`
}

type ContactSubmissionCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Language string `json:"language"`
}
