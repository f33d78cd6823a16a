package models

import "time"

type AdminUser struct {
	Admin_User_ID       int        `json:"id" goqu:"skipinsert"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Password_Hash       string     `json:"-"`
	Is_Active           bool       `json:"isActive"`
	Datetime_Last_Login *time.Time `json:"lastLoginAt"`
	Datetime_Create     time.Time  `json:"createdAt" goqu:"skipinsert"`
}

type AdminLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminIdentity is the only shape returned to a successful login caller.
// The password hash never leaves the server.
type AdminIdentity struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
