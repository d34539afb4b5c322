package models

import (
	"time"
)

// User represents a phone-verified account. Users are created lazily on the
// first successful OTP verification for their phone and keyed uniquely by it.
type User struct {
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	Blocked   bool      `json:"blocked"`
}

// AdminLoginRequest represents an admin login attempt
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminLoginResponse carries the opaque admin session token
type AdminLoginResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
}

// BlockUserRequest represents an admin request to block a user
type BlockUserRequest struct {
	AdminToken string `json:"adminToken"`
	Phone      string `json:"phone"`
}

// UsersResponse lists users for the admin surface
type UsersResponse struct {
	OK    bool    `json:"ok"`
	Users []*User `json:"users"`
}

// DeleteAccountRequest represents a user's account deletion request
type DeleteAccountRequest struct {
	Token string `json:"token"`
}

// OKResponse is the bare success envelope
type OKResponse struct {
	OK bool `json:"ok"`
}
