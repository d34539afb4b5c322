package models

import (
	"time"
)

// OTP represents a pending one-time passcode challenge for a phone number.
// At most one challenge exists per phone; requesting a new one overwrites it.
type OTP struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SendOTPRequest represents a request to issue an OTP
type SendOTPRequest struct {
	Phone string `json:"phone"`
}

// SendOTPResponse reports the OTP issuance outcome. Sent is false in dev
// mode (no SMS provider configured) and on delivery failure; issuance
// itself still succeeds.
type SendOTPResponse struct {
	OK   bool   `json:"ok"`
	Sent bool   `json:"sent"`
	Note string `json:"note,omitempty"`
}

// VerifyOTPRequest represents a request to verify an OTP
type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// VerifyOTPResponse carries the bearer token after successful verification.
// The token is the verified phone number itself; see AuthenticateUser.
type VerifyOTPResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Token   string `json:"token"`
}
