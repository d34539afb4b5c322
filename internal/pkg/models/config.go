package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Redis     RedisConfig
	Admin     AdminConfig
	OTP       OTPConfig
	SMS       SMSConfig
	RateLimit RateLimitConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// AdminConfig contains the admin authentication secret.
// PasswordHash (bcrypt) takes precedence over the plaintext Password;
// with neither set, admin login always fails.
type AdminConfig struct {
	Password     string
	PasswordHash string
}

// OTPConfig contains OTP challenge configuration
type OTPConfig struct {
	TTLMinutes int // challenge lifetime in minutes
}

// SMSConfig contains Twilio SMS provider configuration.
// Leaving the credentials empty is a supported mode: messages are
// logged instead of sent.
type SMSConfig struct {
	TwilioAccountSID string
	TwilioAuthToken  string
	From             string
}

// RateLimitConfig contains per-IP fixed-window throttle configuration
type RateLimitConfig struct {
	OTPLimit          int // max OTP requests per window
	OTPWindowMinutes  int
	PostLimit         int // max post creations per window
	PostWindowMinutes int
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
