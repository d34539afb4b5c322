package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	configs := loadConfigFromEnv()

	assert.Equal(t, "campusfound", configs.App.Name)
	assert.Equal(t, 3000, configs.Server.Port)
	assert.Equal(t, "localhost", configs.Redis.Host)
	assert.Equal(t, 6379, configs.Redis.Port)
	assert.Equal(t, 5, configs.OTP.TTLMinutes)
	assert.Equal(t, 5, configs.RateLimit.OTPLimit)
	assert.Equal(t, 15, configs.RateLimit.OTPWindowMinutes)
	assert.Equal(t, 20, configs.RateLimit.PostLimit)
	assert.Equal(t, 60, configs.RateLimit.PostWindowMinutes)
	assert.False(t, configs.NewRelic.Enabled)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("OTP_TTL_MINUTES", "10")
	t.Setenv("ADMIN_PASSWORD", "supersecret")
	t.Setenv("RATE_OTP_LIMIT", "3")

	configs := loadConfigFromEnv()

	assert.Equal(t, 8080, configs.Server.Port)
	assert.Equal(t, 10, configs.OTP.TTLMinutes)
	assert.Equal(t, "supersecret", configs.Admin.Password)
	assert.Equal(t, 3, configs.RateLimit.OTPLimit)
}

func TestGetEnvAsInt_InvalidValue(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")

	assert.Equal(t, 42, GetEnvAsInt("SOME_INT", 42))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("SOME_BOOL", "true")

	assert.True(t, GetEnvAsBool("SOME_BOOL", false))
	assert.False(t, GetEnvAsBool("UNSET_BOOL", false))
}
