package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-yourage/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"QueryKeyName", config.QueryKeyName},
		{"QueryKeyBirthday", config.QueryKeyBirthday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestAgeApproximations pins the fixed-length units of the breakdown.
// Changing these silently alters every displayed number.
func TestAgeApproximations(t *testing.T) {
	assert.Equal(t, 86400, config.SecondsPerDay)
	assert.Equal(t, 3600, config.SecondsPerHour)
	assert.Equal(t, 60, config.SecondsPerMinute)
	assert.Equal(t, 365, config.DaysPerYear, "Years are a fixed 365 days, not calendar-aware")
	assert.Equal(t, 30, config.DaysPerMonth, "Months are a fixed 30 days")
	assert.Equal(t, time.Second, config.TickPeriod)
}

func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Go-YourAge/"), "UserAgent must start with AppName/")
}

func TestTimeouts(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")
	assert.Greater(t, config.ServerReadTimeout, 0*time.Second)
	assert.Greater(t, config.MaxFormBytes, 0)
	assert.Greater(t, config.ActionBufferSize, 0, "Dispatch must not deadlock on an unbuffered queue")
}
