package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-donor/internal/config"
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
		{"DefaultSheetURL", config.DefaultSheetURL},
		{"ICalProdid", config.ICalProdid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 120, config.DefaultEligibilityDays, "Donation interval is 120 days unless configured")
	assert.GreaterOrEqual(t, config.DefaultEligibilityDays, config.MinEligibilityDays)
	assert.LessOrEqual(t, config.DefaultEligibilityDays, config.MaxEligibilityDays)
	assert.Equal(t, 30*time.Second, config.HTTPTimeout)
}

// TestGvizWrapper documents the wrapper lengths against the real gviz envelope.
func TestGvizWrapper(t *testing.T) {
	prefix := "/*O_o*/\ngoogle.visualization.Query.setResponse("
	assert.Len(t, prefix, config.GvizPrefixLen)
	assert.Len(t, ");", config.GvizSuffixLen)
}

// TestRowLayout keeps the positional schema consistent.
func TestRowLayout(t *testing.T) {
	assert.Equal(t, config.ColMobile+1, config.MinRowCells)
	assert.Greater(t, config.ColLastDonation, config.ColMobile, "Last donation is the optional trailing cell")
	assert.Len(t, config.PDFHeaders, len(config.PDFColumnWidths))
	assert.Len(t, config.PDFHeaders, config.ResultColumns)
}

// TestUserAgent_Format ensures the UA string follows the standard format.
func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Go-Donor/"), "UserAgent must start with AppName/")
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("GODONOR_SHEET_URL", "https://example.com/gviz")
	t.Setenv("GODONOR_DEBUG", "true")
	t.Setenv("GODONOR_ELIGIBILITY_DAYS", "90")

	env, err := config.LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/gviz", env.SheetURL)
	assert.True(t, env.Debug)
	assert.Equal(t, 90, env.EligibilityDays)
	assert.Empty(t, env.Language)
}

func TestLoadEnv_Invalid(t *testing.T) {
	t.Setenv("GODONOR_ELIGIBILITY_DAYS", "ninety")

	_, err := config.LoadEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrEnvConfig)
}

func TestResolveSheetURL(t *testing.T) {
	tests := []struct {
		name            string
		flag, env, pref string
		want            string
	}{
		{"Default", "", "", "", config.DefaultSheetURL},
		{"Preference", "", "", "https://pref", "https://pref"},
		{"EnvBeatsPreference", "", "https://env", "https://pref", "https://env"},
		{"FlagBeatsAll", "https://flag", "https://env", "https://pref", "https://flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, config.ResolveSheetURL(tt.flag, tt.env, tt.pref))
		})
	}
}

func TestClampEligibilityDays(t *testing.T) {
	assert.Equal(t, 90, config.ClampEligibilityDays(90))
	assert.Equal(t, config.DefaultEligibilityDays, config.ClampEligibilityDays(0))
	assert.Equal(t, config.DefaultEligibilityDays, config.ClampEligibilityDays(-5))
	assert.Equal(t, config.DefaultEligibilityDays, config.ClampEligibilityDays(config.MaxEligibilityDays+1))
}
