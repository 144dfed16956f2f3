package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvOverrides holds settings that can be forced from the environment,
// e.g. GODONOR_SHEET_URL or GODONOR_ELIGIBILITY_DAYS.
// Zero values mean "not set" and leave the user preference untouched.
type EnvOverrides struct {
	SheetURL        string `split_words:"true"`
	Debug           bool
	EligibilityDays int `split_words:"true"`
	Language        string
}

// LoadEnv reads the GODONOR_* environment variables.
func LoadEnv() (EnvOverrides, error) {
	var env EnvOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return EnvOverrides{}, fmt.Errorf("%s: %w", ErrEnvConfig, err)
	}
	return env, nil
}

// ResolveSheetURL applies the precedence flag > env > preference > default.
func ResolveSheetURL(flagValue, envValue, prefValue string) string {
	for _, v := range []string{flagValue, envValue, prefValue} {
		if v != "" {
			return v
		}
	}
	return DefaultSheetURL
}

// ClampEligibilityDays returns days when it lies within the accepted range,
// the default interval otherwise.
func ClampEligibilityDays(days int) int {
	if days < MinEligibilityDays || days > MaxEligibilityDays {
		return DefaultEligibilityDays
	}
	return days
}
