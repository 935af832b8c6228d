package configs

import "time"

// Attribution tunes the attribution and analytics use cases.
type Attribution struct {
	// CodeAttempts is how many referral codes are drawn before a
	// collision is reported to the caller.
	CodeAttempts int `env:"CODE_ATTEMPTS" envDefault:"5"`
	// FreeTrial is the length of a brand's one-time trial.
	FreeTrial time.Duration `env:"FREE_TRIAL" envDefault:"168h"`
	// DefaultTopN is the ranking size when a report request sets none.
	DefaultTopN int `env:"DEFAULT_TOP_N" envDefault:"5"`
}

// Metrics configures the Prometheus endpoint.
type Metrics struct {
	Enabled bool   `env:"ENABLED" envDefault:"true"`
	Path    string `env:"PATH" envDefault:"/metrics"`
}
