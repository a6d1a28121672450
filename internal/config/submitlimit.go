package config

import "time"

// SubmitLimitConfig controls the fixed-window throttle applied to form
// submissions.  Max submissions are allowed per admin within Window; the
// counter lives in Redis under Prefix.
type SubmitLimitConfig struct {
	Enabled bool
	Max     int
	Window  time.Duration
	Prefix  string
}

// LoadSubmitLimitConfig reads SUBMIT_LIMIT_* variables, clamping nonsensical
// values to the smallest usable ones.
func LoadSubmitLimitConfig() SubmitLimitConfig {
	cfg := SubmitLimitConfig{
		Enabled: envBool("SUBMIT_LIMIT_ENABLED", true),
		Max:     envInt("SUBMIT_LIMIT_MAX", 30),
		Window:  envDur("SUBMIT_LIMIT_WINDOW", time.Minute),
		Prefix:  envStr("SUBMIT_LIMIT_PREFIX", "submit"),
	}
	if cfg.Max < 1 {
		cfg.Max = 1
	}
	if cfg.Window < time.Second {
		cfg.Window = time.Second
	}
	return cfg
}
