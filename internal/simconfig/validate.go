package simconfig

import "fmt"

// ValidationError 驗證失敗 (啟動中斷)
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks all required constraints
func Validate(cfg *Config) error {
	// === Meta ===
	if cfg.Meta.Name == "" {
		return ValidationError{"meta.name", "required"}
	}
	if cfg.Meta.Timezone != "Asia/Taipei" {
		return ValidationError{"meta.timezone", `must be "Asia/Taipei"`}
	}

	// === Defaults ===
	if cfg.Defaults.Ticker == "" {
		return ValidationError{"defaults.ticker", "required"}
	}
	if len(cfg.Defaults.TriggerDays) == 0 {
		return ValidationError{"defaults.trigger_days", "at least one day required"}
	}
	seen := make(map[int]bool, len(cfg.Defaults.TriggerDays))
	for _, day := range cfg.Defaults.TriggerDays {
		if day < 1 || day > 31 {
			return ValidationError{"defaults.trigger_days", fmt.Sprintf("day %d out of range 1-31", day)}
		}
		if seen[day] {
			return ValidationError{"defaults.trigger_days", fmt.Sprintf("day %d duplicated", day)}
		}
		seen[day] = true
	}
	if cfg.Defaults.Amount <= 0 {
		return ValidationError{"defaults.amount", "must be > 0"}
	}
	if cfg.Defaults.LookbackYears < 1 || cfg.Defaults.LookbackYears > 30 {
		return ValidationError{"defaults.lookback_years", "must be in [1, 30]"}
	}
	if cfg.Defaults.Interval != "1d" {
		return ValidationError{"defaults.interval", `only "1d" is supported`}
	}

	return nil
}
