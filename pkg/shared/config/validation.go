package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/scan-io-git/envlint/internal/checks"
)

// ValidateConfig checks if the global configurations have valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("YAML global config: %w", err)
	}
	if err := ValidateChecksConfig(&cfg.Checks); err != nil {
		return fmt.Errorf("YAML global config: checks directive is invalid: %w", err)
	}
	return nil
}

// ValidateChecksConfig rejects skip entries that do not name a known check.
func ValidateChecksConfig(checksConfig *Checks) error {
	if checksConfig == nil {
		return fmt.Errorf("checks configuration is nil")
	}
	for _, name := range checksConfig.Skip {
		if !checks.IsKnown(name) {
			return fmt.Errorf("unknown check %q in skip list, available checks: %v", name, checks.Names())
		}
	}
	return nil
}
