package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate checks every field against its constraints and reports all failures at once
func Validate(cfg *Config) error {
	err := getValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// ValidateWithWarnings validates cfg and returns warnings for settings that
// are legal but probably unintended
func ValidateWithWarnings(cfg *Config) ([]string, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	var warnings []string

	if !cfg.RNGSeedSet {
		warnings = append(warnings, WarnUnseededRNG)
	}

	if cfg.Environment == "prod" && cfg.LogLevel == "DEBUG" {
		warnings = append(warnings, WarnDebugInProd)
	}

	if cfg.Sim.Workers > cfg.Sim.Actors {
		warnings = append(warnings, WarnWorkersExceedAct)
	}

	return warnings, nil
}

func invalidValue(key, raw string, err error) error {
	return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, raw, err)
}
