// Package config holds run configuration for the assessment CLI and
// validates it at the boundary, before any database or network work
// starts.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/suggestbot/assesscat/internal/ores"
	"github.com/suggestbot/assesscat/internal/wp10"
)

// Config collects everything a single assessment run needs. Values merge
// from flags, environment, and built-in defaults; flags win.
type Config struct {
	// What to assess.
	Category    string `validate:"required"`
	Target      string `validate:"required"`
	MinDistance int    `validate:"gte=0"`

	// Collaborators.
	DatabaseURL string `validate:"required"`
	ORESBaseURL string `validate:"required,url"`
	WikiID      string `validate:"required"`

	// Scoring behavior.
	BatchSize   int `validate:"gte=1,lte=50"`
	MaxAttempts int `validate:"gte=1"`
	RetryDelay  time.Duration
	Parallelism int `validate:"gte=1"`

	Verbose bool
}

// Defaults returns the built-in configuration the original tool shipped
// with. MinDistance is absent on purpose: zero is a legal value there and
// the flag layer carries its default instead.
func Defaults() Config {
	return Config{
		ORESBaseURL: ores.DefaultBaseURL,
		WikiID:      ores.DefaultWikiID,
		BatchSize:   ores.DefaultBatchSize,
		MaxAttempts: ores.DefaultMaxAttempts,
		RetryDelay:  ores.DefaultRetryDelay,
		Parallelism: ores.DefaultParallelism,
	}
}

// MergeWithDefaults returns a copy with zero-valued option fields filled
// from defaults. Category, Target, and MinDistance are never touched:
// the first two are required positionals and zero is meaningful for the
// third.
func (c Config) MergeWithDefaults(defaults Config) Config {
	result := c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ORESBaseURL == "" {
		result.ORESBaseURL = defaults.ORESBaseURL
	}
	if result.WikiID == "" {
		result.WikiID = defaults.WikiID
	}
	if result.BatchSize == 0 {
		result.BatchSize = defaults.BatchSize
	}
	if result.MaxAttempts == 0 {
		result.MaxAttempts = defaults.MaxAttempts
	}
	if result.RetryDelay == 0 {
		result.RetryDelay = defaults.RetryDelay
	}
	if result.Parallelism == 0 {
		result.Parallelism = defaults.Parallelism
	}

	return result
}

// ValidationError reports a configuration value rejected at the boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
}

var validate = validator.New()

// Validate checks ranges and enumerations. It reports the first problem
// found as a *ValidationError.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ValidationError{
				Field:   fe.Field(),
				Message: fmt.Sprintf("failed %q constraint on value %v", fe.Tag(), fe.Value()),
			}
		}
		return err
	}

	if _, err := wp10.Index(c.Target); err != nil {
		return &ValidationError{Field: "Target", Message: err.Error()}
	}
	if c.RetryDelay < 0 {
		return &ValidationError{Field: "RetryDelay", Message: "must be non-negative"}
	}

	return nil
}
