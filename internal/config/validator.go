package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks every field constraint and reports all failures at once
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%s: %w", ErrMsgInvalidEnv, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%s: %s", ErrMsgInvalidEnv, strings.Join(fields, ", "))
}

// Warnings returns non-critical issues, like secrets left at their example values
func (c *Config) Warnings() []string {
	var warnings []string

	if c.UsesPostgres() && c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if c.DelegateRolls && c.PromptTimeout < MinRecommendedPromptTimeout {
		warnings = append(warnings, fmt.Sprintf("PROMPT_TIMEOUT %s is short - remote participants may not answer in time", c.PromptTimeout))
	}

	return warnings
}
