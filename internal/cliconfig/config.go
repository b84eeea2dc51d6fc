// Package cliconfig resolves the paycalc configuration from defaults, a TOML
// file, PAYCALC_* environment variables and command-line flags, in
// increasing order of precedence.
package cliconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bft-labs/paycalc/internal/domain"
	"github.com/bft-labs/paycalc/internal/payroll"
)

// Defaults of the input form and the export.
const (
	DefaultPercent    = "5"
	DefaultExportPath = "sueldos.csv"
	DefaultLocale     = "en"
	DefaultLogLevel   = "info"
)

// DefaultPercentPresets are the commission percentages offered by the form.
var DefaultPercentPresets = []string{"2.5", "5", "7.5", "10"}

// Config holds CLI configuration for paycalc.
type Config struct {
	DefaultPercent string   `validate:"amount"`
	PercentPresets []string `validate:"dive,amount"`
	DefaultTier    string   `validate:"oneof=Junior Senior"`

	ExportPath string `validate:"required"`
	Locale     string `validate:"required,bcp47_language_tag"`
	LogLevel   string `validate:"oneof=debug info warn error"`

	EnvFile string
	Watch   bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		DefaultPercent: DefaultPercent,
		PercentPresets: append([]string(nil), DefaultPercentPresets...),
		DefaultTier:    domain.Tiers[0].String(),
		ExportPath:     DefaultExportPath,
		Locale:         DefaultLocale,
		LogLevel:       DefaultLogLevel,
		EnvFile:        ".env",
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// amount: a form number that is valid and not negative.
	if err := v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		n := payroll.ParseNumber(fl.Field().String())
		return !payroll.IsInvalid(n) && n >= 0
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks the configuration for errors and normalizes the tier and
// log level spelling.
func (c *Config) Validate() error {
	if t, err := domain.ParseTier(c.DefaultTier); err == nil {
		c.DefaultTier = t.String()
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (value %v)", domain.ErrInvalidConfig, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}

// Tier returns the default tier. Call after Validate.
func (c Config) Tier() domain.Tier {
	t, _ := domain.ParseTier(c.DefaultTier)
	return t
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a list if not empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}

// splitList splits a list given as one string. Commas are decimal
// separators in amounts, so items are separated by semicolons or spaces.
func splitList(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t'
	})
}
