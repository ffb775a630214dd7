package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/rosterkit/rosterkit/pkg/core/model"
)

// HolidayConfig declares which dates count as holidays: recurrence
// rules (e.g. FREQ=WEEKLY;BYDAY=SA,SU) expanded over the target month,
// plus explicit one-off dates.
type HolidayConfig struct {
	RRules []string `yaml:"rrules,omitempty"`
	Dates  []string `yaml:"dates,omitempty" validate:"dive,datetime=2006-01-02"`
}

// Config represents the application configuration
type Config struct {
	Month           string               `yaml:"month" validate:"required,datetime=2006-01"`
	ScheduleFile    string               `yaml:"scheduleFile" validate:"required"`
	ShiftLabels     map[string]string    `yaml:"shiftLabels,omitempty"`
	Holidays        HolidayConfig        `yaml:"holidays,omitempty"`
	EmployeeRules   []model.EmployeeRule `yaml:"employeeRules,omitempty"`
	ShiftRules      []model.ShiftRule    `yaml:"shiftRules,omitempty"`
	DefaultStrategy string               `yaml:"defaultStrategy,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from rosterkit.yaml.
// It looks for the config file in the current directory first, then in
// the user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, shift kinds, and
// holiday rrule syntax. Rule kinds are deliberately not validated here:
// the engine skips unknown kinds so a config written for a newer rule
// set still validates.
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for kind := range cfg.ShiftLabels {
		if !model.ShiftKind(kind).IsValid() {
			return fmt.Errorf("unknown shift kind %q in shiftLabels", kind)
		}
	}

	for i, rule := range cfg.ShiftRules {
		if !rule.Shift.IsValid() {
			return fmt.Errorf("unknown shift kind %q in shiftRules[%d]", rule.Shift, i)
		}
	}

	// Validate rrule syntax for each holiday rule
	for i, raw := range cfg.Holidays.RRules {
		if _, err := rrule.StrToROption(raw); err != nil {
			return fmt.Errorf("invalid rrule in holidays.rrules[%d]: %w", i, err)
		}
	}

	return nil
}

// Window returns the configured target month.
func (c *Config) Window() (int, time.Month, error) {
	t, err := time.Parse("2006-01", c.Month)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: %w", c.Month, err)
	}
	return t.Year(), t.Month(), nil
}

// Labels converts the configured shift label table.
func (c *Config) Labels() model.ShiftLabels {
	if len(c.ShiftLabels) == 0 {
		return nil
	}
	labels := make(model.ShiftLabels, len(c.ShiftLabels))
	for kind, label := range c.ShiftLabels {
		labels[model.ShiftKind(kind)] = label
	}
	return labels
}

// Conditions assembles the configured rule set.
func (c *Config) Conditions() model.Conditions {
	return model.Conditions{
		EmployeeRules: c.EmployeeRules,
		ShiftRules:    c.ShiftRules,
	}
}

// findConfigFile searches for rosterkit.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "rosterkit.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
