// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/firetime/lib/businessday"
)

// EnvironmentVariable names the configuration file for Load.
const EnvironmentVariable = "FIRETIME_CONFIG"

// Config is the firetime command configuration. Every field has a
// command-line flag that overrides it.
type Config struct {
	// Location is the IANA time zone schedules are evaluated in.
	// "Local" selects the system zone.
	// Default: Local
	Location string `yaml:"location" json:"location"`

	// Weekends lists the weekdays that are never business days, by
	// English name ("sat", "Sunday").
	// Default: [sat, sun]
	Weekends []string `yaml:"weekends" json:"weekends"`

	// Holidays lists additional non-business dates as YYYY-MM-DD.
	Holidays []string `yaml:"holidays" json:"holidays"`

	// HolidaysFile names a YAML or JSONC file holding a list of
	// YYYY-MM-DD dates, merged into Holidays on load. Relative paths
	// resolve against the directory of the configuration file.
	// ${VAR} and ${VAR:-default} are expanded; ${CONFIG_DIR} is the
	// configuration file's directory.
	HolidaysFile string `yaml:"holidays_file" json:"holidays_file"`

	// Adjustment is the business-day policy: "skip" or a signed number
	// of business days.
	// Default: skip
	Adjustment string `yaml:"adjustment" json:"adjustment"`

	// Count is how many fire times next and business print.
	// Default: 5
	Count int `yaml:"count" json:"count"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Location:   "Local",
		Weekends:   []string{"sat", "sun"},
		Adjustment: "skip",
		Count:      5,
	}
}

// Load loads configuration from the file named by FIRETIME_CONFIG.
//
// There are no fallbacks and no file discovery: if the variable is not
// set, Load fails.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your firetime config file, or use --config flag", EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, layered over
// Default. Files ending in .json or .jsonc may contain comments and
// trailing commas; anything else is read as YAML.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := decodeFile(path, cfg); err != nil {
		return nil, err
	}

	cfg.expandVariables(filepath.Dir(path))

	if cfg.HolidaysFile != "" {
		holidaysPath := cfg.HolidaysFile
		if !filepath.IsAbs(holidaysPath) {
			holidaysPath = filepath.Join(filepath.Dir(path), holidaysPath)
		}
		var dates []string
		if err := decodeFile(holidaysPath, &dates); err != nil {
			return nil, fmt.Errorf("loading holidays_file: %w", err)
		}
		cfg.Holidays = append(cfg.Holidays, dates...)
	}

	return cfg, nil
}

// decodeFile reads path into out. Files ending in .json or .jsonc have
// comments and trailing commas stripped and are decoded as JSON;
// anything else is YAML.
func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), out)
	default:
		err = yaml.Unmarshal(data, out)
	}
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in the
// holidays file path.
func (c *Config) expandVariables(configDir string) {
	vars := map[string]string{
		"CONFIG_DIR": configDir,
		"HOME":       os.Getenv("HOME"),
	}
	c.HolidaysFile = expandVars(c.HolidaysFile, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// TimeLocation resolves Location. An empty value or "Local" is the
// system zone.
func (c *Config) TimeLocation() (*time.Location, error) {
	if c.Location == "" || c.Location == "Local" {
		return time.Local, nil
	}
	location, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("location: %w", err)
	}
	return location, nil
}

// Calendar builds the business-day calendar from Weekends and Holidays.
func (c *Config) Calendar() (businessday.Calendar, error) {
	weekends, err := businessday.ParseWeekends(c.Weekends)
	if err != nil {
		return nil, fmt.Errorf("weekends: %w", err)
	}
	if len(c.Holidays) == 0 {
		return weekends, nil
	}
	dates, err := businessday.ParseDates(c.Holidays)
	if err != nil {
		return nil, fmt.Errorf("holidays: %w", err)
	}
	return businessday.WithHolidays(weekends, dates...), nil
}

// BusinessAdjustment parses Adjustment.
func (c *Config) BusinessAdjustment() (businessday.Adjustment, error) {
	adjustment, err := businessday.ParseAdjustment(c.Adjustment)
	if err != nil {
		return businessday.Adjustment{}, fmt.Errorf("adjustment: %w", err)
	}
	return adjustment, nil
}

// Validate checks the configuration for errors and reports all of them.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.TimeLocation(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Calendar(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.BusinessAdjustment(); err != nil {
		errs = append(errs, err)
	}
	if c.Count < 1 {
		errs = append(errs, fmt.Errorf("count must be at least 1, got %d", c.Count))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
