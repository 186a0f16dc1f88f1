// File: validation.go
// Title: Configuration Validation Implementation
// Description: Implements validation for configuration values including type
//              checking, range validation, required fields and allowed values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-19 v0.2.0: Env-aware, read-only validation; OneOf rule; struct binding removed

package config

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/timetext/foundation/core/error"
)

// ValidationRule defines validation criteria for configuration values
type ValidationRule struct {
	Required bool     // Whether the field is required
	Type     string   // Expected type: "string", "int", "bool", "duration", "[]string"
	Min      *int64   // Minimum value for ints
	Max      *int64   // Maximum value for ints
	OneOf    []string // Allowed values for strings, compared case-insensitively
	Pattern  string   // Regex pattern for string validation
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err converts a failed result into a VALIDATION_FAILED error
func (r *ValidationResult) Err() error {
	if r == nil || r.Valid {
		return nil
	}
	return mdwerror.New("configuration validation failed: "+strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeValidationFailed).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// Bound returns a pointer for use in Min and Max
func Bound(v int64) *int64 {
	return &v
}

// Validate checks the effective value of each key, environment overrides
// included. Errors are reported in key order.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &ValidationResult{Valid: true}
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

func (c *Config) effectiveValue(key string) interface{} {
	if envValue, ok := c.getEnvValue(key); ok {
		return envValue
	}
	return c.getValue(key)
}

// validateField validates a single configuration field
func (c *Config) validateField(key string, rule ValidationRule) error {
	value := c.effectiveValue(key)
	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	if rule.Type != "" {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}
	if err := validateBounds(key, value, rule); err != nil {
		return err
	}
	if len(rule.OneOf) > 0 {
		if err := validateOneOf(key, value, rule.OneOf); err != nil {
			return err
		}
	}
	if rule.Pattern != "" {
		return validatePattern(key, value, rule.Pattern)
	}
	return nil
}

// validateType validates the type of a configuration value. Strings are
// accepted where they convert, since environment overrides are strings.
func validateType(key string, value interface{}, expectedType string) error {
	switch expectedType {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}

	case "int":
		if _, ok := toInt64(value); !ok {
			return fmt.Errorf("field '%s' must be an integer, got %v", key, value)
		}

	case "bool":
		switch v := value.(type) {
		case bool:
		case string:
			if _, err := strconv.ParseBool(v); err != nil {
				return fmt.Errorf("field '%s' must be a boolean, got '%s'", key, v)
			}
		default:
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}

	case "duration":
		switch v := value.(type) {
		case string:
			if _, err := parseDuration(v); err != nil {
				return fmt.Errorf("field '%s' must be a valid duration string, got '%v'", key, value)
			}
		case int, int64, time.Duration:
		default:
			return fmt.Errorf("field '%s' must be a duration, got %T", key, value)
		}

	case "[]string":
		switch value.(type) {
		case []string, []interface{}:
		default:
			return fmt.Errorf("field '%s' must be a slice of strings, got %T", key, value)
		}

	default:
		return fmt.Errorf("unknown validation type: %s", expectedType)
	}
	return nil
}

func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

// validateBounds validates numeric bounds
func validateBounds(key string, value interface{}, rule ValidationRule) error {
	if rule.Min == nil && rule.Max == nil {
		return nil
	}
	n, ok := toInt64(value)
	if !ok {
		return nil
	}
	if rule.Min != nil && n < *rule.Min {
		return fmt.Errorf("field '%s' value %d is less than minimum %d", key, n, *rule.Min)
	}
	if rule.Max != nil && n > *rule.Max {
		return fmt.Errorf("field '%s' value %d is greater than maximum %d", key, n, *rule.Max)
	}
	return nil
}

func validateOneOf(key string, value interface{}, allowed []string) error {
	s := strings.TrimSpace(fmt.Sprintf("%v", value))
	for _, a := range allowed {
		if strings.EqualFold(s, a) {
			return nil
		}
	}
	return fmt.Errorf("field '%s' value '%s' must be one of %s", key, s, strings.Join(allowed, ", "))
}

// validatePattern validates string values against regex patterns
func validatePattern(key string, value interface{}, pattern string) error {
	strValue, ok := value.(string)
	if !ok {
		return fmt.Errorf("field '%s' pattern validation requires string value", key)
	}

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid regex pattern for field '%s': %w", key, err)
	}
	if !regex.MatchString(strValue) {
		return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, strValue, pattern)
	}
	return nil
}
