package config

import "fmt"

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateRequired checks that a string field is not empty.
func ValidateRequired(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

// ValidatePort checks that a port number is in range.
func ValidatePort(field string, port int) error {
	if port < 1 || port > 65535 {
		return &ValidationError{Field: field, Message: "must be between 1 and 65535"}
	}
	return nil
}

// Validate validates a DatabaseConfig. Credentials are required.
func (c *DatabaseConfig) Validate() error {
	if err := ValidateRequired("database.host", c.Host); err != nil {
		return err
	}
	if err := ValidatePort("database.port", c.Port); err != nil {
		return err
	}
	if err := ValidateRequired("database.user", c.User); err != nil {
		return err
	}
	if err := ValidateRequired("database.password", c.Password); err != nil {
		return err
	}
	return ValidateRequired("database.database", c.Database)
}

// Validate validates a RedisConfig.
func (c *RedisConfig) Validate() error {
	if err := ValidateRequired("redis.host", c.Host); err != nil {
		return err
	}
	if err := ValidatePort("redis.port", c.Port); err != nil {
		return err
	}
	return ValidateRequired("redis.counter_key", c.CounterKey)
}

// Validate validates a LoggingConfig.
func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Field: "logging.level", Message: "must be one of: debug, info, warn, error"}
	}
	switch c.Format {
	case "", "json", "console":
	default:
		return &ValidationError{Field: "logging.format", Message: "must be one of: json, console"}
	}
	return nil
}
