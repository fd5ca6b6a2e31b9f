package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "solver.workers")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// maxWorkers is a sanity bound on solver parallelism; the task batch is the
// practical unit of work and anything beyond this is a typo.
const maxWorkers = 256

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validatePaths()...)
	errors = append(errors, c.validateSolver()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateReport()...)

	return errors
}

func (c *Config) validatePaths() []ValidationError {
	var errors []ValidationError

	if c.Paths.Input == "" {
		errors = append(errors, ValidationError{
			Field:   "paths.input",
			Value:   c.Paths.Input,
			Message: "input path must not be empty",
		})
	}
	if c.Paths.Output == "" {
		errors = append(errors, ValidationError{
			Field:   "paths.output",
			Value:   c.Paths.Output,
			Message: "output path must not be empty",
		})
	}

	return errors
}

func (c *Config) validateSolver() []ValidationError {
	var errors []ValidationError

	if c.Solver.Workers < 0 || c.Solver.Workers > maxWorkers {
		errors = append(errors, ValidationError{
			Field:   "solver.workers",
			Value:   c.Solver.Workers,
			Message: fmt.Sprintf("workers must be between 0 and %d", maxWorkers),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("level must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateReport() []ValidationError {
	var errors []ValidationError

	if c.Report.Width < 0 {
		errors = append(errors, ValidationError{
			Field:   "report.width",
			Value:   c.Report.Width,
			Message: "width must not be negative",
		})
	}

	return errors
}
