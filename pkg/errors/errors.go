// Package errors defines the error taxonomy shared across mfdl and small
// helpers for wrapping errors with context.
package errors

import "fmt"

// Common error types.
var (
	// Share link errors.
	ErrInvalidShareLink = fmt.Errorf("not a valid MediaFire share link")

	// Remote errors.
	ErrDownloadFailed      = fmt.Errorf("download failed")
	ErrResolutionFailed    = fmt.Errorf("could not resolve direct download URL")
	ErrPaginationExhausted = fmt.Errorf("folder listing did not terminate within the page limit")

	// Path errors.
	ErrInvalidPath = fmt.Errorf("invalid path")

	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")

	// Hook errors.
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
