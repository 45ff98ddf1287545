// Package cmdutil provides helpers shared by the fastkit sub-commands:
// exit code wrapping, common flags and result reporting.
package cmdutil

import (
	"errors"

	oerrors "github.com/fastkit/cli/internal/errors"
)

// Exit wraps err in an ExitError whose code is derived from its sentinel.
// Errors that already carry an exit code are returned unchanged.
func Exit(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
}

// Validation returns a validation ExitError for a bad flag or argument.
func Validation(message, field, hint string) error {
	return oerrors.NewExitError(oerrors.NewValidationError(message, field, hint), oerrors.ExitValidationError)
}
