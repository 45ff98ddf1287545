// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages.
package cmdtypes

import (
	"github.com/fastkit/cli/internal/config"
	oerrors "github.com/fastkit/cli/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// The root command creates it once and passes it into every sub-command
// constructor; fields are filled before any RunE executes.
type GlobalConfig struct {
	// Config is the loaded configuration with defaults applied. Never nil after startup.
	Config *config.Config

	// ConfigPath is the resolved --config path (may not exist).
	ConfigPath string

	// Verbose is the --verbose flag.
	Verbose bool
}

// Settings returns the loaded configuration, or defaults when startup was skipped.
func (g *GlobalConfig) Settings() *config.Config {
	if g == nil || g.Config == nil {
		return config.DefaultConfig()
	}
	return g.Config
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess          = oerrors.ExitSuccess
	ExitGeneralError     = oerrors.ExitGeneralError
	ExitValidationError  = oerrors.ExitValidationError
	ExitPermissionDenied = oerrors.ExitPermissionDenied
	ExitNotFound         = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
