// Package config provides the fastkit config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/fastkit/cli/internal/cmdtypes"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the fastkit CLI.`,
	}

	c.AddCommand(
		newInitCmd(cfg),
		newShowCmd(cfg),
	)

	return c
}
