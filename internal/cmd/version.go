package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fastkit/cli/internal/cmdtypes"
	"github.com/fastkit/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show fastkit version information.

Displays the CLI version, commit, build date, Go version and platform.`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(c *cobra.Command, _ []string) error {
	info := version.Get()
	out := c.OutOrStdout()

	fmt.Fprintf(out, "fastkit version %s\n", info.Version)
	fmt.Fprintf(out, "  Commit:    %s\n", info.GitCommit)
	fmt.Fprintf(out, "  Built:     %s\n", info.BuildDate)
	fmt.Fprintf(out, "  Go:        %s\n", info.GoVersion)
	fmt.Fprintf(out, "  Platform:  %s\n", info.Platform)

	return nil
}
