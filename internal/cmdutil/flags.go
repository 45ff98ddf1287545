package cmdutil

import (
	"github.com/spf13/cobra"
)

// OutputDirFlag is the --output-dir flag shared by the add and generate commands.
type OutputDirFlag struct {
	Dir string
}

// AddTo registers --output-dir with the given default.
func (f *OutputDirFlag) AddTo(cmd *cobra.Command, def, usage string) {
	cmd.Flags().StringVar(&f.Dir, "output-dir", def, usage)
}

// ResolveString returns the flag value when the user set it, otherwise the
// configured value, otherwise def.
func ResolveString(cmd *cobra.Command, flag, value, configured, def string) string {
	if cmd.Flags().Changed(flag) {
		return value
	}
	if configured != "" {
		return configured
	}
	if value != "" {
		return value
	}
	return def
}
