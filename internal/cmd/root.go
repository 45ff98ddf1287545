// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fastkit/cli/internal/cmd/add"
	configcmd "github.com/fastkit/cli/internal/cmd/config"
	"github.com/fastkit/cli/internal/cmd/generate"
	"github.com/fastkit/cli/internal/cmd/project"
	"github.com/fastkit/cli/internal/cmd/serve"
	"github.com/fastkit/cli/internal/cmdtypes"
	"github.com/fastkit/cli/internal/config"
	"github.com/fastkit/cli/internal/output"
)

// rootFlags are the persistent flags of the root command.
type rootFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the fastkit CLI.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "fastkit",
		Short: "FastAPI project scaffolding toolkit",
		Long: `fastkit creates FastAPI projects from embedded templates and adds
authentication, database and CRUD code to existing projects.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return initializeGlobals(c, flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: FASTKIT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(
		project.NewNewCmd(cfg),
		project.NewTemplatesCmd(cfg),
		add.NewAddCmd(cfg),
		generate.NewGenerateCmd(cfg),
		serve.NewServeCmd(cfg),
		configcmd.NewConfigCmd(cfg),
		NewVersionCmd(cfg),
	)

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(c *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	configPath := flags.config
	if configPath == "" {
		if p, err := config.GetConfigFile(); err == nil {
			configPath = p
		}
	}

	loaded, loadErr := config.NewLoader().LoadWithDefaults(configPath)
	if loadErr != nil {
		// Commands that do not need config still work.
		loaded = config.DefaultConfig()
	}

	cfg.Config = loaded
	cfg.ConfigPath = configPath
	cfg.Verbose = flags.verbose

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring config file", "path", configPath, "error", loadErr)
	}

	output.Debug("initializing CLI",
		"config", configPath,
		"templates.dir", loaded.Templates.Dir,
		"templates.default", loaded.Templates.Default,
		"database.type", loaded.Database.Type,
		"server.addr", loaded.Server.Addr,
	)

	return nil
}
