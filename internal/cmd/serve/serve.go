// Package serve provides the fastkit serve command, which runs the sample
// Task Management API.
package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/fastkit/cli/internal/cmdtypes"
	"github.com/fastkit/cli/internal/cmdutil"
	"github.com/fastkit/cli/internal/database"
	"github.com/fastkit/cli/internal/output"
	"github.com/fastkit/cli/internal/server"
	"github.com/fastkit/cli/internal/tasks"
)

// DefaultDatabaseName names the sqlite file when no DSN is given.
const DefaultDatabaseName = "tasks"

// serveOptions holds the flags for the serve command.
type serveOptions struct {
	addr   string
	dbType string
	dsn    string
	memory bool
}

// NewServeCmd creates the serve command.
func NewServeCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &serveOptions{}

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the sample Task Management API",
		Long: `Run the sample Task Management API.

Tasks are stored through GORM in sqlite (default), postgresql or mysql, or
in memory with --memory. Tables are created at startup. The server stops
gracefully on SIGINT or SIGTERM.

Endpoints:
  GET    /              API info
  GET    /health        Health check
  POST   /tasks/        Create a task
  GET    /tasks/        List tasks (?skip=0&limit=100)
  GET    /tasks/{id}    Get a task
  PUT    /tasks/{id}    Replace a task
  PATCH  /tasks/{id}    Update some fields of a task
  DELETE /tasks/{id}    Delete a task
  GET    /metrics       Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runServe(c, cfg, opts)
		},
	}

	c.Flags().StringVar(&opts.addr, "addr", "", "Listen address (env: FASTKIT_SERVER_ADDR, default 127.0.0.1:8000)")
	c.Flags().StringVar(&opts.dbType, "db-type", "",
		fmt.Sprintf("Database type: %s (env: FASTKIT_DATABASE_TYPE, default sqlite)", strings.Join(database.KindNames(), ", ")))
	c.Flags().StringVar(&opts.dsn, "dsn", "", "Database connection string (env: FASTKIT_DATABASE_DSN)")
	c.Flags().BoolVar(&opts.memory, "memory", false, "Keep tasks in memory instead of a database")

	return c
}

func runServe(c *cobra.Command, cfg *cmdtypes.GlobalConfig, opts *serveOptions) error {
	settings := cfg.Settings()

	addr := cmdutil.ResolveString(c, "addr", opts.addr, settings.Server.Addr, "127.0.0.1:8000")
	storage := storageOptions{
		memory: opts.memory,
		dbType: cmdutil.ResolveString(c, "db-type", opts.dbType, settings.Database.Type, string(database.SQLite)),
		dsn:    cmdutil.ResolveString(c, "dsn", opts.dsn, settings.Database.DSN, ""),
	}

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, storage)
	if err != nil {
		return cmdutil.Exit(err)
	}
	defer closeRepo()

	srv := server.New(tasks.NewService(repo), server.Options{})

	fmt.Fprintf(c.OutOrStdout(), "Serving Task Management API on %s\n",
		output.StyleNoun.Render("http://"+addr))

	return cmdutil.Exit(srv.Run(ctx, addr))
}

// storageOptions selects the task repository.
type storageOptions struct {
	memory bool
	dbType string
	dsn    string
}

// openRepository builds the repository described by opts and returns a closer.
func openRepository(ctx context.Context, opts storageOptions) (tasks.Repository, func(), error) {
	if opts.memory {
		output.Info("using in-memory task storage")
		return tasks.NewMemoryRepository(), func() {}, nil
	}

	kind, err := database.ParseKind(opts.dbType)
	if err != nil {
		return nil, nil, err
	}
	dsn := opts.dsn
	if dsn == "" {
		dsn = kind.DefaultDSN(DefaultDatabaseName)
	}

	dbOpts := database.DefaultOptions(kind, dsn)
	dbOpts.Logger = output.ScopedLogger("db")

	db, err := database.Open(ctx, dbOpts)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := database.Close(db); err != nil {
			output.Warn("closing database", "error", err)
		}
	}

	repo := tasks.NewGormRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		closeDB()
		return nil, nil, err
	}

	output.Info("connected to database", "type", kind, "tables", tableNames(db))
	return repo, closeDB, nil
}

func tableNames(db *gorm.DB) string {
	names, err := db.Migrator().GetTables()
	if err != nil {
		return ""
	}
	return strings.Join(names, ",")
}
