package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options holds configuration for GORM connections.
type Options struct {
	Kind            Kind
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration

	// Logger receives GORM logs. nil silences them.
	Logger *log.Logger
}

// DefaultOptions returns pool defaults for kind.
func DefaultOptions(kind Kind, dsn string) Options {
	opts := Options{
		Kind:            kind,
		DSN:             dsn,
		MaxIdleConns:    10,
		MaxOpenConns:    100,
		ConnMaxLifetime: time.Hour,
	}
	// sqlite serializes writers, and every connection to :memory: is a new database
	if kind == SQLite {
		opts.MaxIdleConns = 1
		opts.MaxOpenConns = 1
	}
	return opts
}

// Dialector returns the GORM dialector for kind.
func Dialector(kind Kind, dsn string) (gorm.Dialector, error) {
	switch kind {
	case MySQL:
		return mysql.Open(dsn), nil
	case PostgreSQL:
		return postgres.Open(dsn), nil
	case SQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", kind)
	}
}

// Open opens and pings a GORM connection.
func Open(ctx context.Context, opts Options) (*gorm.DB, error) {
	if opts.DSN == "" {
		return nil, fmt.Errorf("DSN is required")
	}

	dialector, err := Dialector(opts.Kind, opts.DSN)
	if err != nil {
		return nil, err
	}

	var gormLogger logger.Interface = logger.Default.LogMode(logger.Silent)
	if opts.Logger != nil {
		gormLogger = &gormLogAdapter{logger: opts.Logger, slow: 200 * time.Millisecond}
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", opts.Kind, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting underlying sql.DB: %w", err)
	}

	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// Close closes the connection pool behind db.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("getting underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// gormLogAdapter forwards GORM logs to a charmbracelet logger.
type gormLogAdapter struct {
	logger *log.Logger
	slow   time.Duration
}

func (l *gormLogAdapter) LogMode(logger.LogLevel) logger.Interface {
	return l
}

func (l *gormLogAdapter) Info(_ context.Context, msg string, data ...interface{}) {
	l.logger.Info(fmt.Sprintf(msg, data...))
}

func (l *gormLogAdapter) Warn(_ context.Context, msg string, data ...interface{}) {
	l.logger.Warn(fmt.Sprintf(msg, data...))
}

func (l *gormLogAdapter) Error(_ context.Context, msg string, data ...interface{}) {
	l.logger.Error(fmt.Sprintf(msg, data...))
}

func (l *gormLogAdapter) Trace(_ context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logger.Warn("query failed", "sql", sql, "err", err, "duration", elapsed)
	case elapsed > l.slow:
		l.logger.Warn("slow query", "sql", sql, "rows", rows, "duration", elapsed)
	default:
		l.logger.Debug("query", "sql", sql, "rows", rows, "duration", elapsed)
	}
}
