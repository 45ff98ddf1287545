// Package config provides configuration loading and management.
package config

// TemplatesConfig contains scaffolding settings.
type TemplatesConfig struct {
	// Dir is an on-disk template root used instead of the embedded templates.
	// Env: FASTKIT_TEMPLATES_DIR
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty" mapstructure:"dir"`

	// Default is the template used when --template is not given.
	// Env: FASTKIT_DEFAULT_TEMPLATE, Default: hello-world
	Default string `json:"default,omitempty" yaml:"default,omitempty" mapstructure:"default"`
}

// DatabaseConfig contains sample application database settings.
type DatabaseConfig struct {
	// Type is one of sqlite, postgresql, mysql.
	// Env: FASTKIT_DATABASE_TYPE, Default: sqlite
	Type string `json:"type,omitempty" yaml:"type,omitempty" mapstructure:"type"`

	// DSN is the driver connection string. Empty means the kind's default.
	// Env: FASTKIT_DATABASE_DSN
	DSN string `json:"dsn,omitempty" yaml:"dsn,omitempty" mapstructure:"dsn"`
}

// ServerConfig contains sample application HTTP settings.
type ServerConfig struct {
	// Addr is the listen address.
	// Env: FASTKIT_SERVER_ADDR, Default: 127.0.0.1:8000
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty" mapstructure:"addr"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the fastkit configuration loaded from ~/.fastkit/config.yaml.
type Config struct {
	Templates TemplatesConfig `json:"templates" yaml:"templates" mapstructure:"templates"`
	Database  DatabaseConfig  `json:"database" yaml:"database" mapstructure:"database"`
	Server    ServerConfig    `json:"server" yaml:"server" mapstructure:"server"`
	Log       LogConfig       `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`
}

// Default values.
const (
	DefaultTemplate     = "hello-world"
	DefaultDatabaseType = "sqlite"
	DefaultServerAddr   = "127.0.0.1:8000"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `fastkit config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Templates: TemplatesConfig{Default: DefaultTemplate},
		Database:  DatabaseConfig{Type: DefaultDatabaseType},
		Server:    ServerConfig{Addr: DefaultServerAddr},
	}
}

// WithDefaults fills empty fields with default values and returns c.
func (c *Config) WithDefaults() *Config {
	if c.Templates.Default == "" {
		c.Templates.Default = DefaultTemplate
	}
	if c.Database.Type == "" {
		c.Database.Type = DefaultDatabaseType
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
	return c
}
