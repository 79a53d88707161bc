package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const VERSION = "1.4"

// Config is the runtime configuration of a seedgen invocation. Generation
// tables live separately in GenerationConfig; this only covers what varies
// between runs.
type Config struct {
	Profile     string
	Seed        int64
	Output      OutputConfig
	Database    DatabaseConfig
	LogLevel    string
	Environment string
	Version     string
}

// OutputConfig controls where and how collections are written.
type OutputConfig struct {
	Dir     string
	Formats []string // any of: csv, ndjson, sql

	// NullProbability is the chance an optional free-text field is left
	// null in the generated records.
	NullProbability float64
}

// DatabaseConfig holds the optional Postgres target for direct loading.
// Loading is skipped when DSN is empty.
type DatabaseConfig struct {
	DSN       string
	BatchSize int
}

// LoadOptions contains options for loading configuration.
type LoadOptions struct {
	EnvFile string // Optional environment file to load (e.g., ".env", ".env.test")
}

// Load loads the configuration with default options.
func Load() (*Config, error) {
	// Try to load .env file but don't require it
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options.
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("PROFILE", "small")
	v.SetDefault("SEED", 0)
	v.SetDefault("OUTPUT_DIR", "./out")
	v.SetDefault("OUTPUT_FORMATS", "csv")
	v.SetDefault("NULL_PROBABILITY", 0.1)
	v.SetDefault("PG_DSN", "")
	v.SetDefault("PG_BATCH_SIZE", 500)
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)

	// Load environment file if specified
	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	// Read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		Profile: v.GetString("PROFILE"),
		Seed:    v.GetInt64("SEED"),
		Output: OutputConfig{
			Dir:             v.GetString("OUTPUT_DIR"),
			Formats:         splitFormats(v.GetString("OUTPUT_FORMATS")),
			NullProbability: v.GetFloat64("NULL_PROBABILITY"),
		},
		Database: DatabaseConfig{
			DSN:       v.GetString("PG_DSN"),
			BatchSize: v.GetInt("PG_BATCH_SIZE"),
		},
		LogLevel:    v.GetString("LOG_LEVEL"),
		Environment: v.GetString("ENVIRONMENT"),
		Version:     v.GetString("VERSION"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the runtime configuration before a run starts.
func (c *Config) Validate() error {
	if _, err := ProfileByName(c.Profile); err != nil {
		return err
	}
	if c.Output.NullProbability < 0 || c.Output.NullProbability > 1 {
		return fmt.Errorf("NULL_PROBABILITY must be in [0,1], got %v", c.Output.NullProbability)
	}
	if len(c.Output.Formats) == 0 {
		return fmt.Errorf("OUTPUT_FORMATS must name at least one format")
	}
	for _, f := range c.Output.Formats {
		switch f {
		case "csv", "ndjson", "sql":
		default:
			return fmt.Errorf("unknown output format %q (want csv, ndjson or sql)", f)
		}
	}
	if c.Database.BatchSize <= 0 {
		return fmt.Errorf("PG_BATCH_SIZE must be > 0, got %d", c.Database.BatchSize)
	}
	return nil
}

func splitFormats(raw string) []string {
	parts := strings.Split(raw, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.ToLower(p))
		if p != "" {
			formats = append(formats, p)
		}
	}
	return formats
}
