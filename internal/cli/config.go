package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// Catalog backend names accepted in config files and --store flags.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config is the optional on-disk configuration, read from
// $XDG_CONFIG_HOME/knotclass/config.toml.
type Config struct {
	// LogLevel is the default logger level: debug, info, warn or error.
	// The --verbose flag overrides it.
	LogLevel string `toml:"log_level"`

	Catalog CatalogConfig `toml:"catalog"`
}

// CatalogConfig selects the catalog backend used by classify and catalog
// commands when no --store flags are given.
type CatalogConfig struct {
	// Backend is one of memory, file, redis or mongo. Empty means file.
	Backend string `toml:"backend"`
	// URL is the connection string for the redis and mongo backends.
	URL string `toml:"url"`
	// Dir overrides the file backend's directory.
	Dir string `toml:"dir"`
}

// LoadConfig reads and decodes the config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigOrDefault loads the config from path, or from the default
// location when path is empty. A missing or unreadable file yields the
// zero config, so the CLI works without any configuration.
func LoadConfigOrDefault(path string) Config {
	if path == "" {
		var err error
		if path, err = configPath(); err != nil {
			return Config{}
		}
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return Config{}
	}
	return cfg
}

// configCommand creates the config command group.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return fmt.Errorf("get config path: %w", err)
			}
			fmt.Println(path)
			return nil
		},
	}
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.Config.LogLevel != "" {
				printKeyValue("log_level", c.Config.LogLevel)
			}
			backend := c.Config.Catalog.Backend
			if backend == "" {
				backend = BackendFile
			}
			printKeyValue("backend", backend)
			if c.Config.Catalog.URL != "" {
				printKeyValue("url", c.Config.Catalog.URL)
			}
			dir := c.Config.Catalog.Dir
			if dir == "" {
				if d, err := catalogDir(); err == nil {
					dir = d
				}
			}
			if dir != "" {
				printKeyValue("dir", dir)
			}
			return nil
		},
	}
}
