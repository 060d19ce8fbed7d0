// Package cli implements the knotclass command-line interface.
//
// This package provides commands for building planar diagram families,
// canonicalizing diagrams, classifying them into a catalog of canonical
// forms, and inspecting that catalog. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - show: Build a diagram family and print its structure
//   - canon: Print the canonical form and digest of a diagram
//   - classify: Classify diagrams into the canonical-form catalog
//   - catalog: Inspect and manage the catalog
//   - render: Write a DOT or SVG rendering of a diagram
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
//
// # Example
//
//	import "github.com/bgabrovsek/classification-bonded-knots-sub001/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/buildinfo"
	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/catalog"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "knotclass"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the config
// loaded from the default path.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: LoadConfigOrDefault(""),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// ApplyLogLevel sets the logger level from the verbose flag, falling back
// to the configured log_level, then to info.
func (c *CLI) ApplyLogLevel(verbose bool) {
	if verbose {
		c.SetLogLevel(log.DebugLevel)
		return
	}
	if c.Config.LogLevel != "" {
		if level, err := log.ParseLevel(c.Config.LogLevel); err == nil {
			c.SetLogLevel(level)
			return
		}
		c.Logger.Warn("ignoring invalid log_level", "log_level", c.Config.LogLevel)
	}
	c.SetLogLevel(log.InfoLevel)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Knotclass classifies planar diagrams of bonded knots",
		Long:         `Knotclass builds planar diagrams of knots, links and bonded knots, computes their canonical forms, and maintains a catalog with one record per canonical form.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.showCommand())
	root.AddCommand(c.canonCommand())
	root.AddCommand(c.classifyCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Store Factory
// =============================================================================

// storeFlags are the per-command overrides for the catalog backend.
type storeFlags struct {
	backend string
	url     string
	dir     string
}

// register adds the store selection flags to cmd.
func (f *storeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.backend, "store", "", "catalog backend: memory, file, redis, mongo (default from config)")
	cmd.Flags().StringVar(&f.url, "store-url", "", "connection URL for redis or mongo backends")
	cmd.Flags().StringVar(&f.dir, "store-dir", "", "directory for the file backend")
}

// openStore opens the catalog store selected by flags, falling back to the
// loaded config. The caller owns the returned store and must Close it.
func (c *CLI) openStore(cmd *cobra.Command, f storeFlags) (catalog.Store, error) {
	cfg := c.Config.Catalog
	if f.backend != "" {
		cfg.Backend = f.backend
	}
	if f.url != "" {
		cfg.URL = f.url
	}
	if f.dir != "" {
		cfg.Dir = f.dir
	}

	switch cfg.Backend {
	case "", BackendFile:
		dir := cfg.Dir
		if dir == "" {
			var err error
			if dir, err = catalogDir(); err != nil {
				return nil, fmt.Errorf("catalog dir: %w", err)
			}
		}
		return catalog.NewFileStore(dir)
	case BackendMemory:
		return catalog.NewMemoryStore(), nil
	case BackendRedis:
		return catalog.NewRedisStore(catalog.RedisOptions{URL: cfg.URL})
	case BackendMongo:
		return catalog.NewMongoStore(cmd.Context(), catalog.MongoOptions{URI: cfg.URL})
	default:
		return nil, fmt.Errorf("unknown catalog backend %q (available: %s, %s, %s, %s)",
			cfg.Backend, BackendMemory, BackendFile, BackendRedis, BackendMongo)
	}
}

// =============================================================================
// Paths
// =============================================================================

// catalogDir returns the file-backend directory using the XDG standard
// (~/.local/share/knotclass/catalog/).
func catalogDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName, "catalog"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName, "catalog"), nil
}

// configPath returns the config file path using the XDG standard
// (~/.config/knotclass/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
