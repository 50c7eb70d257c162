// Root command for the pokedex CLI.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pokedex/internal/paths"
	"github.com/mesh-intelligence/pokedex/internal/postgres"
	"github.com/mesh-intelligence/pokedex/internal/sqlite"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// catalog is the global Catalog instance, attached on startup by
// PersistentPreRunE and detached by PersistentPostRunE.
var catalog types.Catalog

// configDataDir and configDSN hold values loaded from config.yaml.
var (
	configDataDir string
	configDSN     string
	configBackend string
)

var rootCmd = &cobra.Command{
	Use:     "pokedex",
	Short:   "Pokedex is a catalog of pokemon, owners, and reviews",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Version needs no catalog.
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configBackend = cfg.GetString(cfgKeyBackend)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		configDSN = cfg.GetString(cfgKeyDSN)

		return attachCatalog()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeCatalog()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.pokedex)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.pokedex-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(countryCmd)
	rootCmd.AddCommand(ownerCmd)
	rootCmd.AddCommand(pokemonCmd)
	rootCmd.AddCommand(reviewerCmd)
	rootCmd.AddCommand(reviewCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the catalog storage",
	Long:  `Initialize the catalog storage backend using configuration from file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The catalog is already attached by PersistentPreRunE, which
		// creates the config and data directories on first run.
		fmt.Println("Catalog initialized successfully")
		return nil
	},
}

// newLogger builds the CLI logger. Debug level with --verbose, warnings
// only otherwise.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// attachCatalog builds a backend from the loaded configuration and attaches
// it to the global catalog.
func attachCatalog() error {
	log := newLogger()

	backend := configBackend
	if backend == "" {
		backend = defaultBackend
	}

	switch backend {
	case types.BackendSQLite:
		dataDir, err := resolveDataDir()
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		b := sqlite.NewBackend()
		b.SetLogger(log)
		if err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}); err != nil {
			return fmt.Errorf("attach catalog: %w", err)
		}
		catalog = b
	case types.BackendPostgres:
		b := postgres.NewBackend()
		b.SetLogger(log)
		if err := b.Attach(types.Config{Backend: types.BackendPostgres, DSN: configDSN}); err != nil {
			return fmt.Errorf("attach catalog: %w", err)
		}
		catalog = b
	default:
		return fmt.Errorf("backend %q: %w", backend, types.ErrBackendUnknown)
	}

	return nil
}

// closeCatalog detaches the catalog and releases resources.
func closeCatalog() error {
	if catalog != nil {
		return catalog.Detach()
	}
	return nil
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > POKEDEX_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > POKEDEX_CONFIG_DIR env > DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
