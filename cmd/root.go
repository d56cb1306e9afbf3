package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/zjrosen/recipebook/internal/config"
	"github.com/zjrosen/recipebook/internal/domain"
	"github.com/zjrosen/recipebook/internal/flags"
	"github.com/zjrosen/recipebook/internal/log"
	"github.com/zjrosen/recipebook/internal/menu"
	"github.com/zjrosen/recipebook/internal/repository"
	"github.com/zjrosen/recipebook/internal/storage"
)

const localConfigPath = ".recipebook/config.yaml"

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "recipebook",
	Short: "Manage recipes and their ingredients from the terminal",
	Long: `An interactive recipe book. Recipes carry a title, cooking time,
difficulty, calories, creator and a list of ingredients, and are saved to a
YAML, XML, JSON or SQLite file.

Run without a subcommand to open the numbered menu.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: closeLogging,
	RunE:              runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/recipebook/config.yaml)")
	pf.StringP("format", "f", "",
		"storage format: yaml, xml, json, or sqlite")
	pf.String("file", "",
		"data file or directory (default: ./recipes.<ext>)")
	pf.Bool("debug", false,
		"write a debug log (see log.path in the config)")

	// Bind flags to viper
	_ = viper.BindPFlag("storage.format", pf.Lookup("format"))
	_ = viper.BindPFlag("storage.path", pf.Lookup("file"))
	_ = viper.BindPFlag("debug", pf.Lookup("debug"))
}

func initConfig() {
	// A missing .env is normal.
	_ = godotenv.Load()

	defaults := config.Defaults()
	viper.SetDefault("storage.format", defaults.Storage.Format)
	viper.SetDefault("storage.path", defaults.Storage.Path)
	viper.SetDefault("log.path", defaults.Log.Path)
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("ui.plain", defaults.UI.Plain)
	viper.SetDefault("debug", false)

	viper.SetEnvPrefix("RECIPEBOOK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .recipebook/config.yaml (current directory)
		// 2. ~/.config/recipebook/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "recipebook"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .recipebook/config.yaml
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
				viper.SetConfigFile(localConfigPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

var logCleanup func()

func setupLogging(_ *cobra.Command, _ []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !viper.GetBool("debug") {
		return nil
	}

	cleanup, err := log.Init(cfg.Log.Path)
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	level, _ := log.ParseLevel(cfg.Log.Level)
	log.SetMinLevel(level)
	logCleanup = cleanup
	log.Info(log.CatConfig, "Configuration loaded",
		"file", viper.ConfigFileUsed(), "format", cfg.Storage.Format, "path", cfg.StorePath())
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) {
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
}

// openRepository builds the configured store and an empty repository on it.
func openRepository(c config.Config) (*repository.Repository, error) {
	store, err := storage.New(c.Storage.Format, c.StorePath())
	if err != nil {
		return nil, err
	}
	return repository.New(store), nil
}

// loadRepository opens the repository and loads the stored collection.
// A missing data file yields an empty repository.
func loadRepository(c config.Config) (*repository.Repository, error) {
	repo, err := openRepository(c)
	if err != nil {
		return nil, err
	}
	if err := repo.Load(); err != nil && !errors.Is(err, domain.ErrStoreNotFound) {
		return nil, err
	}
	return repo, nil
}

// isInteractive reports whether both stdin and stdout are terminals.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runApp(cmd *cobra.Command, _ []string) error {
	features := flags.New(cfg.Flags)

	var (
		repo *repository.Repository
		err  error
	)
	if features.Enabled(flags.FlagAutoLoad) {
		repo, err = loadRepository(cfg)
	} else {
		repo, err = openRepository(cfg)
	}
	if err != nil {
		return err
	}

	m := menu.New(repo, cmd.InOrStdin(), cmd.OutOrStdout(),
		menu.WithPlain(cfg.UI.Plain || !isInteractive()),
		menu.WithAutoSave(features.Enabled(flags.FlagAutoSave)),
	)
	if err := m.Run(cmd.Context()); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
