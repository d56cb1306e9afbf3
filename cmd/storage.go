package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/recipebook/internal/config"
	"github.com/zjrosen/recipebook/internal/log"
	"github.com/zjrosen/recipebook/internal/storage"
)

var storageClearFile bool

var storageSetCmd = &cobra.Command{
	Use:   "storage:set",
	Short: "Save the storage format and data file in the config file",
	Long: `Write storage.format and storage.path into the config file in use.

Comments and every other setting in the file are kept. The global --format
and --file flags supply the new values; a flag that is not given leaves the
current value as is.

Examples:
  # Switch to SQLite, keeping the current path setting
  recipebook storage:set --format sqlite

  # Use a JSON file in the home directory
  recipebook storage:set -f json --file ~/recipes.json

  # Go back to recipes.<ext> in the working directory
  recipebook storage:set --clear-file`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		formatChanged := cmd.Flags().Changed("format")
		fileChanged := cmd.Flags().Changed("file")
		if !formatChanged && !fileChanged && !storageClearFile {
			return cmd.Help()
		}

		next := config.StorageConfig{
			Format: configFileString("storage.format", storage.FormatYAML),
			Path:   configFileString("storage.path", ""),
		}
		if formatChanged {
			next.Format, _ = cmd.Flags().GetString("format")
		}
		if fileChanged {
			next.Path, _ = cmd.Flags().GetString("file")
		}
		if storageClearFile {
			next.Path = ""
		}

		configPath := viper.ConfigFileUsed()
		if configPath == "" {
			configPath = localConfigPath
		}
		return runStorageSet(cmd.OutOrStdout(), configPath, next)
	},
}

func init() {
	storageSetCmd.Flags().BoolVar(&storageClearFile, "clear-file", false, "Remove storage.path from the config")
	rootCmd.AddCommand(storageSetCmd)
}

// configFileString reads key as written in the config file, ignoring flag
// and environment overrides.
func configFileString(key, fallback string) string {
	used := viper.ConfigFileUsed()
	if used == "" {
		return fallback
	}
	v := viper.New()
	v.SetConfigFile(used)
	if v.ReadInConfig() != nil || !v.IsSet(key) {
		return fallback
	}
	return v.GetString(key)
}

func runStorageSet(out io.Writer, configPath string, next config.StorageConfig) error {
	next.Format = storage.Normalize(next.Format)
	if next.Format == "" {
		next.Format = storage.FormatYAML
	}
	if err := config.ValidateStorage(next); err != nil {
		return err
	}

	if err := config.SaveStorage(configPath, next); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to save storage settings", err, "path", configPath)
		return fmt.Errorf("saving storage settings: %w", err)
	}
	log.Info(log.CatConfig, "Saved storage settings", "path", configPath, "format", next.Format, "file", next.Path)

	_, err := fmt.Fprintf(out, "Storage set to %s at %s (config: %s)\n",
		next.Format, config.Config{Storage: next}.StorePath(), configPath)
	return err
}
