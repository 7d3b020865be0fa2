package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/obentoo/abitracker/internal/common/config"
	"github.com/obentoo/abitracker/internal/common/logger"
	"github.com/spf13/cobra"
)

var ErrConfigExists = errors.New("config file already exists (use --force to overwrite)")

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the abitracker configuration",
	Long: `Commands for the optional configuration file.

The file is read from ~/.config/abitracker/config.yaml (or $XDG_CONFIG_HOME),
falling back to ~/.abitracker/config.yaml. Without a file the defaults apply:
read /var/log/pacman.log and print the text summary.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfigFile()
		if err != nil {
			logger.Error("loading config: %v", err)
			os.Exit(1)
		}
		data, err := cfg.Marshal()
		if err != nil {
			logger.Error("encoding config: %v", err)
			os.Exit(1)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path, err := initConfig(configPath, configInitForce)
		if err != nil {
			logger.Error("%v", err)
			os.Exit(1)
		}
		logger.Info("Wrote %s", path)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := configPath
		if path == "" {
			var err error
			if path, err = config.FindConfigPath(); err != nil {
				logger.Error("%v", err)
				os.Exit(1)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configShowCmd, configInitCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func loadConfigFile() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// initConfig writes the default config to path, or the XDG default when path is empty
func initConfig(path string, force bool) (string, error) {
	if path == "" {
		var err error
		if path, err = config.DefaultConfigPath(); err != nil {
			return "", err
		}
	}

	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s: %w", path, ErrConfigExists)
	}

	if err := config.Default().SaveTo(path); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
