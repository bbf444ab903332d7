/*
Copyright © 2025 GOCLI Project
*/
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/common-creation/gocli/internal/config"
)

var configOutputFormat string

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage GOCLI configuration",
	Long: `View and initialize GOCLI configuration settings.

The effective configuration is the result of merging built-in defaults,
the configuration file, environment variables and command-line flags.`,
}

// configShowCmd shows the current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

// configInitCmd writes a default config file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

// configPathCmd prints the default config file location
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the default configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultConfigPath()
		if path == "" {
			return fmt.Errorf("cannot determine home directory")
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)

	configShowCmd.Flags().StringVarP(&configOutputFormat, "output", "o", "yaml", "output format: yaml or json")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	c := GetConfig()

	switch configOutputFormat {
	case "yaml":
		data, err := yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to marshal configuration: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(c)
	default:
		return fmt.Errorf("unknown output format: %s", configOutputFormat)
	}
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	loader := config.NewLoader()

	path, err := loader.WriteDefault()
	if err != nil {
		return err
	}

	ShowSuccess("Created config file at %s", path)
	return nil
}
