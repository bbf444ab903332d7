/*
Copyright © 2025 GOCLI Project

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/common-creation/gocli/internal/config"
	"github.com/common-creation/gocli/internal/greeting"
	"github.com/common-creation/gocli/internal/logging"
	"github.com/common-creation/gocli/internal/styles"
)

var (
	cfgFile   string
	debugMode bool
	noColor   bool
	cfg       *config.Config

	appStyles = styles.DefaultStyles()

	// Version information
	appVersion = "dev"
	appCommit  = "unknown"
	appDate    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
// Invoking it directly prints the greeting, so `gocli` and `gocli greet`
// behave the same.
var rootCmd = &cobra.Command{
	Use:   "gocli",
	Short: "GOCLI - a small greeting and calculator CLI",
	Long: `GOCLI is a demonstration CLI application.

It prints a greeting for a configurable name and performs basic
arithmetic over two integers. Use --help on any subcommand for details.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// SetVersion sets the version information for the application
func SetVersion(version, commit, date string) {
	if version != "" {
		appVersion = version
	}
	if commit != "" {
		appCommit = commit
	}
	if date != "" {
		appDate = date
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ShowError("%v", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/gocli/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Greeting flag on the root command for direct invocation
	rootCmd.Flags().String("name", "", "name to greet (overrides config)")

	// Bind flags to viper
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))

	// Environment variable support
	viper.SetEnvPrefix("GOCLI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Load configuration
	var err error
	cfg, err = loadConfiguration()
	if err != nil {
		ShowWarning("Failed to load configuration: %v", err)
		// Use default configuration
		cfg = config.NewDefaultConfig()
	}

	// Apply command line overrides
	if IsDebug() {
		cfg.Logging.Level = "debug"
	}
	if noColor || viper.GetBool("no_color") || os.Getenv("NO_COLOR") != "" {
		cfg.UI.NoColor = true
	}

	// Initialize logging
	logging.Setup(logging.Options{
		Level:   cfg.Logging.Level,
		Debug:   IsDebug(),
		NoColor: cfg.UI.NoColor,
	})
}

func loadConfiguration() (*config.Config, error) {
	loader := config.NewLoader()
	return loader.Load(cfgFile)
}

// runRoot is executed when no subcommands are provided
func runRoot(cmd *cobra.Command, args []string) error {
	return printGreeting(cmd)
}

// printGreeting writes the greeting line to the command's stdout. Shared by
// the root command and the greet subcommand.
func printGreeting(cmd *cobra.Command) error {
	name := resolveName(cmd)
	logging.L().Debug("printing greeting", "name", name)

	_, err := fmt.Fprintln(cmd.OutOrStdout(), greeting.Greet(name))
	return err
}

// resolveName picks the greeting name: flag, then environment/config file,
// then the built-in default. An explicitly passed empty flag value wins.
func resolveName(cmd *cobra.Command) string {
	if f := cmd.Flags().Lookup("name"); f != nil && f.Changed {
		return f.Value.String()
	}
	if cfg != nil && cfg.Greeting.Name != "" {
		return cfg.Greeting.Name
	}
	return greeting.DefaultName
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	return cfg
}

// IsDebug returns whether debug mode is enabled
func IsDebug() bool {
	return debugMode || viper.GetBool("debug")
}

func colorEnabled() bool {
	if noColor || (cfg != nil && cfg.UI.NoColor) {
		return false
	}
	return styles.ColorEnabled()
}

// ShowError displays an error message to the user
func ShowError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if colorEnabled() {
		fmt.Fprintln(os.Stderr, appStyles.Error.Render("Error: "+msg))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
}

// ShowWarning displays a warning message to the user
func ShowWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if colorEnabled() {
		fmt.Fprintln(os.Stderr, appStyles.Warning.Render("Warning: "+msg))
	} else {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", msg)
	}
}

// ShowSuccess displays a success message to the user
func ShowSuccess(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if colorEnabled() {
		fmt.Fprintln(os.Stderr, appStyles.Success.Render("✓ "+msg))
	} else {
		fmt.Fprintf(os.Stderr, "✓ %s\n", msg)
	}
}
