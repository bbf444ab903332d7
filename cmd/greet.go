/*
Copyright © 2025 GOCLI Project
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// greetCmd represents the greet command
var greetCmd = &cobra.Command{
	Use:   "greet",
	Short: "Greet someone",
	Long: `Print a greeting line for the given name.

The name is resolved from the --name flag, the GOCLI_NAME environment
variable, or the configuration file, in that order.`,
	Args: cobra.NoArgs,
	RunE: runGreet,
}

func init() {
	rootCmd.AddCommand(greetCmd)

	greetCmd.Flags().StringP("name", "n", "", "name to greet (overrides config)")
}

func runGreet(cmd *cobra.Command, args []string) error {
	return printGreeting(cmd)
}
