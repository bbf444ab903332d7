/*
Copyright © 2025 GOCLI Project
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/common-creation/gocli/internal/calculator"
	"github.com/common-creation/gocli/internal/logging"
)

var (
	calcA         int
	calcB         int
	calcOperation string
)

// calcCmd represents the calc command
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Apply an arithmetic operation to two integers",
	Long: `Apply an arithmetic operation to two integers and print the result.

Examples:
  gocli calc --a 2 --b 3
  gocli calc --a 2 --b 3 --operation multiply`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().IntVar(&calcA, "a", 0, "first operand")
	calcCmd.Flags().IntVar(&calcB, "b", 0, "second operand")
	calcCmd.Flags().StringVarP(&calcOperation, "operation", "o", "add", "operation to apply: add or multiply")
	calcCmd.MarkFlagRequired("a")
	calcCmd.MarkFlagRequired("b")
}

func runCalc(cmd *cobra.Command, args []string) error {
	op := calcOperation

	// Configured default applies only when the flag was not given
	if f := cmd.Flags().Lookup("operation"); f != nil && !f.Changed {
		if c := GetConfig(); c.Calc.Operation != "" {
			op = c.Calc.Operation
		}
	}

	var result int
	switch op {
	case "add":
		result = calculator.Add(calcA, calcB)
	case "multiply":
		result = calculator.Multiply(calcA, calcB)
	default:
		return fmt.Errorf("unknown operation: %s", op)
	}

	logging.L().Debug("calculated", "operation", op, "a", calcA, "b", calcB, "result", result)

	_, err := fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}
