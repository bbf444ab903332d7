// Package greeting formats the greeting line printed by the CLI.
package greeting

import "fmt"

// DefaultName is used when no name is supplied by flag, environment
// variable, or configuration file.
const DefaultName = "World"

// Greet returns the greeting line for the given name. The name is
// interpolated as-is; an empty string is legal input.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}
