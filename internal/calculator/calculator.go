// Package calculator provides basic arithmetic operations.
package calculator

// Add returns the sum of a and b.
func Add(a, b int) int {
	return a + b
}

// Multiply returns a times b.
func Multiply(a, b int) int {
	return a * b
}
