package greeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreet(t *testing.T) {
	t.Run("default name", func(t *testing.T) {
		assert.Equal(t, "Hello, World!", Greet(DefaultName))
	})

	t.Run("custom name", func(t *testing.T) {
		assert.Equal(t, "Hello, Alice!", Greet("Alice"))
	})

	t.Run("empty name is interpolated as-is", func(t *testing.T) {
		assert.Equal(t, "Hello, !", Greet(""))
	})

	t.Run("name with spaces", func(t *testing.T) {
		assert.Equal(t, "Hello, Ada Lovelace!", Greet("Ada Lovelace"))
	})
}
