package logging

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Run("default level is info", func(t *testing.T) {
		l := Setup(Options{})
		assert.Equal(t, log.InfoLevel, l.GetLevel())
	})

	t.Run("level from string", func(t *testing.T) {
		l := Setup(Options{Level: "warn"})
		assert.Equal(t, log.WarnLevel, l.GetLevel())
	})

	t.Run("debug overrides level", func(t *testing.T) {
		l := Setup(Options{Level: "error", Debug: true})
		assert.Equal(t, log.DebugLevel, l.GetLevel())
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		l := Setup(Options{Level: "loud"})
		assert.Equal(t, log.InfoLevel, l.GetLevel())
	})

	t.Run("L returns the installed logger", func(t *testing.T) {
		l := Setup(Options{Level: "debug"})
		require.Same(t, l, L())
	})
}
