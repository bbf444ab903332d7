package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()

	assert.Equal(t, DefaultColors(), s.Colors)

	// Rendering must always preserve the message text
	for name, style := range map[string]interface{ Render(...string) string }{
		"success": s.Success,
		"warning": s.Warning,
		"error":   s.Error,
		"info":    s.Info,
	} {
		assert.Contains(t, style.Render("status line"), "status line", name)
	}
}

func TestColorEnabled(t *testing.T) {
	t.Run("NO_COLOR wins", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.False(t, ColorEnabled())
	})
}
