package styles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/linkrouter/pkg/output/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStyles(t *testing.T) {
	for _, name := range []string{"Header", "Success", "Error", "Warning", "Muted", "URL", "Pattern", "Action"} {
		_, ok := styles.StyleRegistry[name]
		assert.True(t, ok, "missing style %s", name)
	}
	assert.True(t, styles.GetStyle("Error").GetBold())
	assert.True(t, styles.GetStyle("Pattern").GetItalic())
}

func TestGetStyle_Unknown(t *testing.T) {
	assert.Equal(t, "plain", styles.Render("NoSuchStyle", "plain"))
}

func TestLoadStyles(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, styles.LoadStyles(filepath.Join(".", "styles.yaml")))
	})

	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "colors:\n  c:\n    light: \"#000000\"\n    dark: \"#ffffff\"\nstyles:\n  Custom:\n    underline: true\n    foreground: c\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	require.NoError(t, styles.LoadStyles(path))
	assert.True(t, styles.GetStyle("Custom").GetUnderline())
	_, ok := styles.StyleRegistry["Header"]
	assert.False(t, ok)

	assert.Error(t, styles.LoadStyles(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [not a map")))
}
