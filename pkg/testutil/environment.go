package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/linkrouter/pkg/paths"
	"github.com/stretchr/testify/require"
)

// Environment is an isolated set of linkrouter directories
type Environment struct {
	ConfigDir string
	StateHome string

	t *testing.T
}

// NewEnvironment isolates the test from the user's real configuration.
// It uses t.Setenv, so tests using it cannot run in parallel.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	root := t.TempDir()
	env := &Environment{
		ConfigDir: filepath.Join(root, "config", paths.AppDirName),
		StateHome: filepath.Join(root, "state"),
		t:         t,
	}
	require.NoError(t, os.MkdirAll(env.ConfigDir, 0755))

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(root, "system"))
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return env
}

// WriteRules writes a rule file into the config directory
func (e *Environment) WriteRules(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.ConfigDir, name)
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteSettings writes config.toml into the config directory
func (e *Environment) WriteSettings(content string) string {
	return e.WriteRules(paths.ConfigFileName+".toml", content)
}

// Paths resolves paths for this environment
func (e *Environment) Paths() paths.Paths {
	e.t.Helper()
	p, err := paths.New("")
	require.NoError(e.t, err)
	return p
}
