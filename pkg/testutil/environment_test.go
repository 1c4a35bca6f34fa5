package testutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/linkrouter/pkg/paths"
	"github.com/arthur-debert/linkrouter/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment(t *testing.T) {
	env := testutil.NewEnvironment(t)

	assert.Equal(t, env.ConfigDir, os.Getenv(paths.EnvConfigDir))

	rules := env.WriteRules("10-web.yaml", "[]")
	settings := env.WriteSettings(`default_command = "x"`)
	assert.Equal(t, filepath.Join(env.ConfigDir, "config.toml"), settings)

	p := env.Paths()
	assert.Equal(t, env.ConfigDir, p.ConfigDir())

	files, err := p.RuleFiles([]string{"*.yaml", "*.toml"})
	require.NoError(t, err)
	assert.Equal(t, []string{rules}, files)
	assert.Equal(t, filepath.Join(env.StateHome, paths.AppDirName, paths.LogFileName), p.LogFilePath())
}
