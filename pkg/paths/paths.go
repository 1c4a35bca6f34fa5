package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/linkrouter/pkg/errors"
)

const (
	// EnvConfigDir overrides all XDG config directories for linkrouter
	EnvConfigDir = "LINKROUTER_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under every XDG base directory
	AppDirName = "linkrouter"

	// ConfigFileName is the basename of the settings file (.toml or .yaml)
	ConfigFileName = "config"

	// LogFileName is the name of the log file
	LogFileName = "linkrouter.log"
)

// Paths provides the directory layout linkrouter works with
type Paths interface {
	ConfigDir() string
	ConfigDirs() []string
	StateDir() string
	LogFilePath() string
	RuleFiles(globs []string) ([]string, error)
}

type paths struct {
	// configDirs are searched in order; configDirs[0] is the user directory
	configDirs []string
	stateDir   string
}

// New creates a Paths instance. An explicit configDir (from a flag) wins over
// LINKROUTER_CONFIG_DIR, which wins over the XDG locations.
func New(configDir string) (Paths, error) {
	p := &paths{}

	if configDir == "" {
		configDir = os.Getenv(EnvConfigDir)
	}

	if configDir != "" {
		abs, err := filepath.Abs(ExpandHome(configDir))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to resolve config directory %s", configDir)
		}
		p.configDirs = []string{abs}
	} else {
		p.configDirs = append(p.configDirs, filepath.Join(xdg.ConfigHome, AppDirName))
		for _, dir := range xdg.ConfigDirs {
			p.configDirs = append(p.configDirs, filepath.Join(dir, AppDirName))
		}
	}

	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		p.stateDir = filepath.Join(stateHome, AppDirName)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p, nil
}

func (p *paths) ConfigDir() string {
	return p.configDirs[0]
}

func (p *paths) ConfigDirs() []string {
	return append([]string(nil), p.configDirs...)
}

func (p *paths) StateDir() string {
	return p.stateDir
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// RuleFiles lists regular files matching any of globs in every config
// directory, skipping the settings file. Missing directories are skipped;
// unreadable ones are an error because silently dropping a rule file would
// change rule priority.
func (p *paths) RuleFiles(globs []string) ([]string, error) {
	var files []string
	for _, dir := range p.configDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, errors.ErrRulesLoad, "failed to list config directory %s", dir).
				WithDetail(errors.DetailPath, dir)
		}

		for _, entry := range entries {
			if entry.IsDir() || IsSettingsFile(entry.Name()) || !matchesAny(entry.Name(), globs) {
				continue
			}
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// IsSettingsFile reports whether name is config.toml, config.yaml or config.yml
func IsSettingsFile(name string) bool {
	ext := filepath.Ext(name)
	switch ext {
	case ".toml", ".yaml", ".yml":
		return strings.TrimSuffix(name, ext) == ConfigFileName
	}
	return false
}

func matchesAny(name string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := filepath.Match(g, name); ok {
			return true
		}
	}
	return false
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~otheruser is left alone
	return path
}
