package config

import (
	"path/filepath"
	"time"

	"github.com/arthur-debert/linkrouter/pkg/errors"
)

// Config holds the resolved application settings
type Config struct {
	DefaultCommand string        `koanf:"default_command"`
	RemoteTimeout  time.Duration `koanf:"remote_timeout"`
	RulesGlob      []string      `koanf:"rules_glob"`
	DryRun         bool          `koanf:"dry_run"`

	// Source is the settings file that was loaded, empty when none existed
	Source string `koanf:"-"`
}

// Validate checks the settings that cannot be fixed up later
func (c *Config) Validate() error {
	if c.DefaultCommand == "" {
		return errors.New(errors.ErrConfigParse, "default_command must not be empty").
			WithDetail(errors.DetailSource, c.Source)
	}
	if c.RemoteTimeout <= 0 {
		return errors.Newf(errors.ErrConfigParse, "remote_timeout must be positive, got %s", c.RemoteTimeout).
			WithDetail(errors.DetailSource, c.Source)
	}
	if len(c.RulesGlob) == 0 {
		return errors.New(errors.ErrConfigParse, "rules_glob must name at least one pattern").
			WithDetail(errors.DetailSource, c.Source)
	}
	for _, g := range c.RulesGlob {
		if _, err := filepath.Match(g, ""); err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, "invalid rules_glob pattern %q", g).
				WithDetail(errors.DetailPattern, g).
				WithDetail(errors.DetailSource, c.Source)
		}
	}
	return nil
}
