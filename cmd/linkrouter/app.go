package linkrouter

import (
	"fmt"
	"time"

	"github.com/arthur-debert/linkrouter/pkg/config"
	"github.com/arthur-debert/linkrouter/pkg/core"
	"github.com/arthur-debert/linkrouter/pkg/matcher"
	"github.com/arthur-debert/linkrouter/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every command
type globalFlags struct {
	verbosity  int
	debug      bool
	dryRun     bool
	defaultCmd string
	timeout    time.Duration
	configDir  string
}

func (f *globalFlags) logVerbosity() int {
	if f.debug && f.verbosity < 2 {
		return 2
	}
	return f.verbosity
}

// overrides returns only the flags the user actually set, so unset flags
// do not mask the settings file or the environment
func (f *globalFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	flags := cmd.Flags()
	o := make(map[string]interface{})
	if flags.Changed("cmd") {
		o["default_command"] = f.defaultCmd
	}
	if flags.Changed("timeout") {
		o["remote_timeout"] = f.timeout
	}
	if flags.Changed("dry-run") {
		o["dry_run"] = f.dryRun
	}
	return o
}

// app is everything loaded before URLs can be routed
type app struct {
	paths  paths.Paths
	config *config.Config
	rules  *matcher.RuleSet
}

func loadApp(cmd *cobra.Command, f *globalFlags) (*app, error) {
	p, err := paths.New(f.configDir)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigDir: p.ConfigDir(),
		Overrides: f.overrides(cmd),
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	set, err := core.LoadRuleSet(p, cfg.RulesGlob)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadRules, err)
	}

	log.Debug().
		Str("configDir", p.ConfigDir()).
		Int("rules", set.Len()).
		Bool("dryRun", cfg.DryRun).
		Msg("Application loaded")
	return &app{paths: p, config: cfg, rules: set}, nil
}
