package core

import (
	"github.com/arthur-debert/linkrouter/pkg/logging"
	"github.com/arthur-debert/linkrouter/pkg/matcher"
	"github.com/arthur-debert/linkrouter/pkg/paths"
	"github.com/arthur-debert/linkrouter/pkg/rules"
)

// LoadRuleSet discovers the rule files under p, loads them in priority
// order and compiles the result. Any error here is fatal to the run.
func LoadRuleSet(p paths.Paths, globs []string) (*matcher.RuleSet, error) {
	logger := logging.GetLogger("core")
	done := logging.LogOperationStart(logger, "load rules")
	defer done()

	files, err := p.RuleFiles(globs)
	if err != nil {
		return nil, err
	}
	logger.Debug().Strs("files", files).Msg("Discovered rule files")

	rs, err := rules.LoadFiles(files)
	if err != nil {
		return nil, err
	}
	if len(rs) == 0 {
		logger.Info().
			Strs("dirs", p.ConfigDirs()).
			Msg("No rules found, every URL goes to the default command")
	}

	return matcher.Compile(rs)
}
