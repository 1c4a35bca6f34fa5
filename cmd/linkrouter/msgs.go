package linkrouter

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Route URLs to programs or bus methods by pattern"
	MsgMatchShort      = "Show which rule each URL matches, without running it"
	MsgRulesShort      = "List loaded rules in priority order"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Error messages
	MsgErrInitPaths  = "failed to initialize paths: %w"
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrLoadRules  = "failed to load rules: %w"
	MsgErrNoURLs     = "no URL given"
	MsgErrFailedURLs = "%d of %d URLs failed"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDebug     = "Enable debug logging (same as -vv)"
	MsgFlagDryRun    = "Resolve and print actions without executing them"
	MsgFlagCmd       = "Command run with the URL when no rule matches"
	MsgFlagTimeout   = "How long a remote call waits for its reply"
	MsgFlagConfigDir = "Directory holding rule files and config.toml"

	MsgVersionFormat = "linkrouter %s (commit %s, built %s)\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/match-long.txt
	msgMatchLongRaw string
	MsgMatchLong    = strings.TrimSpace(msgMatchLongRaw)

	//go:embed msgs/rules-long.txt
	msgRulesLongRaw string
	MsgRulesLong    = strings.TrimSpace(msgRulesLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
