package linkrouter

import (
	"errors"
	"fmt"

	"github.com/arthur-debert/linkrouter/internal/version"
	"github.com/arthur-debert/linkrouter/pkg/bus"
	"github.com/arthur-debert/linkrouter/pkg/core"
	"github.com/arthur-debert/linkrouter/pkg/executor"
	"github.com/arthur-debert/linkrouter/pkg/logging"
	"github.com/arthur-debert/linkrouter/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "linkrouter [flags] URL...",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.logVerbosity())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New(MsgErrNoURLs)
			}
			return runRoute(cmd, flags, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.BoolVarP(&flags.debug, "debug", "D", false, MsgFlagDebug)
	pf.BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	pf.StringVar(&flags.defaultCmd, "cmd", "xdg-open", MsgFlagCmd)
	pf.DurationVar(&flags.timeout, "timeout", 0, MsgFlagTimeout)
	pf.StringVar(&flags.configDir, "config-dir", "", MsgFlagConfigDir)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetHelpCommandGroupID("misc")

	rootCmd.AddCommand(newMatchCmd(flags))
	rootCmd.AddCommand(newRulesCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// runRoute matches, dispatches and runs every URL in order
func runRoute(cmd *cobra.Command, flags *globalFlags, urls []string) error {
	a, err := loadApp(cmd, flags)
	if err != nil {
		return err
	}

	session := bus.NewSession(bus.Options{DryRun: a.config.DryRun})
	defer func() {
		if err := session.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close bus connection")
		}
	}()

	router, err := core.New(core.Options{
		Rules:          a.rules,
		DefaultCommand: a.config.DefaultCommand,
		RemoteTimeout:  a.config.RemoteTimeout,
		Runner:         executor.New(executor.Options{DryRun: a.config.DryRun}),
		Caller:         session,
	})
	if err != nil {
		return err
	}

	reporter := output.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), a.config.DryRun)
	results := router.RouteAll(cmd.Context(), urls, reporter.Result)
	return failureSummary(results)
}

func failureSummary(results []core.Result) error {
	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf(MsgErrFailedURLs, failed, len(results))
	}
	return nil
}

func newMatchCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "match URL...",
		Short:   MsgMatchShort,
		Long:    MsgMatchLong,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}

			router, err := core.New(core.Options{
				Rules:          a.rules,
				DefaultCommand: a.config.DefaultCommand,
				RemoteTimeout:  a.config.RemoteTimeout,
			})
			if err != nil {
				return err
			}

			reporter := output.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), false)
			results := make([]core.Result, 0, len(args))
			for _, url := range args {
				res, err := router.Resolve(url)
				reporter.Resolution(res, err)
				results = append(results, core.Result{URL: url, Resolution: res, Err: err})
			}
			return failureSummary(results)
		},
	}
}

func newRulesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		Long:    MsgRulesLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			return output.RuleTable(cmd.OutOrStdout(), a.rules)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
