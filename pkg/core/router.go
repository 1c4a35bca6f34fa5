package core

import (
	"context"
	"time"

	"github.com/arthur-debert/linkrouter/pkg/bus"
	"github.com/arthur-debert/linkrouter/pkg/dispatcher"
	"github.com/arthur-debert/linkrouter/pkg/errors"
	"github.com/arthur-debert/linkrouter/pkg/executor"
	"github.com/arthur-debert/linkrouter/pkg/logging"
	"github.com/arthur-debert/linkrouter/pkg/matcher"
	"github.com/rs/zerolog"
)

// Options contains everything a Router needs
type Options struct {
	Rules          *matcher.RuleSet
	DefaultCommand string
	RemoteTimeout  time.Duration

	Runner executor.Runner
	Caller bus.Caller

	// Dispatcher defaults to one with the built-in signature handlers
	Dispatcher *dispatcher.Dispatcher
}

// Router resolves and runs URLs one after another
type Router struct {
	rules          *matcher.RuleSet
	defaultCommand string
	remoteTimeout  time.Duration
	runner         executor.Runner
	caller         bus.Caller
	dispatcher     *dispatcher.Dispatcher
	logger         zerolog.Logger
}

// New creates a Router
func New(opts Options) (*Router, error) {
	if opts.Rules == nil {
		return nil, errors.New(errors.ErrInternal, "router needs a compiled rule set")
	}
	if opts.DefaultCommand == "" {
		return nil, errors.New(errors.ErrInvalidInput, "default command must not be empty")
	}

	d := opts.Dispatcher
	if d == nil {
		d = dispatcher.New(dispatcher.Options{})
	}

	return &Router{
		rules:          opts.Rules,
		defaultCommand: opts.DefaultCommand,
		remoteTimeout:  opts.RemoteTimeout,
		runner:         opts.Runner,
		caller:         opts.Caller,
		dispatcher:     d,
		logger:         logging.GetLogger("core"),
	}, nil
}

// Resolve finds the action for url without running it. When no rule
// matches, the action is the default command with url as its only
// argument, bypassing the dispatcher.
func (r *Router) Resolve(url string) (*Resolution, error) {
	m, ok := r.rules.Find(url)
	if !ok {
		r.logger.Debug().
			Str("url", url).
			Str("defaultCommand", r.defaultCommand).
			Msg("No rule matched, using default command")
		return &Resolution{
			URL:    url,
			Action: &dispatcher.ExecAction{Argv: []string{r.defaultCommand, url}},
		}, nil
	}

	action, err := r.dispatcher.Dispatch(m)
	if err != nil {
		return &Resolution{URL: url, Match: m}, err
	}
	return &Resolution{URL: url, Match: m, Action: action}, nil
}

// Route resolves url and runs its action to completion
func (r *Router) Route(ctx context.Context, url string) Result {
	res, err := r.Resolve(url)
	result := Result{URL: url, Resolution: res}
	if err != nil {
		result.Err = err
		return result
	}

	switch action := res.Action.(type) {
	case *dispatcher.ExecAction:
		if r.runner == nil {
			result.Err = errors.New(errors.ErrInternal, "no process runner configured")
			return result
		}
		exit, err := r.runner.Run(action.Argv)
		if err != nil {
			result.Err = err
			return result
		}
		result.Exit = &exit

	case *dispatcher.RemoteCallAction:
		if r.caller == nil {
			result.Err = errors.New(errors.ErrInternal, "no remote caller configured")
			return result
		}
		result.Err = r.caller.Call(ctx, bus.Call{
			Destination: action.Destination,
			Path:        action.Path,
			Interface:   action.Interface,
			Method:      action.Method,
			Args:        action.Args,
			Timeout:     r.remoteTimeout,
		})

	default:
		result.Err = errors.Newf(errors.ErrInternal, "unknown action type %T", res.Action)
	}
	return result
}

// RouteAll routes urls in order. A failing URL never stops the batch.
// report, when set, sees each result as soon as it is known.
func (r *Router) RouteAll(ctx context.Context, urls []string, report func(Result)) []Result {
	results := make([]Result, 0, len(urls))
	for _, url := range urls {
		result := r.Route(ctx, url)
		if result.Err != nil {
			r.logger.Warn().
				Err(result.Err).
				Str("url", url).
				Str("code", string(errors.GetErrorCode(result.Err))).
				Msg("Failed to route URL")
		}
		if report != nil {
			report(result)
		}
		results = append(results, result)
	}
	return results
}

// AnyFailed reports whether any result is a routing failure
func AnyFailed(results []Result) bool {
	for _, r := range results {
		if r.Failed() {
			return true
		}
	}
	return false
}
