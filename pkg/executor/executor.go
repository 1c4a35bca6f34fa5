package executor

import (
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/arthur-debert/linkrouter/pkg/errors"
	"github.com/arthur-debert/linkrouter/pkg/logging"
	"github.com/rs/zerolog"
)

// Runner executes an argv and waits for it to finish
type Runner interface {
	Run(argv []string) (ExitOutcome, error)
}

// Options contains configuration for the executor
type Options struct {
	DryRun bool

	// Logger defaults to the "executor" component logger when nil
	Logger *zerolog.Logger

	// Standard streams for the child, defaulting to the caller's
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Executor runs processes with os/exec
type Executor struct {
	dryRun bool
	logger zerolog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

var _ Runner = (*Executor)(nil)

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	e := &Executor{
		dryRun: opts.DryRun,
		logger: logger,
		stdin:  opts.Stdin,
		stdout: opts.Stdout,
		stderr: opts.Stderr,
	}
	if e.stdin == nil {
		e.stdin = os.Stdin
	}
	if e.stdout == nil {
		e.stdout = os.Stdout
	}
	if e.stderr == nil {
		e.stderr = os.Stderr
	}
	return e
}

// Run starts argv[0] with the remaining arguments and blocks until it
// exits. A non-zero exit or a signal is an outcome, not an error; only a
// failure to start the program is.
func (e *Executor) Run(argv []string) (ExitOutcome, error) {
	if len(argv) == 0 || argv[0] == "" {
		return ExitOutcome{}, errors.New(errors.ErrInvalidInput, "cannot execute an empty command")
	}

	logging.LogCommand(argv[0], argv[1:])
	if e.dryRun {
		e.logger.Info().
			Strs("argv", argv).
			Msg("Dry run, not executing")
		return ExitOutcome{Skipped: true}, nil
	}

	start := time.Now()
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Run(); err != nil && cmd.ProcessState == nil {
		e.logger.Error().
			Err(err).
			Str("command", argv[0]).
			Msg("Failed to start process")
		return ExitOutcome{}, errors.Wrapf(err, errors.ErrExecFailed, "failed to start %s", argv[0]).
			WithDetail("command", argv[0])
	}

	outcome := outcomeOf(cmd.ProcessState)
	event := e.logger.Debug()
	if !outcome.Success() {
		event = e.logger.Warn()
	}
	if outcome.Code != nil {
		event = event.Int("exitCode", *outcome.Code)
	}
	event.
		Str("command", argv[0]).
		Bool("signaled", outcome.WasSignaled()).
		Dur("duration", time.Since(start)).
		Msg("Process finished")
	return outcome, nil
}

func outcomeOf(state *os.ProcessState) ExitOutcome {
	if !state.Exited() {
		return Signaled()
	}
	return Exited(state.ExitCode())
}
