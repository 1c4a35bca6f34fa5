package dispatcher

import (
	"github.com/arthur-debert/linkrouter/pkg/errors"
	"github.com/arthur-debert/linkrouter/pkg/logging"
	"github.com/arthur-debert/linkrouter/pkg/matcher"
	"github.com/arthur-debert/linkrouter/pkg/rules"
	"github.com/arthur-debert/linkrouter/pkg/signature"
	"github.com/rs/zerolog"
)

// Options configures a Dispatcher
type Options struct {
	// Decoder types remote-call arguments. Nil means the built-in handlers.
	Decoder *signature.Decoder
}

// Dispatcher expands matched rules into actions. It holds a signature
// decoder and is therefore not safe for concurrent use.
type Dispatcher struct {
	decoder *signature.Decoder
	logger  zerolog.Logger
}

// New creates a Dispatcher
func New(opts Options) *Dispatcher {
	d := opts.Decoder
	if d == nil {
		d = signature.NewDecoder()
	}
	return &Dispatcher{
		decoder: d,
		logger:  logging.GetLogger("dispatcher"),
	}
}

// Dispatch expands a match with a fresh Dispatcher
func Dispatch(m *matcher.Match) (Action, error) {
	return New(Options{}).Dispatch(m)
}

// Dispatch builds the action for the rule in m. Exec templates are
// expanded against the captures of m; remote-call arguments are decoded
// against the rule's signature without substitution.
func (d *Dispatcher) Dispatch(m *matcher.Match) (Action, error) {
	rule := m.Rule
	if rule.HasBothActions() {
		d.logger.Debug().
			Str("pattern", rule.Pattern).
			Str("origin", rule.Origin()).
			Msg("Rule sets both exec and remote_call, using exec")
	}

	switch rule.Kind() {
	case rules.ActionExec:
		return d.expandExec(m), nil
	case rules.ActionRemoteCall:
		return d.decodeRemoteCall(m)
	}

	return nil, errors.Newf(errors.ErrNoAction, "rule %q has neither exec nor remote_call", rule.Pattern).
		WithDetail(errors.DetailPattern, rule.Pattern).
		WithDetail(errors.DetailRuleIndex, m.Index).
		WithDetail(errors.DetailSource, rule.Origin())
}

func (d *Dispatcher) expandExec(m *matcher.Match) *ExecAction {
	templates := m.Rule.Exec
	argv := make([]string, len(templates))
	argv[0] = templates[0]
	for i, tmpl := range templates[1:] {
		argv[i+1] = m.Expand(tmpl)
	}

	d.logger.Debug().
		Str("input", m.Input).
		Strs("argv", argv).
		Msg("Expanded exec action")
	return &ExecAction{Argv: argv}
}

func (d *Dispatcher) decodeRemoteCall(m *matcher.Match) (*RemoteCallAction, error) {
	call := m.Rule.RemoteCall
	args, err := d.decoder.Decode(call.Signature, call.Args)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "rule %q: remote_call arguments", m.Rule.Pattern).
			WithDetails(errors.GetErrorDetails(err)).
			WithDetail(errors.DetailPattern, m.Rule.Pattern).
			WithDetail(errors.DetailSignature, call.Signature)
	}

	d.logger.Debug().
		Str("input", m.Input).
		Str("destination", call.Destination).
		Str("member", call.Interface+"."+call.Method).
		Str("signature", call.Signature).
		Msg("Decoded remote call")
	return &RemoteCallAction{
		Destination: call.Destination,
		Path:        call.Path,
		Interface:   call.Interface,
		Method:      call.Method,
		Signature:   call.Signature,
		Args:        args,
	}, nil
}
