package bus

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/arthur-debert/linkrouter/pkg/errors"
	"github.com/arthur-debert/linkrouter/pkg/logging"
	"github.com/arthur-debert/linkrouter/pkg/signature"
	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"
)

// Call is one method call with typed arguments
type Call struct {
	Destination string
	Path        string
	Interface   string
	Method      string
	Args        []signature.Value

	// Timeout bounds the wait for a reply; zero means no bound beyond ctx
	Timeout time.Duration
}

// Member is the fully qualified method name
func (c Call) Member() string {
	return c.Interface + "." + c.Method
}

// Caller sends a call and blocks until the reply or an error arrives
type Caller interface {
	Call(ctx context.Context, call Call) error
}

// Options configures a Session
type Options struct {
	DryRun bool
	// Connect opens the bus connection; defaults to the session bus
	Connect func() (*dbus.Conn, error)
}

// Session is a Caller on the session bus. The connection is opened on
// the first call so runs that never reach a remote_call rule do not need
// a bus at all.
type Session struct {
	connect func() (*dbus.Conn, error)
	dryRun  bool
	logger  zerolog.Logger

	mu   sync.Mutex
	conn *dbus.Conn
}

var _ Caller = (*Session)(nil)

// NewSession creates a Session without connecting
func NewSession(opts Options) *Session {
	connect := opts.Connect
	if connect == nil {
		connect = func() (*dbus.Conn, error) { return dbus.ConnectSessionBus() }
	}
	return &Session{
		connect: connect,
		dryRun:  opts.DryRun,
		logger:  logging.GetLogger("bus"),
	}
}

func (s *Session) connection() (*dbus.Conn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return s.conn, nil
	}
	conn, err := s.connect()
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Msg("Connected to session bus")
	s.conn = conn
	return conn, nil
}

// Call converts the arguments, sends the call and waits for the reply
func (s *Session) Call(ctx context.Context, call Call) error {
	args, err := ToGo(call.Args)
	if err != nil {
		return err
	}

	s.logger.Debug().
		Str("destination", call.Destination).
		Str("path", call.Path).
		Str("member", call.Member()).
		Str("signature", signature.SignatureOf(call.Args)).
		Dur("timeout", call.Timeout).
		Msg("Calling remote method")

	if s.dryRun {
		s.logger.Info().Str("member", call.Member()).Msg("Dry run, not calling")
		return nil
	}

	conn, err := s.connection()
	if err != nil {
		return withCallDetails(errors.Wrap(err, errors.ErrRemoteCall, "failed to connect to the session bus"), call)
	}

	if call.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, call.Timeout)
		defer cancel()
	}

	obj := conn.Object(call.Destination, dbus.ObjectPath(call.Path))
	reply := obj.CallWithContext(ctx, call.Member(), 0, args...)
	if reply.Err == nil {
		return nil
	}

	if stderrors.Is(ctx.Err(), context.DeadlineExceeded) || stderrors.Is(reply.Err, context.DeadlineExceeded) {
		return withCallDetails(errors.Wrapf(reply.Err, errors.ErrRemoteTimeout,
			"%s on %s timed out after %s", call.Member(), call.Destination, call.Timeout), call)
	}

	lrErr := errors.Wrapf(reply.Err, errors.ErrRemoteCall, "%s on %s failed", call.Member(), call.Destination)
	var dbusErr dbus.Error
	if stderrors.As(reply.Err, &dbusErr) {
		lrErr = lrErr.WithDetail("errorName", dbusErr.Name)
	}
	return withCallDetails(lrErr, call)
}

// Close releases the connection if one was opened
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

func withCallDetails(err *errors.LinkrouterError, call Call) *errors.LinkrouterError {
	return err.
		WithDetail("destination", call.Destination).
		WithDetail(errors.DetailPath, call.Path).
		WithDetail("member", call.Member())
}
