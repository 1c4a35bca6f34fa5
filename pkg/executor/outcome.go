package executor

import "fmt"

// ExitOutcome is how a process ended. Code is nil when the process was
// terminated by a signal.
type ExitOutcome struct {
	Code    *int
	Skipped bool
}

// Exited builds the outcome of a process that exited with code
func Exited(code int) ExitOutcome {
	return ExitOutcome{Code: &code}
}

// Signaled builds the outcome of a process killed by a signal
func Signaled() ExitOutcome {
	return ExitOutcome{}
}

// WasSignaled reports whether no exit code is available
func (o ExitOutcome) WasSignaled() bool {
	return o.Code == nil && !o.Skipped
}

// Success is true for a zero exit code or a skipped run
func (o ExitOutcome) Success() bool {
	return o.Skipped || (o.Code != nil && *o.Code == 0)
}

// Report is the user-facing status line, empty on success
func (o ExitOutcome) Report() string {
	switch {
	case o.Success():
		return ""
	case o.Code == nil:
		return "Process terminated by signal"
	default:
		return fmt.Sprintf("Exited with status code: %d", *o.Code)
	}
}
