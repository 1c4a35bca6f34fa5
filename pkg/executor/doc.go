// Package executor runs expanded exec actions as child processes.
//
// A process inherits the caller's standard streams and runs to natural
// completion; there is no cancellation. The outcome carries the exit code,
// or no code at all when the process was terminated by a signal.
package executor
