package core

import (
	"github.com/arthur-debert/linkrouter/pkg/dispatcher"
	"github.com/arthur-debert/linkrouter/pkg/executor"
	"github.com/arthur-debert/linkrouter/pkg/matcher"
)

// Resolution is what a URL routes to, before anything runs
type Resolution struct {
	URL string
	// Match is nil when the default command was chosen
	Match  *matcher.Match
	Action dispatcher.Action
}

// IsDefault reports whether no rule matched
func (r *Resolution) IsDefault() bool {
	return r.Match == nil
}

// RuleIndex is the winning rule's index, or -1 for the default command
func (r *Resolution) RuleIndex() int {
	if r.Match == nil {
		return -1
	}
	return r.Match.Index
}

// Result is the outcome of routing one URL
type Result struct {
	URL        string
	Resolution *Resolution

	// Exit is set for exec actions that ran
	Exit *executor.ExitOutcome

	// Err is a dispatch, spawn or remote-call failure for this URL
	Err error
}

// Failed reports a routing failure. A program that ran and exited
// non-zero is reported but is not a routing failure.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Report is the status line for an exec outcome, empty when there is
// nothing to say
func (r Result) Report() string {
	if r.Exit == nil {
		return ""
	}
	return r.Exit.Report()
}
