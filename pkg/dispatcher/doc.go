// Package dispatcher turns a matched rule into a fully expanded Action.
//
// Dispatch is pure: exec templates are expanded against the match captures
// and remote-call arguments are typed against their signature, but nothing
// is executed. The result is handed to the executor or the bus caller.
package dispatcher
