// Package core routes a batch of URLs through the compiled rule set.
//
// For each URL the first matching rule is dispatched into an action and
// the action is run to completion before the next URL starts. A URL that
// matches no rule is handed, unchanged, to the default command. Failures
// are isolated per URL: they are recorded in that URL's Result and the
// batch carries on. Only loading the rule set can fail the whole run.
package core
