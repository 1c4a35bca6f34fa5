// Package matcher compiles an ordered rule list into a RuleSet and answers
// "which rule handles this input" with first-match-wins semantics.
//
// Every pattern is compiled on its own (captures are needed later by the
// dispatcher) and also registered in a literal index: a pattern whose syntax
// tree requires some case-sensitive literal can only match inputs containing
// that literal, so patterns sharing a literal are rejected together with one
// substring test. Candidates that pass the index are confirmed by running
// their own regexp, which keeps the match set exact.
//
// The match set is a bitset. MatchFirst reduces it to the lowest rule index
// explicitly and never relies on iteration order.
package matcher
