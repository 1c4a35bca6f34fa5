package matcher

import (
	"regexp"

	"github.com/arthur-debert/linkrouter/pkg/errors"
	"github.com/arthur-debert/linkrouter/pkg/logging"
	"github.com/arthur-debert/linkrouter/pkg/rules"
	"github.com/rs/zerolog"
)

// RuleSet is the compiled, read-only view over an ordered rule list. Index i
// everywhere refers to Rules()[i]. A RuleSet is safe for concurrent reads.
type RuleSet struct {
	rules   []rules.Rule
	regexps []*regexp.Regexp
	index   *literalIndex
	logger  zerolog.Logger
}

// Compile compiles every rule pattern. The first pattern that fails aborts
// the whole set with ErrPattern naming the pattern and where it came from.
func Compile(rs []rules.Rule) (*RuleSet, error) {
	set := &RuleSet{
		rules:   append([]rules.Rule(nil), rs...),
		regexps: make([]*regexp.Regexp, len(rs)),
		index:   newLiteralIndex(),
		logger:  logging.GetLogger("matcher"),
	}

	for i := range set.rules {
		r := &set.rules[i]
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPattern, "invalid pattern %q (%s)", r.Pattern, r.Origin()).
				WithDetail(errors.DetailPattern, r.Pattern).
				WithDetail(errors.DetailRuleIndex, i).
				WithDetail(errors.DetailSource, r.Source).
				WithDetail(errors.DetailPosition, r.Position)
		}
		set.regexps[i] = re
		set.index.add(i, r.Pattern)
	}

	set.logger.Debug().
		Int("rules", len(set.rules)).
		Int("literalGroups", len(set.index.literals)).
		Int("unindexed", len(set.index.always)).
		Msg("Compiled rule set")

	return set, nil
}

// Len is the number of rules
func (s *RuleSet) Len() int {
	return len(s.rules)
}

// Rules returns the rules in priority order
func (s *RuleSet) Rules() []rules.Rule {
	return s.rules
}

// Rule returns rule i
func (s *RuleSet) Rule(i int) *rules.Rule {
	return &s.rules[i]
}

// Matches returns the exact set of rules whose pattern matches anywhere in input
func (s *RuleSet) Matches(input string) MatchSet {
	set := newMatchSet(len(s.rules))
	s.index.candidates(input, func(i int) {
		if !set.Has(i) && s.regexps[i].MatchString(input) {
			set.add(i)
		}
	})
	return set
}

// MatchFirst returns the lowest index among matching rules
func (s *RuleSet) MatchFirst(input string) (int, bool) {
	return s.Matches(input).Min()
}

// Find resolves the winning rule and its captures for input
func (s *RuleSet) Find(input string) (*Match, bool) {
	i, ok := s.MatchFirst(input)
	if !ok {
		return nil, false
	}

	re := s.regexps[i]
	m := &Match{
		Index:      i,
		Rule:       &s.rules[i],
		Input:      input,
		re:         re,
		submatches: re.FindStringSubmatchIndex(input),
	}

	s.logger.Debug().
		Str("input", input).
		Int("rule", i).
		Str("pattern", m.Rule.Pattern).
		Msg("Input matched rule")
	return m, true
}
