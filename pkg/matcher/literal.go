package matcher

import (
	"regexp/syntax"
	"strings"
	"unicode/utf8"
)

// literalIndex groups rules by a literal their pattern cannot match without
type literalIndex struct {
	byLiteral map[string][]int
	literals  []string // keys of byLiteral in first-seen order
	always    []int    // patterns with no usable literal
}

func newLiteralIndex() *literalIndex {
	return &literalIndex{byLiteral: make(map[string][]int)}
}

func (x *literalIndex) add(i int, pattern string) {
	lit := ""
	if re, err := syntax.Parse(pattern, syntax.Perl); err == nil {
		lit = requiredLiteral(re.Simplify())
	}

	if lit == "" {
		x.always = append(x.always, i)
		return
	}
	if _, seen := x.byLiteral[lit]; !seen {
		x.literals = append(x.literals, lit)
	}
	x.byLiteral[lit] = append(x.byLiteral[lit], i)
}

// candidates calls fn for every rule that may match input
func (x *literalIndex) candidates(input string, fn func(i int)) {
	for _, i := range x.always {
		fn(i)
	}
	for _, lit := range x.literals {
		if !strings.Contains(input, lit) {
			continue
		}
		for _, i := range x.byLiteral[lit] {
			fn(i)
		}
	}
}

// requiredLiteral returns the longest case-sensitive literal that every
// match of re must contain, or "" if none is known.
func requiredLiteral(re *syntax.Regexp) string {
	switch re.Op {
	case syntax.OpLiteral:
		if re.Flags&syntax.FoldCase != 0 {
			return ""
		}
		// regexp reads invalid input bytes as U+FFFD; a substring test would not
		for _, r := range re.Rune {
			if r == utf8.RuneError {
				return ""
			}
		}
		return string(re.Rune)
	case syntax.OpCapture, syntax.OpPlus:
		return requiredLiteral(re.Sub[0])
	case syntax.OpRepeat:
		if re.Min >= 1 {
			return requiredLiteral(re.Sub[0])
		}
	case syntax.OpConcat:
		best := ""
		for _, sub := range re.Sub {
			if lit := requiredLiteral(sub); len(lit) > len(best) {
				best = lit
			}
		}
		return best
	}
	return ""
}
