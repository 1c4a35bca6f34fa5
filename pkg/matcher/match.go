package matcher

import (
	"regexp"

	"github.com/arthur-debert/linkrouter/pkg/rules"
)

// Match is the winning rule for an input together with the capture
// positions of the leftmost match of its pattern.
type Match struct {
	Index int
	Rule  *rules.Rule
	Input string

	re         *regexp.Regexp
	submatches []int
}

// Expand substitutes $0, $1, ${1}, ${name} and $$ in template with the
// captures of this match. Groups that did not participate expand to "".
func (m *Match) Expand(template string) string {
	return string(m.re.ExpandString(nil, template, m.Input, m.submatches))
}

// Group returns capture group i, or "" when it did not participate
func (m *Match) Group(i int) string {
	if 2*i+1 >= len(m.submatches) || m.submatches[2*i] < 0 {
		return ""
	}
	return m.Input[m.submatches[2*i]:m.submatches[2*i+1]]
}

// NumGroups is the number of capture groups in the pattern, excluding $0
func (m *Match) NumGroups() int {
	return m.re.NumSubexp()
}
