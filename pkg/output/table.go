package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/linkrouter/pkg/matcher"
	"github.com/arthur-debert/linkrouter/pkg/rules"
	"github.com/pterm/pterm"
)

// RuleTable renders the rule set in priority order
func RuleTable(w io.Writer, set *matcher.RuleSet) error {
	if set.Len() == 0 {
		_, err := fmt.Fprintln(w, "No rules loaded.")
		return err
	}

	data := pterm.TableData{{"#", "Pattern", "Action", "Target", "Source"}}
	for i, rule := range set.Rules() {
		data = append(data, []string{
			fmt.Sprint(i),
			rule.Pattern,
			rule.Kind().String(),
			target(&rule),
			rule.Origin(),
		})
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithData(data).
		WithWriter(w).
		Render()
}

func target(rule *rules.Rule) string {
	switch rule.Kind() {
	case rules.ActionExec:
		return strings.Join(rule.Exec, " ")
	case rules.ActionRemoteCall:
		rc := rule.RemoteCall
		return fmt.Sprintf("%s %s.%s(%s)", rc.Destination, rc.Interface, rc.Method, rc.Signature)
	}
	return "-"
}
