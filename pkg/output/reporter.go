package output

import (
	"fmt"
	"io"

	"github.com/arthur-debert/linkrouter/pkg/core"
	"github.com/arthur-debert/linkrouter/pkg/errors"
	"github.com/arthur-debert/linkrouter/pkg/output/styles"
	"github.com/charmbracelet/lipgloss"
)

// Reporter writes per-URL status lines. Status for processes that ran
// goes to out; routing failures go to errOut.
type Reporter struct {
	out      io.Writer
	errOut   io.Writer
	dryRun   bool
	renderer *lipgloss.Renderer
	errRend  *lipgloss.Renderer
}

// NewReporter creates a Reporter
func NewReporter(out, errOut io.Writer, dryRun bool) *Reporter {
	return &Reporter{
		out:      out,
		errOut:   errOut,
		dryRun:   dryRun,
		renderer: lipgloss.NewRenderer(out),
		errRend:  lipgloss.NewRenderer(errOut),
	}
}

func (r *Reporter) render(rend *lipgloss.Renderer, name, text string) string {
	return rend.NewStyle().Inherit(styles.GetStyle(name)).Render(text)
}

// Result reports one routed URL. Successful runs print nothing unless
// this is a dry run.
func (r *Reporter) Result(res core.Result) {
	if res.Err != nil {
		r.Error(res.URL, res.Err)
		return
	}

	if r.dryRun && res.Resolution != nil {
		fmt.Fprintf(r.out, "%s %s\n", r.render(r.renderer, "Muted", "[dry-run]"), r.describe(res.Resolution))
		return
	}

	if msg := res.Report(); msg != "" {
		fmt.Fprintln(r.out, r.render(r.renderer, "Warning", msg))
	}
}

// Error reports a routing failure for url
func (r *Reporter) Error(url string, err error) {
	line := fmt.Sprintf("%s %s: %v", r.render(r.errRend, "Error", "Error:"), url, err)
	if code := errors.GetErrorCode(err); code == errors.ErrNoAction {
		if details := errors.GetErrorDetails(err); details != nil {
			if src, ok := details[errors.DetailSource].(string); ok && src != "" {
				line += r.render(r.errRend, "Muted", " ("+src+")")
			}
		}
	}
	fmt.Fprintln(r.errOut, line)
}

// Resolution prints what url routes to without running it
func (r *Reporter) Resolution(res *core.Resolution, err error) {
	if err != nil {
		r.Error(res.URL, err)
		return
	}
	fmt.Fprintln(r.out, r.describe(res))
}

func (r *Reporter) describe(res *core.Resolution) string {
	url := r.render(r.renderer, "URL", res.URL)
	action := r.render(r.renderer, "Action", res.Action.String())
	if res.IsDefault() {
		return fmt.Sprintf("%s -> %s %s", url, action, r.render(r.renderer, "Muted", "(default command)"))
	}
	rule := res.Match.Rule
	return fmt.Sprintf("%s -> %s %s %s",
		url, action,
		r.render(r.renderer, "Pattern", rule.Pattern),
		r.render(r.renderer, "Muted", fmt.Sprintf("(rule %d, %s)", res.Match.Index, rule.Origin())))
}
