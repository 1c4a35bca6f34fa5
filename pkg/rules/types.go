package rules

import "fmt"

// ActionKind identifies which action variant a rule carries
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionExec
	ActionRemoteCall
)

func (k ActionKind) String() string {
	switch k {
	case ActionExec:
		return "exec"
	case ActionRemoteCall:
		return "remote_call"
	default:
		return "none"
	}
}

// Rule is one routing directive. Rules are immutable once loaded.
type Rule struct {
	Pattern    string      `yaml:"pattern" toml:"pattern"`
	Exec       []string    `yaml:"exec,omitempty" toml:"exec,omitempty"`
	RemoteCall *RemoteCall `yaml:"remote_call,omitempty" toml:"remote_call,omitempty"`

	// Legacy exec form: command plus argument templates
	Command string   `yaml:"command,omitempty" toml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty" toml:"args,omitempty"`

	// Source is the file the rule was read from, Position its index there
	Source   string `yaml:"-" toml:"-"`
	Position int    `yaml:"-" toml:"-"`
}

// RemoteCall describes a method call on the session bus. Args are generic
// structured values as produced by the file decoder; they are typed against
// Signature only when the rule is dispatched.
type RemoteCall struct {
	Destination string        `yaml:"destination" toml:"destination"`
	Path        string        `yaml:"path" toml:"path"`
	Interface   string        `yaml:"interface" toml:"interface"`
	Method      string        `yaml:"method" toml:"method"`
	Signature   string        `yaml:"signature" toml:"signature"`
	Args        []interface{} `yaml:"args" toml:"args"`
}

// Kind reports the action the rule carries. When both variants are set exec
// wins.
func (r *Rule) Kind() ActionKind {
	switch {
	case len(r.Exec) > 0:
		return ActionExec
	case r.RemoteCall != nil:
		return ActionRemoteCall
	default:
		return ActionNone
	}
}

// HasBothActions reports a rule that sets exec and remote_call together
func (r *Rule) HasBothActions() bool {
	return len(r.Exec) > 0 && r.RemoteCall != nil
}

// Origin formats the rule's source position for messages
func (r *Rule) Origin() string {
	if r.Source == "" {
		return fmt.Sprintf("rule %d", r.Position)
	}
	return fmt.Sprintf("%s: rule %d", r.Source, r.Position)
}

// normalize folds the legacy command/args form into Exec
func (r *Rule) normalize() {
	if len(r.Exec) == 0 && r.Command != "" {
		r.Exec = append([]string{r.Command}, r.Args...)
	}
	r.Command = ""
	r.Args = nil
}
