package dispatcher

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/linkrouter/pkg/rules"
	"github.com/arthur-debert/linkrouter/pkg/signature"
)

// Action is a fully expanded rule action, ready for the invocation boundary
type Action interface {
	Kind() rules.ActionKind
	String() string
}

// ExecAction runs Argv[0] with the remaining elements as arguments
type ExecAction struct {
	Argv []string
}

func (a *ExecAction) Kind() rules.ActionKind { return rules.ActionExec }

// Program is the executable name
func (a *ExecAction) Program() string { return a.Argv[0] }

// Args are the expanded argument templates
func (a *ExecAction) Args() []string { return a.Argv[1:] }

func (a *ExecAction) String() string {
	quoted := make([]string, len(a.Argv))
	for i, arg := range a.Argv {
		if arg == "" || strings.ContainsAny(arg, " \t\n'\"\\$") {
			quoted[i] = fmt.Sprintf("%q", arg)
		} else {
			quoted[i] = arg
		}
	}
	return strings.Join(quoted, " ")
}

// RemoteCallAction calls Interface.Method on the object at Path owned by
// Destination. Args are already typed against Signature.
type RemoteCallAction struct {
	Destination string
	Path        string
	Interface   string
	Method      string
	Signature   string
	Args        []signature.Value
}

func (a *RemoteCallAction) Kind() rules.ActionKind { return rules.ActionRemoteCall }

// Member is the fully qualified method name
func (a *RemoteCallAction) Member() string {
	return a.Interface + "." + a.Method
}

func (a *RemoteCallAction) String() string {
	return fmt.Sprintf("%s %s %s(%s)", a.Destination, a.Path, a.Member(), a.Signature)
}
