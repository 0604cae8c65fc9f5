package viewports

import "fmt"

// commandKind discriminates the pending-command union.
type commandKind uint8

const (
	cmdCreateWindow commandKind = iota
	cmdDestroyWindow
	cmdShowWindow
	cmdSetPosition
	cmdSetSize
	cmdSetFocus
	cmdSetTitle
)

// String returns the command name for logs and panics.
func (k commandKind) String() string {
	switch k {
	case cmdCreateWindow:
		return "CreateWindow"
	case cmdDestroyWindow:
		return "DestroyWindow"
	case cmdShowWindow:
		return "ShowWindow"
	case cmdSetPosition:
		return "SetPosition"
	case cmdSetSize:
		return "SetSize"
	case cmdSetFocus:
		return "SetFocus"
	case cmdSetTitle:
		return "SetTitle"
	default:
		return fmt.Sprintf("commandKind(%d)", uint8(k))
	}
}

// command is one deferred window operation, tagged with the key it
// targets. Commands accumulate in issuance order and are applied FIFO by
// [Proxy.Drain]; only the fields relevant to the kind are set.
type command struct {
	key       Key
	kind      commandKind
	vec       Vec2   // SetPosition, SetSize
	text      string // SetTitle
	decorated bool   // CreateWindow
}
