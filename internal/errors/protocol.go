package errors

import "fmt"

// ProtocolViolation reports a value outside the closed action-result protocol.
// It signals a version mismatch between the command core and a command, so it
// is raised with panic rather than returned.
type ProtocolViolation struct {
	// Kind names the protocol element that was violated, e.g. "result" or "dialog".
	Kind  string
	Value any
}

func (e *ProtocolViolation) Error() string {
	return fmt.Sprintf("unhandled slash command %s: %v", e.Kind, e.Value)
}

// PanicProtocol panics with a ProtocolViolation for the given element.
func PanicProtocol(kind string, value any) {
	panic(&ProtocolViolation{Kind: kind, Value: value})
}
