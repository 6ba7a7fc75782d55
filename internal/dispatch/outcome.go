package dispatch

// OutcomeKind tells the host what remains to be done after Handle returns.
type OutcomeKind int

const (
	// OutcomeNotCommand means the input is not command syntax and should be
	// sent to the model instead. It is the zero value.
	OutcomeNotCommand OutcomeKind = iota
	// OutcomeHandled means every effect has been applied.
	OutcomeHandled
	// OutcomeScheduleTool asks the host to run ToolName with ToolArgs.
	OutcomeScheduleTool
)

// String returns a short name for logs.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeHandled:
		return "handled"
	case OutcomeScheduleTool:
		return "schedule_tool"
	default:
		return "not_command"
	}
}

// Outcome is the result of Processor.Handle.
type Outcome struct {
	Kind     OutcomeKind
	ToolName string
	ToolArgs map[string]any
}

// IsCommand reports whether the input was recognized as command syntax.
func (o Outcome) IsCommand() bool {
	return o.Kind != OutcomeNotCommand
}

func handled() Outcome {
	return Outcome{Kind: OutcomeHandled}
}
