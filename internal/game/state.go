package game

// State is a step of the session state machine.
type State int

const (
	Prompting State = iota
	AwaitingInput
	Parsing
	Comparing
	Terminated
)

func (s State) String() string {
	switch s {
	case Prompting:
		return "prompting"
	case AwaitingInput:
		return "awaiting_input"
	case Parsing:
		return "parsing"
	case Comparing:
		return "comparing"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}
