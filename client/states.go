package client

// State reflects where in the request/response cycle a session currently is.
// Every non-terminal state can transition into Failed; Done and Failed are
// terminal until the next Do call.
type State uint8

const (
	Idle State = iota
	Connecting
	Sending
	AwaitingResponse
	ParsingResponse
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Connecting:
		return "connecting"
	case Sending:
		return "sending"
	case AwaitingResponse:
		return "awaiting response"
	case ParsingResponse:
		return "parsing response"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
