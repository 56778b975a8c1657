package engine

// State is a frame loop lifecycle phase
type State uint8

const (
	StateInitializing State = iota
	StateRunning
	StateShuttingDown
	StateTerminated
)

var stateNames = [...]string{
	StateInitializing: "initializing",
	StateRunning:      "running",
	StateShuttingDown: "shutting_down",
	StateTerminated:   "terminated",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}
