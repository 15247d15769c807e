// internal/playback/state.go
package playback

// State represents the playback state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StatePlaying
	StatePaused
	StateStopped
	StateError
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateStopped:
		return "Stopped"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a resource is expected to be alive.
func (s State) IsActive() bool {
	return s == StateLoading || s == StatePlaying || s == StatePaused
}

// trigger is what moves the state machine: a command or a resource callback.
type trigger int

const (
	triggerLoad    trigger = iota // play(track) created a resource
	triggerStarted                // resource started or resumed output
	triggerPaused                 // resource paused output
	triggerStop                   // explicit stop or end of queue
	triggerFail                   // load or play error
	triggerReset                  // leave Stopped or Error before a new play
)

func (t trigger) String() string {
	switch t {
	case triggerLoad:
		return "load"
	case triggerStarted:
		return "started"
	case triggerPaused:
		return "paused"
	case triggerStop:
		return "stop"
	case triggerFail:
		return "fail"
	case triggerReset:
		return "reset"
	default:
		return "unknown"
	}
}

var transitions = map[State]map[trigger]State{
	StateIdle: {
		triggerLoad: StateLoading,
		triggerStop: StateStopped,
		triggerFail: StateError,
	},
	StateLoading: {
		triggerLoad:    StateLoading,
		triggerStarted: StatePlaying,
		triggerStop:    StateStopped,
		triggerFail:    StateError,
	},
	StatePlaying: {
		triggerLoad:    StateLoading,
		triggerStarted: StatePlaying,
		triggerPaused:  StatePaused,
		triggerStop:    StateStopped,
		triggerFail:    StateError,
	},
	StatePaused: {
		triggerLoad:    StateLoading,
		triggerStarted: StatePlaying,
		triggerPaused:  StatePaused,
		triggerStop:    StateStopped,
		triggerFail:    StateError,
	},
	StateStopped: {
		triggerStop:  StateStopped,
		triggerReset: StateIdle,
	},
	StateError: {
		triggerStop:  StateStopped,
		triggerFail:  StateError,
		triggerReset: StateIdle,
	},
}

// transition returns the state reached from s on t, and false if t is not
// valid in s.
func transition(s State, t trigger) (State, bool) {
	next, ok := transitions[s][t]
	return next, ok
}
