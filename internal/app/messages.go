package app

import "github.com/llehouerou/ferrous/internal/playback"

// ServiceStateChangedMsg is sent when the playback state changes.
type ServiceStateChangedMsg struct {
	Previous, Current playback.State
}

// ServiceTrackChangedMsg is sent when the current track changes.
type ServiceTrackChangedMsg struct {
	Previous, Current string
	Index             int
}

// ServiceQueueChangedMsg is sent when the playlist is replaced.
type ServiceQueueChangedMsg struct {
	Count int
}

// ServiceModeChangedMsg is sent when shuffle, repeat or liked toggles.
type ServiceModeChangedMsg struct {
	Shuffle, Repeat, Liked bool
}

// ServiceErrorMsg is sent when a track fails to load or play.
type ServiceErrorMsg struct {
	Operation string
	Track     string
	Err       error
}

// ServiceClosedMsg is sent when the playback service is closed.
type ServiceClosedMsg struct{}

// RefreshDoneMsg reports the outcome of a library refresh.
type RefreshDoneMsg struct {
	Err error
}
