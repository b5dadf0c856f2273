package feed

import "github.com/dmitrijs2005/infowise/internal/client/models"

// State is the lifecycle position of the feed.
type State int

const (
	StateUnauthenticated State = iota
	StateLoading
	StateNoPreferences
	StateLoaded
	StateLoadFailed
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateLoading:
		return "loading"
	case StateNoPreferences:
		return "no-preferences"
	case StateLoaded:
		return "loaded"
	case StateLoadFailed:
		return "load-failed"
	default:
		return "unknown"
	}
}

// Snapshot is the committed view of the feed. Cards must be treated as
// read-only.
type Snapshot struct {
	State          State
	UserID         models.UserID
	Cards          []Card
	HasPreferences bool
	Loading        bool
	// Cycle identifies the load cycle that produced this snapshot; it
	// matches the "cycle" attribute on that cycle's log lines.
	Cycle          string
}
