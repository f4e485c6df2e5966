package season

import "errors"

// ErrStorageUnavailable marks a failed member-set read; the transition aborts
// before anything is staged.
var ErrStorageUnavailable = errors.New("season: member storage unavailable")

// ErrStorageCommitFailed marks a rejected atomic batch commit. The store
// applies all staged mutations or none, so no compensation is needed beyond
// surfacing this error with zero-effect counts.
var ErrStorageCommitFailed = errors.New("season: transition commit failed")
