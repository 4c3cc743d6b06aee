package app

import "github.com/jwulff/sdpview/internal/inspect"

// SourceLoadedMsg carries the result of reading and inspecting the source.
// Gen identifies the load request; results from superseded requests are
// dropped.
type SourceLoadedMsg struct {
	Gen        int
	Inspection *inspect.Inspection
	Err        error
}

// ClearTransientErrorMsg clears a transient error after a timeout.
type ClearTransientErrorMsg struct{}
