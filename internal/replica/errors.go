package replica

import "fmt"

// ResolutionError reports that the replica database could not be reached
// or queried. Nothing useful can be produced without membership data, so
// callers treat it as fatal for the run.
type ResolutionError struct {
	Message string
	Cause   error
}

func (e *ResolutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resolution error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("resolution error: %s", e.Message)
}

func (e *ResolutionError) Unwrap() error {
	return e.Cause
}
