package keystow

import (
	"fmt"
)

// Error is the single failure taxonomy surfaced by a Store. It records the
// failed operation, the stringified key (empty for namespace-wide operations
// like clear and listkeys) and the underlying cause. Context cancellation is
// never wrapped in an Error.
type Error struct {
	Op  string
	Key string
	Err error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("keystow: %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("keystow: %s %q failed: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
