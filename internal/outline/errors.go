package outline

import (
	"errors"
	"fmt"
)

var (
	// ErrLevelJump is returned when a line is nested deeper than its ancestors allow.
	ErrLevelJump = errors.New("unexpected indentation jump")
	// ErrOrphanContinuation is returned when a continuation line has nothing to continue.
	ErrOrphanContinuation = errors.New("continuation line with no preceding structural line")
)

// FormatError reports a structural problem in the input at a given source line.
type FormatError struct {
	Line int    // 1-based source line number
	Text string // offending line text
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
