package artifacts

import (
	"errors"
	"fmt"
)

// ErrNoArtifacts reports that a video has no artifact directory under the
// detections root, typically because it was never scanned.
var ErrNoArtifacts = errors.New("no artifacts for video")

// ParseError is a fatal decode failure for a whole artifact file.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LineWarning records a detection line that was skipped because it did not
// have the expected shape. Warnings never abort a file.
type LineWarning struct {
	LineNumber int
	Line       string
	Reason     string
}

func (w LineWarning) String() string {
	return fmt.Sprintf("line %d skipped (%s): %s", w.LineNumber, w.Reason, w.Line)
}
