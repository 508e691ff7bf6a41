package transcribe

import (
	"errors"
	"fmt"
)

var ErrOutputMissing = errors.New("transcription output missing")

// ProcessError describes a failed run of the external model.
type ProcessError struct {
	Tool     string
	ExitCode int
	Stderr   string
	Cause    error
}

func (e *ProcessError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s failed (exit %d): %s", e.Tool, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s failed (exit %d): %v", e.Tool, e.ExitCode, e.Cause)
}

func (e *ProcessError) Unwrap() error {
	return e.Cause
}
