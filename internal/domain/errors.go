package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrCatalogEmpty = errors.New("no index: reindex sources first")
	ErrEmptyClips   = errors.New("empty clips list")
	ErrValidation   = errors.New("validation failed")

	// ErrIncompatibleSegments means final-mode segments cannot be
	// stream-copied into one file.
	ErrIncompatibleSegments = errors.New("segments have incompatible video streams")
)

// ValidationError rejects a submission before anything is persisted.
// Pos is the 1-based clip position, or 0 when the error is not tied to a clip.
type ValidationError struct {
	Pos    int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Pos > 0 {
		return fmt.Sprintf("%s for clip %d", e.Reason, e.Pos)
	}
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ProcessError reports a failed external tool invocation.
type ProcessError struct {
	Tool     string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("%s failed", e.Tool)
	if e.ExitCode > 0 {
		msg = fmt.Sprintf("%s (exit %d)", msg, e.ExitCode)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		return msg + ": " + stderr
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Step names one stage of the assembly pipeline.
type Step string

const (
	StepPrepare Step = "prepare"
	StepCut     Step = "cut"
	StepCheck   Step = "check"
	StepConcat  Step = "concat"
	StepProbe   Step = "probe"
)

// StepFailure is the structured result of a failed pipeline step.
type StepFailure struct {
	Step Step
	Pos  int
	Err  error
}

func (f *StepFailure) Error() string {
	if f.Pos > 0 {
		return fmt.Sprintf("%s clip %d: %v", f.Step, f.Pos, f.Err)
	}
	return fmt.Sprintf("%s: %v", f.Step, f.Err)
}

func (f *StepFailure) Unwrap() error {
	return f.Err
}
