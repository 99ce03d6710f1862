package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSelection is wrapped by every *InvalidSelectionError.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrContentValidation is wrapped by every *ContentValidationError.
	ErrContentValidation = errors.New("content validation failed")
	// ErrRunOver is returned for input after the run has been won or lost.
	ErrRunOver = errors.New("run is over")
)

type SelectionReason string

const (
	ReasonOutOfRange   SelectionReason = "out of range"
	ReasonUnaffordable SelectionReason = "unaffordable"
	ReasonWrongPhase   SelectionReason = "wrong phase"
)

// InvalidSelectionError rejects a player input without touching state.
type InvalidSelectionError struct {
	Reason SelectionReason
	Index  int
	Detail string
}

func (e *InvalidSelectionError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid selection %d: %s: %s", e.Index, e.Reason, e.Detail)
	}
	return fmt.Sprintf("invalid selection %d: %s", e.Index, e.Reason)
}

func (e *InvalidSelectionError) Unwrap() error {
	return ErrInvalidSelection
}

// Is matches another *InvalidSelectionError by reason.
func (e *InvalidSelectionError) Is(target error) bool {
	if t, ok := target.(*InvalidSelectionError); ok {
		return e.Reason == t.Reason
	}
	return false
}

// Problem is one defect found while loading or validating content.
type Problem struct {
	Source  string
	Line    int
	ID      string
	Message string
}

func (p Problem) String() string {
	var b strings.Builder
	b.WriteString(p.Source)
	if p.Line > 0 {
		fmt.Fprintf(&b, ":%d", p.Line)
	}
	if p.ID != "" {
		fmt.Fprintf(&b, " [%s]", p.ID)
	}
	b.WriteString(": ")
	b.WriteString(p.Message)
	return b.String()
}

type ContentValidationError struct {
	Problems []Problem
}

func (e *ContentValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, p.String())
	}
	return fmt.Sprintf("%s: %d problem(s): %s", ErrContentValidation, len(e.Problems), strings.Join(parts, "; "))
}

func (e *ContentValidationError) Unwrap() error {
	return ErrContentValidation
}
