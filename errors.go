package neatcommit

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidInput is matched by every InputError.
var ErrInvalidInput = errors.New("invalid analysis request")

// InputError rejects a request before any analysis happens. No partial
// result is produced for it.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidInput) succeed.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// RuleError records a rule whose evaluation was abandoned. The rule's
// matches are discarded and its ID is reported in Result.SkippedRules.
type RuleError struct {
	RuleID string
	Err    error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %s: %v", e.RuleID, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// Error is used when a file could not be read or analyzed during a scan
type Error struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Err    string `json:"error"`
}

// NewError creates Error object
func NewError(line, column int, err string) *Error {
	return &Error{
		Line:   line,
		Column: column,
		Err:    err,
	}
}

// sortErrors sorts the errors of every file by line
func sortErrors(allErrors map[string][]Error) {
	for _, errs := range allErrors {
		sort.Slice(errs, func(i, j int) bool {
			if errs[i].Line == errs[j].Line {
				return errs[i].Column <= errs[j].Column
			}
			return errs[i].Line < errs[j].Line
		})
	}
}
