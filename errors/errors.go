// Package errors holds the error types that abort a run.
// Each of them knows the process exit status it maps to.
package errors

import (
	goerrors "errors"
	"fmt"
)

// exit statuses
const (
	CodeSourceUnavailable = 2
	CodeParse             = 3
	CodeEmptyInput        = 4
	CodeInternal          = 1
)

// Coder is implemented by errors that carry an exit status.
type Coder interface {
	Code() int
}

// Code returns the exit status for err.
// Errors that don't implement Coder map to CodeInternal.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var c Coder
	if goerrors.As(err, &c) {
		return c.Code()
	}
	return CodeInternal
}

// SourceUnavailable means the input could not be opened or read.
type SourceUnavailable struct {
	Path string
	Err  error
}

func NewSourceUnavailable(path string, err error) *SourceUnavailable {
	return &SourceUnavailable{Path: path, Err: err}
}

func (s *SourceUnavailable) Code() int {
	return CodeSourceUnavailable
}

func (s *SourceUnavailable) Error() string {
	return fmt.Sprintf("source %q unavailable: %s", s.Path, s.Err)
}

func (s *SourceUnavailable) Unwrap() error {
	return s.Err
}

// Parse means a row of the input violates the format.
// Row is 1-based and counts the header as row 1.
type Parse struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func NewParse(row int, column, value string, err error) *Parse {
	return &Parse{Row: row, Column: column, Value: value, Err: err}
}

func (p *Parse) Code() int {
	return CodeParse
}

func (p *Parse) Error() string {
	if p.Column == "" {
		return fmt.Sprintf("row %d: %s", p.Row, p.Err)
	}
	return fmt.Sprintf("row %d, column %q: cannot parse %q: %s", p.Row, p.Column, p.Value, p.Err)
}

func (p *Parse) Unwrap() error {
	return p.Err
}

// EmptyInput means a statistic was requested over zero records.
type EmptyInput string

func NewEmptyInput(what string) EmptyInput {
	return EmptyInput(what)
}

func (e EmptyInput) Code() int {
	return CodeEmptyInput
}

func (e EmptyInput) Error() string {
	return string(e)
}
