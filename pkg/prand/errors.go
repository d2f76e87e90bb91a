package prand

import (
	"errors"
	"fmt"
)

// ErrInvalidStream is a Go-native error condition the reference C API never
// needed (it never bounds-checked the caller-supplied stream pointer): an
// idiomatic Go API must not panic on an out-of-range stream index instead.
var ErrInvalidStream = errors.New("prand: invalid stream index")

// codeError pairs a stable ErrCode with the operation that produced it,
// mirroring the teacher's *ArchiveError/*ParseError shape.
type codeError struct {
	Op   string
	Code ErrCode
}

func (e *codeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Code.Error())
}

func (e *codeError) Unwrap() error { return e.Code }

func newCodeError(op string, code ErrCode) *codeError {
	return &codeError{Op: op, Code: code}
}

func invalidStreamError(op string, stream int) error {
	return fmt.Errorf("%s: %w: stream %d", op, ErrInvalidStream, stream)
}
