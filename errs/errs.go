// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package errs defines the closed error taxonomy shared by every EXI
// codec package and a line-oriented diagnostic sink for rendering it.
package errs

import "fmt"

// Kind is one of the closed set of error categories the codec can raise.
type Kind int

const (
	Ok Kind = iota
	NotImplemented
	Unexpected
	OutOfBoundBuffer
	NullReference
	MemoryAllocationError
	InvalidExiHeader
	InconsistentProcState
	InvalidExiInput
	BufferEndReached
	ParsingComplete
	InvalidExiConfiguration
	NoPrefixesPreservedXmlSchema
	InvalidStringOperation
	HeaderOptionsMismatch
	HandlerStop
)

func (k Kind) String() string {
	switch k {
	case Ok:
		return "Ok"
	case NotImplemented:
		return "NotImplemented"
	case Unexpected:
		return "Unexpected"
	case OutOfBoundBuffer:
		return "OutOfBoundBuffer"
	case NullReference:
		return "NullReference"
	case MemoryAllocationError:
		return "MemoryAllocationError"
	case InvalidExiHeader:
		return "InvalidExiHeader"
	case InconsistentProcState:
		return "InconsistentProcState"
	case InvalidExiInput:
		return "InvalidExiInput"
	case BufferEndReached:
		return "BufferEndReached"
	case ParsingComplete:
		return "ParsingComplete"
	case InvalidExiConfiguration:
		return "InvalidExiConfiguration"
	case NoPrefixesPreservedXmlSchema:
		return "NoPrefixesPreservedXmlSchema"
	case InvalidStringOperation:
		return "InvalidStringOperation"
	case HeaderOptionsMismatch:
		return "HeaderOptionsMismatch"
	case HandlerStop:
		return "HandlerStop"
	default:
		return "invalid"
	}
}

// Error is the error type returned from every codec leaf function.
//
// Offset is the bit offset within the stream at which the error was
// detected, or -1 when no offset is meaningful (e.g. configuration
// errors detected before any bits are consumed).
type Error struct {
	Kind    Kind
	Msg     string
	Offset  int64
	wrapped error
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s: %s (bit offset %d)", e.Kind, e.Msg, e.Offset)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.wrapped }

// Is reports whether err carries the given Kind.
func Is(err error, k Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == k
}

// New builds an *Error with no known stream offset.
func New(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...), Offset: -1}
}

// At builds an *Error anchored to a bit offset in the stream.
func At(k Kind, offset int64, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...), Offset: offset}
}

// Wrap attaches Kind to an underlying error, preserving it for errors.Unwrap.
func Wrap(k Kind, offset int64, err error) *Error {
	return &Error{Kind: k, Msg: err.Error(), Offset: offset, wrapped: err}
}

// Sink is a line-oriented character sink that renders one line per error.
type Sink interface {
	Report(err *Error)
}

// WriterSink adapts an io.Writer-like Write([]byte) into a Sink.
type WriterSink struct {
	Write func(p []byte) (int, error)
}

// Report writes one line of the form "Kind: message (bit offset N)\n".
func (w WriterSink) Report(err *Error) {
	if w.Write == nil || err == nil {
		return
	}
	line := err.Error() + "\n"
	w.Write([]byte(line))
}
