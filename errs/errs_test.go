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

package errs

import (
	"errors"
	"testing"
)

func TestIsMatchesKind(t *testing.T) {
	err := New(InvalidExiInput, "bad byte")
	if !Is(err, InvalidExiInput) {
		t.Fatal("expected Is to match the error's own Kind")
	}
	if Is(err, NotImplemented) {
		t.Fatal("expected Is to reject an unrelated Kind")
	}
	if Is(errors.New("plain"), InvalidExiInput) {
		t.Fatal("expected Is to reject a non-*Error")
	}
}

func TestAtCarriesOffset(t *testing.T) {
	err := At(BufferEndReached, 42, "ran out of bits")
	if err.Offset != 42 {
		t.Fatalf("got offset %d", err.Offset)
	}
	if err.Kind != BufferEndReached {
		t.Fatalf("got kind %v", err.Kind)
	}
}

func TestNewHasNoOffset(t *testing.T) {
	err := New(Unexpected, "oops")
	if err.Offset != -1 {
		t.Fatalf("got offset %d, want -1", err.Offset)
	}
}

func TestWrapPreservesUnderlyingError(t *testing.T) {
	underlying := errors.New("root cause")
	err := Wrap(InvalidExiInput, 7, underlying)
	if !errors.Is(err, underlying) {
		t.Fatal("expected errors.Is to see through Wrap via Unwrap")
	}
}

func TestKindString(t *testing.T) {
	if InvalidExiHeader.String() != "InvalidExiHeader" {
		t.Fatalf("got %q", InvalidExiHeader.String())
	}
	if got := Kind(999).String(); got != "invalid" {
		t.Fatalf("got %q for an out-of-range Kind", got)
	}
}

func TestWriterSinkReportsOneLine(t *testing.T) {
	var got string
	sink := WriterSink{Write: func(p []byte) (int, error) {
		got += string(p)
		return len(p), nil
	}}
	sink.Report(At(InvalidExiInput, 3, "boom"))
	want := "InvalidExiInput: boom (bit offset 3)\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
