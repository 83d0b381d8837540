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

package exi

import (
	"reflect"
	"testing"

	"github.com/go-exi/exi/bitio"
	"github.com/go-exi/exi/errs"
	"github.com/go-exi/exi/header"
)

// event is a single recorded call made to an EventSink, used to compare
// what an Encoder was fed against what a Decoder plays back.
type event struct {
	kind string
	a, b, c, d string
	e          bool
}

// recordingSink implements EventSink by appending every call to events.
type recordingSink struct {
	events []event
}

func (s *recordingSink) StartDocument() error {
	s.events = append(s.events, event{kind: "SD"})
	return nil
}
func (s *recordingSink) EndDocument() error {
	s.events = append(s.events, event{kind: "ED"})
	return nil
}
func (s *recordingSink) StartElement(name QName) error {
	s.events = append(s.events, event{kind: "SE", a: name.URI, b: name.Local})
	return nil
}
func (s *recordingSink) EndElement() error {
	s.events = append(s.events, event{kind: "EE"})
	return nil
}
func (s *recordingSink) NamespaceDeclaration(uri, prefix string, isLocal bool) error {
	s.events = append(s.events, event{kind: "NS", a: uri, b: prefix, e: isLocal})
	return nil
}
func (s *recordingSink) Attribute(name QName, value string) error {
	s.events = append(s.events, event{kind: "AT", a: name.URI, b: name.Local, c: value})
	return nil
}
func (s *recordingSink) Characters(value string) error {
	s.events = append(s.events, event{kind: "CH", a: value})
	return nil
}
func (s *recordingSink) Comment(text string) error {
	s.events = append(s.events, event{kind: "CM", a: text})
	return nil
}
func (s *recordingSink) ProcessingInstruction(target, data string) error {
	s.events = append(s.events, event{kind: "PI", a: target, b: data})
	return nil
}
func (s *recordingSink) DocType(name, publicID, systemID, text string) error {
	s.events = append(s.events, event{kind: "DT", a: name, b: publicID, c: systemID, d: text})
	return nil
}

// feed replays a fixed document through enc, exercising every EventSink
// event kind at least once.
func feed(t *testing.T, enc *Encoder) {
	t.Helper()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	must(enc.StartDocument())
	must(enc.Comment("leading comment"))
	must(enc.StartElement(QName{URI: "urn:test", Local: "root"}))
	must(enc.NamespaceDeclaration("urn:test", "t", true))
	must(enc.Attribute(QName{Local: "id"}, "42"))
	must(enc.ProcessingInstruction("pi-target", "pi-data"))
	must(enc.Characters("hello"))
	must(enc.StartElement(QName{URI: "urn:test", Local: "child"}))
	must(enc.Characters("world"))
	must(enc.EndElement())
	must(enc.EndElement())
	must(enc.EndDocument())
}

func expectedEvents() []event {
	return []event{
		{kind: "SD"},
		{kind: "CM", a: "leading comment"},
		{kind: "SE", a: "urn:test", b: "root"},
		{kind: "NS", a: "urn:test", b: "t", e: true},
		{kind: "AT", a: "", b: "id", c: "42"},
		{kind: "PI", a: "pi-target", b: "pi-data"},
		{kind: "CH", a: "hello"},
		{kind: "SE", a: "urn:test", b: "child"},
		{kind: "CH", a: "world"},
		{kind: "EE"},
		{kind: "EE"},
		{kind: "ED"},
	}
}

func TestEncodeDecodeRoundTripBitPacked(t *testing.T) {
	w := bitio.NewWriter()
	enc, err := NewEncoder(w, &header.Header{HasCookie: true, Opts: header.Default()})
	if err != nil {
		t.Fatal(err)
	}
	feed(t, enc)
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}

	r := bitio.NewReader(w.Bytes())
	dec, err := NewDecoder(r)
	if err != nil {
		t.Fatal(err)
	}
	sink := &recordingSink{}
	if err := dec.Run(sink); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(sink.events, expectedEvents()) {
		t.Fatalf("got %+v, want %+v", sink.events, expectedEvents())
	}
}

func TestEncodeDecodeRoundTripByteAligned(t *testing.T) {
	opts := header.Default()
	opts.Alignment = header.ByteAligned
	w := bitio.NewWriter()
	enc, err := NewEncoder(w, &header.Header{HasCookie: true, Opts: opts})
	if err != nil {
		t.Fatal(err)
	}
	feed(t, enc)
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}

	r := bitio.NewReader(w.Bytes())
	dec, err := NewDecoder(r)
	if err != nil {
		t.Fatal(err)
	}
	sink := &recordingSink{}
	if err := dec.Run(sink); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(sink.events, expectedEvents()) {
		t.Fatalf("got %+v, want %+v", sink.events, expectedEvents())
	}
}

func TestEncodeDecodeRoundTripCompressed(t *testing.T) {
	opts := header.Default()
	opts.Alignment = header.Compression
	w := bitio.NewWriter()
	enc, err := NewEncoder(w, &header.Header{HasCookie: true, Opts: opts})
	if err != nil {
		t.Fatal(err)
	}
	feed(t, enc)
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}

	r := bitio.NewReader(w.Bytes())
	dec, err := NewDecoder(r)
	if err != nil {
		t.Fatal(err)
	}
	sink := &recordingSink{}
	if err := dec.Run(sink); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(sink.events, expectedEvents()) {
		t.Fatalf("got %+v, want %+v", sink.events, expectedEvents())
	}
}

func TestValuePartitionReuseAcrossElements(t *testing.T) {
	w := bitio.NewWriter()
	enc, err := NewEncoder(w, &header.Header{Opts: header.Default()})
	if err != nil {
		t.Fatal(err)
	}
	if err := enc.StartDocument(); err != nil {
		t.Fatal(err)
	}
	if err := enc.StartElement(QName{Local: "root"}); err != nil {
		t.Fatal(err)
	}
	if err := enc.Characters("repeat-me"); err != nil {
		t.Fatal(err)
	}
	if err := enc.StartElement(QName{Local: "root"}); err != nil {
		t.Fatal(err)
	}
	// second occurrence of the same local value under the same (URI,
	// LocalName) should take the local-value-hit branch rather than a
	// fresh literal write.
	if err := enc.Characters("repeat-me"); err != nil {
		t.Fatal(err)
	}
	if err := enc.EndElement(); err != nil {
		t.Fatal(err)
	}
	if err := enc.EndElement(); err != nil {
		t.Fatal(err)
	}
	if err := enc.EndDocument(); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}

	r := bitio.NewReader(w.Bytes())
	dec, err := NewDecoder(r)
	if err != nil {
		t.Fatal(err)
	}
	sink := &recordingSink{}
	if err := dec.Run(sink); err != nil {
		t.Fatal(err)
	}
	want := []event{
		{kind: "SD"},
		{kind: "SE", b: "root"},
		{kind: "CH", a: "repeat-me"},
		{kind: "SE", b: "root"},
		{kind: "CH", a: "repeat-me"},
		{kind: "EE"},
		{kind: "EE"},
		{kind: "ED"},
	}
	if !reflect.DeepEqual(sink.events, want) {
		t.Fatalf("got %+v, want %+v", sink.events, want)
	}
}

func TestHandlerStopEndsRunCleanly(t *testing.T) {
	w := bitio.NewWriter()
	enc, err := NewEncoder(w, &header.Header{Opts: header.Default()})
	if err != nil {
		t.Fatal(err)
	}
	enc.StartDocument()
	enc.StartElement(QName{Local: "root"})
	enc.EndElement()
	enc.EndDocument()
	enc.Close()

	r := bitio.NewReader(w.Bytes())
	dec, err := NewDecoder(r)
	if err != nil {
		t.Fatal(err)
	}
	sink := &stoppingSink{stopAfter: 1}
	if err := dec.Run(sink); err != nil {
		t.Fatalf("HandlerStop should unwind cleanly, got %v", err)
	}
	if len(sink.seen) != 1 {
		t.Fatalf("expected exactly one event to be observed, got %d", len(sink.seen))
	}
}

// stoppingSink embeds NopSink and returns errs.HandlerStop after seeing
// stopAfter StartElement events.
type stoppingSink struct {
	NopSink
	stopAfter int
	seen      []string
}

func (s *stoppingSink) StartElement(name QName) error {
	s.seen = append(s.seen, name.Local)
	if len(s.seen) >= s.stopAfter {
		return errs.New(errs.HandlerStop, "stop after %d", s.stopAfter)
	}
	return nil
}
