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

// Package exi is the EXI body codec: Decoder and Encoder drive the
// grammar engine over an XML-ish event stream, interning through
// strtab and encoding values through value.
package exi

import "github.com/go-exi/exi/errs"

// QName is a (uri, local_name, optional prefix) triple. Unlike the
// core's internal StrRef-based representation, the public EventSink
// interface exchanges plain Go strings: the caller is expected to copy
// them if it needs to outlive the callback.
type QName struct {
	URI       string
	Local     string
	Prefix    string
	HasPrefix bool
}

// EventSink is the capability-set interface the external object the
// decoder drives with XML events implements (and that the encoder
// reads events from). Every method returning a non-nil error aborts
// the current operation; returning errs.New(errs.HandlerStop, ...)
// unwinds cleanly.
type EventSink interface {
	StartDocument() error
	EndDocument() error
	StartElement(name QName) error
	EndElement() error
	NamespaceDeclaration(uri, prefix string, isLocal bool) error
	Attribute(name QName, value string) error
	Characters(value string) error
	Comment(text string) error
	ProcessingInstruction(target, data string) error
	DocType(name, publicID, systemID, text string) error
}

// NopSink implements EventSink with no-op methods returning nil, so
// callers can embed it and override only the events they care about.
type NopSink struct{}

func (NopSink) StartDocument() error                            { return nil }
func (NopSink) EndDocument() error                               { return nil }
func (NopSink) StartElement(QName) error                         { return nil }
func (NopSink) EndElement() error                                 { return nil }
func (NopSink) NamespaceDeclaration(string, string, bool) error  { return nil }
func (NopSink) Attribute(QName, string) error                     { return nil }
func (NopSink) Characters(string) error                           { return nil }
func (NopSink) Comment(string) error                              { return nil }
func (NopSink) ProcessingInstruction(string, string) error        { return nil }
func (NopSink) DocType(string, string, string, string) error      { return nil }

// stopped reports whether err is the HandlerStop control code.
func stopped(err error) bool { return errs.Is(err, errs.HandlerStop) }
