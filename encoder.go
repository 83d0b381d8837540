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
	"github.com/go-exi/exi/bitio"
	"github.com/go-exi/exi/errs"
	"github.com/go-exi/exi/grammar"
	"github.com/go-exi/exi/header"
	"github.com/go-exi/exi/strtab"
	"github.com/go-exi/exi/value"
)

// Encoder is the mirror image of Decoder: callers drive it directly
// (there is no natural Go idiom for "push events from a sink into an
// encoder" the way a SAX parser pulls from a reader, so the caller
// simply calls the methods below in document order, exactly the shape
// EventSink describes).
type Encoder struct {
	w    *bitio.Writer
	opts *header.Options
	tab  *strtab.Table

	docState *grammar.Grammar
	docEnd   *grammar.Grammar
	fragment bool
	frames   []elemFrame

	compressed bool
	bodyW      *bitio.Writer // set when opts.Alignment needs a buffered body
}

// NewEncoder writes h's header to w and returns an Encoder ready to
// accept body events. h.Opts, if nil, is filled in with header.Default().
func NewEncoder(w *bitio.Writer, h *header.Header) (*Encoder, error) {
	if h.Opts == nil {
		h.Opts = header.Default()
	}
	if err := header.Encode(w, h); err != nil {
		return nil, err
	}
	opts := h.Opts
	tab := strtab.New(opts.SchemaID != nil, int(opts.ValuePartitionCapacity), int(opts.ValueMaxLength))
	e := &Encoder{w: w, opts: opts, tab: tab, fragment: opts.Fragment}
	if opts.Fragment {
		e.docState = grammar.NewFragmentContent()
	} else {
		e.docState = grammar.NewDocContent()
		e.docEnd = grammar.NewDocEnd()
	}
	if opts.Alignment == header.Compression || opts.Alignment == header.PreCompression {
		e.compressed = true
		e.bodyW = bitio.NewWriter()
	}
	return e, nil
}

// Table returns the encoder's string table.
func (e *Encoder) Table() *strtab.Table { return e.tab }

func (e *Encoder) out() *bitio.Writer {
	if e.compressed {
		return e.bodyW
	}
	return e.w
}

func (e *Encoder) top() *grammar.Grammar {
	if n := len(e.frames); n > 0 {
		return e.frames[n-1].current()
	}
	return e.docState
}

// writeURI resolves uri against the URI partition, writing either the
// compact existing ID or the "new" code followed by the literal string.
func (e *Encoder) writeURI(uri string) (int, error) {
	w := e.out()
	bits := e.tab.URIBits()
	if id, ok := e.tab.LookupURI(uri); ok {
		return id, w.WriteBits(uint64(id), bits)
	}
	n := e.tab.URICount()
	if err := w.WriteBits(uint64(n), bits); err != nil {
		return 0, err
	}
	if err := value.WriteLiteralString(w, uri); err != nil {
		return 0, err
	}
	id, _ := e.tab.AddURI(uri, "")
	return id, nil
}

func (e *Encoder) writeLocalName(uriID int, local string) (int, error) {
	w := e.out()
	bits := e.tab.LocalNameBits(uriID)
	if id, ok := e.tab.LookupLocalName(uriID, local); ok {
		return id, w.WriteBits(uint64(id), bits)
	}
	n := e.tab.LocalNameCount(uriID)
	if err := w.WriteBits(uint64(n), bits); err != nil {
		return 0, err
	}
	if err := value.WriteLiteralString(w, local); err != nil {
		return 0, err
	}
	return e.tab.AddLocalName(uriID, local), nil
}

// writeName writes a QName production's payload: nothing, if prod
// already names the specific (uriID,localID) pair, or the URI/LocalName
// codes (and any literal fallbacks) otherwise.
func (e *Encoder) writeName(prod grammar.Production, q QName) (uriID, localID int, wasWildcard bool, err error) {
	if !prod.Name.IsWildcard() {
		return prod.Name.URI, prod.Name.Local, false, nil
	}
	uriID, err = e.writeURI(q.URI)
	if err != nil {
		return 0, 0, true, err
	}
	localID, err = e.writeLocalName(uriID, q.Local)
	if err != nil {
		return 0, 0, true, err
	}
	return uriID, localID, true, nil
}

// findProduction resolves the production code for event/name against g:
// a direct hit if (event,name) was already learned, else the wildcard
// fallback. ids, if known (hasName), let a direct hit be found without
// having already written anything to the stream.
func findProduction(g *grammar.Grammar, event grammar.EventKind, uriID, localID int, hasName bool) (int, grammar.Production, error) {
	if hasName {
		if code, ok := g.Find(grammar.Production{Event: event, Name: grammar.NameID{URI: uriID, Local: localID}}); ok {
			prod, _ := g.At(code)
			return code, prod, nil
		}
	}
	if code, ok := g.FindWildcard(event); ok {
		prod, _ := g.At(code)
		return code, prod, nil
	}
	return 0, grammar.Production{}, errs.New(errs.InconsistentProcState, "no matching production for event %v", event)
}

// StartDocument must be the first call on a fresh Encoder.
func (e *Encoder) StartDocument() error { return nil }

// StartElement emits q as a start-element event and pushes a new frame.
func (e *Encoder) StartElement(q QName) error {
	g := e.top()
	uriID, hasURI := e.tab.LookupURI(q.URI)
	localID, hasLocal := -1, false
	if hasURI {
		localID, hasLocal = e.tab.LookupLocalName(uriID, q.Local)
	}
	code, prod, err := findProduction(g, grammar.EvStartElement, uriID, localID, hasURI && hasLocal)
	if err != nil {
		return err
	}
	if err := e.out().WriteBits(uint64(code), g.CodeBits()); err != nil {
		return err
	}
	g.Use(code)
	uriID, localID, wasWildcard, err := e.writeName(prod, q)
	if err != nil {
		return err
	}
	if wasWildcard && len(e.frames) > 0 {
		e.frames[len(e.frames)-1].elem.LearnStartElement(grammar.NameID{URI: uriID, Local: localID})
	}
	if len(e.frames) > 0 {
		e.frames[len(e.frames)-1].inStart = false
	}
	child := e.tab.Element(uriID, localID)
	e.frames = append(e.frames, elemFrame{uriID: uriID, localID: localID, elem: child, inStart: true})
	return nil
}

// EndElement closes the innermost open element.
func (e *Encoder) EndElement() error {
	g := e.top()
	code, ok := g.Find(grammar.Production{Event: grammar.EvEndElement})
	if !ok {
		return errs.New(errs.InconsistentProcState, "no EE production available")
	}
	if err := e.out().WriteBits(uint64(code), g.CodeBits()); err != nil {
		return err
	}
	g.Use(code)
	e.frames = e.frames[:len(e.frames)-1]
	if len(e.frames) == 0 && !e.fragment {
		e.docState = e.docEnd
	}
	return nil
}

// Attribute emits an attribute on the currently open element's start tag.
func (e *Encoder) Attribute(q QName, val string) error {
	g := e.top()
	uriID, hasURI := e.tab.LookupURI(q.URI)
	localID, hasLocal := -1, false
	if hasURI {
		localID, hasLocal = e.tab.LookupLocalName(uriID, q.Local)
	}
	code, prod, err := findProduction(g, grammar.EvAttribute, uriID, localID, hasURI && hasLocal)
	if err != nil {
		return err
	}
	if err := e.out().WriteBits(uint64(code), g.CodeBits()); err != nil {
		return err
	}
	g.Use(code)
	uriID, localID, wasWildcard, err := e.writeName(prod, q)
	if err != nil {
		return err
	}
	if wasWildcard {
		e.frames[len(e.frames)-1].elem.LearnAttribute(grammar.NameID{URI: uriID, Local: localID})
	}
	return value.EncodeString(e.out(), e.tab, uriID, localID, val)
}

// NamespaceDeclaration emits a namespace declaration on the open
// element's start tag.
func (e *Encoder) NamespaceDeclaration(uri, prefix string, isLocal bool) error {
	g := e.top()
	code, ok := g.Find(grammar.Production{Event: grammar.EvNamespaceDeclaration})
	if !ok {
		return errs.New(errs.InconsistentProcState, "no NS production available")
	}
	w := e.out()
	if err := w.WriteBits(uint64(code), g.CodeBits()); err != nil {
		return err
	}
	g.Use(code)
	uriID, err := e.writeURI(uri)
	if err != nil {
		return err
	}
	bits := e.tab.PrefixBits(uriID)
	if id, ok := e.tab.LookupPrefix(uriID, prefix); ok {
		if err := w.WriteBits(uint64(id), bits); err != nil {
			return err
		}
	} else {
		n := e.tab.PrefixCount(uriID)
		if err := w.WriteBits(uint64(n), bits); err != nil {
			return err
		}
		if err := value.WriteLiteralString(w, prefix); err != nil {
			return err
		}
		e.tab.AddPrefix(uriID, prefix)
	}
	return value.EncodeBoolean(w, isLocal)
}

// Characters emits character content for the currently open element.
func (e *Encoder) Characters(s string) error {
	f := &e.frames[len(e.frames)-1]
	g := f.current()
	code, ok := g.Find(grammar.Production{Event: grammar.EvCharacters})
	if !ok {
		return errs.New(errs.InconsistentProcState, "no CH production available")
	}
	w := e.out()
	if err := w.WriteBits(uint64(code), g.CodeBits()); err != nil {
		return err
	}
	g.Use(code)
	f.inStart = false
	return value.EncodeString(w, e.tab, f.uriID, f.localID, s)
}

// Comment emits a comment event at the current grammar position.
func (e *Encoder) Comment(text string) error {
	return e.writeLiteralEvent(grammar.EvComment, text)
}

// ProcessingInstruction emits a processing-instruction event.
func (e *Encoder) ProcessingInstruction(target, data string) error {
	g := e.top()
	code, ok := g.Find(grammar.Production{Event: grammar.EvProcessingInstruction})
	if !ok {
		return errs.New(errs.InconsistentProcState, "no PI production available")
	}
	w := e.out()
	if err := w.WriteBits(uint64(code), g.CodeBits()); err != nil {
		return err
	}
	g.Use(code)
	if err := value.WriteLiteralString(w, target); err != nil {
		return err
	}
	return value.WriteLiteralString(w, data)
}

// DocType emits a document-type declaration event; only valid before
// the root element (DocContent state).
func (e *Encoder) DocType(name, publicID, systemID, text string) error {
	g := e.top()
	code, ok := g.Find(grammar.Production{Event: grammar.EvDocType})
	if !ok {
		return errs.New(errs.InconsistentProcState, "no DT production available")
	}
	w := e.out()
	if err := w.WriteBits(uint64(code), g.CodeBits()); err != nil {
		return err
	}
	g.Use(code)
	for _, s := range []string{name, publicID, systemID, text} {
		if err := value.WriteLiteralString(w, s); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) writeLiteralEvent(ev grammar.EventKind, text string) error {
	g := e.top()
	code, ok := g.Find(grammar.Production{Event: ev})
	if !ok {
		return errs.New(errs.InconsistentProcState, "no production available for event %v", ev)
	}
	w := e.out()
	if err := w.WriteBits(uint64(code), g.CodeBits()); err != nil {
		return err
	}
	g.Use(code)
	return value.WriteLiteralString(w, text)
}

// EndDocument closes the document; it must be the last call on an
// Encoder before Close.
func (e *Encoder) EndDocument() error {
	g := e.top()
	code, ok := g.Find(grammar.Production{Event: grammar.EvEndDocument})
	if !ok {
		return errs.New(errs.InconsistentProcState, "no ED production available")
	}
	if err := e.out().WriteBits(uint64(code), g.CodeBits()); err != nil {
		return err
	}
	g.Use(code)
	return nil
}

// Close flushes any buffered, compressed body into the underlying
// writer and returns any error from doing so. Safe to call
// even when the stream was not compressed (bit-packed/byte-aligned
// writes already landed directly in w).
func (e *Encoder) Close() error {
	if !e.compressed {
		return nil
	}
	return writeCompressedBody(e.w, e.bodyW, e.opts)
}
