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

// elemFrame is one open element's grammar bookkeeping: the cached
// built-in grammar pair for its (URI,LocalName) and which of the two
// states (StartTagContent vs ElementContent) currently applies.
type elemFrame struct {
	uriID, localID int
	elem           *grammar.Element
	inStart        bool
}

func (f *elemFrame) current() *grammar.Grammar {
	if f.inStart {
		return f.elem.Start
	}
	return f.elem.Content
}

// Decoder drives the grammar engine over the bit stream, calling back
// into an EventSink. The decode drive loop is modeled on ion.ToJSON's
// peek/dispatch/advance loop (github.com/SnellerInc/sneller/ion): peek
// the production code, dispatch on event kind, advance the bit cursor,
// call the sink.
type Decoder struct {
	r    *bitio.Reader
	hdr  *header.Header
	opts *header.Options
	tab  *strtab.Table

	docState   *grammar.Grammar
	docEnd     *grammar.Grammar
	fragment   bool
	frames     []elemFrame
}

// NewDecoder parses the EXI header from r and prepares the grammar
// engine and string tables for the body that follows.
func NewDecoder(r *bitio.Reader) (*Decoder, error) {
	h, err := header.Decode(r)
	if err != nil {
		return nil, err
	}
	opts := h.Opts
	if opts == nil {
		opts = header.Default()
	}
	body := r
	if opts.Alignment == header.Compression || opts.Alignment == header.PreCompression {
		if body, err = openCompressedBody(r, opts); err != nil {
			return nil, err
		}
	}
	tab := strtab.New(opts.SchemaID != nil, int(opts.ValuePartitionCapacity), int(opts.ValueMaxLength))
	d := &Decoder{r: body, hdr: h, opts: opts, tab: tab, fragment: opts.Fragment}
	if opts.Fragment {
		d.docState = grammar.NewFragmentContent()
	} else {
		d.docState = grammar.NewDocContent()
		d.docEnd = grammar.NewDocEnd()
	}
	return d, nil
}

// Table returns the decoder's string table, for callers that want to
// inspect interned strings after a decode completes.
func (d *Decoder) Table() *strtab.Table { return d.tab }

// Run decodes the entire body, calling back into sink for every event,
// until EndDocument or an error (including the sink returning
// errs.HandlerStop, which Run treats as a clean early stop).
func (d *Decoder) Run(sink EventSink) error {
	if err := sink.StartDocument(); err != nil {
		if stopped(err) {
			return nil
		}
		return err
	}
	for {
		done, err := d.step(sink)
		if err != nil {
			if stopped(err) {
				return nil
			}
			return err
		}
		if done {
			return nil
		}
	}
}

func (d *Decoder) top() *grammar.Grammar {
	if n := len(d.frames); n > 0 {
		return d.frames[n-1].current()
	}
	return d.docState
}

// step decodes one production and returns done=true once EndDocument
// has been consumed.
func (d *Decoder) step(sink EventSink) (bool, error) {
	g := d.top()
	code, err := d.r.ReadBits(g.CodeBits())
	if err != nil {
		return false, err
	}
	prod, ok := g.At(int(code))
	if !ok {
		return false, errs.At(errs.InvalidExiInput, d.r.BitPosition(), "production code %d out of range for state %v", code, g.State)
	}
	g.Use(int(code))

	switch prod.Event {
	case grammar.EvStartDocument:
		return false, nil

	case grammar.EvEndDocument:
		return true, sink.EndDocument()

	case grammar.EvStartElement:
		return false, d.decodeStartElement(sink, prod)

	case grammar.EvEndElement:
		if err := sink.EndElement(); err != nil {
			return false, err
		}
		d.frames = d.frames[:len(d.frames)-1]
		if len(d.frames) == 0 && !d.fragment {
			d.docState = d.docEnd
		}
		return false, nil

	case grammar.EvAttribute:
		return false, d.decodeAttribute(sink, prod)

	case grammar.EvNamespaceDeclaration:
		return false, d.decodeNamespace(sink)

	case grammar.EvCharacters:
		return false, d.decodeCharacters(sink)

	case grammar.EvComment:
		text, err := value.ReadLiteralString(d.r)
		if err != nil {
			return false, err
		}
		return false, sink.Comment(text)

	case grammar.EvProcessingInstruction:
		target, err := value.ReadLiteralString(d.r)
		if err != nil {
			return false, err
		}
		data, err := value.ReadLiteralString(d.r)
		if err != nil {
			return false, err
		}
		return false, sink.ProcessingInstruction(target, data)

	case grammar.EvDocType:
		name, err := value.ReadLiteralString(d.r)
		if err != nil {
			return false, err
		}
		pub, err := value.ReadLiteralString(d.r)
		if err != nil {
			return false, err
		}
		sys, err := value.ReadLiteralString(d.r)
		if err != nil {
			return false, err
		}
		text, err := value.ReadLiteralString(d.r)
		if err != nil {
			return false, err
		}
		return false, sink.DocType(name, pub, sys, text)

	case grammar.EvSelfContained, grammar.EvEntityReference:
		return false, errs.At(errs.NotImplemented, d.r.BitPosition(), "%v production not supported by this build", prod.Event)

	default:
		return false, errs.At(errs.Unexpected, d.r.BitPosition(), "unhandled production event %v", prod.Event)
	}
}

// readName resolves a QName production's (URI,LocalName): either the
// production already names a specific pair (a previously-learned,
// non-wildcard production), or it is the wildcard alternative and the
// IDs (possibly brand new) follow in the stream.
func (d *Decoder) readName(prod grammar.Production) (uriID, localID int, wasWildcard bool, err error) {
	if !prod.Name.IsWildcard() {
		return prod.Name.URI, prod.Name.Local, false, nil
	}
	uriBits := d.tab.URIBits()
	uriCode, err := d.r.ReadBits(uriBits)
	if err != nil {
		return 0, 0, true, err
	}
	n := d.tab.URICount()
	if int(uriCode) == n {
		s, err := value.ReadLiteralString(d.r)
		if err != nil {
			return 0, 0, true, err
		}
		uriID, _ = d.tab.AddURI(s, "")
	} else {
		uriID = int(uriCode)
	}
	localBits := d.tab.LocalNameBits(uriID)
	localCode, err := d.r.ReadBits(localBits)
	if err != nil {
		return 0, 0, true, err
	}
	ln := d.tab.LocalNameCount(uriID)
	if int(localCode) == ln {
		s, err := value.ReadLiteralString(d.r)
		if err != nil {
			return 0, 0, true, err
		}
		localID = d.tab.AddLocalName(uriID, s)
	} else {
		localID = int(localCode)
	}
	return uriID, localID, true, nil
}

func (d *Decoder) qname(uriID, localID int) QName {
	uri, _ := d.tab.GetURI(uriID)
	local, _ := d.tab.GetLocalName(uriID, localID)
	return QName{URI: uri, Local: local}
}

func (d *Decoder) decodeStartElement(sink EventSink, prod grammar.Production) error {
	uriID, localID, wasWildcard, err := d.readName(prod)
	if err != nil {
		return err
	}
	if wasWildcard && len(d.frames) > 0 {
		d.frames[len(d.frames)-1].elem.LearnStartElement(grammar.NameID{URI: uriID, Local: localID})
	}
	if err := sink.StartElement(d.qname(uriID, localID)); err != nil {
		return err
	}
	if len(d.frames) > 0 {
		d.frames[len(d.frames)-1].inStart = false
	}
	child := d.tab.Element(uriID, localID)
	d.frames = append(d.frames, elemFrame{uriID: uriID, localID: localID, elem: child, inStart: true})
	return nil
}

func (d *Decoder) decodeAttribute(sink EventSink, prod grammar.Production) error {
	uriID, localID, wasWildcard, err := d.readName(prod)
	if err != nil {
		return err
	}
	if wasWildcard {
		d.frames[len(d.frames)-1].elem.LearnAttribute(grammar.NameID{URI: uriID, Local: localID})
	}
	val, err := value.DecodeString(d.r, d.tab, uriID, localID)
	if err != nil {
		return err
	}
	return sink.Attribute(d.qname(uriID, localID), val)
}

func (d *Decoder) decodeNamespace(sink EventSink) error {
	uriBits := d.tab.URIBits()
	uriCode, err := d.r.ReadBits(uriBits)
	if err != nil {
		return err
	}
	var uriID int
	if int(uriCode) == d.tab.URICount() {
		s, err := value.ReadLiteralString(d.r)
		if err != nil {
			return err
		}
		uriID, _ = d.tab.AddURI(s, "")
	} else {
		uriID = int(uriCode)
	}
	prefixBits := d.tab.PrefixBits(uriID)
	prefixCode, err := d.r.ReadBits(prefixBits)
	if err != nil {
		return err
	}
	var prefix string
	if int(prefixCode) == d.tab.PrefixCount(uriID) {
		prefix, err = value.ReadLiteralString(d.r)
		if err != nil {
			return err
		}
		d.tab.AddPrefix(uriID, prefix)
	} else {
		prefix, _ = d.tab.GetPrefix(uriID, int(prefixCode))
	}
	isLocal, err := value.DecodeBoolean(d.r)
	if err != nil {
		return err
	}
	uri, _ := d.tab.GetURI(uriID)
	return sink.NamespaceDeclaration(uri, prefix, isLocal)
}

func (d *Decoder) decodeCharacters(sink EventSink) error {
	f := &d.frames[len(d.frames)-1]
	val, err := value.DecodeString(d.r, d.tab, f.uriID, f.localID)
	if err != nil {
		return err
	}
	f.inStart = false
	return sink.Characters(val)
}
