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

package grammar

// NewDocContent returns the top-level grammar state active before the
// root element of a non-fragment document.
func NewDocContent() *Grammar {
	return newGrammar(DocContent, []Production{
		{Event: EvStartElement, Name: Any},
		{Event: EvComment},
		{Event: EvProcessingInstruction},
		{Event: EvDocType},
	})
}

// NewDocEnd returns the grammar state active after the root element's
// end tag and before end-document.
func NewDocEnd() *Grammar {
	return newGrammar(DocEnd, []Production{
		{Event: EvEndDocument},
		{Event: EvComment},
		{Event: EvProcessingInstruction},
	})
}

// NewFragmentContent returns the top-level grammar used in Fragment
// mode: SE(*) may repeat at the root with no single-root constraint,
// terminated by ED.
func NewFragmentContent() *Grammar {
	return newGrammar(DocContent, []Production{
		{Event: EvStartElement, Name: Any},
		{Event: EvEndDocument},
		{Event: EvComment},
		{Event: EvProcessingInstruction},
	})
}

func newStartTagContent() *Grammar {
	return newGrammar(StartTagContent, []Production{
		{Event: EvEndElement},
		{Event: EvAttribute, Name: Any},
		{Event: EvNamespaceDeclaration},
		{Event: EvSelfContained},
		{Event: EvStartElement, Name: Any},
		{Event: EvCharacters},
		{Event: EvEntityReference},
		{Event: EvComment},
		{Event: EvProcessingInstruction},
	})
}

func newElementContent() *Grammar {
	return newGrammar(ElementContent, []Production{
		{Event: EvEndElement},
		{Event: EvStartElement, Name: Any},
		{Event: EvCharacters},
		{Event: EvEntityReference},
		{Event: EvComment},
		{Event: EvProcessingInstruction},
	})
}

// Element bundles the two per-element grammar states the EXI built-in
// grammar threads together for a single element name: its
// StartTagContent and ElementContent productions. A new child element
// name is learned into both states; a new attribute name is learned
// into StartTagContent only. The encoder and decoder, which each hold
// their own Element instance per (URI,LocalName), apply the same
// learning steps and so evolve in lock-step.
type Element struct {
	Start   *Grammar
	Content *Grammar
}

// NewElement returns a fresh Element with the built-in production
// skeleton for an element seen for the first time.
func NewElement() *Element {
	return &Element{Start: newStartTagContent(), Content: newElementContent()}
}

// LearnAttribute records a newly observed attribute name. AT is only a
// StartTagContent production (it never appears in ElementContent), so
// only Start is updated.
func (e *Element) LearnAttribute(name NameID) {
	e.Start.Learn(Production{Event: EvAttribute, Name: name})
}

// LearnStartElement records a newly observed child element name,
// learned into both grammar states since SE(*) is a valid alternative
// in StartTagContent and in ElementContent alike.
func (e *Element) LearnStartElement(name NameID) {
	e.Start.Learn(Production{Event: EvStartElement, Name: name})
	e.Content.Learn(Production{Event: EvStartElement, Name: name})
}
