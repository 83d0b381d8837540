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

import "testing"

func TestNoNameProductionsUseZeroName(t *testing.T) {
	g := newStartTagContent()
	if _, ok := g.Find(Production{Event: EvEndElement}); !ok {
		t.Fatal("expected EE production with zero-value Name to be findable via Find")
	}
	if _, ok := g.FindWildcard(EvEndElement); ok {
		t.Fatal("EE has no wildcard alternative; FindWildcard must not match it")
	}
}

func TestWildcardProductionsFindable(t *testing.T) {
	g := newStartTagContent()
	if _, ok := g.FindWildcard(EvStartElement); !ok {
		t.Fatal("expected SE(*) to be findable via FindWildcard")
	}
	if _, ok := g.FindWildcard(EvAttribute); !ok {
		t.Fatal("expected AT(*) to be findable via FindWildcard")
	}
}

func TestLearnInsertsBeforeWildcard(t *testing.T) {
	g := newStartTagContent()
	wcCode, ok := g.FindWildcard(EvStartElement)
	if !ok {
		t.Fatal("expected SE(*) present")
	}
	name := NameID{URI: 0, Local: 5}
	g.Learn(Production{Event: EvStartElement, Name: name})
	learnedCode, ok := g.Find(Production{Event: EvStartElement, Name: name})
	if !ok {
		t.Fatal("expected learned SE(name) to be findable")
	}
	if learnedCode >= wcCode+1 {
		t.Fatalf("learned production (code %d) should sort before the wildcard (now at higher code)", learnedCode)
	}
	newWcCode, ok := g.FindWildcard(EvStartElement)
	if !ok || newWcCode != wcCode+1 {
		t.Fatalf("wildcard should have shifted one slot back, got %d want %d", newWcCode, wcCode+1)
	}
}

func TestLearnIsIdempotent(t *testing.T) {
	g := newStartTagContent()
	name := NameID{URI: 0, Local: 5}
	g.Learn(Production{Event: EvStartElement, Name: name})
	n := g.Len()
	g.Learn(Production{Event: EvStartElement, Name: name})
	if g.Len() != n {
		t.Fatalf("re-learning an existing production should be a no-op, got len %d want %d", g.Len(), n)
	}
}

func TestUsePromotesProduction(t *testing.T) {
	g := newStartTagContent()
	// EvSelfContained sits a few slots into the built-in production list.
	code, ok := g.Find(Production{Event: EvSelfContained})
	if !ok || code == 0 {
		t.Fatalf("expected EvSelfContained at a non-zero code, got %d, %v", code, ok)
	}
	g.Use(code)
	newCode, ok := g.Find(Production{Event: EvSelfContained})
	if !ok || newCode != code-1 {
		t.Fatalf("expected promotion to code %d, got %d", code-1, newCode)
	}
}

func TestCodeBits(t *testing.T) {
	g := newElementContent()
	want := bitsFor(g.Len())
	if got := g.CodeBits(); got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestElementSharesLearnedNamesAcrossStartAndContent(t *testing.T) {
	e := NewElement()
	name := NameID{URI: 0, Local: 7}
	e.LearnStartElement(name)
	if _, ok := e.Start.Find(Production{Event: EvStartElement, Name: name}); !ok {
		t.Fatal("expected Start to learn the child element name")
	}
	if _, ok := e.Content.Find(Production{Event: EvStartElement, Name: name}); !ok {
		t.Fatal("expected Content to learn the child element name too")
	}
}

func TestElementLearnAttributeOnlyAffectsStart(t *testing.T) {
	e := NewElement()
	name := NameID{URI: 0, Local: 9}
	e.LearnAttribute(name)
	if _, ok := e.Start.Find(Production{Event: EvAttribute, Name: name}); !ok {
		t.Fatal("expected Start to learn the attribute name")
	}
	if _, ok := e.Content.Find(Production{Event: EvAttribute, Name: name}); ok {
		t.Fatal("ElementContent must never learn an attribute production")
	}
}

func TestDocContentAndDocEnd(t *testing.T) {
	dc := NewDocContent()
	if _, ok := dc.FindWildcard(EvStartElement); !ok {
		t.Fatal("expected SE(*) in DocContent")
	}
	de := NewDocEnd()
	if _, ok := de.Find(Production{Event: EvEndDocument}); !ok {
		t.Fatal("expected ED in DocEnd")
	}
}

func TestFragmentContentAllowsRepeatedRoots(t *testing.T) {
	fc := NewFragmentContent()
	if _, ok := fc.FindWildcard(EvStartElement); !ok {
		t.Fatal("expected SE(*) in FragmentContent")
	}
	if _, ok := fc.Find(Production{Event: EvEndDocument}); !ok {
		t.Fatal("expected ED directly reachable in FragmentContent")
	}
}
