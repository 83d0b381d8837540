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

package strtab

import "testing"

func TestPreSeededURIs(t *testing.T) {
	tab := New(false, 0, 0)
	if id, ok := tab.LookupURI(URIEmpty); !ok || id != 0 {
		t.Fatalf("empty URI: got %d, %v", id, ok)
	}
	if id, ok := tab.LookupURI(URIXML); !ok || id != 1 {
		t.Fatalf("xml URI: got %d, %v", id, ok)
	}
	if id, ok := tab.LookupURI(URIXSI); !ok || id != 2 {
		t.Fatalf("xsi URI: got %d, %v", id, ok)
	}
	if _, ok := tab.LookupURI(URIXSD); ok {
		t.Fatal("xsd URI should not be seeded without a schema")
	}
	if n := tab.LocalNameCount(1); n != len(xmlLocalNames) {
		t.Fatalf("xml local names: got %d, want %d", n, len(xmlLocalNames))
	}
}

func TestSchemaPresentSeedsXSD(t *testing.T) {
	tab := New(true, 0, 0)
	id, ok := tab.LookupURI(URIXSD)
	if !ok || id != 3 {
		t.Fatalf("xsd URI: got %d, %v", id, ok)
	}
	if n := tab.LocalNameCount(id); n != len(xsdLocalNames) {
		t.Fatalf("xsd local names: got %d, want %d", n, len(xsdLocalNames))
	}
}

func TestAddURINewAndExisting(t *testing.T) {
	tab := New(false, 0, 0)
	id1, isNew1 := tab.AddURI("urn:a", "")
	if !isNew1 {
		t.Fatal("expected new URI")
	}
	id2, isNew2 := tab.AddURI("urn:a", "")
	if isNew2 || id1 != id2 {
		t.Fatalf("expected same existing id, got %d vs %d", id1, id2)
	}
	if uri, ok := tab.GetURI(id1); !ok || uri != "urn:a" {
		t.Fatalf("got %q, %v", uri, ok)
	}
}

func TestAddURIWithPrefix(t *testing.T) {
	tab := New(false, 0, 0)
	id, _ := tab.AddURI("urn:a", "a")
	if pid, ok := tab.LookupPrefix(id, "a"); !ok || pid != 0 {
		t.Fatalf("got %d, %v", pid, ok)
	}
	// re-adding the same URI with a new prefix should add it to the
	// existing URI's prefix partition rather than creating a duplicate URI.
	id2, isNew := tab.AddURI("urn:a", "b")
	if isNew || id2 != id {
		t.Fatalf("got id %d isNew %v, want %d false", id2, isNew, id)
	}
	if pid, ok := tab.LookupPrefix(id, "b"); !ok || pid != 1 {
		t.Fatalf("got %d, %v", pid, ok)
	}
}

func TestLocalNamePartition(t *testing.T) {
	tab := New(false, 0, 0)
	uriID, _ := tab.AddURI("urn:a", "")
	id1 := tab.AddLocalName(uriID, "foo")
	id2 := tab.AddLocalName(uriID, "foo")
	if id1 != id2 {
		t.Fatalf("expected stable id, got %d vs %d", id1, id2)
	}
	id3 := tab.AddLocalName(uriID, "bar")
	if id3 == id1 {
		t.Fatal("distinct names should get distinct ids")
	}
	if n, ok := tab.GetLocalName(uriID, id1); !ok || n != "foo" {
		t.Fatalf("got %q, %v", n, ok)
	}
}

func TestQNameJoining(t *testing.T) {
	tab := New(false, 0, 0)
	uriID, _ := tab.AddURI("urn:a", "")
	localID := tab.AddLocalName(uriID, "foo")
	if qn := tab.QName(uriID, localID); qn != "urn:a:foo" {
		t.Fatalf("got %q", qn)
	}
	// empty URI should not prefix the local name.
	localID2 := tab.AddLocalName(0, "bare")
	if qn := tab.QName(0, localID2); qn != "bare" {
		t.Fatalf("got %q", qn)
	}
}

func TestElementCaching(t *testing.T) {
	tab := New(false, 0, 0)
	uriID, _ := tab.AddURI("urn:a", "")
	localID := tab.AddLocalName(uriID, "foo")
	e1 := tab.Element(uriID, localID)
	e2 := tab.Element(uriID, localID)
	if e1 != e2 {
		t.Fatal("expected the same cached *grammar.Element on repeat lookup")
	}
}

func TestLocalAndGlobalValuePartitions(t *testing.T) {
	tab := New(false, 0, 0)
	uriID, _ := tab.AddURI("urn:a", "")
	localID := tab.AddLocalName(uriID, "foo")

	tab.AddLocalValue(uriID, localID, "hello")
	if id, ok := tab.LookupLocalValue(uriID, localID, "hello"); !ok || id != 0 {
		t.Fatalf("got %d, %v", id, ok)
	}
	if id, ok := tab.LookupGlobalValue("hello"); !ok || id != 0 {
		t.Fatalf("global: got %d, %v", id, ok)
	}

	tab.AddValue("world")
	if id, ok := tab.LookupGlobalValue("world"); !ok || id != 1 {
		t.Fatalf("got %d, %v", id, ok)
	}
	if _, ok := tab.LookupLocalValue(uriID, localID, "world"); ok {
		t.Fatal("AddValue should not populate the local-value partition")
	}
}

func TestValueMaxLengthSkipsCaching(t *testing.T) {
	tab := New(false, 0, 4)
	tab.AddValue("short")
	if _, ok := tab.LookupGlobalValue("short"); ok {
		t.Fatal("value longer than valueMaxLength should not be cached")
	}
	tab.AddValue("ok")
	if _, ok := tab.LookupGlobalValue("ok"); !ok {
		t.Fatal("value within valueMaxLength should be cached")
	}
}

func TestValuePartitionCapacityWraps(t *testing.T) {
	tab := New(false, 2, 0)
	tab.AddValue("a")
	tab.AddValue("b")
	tab.AddValue("c") // wraps and overwrites slot 0, evicting "a"
	if _, ok := tab.LookupGlobalValue("a"); ok {
		t.Fatal("expected \"a\" to be evicted once capacity was exceeded")
	}
	// "c" reuses "a"'s modular slot (id 0); "b" keeps its own slot (id 1).
	if id, ok := tab.LookupGlobalValue("c"); !ok || id != 0 {
		t.Fatalf("got %d, %v", id, ok)
	}
	if id, ok := tab.LookupGlobalValue("b"); !ok || id != 1 {
		t.Fatalf("\"b\" should keep its original slot: got %d, %v", id, ok)
	}
}

func TestBitsForCount(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 2: 2, 3: 2, 4: 3, 7: 3, 8: 4}
	for n, want := range cases {
		if got := bitsForCount(n); got != want {
			t.Fatalf("bitsForCount(%d): got %d, want %d", n, got, want)
		}
	}
}

func TestMonotonicBitsNeverShrinks(t *testing.T) {
	var m monotonicBits
	if got := m.bits(8); got != bitsForCount(8) {
		t.Fatalf("got %d", got)
	}
	wide := m.bits(8)
	if got := m.bits(1); got != wide {
		t.Fatalf("bit width shrank: got %d, want %d", got, wide)
	}
}
