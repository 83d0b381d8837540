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

// Package strtab implements the EXI string tables: the URI, Prefix,
// LocalName, LocalValue and GlobalValue partitions that both the
// encoder and the decoder use to compress repeated strings into
// compact IDs.
//
// The package is the direct descendant of ion.Symtab
// (github.com/SnellerInc/sneller/ion): Intern/Symbolize there
// correspond to AddValue/AddLocalValue/AddURI/AddLocalName here,
// generalized from Ion's single flat symbol space into EXI's
// five-partition, URI/LocalName-scoped structure.
package strtab

import "github.com/go-exi/exi/grammar"

// Pre-seeded namespace URIs, always present at fixed compact IDs.
const (
	URIEmpty = "" // URI id 0
	URIXML   = "http://www.w3.org/XML/1998/namespace"
	URIXSI   = "http://www.w3.org/2001/XMLSchema-instance"
	URIXSD   = "http://www.w3.org/2001/XMLSchema"
)

// xmlLocalNames / xsiLocalNames / xsdLocalNames are the built-in local
// names pre-seeded into the respective URI's LocalName partition.
var xmlLocalNames = []string{"base", "id", "lang", "space"}
var xsiLocalNames = []string{"nil", "type"}

// xsdLocalNames are the built-in XML Schema simple type names (EXI
// spec Appendix A); they are seeded only when a schema is configured.
var xsdLocalNames = []string{
	"ENTITIES", "ENTITY", "ID", "IDREF", "IDREFS", "NCName", "NMTOKEN",
	"NMTOKENS", "NOTATION", "Name", "QName", "anySimpleType", "anyType",
	"anyURI", "base64Binary", "boolean", "byte", "date", "dateTime",
	"decimal", "double", "duration", "float", "gDay", "gMonth",
	"gMonthDay", "gYear", "gYearMonth", "hexBinary", "int", "integer",
	"language", "long", "negativeInteger", "nonNegativeInteger",
	"nonPositiveInteger", "normalizedString", "positiveInteger", "short",
	"string", "time", "token", "unsignedByte", "unsignedInt",
	"unsignedLong", "unsignedShort",
}

// localNameEntry is one LocalName partition entry: the name itself, an
// optional pre-joined "uri:local" qname, the (URI,LocalName)-scoped
// local-value partition, and the per-element built-in grammar pair
// cached on first use.
type localNameEntry struct {
	name   StrRef
	qname  StrRef
	hasQN  bool
	values valuePartition
	elem   *grammar.Element
}

// uriEntry is one URI partition entry: the URI string, its prefix
// sub-partition, and its ordered LocalName sub-partition.
type uriEntry struct {
	uri        StrRef
	prefixes   prefixPartition
	localNames []localNameEntry
	localIndex map[string]int
}

// Table holds the five EXI string-table partitions plus the arena that
// owns every interned string.
type Table struct {
	arena arena

	uris     []uriEntry
	uriIndex map[string]int
	uriBits  monotonicBits

	globalValues valuePartition

	valueMaxLength int // 0 means unbounded
}

// New returns a freshly-seeded Table. schemaPresent controls whether
// the XSD namespace (URI id 3) and its built-in type names are
// pre-seeded; valuePartitionCapacity (0 = unbounded) and valueMaxLength
// (0 = unbounded) configure value-partition wrapping and the maximum
// length of a value worth caching.
func New(schemaPresent bool, valuePartitionCapacity, valueMaxLength int) *Table {
	t := &Table{uriIndex: make(map[string]int), valueMaxLength: valueMaxLength}
	t.globalValues.init(valuePartitionCapacity)

	t.seedURI(URIEmpty, nil)
	t.seedURI(URIXML, xmlLocalNames, "xml")
	t.seedURI(URIXSI, xsiLocalNames, "xsi")
	if schemaPresent {
		t.seedURI(URIXSD, xsdLocalNames)
	}
	return t
}

func (t *Table) seedURI(uri string, localNames []string, prefixes ...string) {
	id := len(t.uris)
	e := uriEntry{uri: t.arena.intern(uri), localIndex: make(map[string]int)}
	for _, p := range prefixes {
		e.prefixes.add(&t.arena, p)
	}
	for _, n := range localNames {
		e.localIndex[n] = len(e.localNames)
		e.localNames = append(e.localNames, localNameEntry{name: t.arena.intern(n)})
	}
	t.uris = append(t.uris, e)
	t.uriIndex[uri] = id
}

// --- URI partition ---

// LookupURI returns the compact ID of uri, if already interned.
func (t *Table) LookupURI(uri string) (int, bool) {
	id, ok := t.uriIndex[uri]
	return id, ok
}

// AddURI interns uri if new and returns its compact ID. If prefix is
// non-empty, it is also added to the URI's prefix partition (used when
// a start-element/namespace-declaration event introduces both at once).
func (t *Table) AddURI(uri string, prefix string) (id int, isNew bool) {
	if id, ok := t.uriIndex[uri]; ok {
		if prefix != "" {
			t.AddPrefix(id, prefix)
		}
		return id, false
	}
	id = len(t.uris)
	e := uriEntry{uri: t.arena.intern(uri), localIndex: make(map[string]int)}
	if prefix != "" {
		e.prefixes.add(&t.arena, prefix)
	}
	t.uris = append(t.uris, e)
	t.uriIndex[uri] = id
	return id, true
}

// GetURI returns the URI string for a compact ID.
func (t *Table) GetURI(id int) (string, bool) {
	if id < 0 || id >= len(t.uris) {
		return "", false
	}
	return t.arena.get(t.uris[id].uri), true
}

// URICount returns the number of interned URIs.
func (t *Table) URICount() int { return len(t.uris) }

// URIBits returns the current compact-ID bit width of the URI partition.
func (t *Table) URIBits() int { return t.uriBits.bits(len(t.uris)) }

// --- Prefix partition ---

// LookupPrefix returns the compact ID of prefix within uriID's prefix
// partition, if already interned.
func (t *Table) LookupPrefix(uriID int, prefix string) (int, bool) {
	if uriID < 0 || uriID >= len(t.uris) {
		return 0, false
	}
	return t.uris[uriID].prefixes.lookup(&t.arena, prefix)
}

// AddPrefix interns prefix into uriID's prefix partition if not already
// present and returns its compact ID.
func (t *Table) AddPrefix(uriID int, prefix string) int {
	u := &t.uris[uriID]
	if id, ok := u.prefixes.lookup(&t.arena, prefix); ok {
		return id
	}
	return u.prefixes.add(&t.arena, prefix)
}

// GetPrefix returns the prefix string at compact ID id within uriID's
// prefix partition.
func (t *Table) GetPrefix(uriID, id int) (string, bool) {
	if uriID < 0 || uriID >= len(t.uris) {
		return "", false
	}
	return t.uris[uriID].prefixes.at(&t.arena, id)
}

// PrefixCount returns the number of prefixes interned for uriID.
func (t *Table) PrefixCount(uriID int) int {
	if uriID < 0 || uriID >= len(t.uris) {
		return 0
	}
	return t.uris[uriID].prefixes.count()
}

// PrefixBits returns the compact-ID bit width of uriID's prefix partition.
func (t *Table) PrefixBits(uriID int) int {
	if uriID < 0 || uriID >= len(t.uris) {
		return 0
	}
	return t.uris[uriID].prefixes.bits.bits(t.uris[uriID].prefixes.count())
}

// --- LocalName partition ---

// LookupLocalName returns the compact ID of name within uriID's
// LocalName partition, if already interned.
func (t *Table) LookupLocalName(uriID int, name string) (int, bool) {
	if uriID < 0 || uriID >= len(t.uris) {
		return 0, false
	}
	id, ok := t.uris[uriID].localIndex[name]
	return id, ok
}

// AddLocalName interns name into uriID's LocalName partition and
// returns its compact ID, creating the backing built-in element
// grammar pair lazily.
func (t *Table) AddLocalName(uriID int, name string) int {
	u := &t.uris[uriID]
	if id, ok := u.localIndex[name]; ok {
		return id
	}
	id := len(u.localNames)
	u.localIndex[name] = id
	u.localNames = append(u.localNames, localNameEntry{name: t.arena.intern(name)})
	return id
}

// GetLocalName returns the local-name string for (uriID, localID).
func (t *Table) GetLocalName(uriID, localID int) (string, bool) {
	if uriID < 0 || uriID >= len(t.uris) {
		return "", false
	}
	u := &t.uris[uriID]
	if localID < 0 || localID >= len(u.localNames) {
		return "", false
	}
	return t.arena.get(u.localNames[localID].name), true
}

// QName returns (and caches) the pre-joined "uri:local" form of a name.
func (t *Table) QName(uriID, localID int) string {
	u := &t.uris[uriID]
	e := &u.localNames[localID]
	if e.hasQN {
		return t.arena.get(e.qname)
	}
	uri := t.arena.get(u.uri)
	local := t.arena.get(e.name)
	qn := local
	if uri != "" {
		qn = uri + ":" + local
	}
	e.qname = t.arena.intern(qn)
	e.hasQN = true
	return qn
}

// LocalNameCount returns the number of local names interned for uriID.
func (t *Table) LocalNameCount(uriID int) int {
	if uriID < 0 || uriID >= len(t.uris) {
		return 0
	}
	return len(t.uris[uriID].localNames)
}

// LocalNameBits returns the compact-ID bit width of uriID's LocalName
// partition. The bit width is computed fresh (not cached per-URI as a
// monotonicBits, since each URI's partition grows independently) via
// the shared bitsForCount rule.
func (t *Table) LocalNameBits(uriID int) int {
	return bitsForCount(t.LocalNameCount(uriID))
}

// Element returns the built-in element grammar pair cached for
// (uriID, localID), creating it on first use.
func (t *Table) Element(uriID, localID int) *grammar.Element {
	e := &t.uris[uriID].localNames[localID]
	if e.elem == nil {
		e.elem = grammar.NewElement()
	}
	return e.elem
}

// --- Local-value partition ---

// AddLocalValue interns value into (uriID, localID)'s local-value
// partition and the global-value partition, honoring ValueMaxLength
// (values longer than the configured maximum are never cached, so
// every future occurrence takes the string codec's miss branch).
func (t *Table) AddLocalValue(uriID, localID int, value string) {
	if t.valueMaxLength > 0 && len(value) > t.valueMaxLength {
		return
	}
	u := &t.uris[uriID]
	lv := &u.localNames[localID].values
	if lv.toindex == nil {
		lv.init(t.globalValues.capacity)
	}
	lv.add(&t.arena, value)
	t.globalValues.add(&t.arena, value)
}

// AddValue interns value into the global-value partition only (used
// for character content and attribute values not scoped to a single
// (URI,LocalName)).
func (t *Table) AddValue(value string) {
	if t.valueMaxLength > 0 && len(value) > t.valueMaxLength {
		return
	}
	t.globalValues.add(&t.arena, value)
}

// LookupLocalValue returns the compact ID of value within (uriID,
// localID)'s local-value partition, if present.
func (t *Table) LookupLocalValue(uriID, localID int, value string) (int, bool) {
	return t.uris[uriID].localNames[localID].values.lookup(value)
}

// LookupGlobalValue returns the compact ID of value within the global
// value partition, if present.
func (t *Table) LookupGlobalValue(value string) (int, bool) {
	return t.globalValues.lookup(value)
}

// GetLocalValue returns the value string for a local-value compact ID.
func (t *Table) GetLocalValue(uriID, localID, id int) (string, bool) {
	return t.uris[uriID].localNames[localID].values.get(&t.arena, id)
}

// GetValue returns the value string for a global-value compact ID.
func (t *Table) GetValue(id int) (string, bool) {
	return t.globalValues.get(&t.arena, id)
}

// LocalValueBits returns the compact-ID bit width of (uriID,
// localID)'s local-value partition.
func (t *Table) LocalValueBits(uriID, localID int) int {
	return t.uris[uriID].localNames[localID].values.bitWidth()
}

// GlobalValueBits returns the compact-ID bit width of the global-value
// partition.
func (t *Table) GlobalValueBits() int { return t.globalValues.bitWidth() }
