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

// prefixPartition is one URI's prefix sub-partition. Most URIs carry
// at most one prefix, so the common case of zero or one prefix is
// stored in a tagged inline slot rather than a slice; a second or
// later prefix spills into overflow.
type prefixPartition struct {
	inline    StrRef
	hasInline bool
	overflow  []StrRef
	bits      monotonicBits
}

func (p *prefixPartition) count() int {
	if !p.hasInline {
		return 0
	}
	return 1 + len(p.overflow)
}

func (p *prefixPartition) lookup(a *arena, s string) (int, bool) {
	if p.hasInline && a.get(p.inline) == s {
		return 0, true
	}
	for i, r := range p.overflow {
		if a.get(r) == s {
			return i + 1, true
		}
	}
	return 0, false
}

func (p *prefixPartition) add(a *arena, s string) int {
	ref := a.intern(s)
	if !p.hasInline {
		p.inline = ref
		p.hasInline = true
		return 0
	}
	p.overflow = append(p.overflow, ref)
	return len(p.overflow)
}

func (p *prefixPartition) at(a *arena, id int) (string, bool) {
	if !p.hasInline || id < 0 {
		return "", false
	}
	if id == 0 {
		return a.get(p.inline), true
	}
	j := id - 1
	if j >= len(p.overflow) {
		return "", false
	}
	return a.get(p.overflow[j]), true
}
