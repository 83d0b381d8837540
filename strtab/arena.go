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

// StrRef is a handle into a Table's arena. It is modeled as an index
// into an append-only slice rather than a raw pointer, so no reference
// cycles or dangling pointers arise from a table outliving one of its
// partitions.
//
// A StrRef is valid for the lifetime of the Table that produced it.
type StrRef int

// arena is the bump allocator backing every string the table interns.
// Entries are never removed (even when a logical partition wraps and
// "forgets" a StrRef, the underlying string stays in the arena so any
// StrRef handed out earlier remains valid).
type arena struct {
	strings []string
}

func (a *arena) intern(s string) StrRef {
	a.strings = append(a.strings, s)
	return StrRef(len(a.strings) - 1)
}

func (a *arena) get(r StrRef) string {
	if int(r) < 0 || int(r) >= len(a.strings) {
		return ""
	}
	return a.strings[r]
}
