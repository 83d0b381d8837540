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

package value

import (
	"strings"

	"github.com/go-exi/exi/bitio"
	"github.com/go-exi/exi/errs"
	"github.com/go-exi/exi/strtab"
)

// String length codes: the first field is a single EXI
// unsigned-integer "length code" L, not a one-bit flag. L is 0 for the
// empty string, 1 for a local-partition hit, 2 for a global-partition
// hit, and len(s)+2 for a literal miss; a miss always has len(s) >= 1,
// so its L is at least 3 and never collides with the other codes.
const (
	lcEmpty     = 0
	lcLocalHit  = 1
	lcGlobalHit = 2
	lcMissBase  = 2 // miss length L == len(s) + lcMissBase
)

// EncodeString implements the four-branch string codec: empty, local
// partition hit, global partition hit, or a literal miss.
// localID < 0 means the value is not scoped to a (URI,LocalName) pair
// (e.g. character content outside any locally-scoped channel); in that
// case only the global partition participates.
func EncodeString(w *bitio.Writer, t *strtab.Table, uriID, localID int, s string) error {
	if s == "" {
		return EncodeUnsignedVarint(w, lcEmpty)
	}
	if localID >= 0 {
		if id, ok := t.LookupLocalValue(uriID, localID, s); ok {
			if err := EncodeUnsignedVarint(w, lcLocalHit); err != nil {
				return err
			}
			return w.WriteBits(uint64(id), t.LocalValueBits(uriID, localID))
		}
	}
	if id, ok := t.LookupGlobalValue(s); ok {
		if err := EncodeUnsignedVarint(w, lcGlobalHit); err != nil {
			return err
		}
		return w.WriteBits(uint64(id), t.GlobalValueBits())
	}
	runes := []rune(s)
	if err := EncodeUnsignedVarint(w, uint64(len(runes))+lcMissBase); err != nil {
		return err
	}
	for _, r := range runes {
		if err := EncodeUnsignedVarint(w, uint64(r)); err != nil {
			return err
		}
	}
	if localID >= 0 {
		t.AddLocalValue(uriID, localID, s)
	} else {
		t.AddValue(s)
	}
	return nil
}

// DecodeString inverts EncodeString.
func DecodeString(r *bitio.Reader, t *strtab.Table, uriID, localID int) (string, error) {
	l, err := DecodeUnsignedVarint(r)
	if err != nil {
		return "", err
	}
	switch l {
	case lcEmpty:
		return "", nil
	case lcLocalHit:
		if localID < 0 {
			return "", errs.At(errs.InvalidExiInput, r.BitPosition(), "local-value hit outside a scoped channel")
		}
		width := t.LocalValueBits(uriID, localID)
		id, err := r.ReadBits(width)
		if err != nil {
			return "", err
		}
		s, ok := t.GetLocalValue(uriID, localID, int(id))
		if !ok {
			return "", errs.At(errs.InvalidExiInput, r.BitPosition(), "local value id %d out of range", id)
		}
		return s, nil
	case lcGlobalHit:
		width := t.GlobalValueBits()
		id, err := r.ReadBits(width)
		if err != nil {
			return "", err
		}
		s, ok := t.GetValue(int(id))
		if !ok {
			return "", errs.At(errs.InvalidExiInput, r.BitPosition(), "global value id %d out of range", id)
		}
		return s, nil
	default:
		n := int(l) - lcMissBase
		if n < 0 {
			return "", errs.At(errs.InvalidExiInput, r.BitPosition(), "negative string length code %d", l)
		}
		var sb strings.Builder
		sb.Grow(n)
		for i := 0; i < n; i++ {
			cp, err := DecodeUnsignedVarint(r)
			if err != nil {
				return "", err
			}
			sb.WriteRune(rune(cp))
		}
		s := sb.String()
		if localID >= 0 {
			t.AddLocalValue(uriID, localID, s)
		} else {
			t.AddValue(s)
		}
		return s, nil
	}
}
