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

import "github.com/go-exi/exi/bitio"

// WriteLiteralString writes s as a length (unsigned varint) followed
// by that many UCS code points, with no string-table participation.
// Used for values that are never worth compressing by index: new
// URI/prefix/local-name strings the moment they are interned (the
// table has nothing to hit yet) and header Options string fields.
func WriteLiteralString(w *bitio.Writer, s string) error {
	runes := []rune(s)
	if err := EncodeUnsignedVarint(w, uint64(len(runes))); err != nil {
		return err
	}
	for _, r := range runes {
		if err := EncodeUnsignedVarint(w, uint64(r)); err != nil {
			return err
		}
	}
	return nil
}

// ReadLiteralString inverts WriteLiteralString.
func ReadLiteralString(r *bitio.Reader) (string, error) {
	n, err := DecodeUnsignedVarint(r)
	if err != nil {
		return "", err
	}
	runes := make([]rune, n)
	for i := range runes {
		cp, err := DecodeUnsignedVarint(r)
		if err != nil {
			return "", err
		}
		runes[i] = rune(cp)
	}
	return string(runes), nil
}
