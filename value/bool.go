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
	"github.com/go-exi/exi/bitio"
	"github.com/go-exi/exi/errs"
)

// EncodeBoolean writes a single bit.
func EncodeBoolean(w *bitio.Writer, v bool) error {
	b := uint64(0)
	if v {
		b = 1
	}
	return w.WriteBits(b, 1)
}

// DecodeBoolean reads a single bit.
func DecodeBoolean(r *bitio.Reader) (bool, error) {
	b, err := r.ReadBits(1)
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// BooleanLexical renders v as the canonical lexical string used when
// preserve.lexicalValues is set and the boolean channel round-trips
// through the string codec instead of a single bit.
func BooleanLexical(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// ParseBooleanLexical accepts any of the four lexical boolean forms
// the EXI spec recognizes ("true", "false", "1", "0").
func ParseBooleanLexical(s string) (bool, error) {
	switch s {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, errs.New(errs.InvalidStringOperation, "not a lexical boolean: %q", s)
	}
}
