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

// EncodeBinary writes a length-prefixed byte string: an
// unsigned-integer length followed by that many 8-bit raw fields.
func EncodeBinary(w *bitio.Writer, b []byte) error {
	if err := EncodeUnsignedVarint(w, uint64(len(b))); err != nil {
		return err
	}
	for _, by := range b {
		if err := w.WriteBits(uint64(by), 8); err != nil {
			return err
		}
	}
	return nil
}

// DecodeBinary inverts EncodeBinary.
func DecodeBinary(r *bitio.Reader) ([]byte, error) {
	n, err := DecodeUnsignedVarint(r)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	for i := range out {
		v, err := r.ReadBits(8)
		if err != nil {
			return nil, err
		}
		out[i] = byte(v)
	}
	return out, nil
}
