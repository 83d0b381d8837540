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

// Package value implements the EXI primitive datatype codec:
// unsigned/signed integers, n-bit raw fields, booleans, decimals,
// floats, datetimes, binary, and the string codec that bridges into
// the strtab partitions.
//
// The branch structure follows ion/writer.go's WriteInt/WriteFloat64/
// WriteTime (github.com/SnellerInc/sneller/ion) in spirit: the same
// sign/magnitude split, zero fast path, and field-by-field composition
// idea, retargeted from byte-aligned Ion TLV fields onto bitio's bit
// cursor.
package value

import (
	"github.com/go-exi/exi/bitio"
	"github.com/go-exi/exi/errs"
)

// maxVarintGroups bounds the number of 7-bit groups accepted when
// decoding an unsigned varint: 10 groups cover the full 64-bit range
// (ceil(64/7) == 10); an 11th continuation bit is InvalidExiInput.
const maxVarintGroups = 10

// EncodeUnsignedVarint writes v as a sequence of 7-bit groups
// low-to-high, each preceded by a continuation bit.
func EncodeUnsignedVarint(w *bitio.Writer, v uint64) error {
	for {
		group := v & 0x7f
		v >>= 7
		cont := uint64(0)
		if v != 0 {
			cont = 1
		}
		if err := w.WriteBits(cont, 1); err != nil {
			return err
		}
		if err := w.WriteBits(group, 7); err != nil {
			return err
		}
		if v == 0 {
			return nil
		}
	}
}

// DecodeUnsignedVarint reads an EXI unsigned-integer varint.
func DecodeUnsignedVarint(r *bitio.Reader) (uint64, error) {
	var result uint64
	var shift uint
	for i := 0; i < maxVarintGroups; i++ {
		cont, err := r.ReadBits(1)
		if err != nil {
			return 0, err
		}
		group, err := r.ReadBits(7)
		if err != nil {
			return 0, err
		}
		result |= group << shift
		shift += 7
		if cont == 0 {
			return result, nil
		}
	}
	return 0, errs.At(errs.InvalidExiInput, r.BitPosition(), "unsigned varint exceeds 64 bits")
}

// EncodeSignedInt writes a sign bit followed by an unsigned varint of
// the magnitude; a negative v is encoded as magnitude (-v)-1 with sign
// 1. There is exactly one encoding of zero (sign 0, magnitude 0).
func EncodeSignedInt(w *bitio.Writer, v int64) error {
	sign := uint64(0)
	var mag uint64
	if v < 0 {
		sign = 1
		mag = uint64(-(v + 1))
	} else {
		mag = uint64(v)
	}
	if err := w.WriteBits(sign, 1); err != nil {
		return err
	}
	return EncodeUnsignedVarint(w, mag)
}

// DecodeSignedInt inverts EncodeSignedInt.
func DecodeSignedInt(r *bitio.Reader) (int64, error) {
	sign, err := r.ReadBits(1)
	if err != nil {
		return 0, err
	}
	mag, err := DecodeUnsignedVarint(r)
	if err != nil {
		return 0, err
	}
	if sign == 1 {
		return -(int64(mag) + 1), nil
	}
	return int64(mag), nil
}

// EncodeNBitUint writes value as a raw big-endian field of exactly n bits.
func EncodeNBitUint(w *bitio.Writer, value uint64, n int) error {
	return w.WriteBits(value, n)
}

// DecodeNBitUint reads an n-bit raw big-endian field.
func DecodeNBitUint(r *bitio.Reader, n int) (uint64, error) {
	return r.ReadBits(n)
}
