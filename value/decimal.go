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

// Decimal is the EXI §7.4.6 decimal representation: a sign, an integer
// part, and a fraction part recorded as its digit count plus its
// digits read as an integer (so leading zero fraction digits like
// ".05" are preserved as FractionDigits=2, Fraction=5). ion/datum.go
// leaves Ion's own decimal codec unimplemented
// (`fmt.Errorf("unimplemented")`); this is built fresh, following the
// same multi-field composition pattern as the date/time encoding in
// datetime.go.
type Decimal struct {
	Negative       bool
	Integer        uint64
	FractionDigits uint64
	Fraction       uint64
}

// EncodeDecimal writes d as sign + integer + fraction-digit-count + fraction.
func EncodeDecimal(w *bitio.Writer, d Decimal) error {
	sign := uint64(0)
	if d.Negative {
		sign = 1
	}
	if err := w.WriteBits(sign, 1); err != nil {
		return err
	}
	if err := EncodeUnsignedVarint(w, d.Integer); err != nil {
		return err
	}
	if err := EncodeUnsignedVarint(w, d.FractionDigits); err != nil {
		return err
	}
	return EncodeUnsignedVarint(w, d.Fraction)
}

// DecodeDecimal inverts EncodeDecimal.
func DecodeDecimal(r *bitio.Reader) (Decimal, error) {
	sign, err := r.ReadBits(1)
	if err != nil {
		return Decimal{}, err
	}
	var d Decimal
	d.Negative = sign == 1
	if d.Integer, err = DecodeUnsignedVarint(r); err != nil {
		return Decimal{}, err
	}
	if d.FractionDigits, err = DecodeUnsignedVarint(r); err != nil {
		return Decimal{}, err
	}
	if d.Fraction, err = DecodeUnsignedVarint(r); err != nil {
		return Decimal{}, err
	}
	return d, nil
}
