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
	"math"

	"github.com/go-exi/exi/bitio"
)

// specialExponent is the EXI §7.3.8 sentinel exponent value that,
// combined with a fixed mantissa, denotes INF (+1), -INF (-1) or NaN
// (0) instead of a finite mantissa*2^exponent value.
const specialExponent = 1 << 14

// Float is the EXI (mantissa, exponent) floating-point representation
// (base-2, unlike Decimal): value == Mantissa * 2^Exponent for finite
// values. math.Ldexp/math.Frexp give an exact round trip for any
// float64, matching the "mantissa includes the 53 bits of precision"
// shape of ion/writer.go's WriteFloat64 zero/special-case handling,
// translated from IEEE-754 bit layout to EXI's signed-integer pair.
type Float struct {
	Mantissa int64
	Exponent int64
}

// FromFloat64 converts v to its EXI float representation.
func FromFloat64(v float64) Float {
	switch {
	case math.IsNaN(v):
		return Float{Mantissa: 0, Exponent: specialExponent}
	case math.IsInf(v, 1):
		return Float{Mantissa: 1, Exponent: specialExponent}
	case math.IsInf(v, -1):
		return Float{Mantissa: -1, Exponent: specialExponent}
	case v == 0:
		return Float{}
	}
	frac, exp := math.Frexp(v) // v == frac * 2^exp, 0.5 <= |frac| < 1
	mant := int64(frac * (1 << 53))
	return Float{Mantissa: mant, Exponent: int64(exp) - 53}
}

// Float64 converts f back to a float64.
func (f Float) Float64() float64 {
	if f.Exponent == specialExponent {
		switch {
		case f.Mantissa == 0:
			return math.NaN()
		case f.Mantissa > 0:
			return math.Inf(1)
		default:
			return math.Inf(-1)
		}
	}
	return math.Ldexp(float64(f.Mantissa), int(f.Exponent))
}

// EncodeFloat writes f as two signed integers.
func EncodeFloat(w *bitio.Writer, f Float) error {
	if err := EncodeSignedInt(w, f.Mantissa); err != nil {
		return err
	}
	return EncodeSignedInt(w, f.Exponent)
}

// DecodeFloat inverts EncodeFloat.
func DecodeFloat(r *bitio.Reader) (Float, error) {
	mant, err := DecodeSignedInt(r)
	if err != nil {
		return Float{}, err
	}
	exp, err := DecodeSignedInt(r)
	if err != nil {
		return Float{}, err
	}
	return Float{Mantissa: mant, Exponent: exp}, nil
}
