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
	"github.com/go-exi/exi/date"
	"github.com/go-exi/exi/errs"
)

// DateTimeKind names the EXI date/time datatypes, each of which
// carries a different subset of fields.
type DateTimeKind int

const (
	KindGYear DateTimeKind = iota
	KindGYearMonth
	KindDate
	KindDateTime
	KindTime
	KindGMonthDay
	KindGMonth
	KindGDay
)

// fields reports which wire fields KindKind's production carries,
// mirroring ion/writer.go's WriteTruncatedTime's per-precision field
// selection, adapted from Ion's byte-aligned timestamp TLV onto EXI's
// bit-packed DateTime production.
func (k DateTimeKind) fields() (year, month, day, time bool) {
	switch k {
	case KindGYear:
		return true, false, false, false
	case KindGYearMonth:
		return true, true, false, false
	case KindDate:
		return true, true, true, false
	case KindDateTime:
		return true, true, true, true
	case KindTime:
		return false, false, false, true
	case KindGMonthDay:
		return false, true, true, false
	case KindGMonth:
		return false, true, false, false
	case KindGDay:
		return false, false, true, false
	default:
		return false, false, false, false
	}
}

// DateTime is the in-memory representation of an EXI date/time value:
// a date.Time wall-clock value (used in place of time.Time, per
// DESIGN.md) truncated to Kind's precision, plus an optional timezone
// offset in minutes from UTC.
type DateTime struct {
	Kind            DateTimeKind
	Value           date.Time
	HasTimezone     bool
	TimezoneMinutes int
}

// EncodeDateTime writes dt's fields in the order Kind.fields()
// selects, followed by an optional timezone offset.
func EncodeDateTime(w *bitio.Writer, dt DateTime) error {
	year, month, day, tm := dt.Kind.fields()
	v := dt.Value
	if year {
		if err := EncodeSignedInt(w, int64(v.Year())-2000); err != nil {
			return err
		}
	}
	if month {
		if err := w.WriteBits(uint64(v.Month()), 4); err != nil {
			return err
		}
	}
	if day {
		if err := w.WriteBits(uint64(v.Day()), 5); err != nil {
			return err
		}
	}
	if tm {
		if err := w.WriteBits(uint64(v.Hour()), 5); err != nil {
			return err
		}
		if err := w.WriteBits(uint64(v.Minute()), 6); err != nil {
			return err
		}
		if err := w.WriteBits(uint64(v.Second()), 6); err != nil {
			return err
		}
		hasFraction := v.Nanosecond() != 0
		if err := EncodeBoolean(w, hasFraction); err != nil {
			return err
		}
		if hasFraction {
			if err := EncodeUnsignedVarint(w, uint64(v.Nanosecond())); err != nil {
				return err
			}
		}
	}
	if err := EncodeBoolean(w, dt.HasTimezone); err != nil {
		return err
	}
	if dt.HasTimezone {
		if err := EncodeSignedInt(w, int64(dt.TimezoneMinutes)); err != nil {
			return err
		}
	}
	return nil
}

// DecodeDateTime inverts EncodeDateTime.
func DecodeDateTime(r *bitio.Reader, kind DateTimeKind) (DateTime, error) {
	yearF, monthF, dayF, timeF := kind.fields()
	year, month, day, hour, min, sec, ns := 2000, 1, 1, 0, 0, 0, 0
	if yearF {
		y, err := DecodeSignedInt(r)
		if err != nil {
			return DateTime{}, err
		}
		year = int(y) + 2000
	}
	if monthF {
		m, err := r.ReadBits(4)
		if err != nil {
			return DateTime{}, err
		}
		month = int(m)
	}
	if dayF {
		d, err := r.ReadBits(5)
		if err != nil {
			return DateTime{}, err
		}
		day = int(d)
	}
	if timeF {
		h, err := r.ReadBits(5)
		if err != nil {
			return DateTime{}, err
		}
		mi, err := r.ReadBits(6)
		if err != nil {
			return DateTime{}, err
		}
		s, err := r.ReadBits(6)
		if err != nil {
			return DateTime{}, err
		}
		hour, min, sec = int(h), int(mi), int(s)
		hasFraction, err := DecodeBoolean(r)
		if err != nil {
			return DateTime{}, err
		}
		if hasFraction {
			frac, err := DecodeUnsignedVarint(r)
			if err != nil {
				return DateTime{}, err
			}
			ns = int(frac)
		}
	}
	hasTZ, err := DecodeBoolean(r)
	if err != nil {
		return DateTime{}, err
	}
	dt := DateTime{Kind: kind, Value: date.Date(year, month, day, hour, min, sec, ns), HasTimezone: hasTZ}
	if hasTZ {
		tz, err := DecodeSignedInt(r)
		if err != nil {
			return DateTime{}, err
		}
		if tz < -14*60 || tz > 14*60 {
			return DateTime{}, errs.At(errs.InvalidExiInput, r.BitPosition(), "timezone offset %d minutes out of range", tz)
		}
		dt.TimezoneMinutes = int(tz)
	}
	return dt, nil
}
