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

package bitio

import (
	"testing"

	"github.com/go-exi/exi/errs"
)

func TestBitRoundTrip(t *testing.T) {
	for n := 0; n <= 64; n++ {
		var max uint64
		if n == 64 {
			max = ^uint64(0)
		} else {
			max = (uint64(1) << n) - 1
		}
		values := []uint64{0, max}
		if n > 1 {
			values = append(values, max/2, max/3+1)
		}
		for _, v := range values {
			v &= max
			w := NewWriter()
			if err := w.WriteBits(v, n); err != nil {
				t.Fatalf("n=%d v=%d: write: %v", n, v, err)
			}
			if got := w.Len(); got != n {
				t.Fatalf("n=%d: writer position = %d, want %d", n, got, n)
			}
			r := NewReader(w.Bytes())
			got, err := r.ReadBits(n)
			if err != nil {
				t.Fatalf("n=%d v=%d: read: %v", n, v, err)
			}
			if got != v {
				t.Fatalf("n=%d: got %d, want %d", n, got, v)
			}
			if r.BitPosition() != int64(n) {
				t.Fatalf("n=%d: reader position = %d, want %d", n, r.BitPosition(), n)
			}
		}
	}
}

func TestCrossByteBoundary(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0x1, 1)  // 1
	w.WriteBits(0x2a, 6) // 101010
	w.WriteBits(0x3, 2)  // 11
	// bits so far: 1 101010 11 = 1 1010 1011 (9 bits)
	r := NewReader(w.Bytes())
	b0, _ := r.ReadBits(1)
	b1, _ := r.ReadBits(6)
	b2, _ := r.ReadBits(2)
	if b0 != 1 || b1 != 0x2a || b2 != 3 {
		t.Fatalf("got %d %d %d", b0, b1, b2)
	}
}

func TestZeroBitReadWriteIsNoop(t *testing.T) {
	w := NewWriter()
	if err := w.WriteBits(0xff, 0); err != nil {
		t.Fatal(err)
	}
	if w.Len() != 0 {
		t.Fatalf("expected 0 bits written, got %d", w.Len())
	}
	r := NewReader([]byte{0xff})
	v, err := r.ReadBits(0)
	if err != nil || v != 0 {
		t.Fatalf("ReadBits(0) = %d, %v", v, err)
	}
	if r.BitPosition() != 0 {
		t.Fatalf("expected position 0, got %d", r.BitPosition())
	}
}

func TestBufferEndReached(t *testing.T) {
	r := NewReader([]byte{0xff})
	if _, err := r.ReadBits(16); !errs.Is(err, errs.BufferEndReached) {
		t.Fatalf("expected BufferEndReached, got %v", err)
	}
}

func TestBufferEndRecovery(t *testing.T) {
	// Reading a 16-bit integer with only one byte available fails;
	// after appending the second byte, the read succeeds and yields
	// the original value once enough bytes are available.
	w := NewWriter()
	w.WriteBits(0xabcd, 16)
	full := append([]byte(nil), w.Bytes()...)

	r := NewReader(full[:1])
	if _, err := r.ReadBits(16); !errs.Is(err, errs.BufferEndReached) {
		t.Fatalf("expected BufferEndReached, got %v", err)
	}
	r.Feed(full[1:])
	got, err := r.ReadBits(16)
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if got != 0xabcd {
		t.Fatalf("got %#x, want 0xabcd", got)
	}
}

func TestAlignToByte(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0x5, 3)
	w.AlignToByte()
	w.WriteBytes([]byte{0x42})
	r := NewReader(w.Bytes())
	r.ReadBits(3)
	r.AlignToByte()
	got, err := r.ReadByteAligned(1)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 0x42 {
		t.Fatalf("got %#x, want 0x42", got[0])
	}
}

func TestUnusedTrailingBitsAreZero(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0x1, 1)
	b := w.Bytes()
	if b[0] != 0x80 {
		t.Fatalf("expected only the high bit set, got %08b", b[0])
	}
}

func TestPartialByteUntouchedByLaterWrite(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0x3, 2) // 11
	w.WriteBits(0x0, 2) // 00 -> byte so far 1100????
	if w.Bytes()[0] != 0xC0 {
		t.Fatalf("got %08b, want 11000000", w.Bytes()[0])
	}
}
