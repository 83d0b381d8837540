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

package header

import (
	"github.com/go-exi/exi/bitio"
	"github.com/go-exi/exi/errs"
)

// cookie is the 4-byte magic: 0x24 0x45 0x58 0x49 ("$EXI").
var cookie = [4]byte{0x24, 0x45, 0x58, 0x49}

// Header is the decoded EXI stream header.
type Header struct {
	HasCookie        bool
	IsPreviewVersion bool
	Version          int // default 1
	Opts             *Options
}

// Decode parses a Header from r, following the fixed field order of
// the EXI header: optional cookie, distinguishing bits, options
// presence bit, presence-version preview field, version, and an
// optional Options element. On return, r is positioned at the start of
// the body (after any alignment padding the configured Alignment requires).
func Decode(r *bitio.Reader) (*Header, error) {
	h := &Header{Version: 1}

	mark := r.Save()
	if b, err := r.ReadByteAligned(4); err == nil && b[0] == cookie[0] && b[1] == cookie[1] && b[2] == cookie[2] && b[3] == cookie[3] {
		h.HasCookie = true
	} else {
		r.Restore(mark)
	}

	bits, err := r.ReadBits(2)
	if err != nil {
		return nil, err
	}
	if bits != 0b10 {
		return nil, errs.At(errs.InvalidExiHeader, r.BitPosition(), "distinguishing bits: got %02b, want 10", bits)
	}

	hasOptions, err := r.ReadBits(1)
	if err != nil {
		return nil, err
	}

	preview, err := r.ReadBits(4)
	if err != nil {
		return nil, err
	}
	h.IsPreviewVersion = preview != 0

	version, err := readVersion(r)
	if err != nil {
		return nil, err
	}
	h.Version = version

	if hasOptions == 1 {
		opts, err := decodeOptions(r)
		if err != nil {
			return nil, err
		}
		if err := opts.Validate(); err != nil {
			return nil, err
		}
		h.Opts = opts
	}

	align := BitPacked
	if h.Opts != nil {
		align = h.Opts.Alignment
	}
	if align == ByteAligned || align == Compression || align == PreCompression {
		r.AlignToByte()
	}
	return h, nil
}

// Encode emits h to w, positioning w at the start of the body on
// return (applying the same alignment-padding rule as Decode).
func Encode(w *bitio.Writer, h *Header) error {
	if h.Opts != nil {
		if err := h.Opts.Validate(); err != nil {
			return err
		}
	}
	if h.HasCookie {
		if err := w.WriteBytes(cookie[:]); err != nil {
			return err
		}
	}
	if err := w.WriteBits(0b10, 2); err != nil {
		return err
	}
	hasOptions := uint64(0)
	if h.Opts != nil {
		hasOptions = 1
	}
	if err := w.WriteBits(hasOptions, 1); err != nil {
		return err
	}
	preview := uint64(0)
	if h.IsPreviewVersion {
		preview = 1
	}
	if err := w.WriteBits(preview, 4); err != nil {
		return err
	}
	version := h.Version
	if version == 0 {
		version = 1
	}
	if err := writeVersion(w, version); err != nil {
		return err
	}
	if h.Opts != nil {
		if err := encodeOptions(w, h.Opts); err != nil {
			return err
		}
	}
	align := BitPacked
	if h.Opts != nil {
		align = h.Opts.Alignment
	}
	if align == ByteAligned || align == Compression || align == PreCompression {
		w.AlignToByte()
	}
	return nil
}

// readVersion reads the 4-bit-group version varint: each group whose
// value is < 15 terminates the sequence; version == 1 + the sum of
// every group read (including the terminator).
func readVersion(r *bitio.Reader) (int, error) {
	var sum uint64
	for {
		g, err := r.ReadBits(4)
		if err != nil {
			return 0, err
		}
		sum += g
		if g < 15 {
			return int(1 + sum), nil
		}
	}
}

func writeVersion(w *bitio.Writer, version int) error {
	remaining := uint64(version - 1)
	for {
		if remaining < 15 {
			return w.WriteBits(remaining, 4)
		}
		if err := w.WriteBits(15, 4); err != nil {
			return err
		}
		remaining -= 15
	}
}
