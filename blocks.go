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

package exi

import (
	"github.com/go-exi/exi/bitio"
	"github.com/go-exi/exi/compr"
	"github.com/go-exi/exi/errs"
	"github.com/go-exi/exi/header"
	"github.com/go-exi/exi/value"
)

// algorithmName is the single compression algorithm this build uses for
// Alignment == Compression / PreCompression bodies. Real EXI leaves the
// choice of codec to the implementation as long as both sides agree;
// this one always picks zstd from compr's wrapped klauspost/compress
// codecs, rather than negotiating one out of band.
const algorithmName = "zstd"

// Simplification (see DESIGN.md): a real EXI "Compression" stream
// splits the body into channels per (URI,LocalName) and into
// BlockSize-bounded blocks, each deflated independently for random
// access. This instead treats the entire post-header body as a single
// bit-packed region, framed as one block: [rawLen][compLen][bytes].
// PreCompression reuses that same framing but skips the zstd step, per
// SPEC_FULL.md §8, so its bytes are stored raw (compLen == rawLen) while
// still byte-aligning the way Compression does. Decoder/Encoder
// round-trip the body's semantic content regardless; only the
// channel-grouped/blocked framing a streaming random-access reader would
// need is not reproduced.

// openCompressedBody reads the length-prefixed body that follows a
// Compression/PreCompression header and returns a fresh Reader over its
// decompressed (Compression) or raw (PreCompression) bytes.
func openCompressedBody(r *bitio.Reader, opts *header.Options) (*bitio.Reader, error) {
	rawLen, err := value.DecodeUnsignedVarint(r)
	if err != nil {
		return nil, err
	}
	compLen, err := value.DecodeUnsignedVarint(r)
	if err != nil {
		return nil, err
	}
	r.AlignToByte()
	compressed, err := r.ReadByteAligned(int(compLen))
	if err != nil {
		return nil, err
	}
	if opts.Alignment == header.PreCompression {
		return bitio.NewReader(compressed), nil
	}
	dec := compr.Decompression(algorithmName)
	dst := make([]byte, rawLen)
	if rawLen > 0 {
		if err := dec.Decompress(compressed, dst); err != nil {
			return nil, errs.Wrap(errs.InvalidExiInput, r.BitPosition(), err)
		}
	}
	return bitio.NewReader(dst), nil
}

// writeCompressedBody appends [rawLen][compLen][bytes] to w, zstd-
// compressing body's buffered bytes for Compression alignment or storing
// them raw for PreCompression (compLen == rawLen). w must already be
// byte-aligned (header.Encode guarantees this for both alignments).
func writeCompressedBody(w *bitio.Writer, body *bitio.Writer, opts *header.Options) error {
	raw := body.Bytes()
	out := raw
	if opts.Alignment != header.PreCompression {
		comp := compr.Compression(algorithmName)
		out = comp.Compress(raw, nil)
	}
	if err := value.EncodeUnsignedVarint(w, uint64(len(raw))); err != nil {
		return err
	}
	if err := value.EncodeUnsignedVarint(w, uint64(len(out))); err != nil {
		return err
	}
	w.AlignToByte()
	return w.WriteBytes(out)
}
