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

// Package header implements the EXI header codec: the optional "$EXI"
// cookie, the two distinguishing bits, the preview flag and
// 4-bit-group version varint, and the Options field set.
package header

import "github.com/go-exi/exi/errs"

// Alignment is the closed enumeration of stream alignment strategies.
type Alignment int

const (
	BitPacked Alignment = iota
	ByteAligned
	PreCompression
	Compression
)

// Preserve holds the independent preserve-flag booleans.
type Preserve struct {
	Comments              bool
	ProcessingInstructions bool
	DTDs                  bool
	Prefixes              bool
	LexicalValues         bool
}

// Options is the recognized, closed set of EXI header options.
type Options struct {
	Alignment               Alignment
	Preserve                Preserve
	Strict                  bool
	SelfContained            bool
	Fragment                bool
	BlockSize               uint64
	ValueMaxLength          uint64 // 0 means unbounded
	ValuePartitionCapacity  uint64 // 0 means unbounded
	SchemaID                *string
	DatatypeRepresentationMap [][2]string // (type QName, representation QName) pairs
}

// DefaultBlockSize is the EXI default BlockSize.
const DefaultBlockSize = 1_000_000

// Default returns the EXI default option set (bit-packed, no preserve
// flags, not strict, not self-contained, not fragment, BlockSize
// 1,000,000, unbounded value limits, schema-less).
func Default() *Options {
	return &Options{Alignment: BitPacked, BlockSize: DefaultBlockSize}
}

// Validate rejects the mutually-exclusive option combinations the EXI
// spec excludes.
func (o *Options) Validate() error {
	if o.SelfContained && o.Alignment == Compression {
		return errs.New(errs.HeaderOptionsMismatch, "selfContained is incompatible with compression alignment")
	}
	if o.SelfContained && o.Strict {
		return errs.New(errs.HeaderOptionsMismatch, "selfContained is incompatible with strict")
	}
	if o.Strict && o.Alignment == Compression {
		return errs.New(errs.HeaderOptionsMismatch, "strict is incompatible with compression alignment")
	}
	if o.Strict {
		if o.Preserve.Comments || o.Preserve.ProcessingInstructions || o.Preserve.DTDs || o.Preserve.Prefixes || o.Preserve.LexicalValues {
			return errs.New(errs.HeaderOptionsMismatch, "strict disables all preserve flags")
		}
	}
	return nil
}
