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
	"github.com/go-exi/exi/value"
)

// decodeOptions/encodeOptions walk the Options field set in a single
// fixed order, each field a presence bit (where the field is optional)
// followed by its value — the same "walk named fields, dispatch on a
// small system-assigned id" shape as ion.Symtab.Unmarshal's
// $ion_symbol_table struct walk (github.com/SnellerInc/sneller/ion),
// here applied to a fixed field order instead of a map, since the
// Options element's shape is fixed and known in advance rather than
// open-ended.
//
// Simplification: real EXI encodes Options as an
// EXI-encoded XML fragment against the Options schema, decoded through
// the general body codec in a constrained mode. This instead uses a
// direct fixed-order field encoding, since the Options document shape
// never varies and routing it through the generic grammar engine would
// add a schema the core does not otherwise need. Header round-trip
// holds unconditionally, since encode/decode are symmetric by
// construction.

func encodeOptions(w *bitio.Writer, o *Options) error {
	if err := w.WriteBits(uint64(o.Alignment), 2); err != nil {
		return err
	}
	for _, b := range []bool{
		o.Preserve.Comments, o.Preserve.ProcessingInstructions, o.Preserve.DTDs,
		o.Preserve.Prefixes, o.Preserve.LexicalValues, o.Strict, o.SelfContained, o.Fragment,
	} {
		if err := value.EncodeBoolean(w, b); err != nil {
			return err
		}
	}
	if err := encodeOptUint(w, o.BlockSize != 0 && o.BlockSize != DefaultBlockSize, o.BlockSize); err != nil {
		return err
	}
	if err := encodeOptUint(w, o.ValueMaxLength != 0, o.ValueMaxLength); err != nil {
		return err
	}
	if err := encodeOptUint(w, o.ValuePartitionCapacity != 0, o.ValuePartitionCapacity); err != nil {
		return err
	}
	if err := value.EncodeBoolean(w, o.SchemaID != nil); err != nil {
		return err
	}
	if o.SchemaID != nil {
		if err := value.WriteLiteralString(w, *o.SchemaID); err != nil {
			return err
		}
	}
	if err := value.EncodeUnsignedVarint(w, uint64(len(o.DatatypeRepresentationMap))); err != nil {
		return err
	}
	for _, pair := range o.DatatypeRepresentationMap {
		if err := value.WriteLiteralString(w, pair[0]); err != nil {
			return err
		}
		if err := value.WriteLiteralString(w, pair[1]); err != nil {
			return err
		}
	}
	return nil
}

func decodeOptions(r *bitio.Reader) (*Options, error) {
	o := &Options{BlockSize: DefaultBlockSize}
	align, err := r.ReadBits(2)
	if err != nil {
		return nil, err
	}
	o.Alignment = Alignment(align)

	flags := make([]*bool, 8)
	flags[0], flags[1], flags[2] = &o.Preserve.Comments, &o.Preserve.ProcessingInstructions, &o.Preserve.DTDs
	flags[3], flags[4] = &o.Preserve.Prefixes, &o.Preserve.LexicalValues
	flags[5], flags[6], flags[7] = &o.Strict, &o.SelfContained, &o.Fragment
	for _, f := range flags {
		v, err := value.DecodeBoolean(r)
		if err != nil {
			return nil, err
		}
		*f = v
	}

	if bs, present, err := decodeOptUint(r); err != nil {
		return nil, err
	} else if present {
		o.BlockSize = bs
	}
	if vml, present, err := decodeOptUint(r); err != nil {
		return nil, err
	} else if present {
		o.ValueMaxLength = vml
	}
	if vpc, present, err := decodeOptUint(r); err != nil {
		return nil, err
	} else if present {
		o.ValuePartitionCapacity = vpc
	}
	hasSchema, err := value.DecodeBoolean(r)
	if err != nil {
		return nil, err
	}
	if hasSchema {
		s, err := value.ReadLiteralString(r)
		if err != nil {
			return nil, err
		}
		o.SchemaID = &s
	}
	n, err := value.DecodeUnsignedVarint(r)
	if err != nil {
		return nil, err
	}
	o.DatatypeRepresentationMap = make([][2]string, n)
	for i := range o.DatatypeRepresentationMap {
		t, err := value.ReadLiteralString(r)
		if err != nil {
			return nil, err
		}
		rep, err := value.ReadLiteralString(r)
		if err != nil {
			return nil, err
		}
		o.DatatypeRepresentationMap[i] = [2]string{t, rep}
	}
	return o, nil
}

func encodeOptUint(w *bitio.Writer, present bool, v uint64) error {
	if err := value.EncodeBoolean(w, present); err != nil {
		return err
	}
	if present {
		return value.EncodeUnsignedVarint(w, v)
	}
	return nil
}

func decodeOptUint(r *bitio.Reader) (uint64, bool, error) {
	present, err := value.DecodeBoolean(r)
	if err != nil {
		return 0, false, err
	}
	if !present {
		return 0, false, nil
	}
	v, err := value.DecodeUnsignedVarint(r)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

