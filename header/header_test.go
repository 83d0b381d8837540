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
	"testing"

	"github.com/go-exi/exi/bitio"
)

func TestHeaderRoundTripNoOptions(t *testing.T) {
	h := &Header{HasCookie: true, Version: 1}
	w := bitio.NewWriter()
	if err := Encode(w, h); err != nil {
		t.Fatal(err)
	}
	r := bitio.NewReader(w.Bytes())
	got, err := Decode(r)
	if err != nil {
		t.Fatal(err)
	}
	if got.HasCookie != h.HasCookie || got.Version != h.Version || got.Opts != nil {
		t.Fatalf("got %+v", got)
	}
}

func TestHeaderRoundTripWithOptions(t *testing.T) {
	opts := Default()
	opts.Alignment = ByteAligned
	opts.Preserve.Comments = true
	opts.Fragment = true
	h := &Header{HasCookie: true, Version: 1, Opts: opts}
	w := bitio.NewWriter()
	if err := Encode(w, h); err != nil {
		t.Fatal(err)
	}
	r := bitio.NewReader(w.Bytes())
	got, err := Decode(r)
	if err != nil {
		t.Fatal(err)
	}
	if got.Opts == nil {
		t.Fatal("expected decoded options")
	}
	if got.Opts.Alignment != ByteAligned || !got.Opts.Preserve.Comments || !got.Opts.Fragment {
		t.Fatalf("got %+v", got.Opts)
	}
}

func TestHeaderNoCookie(t *testing.T) {
	h := &Header{Version: 1}
	w := bitio.NewWriter()
	if err := Encode(w, h); err != nil {
		t.Fatal(err)
	}
	r := bitio.NewReader(w.Bytes())
	got, err := Decode(r)
	if err != nil {
		t.Fatal(err)
	}
	if got.HasCookie {
		t.Fatal("expected no cookie detected")
	}
}

func TestHeaderBadDistinguishingBits(t *testing.T) {
	w := bitio.NewWriter()
	w.WriteBits(0b01, 2)
	r := bitio.NewReader(w.Bytes())
	if _, err := Decode(r); err == nil {
		t.Fatal("expected error for bad distinguishing bits")
	}
}

func TestVersionVarintRoundTrip(t *testing.T) {
	for _, v := range []int{1, 2, 14, 15, 16, 30, 100} {
		w := bitio.NewWriter()
		if err := writeVersion(w, v); err != nil {
			t.Fatal(err)
		}
		r := bitio.NewReader(w.Bytes())
		got, err := readVersion(r)
		if err != nil {
			t.Fatal(err)
		}
		if got != v {
			t.Fatalf("v=%d: got %d", v, got)
		}
	}
}

func TestValidateRejectsConflictingOptions(t *testing.T) {
	cases := []*Options{
		{Alignment: Compression, SelfContained: true},
		{SelfContained: true, Strict: true},
		{Alignment: Compression, Strict: true},
		{Strict: true, Preserve: Preserve{Comments: true}},
	}
	for i, o := range cases {
		if err := o.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error for %+v", i, o)
		}
	}
}

func TestValidateAcceptsDefault(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default options should validate: %v", err)
	}
}
