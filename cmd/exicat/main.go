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

// Command exicat dumps the event trace of an EXI document to stdout,
// one line per event, in the style of a SAX trace: it is the EXI
// analogue of cat for poking at a stream's grammar decisions.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-exi/exi"
	"github.com/go-exi/exi/bitio"
)

// traceSink implements exi.EventSink by writing one line per event to w.
type traceSink struct {
	w     *bufio.Writer
	depth int
}

func (t *traceSink) indent() {
	for i := 0; i < t.depth; i++ {
		t.w.WriteString("  ")
	}
}

func (t *traceSink) StartDocument() error {
	fmt.Fprintln(t.w, "SD")
	return nil
}

func (t *traceSink) EndDocument() error {
	fmt.Fprintln(t.w, "ED")
	return nil
}

func (t *traceSink) StartElement(name exi.QName) error {
	t.indent()
	if name.HasPrefix && name.Prefix != "" {
		fmt.Fprintf(t.w, "SE %s:%s {%s}\n", name.Prefix, name.Local, name.URI)
	} else {
		fmt.Fprintf(t.w, "SE %s {%s}\n", name.Local, name.URI)
	}
	t.depth++
	return nil
}

func (t *traceSink) EndElement() error {
	t.depth--
	t.indent()
	fmt.Fprintln(t.w, "EE")
	return nil
}

func (t *traceSink) NamespaceDeclaration(uri, prefix string, isLocal bool) error {
	t.indent()
	fmt.Fprintf(t.w, "NS %s=%q local=%v\n", prefix, uri, isLocal)
	return nil
}

func (t *traceSink) Attribute(name exi.QName, value string) error {
	t.indent()
	if name.HasPrefix && name.Prefix != "" {
		fmt.Fprintf(t.w, "AT %s:%s=%q\n", name.Prefix, name.Local, value)
	} else {
		fmt.Fprintf(t.w, "AT %s=%q\n", name.Local, value)
	}
	return nil
}

func (t *traceSink) Characters(value string) error {
	t.indent()
	fmt.Fprintf(t.w, "CH %q\n", value)
	return nil
}

func (t *traceSink) Comment(text string) error {
	t.indent()
	fmt.Fprintf(t.w, "CM %q\n", text)
	return nil
}

func (t *traceSink) ProcessingInstruction(target, data string) error {
	t.indent()
	fmt.Fprintf(t.w, "PI %s %q\n", target, data)
	return nil
}

func (t *traceSink) DocType(name, publicID, systemID, text string) error {
	t.indent()
	fmt.Fprintf(t.w, "DT %s %q %q\n", name, publicID, systemID)
	return nil
}

func dump(out *bufio.Writer, in io.Reader) error {
	buf, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	r := bitio.NewReader(buf)
	dec, err := exi.NewDecoder(r)
	if err != nil {
		return err
	}
	return dec.Run(&traceSink{w: out})
}

func main() {
	flag.Parse()
	out := bufio.NewWriter(os.Stdout)
	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		var in *os.File
		if arg == "-" {
			in = os.Stdin
		} else {
			var err error
			in, err = os.Open(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "can't open %q: %s\n", arg, err)
				os.Exit(1)
			}
		}
		if err := dump(out, in); err != nil {
			fmt.Fprintf(os.Stderr, "input %s: %s\n", arg, err)
			os.Exit(1)
		}
		if in != os.Stdin {
			in.Close()
		}
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
