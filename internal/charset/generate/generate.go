// This file is part of https://github.com/racingmars/ticonv/
// Copyright 2025 by Matthew R. Wilson, licensed under the MIT license. See
// LICENSE in the project root for license information.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	flag "github.com/spf13/pflag"
)

// Tool to generate calculator character table files from a plain text
// mapping file. Each line maps a device sequence to a Unicode code point:
//
//	0xNN<TAB>0xUUUU          single byte
//	0xLLNN<TAB>0xUUUUU       lead byte LL followed by NN
//	0xNN<TAB>0xUUUU |1       encode-only alias
//
// Everything after a '#' is a comment.

func main() {
	name := flag.StringP("name", "n", "", "Go variable name (e.g. TI83P)")
	family := flag.StringP("family", "f", "", "Family constant (e.g. Family83P)")
	id := flag.String("id", "", "Table ID (defaults to the lower-cased name)")
	input := flag.StringP("input", "i", "", "Input mapping file path")
	flag.Parse()

	if *name == "" || *family == "" || *input == "" {
		fmt.Fprintln(os.Stderr, "--name, --family and --input are required.")
		flag.Usage()
		os.Exit(1)
	}
	if *id == "" {
		*id = strings.ToLower(*name)
	}

	f, err := os.Open(*input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer f.Close()

	m, err := read(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", *input, err)
		os.Exit(2)
	}
	for _, w := range m.warnings {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", w)
	}

	w := bufio.NewWriter(os.Stdout)
	write(w, m, *name, *family, *id, filepath.Base(*input))
	if err := w.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

type mapping struct {
	single   map[int]rune
	double   map[int]map[int]rune // lead byte -> second byte -> code point
	aliases  map[rune]int
	warnings []string
}

var reLine = regexp.MustCompile(`^0x([0-9A-Fa-f]{2}|[0-9A-Fa-f]{4})\s+0x([0-9A-Fa-f]{1,6})\s*(\|1)?$`)

// read parses a mapping file.
func read(r io.Reader) (*mapping, error) {
	m := &mapping{
		single:  make(map[int]rune),
		double:  make(map[int]map[int]rune),
		aliases: make(map[rune]int),
	}

	s := bufio.NewScanner(r)
	lineno := 0
	for s.Scan() {
		lineno++
		line := s.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		match := reLine.FindStringSubmatch(line)
		if match == nil {
			return nil, fmt.Errorf("line %d: cannot parse %q", lineno, line)
		}
		dev, _ := strconv.ParseInt(match[1], 16, 32)
		cp, _ := strconv.ParseInt(match[2], 16, 32)
		r := rune(cp)
		if !utf8.ValidRune(r) {
			return nil, fmt.Errorf("line %d: U+%04X is not a scalar value", lineno, cp)
		}

		if match[3] != "" {
			if len(match[1]) != 2 {
				return nil, fmt.Errorf("line %d: aliases must target a single byte", lineno)
			}
			m.aliases[r] = int(dev)
			continue
		}

		if len(match[1]) == 2 {
			if _, ok := m.single[int(dev)]; ok {
				m.warnings = append(m.warnings, fmt.Sprintf("line %d: duplicate byte 0x%02X", lineno, dev))
			}
			m.single[int(dev)] = r
			continue
		}

		lead, second := int(dev>>8), int(dev&0xFF)
		if lead == 0 || second == 0 {
			return nil, fmt.Errorf("line %d: 0x%04X uses a 0x00 byte", lineno, dev)
		}
		if r <= 0xFFFF {
			return nil, fmt.Errorf("line %d: two-byte sequence 0x%04X maps to BMP code point U+%04X", lineno, dev, cp)
		}
		if m.double[lead] == nil {
			m.double[lead] = make(map[int]rune)
		}
		m.double[lead][second] = r
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	for lead := range m.double {
		if _, ok := m.single[lead]; ok {
			return nil, fmt.Errorf("lead byte 0x%02X also maps a single byte", lead)
		}
	}
	return m, nil
}

// write prints the Go source of a charset.Table literal for m.
func write(w io.Writer, m *mapping, name, family, id, source string) {
	fmt.Fprintln(w, "// This file is part of https://github.com/racingmars/ticonv/")
	fmt.Fprintln(w, "// Copyright 2025 by Matthew R. Wilson, licensed under the MIT license. See")
	fmt.Fprintln(w, "// LICENSE in the project root for license information.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "package charset")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "// %s was generated from %s.\n", name, source)
	fmt.Fprintf(w, "var %s *Table = newTable(&Table{\n", name)
	fmt.Fprintf(w, "\tfamily: %s,\n", family)
	fmt.Fprintf(w, "\tid:     %q,\n", id)

	fmt.Fprintf(w, "\td2u: []rune{\n")
	writeRows(w, "\t\t", m.single)
	fmt.Fprintf(w, "\t},\n")

	if len(m.double) > 0 {
		fmt.Fprintf(w, "\text: map[byte][]rune{\n")
		for _, lead := range sortedKeys(m.double) {
			fmt.Fprintf(w, "\t\t0x%02X: {\n", lead)
			writeRows(w, "\t\t\t", m.double[lead])
			fmt.Fprintf(w, "\t\t},\n")
		}
		fmt.Fprintf(w, "\t},\n")
	}

	if len(m.aliases) > 0 {
		runes := make([]rune, 0, len(m.aliases))
		for r := range m.aliases {
			runes = append(runes, r)
		}
		sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

		fmt.Fprintf(w, "\taliases: map[rune]byte{\n")
		for _, r := range runes {
			fmt.Fprintf(w, "\t\t%s: 0x%02X,\n", escape(r), m.aliases[r])
		}
		fmt.Fprintf(w, "\t},\n")
	}

	fmt.Fprintln(w, "})")
}

// writeRows prints 256 entries as 16 rows of 16, unassigned entries as
// U+FFFD.
func writeRows(w io.Writer, indent string, entries map[int]rune) {
	fmt.Fprintf(w, "%s/*       x0  x1  x2  x3  x4  x5  x6  x7  x8  x9  xA  xB  xC  xD  xE  xF */\n", indent)
	for row := 0; row < 16; row++ {
		fmt.Fprintf(w, "%s/* %Xx */", indent, row)
		for col := 0; col < 16; col++ {
			r, ok := entries[row*16+col]
			if !ok {
				r = utf8.RuneError
			}
			fmt.Fprintf(w, " %q,", r)
		}
		fmt.Fprintln(w)
	}
}

func sortedKeys(m map[int]map[int]rune) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// escape returns r as a Go rune literal in \u or \U form.
func escape(r rune) string {
	if r > 0xFFFF {
		return fmt.Sprintf(`'\U%08X'`, r)
	}
	return fmt.Sprintf(`'\u%04X'`, r)
}
