// This file is part of https://github.com/racingmars/ticonv/
// Copyright 2025 by Matthew R. Wilson, licensed under the MIT license. See
// LICENSE in the project root for license information.

// Package charset holds the per-family TI calculator character tables and
// the table-driven conversion between device bytes and Unicode scalar
// values.
//
// All tables are built during package initialization and never change
// afterwards, so every function here is safe for concurrent use.
package charset

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Family identifies a group of calculator models that share one character
// table and one set of variable name tokenization rules.
type Family int

const (
	// FamilyNone is the sentinel for models we have no table for.
	FamilyNone Family = iota
	Family73
	Family82
	Family83
	Family83P
	Family85
	Family86
	Family9x
)

var familyNames = map[Family]string{
	FamilyNone: "none",
	Family73:   "ti73",
	Family82:   "ti82",
	Family83:   "ti83",
	Family83P:  "ti83p",
	Family85:   "ti85",
	Family86:   "ti86",
	Family9x:   "ti9x",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Sub is the device byte substituted for Unicode scalar values that have no
// device representation. Every table maps it to '?'.
const Sub byte = 0x3F

// seq is a device byte sequence of length 1 or 2.
type seq struct {
	b [2]byte
	n uint8
}

// Table is the bidirectional mapping between one family's device bytes and
// Unicode scalar values.
type Table struct {
	family Family
	id     string

	// Device byte to Unicode scalar for bytes 0x00-0xFF. utf8.RuneError
	// marks bytes that are unassigned or have no single-scalar equivalent.
	d2u []rune

	// Two-byte sequences: lead byte to a 256-entry table for the second
	// byte. Only supplementary-plane scalars may live here.
	ext map[byte][]rune

	// One-way encode entries: extra Unicode scalars that encode to an
	// existing device byte but never decode back to themselves.
	aliases map[rune]byte

	// Unicode code point to device byte for code points 0x00-0xFF. Sub in
	// every position that has no mapping.
	u2d []byte

	// Unicode code point to device sequence for code points >0xFF.
	highu2d map[rune]seq
}

// newTable validates t and builds its reverse mappings. The tables are
// compiled into the binary, so a violation is a programming error and
// panics during package initialization.
func newTable(t *Table) *Table {
	if len(t.d2u) != 256 {
		panic(fmt.Sprintf("charset %s: %d single-byte entries, want 256", t.id, len(t.d2u)))
	}
	if t.d2u[Sub] != '?' {
		panic(fmt.Sprintf("charset %s: substitute byte 0x%02X is not '?'", t.id, Sub))
	}

	t.u2d = make([]byte, 256)
	for i := range t.u2d {
		t.u2d[i] = Sub
	}
	t.highu2d = make(map[rune]seq)

	checkRunes(t.id, "single byte", t.d2u)

	// Byte 0x00 is the string terminator and never takes part in a
	// mapping in either direction.
	for b := 1; b < 256; b++ {
		if r := t.d2u[b]; r != utf8.RuneError {
			t.add(r, seq{b: [2]byte{byte(b)}, n: 1})
		}
	}

	leads := make([]int, 0, len(t.ext))
	for lead := range t.ext {
		leads = append(leads, int(lead))
	}
	sort.Ints(leads)
	for _, lead := range leads {
		tab := t.ext[byte(lead)]
		if lead == 0 {
			panic(fmt.Sprintf("charset %s: 0x00 used as a lead byte", t.id))
		}
		if len(tab) != 256 {
			panic(fmt.Sprintf("charset %s: lead 0x%02X has %d entries, want 256", t.id, lead, len(tab)))
		}
		// A lead byte with a glyph of its own would make the encoding of
		// that glyph followed by a second byte ambiguous.
		if t.d2u[lead] != utf8.RuneError {
			panic(fmt.Sprintf("charset %s: lead 0x%02X also maps a single byte", t.id, lead))
		}
		checkRunes(t.id, fmt.Sprintf("lead 0x%02X", lead), tab)
		if tab[0] != utf8.RuneError {
			panic(fmt.Sprintf("charset %s: lead 0x%02X maps a 0x00 second byte", t.id, lead))
		}
		for b := 1; b < 256; b++ {
			r := tab[b]
			if r == utf8.RuneError {
				continue
			}
			// A two-byte sequence must come from a surrogate pair so that
			// encoded output never outgrows its UTF-16 source.
			if r <= 0xFFFF {
				panic(fmt.Sprintf("charset %s: 0x%02X%02X maps to BMP scalar U+%04X", t.id, lead, b, r))
			}
			t.add(r, seq{b: [2]byte{byte(lead), byte(b)}, n: 2})
		}
	}

	for r, b := range t.aliases {
		if !utf8.ValidRune(r) {
			panic(fmt.Sprintf("charset %s: alias U+%04X is not a scalar value", t.id, r))
		}
		if b == 0 || t.d2u[b] == utf8.RuneError {
			panic(fmt.Sprintf("charset %s: alias U+%04X targets unassigned byte 0x%02X", t.id, r, b))
		}
		t.add(r, seq{b: [2]byte{b}, n: 1})
	}

	return t
}

// checkRunes panics if any entry of tab is a surrogate or outside the
// Unicode range. Decoded text must always be valid UTF-16 and UTF-8.
func checkRunes(id, what string, tab []rune) {
	for i, r := range tab {
		if !utf8.ValidRune(r) {
			panic(fmt.Sprintf("charset %s: %s entry 0x%02X is not a scalar value (U+%04X)", id, what, i, r))
		}
	}
}

// add records the encoding of r unless r already has one: when several
// device sequences decode to the same scalar, the first one seen (lowest
// single byte, then lowest two-byte sequence) is canonical.
func (t *Table) add(r rune, s seq) {
	if r < 0x100 {
		if t.u2d[r] == Sub && r != '?' {
			t.u2d[r] = s.b[0]
		}
		return
	}
	if _, ok := t.highu2d[r]; !ok {
		t.highu2d[r] = s
	}
}

// derive copies base with single-byte overrides applied. A value of
// utf8.RuneError in overrides removes a mapping. When keepExt is false the
// derived table has no two-byte sequences.
func derive(base *Table, family Family, id string, overrides map[byte]rune, keepExt bool) *Table {
	d2u := make([]rune, len(base.d2u))
	copy(d2u, base.d2u)
	for b, r := range overrides {
		d2u[b] = r
	}

	var ext map[byte][]rune
	if keepExt {
		ext = base.ext
	}

	aliases := make(map[rune]byte, len(base.aliases))
	for r, b := range base.aliases {
		if d2u[b] != utf8.RuneError {
			aliases[r] = b
		}
	}

	return newTable(&Table{
		family:  family,
		id:      id,
		d2u:     d2u,
		ext:     ext,
		aliases: aliases,
	})
}

// Family returns the family this table belongs to.
func (t *Table) Family() Family { return t.family }

// ID returns the short name of the table, e.g. "ti83p".
func (t *Table) ID() string { return t.id }

// DecodeRune decodes the device sequence at the start of ti and returns the
// Unicode scalar and the number of bytes consumed. A two-byte sequence is
// always preferred over its lead byte on its own. Bytes with no mapping
// decode to utf8.RuneError with size 1. Empty input returns
// (utf8.RuneError, 0).
func (t *Table) DecodeRune(ti []byte) (rune, int) {
	if len(ti) == 0 {
		return utf8.RuneError, 0
	}
	if len(ti) > 1 {
		if tab, ok := t.ext[ti[0]]; ok {
			if r := tab[ti[1]]; r != utf8.RuneError {
				return r, 2
			}
		}
	}
	return t.d2u[ti[0]], 1
}

// EncodeRune returns the device sequence for r in the first n bytes of the
// returned array. Scalars with no device representation encode to Sub.
func (t *Table) EncodeRune(r rune) (b [2]byte, n int) {
	if r >= 0 && r < 0x100 {
		// "Fast path" is array look up of Unicode code points 0x00-0xFF
		return [2]byte{t.u2d[r]}, 1
	}
	if s, ok := t.highu2d[r]; ok {
		return s.b, int(s.n)
	}
	return [2]byte{Sub}, 1
}

// Encodable reports whether r has a device representation of its own
// (rather than the substitute byte).
func (t *Table) Encodable(r rune) bool {
	if r == '?' {
		return true
	}
	b, n := t.EncodeRune(r)
	return n == 2 || b[0] != Sub
}

// IsLead reports whether b starts a two-byte sequence.
func (t *Table) IsLead(b byte) bool {
	_, ok := t.ext[b]
	return ok
}

// Scalars returns, in ascending order, every Unicode scalar value that has
// a device representation in t, one-way aliases included.
func (t *Table) Scalars() []rune {
	var out []rune
	for r := rune(1); r < 0x100; r++ {
		if t.Encodable(r) {
			out = append(out, r)
		}
	}
	for r := range t.highu2d {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// leads returns the lead bytes of t's two-byte sequences in ascending
// order.
func (t *Table) leads() []byte {
	out := make([]byte, 0, len(t.ext))
	for lead := range t.ext {
		out = append(out, lead)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var registry = map[Family]*Table{
	Family73:  TI73,
	Family82:  TI82,
	Family83:  TI83,
	Family83P: TI83P,
	Family85:  TI85,
	Family86:  TI86,
	Family9x:  TI9x,
}

// Lookup returns the table for f. It reports false for FamilyNone and any
// other family without a table; there is no default table.
func Lookup(f Family) (*Table, bool) {
	t, ok := registry[f]
	return t, ok
}

// Families returns every family that has a table.
func Families() []Family {
	return []Family{Family73, Family82, Family83, Family83P, Family85, Family86, Family9x}
}
