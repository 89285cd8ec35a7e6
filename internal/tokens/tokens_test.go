// This file is part of https://github.com/racingmars/ticonv/
// Copyright 2025 by Matthew R. Wilson, licensed under the MIT license. See
// LICENSE in the project root for license information.

package tokens

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/racingmars/ticonv/internal/charset"
)

var allFamilies = []charset.Family{
	charset.FamilyNone,
	charset.Family73,
	charset.Family82,
	charset.Family83,
	charset.Family83P,
	charset.Family85,
	charset.Family86,
	charset.Family9x,
	charset.Family(99),
}

func TestDetokenize(t *testing.T) {
	tests := []struct {
		name   string
		family charset.Family
		raw    []byte
		want   []byte
	}{
		{"L1", charset.Family83P, []byte{0x5D, 0x00, 0, 0, 0, 0, 0, 0}, []byte{'L', 0x81}},
		{"L6", charset.Family83P, []byte{0x5D, 0x05}, []byte{'L', 0x86}},
		{"L7 missing", charset.Family83P, []byte{0x5D, 0x06}, []byte{0x5D, 0x06}},
		{"L1 on 73", charset.Family73, []byte{0x5D, 0x00}, []byte{'L', 0x81}},
		{"L1 on 82", charset.Family82, []byte{0x5D, 0x00}, []byte{'L', 0x81}},
		{"user list", charset.Family83P, []byte{0x5D, 'A', 'B', 'C', 0, 0, 0, 0}, []byte{0xDC, 'A', 'B', 'C'}},
		{"user list theta", charset.Family83, []byte{0x5D, 0x5B, '1'}, []byte{0xDC, 0x5B, '1'}},
		{"no user lists on 82", charset.Family82, []byte{0x5D, 'A', 'B'}, []byte{0x5D, 'A', 'B'}},
		{"matrix A", charset.Family83P, []byte{0x5C, 0x00}, []byte{0xC1, 'A', ']'}},
		{"matrix J", charset.Family83, []byte{0x5C, 0x09}, []byte{0xC1, 'J', ']'}},
		{"matrix E on 82", charset.Family82, []byte{0x5C, 0x04}, []byte{0xC1, 'E', ']'}},
		{"matrix F on 82", charset.Family82, []byte{0x5C, 0x05}, []byte{0x5C, 0x05}},
		{"no matrices on 73", charset.Family73, []byte{0x5C, 0x00}, []byte{0x5C}},
		{"Y1", charset.Family83P, []byte{0x5E, 0x10}, []byte{'Y', 0x81}},
		{"Y0", charset.Family83P, []byte{0x5E, 0x19}, []byte{'Y', 0x80}},
		{"X1T", charset.Family83P, []byte{0x5E, 0x20}, []byte{'X', 0x81, 0x0D}},
		{"Y1T", charset.Family83P, []byte{0x5E, 0x21}, []byte{'Y', 0x81, 0x0D}},
		{"Y6T", charset.Family82, []byte{0x5E, 0x2B}, []byte{'Y', 0x86, 0x0D}},
		{"no parametric on 73", charset.Family73, []byte{0x5E, 0x20}, []byte{0x5E, 0x20}},
		{"r1", charset.Family83, []byte{0x5E, 0x40}, []byte{'r', 0x81}},
		{"r6", charset.Family83, []byte{0x5E, 0x45}, []byte{'r', 0x86}},
		{"u", charset.Family83P, []byte{0x5E, 0x80}, []byte{'u'}},
		{"w", charset.Family83P, []byte{0x5E, 0x82}, []byte{'w'}},
		{"no w on 82", charset.Family82, []byte{0x5E, 0x82}, []byte{0x5E, 0x82}},
		{"Pic1", charset.Family83P, []byte{0x60, 0x00}, []byte("Pic1")},
		{"Pic0", charset.Family83P, []byte{0x60, 0x09}, []byte("Pic0")},
		{"GDB3", charset.Family73, []byte{0x61, 0x02}, []byte("GDB3")},
		{"Str1", charset.Family83P, []byte{0xAA, 0x00}, []byte("Str1")},
		{"no strings on 82", charset.Family82, []byte{0xAA, 0x00}, []byte{0xAA}},
		{"plain", charset.Family83P, []byte{'A', 0, 0, 0, 0, 0, 0, 0}, []byte("A")},
		{"plain program", charset.Family83P, []byte("PRGM1\x00\x00\x00"), []byte("PRGM1")},
		{"lone code", charset.Family83P, []byte{0x5D}, []byte{0x5D}},
		{"ti85 in clear", charset.Family85, []byte("xStat\x00"), []byte("xStat")},
		{"ti86 ignores codes", charset.Family86, []byte{0x5D, 0x00}, []byte{0x5D}},
		{"ti9x in clear", charset.Family9x, []byte("main\\f"), []byte("main\\f")},
		{"unsupported", charset.FamilyNone, []byte("A"), []byte{}},
		{"unknown family", charset.Family(99), []byte{0x5D, 0x00}, []byte{}},
		{"truncated", charset.Family9x, []byte("abcdefghijklmnopqrstuvwxyz"), []byte("abcdefghijklmnop")},
		{"empty", charset.Family83P, nil, []byte{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Detokenize(tc.family, tc.raw)
			assert.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDetokenizeDoesNotAlias(t *testing.T) {
	raw := []byte("ABC")
	got := Detokenize(charset.Family83P, raw)
	got[0] = 'Z'
	assert.Equal(t, []byte("ABC"), raw)
}

// allTokens returns every two-byte name with a reserved first byte,
// followed by a user-list-style tail.
func allTokens() [][]byte {
	var out [][]byte
	for _, code := range []byte{tokMatrix, tokList, tokEquation, tokPicture, tokGDB, tokString} {
		for slot := 0; slot < 256; slot++ {
			out = append(out, []byte{code, byte(slot)})
			out = append(out, []byte{code, byte(slot), 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P'})
		}
	}
	return out
}

func TestDetokenizeIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	inputs := allTokens()
	for i := 0; i < 2000; i++ {
		raw := make([]byte, rng.Intn(20))
		rng.Read(raw)
		inputs = append(inputs, raw)
	}

	for _, f := range allFamilies {
		for _, raw := range inputs {
			once := Detokenize(f, raw)
			twice := Detokenize(f, once)
			assert.Equal(t, once, twice, "family %s raw % X", f, raw)
		}
	}
}

func TestDisplayLenBound(t *testing.T) {
	for _, f := range allFamilies {
		for _, raw := range allTokens() {
			out := Detokenize(f, raw)
			assert.LessOrEqual(t, len(out), MaxDisplayLen, "family %s raw % X", f, raw)
		}
	}
}

func TestExpansionsStartWithPrintableByte(t *testing.T) {
	for f, r := range families {
		for _, raw := range allTokens() {
			out, ok := r.expand(raw[0], raw[1], raw[2:])
			if !ok {
				continue
			}
			assert.NotEmpty(t, out)
			assert.False(t, reserved(f, out[0]), "family %s raw % X", f, raw)
			assert.NotContains(t, out, byte(0))
		}
	}
}

func TestReserved(t *testing.T) {
	assert.True(t, tokenized(charset.Family83P))
	assert.True(t, tokenized(charset.Family73))
	assert.False(t, tokenized(charset.Family9x))
	assert.False(t, tokenized(charset.FamilyNone))

	assert.True(t, reserved(charset.Family82, 0x5D))
	assert.False(t, reserved(charset.Family82, 'A'))
	assert.False(t, reserved(charset.Family85, 0x5D))

	// Only a reserved first byte starts an expansion.
	for b := 0; b < 256; b++ {
		raw := []byte{byte(b), 0x00}
		out := Detokenize(charset.Family83P, raw)
		if !reserved(charset.Family83P, byte(b)) {
			assert.Equal(t, cstr(raw), out, "0x%02X", b)
		}
	}
}
