// This file is part of https://github.com/racingmars/ticonv/
// Copyright 2025 by Matthew R. Wilson, licensed under the MIT license. See
// LICENSE in the project root for license information.

package charset

import (
	"math/rand"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendUTF16(t *testing.T) {
	tests := []struct {
		name string
		tab  *Table
		in   []byte
		want string
	}{
		{"ascii", TI83P, []byte("L1"), "L1"},
		{"subscript", TI83P, []byte{'L', 0x81}, "L₁"},
		{"theta", TI83P, []byte{0x5B, '+', 0x5B}, "θ+θ"},
		{"surrogate", TI83P, []byte{'2', 0xD7}, "2\U0001D456"},
		{"two-byte", TI83P, []byte{0xEF, 0x41, 0xEF, 0x7A}, "\U0001D400\U0001D433"},
		{"unassigned", TI83P, []byte{'A', 0x04, 'B'}, "A�B"},
		{"nul", TI83P, []byte{'A', 'B', 0x00, 'C'}, "AB"},
		{"empty", TI83P, nil, ""},
		{"latin1", TI9x, []byte{0xC9, 'c', 'o', 'l', 'e'}, "École"},
		{"greek", TI9x, []byte{0x80, 0x81, 0x82}, "αβΓ"},
		{"ti85", TI85, []byte{'[', 'A', ']'}, "[A]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.tab.AppendUTF16(nil, tc.in)
			assert.Equal(t, tc.want, string(utf16.Decode(got)))
		})
	}
}

func TestAppendEncode(t *testing.T) {
	tests := []struct {
		name string
		tab  *Table
		in   string
		want []byte
	}{
		{"ascii", TI83P, "L1", []byte("L1")},
		{"theta", TI83P, "θ", []byte{0x5B}},
		{"bracket", TI83P, "[A]", []byte{0xC1, 'A', ']'}},
		{"surrogate", TI83P, "\U0001D456", []byte{0xD7}},
		{"two-byte", TI83P, "\U0001D400x", []byte{0xEF, 0x41, 'x'}},
		{"unmappable", TI83P, "a€b", []byte{'a', Sub, 'b'}},
		{"unmappable astral", TI83P, "\U0001F600", []byte{Sub}},
		{"nul", TI83P, "ab\x00cd", []byte("ab")},
		{"latin1", TI9x, "École", []byte{0xC9, 'c', 'o', 'l', 'e'}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.tab.AppendEncodeUTF16(nil, utf16.Encode([]rune(tc.in))))
			assert.Equal(t, tc.want, tc.tab.AppendEncodeUTF8(nil, tc.in))
		})
	}
}

func TestEncodeUnpairedSurrogate(t *testing.T) {
	// lone high, lone low, reversed pair
	in := []uint16{'a', 0xD835, 'b', 0xDC00, 0xDC00, 0xD835}
	got := TI83P.AppendEncodeUTF16(nil, in)
	assert.Equal(t, []byte{'a', Sub, 'b', Sub, Sub, Sub}, got)
}

func TestEncodeInvalidUTF8(t *testing.T) {
	got := TI83P.AppendEncodeUTF8(nil, "a\xffb\xc3")
	assert.Equal(t, []byte{'a', Sub, 'b', Sub}, got)
}

func TestDecodeUTF16Into(t *testing.T) {
	in := []byte{'2', 0xD7, 0xEF, 0x41}
	dst := make([]uint16, MaxUTF16Len(len(in)))
	for i := range dst {
		dst[i] = 0xFFFF
	}
	n := TI83P.DecodeUTF16Into(dst, in)
	require.Equal(t, 5, n)
	assert.Equal(t, "2\U0001D456\U0001D400", string(utf16.Decode(dst[:n])))
	assert.Equal(t, uint16(0), dst[n])
}

func TestEncodeUTF16Into(t *testing.T) {
	in := utf16.Encode([]rune("\U0001D400θ?€"))
	dst := make([]byte, MaxEncodedLen(len(in)))
	for i := range dst {
		dst[i] = 0xFF
	}
	n := TI83P.EncodeUTF16Into(dst, in)
	require.Equal(t, 5, n)
	assert.Equal(t, []byte{0xEF, 0x41, 0x5B, '?', Sub}, dst[:n])
	assert.Equal(t, byte(0), dst[n])
}

func TestIntoShortBufferPanics(t *testing.T) {
	in := []byte{0xD7, 0xD7}
	assert.Panics(t, func() {
		TI83P.DecodeUTF16Into(make([]uint16, 4), in)
	})
	assert.NotPanics(t, func() {
		TI83P.DecodeUTF16Into(make([]uint16, MaxUTF16Len(len(in))), in)
	})
}

func TestWorstCaseIsReachable(t *testing.T) {
	// 0xD7 decodes to a supplementary scalar, the worst case for UTF-16.
	in := []byte{0xD7, 0xD7, 0xD7}
	assert.Len(t, TI83P.AppendUTF16(nil, in), MaxUTF16Len(len(in))-1)
}

func TestOutputBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, f := range Families() {
		tab, _ := Lookup(f)
		for i := 0; i < 500; i++ {
			in := make([]byte, rng.Intn(40))
			for j := range in {
				in[j] = byte(1 + rng.Intn(255))
			}

			u := tab.AppendUTF16([]uint16{}, in)
			assert.LessOrEqual(t, len(u)+1, MaxUTF16Len(len(in)))

			dst := make([]uint16, MaxUTF16Len(len(in)))
			n := tab.DecodeUTF16Into(dst, in)
			assert.Equal(t, u, dst[:n])

			units := make([]uint16, rng.Intn(40))
			for j := range units {
				units[j] = uint16(1 + rng.Intn(0xFFFF))
			}
			enc := tab.AppendEncodeUTF16([]byte{}, units)
			assert.LessOrEqual(t, len(enc)+1, MaxEncodedLen(len(units)))

			out := make([]byte, MaxEncodedLen(len(units)))
			n = tab.EncodeUTF16Into(out, units)
			assert.Equal(t, enc, out[:n])
		}
	}
}
