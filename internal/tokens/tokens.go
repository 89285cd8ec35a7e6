// This file is part of https://github.com/racingmars/ticonv/
// Copyright 2025 by Matthew R. Wilson, licensed under the MIT license. See
// LICENSE in the project root for license information.

// Package tokens expands tokenized on-calculator variable names into the
// name a user sees on screen.
//
// The TI-73, TI-82, TI-83 and TI-83 Plus families do not store the names of
// system variables such as L1 or [A] as text. Instead the first byte of the
// name is a reserved code for the kind of variable and the second byte is
// the slot number. The expanded name is still in the device character set
// and must go through a charset table before it is readable Unicode.
package tokens

import (
	"github.com/racingmars/ticonv/internal/charset"
)

// MaxNameLen is the longest raw name we look at, terminator excluded.
// Longer input is truncated.
const MaxNameLen = 16

// MaxDisplayLen bounds the length of every name returned by Detokenize.
// Slot expansions are at most 4 bytes and a user list only swaps its
// reserved code for the small L glyph, so no name grows past the raw
// limit.
const MaxDisplayLen = MaxNameLen

// Reserved first bytes of tokenized names.
const (
	tokMatrix   = 0x5C
	tokList     = 0x5D
	tokEquation = 0x5E
	tokPicture  = 0x60
	tokGDB      = 0x61
	tokString   = 0xAA
)

// Ranges of the second byte of an equation name.
const (
	eqFunction   = 0x10 // Y1..Y9, Y0
	eqParametric = 0x20 // X1T, Y1T, X2T, ...
	eqPolar      = 0x40 // r1..r6
	eqSequence   = 0x80 // u, v, w
)

// Glyphs of the TI-8x device character set used in expansions.
const (
	glyphLBracket = 0xC1 // '['
	glyphSmallT   = 0x0D // small capital T of parametric equations
	glyphSmallL   = 0xDC // small L prefix of user list names
	glyphSub0     = 0x80 // subscript 0; subscripts 1-9 follow
	glyphTheta    = 0x5B
)

// rules describes which system variables a family has.
type rules struct {
	matrices   int
	lists      int
	userLists  bool
	functions  int
	parametric int
	polar      int
	sequences  string
	pictures   int
	databases  int
	strings    int
}

var families = map[charset.Family]*rules{
	charset.Family73: {
		lists:     6,
		functions: 10,
		pictures:  10,
		databases: 10,
	},
	charset.Family82: {
		matrices:   5,
		lists:      6,
		functions:  10,
		parametric: 6,
		polar:      6,
		sequences:  "uv",
		pictures:   6,
		databases:  6,
	},
	charset.Family83: {
		matrices:   10,
		lists:      6,
		userLists:  true,
		functions:  10,
		parametric: 6,
		polar:      6,
		sequences:  "uvw",
		pictures:   10,
		databases:  10,
		strings:    10,
	},
	charset.Family83P: {
		matrices:   10,
		lists:      6,
		userLists:  true,
		functions:  10,
		parametric: 6,
		polar:      6,
		sequences:  "uvw",
		pictures:   10,
		databases:  10,
		strings:    10,
	},
}

// plain lists the families that store every name as text.
var plain = map[charset.Family]bool{
	charset.Family85: true,
	charset.Family86: true,
	charset.Family9x: true,
}

// tokenized reports whether names of family f may carry reserved codes.
func tokenized(f charset.Family) bool {
	_, ok := families[f]
	return ok
}

// reserved reports whether b is a reserved first byte for family f.
func reserved(f charset.Family, b byte) bool {
	if !tokenized(f) {
		return false
	}
	switch b {
	case tokMatrix, tokList, tokEquation, tokPicture, tokGDB, tokString:
		return true
	}
	return false
}

// Detokenize returns the display form of the raw variable name for family
// f, in the device character set. Names without a recognized reserved
// code are returned unchanged up to their first 0x00 byte. A family
// without rules yields an empty name. The result never shares memory with
// raw and is at most MaxDisplayLen bytes long.
func Detokenize(f charset.Family, raw []byte) []byte {
	if len(raw) > MaxNameLen {
		raw = raw[:MaxNameLen]
	}

	r, ok := families[f]
	if !ok {
		if plain[f] {
			return clone(cstr(raw))
		}
		return []byte{}
	}

	// The slot byte may legitimately be 0x00 (L1, [A], Pic1...), so look
	// at the code before trimming at the terminator.
	if len(raw) >= 2 && reserved(f, raw[0]) {
		if out, ok := r.expand(raw[0], raw[1], raw[2:]); ok {
			return out
		}
	}
	return clone(cstr(raw))
}

// expand returns the display name for a reserved code and slot byte, or
// false if the pair is not a system variable of the family.
func (r *rules) expand(code, slot byte, rest []byte) ([]byte, bool) {
	n := int(slot)

	switch code {
	case tokMatrix:
		if n < r.matrices {
			return []byte{glyphLBracket, 'A' + slot, ']'}, true
		}

	case tokList:
		if n < r.lists {
			return []byte{'L', glyphSub0 + slot + 1}, true
		}
		if r.userLists && isNameStart(slot) {
			name := cstr(rest)
			out := make([]byte, 0, 2+len(name))
			out = append(out, glyphSmallL, slot)
			return append(out, name...), true
		}

	case tokEquation:
		switch {
		case n >= eqFunction && n < eqFunction+r.functions:
			return []byte{'Y', glyphSub0 + number(n-eqFunction)}, true
		case n >= eqParametric && n < eqParametric+2*r.parametric:
			k := n - eqParametric
			axis := byte('X')
			if k%2 == 1 {
				axis = 'Y'
			}
			return []byte{axis, glyphSub0 + byte(k/2+1), glyphSmallT}, true
		case n >= eqPolar && n < eqPolar+r.polar:
			return []byte{'r', glyphSub0 + byte(n-eqPolar+1)}, true
		case n >= eqSequence && n < eqSequence+len(r.sequences):
			return []byte{r.sequences[n-eqSequence]}, true
		}

	case tokPicture:
		if n < r.pictures {
			return []byte{'P', 'i', 'c', '0' + number(n)}, true
		}

	case tokGDB:
		if n < r.databases {
			return []byte{'G', 'D', 'B', '0' + number(n)}, true
		}

	case tokString:
		if n < r.strings {
			return []byte{'S', 't', 'r', '0' + number(n)}, true
		}
	}

	return nil, false
}

// number maps slot index 0..9 to the digit shown on screen: slots 0-8 are
// 1-9 and slot 9 is 0.
func number(slot int) byte {
	return byte((slot + 1) % 10)
}

func isNameStart(b byte) bool {
	return (b >= 'A' && b <= 'Z') || b == glyphTheta
}

func cstr(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
