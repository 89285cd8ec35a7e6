// This file is part of https://github.com/racingmars/ticonv/
// Copyright 2025 by Matthew R. Wilson, licensed under the MIT license. See
// LICENSE in the project root for license information.

package charset

// TI83P implements the TI-83 Plus / TI-84 Plus large font character set.
//
// Glyphs that need more than one Unicode scalar (x-bar, y-bar, p-hat, the
// ^-1 superscript) are left unassigned and decode to U+FFFD.
var TI83P *Table = newTable(&Table{
	family: Family83P,
	id:     "ti83p",
	d2u: []rune{
		/*       x0      x1      x2      x3      x4      x5      x6      x7      x8      x9      xA      xB      xC      xD      xE      xF */
		/* 0x */ '\x00', 'ₙ', 'ᵤ', 'ᵥ', '�', '▶', '⇧', '∫', '×', '□', '⁺', '■', '·', 'ᴛ', '³', 'ꜰ',
		/* 1x */ '√', '�', '²', '∠', '°', 'ʳ', 'ᵀ', '≤', '≠', '≥', '⁻', 'ᴇ', '→', '⏨', '↑', '↓',
		/* 2x */ ' ', '!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
		/* 3x */ '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?',
		/* 4x */ '@', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
		/* 5x */ 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', 'θ', '\\', ']', '^', '_',
		/* 6x */ '`', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
		/* 7x */ 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '{', '|', '}', '~', '�',
		/* 8x */ '₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉', 'Á', 'À', 'Â', 'Ä', 'á', 'à',
		/* 9x */ 'â', 'ä', 'É', 'È', 'Ê', 'Ë', 'é', 'è', 'ê', 'ë', 'Í', 'Ì', 'Î', 'Ï', 'í', 'ì',
		/* Ax */ 'î', 'ï', 'Ó', 'Ò', 'Ô', 'Ö', 'ó', 'ò', 'ô', 'ö', 'Ú', 'Ù', 'Û', 'Ü', 'ú', 'ù',
		/* Bx */ 'û', 'ü', 'Ç', 'ç', 'Ñ', 'ñ', '´', '`', '¨', '¿', '¡', 'α', 'β', 'γ', 'Δ', 'δ',
		/* Cx */ 'ε', '[', 'λ', 'μ', 'π', 'ρ', 'Σ', 'σ', 'τ', 'φ', 'Ω', '�', '�', 'ˣ', '…', '◀',
		/* Dx */ '■', '∕', '‐', '²', '°', '³', '\n', '𝑖', '�', 'χ', '𝐅', 'ℯ', 'ʟ', 'ɴ', '⸨', '▸',
		/* Ex */ '█', '▒', '░', '▓', '▯', '▮', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�',
		/* Fx */ '⇩', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�',
	},
	ext: map[byte][]rune{
		// 0xEF introduces the bold math letters. It has no glyph of its
		// own.
		0xEF: {
			/*       x0   x1   x2   x3   x4   x5   x6   x7   x8   x9   xA   xB   xC   xD   xE   xF */
			/* 0x */ '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�',
			/* 1x */ '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�',
			/* 2x */ '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�',
			/* 3x */ '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�',
			/* 4x */ '�', '𝐀', '𝐁', '𝐂', '𝐃', '𝐄', '𝐅', '𝐆', '𝐇', '𝐈', '𝐉', '𝐊', '𝐋', '𝐌', '𝐍', '𝐎',
			/* 5x */ '𝐏', '𝐐', '𝐑', '𝐒', '𝐓', '𝐔', '𝐕', '𝐖', '𝐗', '𝐘', '𝐙', '�', '�', '�', '�', '�',
			/* 6x */ '�', '𝐚', '𝐛', '𝐜', '𝐝', '𝐞', '𝐟', '𝐠', '𝐡', '𝐢', '𝐣', '𝐤', '𝐥', '𝐦', '𝐧', '𝐨',
			/* 7x */ '𝐩', '𝐪', '𝐫', '𝐬', '𝐭', '𝐮', '𝐯', '𝐰', '𝐱', '𝐲', '𝐳', '�', '�', '�', '�', '�',
			/* 8x */ '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�',
			/* 9x */ '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�',
			/* Ax */ '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�',
			/* Bx */ '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�',
			/* Cx */ '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�',
			/* Dx */ '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�',
			/* Ex */ '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�',
			/* Fx */ '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�',
		},
	},
	aliases: map[rune]byte{
		'\u0398': 0x5B, // GREEK CAPITAL LETTER THETA
		'\u03D1': 0x5B, // GREEK THETA SYMBOL
		'\u00B5': 0xC3, // MICRO SIGN
		'\u2206': 0xBE, // INCREMENT
		'\u2126': 0xCA, // OHM SIGN
		'\u2212': 0x1A, // MINUS SIGN
		'\u2148': 0xD7, // DOUBLE-STRUCK ITALIC SMALL I
	},
})

// The TI-83 shares the TI-83 Plus font but has no two-byte sequences.
var TI83 *Table = derive(TI83P, Family83, "ti83", nil, false)

// The TI-82 font has no international characters.
var TI82 *Table = derive(TI83, Family82, "ti82", ti82Overrides(), false)

// The TI-73 font replaces ^-1 with a fraction slash for its n/d entry
// mode.
var TI73 *Table = derive(TI83, Family73, "ti73", map[byte]rune{
	0x11: '⁄',
}, false)

func ti82Overrides() map[byte]rune {
	m := make(map[byte]rune)
	for b := 0x8A; b <= 0xBA; b++ {
		m[byte(b)] = '�'
	}
	return m
}
