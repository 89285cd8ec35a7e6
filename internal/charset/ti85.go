// This file is part of https://github.com/racingmars/ticonv/
// Copyright 2025 by Matthew R. Wilson, licensed under the MIT license. See
// LICENSE in the project root for license information.

package charset

// TI85 implements the TI-85 character set.
var TI85 *Table = newTable(&Table{
	family: Family85,
	id:     "ti85",
	d2u: []rune{
		/*       x0      x1      x2      x3      x4      x5      x6      x7      x8      x9      xA      xB      xC      xD      xE      xF */
		/* 0x */ '\x00', '▶', '↑', '↓', '∫', '×', '□', '⁺', '·', '³', '�', '∠', '°', 'ʳ', 'ᵀ', '≤',
		/* 1x */ '≠', '≥', '⁻', 'ᴇ', '→', '←', '²', '�', '√', '�', '�', '�', '�', '�', '�', '�',
		/* 2x */ ' ', '!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
		/* 3x */ '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?',
		/* 4x */ '@', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
		/* 5x */ 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', '[', '\\', ']', '^', '_',
		/* 6x */ '`', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
		/* 7x */ 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '{', '|', '}', '~', '�',
		/* 8x */ '₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉', 'Á', 'À', 'Â', 'Ä', 'á', 'à',
		/* 9x */ 'â', 'ä', 'É', 'È', 'Ê', 'Ë', 'é', 'è', 'ê', 'ë', 'Í', 'Ì', 'Î', 'Ï', 'í', 'ì',
		/* Ax */ 'î', 'ï', 'Ó', 'Ò', 'Ô', 'Ö', 'ó', 'ò', 'ô', 'ö', 'Ú', 'Ù', 'Û', 'Ü', 'ú', 'ù',
		/* Bx */ 'û', 'ü', 'Ç', 'ç', 'Ñ', 'ñ', '´', '`', '¨', '¿', '¡', 'α', 'β', 'γ', 'Δ', 'δ',
		/* Cx */ 'ε', 'θ', 'λ', 'μ', 'π', 'ρ', 'Σ', 'σ', 'τ', 'φ', 'Ω', '�', '�', 'ˣ', '…', '◀',
		/* Dx */ '■', '∕', '‐', '²', '°', '³', '\n', '�', '�', '�', '�', '�', '�', '�', '�', '�',
		/* Ex */ '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�',
		/* Fx */ '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�', '�',
	},
	aliases: map[rune]byte{
		'\u0398': 0xC1, // GREEK CAPITAL LETTER THETA
		'\u00B5': 0xC3, // MICRO SIGN
		'\u2206': 0xBE, // INCREMENT
		'\u2126': 0xCA, // OHM SIGN
		'\u2212': 0x12, // MINUS SIGN
	},
})

// The TI-86 font adds the exponential e, the list L and the imaginary i to
// the TI-85 set.
var TI86 *Table = derive(TI85, Family86, "ti86", map[byte]rune{
	0xD7: '𝑖',
	0xD8: 'ℯ',
	0xD9: 'ʟ',
}, false)
