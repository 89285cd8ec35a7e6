// This file is part of https://github.com/racingmars/ticonv/
// Copyright 2025 by Matthew R. Wilson, licensed under the MIT license. See
// LICENSE in the project root for license information.

package charset

// TI9x implements the character set shared by the TI-89, TI-89 Titanium,
// TI-92, TI-92 Plus and Voyage 200. The upper half is ISO 8859-1 except
// where the calculators put math symbols.
var TI9x *Table = newTable(&Table{
	family: Family9x,
	id:     "ti9x",
	d2u: []rune{
		/*       x0      x1      x2      x3      x4      x5      x6      x7      x8      x9      xA      xB      xC      xD      xE      xF */
		/* 0x */ '\x00', '�', '�', '�', '�', '�', '�', '�', '�', '\t', '\n', '�', '�', '\r', '�', '�',
		/* 1x */ '✓', '■', '◀', '▶', '↑', '↓', '←', '→', '�', '�', '�', '�', '∪', '∩', '⊂', '∈',
		/* 2x */ ' ', '!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
		/* 3x */ '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?',
		/* 4x */ '@', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
		/* 5x */ 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', '[', '\\', ']', '^', '_',
		/* 6x */ '`', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
		/* 7x */ 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '{', '|', '}', '~', '◆',
		/* 8x */ 'α', 'β', 'Γ', 'γ', 'Δ', 'δ', 'ε', 'ζ', 'θ', 'λ', 'ξ', 'Π', 'π', 'ρ', 'Σ', 'σ',
		/* 9x */ 'τ', 'φ', 'ψ', 'Ω', 'ω', 'ᴇ', 'ℯ', '𝑖', 'ʳ', 'ᵀ', '�', '�', '≤', '≠', '≥', '∠',
		/* Ax */ '…', '¡', '¢', '£', '¤', '¥', '¦', '§', '√', '©', 'ª', '«', '¬', '−', '®', '¯',
		/* Bx */ '°', '±', '²', '³', '´', 'µ', '¶', '·', '¸', '¹', 'º', '»', '∂', '∫', '∞', '¿',
		/* Cx */ 'À', 'Á', 'Â', 'Ã', 'Ä', 'Å', 'Æ', 'Ç', 'È', 'É', 'Ê', 'Ë', 'Ì', 'Í', 'Î', 'Ï',
		/* Dx */ 'Ð', 'Ñ', 'Ò', 'Ó', 'Ô', 'Õ', 'Ö', '×', 'Ø', 'Ù', 'Ú', 'Û', 'Ü', 'Ý', 'Þ', 'ß',
		/* Ex */ 'à', 'á', 'â', 'ã', 'ä', 'å', 'æ', 'ç', 'è', 'é', 'ê', 'ë', 'ì', 'í', 'î', 'ï',
		/* Fx */ 'ð', 'ñ', 'ò', 'ó', 'ô', 'õ', 'ö', '÷', 'ø', 'ù', 'ú', 'û', 'ü', 'ý', 'þ', 'ÿ',
	},
	aliases: map[rune]byte{
		'\u0398': 0x88, // GREEK CAPITAL LETTER THETA
		'\u03BC': 0xB5, // GREEK SMALL LETTER MU
		'\u2206': 0x84, // INCREMENT
		'\u2126': 0x93, // OHM SIGN
		'\u00A0': 0x20, // NO-BREAK SPACE
		'\u00AD': 0xAD, // SOFT HYPHEN
		'\u2148': 0x97, // DOUBLE-STRUCK ITALIC SMALL I
	},
})
