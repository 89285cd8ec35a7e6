// This file is part of https://github.com/racingmars/ticonv/
// Copyright 2025 by Matthew R. Wilson, licensed under the MIT license. See
// LICENSE in the project root for license information.

package ticonv

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrInvalidUTF16 is returned by UTF16ToUTF8 for an unpaired surrogate.
var ErrInvalidUTF16 = errors.New("ticonv: invalid UTF-16")

// UTF16Strlen returns the number of code units in u before the first 0
// code unit, or len(u) if there is none. A surrogate pair counts as two.
func UTF16Strlen(u []uint16) int {
	for i, c := range u {
		if c == 0 {
			return i
		}
	}
	return len(u)
}

// UTF8ToUTF16 converts s, up to its first NUL, to UTF-16. Malformed UTF-8
// returns an error wrapping encoding.ErrInvalidUTF8.
func UTF8ToUTF16(s string) ([]uint16, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	if _, _, err := transform.String(encoding.UTF8Validator, s); err != nil {
		return nil, fmt.Errorf("ticonv: utf-8 to utf-16: %w", err)
	}

	out := make([]uint16, 0, len(s))
	for _, r := range s {
		out = utf16.AppendRune(out, r)
	}
	return out, nil
}

// UTF16ToUTF8 converts u, up to its first 0 code unit, to UTF-8. An
// unpaired surrogate returns an error wrapping ErrInvalidUTF16.
func UTF16ToUTF8(u []uint16) (string, error) {
	u = u[:UTF16Strlen(u)]

	buf := make([]byte, 0, len(u)*3)
	for i := 0; i < len(u); i++ {
		r := rune(u[i])
		if utf16.IsSurrogate(r) {
			if i+1 < len(u) {
				r = utf16.DecodeRune(r, rune(u[i+1]))
			} else {
				r = utf8.RuneError
			}
			if r == utf8.RuneError {
				return "", fmt.Errorf("%w: unpaired surrogate 0x%04X at %d", ErrInvalidUTF16, u[i], i)
			}
			i++
		}
		buf = utf8.AppendRune(buf, r)
	}
	return string(buf), nil
}
