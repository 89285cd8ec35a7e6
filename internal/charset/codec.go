// This file is part of https://github.com/racingmars/ticonv/
// Copyright 2025 by Matthew R. Wilson, licensed under the MIT license. See
// LICENSE in the project root for license information.

package charset

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Worst-case output sizes, terminator included.
//
// Every device byte decodes to at most one scalar, which needs at most two
// UTF-16 code units or four UTF-8 bytes. Every UTF-16 code unit encodes to
// at most one device byte because two-byte device sequences only exist for
// scalars that need a surrogate pair.

// MaxEncodedLen is the device buffer size needed to encode n UTF-16 code
// units or n UTF-8 bytes.
func MaxEncodedLen(n int) int { return n + 1 }

// MaxUTF16Len is the UTF-16 buffer size needed to decode n device bytes.
func MaxUTF16Len(n int) int { return 2*n + 1 }

// MaxUTF8Len is the UTF-8 buffer size needed to decode n device bytes.
func MaxUTF8Len(n int) int { return 4*n + 1 }

// cstr returns the part of b before the first 0x00 byte.
func cstr(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

// cstr16 returns the part of u before the first 0 code unit.
func cstr16(u []uint16) []uint16 {
	for i, c := range u {
		if c == 0 {
			return u[:i]
		}
	}
	return u
}

// AppendUTF16 decodes the device string ti, up to its first 0x00 byte, and
// appends the UTF-16 result to dst.
func (t *Table) AppendUTF16(dst []uint16, ti []byte) []uint16 {
	ti = cstr(ti)
	for len(ti) > 0 {
		r, size := t.DecodeRune(ti)
		ti = ti[size:]
		if r >= 0x10000 {
			r1, r2 := utf16.EncodeRune(r)
			dst = append(dst, uint16(r1), uint16(r2))
			continue
		}
		dst = append(dst, uint16(r))
	}
	return dst
}

// DecodeUTF16Into decodes the device string ti into dst, writes a 0
// terminator, and returns the number of code units written before the
// terminator.
//
// dst must hold at least MaxUTF16Len(len(ti)) code units. A shorter buffer
// is a caller bug and may panic.
func (t *Table) DecodeUTF16Into(dst []uint16, ti []byte) int {
	ti = cstr(ti)
	n := 0
	for len(ti) > 0 {
		r, size := t.DecodeRune(ti)
		ti = ti[size:]
		if r >= 0x10000 {
			r1, r2 := utf16.EncodeRune(r)
			dst[n] = uint16(r1)
			dst[n+1] = uint16(r2)
			n += 2
			continue
		}
		dst[n] = uint16(r)
		n++
	}
	dst[n] = 0
	return n
}

// AppendEncodeUTF16 encodes the UTF-16 string u, up to its first 0 code
// unit, and appends the device bytes to dst. Surrogate pairs are combined
// before lookup; an unpaired surrogate encodes to Sub like any other
// unmappable code unit.
func (t *Table) AppendEncodeUTF16(dst []byte, u []uint16) []byte {
	u = cstr16(u)
	for len(u) > 0 {
		r, size := decodeUTF16Rune(u)
		u = u[size:]
		b, n := t.EncodeRune(r)
		dst = append(dst, b[:n]...)
	}
	return dst
}

// EncodeUTF16Into encodes the UTF-16 string u into dst, writes a 0x00
// terminator, and returns the number of bytes written before the
// terminator.
//
// dst must hold at least MaxEncodedLen(len(u)) bytes. A shorter buffer is a
// caller bug and may panic.
func (t *Table) EncodeUTF16Into(dst []byte, u []uint16) int {
	u = cstr16(u)
	n := 0
	for len(u) > 0 {
		r, size := decodeUTF16Rune(u)
		u = u[size:]
		b, w := t.EncodeRune(r)
		n += copy(dst[n:n+w], b[:w])
	}
	dst[n] = 0
	return n
}

// AppendEncodeUTF8 encodes the UTF-8 string s, up to its first NUL, and
// appends the device bytes to dst. Each invalid UTF-8 byte encodes to Sub.
func (t *Table) AppendEncodeUTF8(dst []byte, s string) []byte {
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == 0 {
			break
		}
		s = s[size:]
		b, n := t.EncodeRune(r)
		dst = append(dst, b[:n]...)
	}
	return dst
}

// decodeUTF16Rune returns the scalar at the start of u and the number of
// code units it occupies. An unpaired surrogate is returned as
// utf8.RuneError with size 1.
func decodeUTF16Rune(u []uint16) (rune, int) {
	r1 := rune(u[0])
	if !utf16.IsSurrogate(r1) {
		return r1, 1
	}
	if len(u) > 1 {
		if r := utf16.DecodeRune(r1, rune(u[1])); r != utf8.RuneError {
			return r, 2
		}
	}
	return utf8.RuneError, 1
}
