// This file is part of https://github.com/racingmars/ticonv/
// Copyright 2025 by Matthew R. Wilson, licensed under the MIT license. See
// LICENSE in the project root for license information.

package ticonv

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/racingmars/ticonv/internal/charset"
	"github.com/racingmars/ticonv/internal/tokens"
)

// The conversion functions in this file never fail. Characters with no
// equivalent on the other side are replaced (U+FFFD when decoding, '?' when
// encoding), input stops at the first NUL, and a model without a character
// table produces an empty result. The ...Into variants write a 0
// terminator after the result and return the filled part of dst without
// it; dst must be at least as long as the matching Max... bound or the call
// panics.

// Buffer sizes, terminator included, that always hold a converted variable
// name.
const (
	VarnameUTF16Len = 2*tokens.MaxDisplayLen + 1
	VarnameUTF8Len  = 4*tokens.MaxDisplayLen + 1
)

// MaxEncodedLen is the device buffer size, terminator included, needed to
// encode n UTF-16 code units or n UTF-8 bytes.
func MaxEncodedLen(n int) int { return charset.MaxEncodedLen(n) }

// MaxUTF16Len is the UTF-16 buffer size, terminator included, needed to
// decode n device bytes.
func MaxUTF16Len(n int) int { return charset.MaxUTF16Len(n) }

// MaxUTF8Len is the UTF-8 buffer size, terminator included, needed to
// decode n device bytes.
func MaxUTF8Len(n int) int { return charset.MaxUTF8Len(n) }

// CharsetUTF16ToTI converts UTF-16 text to the character set of model m.
func CharsetUTF16ToTI(m Model, u []uint16) []byte {
	t, ok := table("CharsetUTF16ToTI", m)
	if !ok {
		return []byte{}
	}
	return t.AppendEncodeUTF16(make([]byte, 0, charset.MaxEncodedLen(len(u))), u)
}

// CharsetUTF8ToTI converts UTF-8 text to the character set of model m.
// Malformed UTF-8 bytes encode to '?' one by one.
func CharsetUTF8ToTI(m Model, s string) []byte {
	t, ok := table("CharsetUTF8ToTI", m)
	if !ok {
		return []byte{}
	}
	return t.AppendEncodeUTF8(make([]byte, 0, charset.MaxEncodedLen(len(s))), s)
}

// CharsetUTF16ToTIInto is CharsetUTF16ToTI writing into dst, which must
// hold at least MaxEncodedLen(len(u)) bytes.
func CharsetUTF16ToTIInto(m Model, u []uint16, dst []byte) []byte {
	t, ok := table("CharsetUTF16ToTIInto", m)
	if !ok {
		dst[0] = 0
		return dst[:0]
	}
	return dst[:t.EncodeUTF16Into(dst, u)]
}

// CharsetTIToUTF16 converts text in the character set of model m to UTF-16.
func CharsetTIToUTF16(m Model, ti []byte) []uint16 {
	t, ok := table("CharsetTIToUTF16", m)
	if !ok {
		return []uint16{}
	}
	return t.AppendUTF16(make([]uint16, 0, charset.MaxUTF16Len(len(ti))), ti)
}

// CharsetTIToUTF16Into is CharsetTIToUTF16 writing into dst, which must
// hold at least MaxUTF16Len(len(ti)) code units.
func CharsetTIToUTF16Into(m Model, ti []byte, dst []uint16) []uint16 {
	t, ok := table("CharsetTIToUTF16Into", m)
	if !ok {
		dst[0] = 0
		return dst[:0]
	}
	return dst[:t.DecodeUTF16Into(dst, ti)]
}

// CharsetTIToUTF8 converts text in the character set of model m to UTF-8.
func CharsetTIToUTF8(m Model, ti []byte) string {
	t, ok := table("CharsetTIToUTF8", m)
	if !ok {
		return ""
	}
	return decodeUTF8(t, ti)
}

// VarnameDetokenize expands a raw variable name as stored by model m into
// the name shown on the calculator screen, still in the calculator
// character set. On the TI-73, TI-82, TI-83 and TI-83+/84+ the names of
// system variables are stored as a reserved code and a slot number; for
// instance {0x5D, 0x00} is list L₁. Names longer than 16 bytes are
// truncated.
func VarnameDetokenize(m Model, raw []byte) []byte {
	_, name, ok := detokenize("VarnameDetokenize", m, raw)
	if !ok {
		return []byte{}
	}
	return name
}

// VarnameToUTF16 expands a raw variable name and converts it to UTF-16.
func VarnameToUTF16(m Model, raw []byte) []uint16 {
	t, name, ok := detokenize("VarnameToUTF16", m, raw)
	if !ok {
		return []uint16{}
	}
	return t.AppendUTF16(make([]uint16, 0, charset.MaxUTF16Len(len(name))), name)
}

// VarnameToUTF16Into is VarnameToUTF16 writing into dst, which must hold at
// least VarnameUTF16Len code units.
func VarnameToUTF16Into(m Model, raw []byte, dst []uint16) []uint16 {
	t, name, ok := detokenize("VarnameToUTF16Into", m, raw)
	if !ok {
		dst[0] = 0
		return dst[:0]
	}
	return dst[:t.DecodeUTF16Into(dst, name)]
}

// VarnameToUTF8 expands a raw variable name and converts it to UTF-8.
func VarnameToUTF8(m Model, raw []byte) string {
	t, name, ok := detokenize("VarnameToUTF8", m, raw)
	if !ok {
		return ""
	}
	return decodeUTF8(t, name)
}

// VarnameToUTF8Into is VarnameToUTF8 writing into dst, which must hold at
// least VarnameUTF8Len bytes.
func VarnameToUTF8Into(m Model, raw []byte, dst []byte) []byte {
	var s string
	if t, name, ok := detokenize("VarnameToUTF8Into", m, raw); ok {
		s = decodeUTF8(t, name)
	}
	dst[len(s)] = 0
	return dst[:copy(dst, s)]
}

// detokenize looks up the table for m once and expands raw with the rules
// of its family.
func detokenize(op string, m Model, raw []byte) (*charset.Table, []byte, bool) {
	t, ok := table(op, m)
	if !ok {
		return nil, nil, false
	}

	name := tokens.Detokenize(t.Family(), raw)
	if !bytes.HasPrefix(raw, name) {
		Logger().Debug("expanded variable name",
			zap.Stringer("model", m),
			zap.Binary("raw", raw),
			zap.Binary("name", name))
	}
	return t, name, true
}
