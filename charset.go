// This file is part of https://github.com/racingmars/ticonv/
// Copyright 2025 by Matthew R. Wilson, licensed under the MIT license. See
// LICENSE in the project root for license information.

package ticonv

import (
	"errors"
	"fmt"

	"github.com/racingmars/ticonv/internal/charset"
)

// ErrUnsupportedModel is returned when a model has no character table.
var ErrUnsupportedModel = errors.New("ticonv: unsupported calculator model")

// Implementations of Charset provide calculator<->Unicode translation for one
// family of models. Conversion never fails: device bytes with no Unicode
// equivalent decode to U+FFFD and characters the calculator cannot show
// encode to '?'. Input stops at the first NUL.
type Charset interface {
	// Decode converts device bytes into a UTF-8 string.
	Decode(ti []byte) string

	// Encode converts a UTF-8 string into device bytes.
	Encode(s string) []byte

	// DecodeUTF16 converts device bytes into UTF-16 code units.
	DecodeUTF16(ti []byte) []uint16

	// EncodeUTF16 converts UTF-16 code units into device bytes. Unpaired
	// surrogates encode to '?'.
	EncodeUTF16(u []uint16) []byte

	// ID returns the name of the character table, such as "ti83p".
	ID() string

	// Family returns the model family the table serves.
	Family() Family
}

type tableCharset struct {
	*charset.Table
}

func (c tableCharset) Decode(ti []byte) string {
	return decodeUTF8(c.Table, ti)
}

func (c tableCharset) Encode(s string) []byte {
	return c.AppendEncodeUTF8(make([]byte, 0, len(s)), s)
}

func (c tableCharset) DecodeUTF16(ti []byte) []uint16 {
	return c.AppendUTF16(make([]uint16, 0, charset.MaxUTF16Len(len(ti))), ti)
}

func (c tableCharset) EncodeUTF16(u []uint16) []byte {
	return c.AppendEncodeUTF16(make([]byte, 0, charset.MaxEncodedLen(len(u))), u)
}

// CharsetFor returns the character table used by model m. Models without a
// table return ErrUnsupportedModel.
func CharsetFor(m Model) (Charset, error) {
	t, ok := charset.Lookup(m.Family())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedModel, m)
	}
	return tableCharset{t}, nil
}

// table is the lookup shared by the conversion entry points, which treat an
// unsupported model as empty output rather than an error.
func table(op string, m Model) (*charset.Table, bool) {
	t, ok := charset.Lookup(m.Family())
	if !ok {
		unsupported(op, m)
	}
	return t, ok
}

// decodeUTF8 decodes through UTF-16 and the transcoder so that the UTF-8
// result is, by construction, the same text as the UTF-16 one.
func decodeUTF8(t *charset.Table, ti []byte) string {
	u := t.AppendUTF16(make([]uint16, 0, charset.MaxUTF16Len(len(ti))), ti)
	// newTable rejects surrogates, so decoded text is always valid UTF-16.
	s, _ := UTF16ToUTF8(u)
	return s
}
