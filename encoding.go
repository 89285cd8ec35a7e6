// This file is part of https://github.com/racingmars/ticonv/
// Copyright 2025 by Matthew R. Wilson, licensed under the MIT license. See
// LICENSE in the project root for license information.

package ticonv

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/racingmars/ticonv/internal/charset"
)

// Encoding returns a golang.org/x/text encoding for the character set of
// model m, for use with transform.NewReader and friends. Unlike the other
// conversion functions it treats its input as a stream: a 0x00 byte or NUL
// character is carried through instead of ending the text.
func Encoding(m Model) (encoding.Encoding, error) {
	t, ok := charset.Lookup(m.Family())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedModel, m)
	}
	return &tiEncoding{table: t}, nil
}

type tiEncoding struct {
	table *charset.Table
}

// NewDecoder implements the encoding.Encoding interface.
func (e *tiEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: tiDecoder{table: e.table}}
}

// NewEncoder implements the encoding.Encoding interface.
func (e *tiEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: tiEncoder{table: e.table}}
}

func (e *tiEncoding) String() string {
	return e.table.ID()
}

// tiDecoder implements transform.Transformer by decoding to UTF-8.
type tiDecoder struct {
	transform.NopResetter
	table *charset.Table
}

func (d tiDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		r, size := rune(0), 1
		if c != 0 {
			// Wait for the second byte rather than decode a lead byte alone.
			if nSrc+1 == len(src) && !atEOF && d.table.IsLead(c) {
				err = transform.ErrShortSrc
				break
			}
			r, size = d.table.DecodeRune(src[nSrc:])
		}

		if nDst+utf8.RuneLen(r) > len(dst) {
			err = transform.ErrShortDst
			break
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
	}
	return nDst, nSrc, err
}

// tiEncoder implements transform.Transformer by encoding from UTF-8.
// Characters outside the table become '?', as they do everywhere else in
// this package.
type tiEncoder struct {
	transform.NopResetter
	table *charset.Table
}

func (e tiEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRune(src[nSrc:])
			if size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
				err = transform.ErrShortSrc
				break
			}
		}

		seq, n := [2]byte{}, 1
		if r != 0 {
			seq, n = e.table.EncodeRune(r)
		}
		if nDst+n > len(dst) {
			err = transform.ErrShortDst
			break
		}
		nDst += copy(dst[nDst:], seq[:n])
		nSrc += size
	}
	return nDst, nSrc, err
}
