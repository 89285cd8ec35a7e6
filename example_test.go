// This file is part of https://github.com/racingmars/ticonv/
// Copyright 2025 by Matthew R. Wilson, licensed under the MIT license. See
// LICENSE in the project root for license information.

package ticonv_test

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"golang.org/x/text/transform"

	"github.com/racingmars/ticonv"
)

func ExampleVarnameToUTF8() {
	// Names as they come off the link cable, in 8-byte NUL padded fields.
	fmt.Println(ticonv.VarnameToUTF8(ticonv.CalcTI84P, []byte{0x5D, 0x00, 0, 0, 0, 0, 0, 0}))
	fmt.Println(ticonv.VarnameToUTF8(ticonv.CalcTI84P, []byte{0x5C, 0x02, 0, 0, 0, 0, 0, 0}))
	fmt.Println(ticonv.VarnameToUTF8(ticonv.CalcTI84P, []byte{0x60, 0x09, 0, 0, 0, 0, 0, 0}))
	fmt.Println(ticonv.VarnameToUTF8(ticonv.CalcTI89, []byte("main\\prog")))
	// Output:
	// L₁
	// [C]
	// Pic0
	// main\prog
}

func ExampleCharsetUTF8ToTI() {
	ti := ticonv.CharsetUTF8ToTI(ticonv.CalcTI83P, "θ²€")
	fmt.Printf("% X\n", ti)
	fmt.Println(ticonv.CharsetTIToUTF8(ticonv.CalcTI83P, ti))
	// Output:
	// 5B 12 3F
	// θ²?
}

func ExampleCharsetFor() {
	cs, err := ticonv.CharsetFor(ticonv.ModelFromString("TI-92 Plus"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(cs.ID(), cs.Decode([]byte{0x88, '=', 0x8C}))

	_, err = ticonv.CharsetFor(ticonv.CalcNSpire)
	fmt.Println(err)
	// Output:
	// ti9x θ=π
	// ticonv: unsupported calculator model: Nspire
}

func ExampleEncoding() {
	enc, err := ticonv.Encoding(ticonv.CalcV200)
	if err != nil {
		log.Fatal(err)
	}

	r := transform.NewReader(bytes.NewReader([]byte{0x88, '=', 0x8C, '/', '2'}), enc.NewDecoder())
	text, err := io.ReadAll(r)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(text))
	// Output: θ=π/2
}
