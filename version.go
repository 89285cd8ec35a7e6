// This file is part of https://github.com/racingmars/ticonv/
// Copyright 2025 by Matthew R. Wilson, licensed under the MIT license. See
// LICENSE in the project root for license information.

// Package ticonv converts text between the character sets of TI graphing
// calculators and Unicode, as UTF-16 code units or UTF-8.
//
// Every function is safe for concurrent use. The character tables are
// built when the package is initialized and never change.
package ticonv

const version = "1.1.5"

// Version returns the library version as "X.Y.Z".
func Version() string {
	return version
}
