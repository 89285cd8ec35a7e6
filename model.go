// This file is part of https://github.com/racingmars/ticonv/
// Copyright 2025 by Matthew R. Wilson, licensed under the MIT license. See
// LICENSE in the project root for license information.

package ticonv

import (
	"fmt"
	"strings"

	"github.com/racingmars/ticonv/internal/charset"
)

// Model identifies a calculator hardware model.
type Model int

const (
	CalcNone Model = iota
	CalcTI73
	CalcTI82
	CalcTI83
	CalcTI83P
	CalcTI84P
	CalcTI85
	CalcTI86
	CalcTI89
	CalcTI89T
	CalcTI92
	CalcTI92P
	CalcV200
	CalcTI84PUSB
	CalcTI89TUSB
	CalcNSpire
)

// Family is a group of models sharing one character table and one set of
// variable name rules.
type Family = charset.Family

const (
	FamilyNone = charset.FamilyNone
	Family73   = charset.Family73
	Family82   = charset.Family82
	Family83   = charset.Family83
	Family83P  = charset.Family83P
	Family85   = charset.Family85
	Family86   = charset.Family86
	Family9x   = charset.Family9x
)

var modelNames = []string{
	CalcNone:     "none",
	CalcTI73:     "TI-73",
	CalcTI82:     "TI-82",
	CalcTI83:     "TI-83",
	CalcTI83P:    "TI-83+",
	CalcTI84P:    "TI-84+",
	CalcTI85:     "TI-85",
	CalcTI86:     "TI-86",
	CalcTI89:     "TI-89",
	CalcTI89T:    "TI-89 Titanium",
	CalcTI92:     "TI-92",
	CalcTI92P:    "TI-92+",
	CalcV200:     "V200",
	CalcTI84PUSB: "TI-84+ USB",
	CalcTI89TUSB: "TI-89 Titanium USB",
	CalcNSpire:   "Nspire",
}

var modelToFamily = map[Model]Family{
	CalcTI73:     Family73,
	CalcTI82:     Family82,
	CalcTI83:     Family83,
	CalcTI83P:    Family83P,
	CalcTI84P:    Family83P,
	CalcTI84PUSB: Family83P,
	CalcTI85:     Family85,
	CalcTI86:     Family86,
	CalcTI89:     Family9x,
	CalcTI89T:    Family9x,
	CalcTI89TUSB: Family9x,
	CalcTI92:     Family9x,
	CalcTI92P:    Family9x,
	CalcV200:     Family9x,
}

func (m Model) String() string {
	if m >= 0 && int(m) < len(modelNames) {
		return modelNames[m]
	}
	return fmt.Sprintf("Model(%d)", int(m))
}

// Family returns the character family of m. Models we have no table for,
// including the Nspire and values outside the enumeration, belong to
// FamilyNone.
func (m Model) Family() Family {
	if f, ok := modelToFamily[m]; ok {
		return f
	}
	return FamilyNone
}

// ModelFromString returns the model whose display name is s, ignoring case.
// Spaces and dashes are optional, so "ti83+" and "TI-83+" both work. Unknown
// names return CalcNone.
func ModelFromString(s string) Model {
	want := squash(s)
	for m, name := range modelNames {
		if want == squash(name) {
			return Model(m)
		}
	}
	return CalcNone
}

func squash(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer("-", "", " ", "", "plus", "+").Replace(s)
}
