// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package name - Formats and compares people's names.

A name has two parts, the family name and the given names.
The full form joins them with two blanks: "Clarke  Jim Bob".

Every part is capitalized and standardized when a Name is built:

	name.New("mcdonald,ian").Full == "McDonald  Ian"
*/
package name

import (
	"strings"
	"unicode"

	"github.com/DavidGamba/go-optscan/strscan"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Separator between the family name and the given names.
const Separator = ","

// Joiner between the family name and the given names in the full form.
const Joiner = "  "

// Characters other than letters and whitespace allowed by Check.
const extraCharacters = ".-'()"

var (
	lower = cases.Lower(language.Und)
	upper = cases.Upper(language.Und)
)

// Name - An immutable person's name.
type Name struct {
	Full   string
	Family string
	Given  string
	normal string
}

// New - Builds a Name from a single string holding the family name followed by the given names.
// See Dissect.
func New(full string) Name {
	return FromParts(Dissect(full))
}

// FromParts - Builds a Name from its family name and given names.
// When the family name is empty the given names become the family name.
func FromParts(family, given string) Name {
	n := Name{
		Family: Standardize(Capitalize(family)),
		Given:  Standardize(Capitalize(given)),
	}
	if n.Family == "" {
		n.Family, n.Given = n.Given, ""
	}
	n.Full = n.Family
	if n.Given != "" {
		n.Full += Joiner + n.Given
	}
	n.normal = lower.String(n.Full)
	return n
}

func (n Name) String() string {
	return n.Full
}

// Equal - Compares names ignoring case.
func (n Name) Equal(other Name) bool {
	return n.normal == other.normal
}

// Less - Orders names ignoring case.
func (n Name) Less(other Name) bool {
	return n.normal < other.normal
}

// Compare - Returns -1, 0 or +1 ignoring case.
func (n Name) Compare(other Name) int {
	return strings.Compare(n.normal, other.normal)
}

// Dissect - Splits name into family name and given names.
//
// The separators are tried in order: Separator, two blanks, tab, blank.
// The first one found in the trimmed name splits it. The given names are trimmed,
// the family name is left as is.
// Without a separator the whole name is the family name.
func Dissect(name string) (family, given string) {
	trimmed := strscan.TrimWhitespace(name)
	for _, sep := range []string{Separator, "  ", "\t", " "} {
		if i := strings.Index(trimmed, sep); i >= 0 {
			return trimmed[:i], strscan.TrimWhitespace(trimmed[i+len(sep):])
		}
	}
	return name, ""
}

// Standardize - Turns whitespace and separators into blanks, trims the result
// and squeezes runs of blanks into one.
func Standardize(name string) string {
	blanked := strings.Map(func(r rune) rune {
		if strscan.IsWhitespace(r) || string(r) == Separator {
			return ' '
		}
		return r
	}, name)
	words := strings.FieldsFunc(blanked, func(r rune) bool { return r == ' ' })
	return strings.Join(words, " ")
}

// Capitalize - Returns name with each word capitalized, words separated by single blanks.
//
// In a name that mixes cases, the noble prefixes de, di, van and von are left
// alone unless they are the last word, and Mac and Fitz keep an existing
// internal capital ("MacDonald", "FitzAllan").
// Mc and O' always get one ("McDonald", "O'Brian").
// The letter after the first hyphen is capitalized.
func Capitalize(name string) string {
	hasLower, hasUpper := false, false
	for _, r := range name {
		hasLower = hasLower || unicode.IsLower(r)
		hasUpper = hasUpper || unicode.IsUpper(r) || unicode.IsTitle(r)
	}
	mixed := hasLower && hasUpper

	words := strings.Split(Standardize(name), " ")
	fixed := make([]string, 0, len(words))
	for i, word := range words {
		if word == "" {
			continue
		}
		fixed = append(fixed, capitalizeWord(word, mixed, i == len(words)-1))
	}
	return strings.Join(fixed, " ")
}

func capitalizeWord(word string, mixed, last bool) string {
	original := []rune(word)
	lowered := lower.String(word)

	capitalizeFirst := true
	switch word {
	case "de", "di", "van", "von":
		if mixed && !last {
			capitalizeFirst = false
		}
	}

	internalCap := -1
	if (strings.HasPrefix(lowered, "mc") || strings.HasPrefix(lowered, "o'")) && len(original) > 2 {
		internalCap = 2
	}
	if mixed {
		maybe := -1
		if strings.HasPrefix(lowered, "mac") {
			maybe = 3
		} else if strings.HasPrefix(lowered, "fitz") {
			maybe = 4
		}
		if maybe > 0 && maybe < len(original) && unicode.IsUpper(original[maybe]) {
			internalCap = maybe
		}
	}

	rs := []rune(lowered)
	if capitalizeFirst {
		rs = upperAt(rs, 0)
	}
	for i, r := range rs {
		if r == '-' {
			if i+1 < len(rs) {
				rs = upperAt(rs, i+1)
			}
			break
		}
	}
	if internalCap > 0 {
		rs = upperAt(rs, internalCap)
	}
	return string(rs)
}

// upperAt upper cases the rune at i, which may expand into several runes.
func upperAt(rs []rune, i int) []rune {
	if i >= len(rs) {
		return rs
	}
	up := []rune(upper.String(string(rs[i])))
	out := make([]rune, 0, len(rs)+len(up)-1)
	out = append(out, rs[:i]...)
	out = append(out, up...)
	return append(out, rs[i+1:]...)
}

// FamilyToFront - Moves the last word of name, the family name, to the front.
//
// The whitespace that preceded the family name follows it in the result.
// Leading and trailing whitespace is removed.
// A name without internal whitespace is only trimmed.
func FamilyToFront(name string) string {
	rs := []rune(strscan.TrimWhitespace(name))
	last := -1
	for i := len(rs) - 1; i >= 0; i-- {
		if strscan.IsWhitespace(rs[i]) {
			last = i
			break
		}
	}
	if last < 0 {
		return string(rs)
	}
	family := rs[last+1:]
	start := last
	for start > 0 && strscan.IsWhitespace(rs[start-1]) {
		start--
	}
	return string(family) + string(rs[start:last+1]) + string(rs[:start])
}

// Check - Reports whether name only holds letters, whitespace and the characters .-'()
func Check(name string) bool {
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsMark(r) || strscan.IsWhitespace(r) || strings.ContainsRune(extraCharacters, r) {
			continue
		}
		return false
	}
	return true
}
