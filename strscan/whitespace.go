// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package strscan - scans delimited substrings out of a larger string.

Every position taken or returned by this package is an index into the
source's code points ([]rune(source)), never a byte offset.
Multi code point grapheme clusters count as their constituent code points.

Failures are reported through a boolean, the scanners never return errors.
*/
package strscan

import "unicode"

// Escape is the escape character recognized inside quoted spans.
const Escape = '\\'

// Defaults used by Quoted and Bracketed.
const (
	DefaultQuote        = '"'
	DefaultLeftBracket  = '('
	DefaultRightBracket = ')'
)

// IsWhitespace - Reports whether r is a tab or a space separator (Unicode category Zs).
// Line breaks are not whitespace.
func IsWhitespace(r rune) bool {
	return r == '\t' || unicode.Is(unicode.Zs, r)
}

// SkipWhitespace - Returns the position of the first non-whitespace character at or after start,
// or the length of source if there is none.
// It fails only if start is outside the source.
func SkipWhitespace(source string, start int) (int, bool) {
	return skipWhitespace([]rune(source), start)
}

func skipWhitespace(rs []rune, start int) (int, bool) {
	if start < 0 || start > len(rs) {
		return 0, false
	}
	pos := start
	for pos < len(rs) && IsWhitespace(rs[pos]) {
		pos++
	}
	return pos, true
}

// TrimWhitespace - Returns source without leading and trailing whitespace.
func TrimWhitespace(source string) string {
	rs := []rune(source)
	left, _ := skipWhitespace(rs, 0)
	right := len(rs)
	for right > left && IsWhitespace(rs[right-1]) {
		right--
	}
	return string(rs[left:right])
}
