// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package strscan

// Bracketed - BracketedString from the start of source using the default brackets and quote.
func Bracketed(source string) (string, int, bool) {
	return BracketedString(source, 0, DefaultLeftBracket, DefaultRightBracket, DefaultQuote)
}

// BracketedString - Extracts the bracketed text found after optional whitespace at start.
//
// Nested left and right brackets are counted.
// Quoted spans are skipped as a unit with QuotedString, brackets inside them are not counted,
// and they are returned verbatim with their escapes unresolved.
// Escape has no meaning outside quoted spans.
//
// It returns the text between the outer brackets and the position after the closing bracket.
func BracketedString(source string, start int, left, right, quote rune) (string, int, bool) {
	return bracketed([]rune(source), start, left, right, quote)
}

func bracketed(rs []rune, start int, left, right, quote rune) (string, int, bool) {
	n := len(rs)
	if start < 0 || start >= n || n < 2 {
		return "", 0, false
	}
	pos := start
	for pos < n-1 && IsWhitespace(rs[pos]) {
		pos++
	}
	if rs[pos] != left {
		return "", 0, false
	}
	first := pos + 1
	end := first
	depth := 1
	for end < n && depth > 0 {
		switch rs[end] {
		case left:
			depth++
		case right:
			depth--
		case quote:
			_, after, ok := quoted(rs, end, quote)
			if !ok {
				return "", 0, false
			}
			end = after - 1
		}
		end++
	}
	if depth > 0 {
		return "", 0, false
	}
	return string(rs[first : end-1]), end, true
}
