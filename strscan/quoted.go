// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package strscan

import "strings"

// Quoted - QuotedString from the start of source using DefaultQuote.
func Quoted(source string) (string, int, bool) {
	return QuotedString(source, 0, DefaultQuote)
}

// QuotedString - Extracts the quote delimited text found after optional whitespace at start.
//
// Source is read as:
//
//	<whitespace><quote><text><quote><tail>
//
// It returns text and the position of the first character of tail.
// Inside text an Escape before another Escape or before quote is removed and
// the escaped character taken literally. An Escape before anything else is kept.
//
// It fails when start is outside the source, the source is shorter than two
// characters, the first non-whitespace character is not quote, the closing
// quote is missing or the source ends on an Escape.
func QuotedString(source string, start int, quote rune) (string, int, bool) {
	return quoted([]rune(source), start, quote)
}

func quoted(rs []rune, start int, quote rune) (string, int, bool) {
	n := len(rs)
	if start < 0 || start >= n || n < 2 {
		return "", 0, false
	}
	pos := start
	// Leave room for the closing quote.
	for pos < n-1 && IsWhitespace(rs[pos]) {
		pos++
	}
	if rs[pos] != quote {
		return "", 0, false
	}
	left := pos + 1
	right := left
	for right < n && rs[right] != quote {
		if rs[right] == Escape {
			right++
			if right == n {
				return "", 0, false
			}
		}
		right++
	}
	if right >= n {
		return "", 0, false
	}
	return unescape(rs[left:right], quote), right + 1, true
}

// unescape resolves escapes left to right so a doubled Escape yields one literal Escape.
func unescape(rs []rune, quote rune) string {
	var b strings.Builder
	for i := 0; i < len(rs); i++ {
		if rs[i] == Escape && i+1 < len(rs) && (rs[i+1] == Escape || rs[i+1] == quote) {
			i++
		}
		b.WriteRune(rs[i])
	}
	return b.String()
}

// UnquotedIndex - Returns the position of the first target in source that is not inside a quoted span.
//
// Every quote character opens a quoted span, so a target equal to quote is never found.
// It fails when target is not found or a quoted span is not terminated.
func UnquotedIndex(source string, target, quote rune) (int, bool) {
	rs := []rune(source)
	pos := 0
	for pos < len(rs) {
		c := rs[pos]
		if c == quote {
			_, end, ok := quoted(rs, pos, quote)
			if !ok {
				return 0, false
			}
			pos = end
			continue
		}
		if c == target {
			return pos, true
		}
		pos++
	}
	return 0, false
}
