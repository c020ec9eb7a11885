// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package strscan

import (
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
)

// NChars - Returns n copies of c. A negative n is treated as 0.
func NChars(n int, c rune) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(c), n)
}

// NBlanks - Returns n blanks. A negative n is treated as 0.
func NBlanks(n int) string {
	return NChars(n, ' ')
}

// LeftPadded - Returns s with blanks prepended so it is at least width characters long.
// Width is counted in user-perceived characters. s is never shortened.
func LeftPadded(s string, width int) string {
	return NBlanks(width-uniseg.GraphemeClusterCount(s)) + s
}

// RightPadded - Returns s with blanks appended so it is at least width characters long.
// Width is counted in user-perceived characters. s is never shortened.
func RightPadded(s string, width int) string {
	return s + NBlanks(width-uniseg.GraphemeClusterCount(s))
}

// ApplyRegex - Returns every match of pattern in target, each followed by its captured groups.
// The result is empty, not nil, when nothing matches.
func ApplyRegex(pattern, target string) ([][]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	matches := re.FindAllStringSubmatch(target, -1)
	if matches == nil {
		return [][]string{}, nil
	}
	return matches, nil
}
