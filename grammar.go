// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optscan

import (
	"fmt"
	"unicode"

	"github.com/DavidGamba/go-optscan/internal/option"
	"github.com/DavidGamba/go-optscan/internal/sliceiterator"
	"github.com/DavidGamba/go-optscan/strscan"
	"github.com/DavidGamba/go-optscan/text"
	"go.uber.org/zap"
)

// Characters with meaning in an option string.
const (
	requiredMarker   = '!'
	takesArgMarker   = ':'
	labelLeftMarker  = '<'
	labelRightMarker = '>'
)

func isMarker(r rune) bool {
	return r == requiredMarker || r == takesArgMarker || r == labelLeftMarker || r == labelRightMarker
}

// IsOptionChar - Reports whether c can identify an option: letters, numbers, '?' and '#'.
func IsOptionChar(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsNumber(c) || c == '?' || c == '#'
}

// parseOptions returns the options described by optionString, owned by owner.
// Nothing is added to the table, a failing string leaves it untouched.
func (s *Scanner) parseOptions(optionString, owner string) ([]*option.Option, error) {
	Logger.Debug("parsing option string", zap.String("optionString", optionString), zap.String("owner", owner))
	parsed := []*option.Option{}
	used := func(c rune) bool {
		if _, ok := s.options[c]; ok {
			return true
		}
		for _, opt := range parsed {
			if opt.Char == c {
				return true
			}
		}
		return false
	}
	fail := func(pos int, err error) error {
		return &GrammarError{OptionString: optionString, Position: pos, Err: err}
	}
	premature := func(pos int) error {
		return fail(pos, fmt.Errorf("%w"+text.ErrorPrematureEnd, ErrorPrematureEnd, optionString))
	}

	it := sliceiterator.New([]rune(optionString))
	for it.Next() {
		c := it.Value()
		allowsAlternate, required := false, false
		if c == s.alternate {
			if !it.Next() {
				return nil, premature(it.Index())
			}
			allowsAlternate = true
			c = it.Value()
		}
		if c == requiredMarker {
			if !it.Next() {
				return nil, premature(it.Index())
			}
			required = true
			c = it.Value()
		}
		if !IsOptionChar(c) {
			return nil, fail(it.Index(), fmt.Errorf("%w"+text.ErrorBadCharacter, ErrorBadCharacter, c, optionString))
		}
		if used(c) {
			return nil, fail(it.Index(), fmt.Errorf("%w"+text.ErrorDuplicateOption, ErrorDuplicateOption, c, optionString))
		}
		opt := option.New(c, owner)
		if allowsAlternate {
			opt.SetAlternate()
		}
		if required {
			opt.SetRequired()
		}
		parsed = append(parsed, opt)

		if next, ok := it.PeekNextValue(); !ok || next != takesArgMarker {
			continue
		}
		it.Next()
		opt.SetTakesArg()
		pos := it.Index() + 1
		if label, end, ok := strscan.BracketedString(optionString, pos, labelLeftMarker, labelRightMarker, strscan.DefaultQuote); ok {
			opt.SetArgLabel(label)
			pos = end
		}
		if opt.AllowsAlternate {
			if label, end, ok := strscan.BracketedString(optionString, pos, labelLeftMarker, labelRightMarker, strscan.DefaultQuote); ok {
				opt.SetAlternateArgLabel(label)
				pos = end
			}
		}
		it.Seek(pos)
	}
	return parsed, nil
}
