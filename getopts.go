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

	"github.com/DavidGamba/go-optscan/internal/sliceiterator"
	"github.com/DavidGamba/go-optscan/text"
	"go.uber.org/zap"
)

// GetOpts - Sets the options found at the start of args and returns the index of the first argument not used.
//
// args[0] is the program name and is skipped.
// Scanning stops at the first argument that is shorter than two characters or
// does not start with an indicator, or right after the end of options marker,
// the primary indicator doubled ("--").
//
// Several options can share one argument ("-ab"), but an option taking an
// argument must come first in its argument. Its value is the rest of the
// argument or, when that is empty, the following argument ("-fvalue", "-f value").
//
// After scanning every required option must be set.
// Users are then notified with OptionsReady.
//
// On error the returned index is the argument being scanned, or len(args) for
// a missing required option. Options set before the error stay set.
// Calling GetOpts again adds to the options already set.
func (s *Scanner) GetOpts(args []string) (int, error) {
	s.freeze()
	end := string([]rune{s.indicator, s.indicator})
	it := sliceiterator.New(args)
	it.Next() // program name
	for it.Next() {
		arg := it.Value()
		rs := []rune(arg)
		if len(rs) < 2 || (rs[0] != s.indicator && rs[0] != s.alternate) {
			break
		}
		if arg == end {
			it.Next()
			break
		}
		if err := s.scanArgument(it, rs); err != nil {
			Logger.Debug("scan failed", zap.Int("index", it.Index()), zap.Error(err))
			return it.Index(), err
		}
	}
	idx := it.Index()

	for _, opt := range s.Options() {
		if err := opt.CheckRequired(); err != nil {
			return len(args), &ScanError{Option: opt.Char, Index: -1, Err: err}
		}
	}
	for _, u := range s.users {
		Logger.Debug("options ready", zap.String("user", u.name))
		u.user.OptionsReady()
	}
	Logger.Debug("scan complete", zap.Int("index", idx))
	return idx, nil
}

// scanArgument sets the options packed in one argument, rs, and takes the
// option value from the next argument when needed.
func (s *Scanner) scanArgument(it *sliceiterator.Iterator[string], rs []rune) error {
	viaAlternate := rs[0] == s.alternate
	idx := it.Index()
	for pos := 1; pos < len(rs); pos++ {
		c := rs[pos]
		opt, ok := s.options[c]
		if !ok {
			return &ScanError{Option: c, Index: idx, Err: fmt.Errorf("%w"+text.ErrorUnknownOption, ErrorUnknownOption, c)}
		}
		if err := opt.SetCalled(viaAlternate, s.alternate); err != nil {
			return &ScanError{Option: c, Index: idx, Err: err}
		}
		if !opt.TakesArg {
			continue
		}
		if pos > 1 {
			return &ScanError{Option: c, Index: idx, Err: fmt.Errorf("%w"+text.ErrorNotFirst, ErrorNotFirst, c)}
		}
		value := string(rs[pos+1:])
		if value == "" {
			next, ok := it.PeekNextValue()
			if !ok {
				return &ScanError{Option: c, Index: idx, Err: fmt.Errorf("%w"+text.ErrorMissingArgument, ErrorMissingArgument, c)}
			}
			it.Next()
			value = next
		}
		opt.Save(value, viaAlternate)
		return nil
	}
	return nil
}
