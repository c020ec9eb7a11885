// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package optscan - Unix style single character command line option scanner.

An option string describes the accepted options, one character each:

	+!b:<file><alternate file>

	+        the option may also be set with the alternate indicator, "+b".
	!        the option must be set.
	b        the option character, the only compulsory part.
	:        the option takes an argument, "-b file" or "-bfile".
	<file>   name of the argument, used in the usage string.
	<...>    name of the alternate argument, read only when "+" is given.

The parts must appear in that order.

Typical use:

	scanner, err := optscan.New("ab:c")
	if err != nil { ... }
	fmt.Fprintf(os.Stderr, "Usage: prog %s file...\n", scanner.UsageString())
	idx, err := scanner.GetOpts(os.Args)
	if err != nil { ... }
	for _, opt := range scanner.Options() {
		if opt.IsSet { ... }
	}
	files := os.Args[idx:]

Options may be delegated to other modules that implement OptionUser, see AddUser.
*/
package optscan

import (
	"fmt"

	"github.com/DavidGamba/go-optscan/internal/option"
	"github.com/DavidGamba/go-optscan/text"
	"go.uber.org/zap"
)

// Logger instance set to a no-op logger by default.
// Enable debug logging by replacing it: `optscan.Logger = zap.NewExample()`.
var Logger = zap.NewNop()

// Default indicators.
const (
	DefaultIndicator = '-'
	DefaultAlternate = '+'
)

// Option - descriptor and scan state of one option character.
type Option = option.Option

type tableState int

// The table starts open and is frozen by the first usage or scan request.
// Users can only be added while it is open.
const (
	tableOpen tableState = iota
	tableFrozen
)

// Scanner - option table plus the indicators used to read it.
//
// A Scanner is not safe for concurrent use.
type Scanner struct {
	indicator    rune
	alternate    rune
	optionString string

	options map[rune]*option.Option // arena, keyed by option character
	users   []*userEntry            // in registration order
	state   tableState
}

// New - Returns a scanner for the creator's option string using the default indicators.
func New(optionString string) (*Scanner, error) {
	return NewWithIndicators(optionString, DefaultIndicator, DefaultAlternate)
}

// NewWithIndicators - Returns a scanner for the creator's option string.
// The alternate indicator also marks options that allow it in option strings.
func NewWithIndicators(optionString string, indicator, alternate rune) (*Scanner, error) {
	if indicator == alternate || isMarker(indicator) || isMarker(alternate) {
		return nil, &GrammarError{
			OptionString: optionString,
			Position:     -1,
			Err:          fmt.Errorf("%w"+text.ErrorIndicators, ErrorIndicators, indicator, alternate),
		}
	}
	s := &Scanner{
		indicator:    indicator,
		alternate:    alternate,
		optionString: optionString,
		options:      map[rune]*option.Option{},
	}
	parsed, err := s.parseOptions(optionString, "")
	if err != nil {
		return nil, err
	}
	s.commit(parsed)
	return s, nil
}

// Indicator - Returns the primary option indicator.
func (s *Scanner) Indicator() rune { return s.indicator }

// Alternate - Returns the alternate option indicator.
func (s *Scanner) Alternate() rune { return s.alternate }

// OptionString - Returns the creator's option string.
func (s *Scanner) OptionString() string { return s.optionString }

// Frozen - Tells if the option table no longer accepts users.
func (s *Scanner) Frozen() bool { return s.state == tableFrozen }

// Option - Returns the option for the given character.
func (s *Scanner) Option(c rune) (*Option, bool) {
	opt, ok := s.options[c]
	return opt, ok
}

// Options - Returns every option, the creator's and the users', in listing order.
func (s *Scanner) Options() []*Option {
	list := make([]*option.Option, 0, len(s.options))
	for _, opt := range s.options {
		list = append(list, opt)
	}
	option.Sort(list)
	return list
}

// CreatorOptions - Returns the options of the creator in listing order.
func (s *Scanner) CreatorOptions() []*Option {
	return s.ownedBy("")
}

func (s *Scanner) ownedBy(owner string) []*option.Option {
	list := []*option.Option{}
	for _, opt := range s.Options() {
		if opt.Owner == owner {
			list = append(list, opt)
		}
	}
	return list
}

func (s *Scanner) commit(parsed []*option.Option) {
	for _, opt := range parsed {
		s.options[opt.Char] = opt
	}
}

// freeze closes the table to new users and hands each user its options.
func (s *Scanner) freeze() {
	if s.state == tableFrozen {
		return
	}
	s.state = tableFrozen
	for _, u := range s.users {
		u.options = s.ownedBy(u.name)
		u.user.ReceiveOptions(u.options)
	}
	Logger.Debug("option table frozen", zap.Int("options", len(s.options)), zap.Int("users", len(s.users)))
}
