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

	"github.com/DavidGamba/go-optscan/internal/option"
	"github.com/DavidGamba/go-optscan/text"
	"go.uber.org/zap"
)

// OptionUser - A module that owns some of the options read by a Scanner.
//
// The scanner calls its methods synchronously, in registration order:
//
//   - ReceiveOptions when the table is frozen, with the options the user owns in listing order.
//     The options are not set until OptionsReady is called.
//   - UsageStringReady from UsageString and AllUsageString, with the usage string of the user's options.
//   - OptionsReady after GetOpts completes successfully.
type OptionUser interface {
	ReceiveOptions(options []*Option)
	UsageStringReady(usage string)
	OptionsReady()
}

type userEntry struct {
	name         string
	user         OptionUser
	optionString string
	options      []*option.Option
}

// AddUser - Registers user as the owner of the options in optionString.
//
// Option characters must be unique across the creator and all users.
// Users can only be added before the first call to UsageString, AllUsageString or GetOpts.
// On error the user is not registered and the table is unchanged.
func (s *Scanner) AddUser(name string, user OptionUser, optionString string) error {
	if s.state == tableFrozen {
		return &GrammarError{
			OptionString: optionString,
			Position:     -1,
			Err:          fmt.Errorf("%w"+text.ErrorLateUser, ErrorLateUser, optionString),
		}
	}
	if name == "" || s.user(name) != nil {
		return &GrammarError{
			OptionString: optionString,
			Position:     -1,
			Err:          fmt.Errorf("%w"+text.ErrorUserName, ErrorUserName, name),
		}
	}
	parsed, err := s.parseOptions(optionString, name)
	if err != nil {
		return err
	}
	s.commit(parsed)
	s.users = append(s.users, &userEntry{name: name, user: user, optionString: optionString})
	Logger.Debug("option user added", zap.String("user", name), zap.Int("options", len(parsed)))
	return nil
}

func (s *Scanner) user(name string) *userEntry {
	for _, u := range s.users {
		if u.name == name {
			return u
		}
	}
	return nil
}

// UserOptions - Returns the options owned by the named user in listing order.
func (s *Scanner) UserOptions(name string) []*Option {
	return s.ownedBy(name)
}

// Users - Returns the registered user names in registration order.
func (s *Scanner) Users() []string {
	names := make([]string, 0, len(s.users))
	for _, u := range s.users {
		names = append(names, u.name)
	}
	return names
}
