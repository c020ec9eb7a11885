// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optscan

import (
	"github.com/DavidGamba/go-optscan/help"
	"go.uber.org/zap"
)

// UsageString - Returns the usage string of the creator's options, for example "-c [ -ab ] -f file".
//
// It freezes the option table and passes every user the usage string of its own options.
func (s *Scanner) UsageString() string {
	s.notifyUsers()
	return help.Usage(s.CreatorOptions(), s.indicator, s.alternate)
}

// AllUsageString - Returns the usage string of every option, the creator's and the users'.
//
// It freezes the option table and passes every user the usage string of its own options.
func (s *Scanner) AllUsageString() string {
	s.notifyUsers()
	return help.Usage(s.Options(), s.indicator, s.alternate)
}

// Synopsis - Returns a SYNOPSIS help section for the program name,
// covering every option and followed by the given trailing arguments description.
func (s *Scanner) Synopsis(name string, trailing ...string) string {
	s.notifyUsers()
	parts := help.UsageParts(s.Options(), s.indicator, s.alternate)
	return help.Synopsis(name, append(parts, trailing...))
}

// OptionList - Returns the help section listing every option.
func (s *Scanner) OptionList() string {
	return help.OptionList(s.Options(), s.indicator, s.alternate)
}

func (s *Scanner) notifyUsers() {
	s.freeze()
	for _, u := range s.users {
		usage := help.Usage(u.options, s.indicator, s.alternate)
		Logger.Debug("usage string ready", zap.String("user", u.name), zap.String("usage", usage))
		u.user.UsageStringReady(usage)
	}
}
