// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optscan

import (
	"errors"
	"unicode/utf8"

	"github.com/DavidGamba/go-optscan/internal/option"
	"src.elv.sh/pkg/diag"
)

// ErrorGrammar - Indicates that an option string could not be parsed or registered.
var ErrorGrammar = errors.New("option string error")

// ErrorScan - Indicates that the command line arguments could not be scanned.
var ErrorScan = errors.New("option scan error")

// Grammar errors
var (
	// ErrorPrematureEnd - The option string ends right after a marker.
	ErrorPrematureEnd = errors.New("")
	// ErrorBadCharacter - The option character is not allowed.
	ErrorBadCharacter = errors.New("")
	// ErrorDuplicateOption - The option character is already used by the creator or a user.
	ErrorDuplicateOption = errors.New("")
	// ErrorLateUser - A user was added after the option table was frozen.
	ErrorLateUser = errors.New("")
	// ErrorUserName - A user was added with an empty or already registered name.
	ErrorUserName = errors.New("")
	// ErrorIndicators - The indicators are equal or clash with the option string markers.
	ErrorIndicators = errors.New("")
)

// Scan errors
var (
	// ErrorUnknownOption - The option character is not in the table.
	ErrorUnknownOption = errors.New("")
	// ErrorAlternateNotAllowed - The alternate indicator was used on an option that does not allow it.
	ErrorAlternateNotAllowed = option.ErrorAlternateNotAllowed
	// ErrorSetTwice - The option was already set with the same indicator.
	ErrorSetTwice = option.ErrorSetTwice
	// ErrorNotFirst - An argument-taking option follows other options in the same argument.
	ErrorNotFirst = errors.New("")
	// ErrorMissingArgument - The argument of an option is missing.
	ErrorMissingArgument = errors.New("")
	// ErrorMissingRequiredOption - A required option was not set.
	ErrorMissingRequiredOption = option.ErrorMissingRequiredOption
)

// ErrorArgumentQuery - An option argument was queried on an option that has none.
var ErrorArgumentQuery = option.ErrorArgumentQuery

// GrammarError - Error parsing an option string.
// It matches ErrorGrammar and the specific error with errors.Is.
type GrammarError struct {
	OptionString string
	Position     int // Code point offset of the failure, -1 when not tied to a position
	Err          error
}

func (e *GrammarError) Error() string {
	return e.Err.Error()
}

func (e *GrammarError) Unwrap() []error {
	return []error{ErrorGrammar, e.Err}
}

// Show - Renders the option string with the failing position marked.
// It returns an empty string when the error has no position.
func (e *GrammarError) Show() string {
	if e.Position < 0 {
		return ""
	}
	offset := 0
	for i := 0; i < e.Position && offset < len(e.OptionString); i++ {
		_, size := utf8.DecodeRuneInString(e.OptionString[offset:])
		offset += size
	}
	return diag.NewContext("option string", e.OptionString, diag.PointRanging(offset)).ShowCompact("")
}

// ScanError - Error scanning command line arguments.
// It matches ErrorScan and the specific error with errors.Is.
type ScanError struct {
	Option rune // Option character involved
	Index  int  // Index of the argument being scanned, -1 for the final required check
	Err    error
}

func (e *ScanError) Error() string {
	return e.Err.Error()
}

func (e *ScanError) Unwrap() []error {
	return []error{ErrorScan, e.Err}
}
