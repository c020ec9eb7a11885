// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
//
// The variables are exported so they can be replaced for localization.
package text

// ErrorPrematureEnd holds the text for an option string that ends after a marker.
// It has a string placeholder '%s' for the option string.
var ErrorPrematureEnd = "option string \"%s\" ended prematurely"

// ErrorBadCharacter holds the text for a disallowed option character.
// It has a rune placeholder '%c' for the character and a string placeholder '%s' for the option string.
var ErrorBadCharacter = "bad character '%c' in option string \"%s\""

// ErrorDuplicateOption holds the text for an option character used twice.
// It has a rune placeholder '%c' for the character and a string placeholder '%s' for the option string.
var ErrorDuplicateOption = "duplicate option character '%c' in option string \"%s\""

// ErrorLateUser holds the text for a user added after the option table was frozen.
// It has a string placeholder '%s' for the user's option string.
var ErrorLateUser = "too-late attempt to add optionUser with option string \"%s\""

// ErrorUserName holds the text for a user added with an empty or already registered name.
// It has a string placeholder '%s' for the name.
var ErrorUserName = "invalid or duplicate optionUser name \"%s\""

// ErrorIndicators holds the text for indicators that are equal or clash with option string markers.
// It has a rune placeholder '%c' for each indicator.
var ErrorIndicators = "option indicators '%c' and '%c' must differ and cannot be '!', ':', '<' or '>'"

// ErrorUnknownOption holds the text for an option character not in the table.
var ErrorUnknownOption = "option '%c' not recognized"

// ErrorAlternateNotAllowed holds the text for the alternate indicator used on an option that forbids it.
// It has a rune placeholder '%c' for the indicator and another for the option.
var ErrorAlternateNotAllowed = "'%c' used with option '%c'"

// ErrorSetTwice holds the text for an option set twice with the same indicator.
var ErrorSetTwice = "option '%c' set twice"

// ErrorNotFirst holds the text for an argument-taking option packed behind other options.
var ErrorNotFirst = "option '%c' not first in argument"

// ErrorMissingArgument holds the text for missing argument error.
// It has a rune placeholder '%c' for the option missing the argument.
var ErrorMissingArgument = "missing argument for option '%c'"

// ErrorMissingRequiredOption holds the text for missing required option error.
// It has a rune placeholder '%c' for the missing option.
var ErrorMissingRequiredOption = "required option '%c' not set"

// ErrorArgOnNonArgOption holds the text for querying the argument of an option without one.
var ErrorArgOnNonArgOption = "option argument queried on non-arg option '%c'"

// ErrorArgOnUnsetOption holds the text for querying the argument of an option that was not set.
var ErrorArgOnUnsetOption = "option argument queried on unset option '%c'"

// ErrorAlternateArgOnNonArgOption holds the text for querying the alternate argument of an option without one.
var ErrorAlternateArgOnNonArgOption = "alternate option argument queried on non-alternate-arg option '%c'"

// ErrorAlternateArgOnUnsetOption holds the text for querying the alternate argument of an option not set with the alternate indicator.
var ErrorAlternateArgOnUnsetOption = "alternate option argument queried on unset option '%c'"

// DefaultArgLabel is the prefix of the labels synthesized for unlabelled option arguments.
var DefaultArgLabel = "optionitem"

// HelpSynopsisHeader -
var HelpSynopsisHeader = "SYNOPSIS"

// HelpOptionsHeader -
var HelpOptionsHeader = "OPTIONS"

// HelpRequiredOptionsHeader -
var HelpRequiredOptionsHeader = "REQUIRED PARAMETERS"

// MessageOnInterrupt -
var MessageOnInterrupt = "interrupt signal received"
