// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option struct and methods.
package option

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/DavidGamba/go-optscan/text"
	"go.uber.org/zap"
)

// Logger instance set to a no-op logger by default.
// Enable debug logging by replacing it: `option.Logger = zap.NewExample()`.
var Logger = zap.NewNop()

// ErrorMissingRequiredOption - A required option was not set with either indicator.
var ErrorMissingRequiredOption = errors.New("")

// ErrorSetTwice - The option was already set with the same indicator.
var ErrorSetTwice = errors.New("")

// ErrorAlternateNotAllowed - The alternate indicator was used on an option that does not allow it.
var ErrorAlternateNotAllowed = errors.New("")

// ErrorArgumentQuery - The argument queried does not exist.
var ErrorArgumentQuery = errors.New("")

// Option - descriptor for one option character.
//
// The descriptor fields are fixed when the option string is parsed.
// The scan fields change at most once each, from unset to set.
type Option struct {
	Char  rune   // Option character, unique within a scanner
	Owner string // Name of the owning user, empty for the creator

	IsRequired        bool // Must be set, with either indicator, by the end of a scan
	AllowsAlternate   bool // May be set with the alternate indicator
	TakesArg          bool // Consumes an argument
	TakesAlternateArg bool // Consumes an argument when set with the alternate indicator

	ArgLabel          string // Optional argument name used for help
	AlternateArgLabel string // Optional alternate argument name used for help

	IsSet             bool   // Set with the primary indicator
	IsSetViaAlternate bool   // Set with the alternate indicator
	Value             string // Argument given with the primary indicator
	AlternateValue    string // Argument given with the alternate indicator
}

// New - Returns a new option object
func New(c rune, owner string) *Option {
	return &Option{Char: c, Owner: owner}
}

// SetRequired - Marks the option as required.
func (opt *Option) SetRequired() *Option {
	opt.IsRequired = true
	return opt
}

// SetAlternate - Allows setting the option with the alternate indicator.
func (opt *Option) SetAlternate() *Option {
	opt.AllowsAlternate = true
	opt.TakesAlternateArg = opt.TakesArg
	return opt
}

// SetTakesArg - Marks the option as taking an argument.
// An option that allows the alternate indicator takes an argument with it as well.
func (opt *Option) SetTakesArg() *Option {
	opt.TakesArg = true
	opt.TakesAlternateArg = opt.AllowsAlternate
	return opt
}

// SetArgLabel - Sets the argument name used for help.
func (opt *Option) SetArgLabel(s string) *Option {
	opt.ArgLabel = s
	return opt
}

// SetAlternateArgLabel - Sets the alternate argument name used for help.
func (opt *Option) SetAlternateArgLabel(s string) *Option {
	opt.AlternateArgLabel = s
	return opt
}

// SetCalled - Marks the option as set with the primary indicator, or the
// alternate one if viaAlternate is true.
// alternate is the alternate indicator, used in the error message.
func (opt *Option) SetCalled(viaAlternate bool, alternate rune) error {
	if viaAlternate {
		if !opt.AllowsAlternate {
			return fmt.Errorf("%w"+text.ErrorAlternateNotAllowed, ErrorAlternateNotAllowed, alternate, opt.Char)
		}
		if opt.IsSetViaAlternate {
			return fmt.Errorf("%w"+text.ErrorSetTwice, ErrorSetTwice, opt.Char)
		}
		opt.IsSetViaAlternate = true
		Logger.Debug("option set", zap.String("option", string(opt.Char)), zap.Bool("alternate", true))
		return nil
	}
	if opt.IsSet {
		return fmt.Errorf("%w"+text.ErrorSetTwice, ErrorSetTwice, opt.Char)
	}
	opt.IsSet = true
	Logger.Debug("option set", zap.String("option", string(opt.Char)), zap.Bool("alternate", false))
	return nil
}

// Save - Stores the argument given with the indicator that set the option.
func (opt *Option) Save(argument string, viaAlternate bool) {
	if viaAlternate {
		opt.AlternateValue = argument
		return
	}
	opt.Value = argument
}

// Satisfied - Tells if the option was set with an indicator it allows.
func (opt *Option) Satisfied() bool {
	return opt.IsSet || (opt.AllowsAlternate && opt.IsSetViaAlternate)
}

// CheckRequired - Returns error if the option is required and was not set.
func (opt *Option) CheckRequired() error {
	if opt.IsRequired && !opt.Satisfied() {
		return fmt.Errorf("%w"+text.ErrorMissingRequiredOption, ErrorMissingRequiredOption, opt.Char)
	}
	return nil
}

// Arg - Returns the argument given with the primary indicator.
func (opt *Option) Arg() (string, error) {
	if !opt.TakesArg {
		return "", fmt.Errorf("%w"+text.ErrorArgOnNonArgOption, ErrorArgumentQuery, opt.Char)
	}
	if !opt.IsSet {
		return "", fmt.Errorf("%w"+text.ErrorArgOnUnsetOption, ErrorArgumentQuery, opt.Char)
	}
	return opt.Value, nil
}

// AlternateArg - Returns the argument given with the alternate indicator.
func (opt *Option) AlternateArg() (string, error) {
	if !opt.TakesAlternateArg {
		return "", fmt.Errorf("%w"+text.ErrorAlternateArgOnNonArgOption, ErrorArgumentQuery, opt.Char)
	}
	if !opt.IsSetViaAlternate {
		return "", fmt.Errorf("%w"+text.ErrorAlternateArgOnUnsetOption, ErrorArgumentQuery, opt.Char)
	}
	return opt.AlternateValue, nil
}

// String - One line description of the option and its scan state.
func (opt *Option) String() string {
	yesno := func(b bool) string {
		if b {
			return "Y"
		}
		return "N"
	}
	label := func(s string) string {
		if s == "" {
			return "[none]"
		}
		return s
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Option '%c' req? %s set? %s alt OK? %s set with alt? %s",
		opt.Char, yesno(opt.IsRequired), yesno(opt.IsSet), yesno(opt.AllowsAlternate), yesno(opt.IsSetViaAlternate))
	fmt.Fprintf(&b, "  takes arg? %s", yesno(opt.TakesArg))
	if opt.TakesArg {
		fmt.Fprintf(&b, " arg desc:%s", label(opt.ArgLabel))
		if opt.IsSet {
			fmt.Fprintf(&b, " value:%s", opt.Value)
		}
	}
	fmt.Fprintf(&b, "  takes alt arg? %s", yesno(opt.TakesAlternateArg))
	if opt.TakesAlternateArg {
		fmt.Fprintf(&b, " arg desc:%s", label(opt.AlternateArgLabel))
		if opt.IsSetViaAlternate {
			fmt.Fprintf(&b, " value:%s", opt.AlternateValue)
		}
	}
	return b.String()
}

// Character classes in listing order.
const (
	classSpecial = iota
	classLetter
	classDigit
	classOtherNumber
)

func class(r rune) int {
	switch {
	case unicode.IsLetter(r):
		return classLetter
	case unicode.IsDigit(r):
		return classDigit
	case unicode.IsNumber(r):
		return classOtherNumber
	default:
		return classSpecial
	}
}

// Less - Listing order of option characters: non-alphanumerics, then letters, then digits.
//
// Letters of the same case compare by code point.
// Letters of different case compare ignoring case and the lower case one goes first on a tie.
// Numbers that are not decimal digits go last.
func Less(one, two rune) bool {
	if one == two {
		return false
	}
	c1, c2 := class(one), class(two)
	if c1 == classLetter && c2 == classLetter {
		if (unicode.IsLower(one) && unicode.IsLower(two)) || (unicode.IsUpper(one) && unicode.IsUpper(two)) {
			return one < two
		}
		l1, l2 := unicode.ToLower(one), unicode.ToLower(two)
		if l1 == l2 {
			return unicode.IsLower(one)
		}
		return l1 < l2
	}
	if c1 != c2 {
		return c1 < c2
	}
	return one < two
}

// Sort Interface
func Sort(list []*Option) {
	sort.Slice(list, func(i, j int) bool {
		return Less(list[i].Char, list[j].Char)
	})
}
