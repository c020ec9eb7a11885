// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - builds usage strings from option lists.
package help

import (
	"fmt"
	"strings"

	"github.com/DavidGamba/go-optscan/internal/option"
	"github.com/DavidGamba/go-optscan/strscan"
	"github.com/DavidGamba/go-optscan/text"
)

// Padding -
var Padding = 4

// Width is the column at which Synopsis wraps.
var Width = 80

type labelPair struct {
	arg, alternate string
}

// argLabels returns the label of every argument-taking option in list.
// Missing or blank labels become text.DefaultArgLabel followed by a counter
// shared by required and optional options, in that order.
func argLabels(list []*option.Option) map[rune]labelPair {
	labels := map[rune]labelPair{}
	counter := 1
	next := func(label string) string {
		if strscan.TrimWhitespace(label) != "" {
			return label
		}
		label = fmt.Sprintf("%s%d", text.DefaultArgLabel, counter)
		counter++
		return label
	}
	for _, required := range []bool{true, false} {
		for _, opt := range list {
			if !opt.TakesArg || opt.IsRequired != required {
				continue
			}
			pair := labelPair{arg: next(opt.ArgLabel)}
			if opt.AllowsAlternate {
				pair.alternate = next(opt.AlternateArgLabel)
			}
			labels[opt.Char] = pair
		}
	}
	return labels
}

// UsageParts - Returns the groups of a usage string in display order.
//
// Options without arguments are grouped behind a single indicator:
// required first, then optional ones in brackets, then the same two groups for
// options that allow the alternate indicator.
// Each option taking an argument follows on its own, required ones first.
//
// The list is expected to be sorted.
func UsageParts(list []*option.Option, indicator, alternate rune) []string {
	var req, opt, reqAlt, optAlt string
	argReq := []*option.Option{}
	argOpt := []*option.Option{}
	for _, o := range list {
		c := string(o.Char)
		switch {
		case o.TakesArg && o.IsRequired:
			argReq = append(argReq, o)
		case o.TakesArg:
			argOpt = append(argOpt, o)
		case o.AllowsAlternate && o.IsRequired:
			reqAlt += c
		case o.AllowsAlternate:
			optAlt += c
		case o.IsRequired:
			req += c
		default:
			opt += c
		}
	}
	both := fmt.Sprintf("%c/%c", alternate, indicator)
	parts := []string{}
	if req != "" {
		parts = append(parts, fmt.Sprintf("%c%s", indicator, req))
	}
	if opt != "" {
		parts = append(parts, fmt.Sprintf("[ %c%s ]", indicator, opt))
	}
	if reqAlt != "" {
		parts = append(parts, both+reqAlt)
	}
	if optAlt != "" {
		parts = append(parts, "[ "+both+optAlt+" ]")
	}
	labels := argLabels(list)
	argPart := func(o *option.Option) string {
		l := labels[o.Char]
		s := fmt.Sprintf("%c%c %s", indicator, o.Char, l.arg)
		if o.AllowsAlternate {
			s += fmt.Sprintf(" | %c%c %s", alternate, o.Char, l.alternate)
		}
		return s
	}
	for _, o := range argReq {
		parts = append(parts, argPart(o))
	}
	for _, o := range argOpt {
		parts = append(parts, "[ "+argPart(o)+" ]")
	}
	return parts
}

// Usage - Returns the usage string for list, see UsageParts.
func Usage(list []*option.Option, indicator, alternate rune) string {
	return strings.Join(UsageParts(list, indicator, alternate), " ")
}

// Synopsis - Return a synopsis section for the given program name and usage parts.
// Lines are wrapped at Width, continuation lines are aligned after the name.
func Synopsis(name string, parts []string) string {
	scriptName := strings.Repeat(" ", Padding) + name
	var out string
	line := scriptName
	for _, syn := range parts {
		if len(line)+len(syn) > Width {
			out += line + "\n"
			line = fmt.Sprintf("%s %s", strings.Repeat(" ", len(scriptName)), syn)
		} else {
			line += fmt.Sprintf(" %s", syn)
		}
	}
	out += line
	return fmt.Sprintf("%s:\n%s\n", text.HelpSynopsisHeader, out)
}

// OptionList - Return a formatted list of options, required ones first.
// Options owned by a user are annotated with the user name.
func OptionList(list []*option.Option, indicator, alternate rune) string {
	labels := argLabels(list)
	entry := func(o *option.Option) string {
		l := labels[o.Char]
		s := fmt.Sprintf("%c%c", indicator, o.Char)
		if o.TakesArg {
			s += " <" + l.arg + ">"
		}
		if o.AllowsAlternate {
			if o.TakesArg {
				s += fmt.Sprintf(" | %c%c <%s>", alternate, o.Char, l.alternate)
			} else {
				s = fmt.Sprintf("%c/%s", alternate, s)
			}
		}
		return s
	}
	factor := 0
	normalOptions := []*option.Option{}
	requiredOptions := []*option.Option{}
	for _, o := range list {
		if l := len([]rune(entry(o))); l > factor {
			factor = l
		}
		if o.IsRequired {
			requiredOptions = append(requiredOptions, o)
		} else {
			normalOptions = append(normalOptions, o)
		}
	}
	helpString := func(o *option.Option) string {
		txt := strscan.NBlanks(Padding) + entry(o)
		if o.Owner != "" {
			txt = strscan.RightPadded(txt, Padding+factor) + strscan.NBlanks(Padding) + "(" + o.Owner + ")"
		}
		return txt + "\n"
	}
	out := ""
	if len(requiredOptions) > 0 {
		out += fmt.Sprintf("%s:\n", text.HelpRequiredOptionsHeader)
		for _, o := range requiredOptions {
			out += helpString(o)
		}
	}
	if len(normalOptions) > 0 {
		if out != "" {
			out += "\n"
		}
		out += fmt.Sprintf("%s:\n", text.HelpOptionsHeader)
		for _, o := range normalOptions {
			out += helpString(o)
		}
	}
	return out
}
