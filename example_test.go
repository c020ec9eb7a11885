// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optscan_test

import (
	"errors"
	"fmt"

	"github.com/DavidGamba/go-optscan"
)

func Example() {
	scanner, err := optscan.New("vf:<file>+!o:<output><append to>")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Usage: prog " + scanner.UsageString() + " name...")

	args := []string{"prog", "-v", "+o", "log.txt", "-finput.txt", "alice", "bob"}
	idx, err := scanner.GetOpts(args)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, opt := range scanner.Options() {
		if !opt.IsSet && !opt.IsSetViaAlternate {
			continue
		}
		fmt.Printf("%c:", opt.Char)
		if v, err := opt.Arg(); err == nil {
			fmt.Printf(" %q", v)
		}
		if v, err := opt.AlternateArg(); err == nil {
			fmt.Printf(" alternate %q", v)
		}
		fmt.Println()
	}
	fmt.Println("names:", args[idx:])

	// Output:
	// Usage: prog [ -v ] -o output | +o append to [ -f file ] name...
	// f: "input.txt"
	// o: alternate "log.txt"
	// v:
	// names: [alice bob]
}

func ExampleScanner_GetOpts_error() {
	scanner, _ := optscan.New("a:b")
	_, err := scanner.GetOpts([]string{"prog", "-ba", "x"})
	fmt.Println(err)
	fmt.Println(errors.Is(err, optscan.ErrorScan), errors.Is(err, optscan.ErrorNotFirst))

	// Output:
	// option 'a' not first in argument
	// true true
}

type verbosity struct {
	level   int
	options []*optscan.Option
}

func (v *verbosity) ReceiveOptions(options []*optscan.Option) { v.options = options }

func (v *verbosity) UsageStringReady(usage string) { fmt.Println("verbosity usage:", usage) }

func (v *verbosity) OptionsReady() {
	for _, opt := range v.options {
		switch {
		case opt.Char == 'q' && opt.IsSet:
			v.level--
		case opt.Char == 'V' && opt.IsSet:
			v.level++
		}
	}
}

func ExampleScanner_AddUser() {
	scanner, _ := optscan.New("h")
	v := &verbosity{}
	if err := scanner.AddUser("verbosity", v, "qV"); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("usage:", scanner.AllUsageString())
	_, _ = scanner.GetOpts([]string{"prog", "-V"})
	fmt.Println("level:", v.level)

	// Output:
	// verbosity usage: [ -qV ]
	// usage: [ -hqV ]
	// level: 1
}
