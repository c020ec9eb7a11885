// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/DavidGamba/go-optscan"
	"github.com/DavidGamba/go-optscan/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type scanOptions struct {
	users   []string
	verbose bool
}

func newScanCommand(g *globalOptions) *cobra.Command {
	o := &scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan [optionstring] -- [args...]",
		Short: "Scan a command line with an option string",
		Long: `Scan a command line with an option string and report the options found.

The arguments after "--" are scanned as if they followed the program name.
The option string defaults to the one in the active profile.`,
		Example: `  optscan scan "ab:c" -- -a -b value rest
  optscan scan "+!f:<file><append to>" -- +f log.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash := cmd.ArgsLenAtDash()
			if dash == -1 {
				dash = len(args)
			}
			if dash > 1 {
				return fmt.Errorf("expected at most one option string before \"--\", got %d", dash)
			}
			p, err := g.loadProfile()
			if err != nil {
				return err
			}
			if dash == 1 {
				p.Options = args[0]
			}
			extra, err := parseUserFlags(o.users)
			if err != nil {
				return err
			}
			g.logger.Debug("scan", zap.String("options", p.Options), zap.Strings("args", args[dash:]))
			return runScan(cmd.OutOrStdout(), p, extra, args[dash:], o.verbose)
		},
	}
	cmd.Flags().StringArrayVar(&o.users, "user", nil, "extra option user, name=optionstring")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "print every option, set or not")
	return cmd
}

// runScan scans args with a scanner built from the profile and prints the result.
func runScan(w io.Writer, p config.Profile, extra []config.User, args []string, verbose bool) error {
	s, users, err := buildScanner(p, extra)
	if err != nil {
		return err
	}
	// GetOpts skips the program name.
	idx, err := s.GetOpts(append([]string{"optscan"}, args...))
	if err != nil {
		fmt.Fprintf(w, "usage: %s\n", s.AllUsageString())
		return err
	}
	printOptions(w, s.Options(), verbose)
	for _, u := range users {
		fmt.Fprintf(w, "user %s ready: %t\n", u.name, u.ready)
	}
	rest := []string{}
	if idx > 0 {
		rest = args[idx-1:]
	}
	fmt.Fprintf(w, "index: %d\n", idx)
	fmt.Fprintf(w, "remaining: [%s]\n", strings.Join(rest, " "))
	return nil
}

func printOptions(w io.Writer, options []*optscan.Option, verbose bool) {
	for _, opt := range options {
		if verbose {
			fmt.Fprintln(w, opt.String())
			continue
		}
		if opt.IsSet {
			fmt.Fprintf(w, "%c: set", opt.Char)
			if opt.TakesArg {
				fmt.Fprintf(w, ", arg %q", opt.Value)
			}
			fmt.Fprintln(w)
		}
		if opt.IsSetViaAlternate {
			fmt.Fprintf(w, "%c: set via alternate", opt.Char)
			if opt.TakesArg {
				fmt.Fprintf(w, ", arg %q", opt.AlternateValue)
			}
			fmt.Fprintln(w)
		}
	}
}
