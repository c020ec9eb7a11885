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

	"github.com/spf13/cobra"
)

type usageOptions struct {
	users []string
	all   bool
	name  string
	list  bool
}

func newUsageCommand(g *globalOptions) *cobra.Command {
	o := &usageOptions{}
	cmd := &cobra.Command{
		Use:   "usage [optionstring]",
		Short: "Print the usage string of an option string",
		Long: `Print the usage string of an option string.

The option string defaults to the one in the active profile.
Each --user name=optionstring registers an extra option user whose usage is
printed on its own line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := g.loadProfile()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				p.Options = args[0]
			}
			extra, err := parseUserFlags(o.users)
			if err != nil {
				return err
			}
			s, users, err := buildScanner(p, extra)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case o.name != "":
				fmt.Fprintln(out, s.Synopsis(o.name))
			case o.all:
				fmt.Fprintln(out, s.AllUsageString())
			default:
				fmt.Fprintln(out, s.UsageString())
			}
			for _, u := range users {
				fmt.Fprintf(out, "%s: %s\n", u.name, u.usage)
			}
			if o.list {
				fmt.Fprint(out, s.OptionList())
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&o.users, "user", nil, "extra option user, name=optionstring")
	cmd.Flags().BoolVar(&o.all, "all", false, "include the users' options in the usage string")
	cmd.Flags().StringVar(&o.name, "name", "", "print a SYNOPSIS section for this program name")
	cmd.Flags().BoolVar(&o.list, "list", false, "also print the OPTIONS section")
	return cmd
}
