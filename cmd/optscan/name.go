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
	"sort"

	"github.com/DavidGamba/go-optscan/name"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newNameCommand() *cobra.Command {
	var sorted, capitalize, givenFirst bool
	cmd := &cobra.Command{
		Use:   "name <name>...",
		Short: "Split and format person names",
		Long: `Split each name, written family name first, into family and given names.

With --given-first the names are read given names first, family name last.
With --capitalize the names are capitalized before splitting.
With --sort the names are printed in name order.`,
		Example: `  optscan name "van der berg, jan" "smith john"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			warn := color.New(color.FgYellow)
			names := make([]name.Name, 0, len(args))
			for _, arg := range args {
				if !name.Check(name.Standardize(arg)) {
					warn.Fprintf(cmd.ErrOrStderr(), "WARNING: unexpected characters in %q\n", arg)
				}
				if givenFirst {
					arg = name.FamilyToFront(arg)
				}
				if capitalize {
					arg = name.Capitalize(arg)
				}
				names = append(names, name.New(arg))
			}
			if sorted {
				sort.SliceStable(names, func(i, j int) bool { return names[i].Less(names[j]) })
			}
			for _, n := range names {
				fmt.Fprintf(out, "%s\n", n)
				fmt.Fprintf(out, "  family: %s\n", n.Family)
				fmt.Fprintf(out, "  given: %s\n", n.Given)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&sorted, "sort", false, "print the names in name order")
	cmd.Flags().BoolVar(&givenFirst, "given-first", false, "read the names given names first")
	cmd.Flags().BoolVar(&capitalize, "capitalize", false, "capitalize the names")
	return cmd
}
