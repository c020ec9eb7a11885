// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/DavidGamba/go-optscan/strscan"
	"github.com/spf13/cobra"
)

// ErrNoMatch is returned when the scanned text has no quoted or bracketed span.
var ErrNoMatch = errors.New("no match")

// singleRune reads a one character flag value.
func singleRune(flag, value string) (rune, error) {
	rs := []rune(value)
	if len(rs) != 1 {
		return 0, fmt.Errorf("--%s must be a single character, got %q", flag, value)
	}
	return rs[0], nil
}

func printMatch(w io.Writer, text string, end int) {
	fmt.Fprintf(w, "text: %q\n", text)
	fmt.Fprintf(w, "end: %d\n", end)
}

func newQuoteCommand() *cobra.Command {
	var quote string
	var start int
	cmd := &cobra.Command{
		Use:   "quote <text>",
		Short: "Extract the quoted text at a position",
		Long: `Extract the quoted text found after optional whitespace at --start.

Escapes before the quote or another escape are resolved.
Prints the text and the position following the closing quote.`,
		Example: `  optscan quote '  "hi\"there" tail'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := singleRune("quote", quote)
			if err != nil {
				return err
			}
			text, end, ok := strscan.QuotedString(args[0], start, q)
			if !ok {
				return fmt.Errorf("%w: quoted text at %d", ErrNoMatch, start)
			}
			printMatch(cmd.OutOrStdout(), text, end)
			return nil
		},
	}
	cmd.Flags().StringVar(&quote, "quote", string(strscan.DefaultQuote), "quote character")
	cmd.Flags().IntVar(&start, "start", 0, "character position to start at")
	return cmd
}

func newBracketCommand() *cobra.Command {
	var left, right, quote string
	var start int
	cmd := &cobra.Command{
		Use:   "bracket <text>",
		Short: "Extract the bracketed text at a position",
		Long: `Extract the bracketed text found after optional whitespace at --start.

Nested brackets are counted and quoted spans are kept verbatim.
Prints the text and the position following the closing bracket.`,
		Example: `  optscan bracket '(a(b)"c)") tail'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := singleRune("left", left)
			if err != nil {
				return err
			}
			r, err := singleRune("right", right)
			if err != nil {
				return err
			}
			q, err := singleRune("quote", quote)
			if err != nil {
				return err
			}
			text, end, ok := strscan.BracketedString(args[0], start, l, r, q)
			if !ok {
				return fmt.Errorf("%w: bracketed text at %d", ErrNoMatch, start)
			}
			printMatch(cmd.OutOrStdout(), text, end)
			return nil
		},
	}
	cmd.Flags().StringVar(&left, "left", string(strscan.DefaultLeftBracket), "left bracket")
	cmd.Flags().StringVar(&right, "right", string(strscan.DefaultRightBracket), "right bracket")
	cmd.Flags().StringVar(&quote, "quote", string(strscan.DefaultQuote), "quote character")
	cmd.Flags().IntVar(&start, "start", 0, "character position to start at")
	return cmd
}
