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
	"strings"

	"github.com/DavidGamba/go-optscan"
	"github.com/DavidGamba/go-optscan/internal/config"
	"github.com/DavidGamba/go-optscan/internal/logging"
	"github.com/DavidGamba/go-optscan/internal/option"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configFile string
	profile    string
	debug      bool
	indicator  string
	alternate  string

	logger *zap.Logger
}

// NewRootCommand creates the optscan command tree.
func NewRootCommand() *cobra.Command {
	g := &globalOptions{logger: zap.NewNop()}
	cmd := &cobra.Command{
		Use:   "optscan",
		Short: "Single character option scanner playground",
		Long: `optscan builds option scanners from option strings such as "ab:c" or
"+!f:<file><append to>", prints their usage, scans command lines with them and
exposes the string scanning and name formatting helpers.

Scanner settings can be read from a YAML or TOML profile file with --config.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, _, err := logging.New(g.debug)
			if err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}
			g.logger = logger
			optscan.Logger = logger.Named("optscan")
			option.Logger = logger.Named("option")
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = g.logger.Sync()
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&g.configFile, "config", "", "profile file, .yaml, .yml or .toml")
	flags.StringVar(&g.profile, "profile", "", "profile name in the profile file")
	flags.BoolVar(&g.debug, "debug", false, "debug logging")
	flags.StringVar(&g.indicator, "indicator", "", "primary option indicator (default \"-\")")
	flags.StringVar(&g.alternate, "alternate", "", "alternate option indicator (default \"+\")")

	cmd.AddCommand(newUsageCommand(g))
	cmd.AddCommand(newScanCommand(g))
	cmd.AddCommand(newQuoteCommand())
	cmd.AddCommand(newBracketCommand())
	cmd.AddCommand(newNameCommand())
	cmd.AddCommand(newReplCommand(g))
	return cmd
}

// loadProfile returns the active profile: the profile file entry if any,
// then the indicator flags on top, then defaults.
func (g *globalOptions) loadProfile() (config.Profile, error) {
	p := config.Profile{Name: config.DefaultProfile}
	if g.configFile != "" {
		f, err := config.Load(g.configFile)
		if err != nil {
			return p, err
		}
		p, err = f.Profile(g.profile)
		if err != nil {
			return p, err
		}
	} else if g.profile != "" {
		return p, fmt.Errorf("--profile %q given without --config", g.profile)
	}
	if g.indicator != "" {
		p.Indicator = g.indicator
	}
	if g.alternate != "" {
		p.Alternate = g.alternate
	}
	p.ApplyDefaults()
	if err := p.Validate(); err != nil {
		return p, err
	}
	g.logger.Debug("profile loaded", zap.String("profile", p.Name),
		zap.String("indicator", p.Indicator), zap.String("alternate", p.Alternate))
	return p, nil
}

// parseUserFlags turns name=optionstring flag values into profile users.
func parseUserFlags(values []string) ([]config.User, error) {
	users := []config.User{}
	for _, v := range values {
		name, options, ok := strings.Cut(v, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --user %q, expected name=optionstring", v)
		}
		users = append(users, config.User{Name: name, Options: options})
	}
	return users, nil
}

// buildScanner creates a scanner for the profile and registers its users,
// the profile's first and then extra.
func buildScanner(p config.Profile, extra []config.User) (*optscan.Scanner, []*reportUser, error) {
	s, err := optscan.NewWithIndicators(p.Options, p.IndicatorRune(), p.AlternateRune())
	if err != nil {
		return nil, nil, err
	}
	users := []*reportUser{}
	for _, u := range append(append([]config.User{}, p.Users...), extra...) {
		ru := &reportUser{name: u.Name}
		if err := s.AddUser(u.Name, ru, u.Options); err != nil {
			return nil, nil, err
		}
		users = append(users, ru)
	}
	return s, users, nil
}

// reportUser - OptionUser that keeps what the scanner hands it for printing.
type reportUser struct {
	name    string
	options []*optscan.Option
	usage   string
	ready   bool
}

func (u *reportUser) ReceiveOptions(options []*optscan.Option) { u.options = options }

func (u *reportUser) UsageStringReady(usage string) { u.usage = usage }

func (u *reportUser) OptionsReady() { u.ready = true }

// printError writes err in red, with a caret diagnostic for option string errors.
func printError(w io.Writer, err error) {
	red := color.New(color.FgRed)
	red.Fprintf(w, "ERROR: %s\n", err)
	var ge *optscan.GrammarError
	if errors.As(err, &ge) {
		if show := ge.Show(); show != "" {
			fmt.Fprintf(w, "    %s\n", show)
		}
	}
}
