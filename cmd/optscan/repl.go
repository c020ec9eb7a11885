// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/DavidGamba/go-optscan/internal/config"
	"github.com/DavidGamba/go-optscan/strscan"
	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrUnterminatedQuote is returned for a REPL line with an open quote.
var ErrUnterminatedQuote = errors.New("unterminated quote")

const replHelp = `Commands:
  options <optionstring>   replace the option string
  user <name> <optionstring>
                           add an option user
  users                    remove the option users
  usage                    print the usage string
  scan <args>...           scan the arguments
  help                     this text
  quit                     leave

Arguments are separated by whitespace, use double quotes to keep blanks.
`

type replOptions struct {
	history string
}

func newReplCommand(g *globalOptions) *cobra.Command {
	o := &replOptions{}
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive option string session",
		Long: `Start an interactive session to try option strings and command lines.

The session starts with the active profile's option string and users.
When standard input is not a terminal the lines are read from it as a script.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := g.loadProfile()
			if err != nil {
				return err
			}
			ctx, cancel, done := interruptContext(cmd.Context(), cmd.ErrOrStderr())
			defer func() { cancel(); <-done }()
			r := &repl{profile: p, out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr(), logger: g.logger}

			in := cmd.InOrStdin()
			if f, ok := in.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
				return r.runScript(ctx, in)
			}

			if o.history == "" {
				if home, err := os.UserHomeDir(); err == nil {
					o.history = filepath.Join(home, ".optscan_history")
				}
			}
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "optscan> ",
				HistoryFile:     o.history,
				AutoComplete:    replCompleter,
				InterruptPrompt: "^C",
				EOFPrompt:       "quit",
				Stdout:          cmd.OutOrStdout(),
				Stderr:          cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("failed to start line editor: %w", err)
			}
			defer rl.Close()
			return r.run(ctx, rl)
		},
	}
	cmd.Flags().StringVar(&o.history, "history", "", "history file (default ~/.optscan_history)")
	return cmd
}

var replCompleter = readline.NewPrefixCompleter(
	readline.PcItem("options"),
	readline.PcItem("user"),
	readline.PcItem("users"),
	readline.PcItem("usage"),
	readline.PcItem("scan"),
	readline.PcItem("help"),
	readline.PcItem("quit"),
)

type repl struct {
	profile config.Profile
	out     io.Writer
	errOut  io.Writer
	logger  *zap.Logger
}

func (r *repl) run(ctx context.Context, rl *readline.Instance) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if r.exec(line) {
			return nil
		}
	}
}

// runScript runs every line read from in.
func (r *repl) runScript(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		if r.exec(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// exec runs one line and reports whether the session should end.
func (r *repl) exec(line string) bool {
	words, err := tokenize(line)
	if err != nil {
		printError(r.errOut, err)
		return false
	}
	if len(words) == 0 {
		return false
	}
	r.logger.Debug("repl", zap.Strings("words", words))
	switch words[0] {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprint(r.out, replHelp)
	case "options":
		if len(words) != 2 {
			printError(r.errOut, errors.New("usage: options <optionstring>"))
			return false
		}
		p := r.profile
		p.Options = words[1]
		if _, _, err := buildScanner(p, nil); err != nil {
			printError(r.errOut, err)
			return false
		}
		r.profile = p
	case "user":
		if len(words) != 3 {
			printError(r.errOut, errors.New("usage: user <name> <optionstring>"))
			return false
		}
		p := r.profile
		p.Users = append(append([]config.User{}, p.Users...), config.User{Name: words[1], Options: words[2]})
		if _, _, err := buildScanner(p, nil); err != nil {
			printError(r.errOut, err)
			return false
		}
		r.profile = p
	case "users":
		r.profile.Users = nil
	case "usage":
		s, users, err := buildScanner(r.profile, nil)
		if err != nil {
			printError(r.errOut, err)
			return false
		}
		fmt.Fprintln(r.out, s.AllUsageString())
		for _, u := range users {
			fmt.Fprintf(r.out, "%s: %s\n", u.name, u.usage)
		}
	case "scan":
		if err := runScan(r.out, r.profile, nil, words[1:], false); err != nil {
			printError(r.errOut, err)
		}
	default:
		printError(r.errOut, fmt.Errorf("unknown command %q, try help", words[0]))
	}
	return false
}

// tokenize splits line on whitespace. Double quoted words may hold whitespace
// and escaped quotes.
func tokenize(line string) ([]string, error) {
	rs := []rune(line)
	words := []string{}
	pos := 0
	for {
		next, ok := strscan.SkipWhitespace(line, pos)
		if !ok || next == len(rs) {
			return words, nil
		}
		pos = next
		if rs[pos] == strscan.DefaultQuote {
			word, end, ok := strscan.QuotedString(line, pos, strscan.DefaultQuote)
			if !ok {
				return nil, fmt.Errorf("%w at %d", ErrUnterminatedQuote, pos)
			}
			words = append(words, word)
			pos = end
			continue
		}
		start := pos
		for pos < len(rs) && !strscan.IsWhitespace(rs[pos]) {
			pos++
		}
		words = append(words, string(rs[start:pos]))
	}
}
