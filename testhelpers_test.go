package optscan

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

// setupTestLogging - Points the package Logger to an in memory core and returns a
// function that prints the captured entries if there are any.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	core, logs := observer.New(zap.DebugLevel)
	previous := Logger
	Logger = zap.New(core)
	return func() {
		Logger = previous
		if logs.Len() == 0 {
			return
		}
		var b strings.Builder
		for _, entry := range logs.All() {
			fmt.Fprintf(&b, "%s %v\n", entry.Message, entry.ContextMap())
		}
		t.Log("\n" + b.String())
	}
}

// recordingUser - OptionUser that records the calls it receives.
type recordingUser struct {
	name    string
	events  *[]string
	options []*Option
	usage   string
	ready   bool
}

func newRecordingUser(name string, events *[]string) *recordingUser {
	return &recordingUser{name: name, events: events}
}

func (u *recordingUser) ReceiveOptions(options []*Option) {
	u.options = options
	*u.events = append(*u.events, "options:"+u.name)
}

func (u *recordingUser) UsageStringReady(usage string) {
	u.usage = usage
	*u.events = append(*u.events, "usage:"+u.name)
}

func (u *recordingUser) OptionsReady() {
	u.ready = true
	*u.events = append(*u.events, "ready:"+u.name)
}

func (u *recordingUser) chars() string {
	var b strings.Builder
	for _, opt := range u.options {
		b.WriteRune(opt.Char)
	}
	return b.String()
}

func (u *recordingUser) someSet() bool {
	for _, opt := range u.options {
		if opt.IsSet || opt.IsSetViaAlternate {
			return true
		}
	}
	return false
}

// optionReport - One line per option with its scan state and arguments.
func optionReport(s *Scanner, chars string) string {
	var b strings.Builder
	for _, c := range chars {
		opt, ok := s.Option(c)
		if !ok {
			fmt.Fprintf(&b, "'%c' missing\n", c)
			continue
		}
		fmt.Fprintf(&b, "'%c' set:%t alt:%t", c, opt.IsSet, opt.IsSetViaAlternate)
		if v, err := opt.Arg(); err == nil {
			fmt.Fprintf(&b, " arg:%q", v)
		}
		if v, err := opt.AlternateArg(); err == nil {
			fmt.Fprintf(&b, " altarg:%q", v)
		}
		b.WriteString("\n")
	}
	return b.String()
}
