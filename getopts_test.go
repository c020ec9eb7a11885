package optscan

import (
	"errors"
	"testing"
)

func TestGetOpts(t *testing.T) {
	tests := []struct {
		name         string
		optionString string
		args         []string
		index        int
		report       string
	}{
		{"scenario 1", "ab:c", []string{"prog", "-a", "-b", "jim"}, 4,
			"'a' set:true alt:false\n'b' set:true alt:false arg:\"jim\"\n'c' set:false alt:false\n"},
		{"scenario 4", "+!b:<minus><plus>", []string{"prog", "+b", "plusval", "-bminusval", "notopt"}, 4,
			"'b' set:true alt:true arg:\"minusval\" altarg:\"plusval\"\n"},
		{"packed", "abc", []string{"prog", "-ab", "-c", "file"}, 3,
			"'a' set:true alt:false\n'b' set:true alt:false\n'c' set:true alt:false\n"},
		{"inline argument", "f:", []string{"prog", "-ffile", "rest"}, 2,
			"'f' set:true alt:false arg:\"file\"\n"},
		{"single char inline argument", "f:", []string{"prog", "-fx", "rest"}, 2,
			"'f' set:true alt:false arg:\"x\"\n"},
		{"argument looks like option", "f:a", []string{"prog", "-f", "-a"}, 3,
			"'a' set:false alt:false\n'f' set:true alt:false arg:\"-a\"\n"},
		{"end of options", "ab", []string{"prog", "-a", "--", "-b"}, 3,
			"'a' set:true alt:false\n'b' set:false alt:false\n"},
		{"end of options last", "ab", []string{"prog", "-a", "--"}, 3,
			"'a' set:true alt:false\n'b' set:false alt:false\n"},
		{"lone indicator", "a", []string{"prog", "-", "-a"}, 1,
			"'a' set:false alt:false\n"},
		{"empty argument", "a", []string{"prog", "", "-a"}, 1,
			"'a' set:false alt:false\n"},
		{"no options", "a", []string{"prog"}, 1,
			"'a' set:false alt:false\n"},
		{"no args", "a", []string{}, 0,
			"'a' set:false alt:false\n"},
		{"alternate only", "+a", []string{"prog", "+a", "x"}, 2,
			"'a' set:false alt:true\n"},
		{"primary and alternate", "+a", []string{"prog", "-a", "+a"}, 3,
			"'a' set:true alt:true\n"},
		{"required via alternate", "+!a", []string{"prog", "+a"}, 2,
			"'a' set:false alt:true\n"},
		{"doubled alternate is not an end marker", "+a", []string{"prog", "++"}, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logTestOutput := setupTestLogging(t)
			defer logTestOutput()

			s, err := New(tt.optionString)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			idx, err := s.GetOpts(tt.args)
			if tt.report == "" {
				checkError(t, err, ErrorUnknownOption)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if idx != tt.index {
				t.Errorf("wrong index: got %d want %d", idx, tt.index)
			}
			chars := ""
			for _, opt := range s.Options() {
				chars += string(opt.Char)
			}
			if got := optionReport(s, chars); got != tt.report {
				t.Errorf("wrong report:\ngot:\n%s\nwant:\n%s", got, tt.report)
			}
		})
	}
}

func TestGetOptsErrors(t *testing.T) {
	tests := []struct {
		name         string
		optionString string
		args         []string
		err          error
		index        int
		option       rune
		message      string
	}{
		{"scenario 2", "!a", []string{"prog"}, ErrorMissingRequiredOption, 1, 'a', "required option 'a' not set"},
		{"scenario 3", "a:", []string{"prog", "-a"}, ErrorMissingArgument, 1, 'a', "missing argument for option 'a'"},
		{"unknown", "ab", []string{"prog", "-ax"}, ErrorUnknownOption, 1, 'x', "option 'x' not recognized"},
		{"alternate not allowed", "ab", []string{"prog", "-a", "+b"}, ErrorAlternateNotAllowed, 2, 'b', "'+' used with option 'b'"},
		{"set twice", "ab", []string{"prog", "-a", "-ba"}, ErrorSetTwice, 2, 'a', "option 'a' set twice"},
		{"set twice alternate", "+a", []string{"prog", "+a", "+a"}, ErrorSetTwice, 2, 'a', "option 'a' set twice"},
		{"not first", "+w:+c", []string{"prog", "+cwhi"}, ErrorNotFirst, 1, 'w', "option 'w' not first in argument"},
		{"not first next value", "ab:c", []string{"prog", "-cb", "x", "--", "-a"}, ErrorNotFirst, 1, 'b', "option 'b' not first in argument"},
		{"not first inline value", "xy:z", []string{"prog", "-zy-", "-x"}, ErrorNotFirst, 1, 'y', "option 'y' not first in argument"},
		{"missing alternate argument", "+z:", []string{"prog", "+z"}, ErrorMissingArgument, 1, 'z', "missing argument for option 'z'"},
		{"missing after value", "+5:", []string{"prog", "-5hi", "+5"}, ErrorMissingArgument, 2, '5', "missing argument for option '5'"},
		{"required checked in listing order", "!b!a", []string{"prog"}, ErrorMissingRequiredOption, 1, 'a', "required option 'a' not set"},
		{"required after end", "!ab", []string{"prog", "-b", "--", "-a"}, ErrorMissingRequiredOption, 4, 'a', "required option 'a' not set"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.optionString)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			idx, err := s.GetOpts(tt.args)
			checkError(t, err, tt.err)
			checkError(t, err, ErrorScan)
			if err == nil {
				return
			}
			if idx != tt.index {
				t.Errorf("wrong index: got %d want %d", idx, tt.index)
			}
			if err.Error() != tt.message {
				t.Errorf("wrong message:\ngot:  %s\nwant: %s", err, tt.message)
			}
			var se *ScanError
			if !errors.As(err, &se) {
				t.Fatalf("not a ScanError: %#v", err)
			}
			if se.Option != tt.option {
				t.Errorf("wrong option: %c", se.Option)
			}
		})
	}
}

func TestGetOptsNoRollback(t *testing.T) {
	s, err := New("+w:+c")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	_, err = s.GetOpts([]string{"prog", "+cwhi"})
	checkError(t, err, ErrorNotFirst)
	c, _ := s.Option('c')
	w, _ := s.Option('w')
	if !c.IsSetViaAlternate || !w.IsSetViaAlternate {
		t.Errorf("options set before the failure were reverted:\n%s\n%s", c, w)
	}
	// Flag set, value never saved.
	if v, err := w.AlternateArg(); err != nil || v != "" {
		t.Errorf("unexpected value: %q %v", v, err)
	}
}

func TestGetOptsCustomIndicators(t *testing.T) {
	s, err := NewWithIndicators("a+bc:<one>+d:<two><three>", '/', '+')
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	usage := "[ /a ] [ +//b ] [ /c one ] [ /d two | +d three ]"
	if got := s.AllUsageString(); got != usage {
		t.Errorf("wrong usage:\ngot:  %s\nwant: %s", got, usage)
	}
	idx, err := s.GetOpts([]string{"prog", "/ab", "+b", "/cfirst", "/d", "second", "+dthird"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if idx != 7 {
		t.Errorf("wrong index: %d", idx)
	}
	expected := "'a' set:true alt:false\n" +
		"'b' set:true alt:true\n" +
		"'c' set:true alt:false arg:\"first\"\n" +
		"'d' set:true alt:true arg:\"second\" altarg:\"third\"\n"
	if got := optionReport(s, "abcd"); got != expected {
		t.Errorf("wrong report:\ngot:\n%s\nwant:\n%s", got, expected)
	}

	// "--" is no longer the end marker.
	s, _ = NewWithIndicators("a", '/', '+')
	idx, err = s.GetOpts([]string{"prog", "//", "/a"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if idx != 2 {
		t.Errorf("wrong index: %d", idx)
	}
	idx, _ = s.GetOpts([]string{"prog", "--", "/a"})
	if idx != 1 {
		t.Errorf("wrong index: %d", idx)
	}
}

func TestGetOptsRepeated(t *testing.T) {
	s, err := New("ab")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := s.GetOpts([]string{"prog", "-a"}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := s.GetOpts([]string{"prog", "-b"}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := "'a' set:true alt:false\n'b' set:true alt:false\n"
	if got := optionReport(s, "ab"); got != expected {
		t.Errorf("wrong report:\ngot:\n%s\nwant:\n%s", got, expected)
	}
	_, err = s.GetOpts([]string{"prog", "-a"})
	checkError(t, err, ErrorSetTwice)
	_, err = s.GetOpts([]string{"prog", "-b"})
	checkError(t, err, ErrorSetTwice)
}

func TestArgumentQueries(t *testing.T) {
	s, err := New("a+b:f:")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := s.GetOpts([]string{"prog", "-bone"}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	a, _ := s.Option('a')
	b, _ := s.Option('b')
	f, _ := s.Option('f')

	_, err = a.Arg()
	checkError(t, err, ErrorArgumentQuery)
	if err.Error() != "option argument queried on non-arg option 'a'" {
		t.Errorf("wrong message: %s", err)
	}
	_, err = f.Arg()
	if err.Error() != "option argument queried on unset option 'f'" {
		t.Errorf("wrong message: %s", err)
	}
	_, err = f.AlternateArg()
	if err.Error() != "alternate option argument queried on non-alternate-arg option 'f'" {
		t.Errorf("wrong message: %s", err)
	}
	_, err = b.AlternateArg()
	if err.Error() != "alternate option argument queried on unset option 'b'" {
		t.Errorf("wrong message: %s", err)
	}
	if v, err := b.Arg(); err != nil || v != "one" {
		t.Errorf("wrong value: %q %v", v, err)
	}
}
