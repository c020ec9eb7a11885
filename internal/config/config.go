// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package config - Loads scanner profiles from YAML or TOML files.
//
// A profile file holds named profiles:
//
//	default: tar
//	profiles:
//	  tar:
//	    indicator: "-"
//	    alternate: "+"
//	    options: "+!f:<archive>vx"
//	    users:
//	      - name: compress
//	        options: "zj"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultProfile is the profile name used when neither the caller nor the file name one.
const DefaultProfile = "default"

// Default indicators applied to empty profile fields.
const (
	DefaultIndicator = "-"
	DefaultAlternate = "+"
)

var (
	// ErrorFormat - The file extension is not a known profile format.
	ErrorFormat = errors.New("unsupported profile file format")
	// ErrorUnknownProfile - The requested profile is not in the file.
	ErrorUnknownProfile = errors.New("unknown profile")
	// ErrorInvalidProfile - The profile values cannot build a scanner.
	ErrorInvalidProfile = errors.New("invalid profile")
)

// User - An option user declared in a profile.
type User struct {
	Name    string `yaml:"name" toml:"name"`
	Options string `yaml:"options" toml:"options"`
}

// Profile - Scanner settings.
type Profile struct {
	Name      string `yaml:"-" toml:"-"`
	Indicator string `yaml:"indicator" toml:"indicator"`
	Alternate string `yaml:"alternate" toml:"alternate"`
	Options   string `yaml:"options" toml:"options"`
	Users     []User `yaml:"users" toml:"users"`
}

// File - Contents of a profile file.
type File struct {
	Default  string             `yaml:"default" toml:"default"`
	Profiles map[string]Profile `yaml:"profiles" toml:"profiles"`
}

// Format of a profile file.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	}
	return "unknown"
}

// DetectFormat - Returns the format for the file extension of path.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrorFormat, filepath.Ext(path))
}

// Load - Reads and parses the profile file at path.
func Load(path string) (*File, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	return Parse(data, format)
}

// Parse - Parses profile file contents.
func Parse(data []byte, format Format) (*File, error) {
	f := &File{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), f); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrorFormat, format)
	}
	return f, nil
}

// Names - Returns the profile names in alphabetical order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Profiles))
	for name := range f.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Profile - Returns the named profile with defaults applied and validated.
// An empty name selects the file's default profile, or DefaultProfile.
func (f *File) Profile(name string) (Profile, error) {
	if name == "" {
		name = f.Default
	}
	if name == "" {
		name = DefaultProfile
	}
	p, ok := f.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrorUnknownProfile, name)
	}
	p.Name = name
	p.ApplyDefaults()
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// ApplyDefaults - Sets the default indicators on empty fields.
func (p *Profile) ApplyDefaults() {
	if p.Indicator == "" {
		p.Indicator = DefaultIndicator
	}
	if p.Alternate == "" {
		p.Alternate = DefaultAlternate
	}
}

// Validate - Checks that the indicators are single, distinct characters and
// that user names are set and unique.
func (p *Profile) Validate() error {
	if utf8.RuneCountInString(p.Indicator) != 1 {
		return fmt.Errorf("%w: indicator %q must be a single character", ErrorInvalidProfile, p.Indicator)
	}
	if utf8.RuneCountInString(p.Alternate) != 1 {
		return fmt.Errorf("%w: alternate indicator %q must be a single character", ErrorInvalidProfile, p.Alternate)
	}
	if p.Indicator == p.Alternate {
		return fmt.Errorf("%w: indicators must differ, both are %q", ErrorInvalidProfile, p.Indicator)
	}
	seen := map[string]bool{}
	for _, u := range p.Users {
		if u.Name == "" {
			return fmt.Errorf("%w: user with options %q has no name", ErrorInvalidProfile, u.Options)
		}
		if seen[u.Name] {
			return fmt.Errorf("%w: duplicate user %q", ErrorInvalidProfile, u.Name)
		}
		seen[u.Name] = true
	}
	return nil
}

// IndicatorRune - Returns the primary indicator, call after Validate.
func (p Profile) IndicatorRune() rune {
	r, _ := utf8.DecodeRuneInString(p.Indicator)
	return r
}

// AlternateRune - Returns the alternate indicator, call after Validate.
func (p Profile) AlternateRune() rune {
	r, _ := utf8.DecodeRuneInString(p.Alternate)
	return r
}
