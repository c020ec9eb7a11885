// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package logging - Builds the zap logger used by the command line tool.
package logging

import (
	"go.uber.org/zap"
)

// New - Returns a development logger at debug level when debug is set,
// a production logger at warn level otherwise.
// The returned level can be changed at run time.
func New(debug bool) (*zap.Logger, zap.AtomicLevel, error) {
	var logger *zap.Logger
	var atom zap.AtomicLevel
	var err error

	if debug {
		atom = zap.NewAtomicLevelAt(zap.DebugLevel)
		config := zap.NewDevelopmentConfig()
		config.Level = atom
		logger, err = config.Build()
	} else {
		atom = zap.NewAtomicLevelAt(zap.WarnLevel)
		config := zap.NewProductionConfig()
		config.Level = atom
		logger, err = config.Build()
	}

	return logger, atom, err
}
