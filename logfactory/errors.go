// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logfactory

import "errors"

var (
	ErrLoggerExists  = errors.New("logger already exists")
	ErrUnknownLogger = errors.New("unknown logger")
)
