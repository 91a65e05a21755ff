// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package wire

import "errors"

// ErrMalformed is returned when a flat encoded path does not follow the
// start, marker, end, ... layout.
var ErrMalformed = errors.New("malformed encoded path")
