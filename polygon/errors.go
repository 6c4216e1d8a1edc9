// polygon/errors.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package polygon

import "errors"

// ErrNotEnoughPoints is returned by operations that require at least two
// or three vertices when the polygon doesn't have them.
var ErrNotEnoughPoints = errors.New("polygon: not enough vertices")

// ErrCannotSplit is returned by Split when no valid equal-area cut exists.
var ErrCannotSplit = errors.New("polygon: cannot split")
