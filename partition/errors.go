// partition/errors.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package partition

import "errors"

// ErrCannotMakeMission is returned by Partitioner.PolygonOfInterest when the
// requested split is impossible: a non-positive partial area, a system ID
// outside [1, numberOfSystems], or a split failure propagated from the
// underlying polygon.
var ErrCannotMakeMission = errors.New("partition: cannot make mission")
