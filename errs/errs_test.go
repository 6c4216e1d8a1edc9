// errs/errs_test.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package errs

import (
	"fmt"
	"testing"
)

func TestCodeForKnownSentinel(t *testing.T) {
	wrapped := fmt.Errorf("uploading mission: %w", ErrMissionFailure)
	if got := CodeFor(wrapped); got != MissionFailure {
		t.Errorf("CodeFor() = %v, want %v", got, MissionFailure)
	}
}

func TestCodeForNilIsOk(t *testing.T) {
	if got := CodeFor(nil); got != Ok {
		t.Errorf("CodeFor(nil) = %v, want Ok", got)
	}
}

func TestCodeForUnknownError(t *testing.T) {
	if got := CodeFor(fmt.Errorf("something else")); got != UnknownFailure {
		t.Errorf("CodeFor() = %v, want UnknownFailure", got)
	}
}

func TestReturnCodeError(t *testing.T) {
	rc := NewReturnCode(ActionFailure, "failed to arm")
	if got, want := rc.Error(), "ActionFailure: failed to arm"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
