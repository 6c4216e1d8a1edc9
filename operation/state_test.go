// operation/state_test.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package operation

import (
	"testing"

	"github.com/pabloteleco22/flagsearch-go/errs"
)

func TestStateStageTransitionResetsCode(t *testing.T) {
	s := NewState()
	s.SetStage("a")
	s.SetCode(errs.ActionFailure)

	_, code, _ := s.Snapshot()
	if code != errs.ActionFailure {
		t.Fatalf("code = %v, want ActionFailure", code)
	}

	s.SetStage("b")
	name, code, _ := s.Snapshot()
	if name != "b" || code != errs.Ok {
		t.Errorf("after stage transition: name=%q code=%v, want b/Ok", name, code)
	}
}

func TestStateCriticalIsSticky(t *testing.T) {
	s := NewState()
	s.SetCritical()
	s.SetStage("next")

	_, _, critical := s.Snapshot()
	if !critical {
		t.Errorf("critical should remain set across stage transitions")
	}
}
