// operation/pipeline_test.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package operation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pabloteleco22/flagsearch-go/errs"
	"github.com/pabloteleco22/flagsearch-go/quorum"
)

func TestRunSucceedsArrivesAtBarrier(t *testing.T) {
	b := NewBarrier(1, nil)
	state := NewState()
	q := quorum.New(1, 66)

	ok := Run(context.Background(), b, state, q, Stage{
		Name:   StageHealthCheck,
		Action: func(ctx context.Context) error { return nil },
	}, 3, time.Millisecond, errs.CodeFor)

	if !ok {
		t.Fatalf("Run() = false, want true on success")
	}
	name, code, critical := state.Snapshot()
	if name != StageHealthCheck || code != errs.Ok || critical {
		t.Errorf("state = (%q, %v, %v), want (%q, Ok, false)", name, code, critical, StageHealthCheck)
	}
}

func TestRunRetriesThenDropsNonCritical(t *testing.T) {
	b := NewBarrier(1, nil)
	state := NewState()
	q := quorum.New(1, 66)
	q.Append(1)

	attempts := 0
	ok := Run(context.Background(), b, state, q, Stage{
		Name: StageClearMissions,
		Action: func(ctx context.Context) error {
			attempts++
			return errs.ErrMissionFailure
		},
	}, 3, time.Millisecond, errs.CodeFor)

	if ok {
		t.Fatalf("Run() = true, want false on exhausted retries")
	}
	if attempts != 3 {
		t.Errorf("Action called %d times, want 3", attempts)
	}
	_, code, critical := state.Snapshot()
	if code != errs.MissionFailure || critical {
		t.Errorf("state code/critical = (%v, %v), want (MissionFailure, false)", code, critical)
	}
	if q.Count() != 0 {
		t.Errorf("quorum count = %v, want 0 after drop", q.Count())
	}
}

func TestRunCriticalStageMarksStateCritical(t *testing.T) {
	b := NewBarrier(1, nil)
	state := NewState()
	q := quorum.New(1, 66)

	ok := Run(context.Background(), b, state, q, Stage{
		Name:     StageUploadMission,
		Critical: true,
		Action:   func(ctx context.Context) error { return errors.New("boom") },
	}, 1, time.Millisecond, errs.CodeFor)

	if ok {
		t.Fatalf("Run() = true, want false")
	}
	_, code, critical := state.Snapshot()
	if code != errs.UnknownFailure || !critical {
		t.Errorf("state = (%v, %v), want (UnknownFailure, true)", code, critical)
	}
}
