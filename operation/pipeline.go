// operation/pipeline.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package operation

import (
	"context"
	"time"

	"github.com/pabloteleco22/flagsearch-go/errs"
	"github.com/pabloteleco22/flagsearch-go/quorum"
)

// Canonical stage names, shared between every vehicle so the stage-name
// handoff in State.SetStage lines up fleet-wide.
const (
	StageHealthCheck             = "health_check"
	StageClearMissions           = "clear_missions"
	StageEnableReturnToLaunch    = "enable_return_to_launch"
	StageSetReturnAltitude       = "set_return_altitude"
	StageInstallSearchController = "install_search_controller"
	StageMakeMissionPlan         = "make_mission_plan"
	StageUploadMission           = "upload_mission"
	StageArm                     = "arm"
	StageStartMission            = "start_mission"
	StageWaitUntilLanded         = "wait_until_landed"
)

// Stage is one step of the ordered pipeline for a single vehicle.
type Stage struct {
	Name string

	// Critical marks a stage whose failure aborts the whole run rather
	// than just dropping this vehicle from the barrier and the quorum.
	Critical bool

	// Action performs the stage. A nil error means the stage succeeded.
	Action func(ctx context.Context) error
}

// Run executes one stage for one vehicle: it records the stage-name
// handoff, retries Action up to attempts times spaced by interval, and then
// either arrives at the barrier (success) or drops from it (failure),
// updating the shared state and quorum accordingly. It reports whether the
// caller should proceed to the next stage.
func Run(ctx context.Context, b *Barrier, state *State, q *quorum.Tracker, stage Stage, attempts int, interval time.Duration, codeFor func(error) errs.Code) bool {
	state.SetStage(stage.Name)

	var err error
retry:
	for i := 0; i < attempts; i++ {
		err = stage.Action(ctx)
		if err == nil {
			break retry
		}

		select {
		case <-ctx.Done():
			err = ctx.Err()
			break retry
		case <-time.After(interval):
		}
	}

	if err == nil {
		b.ArriveAndWait()
		return true
	}

	code := codeFor(err)
	state.SetCode(code)
	if stage.Critical {
		state.SetCritical()
	} else if q != nil {
		q.Subtract(1)
	}
	b.ArriveAndDrop()
	return false
}
