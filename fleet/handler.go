// fleet/handler.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package fleet wires one discovered vehicle's transport link, assigned
// mission planner, search controller, and the shared operation pipeline
// state into a single per-vehicle run.
package fleet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pabloteleco22/flagsearch-go/config"
	"github.com/pabloteleco22/flagsearch-go/errs"
	"github.com/pabloteleco22/flagsearch-go/flagsrc"
	"github.com/pabloteleco22/flagsearch-go/log"
	"github.com/pabloteleco22/flagsearch-go/mission"
	"github.com/pabloteleco22/flagsearch-go/operation"
	"github.com/pabloteleco22/flagsearch-go/quorum"
	"github.com/pabloteleco22/flagsearch-go/search"
	"github.com/pabloteleco22/flagsearch-go/transport"
	"github.com/pabloteleco22/flagsearch-go/util"
)

// Handler drives one vehicle through the full operation pipeline: health
// check, mission upload, arming, takeoff, and return, while its search
// controller watches for the flag in the background.
type Handler struct {
	link            transport.VehicleLink
	systemIndex     uint
	numberOfSystems uint
	planner         mission.Planner

	state   *operation.State
	barrier *operation.Barrier
	quorum  *quorum.Tracker

	searchState *search.State
	flag        flagsrc.Position

	uploadLock *util.LoggingMutex
	lg         *log.Logger
}

// New builds a handler for one discovered vehicle. uploadLock is shared
// fleet-wide: mission uploads are serialized across every vehicle.
func New(link transport.VehicleLink, systemIndex, numberOfSystems uint, planner mission.Planner,
	state *operation.State, barrier *operation.Barrier, q *quorum.Tracker,
	searchState *search.State, flag flagsrc.Position, uploadLock *util.LoggingMutex, lg *log.Logger) *Handler {
	return &Handler{
		link:            link,
		systemIndex:     systemIndex,
		numberOfSystems: numberOfSystems,
		planner:         planner,
		state:           state,
		barrier:         barrier,
		quorum:          q,
		searchState:     searchState,
		flag:            flag,
		uploadLock:      uploadLock,
		lg:              lg,
	}
}

// Run executes the ordered stage list for this vehicle, blocking until
// either every stage has completed or the vehicle drops from the barrier.
// It returns the first error that caused a drop, or nil on full completion.
func (h *Handler) Run(ctx context.Context) error {
	run := func(name string, critical bool, action func(ctx context.Context) error) bool {
		return operation.Run(ctx, h.barrier, h.state, h.quorum, operation.Stage{
			Name:     name,
			Critical: critical,
			Action:   action,
		}, config.MaxAttempts, config.RefreshTime, errs.CodeFor)
	}

	if !run(operation.StageHealthCheck, false, h.checkHealth) {
		return errs.ErrTelemetryFailure
	}

	if !run(operation.StageClearMissions, false, func(ctx context.Context) error {
		return wrap(h.link.ClearMission(ctx), errs.ErrMissionFailure)
	}) {
		return errs.ErrMissionFailure
	}

	if !run(operation.StageEnableReturnToLaunch, false, func(ctx context.Context) error {
		return wrap(h.link.SetReturnToLaunchAfterMission(ctx, true), errs.ErrActionFailure)
	}) {
		return errs.ErrActionFailure
	}

	if !run(operation.StageSetReturnAltitude, false, func(ctx context.Context) error {
		altitude := float32(config.BaseReturnAltitudeM) + float32(h.systemIndex)
		return wrap(h.link.SetReturnToLaunchAltitude(ctx, altitude), errs.ErrActionFailure)
	}) {
		return errs.ErrActionFailure
	}

	if !run(operation.StageInstallSearchController, false, h.installSearchController(ctx)) {
		return errs.ErrTelemetryFailure
	}

	var plan mission.Plan
	if !run(operation.StageMakeMissionPlan, true, func(ctx context.Context) error {
		waypoints, err := h.planner.NewMission(h.numberOfSystems, h.systemIndex)
		if err != nil {
			return fmt.Errorf("%w: %v", errs.ErrMissionFailure, err)
		}
		plan = mission.Plan(waypoints)
		return nil
	}) {
		return errs.ErrMissionFailure
	}

	if !run(operation.StageUploadMission, true, func(ctx context.Context) error {
		return h.uploadMission(ctx, plan)
	}) {
		return errs.ErrMissionFailure
	}

	if !run(operation.StageArm, true, func(ctx context.Context) error {
		return wrap(h.link.Arm(ctx), errs.ErrActionFailure)
	}) {
		return errs.ErrActionFailure
	}

	if !run(operation.StageStartMission, true, func(ctx context.Context) error {
		return wrap(h.link.StartMission(ctx), errs.ErrMissionFailure)
	}) {
		return errs.ErrMissionFailure
	}

	if !run(operation.StageWaitUntilLanded, false, h.waitUntilLanded) {
		return errs.ErrTelemetryFailure
	}

	return nil
}

func (h *Handler) checkHealth(ctx context.Context) error {
	ok, err := h.link.HealthAllOK(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrTelemetryFailure, err)
	}
	if !ok {
		return errs.ErrTelemetryFailure
	}
	return nil
}

// installSearchController returns a stage action that confirms the
// position-reporting rate can be set, then launches the search controller
// in the background: per-sample detection happens off the pipeline's
// critical path so it never blocks a later stage's barrier arrival.
func (h *Handler) installSearchController(ctx context.Context) func(context.Context) error {
	return func(stageCtx context.Context) error {
		if err := h.link.SetRatePosition(stageCtx, config.PositionRateHz); err != nil {
			return fmt.Errorf("%w: %v", errs.ErrTelemetryFailure, err)
		}

		controller := search.New(h.link, h.searchState, h.flag, config.DetectionRadiusDeg, config.PositionRateHz)
		go func() {
			if err := controller.Activate(ctx, h.onDetect); err != nil {
				h.lg.Debugf("search controller for system %d stopped: %v", h.link.SystemID(), err)
			}
		}()
		return nil
	}
}

// onDetect fires at most once. It must not block: it hands the
// return-to-launch command off to a goroutine and returns immediately, per
// the non-blocking, lock-free discipline required of a callback invoked
// from inside the position-stream goroutine.
func (h *Handler) onDetect(pos flagsrc.Position, foundByMe bool) {
	h.lg.Info("flag detected", slog.Bool("found_by_me", foundByMe), slog.Float64("lat", pos.LatitudeDeg), slog.Float64("lon", pos.LongitudeDeg))

	go func() {
		if err := h.link.ReturnToLaunch(context.Background()); err != nil {
			h.lg.Errorf("return to launch after detection failed for system %d: %v", h.link.SystemID(), err)
		}
	}()
}

// uploadMission serializes every vehicle's upload through one fleet-wide
// lock, sleeping RefreshTime while holding it. This is a documented
// workaround for a transport-level race between successive uploads, not an
// oversight: keep the sleep inside the critical section.
func (h *Handler) uploadMission(ctx context.Context, plan mission.Plan) error {
	h.uploadLock.Lock(h.lg)
	defer h.uploadLock.Unlock(h.lg)

	if err := h.link.UploadMission(ctx, plan); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrMissionFailure, err)
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", errs.ErrMissionFailure, ctx.Err())
	case <-time.After(config.RefreshTime):
	}
	return nil
}

func (h *Handler) waitUntilLanded(ctx context.Context) error {
	landed, err := h.link.SubscribeLandedState(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrTelemetryFailure, err)
	}

	inAir := false
	for !inAir {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", errs.ErrTelemetryFailure, ctx.Err())
		case state, ok := <-landed:
			if !ok {
				return fmt.Errorf("%w: landed-state stream closed before takeoff", errs.ErrTelemetryFailure)
			}
			if state == transport.LandedStateInAir {
				inAir = true
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", errs.ErrTelemetryFailure, ctx.Err())
		case state, ok := <-landed:
			if !ok {
				return fmt.Errorf("%w: landed-state stream closed before landing", errs.ErrTelemetryFailure)
			}
			if state == transport.LandedStateOnGround {
				return nil
			}
		}
	}
}

func wrap(err error, sentinel error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}
