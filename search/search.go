// search/search.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package search watches a vehicle's position stream for proximity to the
// flag and coordinates, fleet-wide, which vehicle gets credit for finding
// it.
package search

import (
	"context"
	"fmt"
	"sync"

	"github.com/pabloteleco22/flagsearch-go/flagsrc"
	"github.com/pabloteleco22/flagsearch-go/transport"
)

// State is shared by every per-vehicle Controller in a fleet: whichever
// controller flips found from false to true (TrySetFound) becomes the detector, and
// every other controller's next sample observes it already set.
type State struct {
	mu    sync.Mutex
	found bool
}

// TrySetFound flips found to true and reports whether this call was the one
// that did it (at most one caller ever sees true).
func (s *State) TrySetFound() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.found {
		return false
	}
	s.found = true
	return true
}

// Found reports whether any controller has detected the flag yet.
func (s *State) Found() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.found
}

// DetectionCallback fires at most once per Controller, reporting the flag's
// position and whether this controller was the one that found it.
type DetectionCallback func(pos flagsrc.Position, foundByMe bool)

// Controller watches one vehicle's position stream against the flag
// position, shared detection state, and a fleet-wide detection radius.
type Controller struct {
	link    transport.VehicleLink
	state   *State
	flag    flagsrc.Position
	radius  float64
	rateHz  float64
	fired   sync.Once
}

// New builds a controller for one vehicle. radius is in the same
// degree-space units as latitude/longitude.
func New(link transport.VehicleLink, state *State, flag flagsrc.Position, radiusDeg, rateHz float64) *Controller {
	return &Controller{
		link:   link,
		state:  state,
		flag:   flag,
		radius: radiusDeg,
		rateHz: rateHz,
	}
}

// Activate sets the vehicle's position-reporting rate, subscribes to its
// position stream, and invokes callback at most once: either when this
// controller's own sample lands within radius of the flag, or when it
// observes that some other controller already has. It returns once the
// callback has fired, or without firing it when ctx is done or the position
// stream closes.
func (c *Controller) Activate(ctx context.Context, callback DetectionCallback) error {
	if err := c.link.SetRatePosition(ctx, c.rateHz); err != nil {
		return fmt.Errorf("search: setting position rate: %w", err)
	}

	positions, err := c.link.SubscribePosition(ctx)
	if err != nil {
		return fmt.Errorf("search: subscribing to position: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case pos, ok := <-positions:
			if !ok {
				return nil
			}

			withinRadius := c.flag.DistanceTo(flagsrc.Position{
				LatitudeDeg:  pos.LatitudeDeg,
				LongitudeDeg: pos.LongitudeDeg,
			}) <= c.radius

			if withinRadius && c.state.TrySetFound() {
				c.fired.Do(func() { callback(c.flag, true) })
				return nil
			}

			if c.state.Found() {
				c.fired.Do(func() { callback(c.flag, false) })
				return nil
			}
		}
	}
}
