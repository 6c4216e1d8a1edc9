// cmd/flagsearch/main.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Command flagsearch coordinates a fleet of vehicles, one UDP port per
// vehicle, to cooperatively search a polygon for a flag.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/pabloteleco22/flagsearch-go/config"
	"github.com/pabloteleco22/flagsearch-go/errs"
	"github.com/pabloteleco22/flagsearch-go/fleet"
	"github.com/pabloteleco22/flagsearch-go/flagsrc"
	"github.com/pabloteleco22/flagsearch-go/log"
	"github.com/pabloteleco22/flagsearch-go/mission"
	"github.com/pabloteleco22/flagsearch-go/operation"
	"github.com/pabloteleco22/flagsearch-go/polygon"
	"github.com/pabloteleco22/flagsearch-go/search"
	"github.com/pabloteleco22/flagsearch-go/transport"
	"github.com/pabloteleco22/flagsearch-go/util"
)

func main() {
	lg := log.New(os.Getenv("FLAGSEARCH_LOGLEVEL"), "logs")
	defer lg.CatchAndReportCrash()

	setupSignalHandler(lg)

	urls, err := parsePorts(os.Args[1:])
	if err != nil {
		lg.Errorf("%v", err)
		os.Exit(int(errs.BadArgument))
	}

	os.Exit(int(run(context.Background(), urls, lg)))
}

func parsePorts(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: usage: flagsearch <port1> [port2 ...]", errs.ErrBadArgument)
	}

	urls := make([]string, len(args))
	for i, arg := range args {
		port, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid port %q: %v", errs.ErrBadArgument, arg, err)
		}
		urls[i] = fmt.Sprintf("udp://:%d", port)
	}
	return urls, nil
}

func setupSignalHandler(lg *log.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		lg.Warn("caught signal, exiting")
		os.Exit(int(errs.UnknownFailure))
	}()
}

// searchArea and a flag placed somewhere inside it describe what the fleet
// looks for. Real deployments would size and site these from mission
// planning tools; here they're the module's compiled-in default.
func searchArea() polygon.Polygon {
	return polygon.New(flagsrc.DefaultPolygonVertices)
}

// buildFleet stands in for the real autopilot transport (out of scope per
// the capability table in §6): one in-memory fake vehicle per requested
// port, until a real UDP/MAVLink backend is wired against the same
// transport.VehicleLink interface.
func buildFleet(urls []string) *transport.Fake {
	vehicles := make([]*transport.FakeVehicle, len(urls))
	for i := range urls {
		vehicles[i] = transport.NewFakeVehicle(uint(i + 1))
	}
	return transport.NewFake(vehicles...)
}

func run(ctx context.Context, urls []string, lg *log.Logger) errs.Code {
	f := buildFleet(urls)

	if err := fleet.Connect(ctx, f, urls); err != nil {
		lg.Errorf("connecting to fleet: %v", err)
		return errs.CodeFor(err)
	}

	discovered, err := fleet.Discover(ctx, f)
	if err != nil {
		lg.Errorf("discovering systems: %v", err)
		return errs.CodeFor(err)
	}

	q, err := fleet.Quorum(len(discovered), config.PercentageDronesRequired)
	if err != nil {
		lg.Errorf("quorum not met: %v", err)
		return errs.CodeFor(err)
	}

	area := searchArea()
	planner := mission.NewParallelSweep(area, config.SeparationM)
	flag, err := flagsrc.NewRandomPolyDefault(nil)
	if err != nil {
		lg.Errorf("placing flag: %v", err)
		return errs.MissionFailure
	}
	lg.Infof("flag placed at %v", flag.Position())

	state := operation.NewState()
	searchState := &search.State{}
	uploadLock := &util.LoggingMutex{}

	var directive operation.Directive
	var once sync.Once
	barrier := operation.NewBarrier(len(discovered), func(generation int) operation.Directive {
		name, code, critical := state.Snapshot()
		lg.Debugf("barrier release %d: stage=%q code=%v critical=%v", generation, name, code, critical)
		if critical {
			d := operation.AbortWithCode(code)
			once.Do(func() { directive = d })
			return d
		}
		return operation.Continue
	})

	var wg sync.WaitGroup
	for i, link := range discovered {
		wg.Add(1)
		go func(systemIndex uint, link transport.VehicleLink) {
			defer wg.Done()
			h := fleet.New(link, systemIndex, uint(len(discovered)), planner, state, barrier, q, searchState, flag.Position(), uploadLock, lg)
			if err := h.Run(ctx); err != nil {
				lg.Warnf("system %d exited: %v", link.SystemID(), err)
			}
		}(uint(i+1), link)
	}

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()

	select {
	case <-done:
	case d := <-barrier.Directives():
		lg.Errorf("run aborted: code=%v", d.Code)
		return d.Code
	}

	if directive.Abort {
		return directive.Code
	}
	return errs.Ok
}
