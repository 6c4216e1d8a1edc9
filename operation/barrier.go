// operation/barrier.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package operation drives every vehicle through the same ordered stage
// list, synchronized stage-by-stage by a fleet-wide barrier, and tracks the
// shared state a completion callback inspects on each release.
package operation

import (
	"sync"

	"github.com/pabloteleco22/flagsearch-go/errs"
)

// Directive is what a barrier's completion callback hands back to the main
// thread: either keep going, or abort the whole run with a code.
type Directive struct {
	Abort bool
	Code  errs.Code
}

// Continue is the non-aborting directive.
var Continue = Directive{}

// AbortWithCode builds a directive that terminates the run.
func AbortWithCode(code errs.Code) Directive {
	return Directive{Abort: true, Code: code}
}

// CompletionFunc runs once per barrier release, reading whatever shared
// state the caller closed over, and decides whether the run should abort.
type CompletionFunc func(generation int) Directive

// Barrier is a fleet-wide rendezvous point with arrive-and-wait and
// arrive-and-drop semantics: a generation counter guarded by a sync.Cond,
// since the standard library has no barrier primitive. Every still-live
// participant must arrive (or drop) before any of them proceeds past the
// current generation.
type Barrier struct {
	mu           sync.Mutex
	cond         *sync.Cond
	participants int
	arrived      int
	generation   int
	onRelease    CompletionFunc
	directives   chan Directive
}

// NewBarrier builds a barrier for the given participant count. onRelease,
// if non-nil, is invoked by whichever goroutine triggers a release, before
// the waiting goroutines are woken.
func NewBarrier(participants int, onRelease CompletionFunc) *Barrier {
	b := &Barrier{
		participants: participants,
		onRelease:    onRelease,
		directives:   make(chan Directive, 16),
	}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Directives is the channel the main thread reads abort directives from.
func (b *Barrier) Directives() <-chan Directive {
	return b.directives
}

// Participants reports the current (post-drop) participant count.
func (b *Barrier) Participants() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.participants
}

// release must be called with b.mu held. It runs the completion callback,
// advances the generation, and wakes every waiter.
func (b *Barrier) release() {
	d := Continue
	if b.onRelease != nil {
		d = b.onRelease(b.generation)
	}
	b.generation++
	b.arrived = 0
	b.cond.Broadcast()

	if d.Abort {
		select {
		case b.directives <- d:
		default:
		}
	}
}

// ArriveAndWait marks the stage OK for this caller and blocks until every
// other still-participating caller has also arrived (or dropped).
func (b *Barrier) ArriveAndWait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	generation := b.generation
	b.arrived++
	if b.participants > 0 && b.arrived >= b.participants {
		b.release()
		return
	}
	for b.generation == generation {
		b.cond.Wait()
	}
}

// ArriveAndDrop withdraws the caller from the barrier permanently: it never
// counts toward the participant total again, and the caller must not call
// ArriveAndWait or ArriveAndDrop on this barrier afterward.
func (b *Barrier) ArriveAndDrop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.participants--
	if b.participants <= 0 {
		b.release()
		return
	}
	if b.arrived >= b.participants {
		b.release()
	}
}
