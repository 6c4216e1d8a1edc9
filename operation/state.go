// operation/state.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package operation

import (
	"sync"

	"github.com/pabloteleco22/flagsearch-go/errs"
)

// State is the OperationState shared across every vehicle of one fleet
// run: the currently executing stage name, the most recent non-OK code
// observed during that stage, and whether the run has gone critical.
type State struct {
	mu       sync.Mutex
	name     string
	code     errs.Code
	critical bool
}

// NewState builds an empty, non-critical state with no current stage.
func NewState() *State {
	return &State{}
}

// SetStage records the name of the stage a vehicle is about to execute. The
// first vehicle to enter a new stage resets code to Ok.
func (s *State) SetStage(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.name != name {
		s.name = name
		s.code = errs.Ok
	}
}

// SetCode records a non-OK code observed during the current stage.
func (s *State) SetCode(code errs.Code) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if code != errs.Ok {
		s.code = code
	}
}

// SetCritical marks the run critical. Once set it never clears.
func (s *State) SetCritical() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.critical = true
}

// Snapshot returns the current stage name, code, and critical flag.
func (s *State) Snapshot() (name string, code errs.Code, critical bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name, s.code, s.critical
}
