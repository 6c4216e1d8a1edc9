// quorum/quorum.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package quorum tracks how many vehicles are still participating in a run
// and whether that count still clears the fleet's required percentage.
package quorum

import "sync"

// Tracker protects a system counter with a lock and reports whether it
// still clears the required percentage of the originally expected fleet.
type Tracker struct {
	mu       sync.Mutex
	expected float64
	required float64
	count    float64
}

// New builds a tracker over an expected fleet size, requiring percentage
// percent of it (0-100) to still be present for has_quorum to hold.
func New(expected float64, percentage float64) *Tracker {
	return &Tracker{
		expected: expected,
		required: expected * percentage / 100,
		count:    0,
	}
}

// Append adds num to the tracked count.
func (t *Tracker) Append(num float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.count += num
}

// Subtract removes num from the tracked count.
func (t *Tracker) Subtract(num float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.count -= num
}

// Count returns the current tracked count.
func (t *Tracker) Count() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// HasQuorum reports whether the current count still meets the required
// share of the expected fleet.
func (t *Tracker) HasQuorum() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count >= t.required
}

// Required returns the minimum count needed for HasQuorum to hold.
func (t *Tracker) Required() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.required
}
