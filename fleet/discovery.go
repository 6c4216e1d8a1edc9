// fleet/discovery.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package fleet

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pabloteleco22/flagsearch-go/config"
	"github.com/pabloteleco22/flagsearch-go/errs"
	"github.com/pabloteleco22/flagsearch-go/quorum"
	"github.com/pabloteleco22/flagsearch-go/transport"
)

// Connect adds one connection per URL concurrently, failing on the first
// connection error.
func Connect(ctx context.Context, f transport.Fleet, urls []string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, url := range urls {
		url := url
		g.Go(func() error {
			if err := f.AddAnyConnection(ctx, url); err != nil {
				return fmt.Errorf("%w: %s: %v", errs.ErrConnectionFailed, url, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Discover waits for vehicles to announce themselves: it stops after
// MaxWaitingTime total, or sooner once RefreshTime has passed without a new
// system appearing. It returns every system found, in discovery order.
func Discover(ctx context.Context, f transport.Fleet) ([]transport.VehicleLink, error) {
	ctx, cancel := context.WithTimeout(ctx, config.MaxWaitingTime)
	defer cancel()

	ch, err := f.DiscoverSystems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrConnectionFailed, err)
	}

	var found []transport.VehicleLink
	idle := time.NewTimer(config.RefreshTime)
	defer idle.Stop()

	for {
		select {
		case link, ok := <-ch:
			if !ok {
				return found, nil
			}
			found = append(found, link)
			if !idle.Stop() {
				<-idle.C
			}
			idle.Reset(config.RefreshTime)
		case <-idle.C:
			return found, nil
		case <-ctx.Done():
			return found, nil
		}
	}
}

// Quorum builds a tracker over the discovered fleet size, already
// initialized with every discovered system present, and reports whether
// that count alone satisfies the required percentage. An empty fleet is
// always reported as ErrNoSystemsFound.
func Quorum(discovered int, percentage float64) (*quorum.Tracker, error) {
	q := quorum.New(float64(discovered), percentage)
	q.Append(float64(discovered))
	if discovered == 0 || !q.HasQuorum() {
		return q, errs.ErrNoSystemsFound
	}
	return q, nil
}
