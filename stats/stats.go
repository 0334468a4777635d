// Package stats aggregates dashboard counts across every entity family.
// Each count is an independent query; one failing family never blanks the
// whole dashboard.
package stats

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Counter exposes one count query per entity family.
type Counter interface {
	RiderApplications(ctx context.Context) (int, error)
	ContractorApplications(ctx context.Context) (int, error)
	BusinessInquiries(ctx context.Context) (int, error)
	PendingApplications(ctx context.Context) (int, error)
	Drivers(ctx context.Context) (int, error)
	Contractors(ctx context.Context) (int, error)
	Clients(ctx context.Context) (int, error)
	Vehicles(ctx context.Context) (int, error)
	Assignments(ctx context.Context) (int, error)
}

// Snapshot is one point-in-time set of dashboard counts. Incomplete is set
// when at least one count query failed; failed counts read as zero.
type Snapshot struct {
	Riders            int  `json:"riders"`
	Contractors       int  `json:"contractors"`
	Inquiries         int  `json:"inquiries"`
	Pending           int  `json:"pending"`
	Drivers           int  `json:"drivers"`
	ActiveContractors int  `json:"activeContractors"`
	Clients           int  `json:"clients"`
	Vehicles          int  `json:"vehicles"`
	Assignments       int  `json:"assignments"`
	Incomplete        bool `json:"incomplete,omitempty"`
}

// Service runs the count queries concurrently.
type Service struct {
	counter Counter
	log     *zap.Logger
}

// NewService builds a stats service.
func NewService(counter Counter, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{counter: counter, log: log}
}

// Snapshot collects every family count. Individual failures are logged and
// flagged, never propagated, so a broken table cannot take the stats
// endpoint down with it.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	failed := make(chan string, 9)

	g, ctx := errgroup.WithContext(ctx)
	count := func(name string, dst *int, fn func(context.Context) (int, error)) {
		g.Go(func() error {
			n, err := fn(ctx)
			if err != nil {
				s.log.Error("stats count failed", zap.String("family", name), zap.Error(err))
				failed <- name
				return nil
			}
			*dst = n
			return nil
		})
	}

	count("riders", &snap.Riders, s.counter.RiderApplications)
	count("contractors", &snap.Contractors, s.counter.ContractorApplications)
	count("inquiries", &snap.Inquiries, s.counter.BusinessInquiries)
	count("pending", &snap.Pending, s.counter.PendingApplications)
	count("drivers", &snap.Drivers, s.counter.Drivers)
	count("activeContractors", &snap.ActiveContractors, s.counter.Contractors)
	count("clients", &snap.Clients, s.counter.Clients)
	count("vehicles", &snap.Vehicles, s.counter.Vehicles)
	count("assignments", &snap.Assignments, s.counter.Assignments)

	_ = g.Wait()
	close(failed)
	snap.Incomplete = len(failed) > 0

	return snap, nil
}
