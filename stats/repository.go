package stats

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGCounter implements Counter with one COUNT query per family.
type PGCounter struct {
	pool *pgxpool.Pool
}

// NewCounter wires a pgxpool-backed counter implementation.
func NewCounter(pool *pgxpool.Pool) *PGCounter {
	return &PGCounter{pool: pool}
}

func (c *PGCounter) RiderApplications(ctx context.Context) (int, error) {
	return c.count(ctx, `SELECT COUNT(*) FROM rider_applications`)
}

func (c *PGCounter) ContractorApplications(ctx context.Context) (int, error) {
	return c.count(ctx, `SELECT COUNT(*) FROM contractor_applications`)
}

func (c *PGCounter) BusinessInquiries(ctx context.Context) (int, error) {
	return c.count(ctx, `SELECT COUNT(*) FROM business_inquiries`)
}

// PendingApplications counts pending rows across all three submission
// families.
func (c *PGCounter) PendingApplications(ctx context.Context) (int, error) {
	return c.count(ctx, `
		SELECT (SELECT COUNT(*) FROM rider_applications WHERE status = 'pending')
		     + (SELECT COUNT(*) FROM contractor_applications WHERE status = 'pending')
		     + (SELECT COUNT(*) FROM business_inquiries WHERE status = 'pending')
	`)
}

func (c *PGCounter) Drivers(ctx context.Context) (int, error) {
	return c.count(ctx, `SELECT COUNT(*) FROM drivers`)
}

func (c *PGCounter) Contractors(ctx context.Context) (int, error) {
	return c.count(ctx, `SELECT COUNT(*) FROM contractors`)
}

func (c *PGCounter) Clients(ctx context.Context) (int, error) {
	return c.count(ctx, `SELECT COUNT(*) FROM clients`)
}

func (c *PGCounter) Vehicles(ctx context.Context) (int, error) {
	return c.count(ctx, `SELECT COUNT(*) FROM vehicles`)
}

func (c *PGCounter) Assignments(ctx context.Context) (int, error) {
	return c.count(ctx, `SELECT COUNT(*) FROM assignments`)
}

func (c *PGCounter) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := c.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats: count: %w", err)
	}
	return n, nil
}
