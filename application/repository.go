package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals the requested submission does not exist.
var ErrNotFound = errors.New("application: not found")

// Repository handles data access for the three submission families.
type Repository interface {
	InsertRider(ctx context.Context, app RiderApplication) (RiderApplication, error)
	ListRiders(ctx context.Context) ([]RiderApplication, error)
	GetRider(ctx context.Context, id string) (RiderApplication, error)
	ReviewRider(ctx context.Context, id string, params ReviewParams, updatedAt time.Time) (RiderApplication, error)

	InsertContractor(ctx context.Context, app ContractorApplication) (ContractorApplication, error)
	ListContractors(ctx context.Context) ([]ContractorApplication, error)
	GetContractor(ctx context.Context, id string) (ContractorApplication, error)
	ReviewContractor(ctx context.Context, id string, params ReviewParams, updatedAt time.Time) (ContractorApplication, error)

	InsertInquiry(ctx context.Context, inq BusinessInquiry) (BusinessInquiry, error)
	ListInquiries(ctx context.Context) ([]BusinessInquiry, error)
	GetInquiry(ctx context.Context, id string) (BusinessInquiry, error)
	ReviewInquiry(ctx context.Context, id string, params ReviewParams, updatedAt time.Time) (BusinessInquiry, error)
}

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository wires a pgxpool-backed repository implementation.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const riderColumns = `id, full_name, email, phone, nationality, city, visa_status, license_type,
	vehicle_type, years_of_experience, availability, preferred_area, languages, notes,
	status, admin_notes, created_at, updated_at`

// InsertRider persists a validated rider application.
func (r *PGRepository) InsertRider(ctx context.Context, app RiderApplication) (RiderApplication, error) {
	insertSQL := fmt.Sprintf(`
		INSERT INTO rider_applications (%s)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		RETURNING %s
	`, riderColumns, riderColumns)

	created, err := scanRider(r.pool.QueryRow(ctx, insertSQL,
		app.ID, app.FullName, app.Email, app.Phone, app.Nationality, app.City,
		app.VisaStatus, app.LicenseType, app.VehicleType, app.YearsOfExperience,
		app.Availability, app.PreferredArea, app.Languages, app.Notes,
		app.Status, app.AdminNotes, app.CreatedAt, app.UpdatedAt,
	))
	if err != nil {
		return RiderApplication{}, fmt.Errorf("application: insert rider: %w", err)
	}
	return created, nil
}

// ListRiders returns every rider application, newest first.
func (r *PGRepository) ListRiders(ctx context.Context) ([]RiderApplication, error) {
	listSQL := fmt.Sprintf(`SELECT %s FROM rider_applications ORDER BY created_at DESC`, riderColumns)

	rows, err := r.pool.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("application: list riders: %w", err)
	}
	defer rows.Close()

	apps := []RiderApplication{}
	for rows.Next() {
		app, err := scanRider(rows)
		if err != nil {
			return nil, fmt.Errorf("application: scan rider: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("application: iterate riders: %w", err)
	}
	return apps, nil
}

// GetRider fetches a rider application by id.
func (r *PGRepository) GetRider(ctx context.Context, id string) (RiderApplication, error) {
	getSQL := fmt.Sprintf(`SELECT %s FROM rider_applications WHERE id = $1`, riderColumns)

	app, err := scanRider(r.pool.QueryRow(ctx, getSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RiderApplication{}, ErrNotFound
		}
		return RiderApplication{}, fmt.Errorf("application: get rider: %w", err)
	}
	return app, nil
}

// ReviewRider applies a status/notes patch to a rider application. Fields
// left nil in params keep their stored values.
func (r *PGRepository) ReviewRider(ctx context.Context, id string, params ReviewParams, updatedAt time.Time) (RiderApplication, error) {
	reviewSQL := fmt.Sprintf(`
		UPDATE rider_applications
		SET status = COALESCE($2, status),
		    admin_notes = COALESCE($3, admin_notes),
		    updated_at = $4
		WHERE id = $1
		RETURNING %s
	`, riderColumns)

	app, err := scanRider(r.pool.QueryRow(ctx, reviewSQL, id, statusArg(params.Status), params.AdminNotes, updatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RiderApplication{}, ErrNotFound
		}
		return RiderApplication{}, fmt.Errorf("application: review rider: %w", err)
	}
	return app, nil
}

func scanRider(row pgx.Row) (RiderApplication, error) {
	var app RiderApplication
	var status string
	err := row.Scan(
		&app.ID, &app.FullName, &app.Email, &app.Phone, &app.Nationality, &app.City,
		&app.VisaStatus, &app.LicenseType, &app.VehicleType, &app.YearsOfExperience,
		&app.Availability, &app.PreferredArea, &app.Languages, &app.Notes,
		&status, &app.AdminNotes, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return RiderApplication{}, err
	}
	app.Status = Status(status)
	return app, nil
}

const contractorColumns = `id, company_name, contact_name, email, phone, trade_license, emirate,
	motorcycles, cars, vans, trucks, bicycles, total_drivers, years_in_business,
	insurance_coverage, notes, status, admin_notes, created_at, updated_at`

// InsertContractor persists a validated contractor application.
func (r *PGRepository) InsertContractor(ctx context.Context, app ContractorApplication) (ContractorApplication, error) {
	insertSQL := fmt.Sprintf(`
		INSERT INTO contractor_applications (%s)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
		RETURNING %s
	`, contractorColumns, contractorColumns)

	created, err := scanContractor(r.pool.QueryRow(ctx, insertSQL,
		app.ID, app.CompanyName, app.ContactName, app.Email, app.Phone,
		app.TradeLicense, app.Emirate, app.Motorcycles, app.Cars, app.Vans,
		app.Trucks, app.Bicycles, app.TotalDrivers, app.YearsInBusiness,
		app.InsuranceCoverage, app.Notes, app.Status, app.AdminNotes,
		app.CreatedAt, app.UpdatedAt,
	))
	if err != nil {
		return ContractorApplication{}, fmt.Errorf("application: insert contractor: %w", err)
	}
	return created, nil
}

// ListContractors returns every contractor application, newest first.
func (r *PGRepository) ListContractors(ctx context.Context) ([]ContractorApplication, error) {
	listSQL := fmt.Sprintf(`SELECT %s FROM contractor_applications ORDER BY created_at DESC`, contractorColumns)

	rows, err := r.pool.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("application: list contractors: %w", err)
	}
	defer rows.Close()

	apps := []ContractorApplication{}
	for rows.Next() {
		app, err := scanContractor(rows)
		if err != nil {
			return nil, fmt.Errorf("application: scan contractor: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("application: iterate contractors: %w", err)
	}
	return apps, nil
}

// GetContractor fetches a contractor application by id.
func (r *PGRepository) GetContractor(ctx context.Context, id string) (ContractorApplication, error) {
	getSQL := fmt.Sprintf(`SELECT %s FROM contractor_applications WHERE id = $1`, contractorColumns)

	app, err := scanContractor(r.pool.QueryRow(ctx, getSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ContractorApplication{}, ErrNotFound
		}
		return ContractorApplication{}, fmt.Errorf("application: get contractor: %w", err)
	}
	return app, nil
}

// ReviewContractor applies a status/notes patch to a contractor application.
func (r *PGRepository) ReviewContractor(ctx context.Context, id string, params ReviewParams, updatedAt time.Time) (ContractorApplication, error) {
	reviewSQL := fmt.Sprintf(`
		UPDATE contractor_applications
		SET status = COALESCE($2, status),
		    admin_notes = COALESCE($3, admin_notes),
		    updated_at = $4
		WHERE id = $1
		RETURNING %s
	`, contractorColumns)

	app, err := scanContractor(r.pool.QueryRow(ctx, reviewSQL, id, statusArg(params.Status), params.AdminNotes, updatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ContractorApplication{}, ErrNotFound
		}
		return ContractorApplication{}, fmt.Errorf("application: review contractor: %w", err)
	}
	return app, nil
}

func scanContractor(row pgx.Row) (ContractorApplication, error) {
	var app ContractorApplication
	var status string
	err := row.Scan(
		&app.ID, &app.CompanyName, &app.ContactName, &app.Email, &app.Phone,
		&app.TradeLicense, &app.Emirate, &app.Motorcycles, &app.Cars, &app.Vans,
		&app.Trucks, &app.Bicycles, &app.TotalDrivers, &app.YearsInBusiness,
		&app.InsuranceCoverage, &app.Notes, &status, &app.AdminNotes,
		&app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return ContractorApplication{}, err
	}
	app.Status = Status(status)
	return app, nil
}

const inquiryColumns = `id, company_name, contact_name, email, phone, industry, company_size,
	emirate, delivery_volume, vehicle_types, riders_needed, start_date, contract_duration,
	special_requirements, status, admin_notes, created_at, updated_at`

// InsertInquiry persists a validated business inquiry.
func (r *PGRepository) InsertInquiry(ctx context.Context, inq BusinessInquiry) (BusinessInquiry, error) {
	insertSQL := fmt.Sprintf(`
		INSERT INTO business_inquiries (%s)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		RETURNING %s
	`, inquiryColumns, inquiryColumns)

	created, err := scanInquiry(r.pool.QueryRow(ctx, insertSQL,
		inq.ID, inq.CompanyName, inq.ContactName, inq.Email, inq.Phone,
		inq.Industry, inq.CompanySize, inq.Emirate, inq.DeliveryVolume,
		inq.VehicleTypes, inq.RidersNeeded, inq.StartDate, inq.ContractDuration,
		inq.SpecialRequirements, inq.Status, inq.AdminNotes,
		inq.CreatedAt, inq.UpdatedAt,
	))
	if err != nil {
		return BusinessInquiry{}, fmt.Errorf("application: insert inquiry: %w", err)
	}
	return created, nil
}

// ListInquiries returns every business inquiry, newest first.
func (r *PGRepository) ListInquiries(ctx context.Context) ([]BusinessInquiry, error) {
	listSQL := fmt.Sprintf(`SELECT %s FROM business_inquiries ORDER BY created_at DESC`, inquiryColumns)

	rows, err := r.pool.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("application: list inquiries: %w", err)
	}
	defer rows.Close()

	inqs := []BusinessInquiry{}
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("application: scan inquiry: %w", err)
		}
		inqs = append(inqs, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("application: iterate inquiries: %w", err)
	}
	return inqs, nil
}

// GetInquiry fetches a business inquiry by id.
func (r *PGRepository) GetInquiry(ctx context.Context, id string) (BusinessInquiry, error) {
	getSQL := fmt.Sprintf(`SELECT %s FROM business_inquiries WHERE id = $1`, inquiryColumns)

	inq, err := scanInquiry(r.pool.QueryRow(ctx, getSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return BusinessInquiry{}, ErrNotFound
		}
		return BusinessInquiry{}, fmt.Errorf("application: get inquiry: %w", err)
	}
	return inq, nil
}

// ReviewInquiry applies a status/notes patch to a business inquiry.
func (r *PGRepository) ReviewInquiry(ctx context.Context, id string, params ReviewParams, updatedAt time.Time) (BusinessInquiry, error) {
	reviewSQL := fmt.Sprintf(`
		UPDATE business_inquiries
		SET status = COALESCE($2, status),
		    admin_notes = COALESCE($3, admin_notes),
		    updated_at = $4
		WHERE id = $1
		RETURNING %s
	`, inquiryColumns)

	inq, err := scanInquiry(r.pool.QueryRow(ctx, reviewSQL, id, statusArg(params.Status), params.AdminNotes, updatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return BusinessInquiry{}, ErrNotFound
		}
		return BusinessInquiry{}, fmt.Errorf("application: review inquiry: %w", err)
	}
	return inq, nil
}

func scanInquiry(row pgx.Row) (BusinessInquiry, error) {
	var inq BusinessInquiry
	var status string
	err := row.Scan(
		&inq.ID, &inq.CompanyName, &inq.ContactName, &inq.Email, &inq.Phone,
		&inq.Industry, &inq.CompanySize, &inq.Emirate, &inq.DeliveryVolume,
		&inq.VehicleTypes, &inq.RidersNeeded, &inq.StartDate, &inq.ContractDuration,
		&inq.SpecialRequirements, &status, &inq.AdminNotes,
		&inq.CreatedAt, &inq.UpdatedAt,
	)
	if err != nil {
		return BusinessInquiry{}, err
	}
	inq.Status = Status(status)
	return inq, nil
}

func statusArg(s *Status) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
