package fleet

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals the requested fleet record does not exist.
var ErrNotFound = errors.New("fleet: not found")

// AssignmentRow is an assignment joined against its referenced records.
// Nil names mean the reference is dangling.
type AssignmentRow struct {
	Assignment
	DriverName   *string
	ClientName   *string
	VehiclePlate *string
}

// Repository handles data access for every fleet entity family.
type Repository interface {
	InsertDriver(ctx context.Context, d Driver) (Driver, error)
	ListDrivers(ctx context.Context) ([]Driver, error)
	GetDriver(ctx context.Context, id string) (Driver, error)
	UpdateDriver(ctx context.Context, d Driver) (Driver, error)
	DeleteDriver(ctx context.Context, id string) error

	InsertContractor(ctx context.Context, c Contractor) (Contractor, error)
	ListContractors(ctx context.Context) ([]Contractor, error)
	GetContractor(ctx context.Context, id string) (Contractor, error)
	UpdateContractor(ctx context.Context, c Contractor) (Contractor, error)
	DeleteContractor(ctx context.Context, id string) error

	InsertClient(ctx context.Context, c Client) (Client, error)
	ListClients(ctx context.Context) ([]Client, error)
	GetClient(ctx context.Context, id string) (Client, error)
	UpdateClient(ctx context.Context, c Client) (Client, error)
	DeleteClient(ctx context.Context, id string) error

	InsertVehicle(ctx context.Context, v Vehicle) (Vehicle, error)
	ListVehicles(ctx context.Context) ([]Vehicle, error)
	GetVehicle(ctx context.Context, id string) (Vehicle, error)
	UpdateVehicle(ctx context.Context, v Vehicle) (Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error

	InsertAssignment(ctx context.Context, a Assignment) (Assignment, error)
	ListAssignments(ctx context.Context) ([]AssignmentRow, error)
	GetAssignment(ctx context.Context, id string) (AssignmentRow, error)
	UpdateAssignment(ctx context.Context, a Assignment) (Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error
}

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository wires a pgxpool-backed repository implementation.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const driverColumns = `id, full_name, email, phone, nationality, emirate, emirates_id,
	visa_number, visa_expiry, license_number, license_expiry, vehicle_type,
	employment_type, join_date, basic_salary, accommodation, transport,
	other_allowance, bank_name, iban, status, created_at, updated_at`

func (r *PGRepository) InsertDriver(ctx context.Context, d Driver) (Driver, error) {
	insertSQL := fmt.Sprintf(`
		INSERT INTO drivers (%s)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
		RETURNING %s
	`, driverColumns, driverColumns)

	created, err := scanDriver(r.pool.QueryRow(ctx, insertSQL,
		d.ID, d.FullName, d.Email, d.Phone, d.Nationality, d.Emirate, d.EmiratesID,
		d.VisaNumber, d.VisaExpiry, d.LicenseNumber, d.LicenseExpiry, d.VehicleType,
		d.EmploymentType, d.JoinDate, d.BasicSalary, d.Accommodation, d.Transport,
		d.OtherAllowance, d.BankName, d.IBAN, string(d.Status), d.CreatedAt, d.UpdatedAt,
	))
	if err != nil {
		return Driver{}, fmt.Errorf("fleet: insert driver: %w", err)
	}
	return created, nil
}

func (r *PGRepository) ListDrivers(ctx context.Context) ([]Driver, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT %s FROM drivers ORDER BY created_at DESC`, driverColumns))
	if err != nil {
		return nil, fmt.Errorf("fleet: list drivers: %w", err)
	}
	defer rows.Close()

	drivers := []Driver{}
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("fleet: scan driver: %w", err)
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fleet: iterate drivers: %w", err)
	}
	return drivers, nil
}

func (r *PGRepository) GetDriver(ctx context.Context, id string) (Driver, error) {
	d, err := scanDriver(r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM drivers WHERE id = $1`, driverColumns), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Driver{}, ErrNotFound
		}
		return Driver{}, fmt.Errorf("fleet: get driver: %w", err)
	}
	return d, nil
}

func (r *PGRepository) UpdateDriver(ctx context.Context, d Driver) (Driver, error) {
	updateSQL := fmt.Sprintf(`
		UPDATE drivers SET full_name=$2, email=$3, phone=$4, nationality=$5, emirate=$6,
			emirates_id=$7, visa_number=$8, visa_expiry=$9, license_number=$10,
			license_expiry=$11, vehicle_type=$12, employment_type=$13, join_date=$14,
			basic_salary=$15, accommodation=$16, transport=$17, other_allowance=$18,
			bank_name=$19, iban=$20, status=$21, updated_at=$22
		WHERE id = $1
		RETURNING %s
	`, driverColumns)

	updated, err := scanDriver(r.pool.QueryRow(ctx, updateSQL,
		d.ID, d.FullName, d.Email, d.Phone, d.Nationality, d.Emirate, d.EmiratesID,
		d.VisaNumber, d.VisaExpiry, d.LicenseNumber, d.LicenseExpiry, d.VehicleType,
		d.EmploymentType, d.JoinDate, d.BasicSalary, d.Accommodation, d.Transport,
		d.OtherAllowance, d.BankName, d.IBAN, string(d.Status), d.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Driver{}, ErrNotFound
		}
		return Driver{}, fmt.Errorf("fleet: update driver: %w", err)
	}
	return updated, nil
}

func (r *PGRepository) DeleteDriver(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "drivers", id)
}

func scanDriver(row pgx.Row) (Driver, error) {
	var d Driver
	var status string
	err := row.Scan(
		&d.ID, &d.FullName, &d.Email, &d.Phone, &d.Nationality, &d.Emirate, &d.EmiratesID,
		&d.VisaNumber, &d.VisaExpiry, &d.LicenseNumber, &d.LicenseExpiry, &d.VehicleType,
		&d.EmploymentType, &d.JoinDate, &d.BasicSalary, &d.Accommodation, &d.Transport,
		&d.OtherAllowance, &d.BankName, &d.IBAN, &status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return Driver{}, err
	}
	d.Status = EntityStatus(status)
	return d, nil
}

const contractorColumns = `id, company_name, trade_license, emirate, contact_name, email, phone,
	contract_start, contract_end, insurance_coverage, fleet_size, driver_count,
	bank_name, iban, status, created_at, updated_at`

func (r *PGRepository) InsertContractor(ctx context.Context, c Contractor) (Contractor, error) {
	insertSQL := fmt.Sprintf(`
		INSERT INTO contractors (%s)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		RETURNING %s
	`, contractorColumns, contractorColumns)

	created, err := scanContractor(r.pool.QueryRow(ctx, insertSQL,
		c.ID, c.CompanyName, c.TradeLicense, c.Emirate, c.ContactName, c.Email, c.Phone,
		c.ContractStart, c.ContractEnd, c.InsuranceCoverage, c.FleetSize, c.DriverCount,
		c.BankName, c.IBAN, string(c.Status), c.CreatedAt, c.UpdatedAt,
	))
	if err != nil {
		return Contractor{}, fmt.Errorf("fleet: insert contractor: %w", err)
	}
	return created, nil
}

func (r *PGRepository) ListContractors(ctx context.Context) ([]Contractor, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT %s FROM contractors ORDER BY created_at DESC`, contractorColumns))
	if err != nil {
		return nil, fmt.Errorf("fleet: list contractors: %w", err)
	}
	defer rows.Close()

	contractors := []Contractor{}
	for rows.Next() {
		c, err := scanContractor(rows)
		if err != nil {
			return nil, fmt.Errorf("fleet: scan contractor: %w", err)
		}
		contractors = append(contractors, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fleet: iterate contractors: %w", err)
	}
	return contractors, nil
}

func (r *PGRepository) GetContractor(ctx context.Context, id string) (Contractor, error) {
	c, err := scanContractor(r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM contractors WHERE id = $1`, contractorColumns), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Contractor{}, ErrNotFound
		}
		return Contractor{}, fmt.Errorf("fleet: get contractor: %w", err)
	}
	return c, nil
}

func (r *PGRepository) UpdateContractor(ctx context.Context, c Contractor) (Contractor, error) {
	updateSQL := fmt.Sprintf(`
		UPDATE contractors SET company_name=$2, trade_license=$3, emirate=$4, contact_name=$5,
			email=$6, phone=$7, contract_start=$8, contract_end=$9, insurance_coverage=$10,
			fleet_size=$11, driver_count=$12, bank_name=$13, iban=$14, status=$15, updated_at=$16
		WHERE id = $1
		RETURNING %s
	`, contractorColumns)

	updated, err := scanContractor(r.pool.QueryRow(ctx, updateSQL,
		c.ID, c.CompanyName, c.TradeLicense, c.Emirate, c.ContactName, c.Email, c.Phone,
		c.ContractStart, c.ContractEnd, c.InsuranceCoverage, c.FleetSize, c.DriverCount,
		c.BankName, c.IBAN, string(c.Status), c.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Contractor{}, ErrNotFound
		}
		return Contractor{}, fmt.Errorf("fleet: update contractor: %w", err)
	}
	return updated, nil
}

func (r *PGRepository) DeleteContractor(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "contractors", id)
}

func scanContractor(row pgx.Row) (Contractor, error) {
	var c Contractor
	var status string
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.TradeLicense, &c.Emirate, &c.ContactName, &c.Email, &c.Phone,
		&c.ContractStart, &c.ContractEnd, &c.InsuranceCoverage, &c.FleetSize, &c.DriverCount,
		&c.BankName, &c.IBAN, &status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return Contractor{}, err
	}
	c.Status = EntityStatus(status)
	return c, nil
}

const clientColumns = `id, company_name, industry, emirate, address, contract_start, contract_end,
	service_requirements, primary_contact_name, primary_contact_email, primary_contact_phone,
	ops_contact_name, ops_contact_email, ops_contact_phone, billing_contact_name,
	billing_contact_email, billing_contact_phone, billing_terms, status, created_at, updated_at`

func (r *PGRepository) InsertClient(ctx context.Context, c Client) (Client, error) {
	insertSQL := fmt.Sprintf(`
		INSERT INTO clients (%s)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
		RETURNING %s
	`, clientColumns, clientColumns)

	created, err := scanClient(r.pool.QueryRow(ctx, insertSQL,
		c.ID, c.CompanyName, c.Industry, c.Emirate, c.Address, c.ContractStart, c.ContractEnd,
		c.ServiceRequirements, c.PrimaryContactName, c.PrimaryContactEmail, c.PrimaryContactPhone,
		c.OpsContactName, c.OpsContactEmail, c.OpsContactPhone, c.BillingContactName,
		c.BillingContactEmail, c.BillingContactPhone, c.BillingTerms, string(c.Status),
		c.CreatedAt, c.UpdatedAt,
	))
	if err != nil {
		return Client{}, fmt.Errorf("fleet: insert client: %w", err)
	}
	return created, nil
}

func (r *PGRepository) ListClients(ctx context.Context) ([]Client, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT %s FROM clients ORDER BY created_at DESC`, clientColumns))
	if err != nil {
		return nil, fmt.Errorf("fleet: list clients: %w", err)
	}
	defer rows.Close()

	clients := []Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("fleet: scan client: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fleet: iterate clients: %w", err)
	}
	return clients, nil
}

func (r *PGRepository) GetClient(ctx context.Context, id string) (Client, error) {
	c, err := scanClient(r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM clients WHERE id = $1`, clientColumns), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Client{}, ErrNotFound
		}
		return Client{}, fmt.Errorf("fleet: get client: %w", err)
	}
	return c, nil
}

func (r *PGRepository) UpdateClient(ctx context.Context, c Client) (Client, error) {
	updateSQL := fmt.Sprintf(`
		UPDATE clients SET company_name=$2, industry=$3, emirate=$4, address=$5,
			contract_start=$6, contract_end=$7, service_requirements=$8,
			primary_contact_name=$9, primary_contact_email=$10, primary_contact_phone=$11,
			ops_contact_name=$12, ops_contact_email=$13, ops_contact_phone=$14,
			billing_contact_name=$15, billing_contact_email=$16, billing_contact_phone=$17,
			billing_terms=$18, status=$19, updated_at=$20
		WHERE id = $1
		RETURNING %s
	`, clientColumns)

	updated, err := scanClient(r.pool.QueryRow(ctx, updateSQL,
		c.ID, c.CompanyName, c.Industry, c.Emirate, c.Address, c.ContractStart, c.ContractEnd,
		c.ServiceRequirements, c.PrimaryContactName, c.PrimaryContactEmail, c.PrimaryContactPhone,
		c.OpsContactName, c.OpsContactEmail, c.OpsContactPhone, c.BillingContactName,
		c.BillingContactEmail, c.BillingContactPhone, c.BillingTerms, string(c.Status), c.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Client{}, ErrNotFound
		}
		return Client{}, fmt.Errorf("fleet: update client: %w", err)
	}
	return updated, nil
}

func (r *PGRepository) DeleteClient(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "clients", id)
}

func scanClient(row pgx.Row) (Client, error) {
	var c Client
	var status string
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.Industry, &c.Emirate, &c.Address, &c.ContractStart, &c.ContractEnd,
		&c.ServiceRequirements, &c.PrimaryContactName, &c.PrimaryContactEmail, &c.PrimaryContactPhone,
		&c.OpsContactName, &c.OpsContactEmail, &c.OpsContactPhone, &c.BillingContactName,
		&c.BillingContactEmail, &c.BillingContactPhone, &c.BillingTerms, &status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return Client{}, err
	}
	c.Status = EntityStatus(status)
	return c, nil
}

const vehicleColumns = `id, type, make, model, year, plate_number, registration_expiry,
	insurance_expiry, ownership, status, created_at, updated_at`

func (r *PGRepository) InsertVehicle(ctx context.Context, v Vehicle) (Vehicle, error) {
	insertSQL := fmt.Sprintf(`
		INSERT INTO vehicles (%s)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING %s
	`, vehicleColumns, vehicleColumns)

	created, err := scanVehicle(r.pool.QueryRow(ctx, insertSQL,
		v.ID, v.Type, v.Make, v.Model, v.Year, v.PlateNumber, v.RegistrationExpiry,
		v.InsuranceExpiry, string(v.Ownership), string(v.Status), v.CreatedAt, v.UpdatedAt,
	))
	if err != nil {
		return Vehicle{}, fmt.Errorf("fleet: insert vehicle: %w", err)
	}
	return created, nil
}

func (r *PGRepository) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT %s FROM vehicles ORDER BY created_at DESC`, vehicleColumns))
	if err != nil {
		return nil, fmt.Errorf("fleet: list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := []Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("fleet: scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fleet: iterate vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *PGRepository) GetVehicle(ctx context.Context, id string) (Vehicle, error) {
	v, err := scanVehicle(r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM vehicles WHERE id = $1`, vehicleColumns), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Vehicle{}, ErrNotFound
		}
		return Vehicle{}, fmt.Errorf("fleet: get vehicle: %w", err)
	}
	return v, nil
}

func (r *PGRepository) UpdateVehicle(ctx context.Context, v Vehicle) (Vehicle, error) {
	updateSQL := fmt.Sprintf(`
		UPDATE vehicles SET type=$2, make=$3, model=$4, year=$5, plate_number=$6,
			registration_expiry=$7, insurance_expiry=$8, ownership=$9, status=$10, updated_at=$11
		WHERE id = $1
		RETURNING %s
	`, vehicleColumns)

	updated, err := scanVehicle(r.pool.QueryRow(ctx, updateSQL,
		v.ID, v.Type, v.Make, v.Model, v.Year, v.PlateNumber, v.RegistrationExpiry,
		v.InsuranceExpiry, string(v.Ownership), string(v.Status), v.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Vehicle{}, ErrNotFound
		}
		return Vehicle{}, fmt.Errorf("fleet: update vehicle: %w", err)
	}
	return updated, nil
}

func (r *PGRepository) DeleteVehicle(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "vehicles", id)
}

func scanVehicle(row pgx.Row) (Vehicle, error) {
	var v Vehicle
	var ownership, status string
	err := row.Scan(
		&v.ID, &v.Type, &v.Make, &v.Model, &v.Year, &v.PlateNumber, &v.RegistrationExpiry,
		&v.InsuranceExpiry, &ownership, &status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return Vehicle{}, err
	}
	v.Ownership = Ownership(ownership)
	v.Status = VehicleStatus(status)
	return v, nil
}

const assignmentColumns = `a.id, a.driver_id, a.client_id, a.vehicle_id, a.start_date, a.end_date,
	a.shift_type, a.notes, a.status, a.created_at, a.updated_at`

// assignmentJoinSQL resolves display names store-side. LEFT JOINs keep
// dangling soft references visible instead of dropping the row.
const assignmentJoinSQL = `
	SELECT ` + assignmentColumns + `, d.full_name, c.company_name, v.plate_number
	FROM assignments a
	LEFT JOIN drivers d ON d.id = a.driver_id
	LEFT JOIN clients c ON c.id = a.client_id
	LEFT JOIN vehicles v ON v.id = a.vehicle_id
`

func (r *PGRepository) InsertAssignment(ctx context.Context, a Assignment) (Assignment, error) {
	const insertSQL = `
		INSERT INTO assignments (id, driver_id, client_id, vehicle_id, start_date, end_date,
			shift_type, notes, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id, driver_id, client_id, vehicle_id, start_date, end_date,
			shift_type, notes, status, created_at, updated_at
	`

	created, err := scanAssignment(r.pool.QueryRow(ctx, insertSQL,
		a.ID, a.DriverID, a.ClientID, a.VehicleID, a.StartDate, a.EndDate,
		a.ShiftType, a.Notes, string(a.Status), a.CreatedAt, a.UpdatedAt,
	))
	if err != nil {
		return Assignment{}, fmt.Errorf("fleet: insert assignment: %w", err)
	}
	return created, nil
}

func (r *PGRepository) ListAssignments(ctx context.Context) ([]AssignmentRow, error) {
	rows, err := r.pool.Query(ctx, assignmentJoinSQL+` ORDER BY a.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("fleet: list assignments: %w", err)
	}
	defer rows.Close()

	result := []AssignmentRow{}
	for rows.Next() {
		row, err := scanAssignmentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("fleet: scan assignment: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fleet: iterate assignments: %w", err)
	}
	return result, nil
}

func (r *PGRepository) GetAssignment(ctx context.Context, id string) (AssignmentRow, error) {
	row, err := scanAssignmentRow(r.pool.QueryRow(ctx, assignmentJoinSQL+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return AssignmentRow{}, ErrNotFound
		}
		return AssignmentRow{}, fmt.Errorf("fleet: get assignment: %w", err)
	}
	return row, nil
}

func (r *PGRepository) UpdateAssignment(ctx context.Context, a Assignment) (Assignment, error) {
	const updateSQL = `
		UPDATE assignments SET driver_id=$2, client_id=$3, vehicle_id=$4, start_date=$5,
			end_date=$6, shift_type=$7, notes=$8, status=$9, updated_at=$10
		WHERE id = $1
		RETURNING id, driver_id, client_id, vehicle_id, start_date, end_date,
			shift_type, notes, status, created_at, updated_at
	`

	updated, err := scanAssignment(r.pool.QueryRow(ctx, updateSQL,
		a.ID, a.DriverID, a.ClientID, a.VehicleID, a.StartDate, a.EndDate,
		a.ShiftType, a.Notes, string(a.Status), a.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Assignment{}, ErrNotFound
		}
		return Assignment{}, fmt.Errorf("fleet: update assignment: %w", err)
	}
	return updated, nil
}

func (r *PGRepository) DeleteAssignment(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "assignments", id)
}

func scanAssignment(row pgx.Row) (Assignment, error) {
	var a Assignment
	var status string
	err := row.Scan(
		&a.ID, &a.DriverID, &a.ClientID, &a.VehicleID, &a.StartDate, &a.EndDate,
		&a.ShiftType, &a.Notes, &status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return Assignment{}, err
	}
	a.Status = AssignmentStatus(status)
	return a, nil
}

func scanAssignmentRow(row pgx.Row) (AssignmentRow, error) {
	var ar AssignmentRow
	var status string
	err := row.Scan(
		&ar.ID, &ar.DriverID, &ar.ClientID, &ar.VehicleID, &ar.StartDate, &ar.EndDate,
		&ar.ShiftType, &ar.Notes, &status, &ar.CreatedAt, &ar.UpdatedAt,
		&ar.DriverName, &ar.ClientName, &ar.VehiclePlate,
	)
	if err != nil {
		return AssignmentRow{}, err
	}
	ar.Status = AssignmentStatus(status)
	return ar, nil
}

// deleteByID removes one row and reports ErrNotFound when nothing matched.
// The allowed table names are fixed at the call sites.
func (r *PGRepository) deleteByID(ctx context.Context, table, id string) error {
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return fmt.Errorf("fleet: delete from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
