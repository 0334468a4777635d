package fleet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fleetflow/application"
	"fleetflow/validate"
)

// Service owns validation and lifecycle for the fleet entity families.
// Updates are last-write-wins; there is no version field, which is an
// accepted non-guarantee for this low-contention admin tool.
type Service struct {
	repo        Repository
	idGenerator func() string
	now         func() time.Time
}

// NewService builds a fleet service over the given repository.
func NewService(repo Repository) *Service {
	return &Service{
		repo:        repo,
		idGenerator: func() string { return uuid.NewString() },
		now:         time.Now,
	}
}

// WithIDGenerator overrides id generation, for tests.
func (s *Service) WithIDGenerator(gen func() string) *Service {
	s.idGenerator = gen
	return s
}

// WithClock overrides the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateDriverParams carries the full editable driver field set.
type CreateDriverParams struct {
	FullName       string
	Email          string
	Phone          string
	Nationality    string
	Emirate        string
	EmiratesID     string
	VisaNumber     string
	VisaExpiry     *time.Time
	LicenseNumber  string
	LicenseExpiry  *time.Time
	VehicleType    string
	EmploymentType string
	JoinDate       string
	BasicSalary    float64
	Accommodation  float64
	Transport      float64
	OtherAllowance float64
	BankName       string
	IBAN           string
	Status         EntityStatus
}

// CreateDriver validates and persists a new fleet driver.
func (s *Service) CreateDriver(ctx context.Context, p CreateDriverParams) (Driver, error) {
	if p.Status == "" {
		p.Status = StatusActive
	}
	errs := validate.FieldErrors{}
	errs.Required("fullName", p.FullName)
	errs.Required("email", p.Email)
	errs.Required("phone", p.Phone)
	errs.Required("nationality", p.Nationality)
	errs.Required("emirate", p.Emirate)
	errs.OneOf("emirate", p.Emirate, application.Emirates...)
	errs.Required("emiratesId", p.EmiratesID)
	errs.Required("licenseNumber", p.LicenseNumber)
	errs.Required("vehicleType", p.VehicleType)
	errs.OneOf("vehicleType", p.VehicleType, application.VehicleTypes...)
	errs.Required("employmentType", p.EmploymentType)
	errs.Required("joinDate", p.JoinDate)
	validateSalary(errs, p.BasicSalary, p.Accommodation, p.Transport, p.OtherAllowance)
	if !p.Status.Valid() {
		errs["status"] = fmt.Sprintf("unknown status %q", p.Status)
	}
	if err := errs.Err(); err != nil {
		return Driver{}, err
	}

	now := s.now().UTC()
	return s.repo.InsertDriver(ctx, Driver{
		ID:             s.idGenerator(),
		FullName:       strings.TrimSpace(p.FullName),
		Email:          strings.TrimSpace(p.Email),
		Phone:          strings.TrimSpace(p.Phone),
		Nationality:    p.Nationality,
		Emirate:        p.Emirate,
		EmiratesID:     p.EmiratesID,
		VisaNumber:     p.VisaNumber,
		VisaExpiry:     p.VisaExpiry,
		LicenseNumber:  p.LicenseNumber,
		LicenseExpiry:  p.LicenseExpiry,
		VehicleType:    p.VehicleType,
		EmploymentType: p.EmploymentType,
		JoinDate:       p.JoinDate,
		BasicSalary:    p.BasicSalary,
		Accommodation:  p.Accommodation,
		Transport:      p.Transport,
		OtherAllowance: p.OtherAllowance,
		BankName:       p.BankName,
		IBAN:           p.IBAN,
		Status:         p.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
}

// ListDrivers returns fleet drivers, newest first.
func (s *Service) ListDrivers(ctx context.Context) ([]Driver, error) {
	return s.repo.ListDrivers(ctx)
}

// GetDriver returns one driver or ErrNotFound.
func (s *Service) GetDriver(ctx context.Context, id string) (Driver, error) {
	return s.repo.GetDriver(ctx, id)
}

// UpdateDriverParams patches a driver; nil fields keep their stored value.
type UpdateDriverParams struct {
	FullName       *string
	Email          *string
	Phone          *string
	Nationality    *string
	Emirate        *string
	EmiratesID     *string
	VisaNumber     *string
	VisaExpiry     *time.Time
	LicenseNumber  *string
	LicenseExpiry  *time.Time
	VehicleType    *string
	EmploymentType *string
	JoinDate       *string
	BasicSalary    *float64
	Accommodation  *float64
	Transport      *float64
	OtherAllowance *float64
	BankName       *string
	IBAN           *string
	Status         *EntityStatus
}

// UpdateDriver applies a partial update and refreshes updated_at.
func (s *Service) UpdateDriver(ctx context.Context, id string, p UpdateDriverParams) (Driver, error) {
	d, err := s.repo.GetDriver(ctx, id)
	if err != nil {
		return Driver{}, err
	}

	applyString(&d.FullName, p.FullName)
	applyString(&d.Email, p.Email)
	applyString(&d.Phone, p.Phone)
	applyString(&d.Nationality, p.Nationality)
	applyString(&d.Emirate, p.Emirate)
	applyString(&d.EmiratesID, p.EmiratesID)
	applyString(&d.VisaNumber, p.VisaNumber)
	if p.VisaExpiry != nil {
		d.VisaExpiry = p.VisaExpiry
	}
	applyString(&d.LicenseNumber, p.LicenseNumber)
	if p.LicenseExpiry != nil {
		d.LicenseExpiry = p.LicenseExpiry
	}
	applyString(&d.VehicleType, p.VehicleType)
	applyString(&d.EmploymentType, p.EmploymentType)
	applyString(&d.JoinDate, p.JoinDate)
	applyFloat(&d.BasicSalary, p.BasicSalary)
	applyFloat(&d.Accommodation, p.Accommodation)
	applyFloat(&d.Transport, p.Transport)
	applyFloat(&d.OtherAllowance, p.OtherAllowance)
	applyString(&d.BankName, p.BankName)
	applyString(&d.IBAN, p.IBAN)
	if p.Status != nil {
		d.Status = *p.Status
	}

	errs := validate.FieldErrors{}
	errs.OneOf("emirate", d.Emirate, application.Emirates...)
	errs.OneOf("vehicleType", d.VehicleType, application.VehicleTypes...)
	validateSalary(errs, d.BasicSalary, d.Accommodation, d.Transport, d.OtherAllowance)
	if !d.Status.Valid() {
		errs["status"] = fmt.Sprintf("unknown status %q", d.Status)
	}
	if err := errs.Err(); err != nil {
		return Driver{}, err
	}

	d.UpdatedAt = s.now().UTC()
	return s.repo.UpdateDriver(ctx, d)
}

// DeleteDriver removes a driver. Assignments referencing it stay in place
// and resolve to the fallback label afterwards.
func (s *Service) DeleteDriver(ctx context.Context, id string) error {
	return s.repo.DeleteDriver(ctx, id)
}

// CreateContractorParams carries the full editable contractor field set.
type CreateContractorParams struct {
	CompanyName       string
	TradeLicense      string
	Emirate           string
	ContactName       string
	Email             string
	Phone             string
	ContractStart     *time.Time
	ContractEnd       *time.Time
	InsuranceCoverage string
	FleetSize         int
	DriverCount       int
	BankName          string
	IBAN              string
	Status            EntityStatus
}

// CreateContractor validates and persists a new fleet contractor.
func (s *Service) CreateContractor(ctx context.Context, p CreateContractorParams) (Contractor, error) {
	if p.Status == "" {
		p.Status = StatusActive
	}
	errs := validate.FieldErrors{}
	errs.Required("companyName", p.CompanyName)
	errs.Required("tradeLicense", p.TradeLicense)
	errs.Required("emirate", p.Emirate)
	errs.OneOf("emirate", p.Emirate, application.Emirates...)
	errs.Required("contactName", p.ContactName)
	errs.Required("email", p.Email)
	errs.Required("phone", p.Phone)
	errs.NonNegative("fleetSize", p.FleetSize)
	errs.NonNegative("driverCount", p.DriverCount)
	if !p.Status.Valid() {
		errs["status"] = fmt.Sprintf("unknown status %q", p.Status)
	}
	if err := errs.Err(); err != nil {
		return Contractor{}, err
	}

	now := s.now().UTC()
	return s.repo.InsertContractor(ctx, Contractor{
		ID:                s.idGenerator(),
		CompanyName:       strings.TrimSpace(p.CompanyName),
		TradeLicense:      p.TradeLicense,
		Emirate:           p.Emirate,
		ContactName:       strings.TrimSpace(p.ContactName),
		Email:             strings.TrimSpace(p.Email),
		Phone:             strings.TrimSpace(p.Phone),
		ContractStart:     p.ContractStart,
		ContractEnd:       p.ContractEnd,
		InsuranceCoverage: p.InsuranceCoverage,
		FleetSize:         p.FleetSize,
		DriverCount:       p.DriverCount,
		BankName:          p.BankName,
		IBAN:              p.IBAN,
		Status:            p.Status,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
}

// ListContractors returns fleet contractors, newest first.
func (s *Service) ListContractors(ctx context.Context) ([]Contractor, error) {
	return s.repo.ListContractors(ctx)
}

// GetContractor returns one contractor or ErrNotFound.
func (s *Service) GetContractor(ctx context.Context, id string) (Contractor, error) {
	return s.repo.GetContractor(ctx, id)
}

// UpdateContractorParams patches a contractor; nil fields keep their
// stored value.
type UpdateContractorParams struct {
	CompanyName       *string
	TradeLicense      *string
	Emirate           *string
	ContactName       *string
	Email             *string
	Phone             *string
	ContractStart     *time.Time
	ContractEnd       *time.Time
	InsuranceCoverage *string
	FleetSize         *int
	DriverCount       *int
	BankName          *string
	IBAN              *string
	Status            *EntityStatus
}

// UpdateContractor applies a partial update and refreshes updated_at.
func (s *Service) UpdateContractor(ctx context.Context, id string, p UpdateContractorParams) (Contractor, error) {
	c, err := s.repo.GetContractor(ctx, id)
	if err != nil {
		return Contractor{}, err
	}

	applyString(&c.CompanyName, p.CompanyName)
	applyString(&c.TradeLicense, p.TradeLicense)
	applyString(&c.Emirate, p.Emirate)
	applyString(&c.ContactName, p.ContactName)
	applyString(&c.Email, p.Email)
	applyString(&c.Phone, p.Phone)
	if p.ContractStart != nil {
		c.ContractStart = p.ContractStart
	}
	if p.ContractEnd != nil {
		c.ContractEnd = p.ContractEnd
	}
	applyString(&c.InsuranceCoverage, p.InsuranceCoverage)
	applyInt(&c.FleetSize, p.FleetSize)
	applyInt(&c.DriverCount, p.DriverCount)
	applyString(&c.BankName, p.BankName)
	applyString(&c.IBAN, p.IBAN)
	if p.Status != nil {
		c.Status = *p.Status
	}

	errs := validate.FieldErrors{}
	errs.OneOf("emirate", c.Emirate, application.Emirates...)
	errs.NonNegative("fleetSize", c.FleetSize)
	errs.NonNegative("driverCount", c.DriverCount)
	if !c.Status.Valid() {
		errs["status"] = fmt.Sprintf("unknown status %q", c.Status)
	}
	if err := errs.Err(); err != nil {
		return Contractor{}, err
	}

	c.UpdatedAt = s.now().UTC()
	return s.repo.UpdateContractor(ctx, c)
}

// DeleteContractor removes a contractor.
func (s *Service) DeleteContractor(ctx context.Context, id string) error {
	return s.repo.DeleteContractor(ctx, id)
}

// CreateClientParams carries the full editable client field set.
type CreateClientParams struct {
	CompanyName         string
	Industry            string
	Emirate             string
	Address             string
	ContractStart       *time.Time
	ContractEnd         *time.Time
	ServiceRequirements string
	PrimaryContactName  string
	PrimaryContactEmail string
	PrimaryContactPhone string
	OpsContactName      string
	OpsContactEmail     string
	OpsContactPhone     string
	BillingContactName  string
	BillingContactEmail string
	BillingContactPhone string
	BillingTerms        string
	Status              EntityStatus
}

// CreateClient validates and persists a new business client.
func (s *Service) CreateClient(ctx context.Context, p CreateClientParams) (Client, error) {
	if p.Status == "" {
		p.Status = StatusActive
	}
	errs := validate.FieldErrors{}
	errs.Required("companyName", p.CompanyName)
	errs.Required("industry", p.Industry)
	errs.Required("emirate", p.Emirate)
	errs.OneOf("emirate", p.Emirate, application.Emirates...)
	errs.Required("address", p.Address)
	errs.Required("primaryContactName", p.PrimaryContactName)
	errs.Required("primaryContactEmail", p.PrimaryContactEmail)
	errs.Required("primaryContactPhone", p.PrimaryContactPhone)
	if !p.Status.Valid() {
		errs["status"] = fmt.Sprintf("unknown status %q", p.Status)
	}
	if err := errs.Err(); err != nil {
		return Client{}, err
	}

	now := s.now().UTC()
	return s.repo.InsertClient(ctx, Client{
		ID:                  s.idGenerator(),
		CompanyName:         strings.TrimSpace(p.CompanyName),
		Industry:            p.Industry,
		Emirate:             p.Emirate,
		Address:             p.Address,
		ContractStart:       p.ContractStart,
		ContractEnd:         p.ContractEnd,
		ServiceRequirements: p.ServiceRequirements,
		PrimaryContactName:  strings.TrimSpace(p.PrimaryContactName),
		PrimaryContactEmail: strings.TrimSpace(p.PrimaryContactEmail),
		PrimaryContactPhone: strings.TrimSpace(p.PrimaryContactPhone),
		OpsContactName:      p.OpsContactName,
		OpsContactEmail:     p.OpsContactEmail,
		OpsContactPhone:     p.OpsContactPhone,
		BillingContactName:  p.BillingContactName,
		BillingContactEmail: p.BillingContactEmail,
		BillingContactPhone: p.BillingContactPhone,
		BillingTerms:        p.BillingTerms,
		Status:              p.Status,
		CreatedAt:           now,
		UpdatedAt:           now,
	})
}

// ListClients returns business clients, newest first.
func (s *Service) ListClients(ctx context.Context) ([]Client, error) {
	return s.repo.ListClients(ctx)
}

// GetClient returns one client or ErrNotFound.
func (s *Service) GetClient(ctx context.Context, id string) (Client, error) {
	return s.repo.GetClient(ctx, id)
}

// UpdateClientParams patches a client; nil fields keep their stored value.
type UpdateClientParams struct {
	CompanyName         *string
	Industry            *string
	Emirate             *string
	Address             *string
	ContractStart       *time.Time
	ContractEnd         *time.Time
	ServiceRequirements *string
	PrimaryContactName  *string
	PrimaryContactEmail *string
	PrimaryContactPhone *string
	OpsContactName      *string
	OpsContactEmail     *string
	OpsContactPhone     *string
	BillingContactName  *string
	BillingContactEmail *string
	BillingContactPhone *string
	BillingTerms        *string
	Status              *EntityStatus
}

// UpdateClient applies a partial update and refreshes updated_at.
func (s *Service) UpdateClient(ctx context.Context, id string, p UpdateClientParams) (Client, error) {
	c, err := s.repo.GetClient(ctx, id)
	if err != nil {
		return Client{}, err
	}

	applyString(&c.CompanyName, p.CompanyName)
	applyString(&c.Industry, p.Industry)
	applyString(&c.Emirate, p.Emirate)
	applyString(&c.Address, p.Address)
	if p.ContractStart != nil {
		c.ContractStart = p.ContractStart
	}
	if p.ContractEnd != nil {
		c.ContractEnd = p.ContractEnd
	}
	applyString(&c.ServiceRequirements, p.ServiceRequirements)
	applyString(&c.PrimaryContactName, p.PrimaryContactName)
	applyString(&c.PrimaryContactEmail, p.PrimaryContactEmail)
	applyString(&c.PrimaryContactPhone, p.PrimaryContactPhone)
	applyString(&c.OpsContactName, p.OpsContactName)
	applyString(&c.OpsContactEmail, p.OpsContactEmail)
	applyString(&c.OpsContactPhone, p.OpsContactPhone)
	applyString(&c.BillingContactName, p.BillingContactName)
	applyString(&c.BillingContactEmail, p.BillingContactEmail)
	applyString(&c.BillingContactPhone, p.BillingContactPhone)
	applyString(&c.BillingTerms, p.BillingTerms)
	if p.Status != nil {
		c.Status = *p.Status
	}

	errs := validate.FieldErrors{}
	errs.OneOf("emirate", c.Emirate, application.Emirates...)
	if !c.Status.Valid() {
		errs["status"] = fmt.Sprintf("unknown status %q", c.Status)
	}
	if err := errs.Err(); err != nil {
		return Client{}, err
	}

	c.UpdatedAt = s.now().UTC()
	return s.repo.UpdateClient(ctx, c)
}

// DeleteClient removes a client.
func (s *Service) DeleteClient(ctx context.Context, id string) error {
	return s.repo.DeleteClient(ctx, id)
}

// CreateVehicleParams carries the full editable vehicle field set.
type CreateVehicleParams struct {
	Type               string
	Make               string
	Model              string
	Year               int
	PlateNumber        string
	RegistrationExpiry *time.Time
	InsuranceExpiry    *time.Time
	Ownership          Ownership
	Status             VehicleStatus
}

// CreateVehicle validates and persists a new fleet vehicle.
func (s *Service) CreateVehicle(ctx context.Context, p CreateVehicleParams) (Vehicle, error) {
	if p.Status == "" {
		p.Status = VehicleAvailable
	}
	if p.Ownership == "" {
		p.Ownership = OwnedByCompany
	}
	errs := validate.FieldErrors{}
	errs.Required("type", p.Type)
	errs.OneOf("type", p.Type, application.VehicleTypes...)
	errs.Required("make", p.Make)
	errs.Required("model", p.Model)
	errs.Min("year", p.Year, 1990)
	errs.Required("plateNumber", p.PlateNumber)
	if !p.Ownership.Valid() {
		errs["ownership"] = fmt.Sprintf("unknown ownership %q", p.Ownership)
	}
	if !p.Status.Valid() {
		errs["status"] = fmt.Sprintf("unknown status %q", p.Status)
	}
	if err := errs.Err(); err != nil {
		return Vehicle{}, err
	}

	now := s.now().UTC()
	return s.repo.InsertVehicle(ctx, Vehicle{
		ID:                 s.idGenerator(),
		Type:               p.Type,
		Make:               strings.TrimSpace(p.Make),
		Model:              strings.TrimSpace(p.Model),
		Year:               p.Year,
		PlateNumber:        strings.TrimSpace(p.PlateNumber),
		RegistrationExpiry: p.RegistrationExpiry,
		InsuranceExpiry:    p.InsuranceExpiry,
		Ownership:          p.Ownership,
		Status:             p.Status,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
}

// ListVehicles returns fleet vehicles, newest first.
func (s *Service) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	return s.repo.ListVehicles(ctx)
}

// GetVehicle returns one vehicle or ErrNotFound.
func (s *Service) GetVehicle(ctx context.Context, id string) (Vehicle, error) {
	return s.repo.GetVehicle(ctx, id)
}

// UpdateVehicleParams patches a vehicle; nil fields keep their stored
// value.
type UpdateVehicleParams struct {
	Type               *string
	Make               *string
	Model              *string
	Year               *int
	PlateNumber        *string
	RegistrationExpiry *time.Time
	InsuranceExpiry    *time.Time
	Ownership          *Ownership
	Status             *VehicleStatus
}

// UpdateVehicle applies a partial update and refreshes updated_at.
func (s *Service) UpdateVehicle(ctx context.Context, id string, p UpdateVehicleParams) (Vehicle, error) {
	v, err := s.repo.GetVehicle(ctx, id)
	if err != nil {
		return Vehicle{}, err
	}

	applyString(&v.Type, p.Type)
	applyString(&v.Make, p.Make)
	applyString(&v.Model, p.Model)
	applyInt(&v.Year, p.Year)
	applyString(&v.PlateNumber, p.PlateNumber)
	if p.RegistrationExpiry != nil {
		v.RegistrationExpiry = p.RegistrationExpiry
	}
	if p.InsuranceExpiry != nil {
		v.InsuranceExpiry = p.InsuranceExpiry
	}
	if p.Ownership != nil {
		v.Ownership = *p.Ownership
	}
	if p.Status != nil {
		v.Status = *p.Status
	}

	errs := validate.FieldErrors{}
	errs.OneOf("type", v.Type, application.VehicleTypes...)
	errs.Min("year", v.Year, 1990)
	if !v.Ownership.Valid() {
		errs["ownership"] = fmt.Sprintf("unknown ownership %q", v.Ownership)
	}
	if !v.Status.Valid() {
		errs["status"] = fmt.Sprintf("unknown status %q", v.Status)
	}
	if err := errs.Err(); err != nil {
		return Vehicle{}, err
	}

	v.UpdatedAt = s.now().UTC()
	return s.repo.UpdateVehicle(ctx, v)
}

// DeleteVehicle removes a vehicle.
func (s *Service) DeleteVehicle(ctx context.Context, id string) error {
	return s.repo.DeleteVehicle(ctx, id)
}

// CreateAssignmentParams carries the full editable assignment field set.
// Driver, client and vehicle ids are not checked for existence: they are
// soft references by design.
type CreateAssignmentParams struct {
	DriverID  string
	ClientID  string
	VehicleID *string
	StartDate string
	EndDate   *string
	ShiftType string
	Notes     *string
	Status    AssignmentStatus
}

// CreateAssignment validates and persists a new driver assignment.
func (s *Service) CreateAssignment(ctx context.Context, p CreateAssignmentParams) (Assignment, error) {
	if p.Status == "" {
		p.Status = AssignmentActive
	}
	errs := validate.FieldErrors{}
	errs.Required("driverId", p.DriverID)
	errs.Required("clientId", p.ClientID)
	errs.Required("startDate", p.StartDate)
	errs.Required("shiftType", p.ShiftType)
	if !p.Status.Valid() {
		errs["status"] = fmt.Sprintf("unknown status %q", p.Status)
	}
	if err := errs.Err(); err != nil {
		return Assignment{}, err
	}

	now := s.now().UTC()
	return s.repo.InsertAssignment(ctx, Assignment{
		ID:        s.idGenerator(),
		DriverID:  p.DriverID,
		ClientID:  p.ClientID,
		VehicleID: p.VehicleID,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		ShiftType: p.ShiftType,
		Notes:     p.Notes,
		Status:    p.Status,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// ListAssignments returns assignments with their references resolved for
// display, newest first.
func (s *Service) ListAssignments(ctx context.Context) ([]AssignmentView, error) {
	rows, err := s.repo.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]AssignmentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, resolveAssignment(row))
	}
	return views, nil
}

// GetAssignment returns one resolved assignment or ErrNotFound.
func (s *Service) GetAssignment(ctx context.Context, id string) (AssignmentView, error) {
	row, err := s.repo.GetAssignment(ctx, id)
	if err != nil {
		return AssignmentView{}, err
	}
	return resolveAssignment(row), nil
}

// UpdateAssignmentParams patches an assignment; nil fields keep their
// stored value.
type UpdateAssignmentParams struct {
	DriverID  *string
	ClientID  *string
	VehicleID *string
	StartDate *string
	EndDate   *string
	ShiftType *string
	Notes     *string
	Status    *AssignmentStatus
}

// UpdateAssignment applies a partial update and refreshes updated_at.
func (s *Service) UpdateAssignment(ctx context.Context, id string, p UpdateAssignmentParams) (Assignment, error) {
	row, err := s.repo.GetAssignment(ctx, id)
	if err != nil {
		return Assignment{}, err
	}
	a := row.Assignment

	applyString(&a.DriverID, p.DriverID)
	applyString(&a.ClientID, p.ClientID)
	if p.VehicleID != nil {
		a.VehicleID = p.VehicleID
	}
	applyString(&a.StartDate, p.StartDate)
	if p.EndDate != nil {
		a.EndDate = p.EndDate
	}
	applyString(&a.ShiftType, p.ShiftType)
	if p.Notes != nil {
		a.Notes = p.Notes
	}
	if p.Status != nil {
		a.Status = *p.Status
	}

	if !a.Status.Valid() {
		return Assignment{}, validate.FieldErrors{"status": fmt.Sprintf("unknown status %q", a.Status)}
	}

	a.UpdatedAt = s.now().UTC()
	return s.repo.UpdateAssignment(ctx, a)
}

// DeleteAssignment removes an assignment.
func (s *Service) DeleteAssignment(ctx context.Context, id string) error {
	return s.repo.DeleteAssignment(ctx, id)
}

func resolveAssignment(row AssignmentRow) AssignmentView {
	view := AssignmentView{
		Assignment:   row.Assignment,
		DriverName:   UnknownDriverLabel,
		ClientName:   UnknownClientLabel,
		VehicleLabel: UnassignedVehicleLabel,
	}
	if row.DriverName != nil {
		view.DriverName = *row.DriverName
		view.DriverResolved = true
	}
	if row.ClientName != nil {
		view.ClientName = *row.ClientName
		view.ClientResolved = true
	}
	if row.VehiclePlate != nil {
		view.VehicleLabel = *row.VehiclePlate
		view.VehicleResolved = true
	}
	return view
}

func validateSalary(errs validate.FieldErrors, basic, accommodation, transport, other float64) {
	if basic < 0 {
		errs["basicSalary"] = "must not be negative"
	}
	if accommodation < 0 {
		errs["accommodation"] = "must not be negative"
	}
	if transport < 0 {
		errs["transport"] = "must not be negative"
	}
	if other < 0 {
		errs["otherAllowance"] = "must not be negative"
	}
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
