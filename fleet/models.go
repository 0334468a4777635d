// Package fleet manages the active-fleet entities behind the admin
// dashboard: drivers, contracted fleet companies, business clients,
// vehicles and driver assignments. Unlike the public submission families,
// every fleet entity supports full create/update/delete.
package fleet

import "time"

// EntityStatus is the lifecycle state shared by drivers, contractors and
// clients.
type EntityStatus string

const (
	StatusActive     EntityStatus = "active"
	StatusInactive   EntityStatus = "inactive"
	StatusSuspended  EntityStatus = "suspended"
	StatusTerminated EntityStatus = "terminated"
)

func (s EntityStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended, StatusTerminated:
		return true
	default:
		return false
	}
}

// VehicleStatus is the lifecycle state of a fleet vehicle.
type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleAssigned    VehicleStatus = "assigned"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleRetired     VehicleStatus = "retired"
)

func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleAvailable, VehicleAssigned, VehicleMaintenance, VehicleRetired:
		return true
	default:
		return false
	}
}

// Ownership records who owns a vehicle.
type Ownership string

const (
	OwnedByCompany    Ownership = "company"
	OwnedByContractor Ownership = "contractor"
	OwnedByDriver     Ownership = "driver"
)

func (o Ownership) Valid() bool {
	switch o {
	case OwnedByCompany, OwnedByContractor, OwnedByDriver:
		return true
	default:
		return false
	}
}

// AssignmentStatus is the lifecycle state of a driver assignment.
type AssignmentStatus string

const (
	AssignmentActive    AssignmentStatus = "active"
	AssignmentInactive  AssignmentStatus = "inactive"
	AssignmentCompleted AssignmentStatus = "completed"
	AssignmentCancelled AssignmentStatus = "cancelled"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentActive, AssignmentInactive, AssignmentCompleted, AssignmentCancelled:
		return true
	default:
		return false
	}
}

// Driver mirrors the drivers table. An approved rider application is
// re-entered here by an admin; there is no automatic promotion.
type Driver struct {
	ID             string       `json:"id"`
	FullName       string       `json:"fullName"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Nationality    string       `json:"nationality"`
	Emirate        string       `json:"emirate"`
	EmiratesID     string       `json:"emiratesId"`
	VisaNumber     string       `json:"visaNumber"`
	VisaExpiry     *time.Time   `json:"visaExpiry"`
	LicenseNumber  string       `json:"licenseNumber"`
	LicenseExpiry  *time.Time   `json:"licenseExpiry"`
	VehicleType    string       `json:"vehicleType"`
	EmploymentType string       `json:"employmentType"`
	JoinDate       string       `json:"joinDate"`
	BasicSalary    float64      `json:"basicSalary"`
	Accommodation  float64      `json:"accommodation"`
	Transport      float64      `json:"transport"`
	OtherAllowance float64      `json:"otherAllowance"`
	BankName       string       `json:"bankName"`
	IBAN           string       `json:"iban"`
	Status         EntityStatus `json:"status"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// Contractor mirrors the contractors table (active fleet partners, not
// applications).
type Contractor struct {
	ID                string       `json:"id"`
	CompanyName       string       `json:"companyName"`
	TradeLicense      string       `json:"tradeLicense"`
	Emirate           string       `json:"emirate"`
	ContactName       string       `json:"contactName"`
	Email             string       `json:"email"`
	Phone             string       `json:"phone"`
	ContractStart     *time.Time   `json:"contractStart"`
	ContractEnd       *time.Time   `json:"contractEnd"`
	InsuranceCoverage string       `json:"insuranceCoverage"`
	FleetSize         int          `json:"fleetSize"`
	DriverCount       int          `json:"driverCount"`
	BankName          string       `json:"bankName"`
	IBAN              string       `json:"iban"`
	Status            EntityStatus `json:"status"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

// Client mirrors the clients table (business customers being served).
type Client struct {
	ID                  string       `json:"id"`
	CompanyName         string       `json:"companyName"`
	Industry            string       `json:"industry"`
	Emirate             string       `json:"emirate"`
	Address             string       `json:"address"`
	ContractStart       *time.Time   `json:"contractStart"`
	ContractEnd         *time.Time   `json:"contractEnd"`
	ServiceRequirements string       `json:"serviceRequirements"`
	PrimaryContactName  string       `json:"primaryContactName"`
	PrimaryContactEmail string       `json:"primaryContactEmail"`
	PrimaryContactPhone string       `json:"primaryContactPhone"`
	OpsContactName      string       `json:"opsContactName"`
	OpsContactEmail     string       `json:"opsContactEmail"`
	OpsContactPhone     string       `json:"opsContactPhone"`
	BillingContactName  string       `json:"billingContactName"`
	BillingContactEmail string       `json:"billingContactEmail"`
	BillingContactPhone string       `json:"billingContactPhone"`
	BillingTerms        string       `json:"billingTerms"`
	Status              EntityStatus `json:"status"`
	CreatedAt           time.Time    `json:"createdAt"`
	UpdatedAt           time.Time    `json:"updatedAt"`
}

// Vehicle mirrors the vehicles table. Plate numbers are unique in practice
// but not enforced by the schema.
type Vehicle struct {
	ID                 string        `json:"id"`
	Type               string        `json:"type"`
	Make               string        `json:"make"`
	Model              string        `json:"model"`
	Year               int           `json:"year"`
	PlateNumber        string        `json:"plateNumber"`
	RegistrationExpiry *time.Time    `json:"registrationExpiry"`
	InsuranceExpiry    *time.Time    `json:"insuranceExpiry"`
	Ownership          Ownership     `json:"ownership"`
	Status             VehicleStatus `json:"status"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// Assignment mirrors the assignments table. Driver, client and vehicle ids
// are soft references: deleting the referenced record neither cascades nor
// blocks, and reads resolve dangling ids to fallback labels.
type Assignment struct {
	ID        string           `json:"id"`
	DriverID  string           `json:"driverId"`
	ClientID  string           `json:"clientId"`
	VehicleID *string          `json:"vehicleId"`
	StartDate string           `json:"startDate"`
	EndDate   *string          `json:"endDate"`
	ShiftType string           `json:"shiftType"`
	Notes     *string          `json:"notes"`
	Status    AssignmentStatus `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// Fallback labels for assignment references that no longer resolve.
const (
	UnknownDriverLabel     = "Unknown Driver"
	UnknownClientLabel     = "Unknown Client"
	UnassignedVehicleLabel = "Unassigned Vehicle"
)

// AssignmentView is an assignment with its references resolved for
// display. Resolved flags distinguish a real name from a fallback label.
type AssignmentView struct {
	Assignment
	DriverName      string `json:"driverName"`
	DriverResolved  bool   `json:"driverResolved"`
	ClientName      string `json:"clientName"`
	ClientResolved  bool   `json:"clientResolved"`
	VehicleLabel    string `json:"vehicleLabel"`
	VehicleResolved bool   `json:"vehicleResolved"`
}
