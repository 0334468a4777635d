// Package application holds the three public submission families —
// rider applications, contractor applications and business inquiries —
// and the admin review flow over them. Submissions are created once via
// the public API and afterwards only move through the review status enum;
// they are never deleted.
package application

import "time"

// Status is the review state shared by all three submission families.
type Status string

const (
	StatusPending    Status = "pending"
	StatusReviewing  Status = "reviewing"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusOnboarding Status = "onboarding"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is a declared review status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewing, StatusApproved, StatusRejected, StatusOnboarding, StatusCompleted:
		return true
	default:
		return false
	}
}

// Emirates are the seven emirates accepted for location fields.
var Emirates = []string{
	"Abu Dhabi", "Dubai", "Sharjah", "Ajman",
	"Umm Al Quwain", "Ras Al Khaimah", "Fujairah",
}

// VehicleTypes are the delivery vehicle categories accepted on forms.
var VehicleTypes = []string{"Motorcycle", "Car", "Van", "Truck", "Bicycle"}

// RiderApplication mirrors the rider_applications table.
type RiderApplication struct {
	ID                string    `json:"id"`
	FullName          string    `json:"fullName"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Nationality       string    `json:"nationality"`
	City              string    `json:"city"`
	VisaStatus        string    `json:"visaStatus"`
	LicenseType       string    `json:"licenseType"`
	VehicleType       string    `json:"vehicleType"`
	YearsOfExperience int       `json:"yearsOfExperience"`
	Availability      string    `json:"availability"`
	PreferredArea     string    `json:"preferredArea"`
	Languages         []string  `json:"languages"`
	Notes             *string   `json:"notes"`
	Status            Status    `json:"status"`
	AdminNotes        *string   `json:"adminNotes"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ContractorApplication mirrors the contractor_applications table.
// The five fleet counts each default to zero when a form omits them.
type ContractorApplication struct {
	ID                string    `json:"id"`
	CompanyName       string    `json:"companyName"`
	ContactName       string    `json:"contactName"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	TradeLicense      string    `json:"tradeLicense"`
	Emirate           string    `json:"emirate"`
	Motorcycles       int       `json:"motorcycles"`
	Cars              int       `json:"cars"`
	Vans              int       `json:"vans"`
	Trucks            int       `json:"trucks"`
	Bicycles          int       `json:"bicycles"`
	TotalDrivers      int       `json:"totalDrivers"`
	YearsInBusiness   int       `json:"yearsInBusiness"`
	InsuranceCoverage string    `json:"insuranceCoverage"`
	Notes             *string   `json:"notes"`
	Status            Status    `json:"status"`
	AdminNotes        *string   `json:"adminNotes"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// BusinessInquiry mirrors the business_inquiries table.
type BusinessInquiry struct {
	ID                  string    `json:"id"`
	CompanyName         string    `json:"companyName"`
	ContactName         string    `json:"contactName"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	Industry            string    `json:"industry"`
	CompanySize         string    `json:"companySize"`
	Emirate             string    `json:"emirate"`
	DeliveryVolume      string    `json:"deliveryVolume"`
	VehicleTypes        []string  `json:"vehicleTypes"`
	RidersNeeded        int       `json:"ridersNeeded"`
	StartDate           string    `json:"startDate"`
	ContractDuration    string    `json:"contractDuration"`
	SpecialRequirements *string   `json:"specialRequirements"`
	Status              Status    `json:"status"`
	AdminNotes          *string   `json:"adminNotes"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// ReviewParams is the update contract for every submission family:
// status and admin notes only, both optional.
type ReviewParams struct {
	Status     *Status
	AdminNotes *string
}
