package httpapi

import (
	"github.com/gin-gonic/gin"

	"fleetflow/application"
	"fleetflow/validate"
)

// Request DTOs accept numeric strings for integer fields because the
// public forms submit everything as text.

type submitRiderRequest struct {
	FullName          string           `json:"fullName"`
	Email             string           `json:"email"`
	Phone             string           `json:"phone"`
	Nationality       string           `json:"nationality"`
	City              string           `json:"city"`
	VisaStatus        string           `json:"visaStatus"`
	LicenseType       string           `json:"licenseType"`
	VehicleType       string           `json:"vehicleType"`
	YearsOfExperience validate.FormInt `json:"yearsOfExperience"`
	Availability      string           `json:"availability"`
	PreferredArea     string           `json:"preferredArea"`
	Languages         []string         `json:"languages"`
	Notes             *string          `json:"notes"`
}

func (s *Server) submitRider(c *gin.Context) {
	var req submitRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	created, err := s.apps.SubmitRider(c.Request.Context(), application.SubmitRiderParams{
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		Nationality:       req.Nationality,
		City:              req.City,
		VisaStatus:        req.VisaStatus,
		LicenseType:       req.LicenseType,
		VehicleType:       req.VehicleType,
		YearsOfExperience: req.YearsOfExperience.Int(),
		Availability:      req.Availability,
		PreferredArea:     req.PreferredArea,
		Languages:         req.Languages,
		Notes:             req.Notes,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondCreated(c, created)
}

func (s *Server) listRiders(c *gin.Context) {
	apps, err := s.apps.ListRiders(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, apps)
}

func (s *Server) getRider(c *gin.Context) {
	app, err := s.apps.GetRider(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, app)
}

// reviewRequest is the update schema shared by all three submission
// families: status and admin notes, both optional.
type reviewRequest struct {
	Status     *application.Status `json:"status"`
	AdminNotes *string             `json:"adminNotes"`
}

func (r reviewRequest) params() application.ReviewParams {
	return application.ReviewParams{Status: r.Status, AdminNotes: r.AdminNotes}
}

func (s *Server) reviewRider(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	app, err := s.apps.ReviewRider(c.Request.Context(), c.Param("id"), req.params())
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, app)
}

type submitContractorRequest struct {
	CompanyName       string           `json:"companyName"`
	ContactName       string           `json:"contactName"`
	Email             string           `json:"email"`
	Phone             string           `json:"phone"`
	TradeLicense      string           `json:"tradeLicense"`
	Emirate           string           `json:"emirate"`
	Motorcycles       validate.FormInt `json:"motorcycles"`
	Cars              validate.FormInt `json:"cars"`
	Vans              validate.FormInt `json:"vans"`
	Trucks            validate.FormInt `json:"trucks"`
	Bicycles          validate.FormInt `json:"bicycles"`
	TotalDrivers      validate.FormInt `json:"totalDrivers"`
	YearsInBusiness   validate.FormInt `json:"yearsInBusiness"`
	InsuranceCoverage string           `json:"insuranceCoverage"`
	Notes             *string          `json:"notes"`
}

func (s *Server) submitContractor(c *gin.Context) {
	var req submitContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	created, err := s.apps.SubmitContractor(c.Request.Context(), application.SubmitContractorParams{
		CompanyName:       req.CompanyName,
		ContactName:       req.ContactName,
		Email:             req.Email,
		Phone:             req.Phone,
		TradeLicense:      req.TradeLicense,
		Emirate:           req.Emirate,
		Motorcycles:       req.Motorcycles.Int(),
		Cars:              req.Cars.Int(),
		Vans:              req.Vans.Int(),
		Trucks:            req.Trucks.Int(),
		Bicycles:          req.Bicycles.Int(),
		TotalDrivers:      req.TotalDrivers.Int(),
		YearsInBusiness:   req.YearsInBusiness.Int(),
		InsuranceCoverage: req.InsuranceCoverage,
		Notes:             req.Notes,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondCreated(c, created)
}

func (s *Server) listContractorApps(c *gin.Context) {
	apps, err := s.apps.ListContractors(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, apps)
}

func (s *Server) getContractorApp(c *gin.Context) {
	app, err := s.apps.GetContractor(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, app)
}

func (s *Server) reviewContractorApp(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	app, err := s.apps.ReviewContractor(c.Request.Context(), c.Param("id"), req.params())
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, app)
}

type submitInquiryRequest struct {
	CompanyName         string           `json:"companyName"`
	ContactName         string           `json:"contactName"`
	Email               string           `json:"email"`
	Phone               string           `json:"phone"`
	Industry            string           `json:"industry"`
	CompanySize         string           `json:"companySize"`
	Emirate             string           `json:"emirate"`
	DeliveryVolume      string           `json:"deliveryVolume"`
	VehicleTypes        []string         `json:"vehicleTypes"`
	RidersNeeded        validate.FormInt `json:"ridersNeeded"`
	StartDate           string           `json:"startDate"`
	ContractDuration    string           `json:"contractDuration"`
	SpecialRequirements *string          `json:"specialRequirements"`
}

func (s *Server) submitInquiry(c *gin.Context) {
	var req submitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	created, err := s.apps.SubmitInquiry(c.Request.Context(), application.SubmitInquiryParams{
		CompanyName:         req.CompanyName,
		ContactName:         req.ContactName,
		Email:               req.Email,
		Phone:               req.Phone,
		Industry:            req.Industry,
		CompanySize:         req.CompanySize,
		Emirate:             req.Emirate,
		DeliveryVolume:      req.DeliveryVolume,
		VehicleTypes:        req.VehicleTypes,
		RidersNeeded:        req.RidersNeeded.Int(),
		StartDate:           req.StartDate,
		ContractDuration:    req.ContractDuration,
		SpecialRequirements: req.SpecialRequirements,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondCreated(c, created)
}

func (s *Server) listInquiries(c *gin.Context) {
	inqs, err := s.apps.ListInquiries(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, inqs)
}

func (s *Server) getInquiry(c *gin.Context) {
	inq, err := s.apps.GetInquiry(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, inq)
}

func (s *Server) reviewInquiry(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	inq, err := s.apps.ReviewInquiry(c.Request.Context(), c.Param("id"), req.params())
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, inq)
}
