package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"

	"fleetflow/fleet"
	"fleetflow/validate"
)

type createDriverRequest struct {
	FullName       string             `json:"fullName"`
	Email          string             `json:"email"`
	Phone          string             `json:"phone"`
	Nationality    string             `json:"nationality"`
	Emirate        string             `json:"emirate"`
	EmiratesID     string             `json:"emiratesId"`
	VisaNumber     string             `json:"visaNumber"`
	VisaExpiry     *time.Time         `json:"visaExpiry"`
	LicenseNumber  string             `json:"licenseNumber"`
	LicenseExpiry  *time.Time         `json:"licenseExpiry"`
	VehicleType    string             `json:"vehicleType"`
	EmploymentType string             `json:"employmentType"`
	JoinDate       string             `json:"joinDate"`
	BasicSalary    float64            `json:"basicSalary"`
	Accommodation  float64            `json:"accommodation"`
	Transport      float64            `json:"transport"`
	OtherAllowance float64            `json:"otherAllowance"`
	BankName       string             `json:"bankName"`
	IBAN           string             `json:"iban"`
	Status         fleet.EntityStatus `json:"status"`
}

func (s *Server) createDriver(c *gin.Context) {
	var req createDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	d, err := s.fleet.CreateDriver(c.Request.Context(), fleet.CreateDriverParams{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Nationality:    req.Nationality,
		Emirate:        req.Emirate,
		EmiratesID:     req.EmiratesID,
		VisaNumber:     req.VisaNumber,
		VisaExpiry:     req.VisaExpiry,
		LicenseNumber:  req.LicenseNumber,
		LicenseExpiry:  req.LicenseExpiry,
		VehicleType:    req.VehicleType,
		EmploymentType: req.EmploymentType,
		JoinDate:       req.JoinDate,
		BasicSalary:    req.BasicSalary,
		Accommodation:  req.Accommodation,
		Transport:      req.Transport,
		OtherAllowance: req.OtherAllowance,
		BankName:       req.BankName,
		IBAN:           req.IBAN,
		Status:         req.Status,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondCreated(c, d)
}

func (s *Server) listDrivers(c *gin.Context) {
	ds, err := s.fleet.ListDrivers(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, ds)
}

func (s *Server) getDriver(c *gin.Context) {
	d, err := s.fleet.GetDriver(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, d)
}

type updateDriverRequest struct {
	FullName       *string             `json:"fullName"`
	Email          *string             `json:"email"`
	Phone          *string             `json:"phone"`
	Nationality    *string             `json:"nationality"`
	Emirate        *string             `json:"emirate"`
	EmiratesID     *string             `json:"emiratesId"`
	VisaNumber     *string             `json:"visaNumber"`
	VisaExpiry     *time.Time          `json:"visaExpiry"`
	LicenseNumber  *string             `json:"licenseNumber"`
	LicenseExpiry  *time.Time          `json:"licenseExpiry"`
	VehicleType    *string             `json:"vehicleType"`
	EmploymentType *string             `json:"employmentType"`
	JoinDate       *string             `json:"joinDate"`
	BasicSalary    *float64            `json:"basicSalary"`
	Accommodation  *float64            `json:"accommodation"`
	Transport      *float64            `json:"transport"`
	OtherAllowance *float64            `json:"otherAllowance"`
	BankName       *string             `json:"bankName"`
	IBAN           *string             `json:"iban"`
	Status         *fleet.EntityStatus `json:"status"`
}

func (s *Server) updateDriver(c *gin.Context) {
	var req updateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	d, err := s.fleet.UpdateDriver(c.Request.Context(), c.Param("id"), fleet.UpdateDriverParams{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Nationality:    req.Nationality,
		Emirate:        req.Emirate,
		EmiratesID:     req.EmiratesID,
		VisaNumber:     req.VisaNumber,
		VisaExpiry:     req.VisaExpiry,
		LicenseNumber:  req.LicenseNumber,
		LicenseExpiry:  req.LicenseExpiry,
		VehicleType:    req.VehicleType,
		EmploymentType: req.EmploymentType,
		JoinDate:       req.JoinDate,
		BasicSalary:    req.BasicSalary,
		Accommodation:  req.Accommodation,
		Transport:      req.Transport,
		OtherAllowance: req.OtherAllowance,
		BankName:       req.BankName,
		IBAN:           req.IBAN,
		Status:         req.Status,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, d)
}

func (s *Server) deleteDriver(c *gin.Context) {
	if err := s.fleet.DeleteDriver(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

type createContractorRequest struct {
	CompanyName       string             `json:"companyName"`
	TradeLicense      string             `json:"tradeLicense"`
	Emirate           string             `json:"emirate"`
	ContactName       string             `json:"contactName"`
	Email             string             `json:"email"`
	Phone             string             `json:"phone"`
	ContractStart     *time.Time         `json:"contractStart"`
	ContractEnd       *time.Time         `json:"contractEnd"`
	InsuranceCoverage string             `json:"insuranceCoverage"`
	FleetSize         validate.FormInt   `json:"fleetSize"`
	DriverCount       validate.FormInt   `json:"driverCount"`
	BankName          string             `json:"bankName"`
	IBAN              string             `json:"iban"`
	Status            fleet.EntityStatus `json:"status"`
}

func (s *Server) createContractor(c *gin.Context) {
	var req createContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	ct, err := s.fleet.CreateContractor(c.Request.Context(), fleet.CreateContractorParams{
		CompanyName:       req.CompanyName,
		TradeLicense:      req.TradeLicense,
		Emirate:           req.Emirate,
		ContactName:       req.ContactName,
		Email:             req.Email,
		Phone:             req.Phone,
		ContractStart:     req.ContractStart,
		ContractEnd:       req.ContractEnd,
		InsuranceCoverage: req.InsuranceCoverage,
		FleetSize:         req.FleetSize.Int(),
		DriverCount:       req.DriverCount.Int(),
		BankName:          req.BankName,
		IBAN:              req.IBAN,
		Status:            req.Status,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondCreated(c, ct)
}

func (s *Server) listContractors(c *gin.Context) {
	cts, err := s.fleet.ListContractors(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, cts)
}

func (s *Server) getContractor(c *gin.Context) {
	ct, err := s.fleet.GetContractor(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, ct)
}

type updateContractorRequest struct {
	CompanyName       *string             `json:"companyName"`
	TradeLicense      *string             `json:"tradeLicense"`
	Emirate           *string             `json:"emirate"`
	ContactName       *string             `json:"contactName"`
	Email             *string             `json:"email"`
	Phone             *string             `json:"phone"`
	ContractStart     *time.Time          `json:"contractStart"`
	ContractEnd       *time.Time          `json:"contractEnd"`
	InsuranceCoverage *string             `json:"insuranceCoverage"`
	FleetSize         *int                `json:"fleetSize"`
	DriverCount       *int                `json:"driverCount"`
	BankName          *string             `json:"bankName"`
	IBAN              *string             `json:"iban"`
	Status            *fleet.EntityStatus `json:"status"`
}

func (s *Server) updateContractor(c *gin.Context) {
	var req updateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	ct, err := s.fleet.UpdateContractor(c.Request.Context(), c.Param("id"), fleet.UpdateContractorParams{
		CompanyName:       req.CompanyName,
		TradeLicense:      req.TradeLicense,
		Emirate:           req.Emirate,
		ContactName:       req.ContactName,
		Email:             req.Email,
		Phone:             req.Phone,
		ContractStart:     req.ContractStart,
		ContractEnd:       req.ContractEnd,
		InsuranceCoverage: req.InsuranceCoverage,
		FleetSize:         req.FleetSize,
		DriverCount:       req.DriverCount,
		BankName:          req.BankName,
		IBAN:              req.IBAN,
		Status:            req.Status,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, ct)
}

func (s *Server) deleteContractor(c *gin.Context) {
	if err := s.fleet.DeleteContractor(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

type createClientRequest struct {
	CompanyName         string             `json:"companyName"`
	Industry            string             `json:"industry"`
	Emirate             string             `json:"emirate"`
	Address             string             `json:"address"`
	ContractStart       *time.Time         `json:"contractStart"`
	ContractEnd         *time.Time         `json:"contractEnd"`
	ServiceRequirements string             `json:"serviceRequirements"`
	PrimaryContactName  string             `json:"primaryContactName"`
	PrimaryContactEmail string             `json:"primaryContactEmail"`
	PrimaryContactPhone string             `json:"primaryContactPhone"`
	OpsContactName      string             `json:"opsContactName"`
	OpsContactEmail     string             `json:"opsContactEmail"`
	OpsContactPhone     string             `json:"opsContactPhone"`
	BillingContactName  string             `json:"billingContactName"`
	BillingContactEmail string             `json:"billingContactEmail"`
	BillingContactPhone string             `json:"billingContactPhone"`
	BillingTerms        string             `json:"billingTerms"`
	Status              fleet.EntityStatus `json:"status"`
}

func (s *Server) createClient(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	cl, err := s.fleet.CreateClient(c.Request.Context(), fleet.CreateClientParams{
		CompanyName:         req.CompanyName,
		Industry:            req.Industry,
		Emirate:             req.Emirate,
		Address:             req.Address,
		ContractStart:       req.ContractStart,
		ContractEnd:         req.ContractEnd,
		ServiceRequirements: req.ServiceRequirements,
		PrimaryContactName:  req.PrimaryContactName,
		PrimaryContactEmail: req.PrimaryContactEmail,
		PrimaryContactPhone: req.PrimaryContactPhone,
		OpsContactName:      req.OpsContactName,
		OpsContactEmail:     req.OpsContactEmail,
		OpsContactPhone:     req.OpsContactPhone,
		BillingContactName:  req.BillingContactName,
		BillingContactEmail: req.BillingContactEmail,
		BillingContactPhone: req.BillingContactPhone,
		BillingTerms:        req.BillingTerms,
		Status:              req.Status,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondCreated(c, cl)
}

func (s *Server) listClients(c *gin.Context) {
	cls, err := s.fleet.ListClients(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, cls)
}

func (s *Server) getClient(c *gin.Context) {
	cl, err := s.fleet.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, cl)
}

type updateClientRequest struct {
	CompanyName         *string             `json:"companyName"`
	Industry            *string             `json:"industry"`
	Emirate             *string             `json:"emirate"`
	Address             *string             `json:"address"`
	ContractStart       *time.Time          `json:"contractStart"`
	ContractEnd         *time.Time          `json:"contractEnd"`
	ServiceRequirements *string             `json:"serviceRequirements"`
	PrimaryContactName  *string             `json:"primaryContactName"`
	PrimaryContactEmail *string             `json:"primaryContactEmail"`
	PrimaryContactPhone *string             `json:"primaryContactPhone"`
	OpsContactName      *string             `json:"opsContactName"`
	OpsContactEmail     *string             `json:"opsContactEmail"`
	OpsContactPhone     *string             `json:"opsContactPhone"`
	BillingContactName  *string             `json:"billingContactName"`
	BillingContactEmail *string             `json:"billingContactEmail"`
	BillingContactPhone *string             `json:"billingContactPhone"`
	BillingTerms        *string             `json:"billingTerms"`
	Status              *fleet.EntityStatus `json:"status"`
}

func (s *Server) updateClient(c *gin.Context) {
	var req updateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	cl, err := s.fleet.UpdateClient(c.Request.Context(), c.Param("id"), fleet.UpdateClientParams{
		CompanyName:         req.CompanyName,
		Industry:            req.Industry,
		Emirate:             req.Emirate,
		Address:             req.Address,
		ContractStart:       req.ContractStart,
		ContractEnd:         req.ContractEnd,
		ServiceRequirements: req.ServiceRequirements,
		PrimaryContactName:  req.PrimaryContactName,
		PrimaryContactEmail: req.PrimaryContactEmail,
		PrimaryContactPhone: req.PrimaryContactPhone,
		OpsContactName:      req.OpsContactName,
		OpsContactEmail:     req.OpsContactEmail,
		OpsContactPhone:     req.OpsContactPhone,
		BillingContactName:  req.BillingContactName,
		BillingContactEmail: req.BillingContactEmail,
		BillingContactPhone: req.BillingContactPhone,
		BillingTerms:        req.BillingTerms,
		Status:              req.Status,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, cl)
}

func (s *Server) deleteClient(c *gin.Context) {
	if err := s.fleet.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

type createVehicleRequest struct {
	Type               string              `json:"type"`
	Make               string              `json:"make"`
	Model              string              `json:"model"`
	Year               validate.FormInt    `json:"year"`
	PlateNumber        string              `json:"plateNumber"`
	RegistrationExpiry *time.Time          `json:"registrationExpiry"`
	InsuranceExpiry    *time.Time          `json:"insuranceExpiry"`
	Ownership          fleet.Ownership     `json:"ownership"`
	Status             fleet.VehicleStatus `json:"status"`
}

func (s *Server) createVehicle(c *gin.Context) {
	var req createVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	v, err := s.fleet.CreateVehicle(c.Request.Context(), fleet.CreateVehicleParams{
		Type:               req.Type,
		Make:               req.Make,
		Model:              req.Model,
		Year:               req.Year.Int(),
		PlateNumber:        req.PlateNumber,
		RegistrationExpiry: req.RegistrationExpiry,
		InsuranceExpiry:    req.InsuranceExpiry,
		Ownership:          req.Ownership,
		Status:             req.Status,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondCreated(c, v)
}

func (s *Server) listVehicles(c *gin.Context) {
	vs, err := s.fleet.ListVehicles(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, vs)
}

func (s *Server) getVehicle(c *gin.Context) {
	v, err := s.fleet.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, v)
}

type updateVehicleRequest struct {
	Type               *string              `json:"type"`
	Make               *string              `json:"make"`
	Model              *string              `json:"model"`
	Year               *int                 `json:"year"`
	PlateNumber        *string              `json:"plateNumber"`
	RegistrationExpiry *time.Time           `json:"registrationExpiry"`
	InsuranceExpiry    *time.Time           `json:"insuranceExpiry"`
	Ownership          *fleet.Ownership     `json:"ownership"`
	Status             *fleet.VehicleStatus `json:"status"`
}

func (s *Server) updateVehicle(c *gin.Context) {
	var req updateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	v, err := s.fleet.UpdateVehicle(c.Request.Context(), c.Param("id"), fleet.UpdateVehicleParams{
		Type:               req.Type,
		Make:               req.Make,
		Model:              req.Model,
		Year:               req.Year,
		PlateNumber:        req.PlateNumber,
		RegistrationExpiry: req.RegistrationExpiry,
		InsuranceExpiry:    req.InsuranceExpiry,
		Ownership:          req.Ownership,
		Status:             req.Status,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, v)
}

func (s *Server) deleteVehicle(c *gin.Context) {
	if err := s.fleet.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

type createAssignmentRequest struct {
	DriverID  string                 `json:"driverId"`
	ClientID  string                 `json:"clientId"`
	VehicleID *string                `json:"vehicleId"`
	StartDate string                 `json:"startDate"`
	EndDate   *string                `json:"endDate"`
	ShiftType string                 `json:"shiftType"`
	Notes     *string                `json:"notes"`
	Status    fleet.AssignmentStatus `json:"status"`
}

func (s *Server) createAssignment(c *gin.Context) {
	var req createAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	a, err := s.fleet.CreateAssignment(c.Request.Context(), fleet.CreateAssignmentParams{
		DriverID:  req.DriverID,
		ClientID:  req.ClientID,
		VehicleID: req.VehicleID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		ShiftType: req.ShiftType,
		Notes:     req.Notes,
		Status:    req.Status,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondCreated(c, a)
}

func (s *Server) listAssignments(c *gin.Context) {
	views, err := s.fleet.ListAssignments(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, views)
}

func (s *Server) getAssignment(c *gin.Context) {
	view, err := s.fleet.GetAssignment(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, view)
}

type updateAssignmentRequest struct {
	DriverID  *string                 `json:"driverId"`
	ClientID  *string                 `json:"clientId"`
	VehicleID *string                 `json:"vehicleId"`
	StartDate *string                 `json:"startDate"`
	EndDate   *string                 `json:"endDate"`
	ShiftType *string                 `json:"shiftType"`
	Notes     *string                 `json:"notes"`
	Status    *fleet.AssignmentStatus `json:"status"`
}

func (s *Server) updateAssignment(c *gin.Context) {
	var req updateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	a, err := s.fleet.UpdateAssignment(c.Request.Context(), c.Param("id"), fleet.UpdateAssignmentParams{
		DriverID:  req.DriverID,
		ClientID:  req.ClientID,
		VehicleID: req.VehicleID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		ShiftType: req.ShiftType,
		Notes:     req.Notes,
		Status:    req.Status,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, a)
}

func (s *Server) deleteAssignment(c *gin.Context) {
	if err := s.fleet.DeleteAssignment(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
