package application

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fleetflow/notify"
	"fleetflow/validate"
)

// Service owns submission validation, persistence and the admin review
// flow. Notification delivery is detached from persistence: a stored
// submission succeeds even when the email never leaves.
type Service struct {
	repo          Repository
	notifier      notify.Notifier
	notifyTimeout time.Duration
	log           *zap.Logger
	idGenerator   func() string
	now           func() time.Time

	// tracks in-flight notification goroutines so tests and shutdown can
	// wait for them.
	pending sync.WaitGroup
}

// NewService builds a submission service. notifier may be nil to disable
// outbound email entirely.
func NewService(repo Repository, notifier notify.Notifier, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:          repo,
		notifier:      notifier,
		notifyTimeout: 5 * time.Second,
		log:           log,
		idGenerator:   func() string { return uuid.NewString() },
		now:           time.Now,
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

// WithNotifyTimeout bounds how long a notification attempt may run.
func (s *Service) WithNotifyTimeout(d time.Duration) *Service {
	if d > 0 {
		s.notifyTimeout = d
	}
	return s
}

// Wait blocks until all in-flight notifications have finished.
func (s *Service) Wait() { s.pending.Wait() }

// SubmitRiderParams carries the create-schema fields for rider applications.
type SubmitRiderParams struct {
	FullName          string
	Email             string
	Phone             string
	Nationality       string
	City              string
	VisaStatus        string
	LicenseType       string
	VehicleType       string
	YearsOfExperience int
	Availability      string
	PreferredArea     string
	Languages         []string
	Notes             *string
}

// SubmitRider validates and persists a public rider application.
func (s *Service) SubmitRider(ctx context.Context, params SubmitRiderParams) (RiderApplication, error) {
	errs := validate.FieldErrors{}
	errs.Required("fullName", params.FullName)
	errs.Required("email", params.Email)
	requireEmail(errs, "email", params.Email)
	errs.Required("phone", params.Phone)
	errs.Required("nationality", params.Nationality)
	errs.Required("city", params.City)
	errs.Required("visaStatus", params.VisaStatus)
	errs.Required("licenseType", params.LicenseType)
	errs.Required("vehicleType", params.VehicleType)
	errs.OneOf("vehicleType", params.VehicleType, VehicleTypes...)
	errs.NonNegative("yearsOfExperience", params.YearsOfExperience)
	errs.Required("availability", params.Availability)
	errs.Required("preferredArea", params.PreferredArea)
	errs.NonEmptyList("languages", params.Languages)
	if err := errs.Err(); err != nil {
		return RiderApplication{}, err
	}

	now := s.now().UTC()
	app := RiderApplication{
		ID:                s.idGenerator(),
		FullName:          strings.TrimSpace(params.FullName),
		Email:             strings.TrimSpace(params.Email),
		Phone:             strings.TrimSpace(params.Phone),
		Nationality:       params.Nationality,
		City:              params.City,
		VisaStatus:        params.VisaStatus,
		LicenseType:       params.LicenseType,
		VehicleType:       params.VehicleType,
		YearsOfExperience: params.YearsOfExperience,
		Availability:      params.Availability,
		PreferredArea:     params.PreferredArea,
		Languages:         params.Languages,
		Notes:             params.Notes,
		Status:            StatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.repo.InsertRider(ctx, app)
	if err != nil {
		return RiderApplication{}, err
	}

	s.notifyAsync("New rider application",
		fmt.Sprintf("%s (%s) applied as a delivery rider in %s.", created.FullName, created.Email, created.City))
	return created, nil
}

// ListRiders returns rider applications, newest first.
func (s *Service) ListRiders(ctx context.Context) ([]RiderApplication, error) {
	return s.repo.ListRiders(ctx)
}

// GetRider returns one rider application or ErrNotFound.
func (s *Service) GetRider(ctx context.Context, id string) (RiderApplication, error) {
	return s.repo.GetRider(ctx, id)
}

// ReviewRider patches status/admin notes on a rider application.
func (s *Service) ReviewRider(ctx context.Context, id string, params ReviewParams) (RiderApplication, error) {
	if err := validateReview(params); err != nil {
		return RiderApplication{}, err
	}
	return s.repo.ReviewRider(ctx, id, params, s.now().UTC())
}

// SubmitContractorParams carries the create-schema fields for contractor
// applications. The five fleet counts default to zero when omitted.
type SubmitContractorParams struct {
	CompanyName       string
	ContactName       string
	Email             string
	Phone             string
	TradeLicense      string
	Emirate           string
	Motorcycles       int
	Cars              int
	Vans              int
	Trucks            int
	Bicycles          int
	TotalDrivers      int
	YearsInBusiness   int
	InsuranceCoverage string
	Notes             *string
}

// SubmitContractor validates and persists a contractor application.
func (s *Service) SubmitContractor(ctx context.Context, params SubmitContractorParams) (ContractorApplication, error) {
	errs := validate.FieldErrors{}
	errs.Required("companyName", params.CompanyName)
	errs.Required("contactName", params.ContactName)
	errs.Required("email", params.Email)
	requireEmail(errs, "email", params.Email)
	errs.Required("phone", params.Phone)
	errs.Required("tradeLicense", params.TradeLicense)
	errs.Required("emirate", params.Emirate)
	errs.OneOf("emirate", params.Emirate, Emirates...)
	errs.NonNegative("motorcycles", params.Motorcycles)
	errs.NonNegative("cars", params.Cars)
	errs.NonNegative("vans", params.Vans)
	errs.NonNegative("trucks", params.Trucks)
	errs.NonNegative("bicycles", params.Bicycles)
	errs.Min("totalDrivers", params.TotalDrivers, 1)
	errs.NonNegative("yearsInBusiness", params.YearsInBusiness)
	errs.Required("insuranceCoverage", params.InsuranceCoverage)
	if err := errs.Err(); err != nil {
		return ContractorApplication{}, err
	}

	now := s.now().UTC()
	app := ContractorApplication{
		ID:                s.idGenerator(),
		CompanyName:       strings.TrimSpace(params.CompanyName),
		ContactName:       strings.TrimSpace(params.ContactName),
		Email:             strings.TrimSpace(params.Email),
		Phone:             strings.TrimSpace(params.Phone),
		TradeLicense:      params.TradeLicense,
		Emirate:           params.Emirate,
		Motorcycles:       params.Motorcycles,
		Cars:              params.Cars,
		Vans:              params.Vans,
		Trucks:            params.Trucks,
		Bicycles:          params.Bicycles,
		TotalDrivers:      params.TotalDrivers,
		YearsInBusiness:   params.YearsInBusiness,
		InsuranceCoverage: params.InsuranceCoverage,
		Notes:             params.Notes,
		Status:            StatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.repo.InsertContractor(ctx, app)
	if err != nil {
		return ContractorApplication{}, err
	}

	s.notifyAsync("New contractor application",
		fmt.Sprintf("%s submitted a fleet contractor application (%d drivers).", created.CompanyName, created.TotalDrivers))
	return created, nil
}

// ListContractors returns contractor applications, newest first.
func (s *Service) ListContractors(ctx context.Context) ([]ContractorApplication, error) {
	return s.repo.ListContractors(ctx)
}

// GetContractor returns one contractor application or ErrNotFound.
func (s *Service) GetContractor(ctx context.Context, id string) (ContractorApplication, error) {
	return s.repo.GetContractor(ctx, id)
}

// ReviewContractor patches status/admin notes on a contractor application.
func (s *Service) ReviewContractor(ctx context.Context, id string, params ReviewParams) (ContractorApplication, error) {
	if err := validateReview(params); err != nil {
		return ContractorApplication{}, err
	}
	return s.repo.ReviewContractor(ctx, id, params, s.now().UTC())
}

// SubmitInquiryParams carries the create-schema fields for business
// inquiries.
type SubmitInquiryParams struct {
	CompanyName         string
	ContactName         string
	Email               string
	Phone               string
	Industry            string
	CompanySize         string
	Emirate             string
	DeliveryVolume      string
	VehicleTypes        []string
	RidersNeeded        int
	StartDate           string
	ContractDuration    string
	SpecialRequirements *string
}

// SubmitInquiry validates and persists a business inquiry.
func (s *Service) SubmitInquiry(ctx context.Context, params SubmitInquiryParams) (BusinessInquiry, error) {
	errs := validate.FieldErrors{}
	errs.Required("companyName", params.CompanyName)
	errs.Required("contactName", params.ContactName)
	errs.Required("email", params.Email)
	requireEmail(errs, "email", params.Email)
	errs.Required("phone", params.Phone)
	errs.Required("industry", params.Industry)
	errs.Required("companySize", params.CompanySize)
	errs.Required("emirate", params.Emirate)
	errs.OneOf("emirate", params.Emirate, Emirates...)
	errs.Required("deliveryVolume", params.DeliveryVolume)
	errs.NonEmptyList("vehicleTypes", params.VehicleTypes)
	for _, vt := range params.VehicleTypes {
		errs.OneOf("vehicleTypes", vt, VehicleTypes...)
	}
	errs.Min("ridersNeeded", params.RidersNeeded, 1)
	errs.Required("startDate", params.StartDate)
	errs.Required("contractDuration", params.ContractDuration)
	if err := errs.Err(); err != nil {
		return BusinessInquiry{}, err
	}

	now := s.now().UTC()
	inq := BusinessInquiry{
		ID:                  s.idGenerator(),
		CompanyName:         strings.TrimSpace(params.CompanyName),
		ContactName:         strings.TrimSpace(params.ContactName),
		Email:               strings.TrimSpace(params.Email),
		Phone:               strings.TrimSpace(params.Phone),
		Industry:            params.Industry,
		CompanySize:         params.CompanySize,
		Emirate:             params.Emirate,
		DeliveryVolume:      params.DeliveryVolume,
		VehicleTypes:        params.VehicleTypes,
		RidersNeeded:        params.RidersNeeded,
		StartDate:           params.StartDate,
		ContractDuration:    params.ContractDuration,
		SpecialRequirements: params.SpecialRequirements,
		Status:              StatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := s.repo.InsertInquiry(ctx, inq)
	if err != nil {
		return BusinessInquiry{}, err
	}

	s.notifyAsync("New business inquiry",
		fmt.Sprintf("%s needs %d riders in %s.", created.CompanyName, created.RidersNeeded, created.Emirate))
	return created, nil
}

// ListInquiries returns business inquiries, newest first.
func (s *Service) ListInquiries(ctx context.Context) ([]BusinessInquiry, error) {
	return s.repo.ListInquiries(ctx)
}

// GetInquiry returns one business inquiry or ErrNotFound.
func (s *Service) GetInquiry(ctx context.Context, id string) (BusinessInquiry, error) {
	return s.repo.GetInquiry(ctx, id)
}

// ReviewInquiry patches status/admin notes on a business inquiry.
func (s *Service) ReviewInquiry(ctx context.Context, id string, params ReviewParams) (BusinessInquiry, error) {
	if err := validateReview(params); err != nil {
		return BusinessInquiry{}, err
	}
	return s.repo.ReviewInquiry(ctx, id, params, s.now().UTC())
}

func validateReview(params ReviewParams) error {
	if params.Status != nil && !params.Status.Valid() {
		return validate.FieldErrors{"status": fmt.Sprintf("unknown status %q", *params.Status)}
	}
	return nil
}

func requireEmail(errs validate.FieldErrors, field, value string) {
	if _, set := errs[field]; set || value == "" {
		return
	}
	at := strings.Index(value, "@")
	if at <= 0 || at == len(value)-1 {
		errs[field] = "must be a valid email address"
	}
}

func (s *Service) notifyAsync(subject, body string) {
	if s.notifier == nil {
		return
	}
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()
		if err := s.notifier.Send(ctx, notify.Message{Subject: subject, Body: body}); err != nil {
			s.log.Warn("submission notification failed", zap.String("subject", subject), zap.Error(err))
		}
	}()
}
