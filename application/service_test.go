package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"fleetflow/notify"
	"fleetflow/validate"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func validRiderParams() SubmitRiderParams {
	return SubmitRiderParams{
		FullName:          "Ahmed Hassan",
		Email:             "ahmed@example.com",
		Phone:             "+971501234567",
		Nationality:       "Egypt",
		City:              "Dubai",
		VisaStatus:        "employment",
		LicenseType:       "motorcycle",
		VehicleType:       "Motorcycle",
		YearsOfExperience: 3,
		Availability:      "full-time",
		PreferredArea:     "Deira",
		Languages:         []string{"Arabic", "English"},
	}
}

func TestService_SubmitRiderDefaults(t *testing.T) {
	repo := newFakeRepo()
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	svc := NewService(repo, nil, zap.NewNop()).WithClock(fixedClock(now))

	created, err := svc.SubmitRider(context.Background(), validRiderParams())
	if err != nil {
		t.Fatalf("submit rider: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Status != StatusPending {
		t.Fatalf("expected status %q got %q", StatusPending, created.Status)
	}
	if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
		t.Fatalf("expected both timestamps %v, got %v / %v", now, created.CreatedAt, created.UpdatedAt)
	}
	if created.FullName != "Ahmed Hassan" || created.City != "Dubai" {
		t.Fatalf("fields not echoed back: %+v", created)
	}

	stored, err := svc.GetRider(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get rider: %v", err)
	}
	if stored.ID != created.ID {
		t.Fatalf("expected stored id %q got %q", created.ID, stored.ID)
	}
}

func TestService_SubmitRiderMissingFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, zap.NewNop())

	params := validRiderParams()
	params.FullName = ""
	params.Languages = nil

	_, err := svc.SubmitRider(context.Background(), params)
	var fieldErrs validate.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fieldErrs["fullName"]; !ok {
		t.Fatalf("expected fullName in field errors, got %v", fieldErrs)
	}
	if _, ok := fieldErrs["languages"]; !ok {
		t.Fatalf("expected languages in field errors, got %v", fieldErrs)
	}
	if len(repo.riders) != 0 {
		t.Fatal("rejected submission must not be persisted")
	}
}

func TestService_SubmitRiderBadEnum(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, zap.NewNop())

	params := validRiderParams()
	params.VehicleType = "Hoverboard"

	_, err := svc.SubmitRider(context.Background(), params)
	var fieldErrs validate.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fieldErrs["vehicleType"]; !ok {
		t.Fatalf("expected vehicleType in field errors, got %v", fieldErrs)
	}
}

func TestService_SubmitContractorCounts(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, zap.NewNop())

	params := SubmitContractorParams{
		CompanyName:       "Rapid Fleet LLC",
		ContactName:       "Sara",
		Email:             "sara@rapidfleet.ae",
		Phone:             "+97142223333",
		TradeLicense:      "TL-88421",
		Emirate:           "Dubai",
		Motorcycles:       12,
		TotalDrivers:      0,
		InsuranceCoverage: "comprehensive",
	}
	_, err := svc.SubmitContractor(context.Background(), params)
	var fieldErrs validate.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors for zero totalDrivers, got %v", err)
	}
	if _, ok := fieldErrs["totalDrivers"]; !ok {
		t.Fatalf("expected totalDrivers in field errors, got %v", fieldErrs)
	}

	params.TotalDrivers = 15
	created, err := svc.SubmitContractor(context.Background(), params)
	if err != nil {
		t.Fatalf("submit contractor: %v", err)
	}
	if created.Motorcycles != 12 || created.TotalDrivers != 15 {
		t.Fatalf("fleet counts not stored: %+v", created)
	}
	if created.Cars != 0 || created.Bicycles != 0 {
		t.Fatalf("omitted counts should default to zero: %+v", created)
	}
}

func TestService_SubmitInquiryVehicleTypes(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, zap.NewNop())

	params := SubmitInquiryParams{
		CompanyName:      "Noon Mart",
		ContactName:      "Omar",
		Email:            "omar@noonmart.ae",
		Phone:            "+97143334444",
		Industry:         "grocery",
		CompanySize:      "51-200",
		Emirate:          "Sharjah",
		DeliveryVolume:   "500-1000/day",
		VehicleTypes:     []string{"Motorcycle", "Car"},
		RidersNeeded:     20,
		StartDate:        "2026-03-01",
		ContractDuration: "12 months",
	}
	created, err := svc.SubmitInquiry(context.Background(), params)
	if err != nil {
		t.Fatalf("submit inquiry: %v", err)
	}
	if len(created.VehicleTypes) != 2 {
		t.Fatalf("expected 2 vehicle types, got %v", created.VehicleTypes)
	}

	params.VehicleTypes = []string{"Motorcycle", "Rocket"}
	if _, err := svc.SubmitInquiry(context.Background(), params); err == nil {
		t.Fatal("expected rejection of unknown vehicle type")
	}
}

func TestService_ReviewRider(t *testing.T) {
	repo := newFakeRepo()
	base := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	current := base
	svc := NewService(repo, nil, zap.NewNop()).WithClock(func() time.Time { return current })

	created, err := svc.SubmitRider(context.Background(), validRiderParams())
	if err != nil {
		t.Fatalf("submit rider: %v", err)
	}

	current = base.Add(time.Hour)
	approved := StatusApproved
	notes := "docs verified"
	reviewed, err := svc.ReviewRider(context.Background(), created.ID, ReviewParams{Status: &approved, AdminNotes: &notes})
	if err != nil {
		t.Fatalf("review rider: %v", err)
	}
	if reviewed.Status != StatusApproved {
		t.Fatalf("expected status approved, got %q", reviewed.Status)
	}
	if reviewed.AdminNotes == nil || *reviewed.AdminNotes != "docs verified" {
		t.Fatalf("expected admin notes set, got %v", reviewed.AdminNotes)
	}
	if !reviewed.UpdatedAt.After(reviewed.CreatedAt) {
		t.Fatal("review must refresh updated_at")
	}

	// Notes-only patch keeps the status.
	followup := "second screening"
	reviewed, err = svc.ReviewRider(context.Background(), created.ID, ReviewParams{AdminNotes: &followup})
	if err != nil {
		t.Fatalf("notes-only review: %v", err)
	}
	if reviewed.Status != StatusApproved {
		t.Fatalf("notes-only patch changed status to %q", reviewed.Status)
	}
}

func TestService_ReviewRejectsUnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, zap.NewNop())

	created, err := svc.SubmitRider(context.Background(), validRiderParams())
	if err != nil {
		t.Fatalf("submit rider: %v", err)
	}

	bogus := Status("not-a-real-status")
	_, err = svc.ReviewRider(context.Background(), created.ID, ReviewParams{Status: &bogus})
	var fieldErrs validate.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors for unknown status, got %v", err)
	}

	stored, err := svc.GetRider(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get rider: %v", err)
	}
	if stored.Status != StatusPending {
		t.Fatalf("rejected review must not change stored status, got %q", stored.Status)
	}
}

func TestService_GetRiderNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, zap.NewNop())
	if _, err := svc.GetRider(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_SubmitSendsNotification(t *testing.T) {
	repo := newFakeRepo()
	sink := &fakeNotifier{}
	svc := NewService(repo, sink, zap.NewNop())

	if _, err := svc.SubmitRider(context.Background(), validRiderParams()); err != nil {
		t.Fatalf("submit rider: %v", err)
	}
	svc.Wait()

	msgs := sink.messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(msgs))
	}
	if msgs[0].Subject != "New rider application" {
		t.Fatalf("unexpected subject %q", msgs[0].Subject)
	}
}

func TestService_NotificationFailureDoesNotBlockSubmission(t *testing.T) {
	repo := newFakeRepo()
	sink := &fakeNotifier{err: errors.New("smtp down")}
	svc := NewService(repo, sink, zap.NewNop())

	created, err := svc.SubmitRider(context.Background(), validRiderParams())
	if err != nil {
		t.Fatalf("submit must succeed when notification fails: %v", err)
	}
	svc.Wait()

	if _, err := svc.GetRider(context.Background(), created.ID); err != nil {
		t.Fatalf("submission must be persisted despite notify failure: %v", err)
	}
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notify.Message
	err  error
}

func (f *fakeNotifier) Send(ctx context.Context, msg notify.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeNotifier) messages() []notify.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notify.Message(nil), f.sent...)
}

type fakeRepo struct {
	mu          sync.Mutex
	riders      map[string]RiderApplication
	contractors map[string]ContractorApplication
	inquiries   map[string]BusinessInquiry
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		riders:      make(map[string]RiderApplication),
		contractors: make(map[string]ContractorApplication),
		inquiries:   make(map[string]BusinessInquiry),
	}
}

func (f *fakeRepo) InsertRider(ctx context.Context, app RiderApplication) (RiderApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.riders[app.ID] = app
	return app, nil
}

func (f *fakeRepo) ListRiders(ctx context.Context) ([]RiderApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RiderApplication, 0, len(f.riders))
	for _, app := range f.riders {
		out = append(out, app)
	}
	return out, nil
}

func (f *fakeRepo) GetRider(ctx context.Context, id string) (RiderApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.riders[id]
	if !ok {
		return RiderApplication{}, ErrNotFound
	}
	return app, nil
}

func (f *fakeRepo) ReviewRider(ctx context.Context, id string, params ReviewParams, updatedAt time.Time) (RiderApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.riders[id]
	if !ok {
		return RiderApplication{}, ErrNotFound
	}
	if params.Status != nil {
		app.Status = *params.Status
	}
	if params.AdminNotes != nil {
		app.AdminNotes = params.AdminNotes
	}
	app.UpdatedAt = updatedAt
	f.riders[id] = app
	return app, nil
}

func (f *fakeRepo) InsertContractor(ctx context.Context, app ContractorApplication) (ContractorApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contractors[app.ID] = app
	return app, nil
}

func (f *fakeRepo) ListContractors(ctx context.Context) ([]ContractorApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]ContractorApplication, 0, len(f.contractors))
	for _, app := range f.contractors {
		out = append(out, app)
	}
	return out, nil
}

func (f *fakeRepo) GetContractor(ctx context.Context, id string) (ContractorApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.contractors[id]
	if !ok {
		return ContractorApplication{}, ErrNotFound
	}
	return app, nil
}

func (f *fakeRepo) ReviewContractor(ctx context.Context, id string, params ReviewParams, updatedAt time.Time) (ContractorApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.contractors[id]
	if !ok {
		return ContractorApplication{}, ErrNotFound
	}
	if params.Status != nil {
		app.Status = *params.Status
	}
	if params.AdminNotes != nil {
		app.AdminNotes = params.AdminNotes
	}
	app.UpdatedAt = updatedAt
	f.contractors[id] = app
	return app, nil
}

func (f *fakeRepo) InsertInquiry(ctx context.Context, inq BusinessInquiry) (BusinessInquiry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inquiries[inq.ID] = inq
	return inq, nil
}

func (f *fakeRepo) ListInquiries(ctx context.Context) ([]BusinessInquiry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]BusinessInquiry, 0, len(f.inquiries))
	for _, inq := range f.inquiries {
		out = append(out, inq)
	}
	return out, nil
}

func (f *fakeRepo) GetInquiry(ctx context.Context, id string) (BusinessInquiry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inq, ok := f.inquiries[id]
	if !ok {
		return BusinessInquiry{}, ErrNotFound
	}
	return inq, nil
}

func (f *fakeRepo) ReviewInquiry(ctx context.Context, id string, params ReviewParams, updatedAt time.Time) (BusinessInquiry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inq, ok := f.inquiries[id]
	if !ok {
		return BusinessInquiry{}, ErrNotFound
	}
	if params.Status != nil {
		inq.Status = *params.Status
	}
	if params.AdminNotes != nil {
		inq.AdminNotes = params.AdminNotes
	}
	inq.UpdatedAt = updatedAt
	f.inquiries[id] = inq
	return inq, nil
}
