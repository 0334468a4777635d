package fleet

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fleetflow/validate"
)

func validDriverParams() CreateDriverParams {
	return CreateDriverParams{
		FullName:       "Imran Khan",
		Email:          "imran@example.com",
		Phone:          "+971502223344",
		Nationality:    "Pakistan",
		Emirate:        "Dubai",
		EmiratesID:     "784-1990-1234567-1",
		LicenseNumber:  "DXB-55821",
		VehicleType:    "Motorcycle",
		EmploymentType: "full-time",
		JoinDate:       "2026-01-15",
		BasicSalary:    2500,
		Accommodation:  500,
		Transport:      300,
	}
}

func TestService_CreateDriverDefaults(t *testing.T) {
	repo := newFakeFleetRepo()
	now := time.Date(2026, 2, 12, 10, 0, 0, 0, time.UTC)
	svc := NewService(repo).WithClock(func() time.Time { return now })

	d, err := svc.CreateDriver(context.Background(), validDriverParams())
	if err != nil {
		t.Fatalf("create driver: %v", err)
	}
	if d.ID == "" {
		t.Fatal("expected generated id")
	}
	if d.Status != StatusActive {
		t.Fatalf("expected default status active, got %q", d.Status)
	}
	if !d.CreatedAt.Equal(now) || !d.UpdatedAt.Equal(now) {
		t.Fatalf("expected both timestamps %v, got %v / %v", now, d.CreatedAt, d.UpdatedAt)
	}
}

func TestService_CreateDriverValidation(t *testing.T) {
	svc := NewService(newFakeFleetRepo())

	params := validDriverParams()
	params.Emirate = "Cairo"
	params.BasicSalary = -100

	_, err := svc.CreateDriver(context.Background(), params)
	var fieldErrs validate.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fieldErrs["emirate"]; !ok {
		t.Fatalf("expected emirate in field errors, got %v", fieldErrs)
	}
	if _, ok := fieldErrs["basicSalary"]; !ok {
		t.Fatalf("expected basicSalary in field errors, got %v", fieldErrs)
	}
}

func TestService_UpdateDriverPartial(t *testing.T) {
	repo := newFakeFleetRepo()
	base := time.Date(2026, 2, 12, 10, 0, 0, 0, time.UTC)
	current := base
	svc := NewService(repo).WithClock(func() time.Time { return current })

	d, err := svc.CreateDriver(context.Background(), validDriverParams())
	if err != nil {
		t.Fatalf("create driver: %v", err)
	}

	current = base.Add(time.Hour)
	phone := "+971509998877"
	salary := 3000.0
	updated, err := svc.UpdateDriver(context.Background(), d.ID, UpdateDriverParams{
		Phone:       &phone,
		BasicSalary: &salary,
	})
	if err != nil {
		t.Fatalf("update driver: %v", err)
	}
	if updated.Phone != phone || updated.BasicSalary != salary {
		t.Fatalf("patched fields not applied: %+v", updated)
	}
	if updated.FullName != d.FullName || updated.Emirate != d.Emirate {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Fatal("update must refresh updated_at")
	}
}

func TestService_UpdateDriverInvalidStatus(t *testing.T) {
	repo := newFakeFleetRepo()
	svc := NewService(repo)

	d, err := svc.CreateDriver(context.Background(), validDriverParams())
	if err != nil {
		t.Fatalf("create driver: %v", err)
	}

	bogus := EntityStatus("frozen")
	if _, err := svc.UpdateDriver(context.Background(), d.ID, UpdateDriverParams{Status: &bogus}); err == nil {
		t.Fatal("expected rejection of unknown status")
	}

	stored, err := svc.GetDriver(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("get driver: %v", err)
	}
	if stored.Status != StatusActive {
		t.Fatalf("rejected update must not change stored status, got %q", stored.Status)
	}
}

func TestService_DeleteDriverNotFound(t *testing.T) {
	svc := NewService(newFakeFleetRepo())
	if err := svc.DeleteDriver(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_CreateVehicleDefaults(t *testing.T) {
	svc := NewService(newFakeFleetRepo())

	v, err := svc.CreateVehicle(context.Background(), CreateVehicleParams{
		Type:        "Motorcycle",
		Make:        "Honda",
		Model:       "PCX 150",
		Year:        2024,
		PlateNumber: "DXB A 12345",
	})
	if err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	if v.Status != VehicleAvailable {
		t.Fatalf("expected default status available, got %q", v.Status)
	}
	if v.Ownership != OwnedByCompany {
		t.Fatalf("expected default ownership company, got %q", v.Ownership)
	}

	_, err = svc.CreateVehicle(context.Background(), CreateVehicleParams{
		Type:        "Motorcycle",
		Make:        "Honda",
		Model:       "PCX 150",
		Year:        1985,
		PlateNumber: "DXB A 12346",
	})
	if err == nil {
		t.Fatal("expected rejection of pre-1990 year")
	}
}

func TestService_UpdateVehicleRejectsBadYear(t *testing.T) {
	repo := newFakeFleetRepo()
	svc := NewService(repo)

	v, err := svc.CreateVehicle(context.Background(), CreateVehicleParams{
		Type:        "Motorcycle",
		Make:        "Honda",
		Model:       "PCX 150",
		Year:        2024,
		PlateNumber: "DXB A 12345",
	})
	if err != nil {
		t.Fatalf("create vehicle: %v", err)
	}

	bad := -5
	_, err = svc.UpdateVehicle(context.Background(), v.ID, UpdateVehicleParams{Year: &bad})
	var fieldErrs validate.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors for negative year, got %v", err)
	}
	if _, ok := fieldErrs["year"]; !ok {
		t.Fatalf("expected year in field errors, got %v", fieldErrs)
	}

	stored, err := svc.GetVehicle(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("get vehicle: %v", err)
	}
	if stored.Year != 2024 {
		t.Fatalf("rejected patch must not change stored year, got %d", stored.Year)
	}
}

func TestService_AssignmentSoftReferences(t *testing.T) {
	repo := newFakeFleetRepo()
	svc := NewService(repo)

	// References to records that do not exist are accepted.
	a, err := svc.CreateAssignment(context.Background(), CreateAssignmentParams{
		DriverID:  "ghost-driver",
		ClientID:  "ghost-client",
		StartDate: "2026-03-01",
		ShiftType: "morning",
	})
	if err != nil {
		t.Fatalf("create assignment: %v", err)
	}
	if a.Status != AssignmentActive {
		t.Fatalf("expected default status active, got %q", a.Status)
	}

	view, err := svc.GetAssignment(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("get assignment: %v", err)
	}
	if view.DriverName != UnknownDriverLabel || view.DriverResolved {
		t.Fatalf("expected unresolved driver fallback, got %q resolved=%v", view.DriverName, view.DriverResolved)
	}
	if view.ClientName != UnknownClientLabel || view.ClientResolved {
		t.Fatalf("expected unresolved client fallback, got %q resolved=%v", view.ClientName, view.ClientResolved)
	}
	if view.VehicleLabel != UnassignedVehicleLabel || view.VehicleResolved {
		t.Fatalf("expected unassigned vehicle fallback, got %q resolved=%v", view.VehicleLabel, view.VehicleResolved)
	}
}

func TestService_AssignmentResolvesReferences(t *testing.T) {
	repo := newFakeFleetRepo()
	svc := NewService(repo)

	d, err := svc.CreateDriver(context.Background(), validDriverParams())
	if err != nil {
		t.Fatalf("create driver: %v", err)
	}
	cl, err := svc.CreateClient(context.Background(), CreateClientParams{
		CompanyName:         "Talabat Mart",
		Industry:            "grocery",
		Emirate:             "Dubai",
		Address:             "Business Bay",
		PrimaryContactName:  "Lina",
		PrimaryContactEmail: "lina@talabatmart.ae",
		PrimaryContactPhone: "+97145556666",
	})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	v, err := svc.CreateVehicle(context.Background(), CreateVehicleParams{
		Type:        "Motorcycle",
		Make:        "Honda",
		Model:       "PCX 150",
		Year:        2024,
		PlateNumber: "DXB A 777",
	})
	if err != nil {
		t.Fatalf("create vehicle: %v", err)
	}

	a, err := svc.CreateAssignment(context.Background(), CreateAssignmentParams{
		DriverID:  d.ID,
		ClientID:  cl.ID,
		VehicleID: &v.ID,
		StartDate: "2026-03-01",
		ShiftType: "evening",
	})
	if err != nil {
		t.Fatalf("create assignment: %v", err)
	}

	view, err := svc.GetAssignment(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("get assignment: %v", err)
	}
	if !view.DriverResolved || view.DriverName != d.FullName {
		t.Fatalf("expected resolved driver %q, got %q", d.FullName, view.DriverName)
	}
	if !view.ClientResolved || view.ClientName != cl.CompanyName {
		t.Fatalf("expected resolved client %q, got %q", cl.CompanyName, view.ClientName)
	}
	if !view.VehicleResolved || view.VehicleLabel != v.PlateNumber {
		t.Fatalf("expected resolved vehicle %q, got %q", v.PlateNumber, view.VehicleLabel)
	}

	// Deleting the driver leaves the assignment in place and the view
	// falls back to the label.
	if err := svc.DeleteDriver(context.Background(), d.ID); err != nil {
		t.Fatalf("delete driver: %v", err)
	}
	view, err = svc.GetAssignment(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("get assignment after driver delete: %v", err)
	}
	if view.DriverResolved || view.DriverName != UnknownDriverLabel {
		t.Fatalf("expected fallback after delete, got %q resolved=%v", view.DriverName, view.DriverResolved)
	}
}

func TestService_UpdateAssignment(t *testing.T) {
	repo := newFakeFleetRepo()
	svc := NewService(repo)

	a, err := svc.CreateAssignment(context.Background(), CreateAssignmentParams{
		DriverID:  "d-1",
		ClientID:  "c-1",
		StartDate: "2026-03-01",
		ShiftType: "morning",
	})
	if err != nil {
		t.Fatalf("create assignment: %v", err)
	}

	done := AssignmentCompleted
	end := "2026-06-01"
	updated, err := svc.UpdateAssignment(context.Background(), a.ID, UpdateAssignmentParams{
		Status:  &done,
		EndDate: &end,
	})
	if err != nil {
		t.Fatalf("update assignment: %v", err)
	}
	if updated.Status != AssignmentCompleted {
		t.Fatalf("expected status completed, got %q", updated.Status)
	}
	if updated.EndDate == nil || *updated.EndDate != end {
		t.Fatalf("expected end date %q, got %v", end, updated.EndDate)
	}
	if updated.DriverID != "d-1" || updated.ShiftType != "morning" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

type fakeFleetRepo struct {
	mu          sync.Mutex
	drivers     map[string]Driver
	contractors map[string]Contractor
	clients     map[string]Client
	vehicles    map[string]Vehicle
	assignments map[string]Assignment
}

func newFakeFleetRepo() *fakeFleetRepo {
	return &fakeFleetRepo{
		drivers:     make(map[string]Driver),
		contractors: make(map[string]Contractor),
		clients:     make(map[string]Client),
		vehicles:    make(map[string]Vehicle),
		assignments: make(map[string]Assignment),
	}
}

func (f *fakeFleetRepo) InsertDriver(ctx context.Context, d Driver) (Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drivers[d.ID] = d
	return d, nil
}

func (f *fakeFleetRepo) ListDrivers(ctx context.Context) ([]Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Driver, 0, len(f.drivers))
	for _, d := range f.drivers {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeFleetRepo) GetDriver(ctx context.Context, id string) (Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.drivers[id]
	if !ok {
		return Driver{}, ErrNotFound
	}
	return d, nil
}

func (f *fakeFleetRepo) UpdateDriver(ctx context.Context, d Driver) (Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.drivers[d.ID]; !ok {
		return Driver{}, ErrNotFound
	}
	f.drivers[d.ID] = d
	return d, nil
}

func (f *fakeFleetRepo) DeleteDriver(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.drivers[id]; !ok {
		return ErrNotFound
	}
	delete(f.drivers, id)
	return nil
}

func (f *fakeFleetRepo) InsertContractor(ctx context.Context, c Contractor) (Contractor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contractors[c.ID] = c
	return c, nil
}

func (f *fakeFleetRepo) ListContractors(ctx context.Context) ([]Contractor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Contractor, 0, len(f.contractors))
	for _, c := range f.contractors {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeFleetRepo) GetContractor(ctx context.Context, id string) (Contractor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.contractors[id]
	if !ok {
		return Contractor{}, ErrNotFound
	}
	return c, nil
}

func (f *fakeFleetRepo) UpdateContractor(ctx context.Context, c Contractor) (Contractor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.contractors[c.ID]; !ok {
		return Contractor{}, ErrNotFound
	}
	f.contractors[c.ID] = c
	return c, nil
}

func (f *fakeFleetRepo) DeleteContractor(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.contractors[id]; !ok {
		return ErrNotFound
	}
	delete(f.contractors, id)
	return nil
}

func (f *fakeFleetRepo) InsertClient(ctx context.Context, c Client) (Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clients[c.ID] = c
	return c, nil
}

func (f *fakeFleetRepo) ListClients(ctx context.Context) ([]Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Client, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeFleetRepo) GetClient(ctx context.Context, id string) (Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.clients[id]
	if !ok {
		return Client{}, ErrNotFound
	}
	return c, nil
}

func (f *fakeFleetRepo) UpdateClient(ctx context.Context, c Client) (Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.clients[c.ID]; !ok {
		return Client{}, ErrNotFound
	}
	f.clients[c.ID] = c
	return c, nil
}

func (f *fakeFleetRepo) DeleteClient(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.clients[id]; !ok {
		return ErrNotFound
	}
	delete(f.clients, id)
	return nil
}

func (f *fakeFleetRepo) InsertVehicle(ctx context.Context, v Vehicle) (Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vehicles[v.ID] = v
	return v, nil
}

func (f *fakeFleetRepo) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Vehicle, 0, len(f.vehicles))
	for _, v := range f.vehicles {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeFleetRepo) GetVehicle(ctx context.Context, id string) (Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.vehicles[id]
	if !ok {
		return Vehicle{}, ErrNotFound
	}
	return v, nil
}

func (f *fakeFleetRepo) UpdateVehicle(ctx context.Context, v Vehicle) (Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.vehicles[v.ID]; !ok {
		return Vehicle{}, ErrNotFound
	}
	f.vehicles[v.ID] = v
	return v, nil
}

func (f *fakeFleetRepo) DeleteVehicle(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.vehicles[id]; !ok {
		return ErrNotFound
	}
	delete(f.vehicles, id)
	return nil
}

func (f *fakeFleetRepo) InsertAssignment(ctx context.Context, a Assignment) (Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assignments[a.ID] = a
	return a, nil
}

func (f *fakeFleetRepo) ListAssignments(ctx context.Context) ([]AssignmentRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]AssignmentRow, 0, len(f.assignments))
	for _, a := range f.assignments {
		out = append(out, f.join(a))
	}
	return out, nil
}

func (f *fakeFleetRepo) GetAssignment(ctx context.Context, id string) (AssignmentRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.assignments[id]
	if !ok {
		return AssignmentRow{}, ErrNotFound
	}
	return f.join(a), nil
}

func (f *fakeFleetRepo) UpdateAssignment(ctx context.Context, a Assignment) (Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.assignments[a.ID]; !ok {
		return Assignment{}, ErrNotFound
	}
	f.assignments[a.ID] = a
	return a, nil
}

func (f *fakeFleetRepo) DeleteAssignment(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.assignments[id]; !ok {
		return ErrNotFound
	}
	delete(f.assignments, id)
	return nil
}

// join mirrors the LEFT JOIN the real store performs.
func (f *fakeFleetRepo) join(a Assignment) AssignmentRow {
	row := AssignmentRow{Assignment: a}
	if d, ok := f.drivers[a.DriverID]; ok {
		name := d.FullName
		row.DriverName = &name
	}
	if c, ok := f.clients[a.ClientID]; ok {
		name := c.CompanyName
		row.ClientName = &name
	}
	if a.VehicleID != nil {
		if v, ok := f.vehicles[*a.VehicleID]; ok {
			plate := v.PlateNumber
			row.VehiclePlate = &plate
		}
	}
	return row
}
