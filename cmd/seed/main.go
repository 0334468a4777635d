// Command seed fills a development database with realistic demo data. It
// goes through the real services so every record passes the same
// validation as production traffic.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jaswdr/faker"
	"go.uber.org/zap"

	"fleetflow/application"
	"fleetflow/config"
	"fleetflow/db"
	"fleetflow/fleet"
)

func main() {
	cfgFile := flag.String("config", "", "path to config file (optional)")
	riders := flag.Int("riders", 10, "rider applications to create")
	drivers := flag.Int("drivers", 8, "fleet drivers to create")
	clients := flag.Int("clients", 4, "business clients to create")
	vehicles := flag.Int("vehicles", 6, "vehicles to create")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("bootstrap database pool: %v", err)
	}
	defer pool.Close()

	appSvc := application.NewService(application.NewRepository(pool), nil, zap.NewNop())
	fleetSvc := fleet.NewService(fleet.NewRepository(pool))

	f := faker.New()

	emirate := func() string {
		return f.RandomStringElement(application.Emirates)
	}
	vehicleType := func() string {
		return f.RandomStringElement(application.VehicleTypes)
	}
	phone := func() string {
		return fmt.Sprintf("+9715%08d", f.IntBetween(0, 99999999))
	}
	email := func(name string) string {
		slug := strings.ToLower(strings.ReplaceAll(name, " ", "."))
		return fmt.Sprintf("%s%d@example.com", slug, f.IntBetween(1, 999))
	}

	for i := 0; i < *riders; i++ {
		name := f.Person().Name()
		_, err := appSvc.SubmitRider(ctx, application.SubmitRiderParams{
			FullName:          name,
			Email:             email(name),
			Phone:             phone(),
			Nationality:       f.Address().Country(),
			City:              emirate(),
			VisaStatus:        f.RandomStringElement([]string{"employment", "visit", "own"}),
			LicenseType:       f.RandomStringElement([]string{"motorcycle", "light vehicle", "none"}),
			VehicleType:       vehicleType(),
			YearsOfExperience: f.IntBetween(0, 12),
			Availability:      f.RandomStringElement([]string{"full-time", "part-time", "weekends"}),
			PreferredArea:     f.Address().City(),
			Languages:         []string{"English", f.RandomStringElement([]string{"Arabic", "Hindi", "Urdu", "Tagalog"})},
		})
		if err != nil {
			log.Fatalf("seed rider %d: %v", i, err)
		}
	}

	for i := 0; i < *drivers; i++ {
		name := f.Person().Name()
		_, err := fleetSvc.CreateDriver(ctx, fleet.CreateDriverParams{
			FullName:       name,
			Email:          email(name),
			Phone:          phone(),
			Nationality:    f.Address().Country(),
			Emirate:        emirate(),
			EmiratesID:     fmt.Sprintf("784-%d-%07d-%d", f.IntBetween(1975, 2002), f.IntBetween(0, 9999999), f.IntBetween(0, 9)),
			LicenseNumber:  fmt.Sprintf("DXB-%05d", f.IntBetween(10000, 99999)),
			VehicleType:    vehicleType(),
			EmploymentType: f.RandomStringElement([]string{"full-time", "part-time"}),
			JoinDate:       time.Now().AddDate(0, -f.IntBetween(1, 24), 0).Format("2006-01-02"),
			BasicSalary:    float64(f.IntBetween(2000, 4500)),
			Accommodation:  float64(f.IntBetween(0, 800)),
			Transport:      float64(f.IntBetween(0, 500)),
		})
		if err != nil {
			log.Fatalf("seed driver %d: %v", i, err)
		}
	}

	for i := 0; i < *clients; i++ {
		contact := f.Person().Name()
		_, err := fleetSvc.CreateClient(ctx, fleet.CreateClientParams{
			CompanyName:         f.Company().Name(),
			Industry:            f.RandomStringElement([]string{"food delivery", "grocery", "pharmacy", "e-commerce"}),
			Emirate:             emirate(),
			Address:             f.Address().StreetAddress(),
			PrimaryContactName:  contact,
			PrimaryContactEmail: email(contact),
			PrimaryContactPhone: phone(),
		})
		if err != nil {
			log.Fatalf("seed client %d: %v", i, err)
		}
	}

	for i := 0; i < *vehicles; i++ {
		_, err := fleetSvc.CreateVehicle(ctx, fleet.CreateVehicleParams{
			Type:        vehicleType(),
			Make:        f.RandomStringElement([]string{"Honda", "Yamaha", "Toyota", "Nissan", "Mitsubishi"}),
			Model:       f.RandomStringElement([]string{"PCX 150", "NMax", "Hiace", "Urvan", "L300"}),
			Year:        f.IntBetween(2018, 2026),
			PlateNumber: fmt.Sprintf("%s %s %d", f.RandomStringElement([]string{"DXB", "AUH", "SHJ"}), f.RandomStringElement([]string{"A", "B", "C"}), f.IntBetween(100, 99999)),
		})
		if err != nil {
			log.Fatalf("seed vehicle %d: %v", i, err)
		}
	}

	log.Printf("seeded %d riders, %d drivers, %d clients, %d vehicles", *riders, *drivers, *clients, *vehicles)
}
