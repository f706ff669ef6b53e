// Package seed loads the demo hospital: three patients, three doctors, one
// staff member and three medical resources. IDs are derived from short
// names ("p1", "d1", "r1") so every run produces the same UUIDs.
package seed

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var namespace = uuid.MustParse("6f1c7f7e-4a55-4b8e-9d3f-2f0b8b7d1c20")

// ID returns the demo UUID for a short name such as "p1".
func ID(name string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(name))
}

func Patients() []entity.Patient {
	return []entity.Patient{
		{ID: ID("p1"), Name: "John Doe", Email: "patient@example.com", PhoneNumber: "123-456-7890", Balance: decimal.NewFromInt(1000)},
		{ID: ID("p2"), Name: "Alice Smith", Email: "alice@example.com", PhoneNumber: "987-654-3210", Balance: decimal.NewFromInt(500)},
		{ID: ID("p3"), Name: "Bob Johnson", Email: "bob@example.com", PhoneNumber: "555-123-4567", Balance: decimal.NewFromInt(250)},
	}
}

func Doctors() []entity.Doctor {
	return []entity.Doctor{
		{
			ID:             ID("d1"),
			Name:           "Dr. Emma Smith",
			Email:          "doctor@example.com",
			Specialization: "Cardiology",
			Rating:         4.8,
			Experience:     8,
			Bio:            "Specialized in cardiovascular health with 8+ years of experience.",
			AvailableDays:  entity.StringList{"Monday", "Tuesday", "Wednesday", "Friday"},
			Price:          decimal.NewFromInt(150),
		},
		{
			ID:             ID("d2"),
			Name:           "Dr. Michael Brown",
			Email:          "michael@example.com",
			Specialization: "Neurology",
			Rating:         4.5,
			Experience:     12,
			Bio:            "Expert in neurological disorders and treatments.",
			AvailableDays:  entity.StringList{"Tuesday", "Thursday", "Saturday"},
			Price:          decimal.NewFromInt(200),
		},
		{
			ID:             ID("d3"),
			Name:           "Dr. Sarah Lee",
			Email:          "sarah@example.com",
			Specialization: "Pediatrics",
			Rating:         4.9,
			Experience:     5,
			Bio:            "Passionate about providing the best care for children.",
			AvailableDays:  entity.StringList{"Monday", "Wednesday", "Friday"},
			Price:          decimal.NewFromInt(120),
		},
	}
}

func Staff() []entity.Staff {
	return []entity.Staff{
		{ID: ID("s1"), Name: "Nina Park", Email: "staff@example.com", Department: "Radiology"},
	}
}

func Resources() []entity.MedicalResource {
	return []entity.MedicalResource{
		{ID: ID("r1"), Name: "MRI Machine", Type: "Imaging", Department: "Radiology", IsAvailable: true, Quantity: 1},
		{ID: ID("r2"), Name: "Ventilator", Type: "Life Support", Department: "ICU", IsAvailable: true, Quantity: 5},
		{ID: ID("r3"), Name: "Surgical Kit", Type: "Equipment", Department: "Surgery", IsAvailable: false, Quantity: 10},
	}
}

// Load writes the demo records in one transaction. It does nothing when the
// first demo patient already exists.
func Load(ctx context.Context, store repository.Store, log *logrus.Logger) error {
	return store.Transaction(ctx, func(tx repository.Store) error {
		existing, err := tx.Patients().FindByID(ctx, ID("p1"))
		if err != nil {
			return err
		}
		if existing != nil {
			log.Info("Demo data already present, skipping seed")
			return nil
		}

		for _, p := range Patients() {
			if err := tx.Patients().Create(ctx, &p); err != nil {
				return err
			}
		}
		for _, d := range Doctors() {
			if err := tx.Doctors().Create(ctx, &d); err != nil {
				return err
			}
		}
		for _, s := range Staff() {
			if err := tx.Staff().Create(ctx, &s); err != nil {
				return err
			}
		}
		for _, r := range Resources() {
			if err := tx.Resources().Create(ctx, &r); err != nil {
				return err
			}
		}

		log.Info("Demo data seeded")
		return nil
	})
}
