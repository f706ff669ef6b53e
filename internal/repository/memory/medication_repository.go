package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"

	"github.com/google/uuid"
)

type medicationRepository struct{ s *Store }

func (r *medicationRepository) Create(ctx context.Context, medication *entity.Medication) error {
	return r.s.write(ctx, func(st *state) error {
		if findOne(st.medications, func(m *entity.Medication) bool { return m.Name == medication.Name }) != nil {
			return repository.ErrDuplicateMedication
		}
		stamp(&medication.CreatedAt, nil)
		st.medications = append(st.medications, *medication)
		return nil
	})
}

func (r *medicationRepository) FindByName(ctx context.Context, name string) (*entity.Medication, error) {
	var medication *entity.Medication
	err := r.s.read(ctx, func(st *state) {
		medication = findOne(st.medications, func(m *entity.Medication) bool { return m.Name == name })
	})
	return medication, err
}

func (r *medicationRepository) FindByNames(ctx context.Context, names []string) ([]entity.Medication, error) {
	var medications []entity.Medication
	err := r.s.read(ctx, func(st *state) {
		medications = findAll(st.medications, func(m *entity.Medication) bool { return slices.Contains(names, m.Name) })
	})
	sortMedications(medications)
	return medications, err
}

func (r *medicationRepository) FindAll(ctx context.Context) ([]entity.Medication, error) {
	var medications []entity.Medication
	err := r.s.read(ctx, func(st *state) {
		medications = findAll(st.medications, func(*entity.Medication) bool { return true })
	})
	sortMedications(medications)
	return medications, err
}

func sortMedications(medications []entity.Medication) {
	slices.SortFunc(medications, func(a, b entity.Medication) int { return cmp.Compare(a.Name, b.Name) })
}

type prescriptionRepository struct{ s *Store }

func (r *prescriptionRepository) Create(ctx context.Context, prescription *entity.Prescription) error {
	return r.s.write(ctx, func(st *state) error {
		if findOne(st.prescriptions, samePrescription(prescription.AppointmentID, prescription.MedicationName)) != nil {
			return repository.ErrDuplicatePrescription
		}
		ensureID(&prescription.ID)
		stamp(&prescription.CreatedAt, nil)
		st.prescriptions = append(st.prescriptions, *prescription)
		return nil
	})
}

func (r *prescriptionRepository) Find(ctx context.Context, appointmentID uuid.UUID, medicationName string) (*entity.Prescription, error) {
	var prescription *entity.Prescription
	err := r.s.read(ctx, func(st *state) {
		prescription = findOne(st.prescriptions, samePrescription(appointmentID, medicationName))
	})
	return prescription, err
}

func (r *prescriptionRepository) FindByAppointmentIDs(ctx context.Context, appointmentIDs []uuid.UUID) ([]entity.Prescription, error) {
	set := idSet(appointmentIDs)
	var prescriptions []entity.Prescription
	err := r.s.read(ctx, func(st *state) {
		prescriptions = findAll(st.prescriptions, func(p *entity.Prescription) bool {
			_, ok := set[p.AppointmentID]
			return ok
		})
	})
	return prescriptions, err
}

func (r *prescriptionRepository) Delete(ctx context.Context, appointmentID uuid.UUID, medicationName string) error {
	return r.s.write(ctx, func(st *state) error {
		i := slices.IndexFunc(st.prescriptions, func(p entity.Prescription) bool {
			return p.AppointmentID == appointmentID && p.MedicationName == medicationName
		})
		if i < 0 {
			return repository.ErrRecordNotFound
		}
		st.prescriptions = slices.Delete(st.prescriptions, i, i+1)
		return nil
	})
}

func samePrescription(appointmentID uuid.UUID, medicationName string) func(*entity.Prescription) bool {
	return func(p *entity.Prescription) bool {
		return p.AppointmentID == appointmentID && p.MedicationName == medicationName
	}
}
