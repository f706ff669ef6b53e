package memory

import (
	"context"
	"slices"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
)

type patientRepository struct{ s *Store }

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return r.s.write(ctx, func(st *state) error {
		ensureID(&patient.ID)
		stamp(&patient.CreatedAt, &patient.UpdatedAt)
		st.patients = append(st.patients, *patient)
		return nil
	})
}

func (r *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patient *entity.Patient
	err := r.s.read(ctx, func(st *state) {
		patient = findOne(st.patients, func(p *entity.Patient) bool { return p.ID == id })
	})
	return patient, err
}

// FindByIDForUpdate is FindByID: transactions already hold the store's write lock.
func (r *patientRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	return r.FindByID(ctx, id)
}

func (r *patientRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Patient, error) {
	set := idSet(ids)
	var patients []entity.Patient
	err := r.s.read(ctx, func(st *state) {
		patients = findAll(st.patients, func(p *entity.Patient) bool {
			_, ok := set[p.ID]
			return ok
		})
	})
	return patients, err
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := r.s.read(ctx, func(st *state) {
		patients = slices.Clone(st.patients)
	})
	if patients == nil {
		patients = []entity.Patient{}
	}
	return patients, err
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	return r.s.write(ctx, func(st *state) error {
		stamp(nil, &patient.UpdatedAt)
		return replaceOne(st.patients, func(p *entity.Patient) bool { return p.ID == patient.ID }, *patient)
	})
}

type doctorRepository struct{ s *Store }

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	return r.s.write(ctx, func(st *state) error {
		ensureID(&doctor.ID)
		stamp(&doctor.CreatedAt, &doctor.UpdatedAt)
		stored := *doctor
		stored.AvailableDays = slices.Clone(doctor.AvailableDays)
		st.doctors = append(st.doctors, stored)
		return nil
	})
}

func (r *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	var doctor *entity.Doctor
	err := r.s.read(ctx, func(st *state) {
		doctor = findOne(st.doctors, func(d *entity.Doctor) bool { return d.ID == id })
	})
	if doctor != nil {
		doctor.AvailableDays = slices.Clone(doctor.AvailableDays)
	}
	return doctor, err
}

func (r *doctorRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Doctor, error) {
	set := idSet(ids)
	return r.find(ctx, func(d *entity.Doctor) bool {
		_, ok := set[d.ID]
		return ok
	})
}

func (r *doctorRepository) FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	return r.find(ctx, func(d *entity.Doctor) bool {
		return filter == nil || filter.Matches(d)
	})
}

func (r *doctorRepository) find(ctx context.Context, match func(*entity.Doctor) bool) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := r.s.read(ctx, func(st *state) {
		doctors = findAll(st.doctors, match)
	})
	for i := range doctors {
		doctors[i].AvailableDays = slices.Clone(doctors[i].AvailableDays)
	}
	return doctors, err
}

func (r *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	return r.s.write(ctx, func(st *state) error {
		stamp(nil, &doctor.UpdatedAt)
		stored := *doctor
		stored.AvailableDays = slices.Clone(doctor.AvailableDays)
		return replaceOne(st.doctors, func(d *entity.Doctor) bool { return d.ID == doctor.ID }, stored)
	})
}

type staffRepository struct{ s *Store }

func (r *staffRepository) Create(ctx context.Context, staff *entity.Staff) error {
	return r.s.write(ctx, func(st *state) error {
		ensureID(&staff.ID)
		stamp(&staff.CreatedAt, nil)
		st.staff = append(st.staff, *staff)
		return nil
	})
}

func (r *staffRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	var staff *entity.Staff
	err := r.s.read(ctx, func(st *state) {
		staff = findOne(st.staff, func(s *entity.Staff) bool { return s.ID == id })
	})
	return staff, err
}
