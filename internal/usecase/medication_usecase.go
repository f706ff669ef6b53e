package usecase

import (
	"context"
	"strings"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/converter"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/apperror"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPrescriptionNotFound  = apperror.New(apperror.ErrNotFound, "medication is not prescribed for this appointment")
	ErrInvalidMedicationName = apperror.New(apperror.ErrValidation, "medication name must not be blank")
)

type MedicationUsecase interface {
	ListMedications(ctx context.Context) (*dto.MedicationListResponse, error)
	PrescribeMedication(ctx context.Context, appointmentID uuid.UUID, req *dto.PrescribeMedicationRequest) (*dto.PrescriptionResponse, error)
	GetAppointmentMedications(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentMedicationsResponse, error)
	RemovePrescription(ctx context.Context, appointmentID uuid.UUID, name string) error
}

type medicationUsecase struct {
	store        repository.Store
	log          *logrus.Logger
	auditService service.AuditService
}

func NewMedicationUsecase(store repository.Store, log *logrus.Logger, auditService service.AuditService) MedicationUsecase {
	return &medicationUsecase{
		store:        store,
		log:          log,
		auditService: auditService,
	}
}

func (u *medicationUsecase) ListMedications(ctx context.Context) (*dto.MedicationListResponse, error) {
	medications, err := u.store.Medications().FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find medications: %+v", err)
		return nil, err
	}

	return &dto.MedicationListResponse{
		Medications: converter.MedicationsToResponses(medications),
		Total:       len(medications),
	}, nil
}

// PrescribeMedication adds the medication to the catalogue when the name is
// new and links it to the appointment. Prescribing the same name twice
// returns the existing link with Created unset.
func (u *medicationUsecase) PrescribeMedication(ctx context.Context, appointmentID uuid.UUID, req *dto.PrescribeMedicationRequest) (*dto.PrescriptionResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidMedicationName
	}

	var (
		medication *entity.Medication
		created    bool
	)
	err := u.store.Transaction(ctx, func(tx repository.Store) error {
		appointment, err := tx.Appointments().FindByID(ctx, appointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}

		medication, err = tx.Medications().FindByName(ctx, name)
		if err != nil {
			return err
		}
		if medication == nil {
			medication = &entity.Medication{
				Name:        name,
				Description: req.Description,
				Information: req.Information,
			}
			if err := tx.Medications().Create(ctx, medication); err != nil {
				return err
			}
			if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionMedicationCreate, "medication", medication.Name, *medication); err != nil {
				return err
			}
		}

		existing, err := tx.Prescriptions().Find(ctx, appointmentID, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}

		prescription := &entity.Prescription{
			ID:             uuid.New(),
			AppointmentID:  appointmentID,
			MedicationName: name,
		}
		if err := tx.Prescriptions().Create(ctx, prescription); err != nil {
			return err
		}
		created = true
		return u.auditService.LogCreate(ctx, tx, entity.AuditActionPrescriptionCreate, "prescription", prescription.ID.String(), *prescription)
	})
	if err != nil {
		if !isDomainError(err) {
			u.log.Warnf("Failed to prescribe %q for appointment %s: %+v", name, appointmentID, err)
		}
		return nil, err
	}

	if created {
		u.log.Infof("Medication prescribed: appointment=%s, medication=%q", appointmentID, name)
	}
	return &dto.PrescriptionResponse{
		AppointmentID: appointmentID,
		Medication:    *converter.MedicationToResponse(medication),
		Created:       created,
	}, nil
}

func (u *medicationUsecase) GetAppointmentMedications(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentMedicationsResponse, error) {
	appointment, err := u.store.Appointments().FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	prescriptions, err := u.store.Prescriptions().FindByAppointmentIDs(ctx, []uuid.UUID{appointmentID})
	if err != nil {
		u.log.Warnf("Failed to find prescriptions of appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	names := make([]string, len(prescriptions))
	for i := range prescriptions {
		names[i] = prescriptions[i].MedicationName
	}
	medications, err := u.store.Medications().FindByNames(ctx, names)
	if err != nil {
		u.log.Warnf("Failed to find medications of appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	return &dto.AppointmentMedicationsResponse{
		AppointmentID: appointmentID,
		Medications:   converter.MedicationsToResponses(medications),
		Total:         len(medications),
	}, nil
}

// RemovePrescription unlinks the medication from the appointment. The
// catalogue entry stays.
func (u *medicationUsecase) RemovePrescription(ctx context.Context, appointmentID uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidMedicationName
	}

	err := u.store.Transaction(ctx, func(tx repository.Store) error {
		existing, err := tx.Prescriptions().Find(ctx, appointmentID, name)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrPrescriptionNotFound
		}
		if err := tx.Prescriptions().Delete(ctx, appointmentID, name); err != nil {
			if repository.IsNotFound(err) {
				return ErrPrescriptionNotFound
			}
			return err
		}
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionPrescriptionDelete, "prescription", existing.ID.String(), *existing, nil)
	})
	if err != nil {
		if !isDomainError(err) {
			u.log.Warnf("Failed to remove %q from appointment %s: %+v", name, appointmentID, err)
		}
		return err
	}

	u.log.Infof("Prescription removed: appointment=%s, medication=%q", appointmentID, name)
	return nil
}
