package usecase

import (
	"context"

	"github.com/jhoicas/MedApp-api/internal/application/dto"
	"github.com/jhoicas/MedApp-api/internal/application/registration"
	"github.com/jhoicas/MedApp-api/internal/domain/entity"
	"github.com/jhoicas/MedApp-api/internal/domain/repository"
)

// DirectoryUseCase lecturas del directorio de doctores y pacientes.
// El orden de los listados no está garantizado.
type DirectoryUseCase struct {
	doctors  repository.DoctorRepository
	patients repository.PatientRepository
}

// NewDirectoryUseCase construye el caso de uso.
func NewDirectoryUseCase(doctors repository.DoctorRepository, patients repository.PatientRepository) *DirectoryUseCase {
	return &DirectoryUseCase{doctors: doctors, patients: patients}
}

// ListDoctors devuelve todos los doctores.
func (uc *DirectoryUseCase) ListDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := uc.doctors.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DoctorResponse, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, toDoctorResponse(d))
	}
	return out, nil
}

// GetDoctor obtiene un doctor por ID; nil si no existe.
func (uc *DirectoryUseCase) GetDoctor(ctx context.Context, id int64) (*dto.DoctorResponse, error) {
	doctor, err := uc.doctors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, nil
	}
	resp := toDoctorResponse(doctor)
	return &resp, nil
}

// ListPatients devuelve todos los pacientes.
func (uc *DirectoryUseCase) ListPatients(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := uc.patients.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PatientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, toPatientResponse(p))
	}
	return out, nil
}

// GetPatient obtiene un paciente por ID; nil si no existe.
func (uc *DirectoryUseCase) GetPatient(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	patient, err := uc.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, nil
	}
	resp := toPatientResponse(patient)
	return &resp, nil
}

func toDoctorResponse(d *entity.Doctor) dto.DoctorResponse {
	return dto.DoctorResponse{
		ID:            d.ID,
		UserID:        d.UserID,
		Specialty:     d.Specialty,
		LicenseNumber: d.LicenseNumber,
		CreatedAt:     d.CreatedAt,
	}
}

func toPatientResponse(p *entity.Patient) dto.PatientResponse {
	return dto.PatientResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		DateOfBirth:       p.DateOfBirth.Format(registration.DateOfBirthLayout),
		InsuranceProvider: p.InsuranceProvider,
		CreatedAt:         p.CreatedAt,
	}
}
