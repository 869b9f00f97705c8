package registration

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/MedApp-api/internal/application/dto"
	"github.com/jhoicas/MedApp-api/internal/domain"
	"github.com/jhoicas/MedApp-api/internal/domain/entity"
	"github.com/jhoicas/MedApp-api/internal/domain/repository"
)

// DateOfBirthLayout formato aceptado para date_of_birth.
const DateOfBirthLayout = "2006-01-02"

// TxRunner ejecuta fn con repos atados a una misma transacción, de modo que la
// verificación de exclusividad de rol y el insert compartan snapshot.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		doctors repository.DoctorRepository,
		patients repository.PatientRepository,
	) error) error
}

// UseCase casos de uso del flujo de registro: alta de usuario y asignación de rol.
type UseCase struct {
	users repository.UserRepository
	tx    TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(users repository.UserRepository, tx TxRunner) *UseCase {
	return &UseCase{users: users, tx: tx}
}

// Register crea un usuario: valida vía factory, hashea el password y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	user, err := NewUser(in.FirstName, in.LastName, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		Message: "tu perfil ha sido creado",
		User:    *toUserResponse(user),
	}, nil
}

// AssignDoctor asigna el rol doctor al usuario indicado. El usuario debe existir
// y no tener rol previo (ni doctor ni patient): un usuario nunca tiene ambos.
func (uc *UseCase) AssignDoctor(ctx context.Context, in dto.CreateDoctorRequest) (*dto.CreateDoctorResponse, error) {
	if in.Specialty == "" || in.LicenseNumber == "" {
		return nil, fmt.Errorf("%w: specialty y license_number son requeridos", domain.ErrInvalidInput)
	}
	doctor := &entity.Doctor{
		UserID:        in.UserID,
		Specialty:     in.Specialty,
		LicenseNumber: in.LicenseNumber,
		CreatedAt:     time.Now(),
	}
	err := uc.tx.Run(ctx, func(users repository.UserRepository, doctors repository.DoctorRepository, patients repository.PatientRepository) error {
		if err := uc.checkRoleFree(ctx, in.UserID, users, doctors, patients); err != nil {
			return err
		}
		return doctors.Create(ctx, doctor)
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateDoctorResponse{
		Message: "rol doctor asignado",
		Doctor:  *toDoctorResponse(doctor),
	}, nil
}

// AssignPatient asigna el rol patient al usuario indicado. Mismas reglas que AssignDoctor.
func (uc *UseCase) AssignPatient(ctx context.Context, in dto.CreatePatientRequest) (*dto.CreatePatientResponse, error) {
	if in.InsuranceProvider == "" || in.DateOfBirth == "" {
		return nil, fmt.Errorf("%w: date_of_birth e insurance_provider son requeridos", domain.ErrInvalidInput)
	}
	dob, err := time.Parse(DateOfBirthLayout, in.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: date_of_birth debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	patient := &entity.Patient{
		UserID:            in.UserID,
		DateOfBirth:       dob,
		InsuranceProvider: in.InsuranceProvider,
		CreatedAt:         time.Now(),
	}
	err = uc.tx.Run(ctx, func(users repository.UserRepository, doctors repository.DoctorRepository, patients repository.PatientRepository) error {
		if err := uc.checkRoleFree(ctx, in.UserID, users, doctors, patients); err != nil {
			return err
		}
		return patients.Create(ctx, patient)
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreatePatientResponse{
		Message: "rol patient asignado",
		Patient: *toPatientResponse(patient),
	}, nil
}

// checkRoleFree verifica que el usuario exista y no tenga rol en ninguna de las
// dos tablas. Las constraints UNIQUE(user_id) respaldan esta verificación ante
// envíos concurrentes.
func (uc *UseCase) checkRoleFree(ctx context.Context, userID int64, users repository.UserRepository, doctors repository.DoctorRepository, patients repository.PatientRepository) error {
	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	doctor, err := doctors.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if doctor != nil {
		return domain.ErrRoleAlreadyAssigned
	}
	patient, err := patients.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if patient != nil {
		return domain.ErrRoleAlreadyAssigned
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func toDoctorResponse(d *entity.Doctor) *dto.DoctorResponse {
	if d == nil {
		return nil
	}
	return &dto.DoctorResponse{
		ID:            d.ID,
		UserID:        d.UserID,
		Specialty:     d.Specialty,
		LicenseNumber: d.LicenseNumber,
		CreatedAt:     d.CreatedAt,
	}
}

func toPatientResponse(p *entity.Patient) *dto.PatientResponse {
	if p == nil {
		return nil
	}
	return &dto.PatientResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		DateOfBirth:       p.DateOfBirth.Format(DateOfBirthLayout),
		InsuranceProvider: p.InsuranceProvider,
		CreatedAt:         p.CreatedAt,
	}
}
