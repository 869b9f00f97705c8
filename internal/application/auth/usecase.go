package auth

import (
	"context"

	"github.com/jhoicas/MedApp-api/internal/application/dto"
	"github.com/jhoicas/MedApp-api/internal/domain"
	"github.com/jhoicas/MedApp-api/internal/domain/entity"
	"github.com/jhoicas/MedApp-api/internal/domain/repository"
	"github.com/jhoicas/MedApp-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login contra el email registrado.
type AuthUseCase struct {
	users    repository.UserRepository
	doctors  repository.DoctorRepository
	patients repository.PatientRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, doctors repository.DoctorRepository, patients repository.PatientRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, doctors: doctors, patients: patients, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// El claim de rol sale de las tablas doctors/patients; vacío si aún no eligió rol.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	role, err := uc.roleOf(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

func (uc *AuthUseCase) roleOf(ctx context.Context, userID int64) (string, error) {
	doctor, err := uc.doctors.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	if doctor != nil {
		return entity.RoleDoctor, nil
	}
	patient, err := uc.patients.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	if patient != nil {
		return entity.RolePatient, nil
	}
	return "", nil
}
