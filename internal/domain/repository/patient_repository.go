package repository

import (
	"context"

	"github.com/jhoicas/MedApp-api/internal/domain/entity"
)

// PatientRepository define el puerto de persistencia para Patient.
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	GetByID(ctx context.Context, id int64) (*entity.Patient, error)
	GetByUserID(ctx context.Context, userID int64) (*entity.Patient, error)
	List(ctx context.Context) ([]*entity.Patient, error)
}
