package repository

import (
	"context"

	"github.com/jhoicas/MedApp-api/internal/domain/entity"
)

// DoctorRepository define el puerto de persistencia para Doctor.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	GetByID(ctx context.Context, id int64) (*entity.Doctor, error)
	GetByUserID(ctx context.Context, userID int64) (*entity.Doctor, error)
	List(ctx context.Context) ([]*entity.Doctor, error)
}
