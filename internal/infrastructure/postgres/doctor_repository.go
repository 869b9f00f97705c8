package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/MedApp-api/internal/domain"
	"github.com/jhoicas/MedApp-api/internal/domain/entity"
	"github.com/jhoicas/MedApp-api/internal/domain/repository"
)

var _ repository.DoctorRepository = (*DoctorRepo)(nil)

// DoctorRepo implementación del puerto DoctorRepository sobre PostgreSQL (usable con pool o tx).
type DoctorRepo struct {
	q Querier
}

// NewDoctorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDoctorRepository(q Querier) *DoctorRepo {
	return &DoctorRepo{q: q}
}

// Create persiste un doctor referenciando al usuario ya creado.
func (r *DoctorRepo) Create(ctx context.Context, doctor *entity.Doctor) error {
	query := `
		INSERT INTO doctors (user_id, specialty, license_number, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		doctor.UserID, doctor.Specialty, doctor.LicenseNumber, doctor.CreatedAt,
	).Scan(&doctor.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRoleAlreadyAssigned
		}
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert doctor: %w", err)
	}
	return nil
}

// GetByID obtiene un doctor por ID; nil si no existe.
func (r *DoctorRepo) GetByID(ctx context.Context, id int64) (*entity.Doctor, error) {
	query := `
		SELECT id, user_id, specialty, license_number, created_at
		FROM doctors WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get doctor by id")
}

// GetByUserID obtiene el doctor asociado a un usuario; nil si no tiene el rol.
func (r *DoctorRepo) GetByUserID(ctx context.Context, userID int64) (*entity.Doctor, error) {
	query := `
		SELECT id, user_id, specialty, license_number, created_at
		FROM doctors WHERE user_id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, userID), "get doctor by user_id")
}

// List devuelve todos los doctores (sin orden garantizado).
func (r *DoctorRepo) List(ctx context.Context) ([]*entity.Doctor, error) {
	query := `
		SELECT id, user_id, specialty, license_number, created_at
		FROM doctors`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Doctor
	for rows.Next() {
		var d entity.Doctor
		if err := rows.Scan(&d.ID, &d.UserID, &d.Specialty, &d.LicenseNumber, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *DoctorRepo) scanOne(row pgx.Row, op string) (*entity.Doctor, error) {
	var d entity.Doctor
	err := row.Scan(&d.ID, &d.UserID, &d.Specialty, &d.LicenseNumber, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &d, nil
}
