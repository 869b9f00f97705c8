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

var _ repository.PatientRepository = (*PatientRepo)(nil)

// PatientRepo implementación del puerto PatientRepository sobre PostgreSQL (usable con pool o tx).
type PatientRepo struct {
	q Querier
}

// NewPatientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPatientRepository(q Querier) *PatientRepo {
	return &PatientRepo{q: q}
}

// Create persiste un paciente referenciando al usuario ya creado.
func (r *PatientRepo) Create(ctx context.Context, patient *entity.Patient) error {
	query := `
		INSERT INTO patients (user_id, date_of_birth, insurance_provider, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		patient.UserID, patient.DateOfBirth, patient.InsuranceProvider, patient.CreatedAt,
	).Scan(&patient.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRoleAlreadyAssigned
		}
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

// GetByID obtiene un paciente por ID; nil si no existe.
func (r *PatientRepo) GetByID(ctx context.Context, id int64) (*entity.Patient, error) {
	query := `
		SELECT id, user_id, date_of_birth, insurance_provider, created_at
		FROM patients WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get patient by id")
}

// GetByUserID obtiene el paciente asociado a un usuario; nil si no tiene el rol.
func (r *PatientRepo) GetByUserID(ctx context.Context, userID int64) (*entity.Patient, error) {
	query := `
		SELECT id, user_id, date_of_birth, insurance_provider, created_at
		FROM patients WHERE user_id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, userID), "get patient by user_id")
}

// List devuelve todos los pacientes (sin orden garantizado).
func (r *PatientRepo) List(ctx context.Context) ([]*entity.Patient, error) {
	query := `
		SELECT id, user_id, date_of_birth, insurance_provider, created_at
		FROM patients`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Patient
	for rows.Next() {
		var p entity.Patient
		if err := rows.Scan(&p.ID, &p.UserID, &p.DateOfBirth, &p.InsuranceProvider, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PatientRepo) scanOne(row pgx.Row, op string) (*entity.Patient, error) {
	var p entity.Patient
	err := row.Scan(&p.ID, &p.UserID, &p.DateOfBirth, &p.InsuranceProvider, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
