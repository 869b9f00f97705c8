package dto

import "time"

// CreateDoctorRequest entrada para asignar el rol doctor a un usuario ya creado.
type CreateDoctorRequest struct {
	UserID        int64  `json:"user_id" validate:"required"`
	Specialty     string `json:"specialty" validate:"required,max=200"`
	LicenseNumber string `json:"license_number" validate:"required,max=100"`
}

// CreatePatientRequest entrada para asignar el rol patient a un usuario ya creado.
// DateOfBirth en formato YYYY-MM-DD.
type CreatePatientRequest struct {
	UserID            int64  `json:"user_id" validate:"required"`
	DateOfBirth       string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	InsuranceProvider string `json:"insurance_provider" validate:"required,max=200"`
}

// DoctorResponse salida de un doctor.
type DoctorResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Specialty     string    `json:"specialty"`
	LicenseNumber string    `json:"license_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// PatientResponse salida de un paciente.
type PatientResponse struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	DateOfBirth       string    `json:"date_of_birth"` // YYYY-MM-DD
	InsuranceProvider string    `json:"insurance_provider"`
	CreatedAt         time.Time `json:"created_at"`
}

// CreateDoctorResponse mensaje legible más el doctor creado.
type CreateDoctorResponse struct {
	Message string         `json:"message"`
	Doctor  DoctorResponse `json:"doctor"`
}

// CreatePatientResponse mensaje legible más el paciente creado.
type CreatePatientResponse struct {
	Message string          `json:"message"`
	Patient PatientResponse `json:"patient"`
}
