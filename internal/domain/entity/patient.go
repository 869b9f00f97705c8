package entity

import "time"

// Patient información de rol paciente, uno a uno con User vía UserID.
type Patient struct {
	ID                int64
	UserID            int64
	DateOfBirth       time.Time
	InsuranceProvider string
	CreatedAt         time.Time
}
