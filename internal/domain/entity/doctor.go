package entity

import "time"

// Doctor información de rol médico, uno a uno con User vía UserID.
type Doctor struct {
	ID            int64
	UserID        int64
	Specialty     string
	LicenseNumber string
	CreatedAt     time.Time
}
