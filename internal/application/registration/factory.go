package registration

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/MedApp-api/internal/domain"
	"github.com/jhoicas/MedApp-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
)

// NewUser construye un User listo para persistir: valida campos requeridos y
// reemplaza el password por su hash bcrypt. No hace I/O; el ID lo asigna el store.
func NewUser(firstName, lastName, email, password string) (*entity.User, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, fmt.Errorf("%w: first_name es requerido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, fmt.Errorf("%w: last_name es requerido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email es requerido", domain.ErrInvalidInput)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password es requerido", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &entity.User{
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}, nil
}
