package signupflow_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MedApp-api/internal/application/dto"
	"github.com/jhoicas/MedApp-api/internal/signupflow"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del cliente HTTP contra un servidor httptest
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_CreateUser_DecodificaRespuesta(t *testing.T) {
	var gotPath string
	var gotBody dto.RegisterRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.RegisterResponse{
			Message: "tu perfil ha sido creado",
			User:    dto.UserResponse{ID: 7, Email: gotBody.Email},
		})
	}))
	defer srv.Close()

	c := signupflow.NewClient(srv.URL, nil)
	out, err := c.CreateUser(context.Background(), dto.RegisterRequest{
		FirstName: "Ana", LastName: "Lee", Email: "ana@x.com", Password: "p1",
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/users", gotPath)
	assert.Equal(t, "ana@x.com", gotBody.Email)
	assert.Equal(t, int64(7), out.User.ID)
	assert.Equal(t, "tu perfil ha sido creado", out.Message)
}

func TestClient_ErrorDelBackend_ConservaElMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	}))
	defer srv.Close()

	c := signupflow.NewClient(srv.URL, nil)
	_, err := c.CreateUser(context.Background(), dto.RegisterRequest{
		FirstName: "Ana", LastName: "Lee", Email: "ana@x.com", Password: "p1",
	})

	var apiErr *signupflow.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "EMAIL_EXISTS", apiErr.Code)
	assert.Equal(t, "el email ya está registrado", apiErr.Message,
		"el message del backend se conserva para mostrarse tal cual")
}

func TestClient_CreateDoctor_EnviaIdempotencyKey(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Idempotency-Key")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.CreateDoctorResponse{Message: "rol doctor asignado"})
	}))
	defer srv.Close()

	c := signupflow.NewClient(srv.URL, nil)
	_, err := c.CreateDoctor(context.Background(), dto.CreateDoctorRequest{
		UserID: 7, Specialty: "cardiología", LicenseNumber: "LIC-001",
	}, "clave-123")
	require.NoError(t, err)

	assert.Equal(t, "clave-123", gotKey)
}

func TestClient_ServidorCaido_EsErrorDeRed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // cerrado a propósito

	c := signupflow.NewClient(srv.URL, nil)
	_, err := c.CreateUser(context.Background(), dto.RegisterRequest{
		FirstName: "Ana", LastName: "Lee", Email: "ana@x.com", Password: "p1",
	})

	require.Error(t, err)
	var apiErr *signupflow.APIError
	assert.False(t, errors.As(err, &apiErr),
		"un fallo de transporte no es un APIError del backend")
}

func TestClient_RespuestaSinMessage_UsaMensajeGenerico(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := signupflow.NewClient(srv.URL, nil)
	_, err := c.CreateUser(context.Background(), dto.RegisterRequest{
		FirstName: "Ana", LastName: "Lee", Email: "ana@x.com", Password: "p1",
	})

	var apiErr *signupflow.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.NotEmpty(t, apiErr.Message, "siempre hay un texto para mostrar al usuario")
}
