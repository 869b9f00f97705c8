package signupflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/MedApp-api/internal/application/dto"
)

// APIError respuesta no-2xx del backend. Message se muestra al usuario tal cual.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

// Client cliente HTTP tipado contra el backend de registro.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ API = (*Client)(nil)

// NewClient construye el cliente. httpClient nil usa http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// CreateUser envía el registro a POST /api/users.
func (c *Client) CreateUser(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	var out dto.RegisterResponse
	if err := c.post(ctx, "/api/users", in, &out, ""); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDoctor envía la selección de rol doctor a POST /api/doctors.
func (c *Client) CreateDoctor(ctx context.Context, in dto.CreateDoctorRequest, idempotencyKey string) (*dto.CreateDoctorResponse, error) {
	var out dto.CreateDoctorResponse
	if err := c.post(ctx, "/api/doctors", in, &out, idempotencyKey); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePatient envía la selección de rol patient a POST /api/patients.
func (c *Client) CreatePatient(ctx context.Context, in dto.CreatePatientRequest, idempotencyKey string) (*dto.CreatePatientResponse, error) {
	var out dto.CreatePatientResponse
	if err := c.post(ctx, "/api/patients", in, &out, idempotencyKey); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login envía las credenciales a POST /api/auth/login.
func (c *Client) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := c.post(ctx, "/api/auth/login", in, &out, ""); err != nil {
		return nil, err
	}
	return &out, nil
}

// post serializa body, emite la petición y decodifica la respuesta en out.
// Una respuesta no-2xx se devuelve como *APIError con el message del backend.
func (c *Client) post(ctx context.Context, path string, body, out any, idempotencyKey string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr dto.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = "algo salió mal, intenta de nuevo"
		}
		return &APIError{Status: resp.StatusCode, Code: apiErr.Code, Message: apiErr.Message}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
