package signupflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/MedApp-api/internal/application/dto"
	"github.com/jhoicas/MedApp-api/internal/domain/entity"
)

// Screen pantallas del flujo de registro.
type Screen string

const (
	ScreenWelcome       Screen = "welcome"
	ScreenLogin         Screen = "login"
	ScreenSignup        Screen = "signup"
	ScreenRoleSelection Screen = "roleSelection"
)

// Errores del flujo. ErrValidation nunca dispara una petición HTTP.
var (
	ErrValidation        = errors.New("formulario inválido")
	ErrInvalidTransition = errors.New("transición de pantalla inválida")
	ErrRoleSubmitted     = errors.New("el rol ya fue enviado")
)

// SignupForm campos recolectados en la pantalla de registro.
type SignupForm struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// RoleForm campos recolectados en la pantalla de selección de rol.
// Specialty/LicenseNumber aplican a doctor; DateOfBirth/InsuranceProvider a patient.
type RoleForm struct {
	Role              string
	Specialty         string
	LicenseNumber     string
	DateOfBirth       string // YYYY-MM-DD
	InsuranceProvider string
}

// API contrato mínimo del backend que el flujo necesita.
type API interface {
	CreateUser(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error)
	CreateDoctor(ctx context.Context, in dto.CreateDoctorRequest, idempotencyKey string) (*dto.CreateDoctorResponse, error)
	CreatePatient(ctx context.Context, in dto.CreatePatientRequest, idempotencyKey string) (*dto.CreatePatientResponse, error)
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
}

// AlertFunc recibe los mensajes bloqueantes que la UI muestra al usuario.
type AlertFunc func(message string)

// Flow máquina de estados del registro: welcome → login|signup → roleSelection.
// Cada acción del usuario emite a lo sumo una petición HTTP.
type Flow struct {
	screen         Screen
	api            API
	alert          AlertFunc
	userID         int64
	idempotencyKey string
	roleSubmitted  bool
}

// New construye el flujo en la pantalla de bienvenida. La clave de idempotencia
// identifica los reintentos de selección de rol de esta sesión.
func New(api API, alert AlertFunc) *Flow {
	if alert == nil {
		alert = func(string) {}
	}
	return &Flow{
		screen:         ScreenWelcome,
		api:            api,
		alert:          alert,
		idempotencyKey: uuid.New().String(),
	}
}

// Screen devuelve la pantalla actual.
func (f *Flow) Screen() Screen {
	return f.screen
}

// UserID devuelve el identificador asignado por el backend tras el registro; 0 antes.
func (f *Flow) UserID() int64 {
	return f.userID
}

// Choose avanza desde welcome hacia login o signup.
func (f *Flow) Choose(target Screen) error {
	if f.screen != ScreenWelcome {
		return fmt.Errorf("%w: de %s a %s", ErrInvalidTransition, f.screen, target)
	}
	if target != ScreenLogin && target != ScreenSignup {
		return fmt.Errorf("%w: de %s a %s", ErrInvalidTransition, f.screen, target)
	}
	f.screen = target
	return nil
}

// GoBack vuelve a la pantalla de bienvenida desde cualquier pantalla.
func (f *Flow) GoBack() {
	f.screen = ScreenWelcome
}

// SubmitSignup valida el formulario y lo envía al backend. Con campos inválidos
// alerta y no emite ninguna petición. En éxito guarda el id asignado y pasa a
// la selección de rol; esa es la única transición hacia roleSelection.
func (f *Flow) SubmitSignup(ctx context.Context, form SignupForm) error {
	if f.screen != ScreenSignup {
		return fmt.Errorf("%w: submit de signup en %s", ErrInvalidTransition, f.screen)
	}
	if msg := validateSignup(form); msg != "" {
		f.alert(msg)
		return fmt.Errorf("%w: %s", ErrValidation, msg)
	}
	resp, err := f.api.CreateUser(ctx, dto.RegisterRequest{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	})
	if err != nil {
		f.alert(alertMessage(err))
		return err
	}
	f.userID = resp.User.ID
	f.screen = ScreenRoleSelection
	f.alert(resp.Message)
	return nil
}

// SubmitLogin envía las credenciales. No avanza de pantalla dentro del alcance
// del flujo de registro.
func (f *Flow) SubmitLogin(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	if f.screen != ScreenLogin {
		return nil, fmt.Errorf("%w: submit de login en %s", ErrInvalidTransition, f.screen)
	}
	if email == "" || password == "" {
		f.alert("todos los campos son requeridos")
		return nil, fmt.Errorf("%w: email y password son requeridos", ErrValidation)
	}
	out, err := f.api.Login(ctx, dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		f.alert(alertMessage(err))
		return nil, err
	}
	return out, nil
}

// SubmitRole envía exactamente una petición de creación de rol con el user_id
// capturado del registro. Un rol distinto de doctor/patient alerta y no emite
// petición; tras un envío exitoso la pantalla es terminal.
func (f *Flow) SubmitRole(ctx context.Context, form RoleForm) error {
	if f.screen != ScreenRoleSelection {
		return fmt.Errorf("%w: submit de rol en %s", ErrInvalidTransition, f.screen)
	}
	if f.roleSubmitted {
		f.alert("ya elegiste un rol")
		return ErrRoleSubmitted
	}
	if !entity.ValidRole(form.Role) {
		f.alert("elige doctor o patient antes de continuar")
		return fmt.Errorf("%w: rol no seleccionado", ErrValidation)
	}

	var err error
	var message string
	switch form.Role {
	case entity.RoleDoctor:
		var resp *dto.CreateDoctorResponse
		resp, err = f.api.CreateDoctor(ctx, dto.CreateDoctorRequest{
			UserID:        f.userID,
			Specialty:     form.Specialty,
			LicenseNumber: form.LicenseNumber,
		}, f.idempotencyKey)
		if resp != nil {
			message = resp.Message
		}
	case entity.RolePatient:
		var resp *dto.CreatePatientResponse
		resp, err = f.api.CreatePatient(ctx, dto.CreatePatientRequest{
			UserID:            f.userID,
			DateOfBirth:       form.DateOfBirth,
			InsuranceProvider: form.InsuranceProvider,
		}, f.idempotencyKey)
		if resp != nil {
			message = resp.Message
		}
	}
	if err != nil {
		f.alert(alertMessage(err))
		return err
	}
	f.roleSubmitted = true
	f.alert(message)
	return nil
}

// alertMessage extrae el texto a mostrar: el message del backend tal cual si lo
// hay, o un mensaje genérico ante fallos de red.
func alertMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "algo salió mal, intenta de nuevo"
}
