package signupflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MedApp-api/internal/application/dto"
	"github.com/jhoicas/MedApp-api/internal/signupflow"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del backend: cuenta peticiones y registra los payloads recibidos.
// ──────────────────────────────────────────────────────────────────────────────

type fakeAPI struct {
	createUserCalls    int
	createDoctorCalls  int
	createPatientCalls int
	loginCalls         int

	lastRegister dto.RegisterRequest
	lastDoctor   dto.CreateDoctorRequest
	lastKey      string

	userErr error
	roleErr error
}

func (f *fakeAPI) CreateUser(_ context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	f.createUserCalls++
	f.lastRegister = in
	if f.userErr != nil {
		return nil, f.userErr
	}
	return &dto.RegisterResponse{
		Message: "tu perfil ha sido creado",
		User:    dto.UserResponse{ID: 42, FirstName: in.FirstName, LastName: in.LastName, Email: in.Email},
	}, nil
}

func (f *fakeAPI) CreateDoctor(_ context.Context, in dto.CreateDoctorRequest, key string) (*dto.CreateDoctorResponse, error) {
	f.createDoctorCalls++
	f.lastDoctor = in
	f.lastKey = key
	if f.roleErr != nil {
		return nil, f.roleErr
	}
	return &dto.CreateDoctorResponse{Message: "rol doctor asignado", Doctor: dto.DoctorResponse{ID: 1, UserID: in.UserID}}, nil
}

func (f *fakeAPI) CreatePatient(_ context.Context, in dto.CreatePatientRequest, key string) (*dto.CreatePatientResponse, error) {
	f.createPatientCalls++
	f.lastKey = key
	if f.roleErr != nil {
		return nil, f.roleErr
	}
	return &dto.CreatePatientResponse{Message: "rol patient asignado", Patient: dto.PatientResponse{ID: 1, UserID: in.UserID}}, nil
}

func (f *fakeAPI) Login(_ context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	f.loginCalls++
	return &dto.LoginResponse{Token: "t", User: dto.UserResponse{Email: in.Email}}, nil
}

type alerts struct{ messages []string }

func (a *alerts) record(msg string) { a.messages = append(a.messages, msg) }

func validForm() signupflow.SignupForm {
	return signupflow.SignupForm{FirstName: "Ana", LastName: "Lee", Email: "ana@x.com", Password: "p1"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones de pantalla
// ──────────────────────────────────────────────────────────────────────────────

func TestFlow_EmpiezaEnWelcome(t *testing.T) {
	flow := signupflow.New(&fakeAPI{}, nil)
	assert.Equal(t, signupflow.ScreenWelcome, flow.Screen())
}

func TestFlow_WelcomeHaciaLoginYSignup(t *testing.T) {
	flow := signupflow.New(&fakeAPI{}, nil)
	require.NoError(t, flow.Choose(signupflow.ScreenLogin))
	assert.Equal(t, signupflow.ScreenLogin, flow.Screen())

	flow.GoBack()
	require.NoError(t, flow.Choose(signupflow.ScreenSignup))
	assert.Equal(t, signupflow.ScreenSignup, flow.Screen())
}

func TestFlow_NoSePuedeSaltarARoleSelection(t *testing.T) {
	flow := signupflow.New(&fakeAPI{}, nil)
	err := flow.Choose(signupflow.ScreenRoleSelection)
	assert.ErrorIs(t, err, signupflow.ErrInvalidTransition,
		"roleSelection solo se alcanza con un signup exitoso")
}

func TestFlow_GoBackDesdeCualquierPantalla(t *testing.T) {
	flow := signupflow.New(&fakeAPI{}, nil)
	require.NoError(t, flow.Choose(signupflow.ScreenSignup))
	flow.GoBack()
	assert.Equal(t, signupflow.ScreenWelcome, flow.Screen())
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación previa al envío: nunca se emite una petición con campos inválidos
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitSignup_CampoVacioNoEmitePeticion(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*signupflow.SignupForm)
	}{
		{"sin first_name", func(f *signupflow.SignupForm) { f.FirstName = "" }},
		{"sin last_name", func(f *signupflow.SignupForm) { f.LastName = "" }},
		{"sin email", func(f *signupflow.SignupForm) { f.Email = "" }},
		{"sin password", func(f *signupflow.SignupForm) { f.Password = "" }},
		{"email sin arroba", func(f *signupflow.SignupForm) { f.Email = "ana.x.com" }},
		{"email sin punto", func(f *signupflow.SignupForm) { f.Email = "ana@xcom" }},
		{"email con espacios", func(f *signupflow.SignupForm) { f.Email = "a na@x.com" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeAPI{}
			a := &alerts{}
			flow := signupflow.New(api, a.record)
			require.NoError(t, flow.Choose(signupflow.ScreenSignup))

			form := validForm()
			tc.mut(&form)
			err := flow.SubmitSignup(context.Background(), form)

			assert.ErrorIs(t, err, signupflow.ErrValidation)
			assert.Zero(t, api.createUserCalls,
				"un formulario inválido no debe emitir ninguna petición HTTP")
			assert.NotEmpty(t, a.messages, "debe mostrarse una alerta bloqueante")
			assert.Equal(t, signupflow.ScreenSignup, flow.Screen(),
				"la pantalla no cambia ante un formulario inválido")
		})
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, signupflow.ValidEmail("ana@x.com"))
	assert.False(t, signupflow.ValidEmail("ana@x"))
	assert.False(t, signupflow.ValidEmail("anax.com"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Signup exitoso y transición a roleSelection
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitSignup_EmiteUnaSolaPeticionConLosCuatroCampos(t *testing.T) {
	api := &fakeAPI{}
	flow := signupflow.New(api, nil)
	require.NoError(t, flow.Choose(signupflow.ScreenSignup))

	require.NoError(t, flow.SubmitSignup(context.Background(), validForm()))

	assert.Equal(t, 1, api.createUserCalls, "exactamente un POST /api/users")
	assert.Equal(t, dto.RegisterRequest{
		FirstName: "Ana", LastName: "Lee", Email: "ana@x.com", Password: "p1",
	}, api.lastRegister, "el payload lleva los cuatro campos recolectados")
}

func TestSubmitSignup_ExitoTransicionaARoleSelection(t *testing.T) {
	api := &fakeAPI{}
	flow := signupflow.New(api, nil)
	require.NoError(t, flow.Choose(signupflow.ScreenSignup))

	require.NoError(t, flow.SubmitSignup(context.Background(), validForm()))

	assert.Equal(t, signupflow.ScreenRoleSelection, flow.Screen())
	assert.Equal(t, int64(42), flow.UserID(),
		"el flujo captura el id asignado por el backend")
}

func TestSubmitSignup_ErrorDelBackendNoTransiciona(t *testing.T) {
	api := &fakeAPI{userErr: &signupflow.APIError{Status: 409, Code: "EMAIL_EXISTS", Message: "el email ya está registrado"}}
	a := &alerts{}
	flow := signupflow.New(api, a.record)
	require.NoError(t, flow.Choose(signupflow.ScreenSignup))

	err := flow.SubmitSignup(context.Background(), validForm())

	assert.Error(t, err)
	assert.Equal(t, signupflow.ScreenSignup, flow.Screen())
	require.NotEmpty(t, a.messages)
	assert.Equal(t, "el email ya está registrado", a.messages[0],
		"el message del backend se muestra tal cual")
}

func TestSubmitSignup_DesdeOtraPantallaFalla(t *testing.T) {
	api := &fakeAPI{}
	flow := signupflow.New(api, nil)

	err := flow.SubmitSignup(context.Background(), validForm())
	assert.ErrorIs(t, err, signupflow.ErrInvalidTransition,
		"solo la pantalla signup puede enviar el formulario")
	assert.Zero(t, api.createUserCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Selección de rol
// ──────────────────────────────────────────────────────────────────────────────

func signupDone(t *testing.T, api *fakeAPI, a *alerts) *signupflow.Flow {
	t.Helper()
	var alert signupflow.AlertFunc
	if a != nil {
		alert = a.record
	}
	flow := signupflow.New(api, alert)
	require.NoError(t, flow.Choose(signupflow.ScreenSignup))
	require.NoError(t, flow.SubmitSignup(context.Background(), validForm()))
	return flow
}

func TestSubmitRole_RolNoSeleccionadoNoEmitePeticion(t *testing.T) {
	api := &fakeAPI{}
	a := &alerts{}
	flow := signupDone(t, api, a)

	err := flow.SubmitRole(context.Background(), signupflow.RoleForm{Role: ""})

	assert.ErrorIs(t, err, signupflow.ErrValidation)
	assert.Zero(t, api.createDoctorCalls)
	assert.Zero(t, api.createPatientCalls)
	assert.NotEmpty(t, a.messages, "debe alertarse que falta elegir rol")
}

func TestSubmitRole_RolDesconocidoNoEmitePeticion(t *testing.T) {
	api := &fakeAPI{}
	flow := signupDone(t, api, nil)

	err := flow.SubmitRole(context.Background(), signupflow.RoleForm{Role: "admin"})

	assert.ErrorIs(t, err, signupflow.ErrValidation)
	assert.Zero(t, api.createDoctorCalls)
	assert.Zero(t, api.createPatientCalls)
}

func TestSubmitRole_DoctorLlevaElUserIDDelRegistro(t *testing.T) {
	api := &fakeAPI{}
	flow := signupDone(t, api, nil)

	require.NoError(t, flow.SubmitRole(context.Background(), signupflow.RoleForm{
		Role: "doctor", Specialty: "cardiología", LicenseNumber: "LIC-001",
	}))

	assert.Equal(t, 1, api.createDoctorCalls, "exactamente una petición de rol")
	assert.Zero(t, api.createPatientCalls)
	assert.Equal(t, int64(42), api.lastDoctor.UserID,
		"el user_id del payload es el retornado por el signup")
	assert.NotEmpty(t, api.lastKey, "la petición de rol lleva clave de idempotencia")
}

func TestSubmitRole_SegundoEnvioBloqueado(t *testing.T) {
	api := &fakeAPI{}
	a := &alerts{}
	flow := signupDone(t, api, a)
	ctx := context.Background()

	require.NoError(t, flow.SubmitRole(ctx, signupflow.RoleForm{
		Role: "patient", DateOfBirth: "1990-05-01", InsuranceProvider: "Sura",
	}))
	err := flow.SubmitRole(ctx, signupflow.RoleForm{
		Role: "doctor", Specialty: "cardiología", LicenseNumber: "LIC-001",
	})

	assert.ErrorIs(t, err, signupflow.ErrRoleSubmitted)
	assert.Equal(t, 1, api.createPatientCalls)
	assert.Zero(t, api.createDoctorCalls,
		"tras un rol exitoso no se emite ninguna petición adicional")
}

func TestSubmitRole_AntesDelSignupFalla(t *testing.T) {
	api := &fakeAPI{}
	flow := signupflow.New(api, nil)

	err := flow.SubmitRole(context.Background(), signupflow.RoleForm{Role: "doctor"})
	assert.ErrorIs(t, err, signupflow.ErrInvalidTransition)
	assert.Zero(t, api.createDoctorCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitLogin_CamposVaciosNoEmitePeticion(t *testing.T) {
	api := &fakeAPI{}
	a := &alerts{}
	flow := signupflow.New(api, a.record)
	require.NoError(t, flow.Choose(signupflow.ScreenLogin))

	_, err := flow.SubmitLogin(context.Background(), "", "p1")

	assert.ErrorIs(t, err, signupflow.ErrValidation)
	assert.Zero(t, api.loginCalls)
	assert.NotEmpty(t, a.messages)
}

func TestSubmitLogin_Exitoso(t *testing.T) {
	api := &fakeAPI{}
	flow := signupflow.New(api, nil)
	require.NoError(t, flow.Choose(signupflow.ScreenLogin))

	out, err := flow.SubmitLogin(context.Background(), "ana@x.com", "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, api.loginCalls)
	assert.Equal(t, "t", out.Token)
}
