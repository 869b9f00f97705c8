package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/MedApp-api/internal/application/auth"
	"github.com/jhoicas/MedApp-api/internal/application/registration"
	"github.com/jhoicas/MedApp-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegistrationUC *registration.UseCase
	DirectoryUC    *usecase.DirectoryUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Flujo de registro (público): alta de usuario y selección de rol
	userHandler := NewUserHandler(deps.RegistrationUC)
	api.Post("/users", userHandler.Create)

	doctorHandler := NewDoctorHandler(deps.RegistrationUC, deps.DirectoryUC)
	api.Post("/doctors", doctorHandler.Create)

	patientHandler := NewPatientHandler(deps.RegistrationUC, deps.DirectoryUC)
	api.Post("/patients", patientHandler.Create)

	// Directorio (protegido, requiere Bearer Token con rol)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/doctors", doctorHandler.List)
	protected.Get("/doctors/:id", doctorHandler.GetByID)
	protected.Get("/patients", RequireRole("doctor"), patientHandler.List)
	protected.Get("/patients/:id", RequireRole("doctor"), patientHandler.GetByID)
}
