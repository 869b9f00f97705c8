package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/MedApp-api/internal/domain/entity"
	"github.com/jhoicas/MedApp-api/internal/signupflow"
	"github.com/jhoicas/MedApp-api/pkg/config"
	"github.com/joho/godotenv"
)

// Cliente de terminal del flujo de registro: recorre las pantallas
// welcome → login|signup → roleSelection contra un backend en ejecución.
// La URL base sale de MEDAPP_API_URL (.env opcional).
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	api := signupflow.NewClient(cfg.Client.APIBaseURL, nil)
	flow := signupflow.New(api, func(message string) {
		fmt.Println("[!]", message)
	})

	in := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		switch flow.Screen() {
		case signupflow.ScreenWelcome:
			fmt.Println("\n=== Bienvenido a MedApp ===")
			fmt.Println("1) Iniciar sesión  2) Registrarse  q) Salir")
			switch prompt(in, "> ") {
			case "1":
				_ = flow.Choose(signupflow.ScreenLogin)
			case "2":
				_ = flow.Choose(signupflow.ScreenSignup)
			case "q":
				return
			}

		case signupflow.ScreenLogin:
			fmt.Println("\n--- Iniciar sesión (b para volver) ---")
			email := prompt(in, "Email: ")
			if email == "b" {
				flow.GoBack()
				continue
			}
			password := prompt(in, "Password: ")
			if out, err := flow.SubmitLogin(ctx, email, password); err == nil {
				fmt.Printf("Hola %s, sesión iniciada.\n", out.User.FirstName)
			}

		case signupflow.ScreenSignup:
			fmt.Println("\n--- Registrarse (b para volver) ---")
			first := prompt(in, "Nombre: ")
			if first == "b" {
				flow.GoBack()
				continue
			}
			form := signupflow.SignupForm{
				FirstName: first,
				LastName:  prompt(in, "Apellido: "),
				Email:     prompt(in, "Email: "),
				Password:  prompt(in, "Password: "),
			}
			_ = flow.SubmitSignup(ctx, form)

		case signupflow.ScreenRoleSelection:
			fmt.Println("\n--- Elige tu rol: doctor o patient ---")
			form := signupflow.RoleForm{Role: prompt(in, "Rol: ")}
			switch form.Role {
			case entity.RoleDoctor:
				form.Specialty = prompt(in, "Especialidad: ")
				form.LicenseNumber = prompt(in, "Número de licencia: ")
			case entity.RolePatient:
				form.DateOfBirth = prompt(in, "Fecha de nacimiento (YYYY-MM-DD): ")
				form.InsuranceProvider = prompt(in, "Aseguradora: ")
			}
			if err := flow.SubmitRole(ctx, form); err == nil {
				fmt.Println("Registro completo.")
				return
			}
		}
	}
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(in.Text())
}
