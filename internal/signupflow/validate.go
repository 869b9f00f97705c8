package signupflow

import "regexp"

// emailPattern chequeo simple de forma: segmentos sin espacios alrededor de @ y punto.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidEmail indica si el email pasa el chequeo de forma previo al envío.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validateSignup devuelve el mensaje de alerta para un formulario inválido,
// o "" si el formulario puede enviarse.
func validateSignup(f SignupForm) string {
	if f.FirstName == "" || f.LastName == "" || f.Email == "" || f.Password == "" {
		return "todos los campos son requeridos"
	}
	if !ValidEmail(f.Email) {
		return "ingresa un email válido"
	}
	return ""
}
