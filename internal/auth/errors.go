package auth

import "strings"

// Error is a provider-level authentication failure. Code follows the
// auth/<reason> convention; Message returns the user-facing Spanish
// text shown by the CLI.
type Error struct {
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e *Error) Unwrap() error { return e.Err }

// Message maps the error to the localized text for end users.
func (e *Error) Message() string {
	return LoginMessage(e.Code)
}

// LoginMessage maps a provider failure to the user-facing sign-in text.
// Unknown codes fall through to the raw text.
func LoginMessage(raw string) string {
	switch {
	case strings.Contains(raw, "auth/user-not-found"), strings.Contains(raw, "auth/wrong-password"):
		return "Correo electrónico o contraseña incorrectos"
	case strings.Contains(raw, "auth/too-many-requests"):
		return "Demasiados intentos. Intente de nuevo más tarde."
	case strings.Contains(raw, "auth/invalid-credential"):
		return "Credenciales inválidas. Verifique su correo y contraseña."
	case raw == "":
		return "Error al iniciar sesión"
	default:
		return raw
	}
}

// RegisterMessage maps a registration failure to the user-facing text.
func RegisterMessage(raw string) string {
	switch {
	case strings.Contains(raw, "already exists"), strings.Contains(raw, "ya existe"):
		return "Este correo electrónico ya está registrado."
	case strings.Contains(raw, "weak-password"):
		return "La contraseña es muy débil. Debe tener al menos 6 caracteres."
	case raw == "":
		return "Error al registrar usuario"
	default:
		return raw
	}
}
