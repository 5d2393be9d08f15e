package errors

// ErrorCode represents a standardized error code used throughout the console
type ErrorCode string

// Session and authentication error codes (AUTH_*)
const (
	AuthMissingSession ErrorCode = "AUTH_001"
	AuthInvalidPIN     ErrorCode = "AUTH_002"
	AuthInvalidConsole ErrorCode = "AUTH_003"
	AuthExpiredConsole ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral     ErrorCode = "VALIDATION_001"
	ValidationMissingPIN  ErrorCode = "VALIDATION_002"
	ValidationEmptySearch ErrorCode = "VALIDATION_003"
)

// Backend error codes (BACKEND_*)
const (
	BackendUnreachable       ErrorCode = "BACKEND_001"
	BackendRejected          ErrorCode = "BACKEND_002"
	BackendMalformedResponse ErrorCode = "BACKEND_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemNotFound           ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to the operator-facing message shown by default
var errorMessages = map[ErrorCode]string{
	// Session errors
	AuthMissingSession: "Debe iniciar sesión con PIN",
	AuthInvalidPIN:     "PIN inválido",
	AuthInvalidConsole: "Consola no válida, recargue la página",
	AuthExpiredConsole: "La consola expiró, recargue la página",

	// Validation errors
	ValidationGeneral:     "Datos inválidos",
	ValidationMissingPIN:  "Ingrese PIN",
	ValidationEmptySearch: "Ingrese al menos un campo para buscar.",

	// Backend errors
	BackendUnreachable:       "Error al conectar con el servidor.",
	BackendRejected:          "El servidor rechazó la solicitud.",
	BackendMalformedResponse: "Respuesta inválida del servidor.",

	// System errors
	SystemInternalError:      "Ocurrió un error inesperado. Contacte a soporte con el trace ID",
	SystemDatabaseError:      "Error de conexión con la base de auditoría",
	SystemServiceUnavailable: "Servicio no disponible temporalmente",
	SystemNotFound:           "Recurso no encontrado",
	SystemRateLimitExceeded:  "Demasiadas solicitudes. Intente de nuevo más tarde",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "Ocurrió un error"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
