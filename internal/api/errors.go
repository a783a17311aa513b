package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/escribe/internal/domain"
	"github.com/phrazzld/escribe/internal/generation"
)

// fieldLabels are the names shown to users for each form key.
var fieldLabels = map[string]string{
	domain.FieldContentType:  "Tipo de contenido",
	domain.FieldTopic:        "Tema",
	domain.FieldStyle:        "Estilo",
	domain.FieldTargetLength: "Longitud",
}

func fieldLabel(key string) string {
	if label, ok := fieldLabels[key]; ok {
		return label
	}
	return key
}

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking their types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	}

	kind, ok := generation.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch kind {
	case generation.KindRateLimited:
		return http.StatusServiceUnavailable
	case generation.KindNetworkUnavailable:
		return http.StatusGatewayTimeout
	default:
		// Auth, provider validation and unknown provider failures are all
		// upstream faults from the client's point of view.
		return http.StatusBadGateway
	}
}

// GetSafeErrorMessage returns a user-facing message for err. It never
// includes provider error text.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "Se produjo un error inesperado."
	}

	var missing *domain.MissingFieldError
	if errors.As(err, &missing) {
		return fmt.Sprintf("Falta el campo obligatorio: %s.", fieldLabel(missing.Field))
	}

	var invalid *domain.InvalidFormatError
	if errors.As(err, &invalid) {
		if invalid.Field == domain.FieldTargetLength {
			switch invalid.Reason {
			case domain.ReasonNotInteger, domain.ReasonNotPositive:
				return "La longitud debe ser un número entero positivo."
			default:
				return "La longitud supera el máximo permitido."
			}
		}
		return fmt.Sprintf("El campo %s no es válido.", fieldLabel(invalid.Field))
	}

	kind, ok := generation.KindOf(err)
	if !ok {
		return "Se produjo un error inesperado."
	}

	switch kind {
	case generation.KindAuthenticationFailed:
		return "El servicio de generación rechazó las credenciales configuradas."
	case generation.KindRateLimited:
		return "El servicio de generación está saturado. Inténtalo de nuevo en unos minutos."
	case generation.KindProviderValidationFailed:
		return "El servicio de generación no aceptó la solicitud."
	case generation.KindNetworkUnavailable:
		return "No se pudo contactar con el servicio de generación."
	default:
		return "El servicio de generación no pudo completar el texto."
	}
}
