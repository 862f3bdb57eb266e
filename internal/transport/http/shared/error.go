package shared

import (
	"errors"
	"net/http"

	"pawprint/internal/transport/http/json"
	dErrors "pawprint/pkg/domain-errors"
)

// WriteError centralizes domain error translation to HTTP responses.
// It translates transport-agnostic domain errors into HTTP status codes and error responses.
//
// Token verification failures are deliberately collapsed into a single
// "invalid or expired embed token" description so callers cannot distinguish
// a signature failure from an expiry failure.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		status := DomainCodeToHTTPStatus(domainErr.Code)
		response := map[string]string{
			"error": string(publicCode(domainErr.Code)),
		}
		if desc := publicDescription(domainErr); desc != "" {
			response["error_description"] = desc
		}
		json.WriteJSON(w, status, response)
		return
	}

	// Fallback for unexpected errors
	json.WriteJSON(w, http.StatusInternalServerError, map[string]string{
		"error": string(dErrors.CodeInternal),
	})
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeInvalidInput:
		return http.StatusBadRequest
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeUnauthorized, dErrors.CodeTokenTampered, dErrors.CodeTokenExpired, dErrors.CodeTokenMissing:
		return http.StatusUnauthorized
	case dErrors.CodeForbidden, dErrors.CodeAccessDenied:
		return http.StatusForbidden
	case dErrors.CodeTransientNetwork:
		return http.StatusBadGateway
	case dErrors.CodeTimeout:
		return http.StatusGatewayTimeout
	case dErrors.CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// publicCode maps internal codes to the code exposed on the wire. Tampered
// and expired tokens share one public code to avoid an oracle.
func publicCode(code dErrors.Code) dErrors.Code {
	switch code {
	case dErrors.CodeTokenTampered, dErrors.CodeTokenExpired:
		return "invalid_token"
	default:
		return code
	}
}

// publicDescription returns the description safe to expose to callers.
func publicDescription(err *dErrors.Error) string {
	switch err.Code {
	case dErrors.CodeTokenTampered, dErrors.CodeTokenExpired:
		return "invalid or expired embed token"
	case dErrors.CodeTokenMissing:
		return "missing embed token"
	default:
		return err.Message
	}
}
