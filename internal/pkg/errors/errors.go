package errors

import "net/http"

// AppError is the error shape every layer returns upward. Code maps
// straight to the HTTP status written by helpers.RespError.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func BadRequest(message string) error {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

func UnauthorizedError(message string) error {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

func ForbiddenError(message string) error {
	return &AppError{Code: http.StatusForbidden, Message: message}
}

func NotFound(message string) error {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

func Conflict(message string) error {
	return &AppError{Code: http.StatusConflict, Message: message}
}

func BadGateway(message string) error {
	return &AppError{Code: http.StatusBadGateway, Message: message}
}

func InternalServerError(message string) error {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}

// HttpCode extracts the status for an error, defaulting to 500 for
// anything that is not an *AppError.
func HttpCode(err error) int {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
