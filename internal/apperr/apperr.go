package apperr

import (
	"errors"
	"net/http"
)

/*
AppError é o erro de aplicação: condição de negócio esperada,
com status HTTP já classificado. Falhas de infraestrutura
(Mongo fora, bug) NUNCA viram AppError; sobem sem embrulho
e o boundary responde 500 genérico.
*/
type AppError struct {
	Message    string
	StatusCode int
}

func (e *AppError) Error() string {
	return e.Message
}

// New cria um AppError; statusCode <= 0 cai no default 400.
func New(message string, statusCode int) *AppError {
	if statusCode <= 0 {
		statusCode = http.StatusBadRequest
	}
	return &AppError{Message: message, StatusCode: statusCode}
}

func NotFound(message string) *AppError {
	return &AppError{Message: message, StatusCode: http.StatusNotFound}
}

func Conflict(message string) *AppError {
	return &AppError{Message: message, StatusCode: http.StatusConflict}
}

// From extrai o AppError da cadeia, se houver.
func From(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
