package domain

import "errors"

// ValidationError descreve a rejeição de uma entrada do pipeline de mutação.
// Nenhuma mudança de estado acontece quando um ValidationError é retornado.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

// NewValidationError cria um erro de validação para um campo específico.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError informa se err (ou sua cadeia) é um erro de validação.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
