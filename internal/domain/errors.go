package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingIntegration   = errors.New("integração Meta não encontrada")
	ErrMissingConfiguration = errors.New("configuração ausente")
	ErrValidation           = errors.New("parâmetros inválidos")
)

// MissingIntegrationError indica que o tenant não tem token utilizável
type MissingIntegrationError struct {
	TenantID string
	Err      error
}

func (e *MissingIntegrationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s para o tenant %s: %s", ErrMissingIntegration.Error(), e.TenantID, e.Err.Error())
	}
	return fmt.Sprintf("%s para o tenant %s", ErrMissingIntegration.Error(), e.TenantID)
}

func (e *MissingIntegrationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMissingIntegration}
	}
	return []error{ErrMissingIntegration, e.Err}
}

// MissingConfigurationError indica uma configuração obrigatória vazia (ex: META_APP_SECRET)
type MissingConfigurationError struct {
	Key string
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingConfiguration.Error(), e.Key)
}

func (e *MissingConfigurationError) Unwrap() error {
	return ErrMissingConfiguration
}

// ValidationError indica parâmetros de entrada inválidos
type ValidationError struct {
	Field   string
	Details string
}

func NewValidationError(field, details string) *ValidationError {
	return &ValidationError{Field: field, Details: details}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Details)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation.Error(), e.Field, e.Details)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
