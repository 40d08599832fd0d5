package integrating

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de integrações
var (
	ErrTenantIDRequired      = errors.New("tenant ID is required")
	ErrFetchIntegration      = errors.New("error fetching Meta integration")
	ErrFetchAccounts         = errors.New("error fetching ad accounts from database")
	ErrFetchTenants          = errors.New("error fetching tenants from database")
	ErrEmptyAccessToken      = errors.New("stored access token is empty")
	ErrCipherNotConfigured   = errors.New("token is encrypted but TOKEN_ENCRYPTION_KEY is not configured")
	ErrTokenDecryptionFailed = errors.New("token decryption failed")
)

// IntegrationError é um erro com contexto adicional de integração
type IntegrationError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	TenantID string // Tenant envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

func (e *IntegrationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *IntegrationError) Unwrap() error {
	return e.Err
}

func NewIntegrationError(err error, code string, tenantID string, details string) *IntegrationError {
	return &IntegrationError{
		Err:      err,
		Code:     code,
		TenantID: tenantID,
		Details:  details,
	}
}
