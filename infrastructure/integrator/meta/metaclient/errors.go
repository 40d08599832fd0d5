package metaclient

import (
	"fmt"
	"net/http"

	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
)

// UpstreamAPIError é um erro devolvido pelo Graph API.
// Status já está normalizado para 400..599 e pode ser repassado ao cliente.
type UpstreamAPIError struct {
	Status         int
	UpstreamStatus int
	Code           int
	Subcode        int
	Type           string
	Message        string
	FBTraceID      string
}

func (e *UpstreamAPIError) Error() string {
	return fmt.Sprintf(
		"meta: erro da API status=%d code=%d subcode=%d type=%s fbtrace_id=%s: %s",
		e.UpstreamStatus,
		e.Code,
		e.Subcode,
		e.Type,
		e.FBTraceID,
		e.Message,
	)
}

// IsTokenExpired indica token expirado ou revogado
func (e *UpstreamAPIError) IsTokenExpired() bool {
	details := &metadomain.ErrorDetails{Code: e.Code, Type: e.Type, ErrorSubcode: e.Subcode}
	return details.IsTokenExpired()
}

// Retryable indica erros transitórios (5xx, 429 e os códigos de rate limit do Graph API)
func (e *UpstreamAPIError) Retryable() bool {
	if e.UpstreamStatus == http.StatusTooManyRequests || e.UpstreamStatus >= 500 {
		return true
	}
	switch e.Code {
	case 4, 17, 32, 613:
		return true
	}
	return false
}

// TransportError é uma falha de rede antes de existir resposta
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("meta: falha de comunicação com %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NormalizeStatus converte o status do Graph API num status HTTP estável.
// 200 com erro no corpo vira 400; qualquer valor fora de 400..599 vira 500.
func NormalizeStatus(status int) int {
	switch {
	case status == http.StatusOK:
		return http.StatusBadRequest
	case status < 400 || status > 599:
		return http.StatusInternalServerError
	}
	return status
}

func newUpstreamAPIError(status int, details *metadomain.ErrorDetails) *UpstreamAPIError {
	apiErr := &UpstreamAPIError{
		Status:         NormalizeStatus(status),
		UpstreamStatus: status,
		Message:        http.StatusText(status),
	}
	if details != nil {
		apiErr.Code = details.Code
		apiErr.Subcode = details.ErrorSubcode
		apiErr.Type = details.Type
		apiErr.FBTraceID = details.FBTraceID
		if details.Message != "" {
			apiErr.Message = details.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = "erro desconhecido"
	}
	return apiErr
}
