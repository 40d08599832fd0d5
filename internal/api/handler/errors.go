package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/usecases/integrating"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeServiceError traduz os erros dos serviços para a resposta padronizada.
// Erros do Graph API usam o status já normalizado que carregam.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithField("path", r.URL.Path)

	var upstreamErr *metaclient.UpstreamAPIError
	var validationErr *domain.ValidationError
	var integrationErr *integrating.IntegrationError
	var transportErr *metaclient.TransportError

	switch {
	case errors.As(err, &upstreamErr):
		code := apiErrors.ErrUpstreamAPI
		if upstreamErr.IsTokenExpired() {
			code = apiErrors.ErrTokenExpired
		}
		logger.WithFields(log.Fields{
			"status": upstreamErr.Status,
			"error":  err.Error(),
		}).Warn("Erro devolvido pelo Graph API")
		apiErrors.WriteErrorWithStatus(w, upstreamErr.Status, code, upstreamErr.Message, map[string]any{
			"upstreamStatus": upstreamErr.UpstreamStatus,
			"code":           upstreamErr.Code,
			"subcode":        upstreamErr.Subcode,
			"fbtraceId":      upstreamErr.FBTraceID,
		})

	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validationErr.Error(), map[string]string{"field": validationErr.Field})

	case errors.Is(err, domain.ErrMissingIntegration):
		logger.WithField("error", err.Error()).Warn("Tenant sem integração utilizável")
		apiErrors.WriteError(w, apiErrors.ErrMissingIntegration, domain.ErrMissingIntegration.Error(), nil)

	case errors.Is(err, domain.ErrMissingConfiguration):
		logger.WithField("error", err.Error()).Error("Configuração obrigatória ausente")
		apiErrors.WriteError(w, apiErrors.ErrMissingConfiguration, err.Error(), nil)

	case errors.As(err, &integrationErr):
		logger.WithField("error", err.Error()).Error("Erro ao consultar integrações")
		apiErrors.WriteError(w, integrationErr.Code, integrationErr.Err.Error(), nil)

	case errors.As(err, &transportErr):
		logger.WithField("error", err.Error()).Error("Falha de comunicação com o Graph API")
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Falha de comunicação com o Graph API", nil)

	case errors.Is(err, context.DeadlineExceeded):
		logger.WithField("error", err.Error()).Error("Tempo esgotado")
		apiErrors.WriteError(w, apiErrors.ErrTimeout, "Tempo esgotado", nil)

	default:
		logger.WithField("error", err.Error()).Error("Erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithField("error", err.Error()).Error("Falha ao serializar resposta")
	}
}
