package handler

import (
	"net/http"

	"github.com/vfg2006/ads-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-api/pkg/log"
	"github.com/vfg2006/ads-insights-api/pkg/middleware"
)

func GetDashboardMetrics(service insighting.DashboardInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filters, err := parseDashboardFilters(r.URL.Query())
		if err != nil {
			logger.WithFields(log.Fields{
				"tenant_id": claims.TenantID,
				"query":     r.URL.RawQuery,
				"error":     err.Error(),
			}).Warn("dashboard: parâmetros inválidos")

			writeServiceError(w, r, err)
			return
		}

		metrics, err := service.GetDashboardMetrics(r.Context(), claims.TenantID, filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"tenant_id":     claims.TenantID,
			"account_count": len(metrics.Accounts),
			"partial":       metrics.Partial,
		}).Info("dashboard: métricas calculadas")

		writeJSON(w, r, http.StatusOK, metrics)
	})
}
