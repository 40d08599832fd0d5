package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-api/pkg/log"
	"github.com/vfg2006/ads-insights-api/pkg/middleware"
)

func GetCampaignCreatives(service insighting.CreativeInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		query := r.URL.Query()
		accountID := strings.TrimSpace(query.Get("accountId"))
		if accountID == "" {
			writeServiceError(w, r, domain.NewValidationError("accountId", "accountId é obrigatório"))
			return
		}

		timeRange, err := parseTimeRange(query)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		report, err := service.GetCampaignCreatives(r.Context(), claims.TenantID, campaignID, accountID, timeRange)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"tenant_id":   claims.TenantID,
			"campaign_id": campaignID,
			"account_id":  accountID,
			"ads":         len(report.Ads),
		}).Info("creatives: relatório montado")

		writeJSON(w, r, http.StatusOK, report)
	})
}
