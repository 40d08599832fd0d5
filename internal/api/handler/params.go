package handler

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

// parseTimeRange exige startDate e endDate juntos; ausentes significa histórico completo
func parseTimeRange(query url.Values) (*domain.TimeRange, error) {
	start := strings.TrimSpace(query.Get("startDate"))
	end := strings.TrimSpace(query.Get("endDate"))

	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, domain.NewValidationError("startDate", "startDate e endDate devem ser informados juntos")
	}

	since, err := utils.ParseDate(start)
	if err != nil {
		return nil, domain.NewValidationError("startDate", "data inválida, use AAAA-MM-DD")
	}
	until, err := utils.ParseDate(end)
	if err != nil {
		return nil, domain.NewValidationError("endDate", "data inválida, use AAAA-MM-DD")
	}
	if until.Before(*since) {
		return nil, domain.NewValidationError("startDate", "startDate deve ser anterior ou igual a endDate")
	}

	return &domain.TimeRange{Since: *since, Until: *until}, nil
}

// parseList aceita valores separados por vírgula e parâmetros repetidos
func parseList(query url.Values, key string) []string {
	var out []string
	for _, raw := range query[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func parseBool(query url.Values, key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domain.NewValidationError(key, "valor booleano inválido")
	}
	return v, nil
}

// parseDashboardFilters monta os filtros do dashboard a partir da query string
func parseDashboardFilters(query url.Values) (*domain.DashboardFilters, error) {
	timeRange, err := parseTimeRange(query)
	if err != nil {
		return nil, err
	}

	compare, err := parseBool(query, "compare", true)
	if err != nil {
		return nil, err
	}

	filters := &domain.DashboardFilters{
		Range:             timeRange,
		AccountIDs:        parseList(query, "accountId"),
		CampaignIDs:       parseList(query, "campaignId"),
		Objectives:        parseList(query, "objective"),
		Statuses:          parseList(query, "status"),
		OptimizationGoals: parseList(query, "optimizationGoal"),
	}

	if timeRange != nil && compare {
		since, until := utils.PreviousWindow(timeRange.Since, timeRange.Until)
		filters.PreviousRange = &domain.TimeRange{Since: since, Until: until}
	}

	return filters, nil
}
