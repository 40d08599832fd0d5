package domain

import (
	"sort"
	"strings"
	"time"
)

// DashboardFilters são os filtros aceitos pelo dashboard.
// Listas vazias não filtram; listas preenchidas são combinadas com AND.
type DashboardFilters struct {
	Range             *TimeRange `json:"range,omitempty"`
	PreviousRange     *TimeRange `json:"previousRange,omitempty"`
	AccountIDs        []string   `json:"accountIds,omitempty"`
	CampaignIDs       []string   `json:"campaignIds,omitempty"`
	Objectives        []string   `json:"objectives,omitempty"`
	Statuses          []string   `json:"statuses,omitempty"`
	OptimizationGoals []string   `json:"optimizationGoals,omitempty"`
}

// Validate confere os intervalos de datas
func (f *DashboardFilters) Validate() error {
	if f == nil {
		return nil
	}
	if f.Range != nil && f.Range.Until.Before(f.Range.Since) {
		return NewValidationError("startDate", "startDate deve ser anterior ou igual a endDate")
	}
	if f.PreviousRange != nil {
		if f.Range == nil {
			return NewValidationError("previousRange", "período de comparação exige um período principal")
		}
		if f.PreviousRange.Until.Before(f.PreviousRange.Since) {
			return NewValidationError("previousRange", "período de comparação inválido")
		}
	}
	return nil
}

// Normalize ordena e remove duplicatas das listas para que filtros equivalentes sejam iguais
func (f *DashboardFilters) Normalize() {
	if f == nil {
		return
	}
	f.AccountIDs = normalizeList(f.AccountIDs, false)
	f.CampaignIDs = normalizeList(f.CampaignIDs, false)
	f.Objectives = normalizeList(f.Objectives, true)
	f.Statuses = normalizeList(f.Statuses, true)
	f.OptimizationGoals = normalizeList(f.OptimizationGoals, false)
}

func normalizeList(values []string, upper bool) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if upper {
			v = strings.ToUpper(v)
		}
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)

	if len(out) == 0 {
		return nil
	}
	return out
}

type DateRange struct {
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	PreviousStartDate string `json:"previousStartDate,omitempty"`
	PreviousEndDate   string `json:"previousEndDate,omitempty"`
}

// NewDateRange monta o intervalo exibido na resposta; nil quando o histórico completo foi usado
func NewDateRange(filters *DashboardFilters) *DateRange {
	if filters == nil || filters.Range == nil {
		return nil
	}

	dr := &DateRange{
		StartDate: filters.Range.Since.Format(time.DateOnly),
		EndDate:   filters.Range.Until.Format(time.DateOnly),
	}
	if filters.PreviousRange != nil {
		dr.PreviousStartDate = filters.PreviousRange.Since.Format(time.DateOnly)
		dr.PreviousEndDate = filters.PreviousRange.Until.Format(time.DateOnly)
	}
	return dr
}

type CampaignMetrics struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Objective string                 `json:"objective"`
	Status    string                 `json:"status"`
	Metrics   MetricTotals           `json:"metrics"`
	Resultado *CampaignResultSummary `json:"resultado,omitempty"`
}

type AccountMetrics struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Value     float64            `json:"value"`
	Metrics   MetricTotals       `json:"metrics"`
	Campaigns []*CampaignMetrics `json:"campaigns"`
}

// AccountWarning descreve uma conta que não pôde ser processada
type AccountWarning struct {
	AccountID string `json:"accountId"`
	Status    int    `json:"status"`
	Message   string `json:"message"`
}

type DashboardMetrics struct {
	DateRange      *DateRange        `json:"dateRange"`
	Totals         MetricTotals      `json:"totals"`
	PreviousTotals *MetricTotals     `json:"previousTotals"`
	Accounts       []*AccountMetrics `json:"accounts"`
	Partial        bool              `json:"partial,omitempty"`
	Warnings       []AccountWarning  `json:"warnings,omitempty"`
	GeneratedAt    time.Time         `json:"generatedAt"`
}
