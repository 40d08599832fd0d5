package insighting

import (
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

// ActionTotal acumula um tipo de ação: quantidades somadas e o menor custo observado
type ActionTotal struct {
	Quantity float64
	Cost     *float64
}

// AggregatedAdsetMetrics acumula as linhas de um conjunto de anúncios (ou de um anúncio)
type AggregatedAdsetMetrics struct {
	ID               string
	Name             string
	CampaignID       string
	CampaignName     string
	Objective        string
	OptimizationGoal string
	Spend            float64
	Impressions      float64
	Clicks           float64
	Reach            float64
	Actions          map[string]*ActionTotal
}

func newAggregated(id string) *AggregatedAdsetMetrics {
	return &AggregatedAdsetMetrics{
		ID:      id,
		Actions: make(map[string]*ActionTotal),
	}
}

func (a *AggregatedAdsetMetrics) add(row domain.InsightRow, name string) {
	if a.Name == "" {
		a.Name = name
	}
	if a.CampaignID == "" {
		a.CampaignID = row.CampaignID
	}
	if a.CampaignName == "" {
		a.CampaignName = row.CampaignName
	}
	if a.Objective == "" {
		a.Objective = row.Objective
	}
	if a.OptimizationGoal == "" {
		a.OptimizationGoal = row.OptimizationGoal
	}

	a.Spend += row.Spend
	a.Impressions += row.Impressions
	a.Clicks += row.Clicks
	a.Reach += row.Reach

	for _, action := range row.Actions {
		t := NormalizeActionType(action.Type)
		if t == "" {
			continue
		}
		a.action(t).Quantity += action.Value
	}

	// custos se repetem entre páginas; somar inflaria o valor
	for _, cost := range row.CostPerAction {
		t := NormalizeActionType(cost.Type)
		if t == "" {
			continue
		}
		total := a.action(t)
		if total.Cost == nil || cost.Value < *total.Cost {
			v := cost.Value
			total.Cost = &v
		}
	}
}

func (a *AggregatedAdsetMetrics) action(actionType string) *ActionTotal {
	total, ok := a.Actions[actionType]
	if !ok {
		total = &ActionTotal{}
		a.Actions[actionType] = total
	}
	return total
}

// AggregateAdsets agrupa as linhas por conjunto de anúncios; linhas sem adset_id são ignoradas
func AggregateAdsets(rows []domain.InsightRow) map[string]*AggregatedAdsetMetrics {
	return aggregateBy(rows, func(row domain.InsightRow) (string, string) {
		return row.AdsetID, row.AdsetName
	})
}

// AggregateAds agrupa as linhas por anúncio, usado no relatório de criativos
func AggregateAds(rows []domain.InsightRow) map[string]*AggregatedAdsetMetrics {
	return aggregateBy(rows, func(row domain.InsightRow) (string, string) {
		return row.AdID, row.AdName
	})
}

func aggregateBy(rows []domain.InsightRow, key func(domain.InsightRow) (string, string)) map[string]*AggregatedAdsetMetrics {
	out := make(map[string]*AggregatedAdsetMetrics)

	for _, row := range rows {
		id, name := key(row)
		if id == "" {
			continue
		}

		agg, ok := out[id]
		if !ok {
			agg = newAggregated(id)
			out[id] = agg
		}
		agg.add(row, name)
	}

	return out
}
