package insighting

import (
	"sort"

	"github.com/vfg2006/ads-insights-api/internal/domain"
)

// ActionEntry é um tipo de ação já agregado
type ActionEntry struct {
	Type     string
	Quantity float64
	Cost     *float64
}

// AdsetBundle é a visão final, somente leitura, de um conjunto de anúncios agregado
type AdsetBundle struct {
	ID               string
	Name             string
	CampaignID       string
	CampaignName     string
	Objective        string
	OptimizationGoal OptimizationGoal
	Spend            float64
	Impressions      float64
	Clicks           float64
	Reach            float64
	CTR              *float64
	Leads            float64
	Actions          []ActionEntry
	OfficialResult   domain.OfficialResult

	actions map[string]*ActionTotal
}

// NewAdsetBundle finaliza o acumulador: ordena as ações, soma os leads e escolhe o resultado oficial
func NewAdsetBundle(agg *AggregatedAdsetMetrics) *AdsetBundle {
	b := &AdsetBundle{
		ID:               agg.ID,
		Name:             agg.Name,
		CampaignID:       agg.CampaignID,
		CampaignName:     agg.CampaignName,
		Objective:        agg.Objective,
		OptimizationGoal: CanonicalGoal(agg.OptimizationGoal),
		Spend:            agg.Spend,
		Impressions:      agg.Impressions,
		Clicks:           agg.Clicks,
		Reach:            agg.Reach,
		actions:          agg.Actions,
	}

	if agg.Impressions > 0 {
		ctr := agg.Clicks / agg.Impressions * 100
		b.CTR = &ctr
	}

	b.Actions = make([]ActionEntry, 0, len(agg.Actions))
	for t, total := range agg.Actions {
		b.Actions = append(b.Actions, ActionEntry{Type: t, Quantity: total.Quantity, Cost: total.Cost})
		if isLeadAction(t) {
			b.Leads += total.Quantity
		}
	}
	sort.Slice(b.Actions, func(i, j int) bool {
		if b.Actions[i].Quantity != b.Actions[j].Quantity {
			return b.Actions[i].Quantity > b.Actions[j].Quantity
		}
		return b.Actions[i].Type < b.Actions[j].Type
	})

	b.OfficialResult = PickOfficialResult(b.OptimizationGoal, b.Actions, b.Spend)

	return b
}

// BuildAdsetBundles finaliza todos os acumuladores, ordenados por ID
func BuildAdsetBundles(aggregated map[string]*AggregatedAdsetMetrics) []*AdsetBundle {
	bundles := make([]*AdsetBundle, 0, len(aggregated))
	for _, agg := range aggregated {
		bundles = append(bundles, NewAdsetBundle(agg))
	}
	sortBundles(bundles)
	return bundles
}

func (b *AdsetBundle) quantity(actionType string) float64 {
	if total, ok := b.actions[actionType]; ok {
		return total.Quantity
	}
	return 0
}

func (b *AdsetBundle) cost(actionType string) *float64 {
	if total, ok := b.actions[actionType]; ok {
		return total.Cost
	}
	return nil
}

func sortBundles(bundles []*AdsetBundle) {
	sort.Slice(bundles, func(i, j int) bool {
		return bundles[i].ID < bundles[j].ID
	})
}
