package insighting

import (
	"sort"

	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

// BuildCampaignBundle calcula os totais da campanha e o resultado oficial a partir
// do grupo dominante. Sem conjuntos de anúncios os totais ficam zerados e não há resultado.
func BuildCampaignBundle(campaign domain.Campaign, adsets []*AdsetBundle) domain.CampaignMetricBundle {
	var bundle domain.CampaignMetricBundle

	for _, b := range adsets {
		bundle.Totals.Spend += b.Spend
		bundle.Totals.Impressions += b.Impressions
		bundle.Totals.Clicks += b.Clicks
		bundle.Totals.Leads += b.Leads
	}

	dominant := SelectDominantGroup(GroupByGoal(adsets))
	if dominant == nil {
		return bundle
	}

	rule := ResolveObjectiveRule(campaign.Objective)
	if rule == nil {
		bundle.Resultado = officialSummary(dominant)
		return bundle
	}

	actions := mergeGroupActions(dominant)
	outcome := applyRule(rule, actions, dominant.Spend)

	resultSpend := 0.0
	if outcome.Quantity > 0 {
		resultSpend = dominant.Spend
	}
	bundle.Totals.SetResults(outcome.Quantity, resultSpend)

	quantity := outcome.Quantity
	selected := outcome.Selected
	if selected == nil {
		selected = []string{}
	}

	bundle.Resultado = &domain.CampaignResultSummary{
		Label:            rule.Label,
		Quantity:         &quantity,
		CostPerResult:    roundPtr(outcome.Cost),
		OptimizationGoal: string(dominant.Goal),
		ActionTypes:      selected,
		Mode:             rule.Selection.Mode(),
		Detalhes:         outcome.Details,
		Adsets:           ruleAdsetRows(dominant, rule.Label, selected),
	}

	return bundle
}

// mergeGroupActions soma as ações dos membros; o custo é a média ponderada pela quantidade
func mergeGroupActions(group *GoalGroup) map[string]*ActionTotal {
	merged := make(map[string]*ActionTotal)
	weighted := make(map[string]float64)
	weightedQty := make(map[string]float64)

	for _, b := range group.Adsets {
		for t, total := range b.actions {
			m, ok := merged[t]
			if !ok {
				m = &ActionTotal{}
				merged[t] = m
			}
			m.Quantity += total.Quantity
			if total.Cost != nil && total.Quantity > 0 {
				weighted[t] += *total.Cost * total.Quantity
				weightedQty[t] += total.Quantity
			}
		}
	}

	for t, qty := range weightedQty {
		cost := weighted[t] / qty
		merged[t].Cost = &cost
	}

	return merged
}

// ruleAdsetRows detalha cada conjunto do grupo dominante considerando só os tipos selecionados pela regra
func ruleAdsetRows(group *GoalGroup, label string, selected []string) []domain.AdsetResult {
	rows := make([]domain.AdsetResult, 0, len(group.Adsets))

	for _, b := range group.Adsets {
		var qty, weighted, weightedQty float64
		for _, t := range selected {
			q := b.quantity(t)
			if q <= 0 {
				continue
			}
			qty += q
			if c := b.cost(t); c != nil {
				weighted += *c * q
				weightedQty += q
			}
		}

		var cost *float64
		switch {
		case weightedQty > 0:
			cost = utils.Float64Ptr(weighted / weightedQty)
		case qty > 0 && b.Spend > 0:
			cost = utils.Float64Ptr(b.Spend / qty)
		}

		rows = append(rows, domain.AdsetResult{
			AdsetID:          b.ID,
			AdsetName:        b.Name,
			OptimizationGoal: string(b.OptimizationGoal),
			Spend:            b.Spend,
			ActionTypes:      selected,
			Label:            label,
			Quantity:         qty,
			CostPerResult:    roundPtr(cost),
		})
	}

	sortAdsetRows(rows)
	return rows
}

// officialSummary é o caminho sem regra de objetivo: cada conjunto traz seu resultado
// oficial e a campanha não tem quantidade consolidada.
func officialSummary(group *GoalGroup) *domain.CampaignResultSummary {
	rows := make([]domain.AdsetResult, 0, len(group.Adsets))
	types := make([]string, 0)
	seen := make(map[string]struct{})

	for _, b := range group.Adsets {
		official := b.OfficialResult
		if _, ok := seen[official.ActionType]; !ok {
			seen[official.ActionType] = struct{}{}
			types = append(types, official.ActionType)
		}

		rows = append(rows, domain.AdsetResult{
			AdsetID:          b.ID,
			AdsetName:        b.Name,
			OptimizationGoal: string(b.OptimizationGoal),
			Spend:            b.Spend,
			ActionTypes:      []string{official.ActionType},
			Label:            official.Label,
			Quantity:         official.Quantity,
			CostPerResult:    roundPtr(official.Cost),
		})
	}
	sortAdsetRows(rows)

	return &domain.CampaignResultSummary{
		Label:            defaultResultLabel,
		OptimizationGoal: string(group.Goal),
		ActionTypes:      types,
		Detalhes:         []domain.ResultDetail{},
		Adsets:           rows,
	}
}

func sortAdsetRows(rows []domain.AdsetResult) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Quantity != rows[j].Quantity {
			return rows[i].Quantity > rows[j].Quantity
		}
		if rows[i].Spend != rows[j].Spend {
			return rows[i].Spend > rows[j].Spend
		}
		return rows[i].AdsetID < rows[j].AdsetID
	})
}
