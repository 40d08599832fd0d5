package insighting

import (
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

// ruleOutcome é o resultado de aplicar uma regra de objetivo a um conjunto de ações
type ruleOutcome struct {
	Quantity float64
	Cost     *float64
	Selected []string
	Details  []domain.ResultDetail
}

// applyRule aplica o modo da regra (first ou sum) sobre ações já agregadas
func applyRule(rule *ResultRule, actions map[string]*ActionTotal, spend float64) ruleOutcome {
	var out ruleOutcome

	switch sel := rule.Selection.(type) {
	case FirstOf:
		for _, t := range sel {
			total, ok := actions[t]
			if !ok || total.Quantity <= 0 {
				continue
			}
			out.Quantity = total.Quantity
			out.Cost = costOrProportional(total.Cost, spend, total.Quantity)
			out.Selected = []string{t}
			break
		}

	case SumOf:
		var weighted, weightedQty float64
		for _, t := range sel {
			total, ok := actions[t]
			if !ok || total.Quantity <= 0 {
				continue
			}
			out.Quantity += total.Quantity
			out.Selected = append(out.Selected, t)
			if total.Cost != nil {
				weighted += *total.Cost * total.Quantity
				weightedQty += total.Quantity
			}
		}
		switch {
		case weightedQty > 0:
			cost := weighted / weightedQty
			out.Cost = &cost
		case out.Quantity > 0 && spend > 0:
			cost := spend / out.Quantity
			out.Cost = &cost
		}
	}

	out.Details = ruleDetails(rule, actions, out.Selected, spend)

	return out
}

// ruleDetails lista os tipos da regra com quantidade positiva, na ordem declarada
func ruleDetails(rule *ResultRule, actions map[string]*ActionTotal, selected []string, spend float64) []domain.ResultDetail {
	chosen := make(map[string]struct{}, len(selected))
	for _, t := range selected {
		chosen[t] = struct{}{}
	}

	details := make([]domain.ResultDetail, 0)
	for _, t := range rule.Selection.ActionTypes() {
		total, ok := actions[t]
		if !ok || total.Quantity <= 0 {
			continue
		}
		_, isSelected := chosen[t]
		details = append(details, domain.ResultDetail{
			ActionType: t,
			Label:      FormatActionLabel(t),
			Quantity:   total.Quantity,
			Cost:       roundPtr(costOrProportional(total.Cost, spend, total.Quantity)),
			Selected:   isSelected,
		})
	}

	return details
}

// PickOfficialResult escolhe o resultado de um conjunto de anúncios sem considerar o objetivo da campanha.
// Sempre devolve um registro, mesmo quando a quantidade é zero.
func PickOfficialResult(goal OptimizationGoal, actions []ActionEntry, spend float64) domain.OfficialResult {
	candidates := officialCandidates(goal)

	byType := make(map[string]ActionEntry, len(actions))
	for _, a := range actions {
		byType[a.Type] = a
	}

	for _, t := range candidates {
		if a, ok := byType[t]; ok && a.Quantity > 0 {
			return officialFrom(a, spend)
		}
	}

	// actions já vem ordenado por quantidade desc e tipo asc
	if len(actions) > 0 && actions[0].Quantity > 0 {
		return officialFrom(actions[0], spend)
	}

	return domain.OfficialResult{
		ActionType: candidates[0],
		Label:      FormatActionLabel(candidates[0]),
		Quantity:   0,
	}
}

func officialCandidates(goal OptimizationGoal) []string {
	candidates := make([]string, 0, len(fallbackActionTypes)+4)
	seen := make(map[string]struct{})

	for _, list := range [][]string{goalActionTypes[goal], fallbackActionTypes} {
		for _, t := range list {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			candidates = append(candidates, t)
		}
	}

	return candidates
}

func officialFrom(a ActionEntry, spend float64) domain.OfficialResult {
	return domain.OfficialResult{
		ActionType: a.Type,
		Label:      FormatActionLabel(a.Type),
		Quantity:   a.Quantity,
		Cost:       costOrProportional(a.Cost, spend, a.Quantity),
	}
}

// costOrProportional usa o custo informado pela plataforma; sem ele, investimento / quantidade
func costOrProportional(cost *float64, spend, quantity float64) *float64 {
	if cost != nil {
		v := *cost
		return &v
	}
	if quantity > 0 && spend > 0 {
		v := spend / quantity
		return &v
	}
	return nil
}

func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return utils.Float64Ptr(utils.RoundWithTwoDecimalPlace(*v))
}
