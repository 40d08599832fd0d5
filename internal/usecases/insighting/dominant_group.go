package insighting

import (
	"math"
	"sort"
)

// diferença de investimento abaixo disso conta como empate
const spendEpsilon = 0.005

// GoalGroup reúne os conjuntos de anúncios de uma campanha com a mesma meta de otimização
type GoalGroup struct {
	Goal         OptimizationGoal
	Spend        float64
	ResultVolume float64
	Adsets       []*AdsetBundle
}

// GroupByGoal agrupa por meta canônica; o resultado é ordenado pela meta, com o grupo
// sem meta por último, e os membros de cada grupo pelo ID, independente da ordem de entrada.
func GroupByGoal(bundles []*AdsetBundle) []*GoalGroup {
	sorted := make([]*AdsetBundle, len(bundles))
	copy(sorted, bundles)
	sortBundles(sorted)

	index := make(map[OptimizationGoal]*GoalGroup)
	groups := make([]*GoalGroup, 0)

	for _, b := range sorted {
		goal := b.OptimizationGoal
		if goal == "" {
			goal = GoalUnknown
		}

		g, ok := index[goal]
		if !ok {
			g = &GoalGroup{Goal: goal}
			index[goal] = g
			groups = append(groups, g)
		}
		g.Spend += b.Spend
		g.ResultVolume += b.OfficialResult.Quantity
		g.Adsets = append(g.Adsets, b)
	}

	sort.Slice(groups, func(i, j int) bool {
		iUnknown, jUnknown := groups[i].Goal == GoalUnknown, groups[j].Goal == GoalUnknown
		if iUnknown != jUnknown {
			return jUnknown
		}
		return groups[i].Goal < groups[j].Goal
	})

	return groups
}

// SelectDominantGroup escolhe o grupo de maior investimento; em empate, o de maior volume de resultados.
// Persistindo o empate vence a primeira meta em ordem alfabética. Devolve nil sem grupos.
func SelectDominantGroup(groups []*GoalGroup) *GoalGroup {
	var best *GoalGroup

	for _, g := range groups {
		if best == nil {
			best = g
			continue
		}

		diff := g.Spend - best.Spend
		switch {
		case math.Abs(diff) <= spendEpsilon:
			if g.ResultVolume > best.ResultVolume {
				best = g
			}
		case diff > 0:
			best = g
		}
	}

	return best
}
