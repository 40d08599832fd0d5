package insighting

import (
	"strings"
	"unicode"
)

const defaultResultLabel = "Results"

// NormalizeActionType deixa o tipo de ação em minúsculas e sem espaços nas pontas
func NormalizeActionType(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// CanonicalGoal resolve a meta de otimização pela tabela de aliases.
// Meta vazia vira GoalUnknown; meta não mapeada é mantida em minúsculas.
func CanonicalGoal(raw string) OptimizationGoal {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return GoalUnknown
	}
	if goal, ok := goalAliases[key]; ok {
		return goal
	}
	return OptimizationGoal(key)
}

// FormatActionLabel devolve o rótulo exibido para um tipo de ação
func FormatActionLabel(actionType string) string {
	t := NormalizeActionType(actionType)
	if t == "" {
		return defaultResultLabel
	}
	if label, ok := actionLabels[t]; ok {
		return label
	}

	// offsite_conversion.custom.123 -> "Offsite Conversion Custom 123"
	words := strings.FieldsFunc(t, func(r rune) bool {
		return r == '_' || r == '.'
	})
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	if len(words) == 0 {
		return defaultResultLabel
	}
	return strings.Join(words, " ")
}

func isLeadAction(actionType string) bool {
	_, ok := leadActionTypes[actionType]
	return ok
}
