package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseNumber converte os valores numéricos que o Graph API envia como string.
// Valores vazios ou inválidos viram 0; o sufixo "%" é ignorado.
func ParseNumber(raw string) float64 {
	value, ok := parseFloat(raw)
	if !ok {
		return 0
	}
	return value
}

// ParseRatio funciona como ParseNumber, mas devolve nil quando o valor é desconhecido
func ParseRatio(raw string) *float64 {
	value, ok := parseFloat(raw)
	if !ok {
		return nil
	}
	return &value
}

func parseFloat(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "%")
	if s == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}

func Float64Ptr(f float64) *float64 {
	return &f
}
