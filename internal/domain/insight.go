package domain

import (
	"time"
)

type InsightLevel string

const (
	LevelCampaign InsightLevel = "campaign"
	LevelAdset    InsightLevel = "adset"
	LevelAd       InsightLevel = "ad"
)

// TimeRange é um intervalo fechado de datas (dia inteiro)
type TimeRange struct {
	Since time.Time
	Until time.Time
}

// ActionValue é um par tipo de ação / valor já convertido para número
type ActionValue struct {
	Type  string
	Value float64
}

// InsightRow é uma linha de insights do Graph API com números já convertidos
type InsightRow struct {
	AccountID        string
	CampaignID       string
	CampaignName     string
	AdsetID          string
	AdsetName        string
	AdID             string
	AdName           string
	Objective        string
	OptimizationGoal string
	Spend            float64
	Impressions      float64
	Clicks           float64
	Reach            float64
	CTR              *float64
	Actions          []ActionValue
	CostPerAction    []ActionValue
	DateStart        string
	DateStop         string
}
