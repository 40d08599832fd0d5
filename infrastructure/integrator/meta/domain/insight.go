package metadomain

// Action é o formato de actions e cost_per_action_type: valores chegam como string
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// InsightRow é uma linha de /insights exatamente como o Graph API devolve
type InsightRow struct {
	AccountID        string   `json:"account_id"`
	AccountName      string   `json:"account_name"`
	CampaignID       string   `json:"campaign_id"`
	CampaignName     string   `json:"campaign_name"`
	AdsetID          string   `json:"adset_id"`
	AdsetName        string   `json:"adset_name"`
	AdID             string   `json:"ad_id"`
	AdName           string   `json:"ad_name"`
	Objective        string   `json:"objective"`
	OptimizationGoal string   `json:"optimization_goal"`
	Spend            string   `json:"spend"`
	Impressions      string   `json:"impressions"`
	Clicks           string   `json:"clicks"`
	Reach            string   `json:"reach"`
	CTR              string   `json:"ctr"`
	Actions          []Action `json:"actions"`
	CostPerActions   []Action `json:"cost_per_action_type"`
	DateStart        string   `json:"date_start"`
	DateStop         string   `json:"date_stop"`
}

type TimeRange struct {
	Since string `json:"since"`
	Until string `json:"until"`
}
