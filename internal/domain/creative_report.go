package domain

// OfficialResult é o resultado de um conjunto de anúncios (ou anúncio) segundo sua meta de otimização
type OfficialResult struct {
	ActionType string   `json:"actionType"`
	Label      string   `json:"label"`
	Quantity   float64  `json:"quantity"`
	Cost       *float64 `json:"cost"`
}

type CreativeRow struct {
	AdID             string         `json:"adId"`
	AdName           string         `json:"adName"`
	Status           string         `json:"status"`
	AdsetID          string         `json:"adsetId"`
	CreativeID       string         `json:"creativeId"`
	ThumbnailURL     string         `json:"thumbnailUrl,omitempty"`
	ImageURL         string         `json:"imageUrl,omitempty"`
	Title            string         `json:"title,omitempty"`
	Body             string         `json:"body,omitempty"`
	OptimizationGoal string         `json:"optimizationGoal"`
	Spend            float64        `json:"spend"`
	Impressions      float64        `json:"impressions"`
	Clicks           float64        `json:"clicks"`
	CTR              *float64       `json:"ctr"`
	Result           OfficialResult `json:"result"`
}

type CreativeReport struct {
	CampaignID string         `json:"campaignId"`
	AccountID  string         `json:"accountId"`
	DateRange  *DateRange     `json:"dateRange"`
	Ads        []*CreativeRow `json:"ads"`
}
