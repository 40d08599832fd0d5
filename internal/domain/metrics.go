package domain

// MetricTotals são os totais aditivos de uma campanha, conta ou do dashboard.
// CostPerResult é sempre derivado de ResultSpend / Results e nunca somado.
type MetricTotals struct {
	Spend         float64  `json:"spend"`
	ResultSpend   float64  `json:"resultSpend"`
	Impressions   float64  `json:"impressions"`
	Clicks        float64  `json:"clicks"`
	Leads         float64  `json:"leads"`
	Results       float64  `json:"results"`
	CostPerResult *float64 `json:"costPerResult"`
}

// Add acumula outro total e recalcula o custo por resultado
func (t *MetricTotals) Add(other MetricTotals) {
	t.Spend += other.Spend
	t.ResultSpend += other.ResultSpend
	t.Impressions += other.Impressions
	t.Clicks += other.Clicks
	t.Leads += other.Leads
	t.Results += other.Results
	t.recompute()
}

// SetResults define a quantidade de resultados e o investimento atribuído a eles
func (t *MetricTotals) SetResults(results, resultSpend float64) {
	t.Results = results
	t.ResultSpend = resultSpend
	t.recompute()
}

func (t *MetricTotals) recompute() {
	if t.Results > 0 {
		cost := t.ResultSpend / t.Results
		t.CostPerResult = &cost
		return
	}
	t.CostPerResult = nil
}

// ResultDetail é uma linha do detalhamento por tipo de ação
type ResultDetail struct {
	ActionType string   `json:"actionType"`
	Label      string   `json:"label"`
	Quantity   float64  `json:"quantity"`
	Cost       *float64 `json:"cost"`
	Selected   bool     `json:"selected"`
}

// AdsetResult é o resultado de um conjunto de anúncios dentro do grupo dominante
type AdsetResult struct {
	AdsetID          string   `json:"adsetId"`
	AdsetName        string   `json:"adsetName"`
	OptimizationGoal string   `json:"optimizationGoal"`
	Spend            float64  `json:"spend"`
	ActionTypes      []string `json:"actionTypes"`
	Label            string   `json:"label"`
	Quantity         float64  `json:"quantity"`
	CostPerResult    *float64 `json:"costPerResult"`
}

// CampaignResultSummary é o resultado oficial da campanha.
// Quantity nil indica que não existe total baseado no objetivo.
// CostPerResult segue o modo da regra e prefere o custo por ação informado pela plataforma,
// como o gerenciador de anúncios exibe. O custo que fecha com os totais, e que é somado
// entre campanhas e contas, é sempre MetricTotals.CostPerResult (ResultSpend / Results).
type CampaignResultSummary struct {
	Label            string         `json:"label"`
	Quantity         *float64       `json:"quantity"`
	CostPerResult    *float64       `json:"costPerResult"`
	OptimizationGoal string         `json:"optimizationGoal"`
	ActionTypes      []string       `json:"actionTypes"`
	Mode             string         `json:"mode,omitempty"`
	Detalhes         []ResultDetail `json:"detalhes"`
	Adsets           []AdsetResult  `json:"adsets"`
}

// CampaignMetricBundle junta os totais da campanha e o resumo de resultado
type CampaignMetricBundle struct {
	Totals    MetricTotals
	Resultado *CampaignResultSummary
}
