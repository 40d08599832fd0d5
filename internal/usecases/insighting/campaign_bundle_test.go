package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

func assertCostInvariant(t *testing.T, totals domain.MetricTotals) {
	t.Helper()
	if totals.Results > 0 {
		require.NotNil(t, totals.CostPerResult)
		assert.InDelta(t, totals.ResultSpend/totals.Results, *totals.CostPerResult, 0.000001)
		return
	}
	assert.Nil(t, totals.CostPerResult)
}

func TestBuildCampaignBundle(t *testing.T) {
	tests := []struct {
		name     string
		campaign domain.Campaign
		rows     []domain.InsightRow
		validate func(t *testing.T, bundle domain.CampaignMetricBundle)
	}{
		{
			name:     "Grupo de maior investimento define o resultado da campanha",
			campaign: domain.Campaign{ID: "c1", Objective: "OUTCOME_LEADS"},
			rows: []domain.InsightRow{
				adsetRow("c1", "a1", "LEAD_GENERATION", 100, actions("lead", 10.0)),
				adsetRow("c1", "a2", "OFFSITE_CONVERSIONS", 50, actions("offsite_conversion.fb_pixel_purchase", 2.0)),
			},
			validate: func(t *testing.T, bundle domain.CampaignMetricBundle) {
				assert.Equal(t, 150.0, bundle.Totals.Spend)
				assert.Equal(t, 10.0, bundle.Totals.Results)
				assert.Equal(t, 100.0, bundle.Totals.ResultSpend)
				assert.Equal(t, 10.0, bundle.Totals.Leads)
				assertCostInvariant(t, bundle.Totals)

				res := bundle.Resultado
				require.NotNil(t, res)
				assert.Equal(t, "Leads", res.Label)
				require.NotNil(t, res.Quantity)
				assert.Equal(t, 10.0, *res.Quantity)
				require.NotNil(t, res.CostPerResult)
				assert.Equal(t, 10.0, *res.CostPerResult)
				assert.Equal(t, "lead_generation", res.OptimizationGoal)
				assert.Equal(t, "first", res.Mode)
				assert.Equal(t, []string{"lead"}, res.ActionTypes)

				require.Len(t, res.Adsets, 1)
				assert.Equal(t, "a1", res.Adsets[0].AdsetID)
				assert.Equal(t, 10.0, res.Adsets[0].Quantity)
			},
		},
		{
			name:     "Custo da plataforma no resumo e custo proporcional nos totais",
			campaign: domain.Campaign{ID: "c1", Objective: "OUTCOME_LEADS"},
			rows: func() []domain.InsightRow {
				row := adsetRow("c1", "a1", "LEAD_GENERATION", 100, actions("lead", 10.0))
				row.CostPerAction = actions("lead", 8.0)
				return []domain.InsightRow{row}
			}(),
			validate: func(t *testing.T, bundle domain.CampaignMetricBundle) {
				require.NotNil(t, bundle.Resultado)
				require.NotNil(t, bundle.Resultado.CostPerResult)
				assert.Equal(t, 8.0, *bundle.Resultado.CostPerResult)

				require.NotNil(t, bundle.Totals.CostPerResult)
				assert.Equal(t, 10.0, *bundle.Totals.CostPerResult)
				assertCostInvariant(t, bundle.Totals)
			},
		},
		{
			name:     "Campanha sem conjuntos tem totais zerados e nenhum resultado",
			campaign: domain.Campaign{ID: "c1", Objective: "OUTCOME_LEADS"},
			rows:     nil,
			validate: func(t *testing.T, bundle domain.CampaignMetricBundle) {
				assert.Equal(t, domain.MetricTotals{}, bundle.Totals)
				assert.Nil(t, bundle.Resultado)
			},
		},
		{
			name:     "Objetivo desconhecido usa o resultado oficial de cada conjunto",
			campaign: domain.Campaign{ID: "c1", Objective: "SOMETHING_NEW"},
			rows: []domain.InsightRow{
				adsetRow("c1", "a1", "LINK_CLICKS", 84, actions("link_click", 42.0)),
			},
			validate: func(t *testing.T, bundle domain.CampaignMetricBundle) {
				assert.Zero(t, bundle.Totals.Results)
				assert.Zero(t, bundle.Totals.ResultSpend)
				assertCostInvariant(t, bundle.Totals)

				res := bundle.Resultado
				require.NotNil(t, res)
				assert.Equal(t, "Results", res.Label)
				assert.Nil(t, res.Quantity)
				assert.Nil(t, res.CostPerResult)
				assert.Equal(t, []string{"link_click"}, res.ActionTypes)

				require.Len(t, res.Adsets, 1)
				assert.Equal(t, "link_click", res.Adsets[0].ActionTypes[0])
				assert.Equal(t, 42.0, res.Adsets[0].Quantity)
				require.NotNil(t, res.Adsets[0].CostPerResult)
				assert.Equal(t, 2.0, *res.Adsets[0].CostPerResult)
			},
		},
		{
			name:     "Objetivo de alcance não tem regra",
			campaign: domain.Campaign{ID: "c1", Objective: "OUTCOME_AWARENESS"},
			rows: []domain.InsightRow{
				adsetRow("c1", "a1", "REACH", 30, nil),
			},
			validate: func(t *testing.T, bundle domain.CampaignMetricBundle) {
				require.NotNil(t, bundle.Resultado)
				assert.Nil(t, bundle.Resultado.Quantity)
				assert.Equal(t, "reach", bundle.Resultado.OptimizationGoal)
				assert.Equal(t, 30.0, bundle.Totals.Spend)
			},
		},
		{
			name:     "Modo sum soma os tipos do grupo dominante inteiro",
			campaign: domain.Campaign{ID: "c1", Objective: "OUTCOME_ENGAGEMENT"},
			rows: []domain.InsightRow{
				adsetRow("c1", "a1", "POST_ENGAGEMENT", 40, actions("post_engagement", 30.0, "like", 5.0)),
				adsetRow("c1", "a2", "POST_ENGAGEMENT", 20, actions("post_engagement", 10.0)),
				adsetRow("c1", "a3", "LINK_CLICKS", 10, actions("link_click", 100.0)),
			},
			validate: func(t *testing.T, bundle domain.CampaignMetricBundle) {
				res := bundle.Resultado
				require.NotNil(t, res)
				assert.Equal(t, "sum", res.Mode)
				require.NotNil(t, res.Quantity)
				assert.Equal(t, 45.0, *res.Quantity)

				var sum float64
				for _, d := range res.Detalhes {
					sum += d.Quantity
				}
				assert.Equal(t, *res.Quantity, sum)

				assert.Equal(t, 45.0, bundle.Totals.Results)
				assert.Equal(t, 60.0, bundle.Totals.ResultSpend)
				assert.Equal(t, 70.0, bundle.Totals.Spend)
				assertCostInvariant(t, bundle.Totals)

				require.Len(t, res.Adsets, 2)
				assert.Equal(t, "a1", res.Adsets[0].AdsetID)
				assert.Equal(t, 35.0, res.Adsets[0].Quantity)
				assert.Equal(t, "a2", res.Adsets[1].AdsetID)
				require.NotNil(t, res.Adsets[1].CostPerResult)
				assert.Equal(t, 2.0, *res.Adsets[1].CostPerResult)
			},
		},
		{
			name:     "Regra sem nenhum tipo disparado deixa o custo nulo",
			campaign: domain.Campaign{ID: "c1", Objective: "OUTCOME_SALES"},
			rows: []domain.InsightRow{
				adsetRow("c1", "a1", "OFFSITE_CONVERSIONS", 25, actions("link_click", 12.0)),
			},
			validate: func(t *testing.T, bundle domain.CampaignMetricBundle) {
				res := bundle.Resultado
				require.NotNil(t, res)
				require.NotNil(t, res.Quantity)
				assert.Zero(t, *res.Quantity)
				assert.Nil(t, res.CostPerResult)
				assert.Empty(t, res.ActionTypes)
				assertCostInvariant(t, bundle.Totals)
				assert.Zero(t, bundle.Totals.ResultSpend)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, BuildCampaignBundle(tt.campaign, bundlesFrom(tt.rows...)))
		})
	}
}

func TestMetricTotals_AddMantemCustoDerivado(t *testing.T) {
	var total domain.MetricTotals

	first := BuildCampaignBundle(domain.Campaign{ID: "c1", Objective: "OUTCOME_LEADS"}, bundlesFrom(
		adsetRow("c1", "a1", "LEAD_GENERATION", 90, actions("lead", 3.0)),
	))
	second := BuildCampaignBundle(domain.Campaign{ID: "c2", Objective: "OUTCOME_LEADS"}, bundlesFrom(
		adsetRow("c2", "a2", "LEAD_GENERATION", 10, actions("lead", 1.0)),
	))

	total.Add(first.Totals)
	total.Add(second.Totals)

	assert.Equal(t, 4.0, total.Results)
	assert.Equal(t, 100.0, total.ResultSpend)
	require.NotNil(t, total.CostPerResult)
	assert.Equal(t, 25.0, *total.CostPerResult)
}
