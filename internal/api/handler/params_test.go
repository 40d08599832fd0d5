package handler

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

func TestParseDashboardFilters(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		validate func(t *testing.T, filters *domain.DashboardFilters, err error)
	}{
		{
			name:  "Sem datas usa histórico completo sem comparação",
			query: "",
			validate: func(t *testing.T, filters *domain.DashboardFilters, err error) {
				require.NoError(t, err)
				assert.Nil(t, filters.Range)
				assert.Nil(t, filters.PreviousRange)
			},
		},
		{
			name:  "Com datas calcula a janela anterior de mesmo tamanho",
			query: "startDate=2024-03-08&endDate=2024-03-14",
			validate: func(t *testing.T, filters *domain.DashboardFilters, err error) {
				require.NoError(t, err)
				require.NotNil(t, filters.PreviousRange)
				assert.Equal(t, "2024-03-01", filters.PreviousRange.Since.Format(time.DateOnly))
				assert.Equal(t, "2024-03-07", filters.PreviousRange.Until.Format(time.DateOnly))
			},
		},
		{
			name:  "compare=false desliga a comparação",
			query: "startDate=2024-03-08&endDate=2024-03-14&compare=false",
			validate: func(t *testing.T, filters *domain.DashboardFilters, err error) {
				require.NoError(t, err)
				assert.NotNil(t, filters.Range)
				assert.Nil(t, filters.PreviousRange)
			},
		},
		{
			name:  "Listas separadas por vírgula e repetidas",
			query: "accountId=111,222&accountId=333&objective=OUTCOME_LEADS&status=ACTIVE&optimizationGoal=LEAD_GENERATION&campaignId=c1",
			validate: func(t *testing.T, filters *domain.DashboardFilters, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"111", "222", "333"}, filters.AccountIDs)
				assert.Equal(t, []string{"OUTCOME_LEADS"}, filters.Objectives)
				assert.Equal(t, []string{"ACTIVE"}, filters.Statuses)
				assert.Equal(t, []string{"LEAD_GENERATION"}, filters.OptimizationGoals)
				assert.Equal(t, []string{"c1"}, filters.CampaignIDs)
			},
		},
		{
			name:  "Apenas uma das datas",
			query: "startDate=2024-03-08",
			validate: func(t *testing.T, filters *domain.DashboardFilters, err error) {
				assert.ErrorIs(t, err, domain.ErrValidation)
			},
		},
		{
			name:  "Data malformada",
			query: "startDate=08/03/2024&endDate=2024-03-14",
			validate: func(t *testing.T, filters *domain.DashboardFilters, err error) {
				var validationErr *domain.ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, "startDate", validationErr.Field)
			},
		},
		{
			name:  "Datas invertidas",
			query: "startDate=2024-03-14&endDate=2024-03-08",
			validate: func(t *testing.T, filters *domain.DashboardFilters, err error) {
				assert.ErrorIs(t, err, domain.ErrValidation)
			},
		},
		{
			name:  "compare inválido",
			query: "compare=talvez",
			validate: func(t *testing.T, filters *domain.DashboardFilters, err error) {
				assert.ErrorIs(t, err, domain.ErrValidation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			filters, err := parseDashboardFilters(query)
			tt.validate(t, filters, err)
		})
	}
}
