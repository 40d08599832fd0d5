package insighting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metamocks "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

func adRow(adID, goal string, spend, impressions, clicks float64, acts []domain.ActionValue) domain.InsightRow {
	return domain.InsightRow{
		CampaignID:       "c1",
		AdsetID:          "as1",
		AdID:             adID,
		AdName:           "Anúncio " + adID,
		OptimizationGoal: goal,
		Spend:            spend,
		Impressions:      impressions,
		Clicks:           clicks,
		Actions:          acts,
	}
}

func TestService_GetCampaignCreatives(t *testing.T) {
	accounts := []*domain.AdAccount{{TenantID: "t1", ExternalID: "111", Name: "Conta A"}}
	timeRange := &domain.TimeRange{Since: day("2024-03-01"), Until: day("2024-03-07")}

	tests := []struct {
		name       string
		campaignID string
		accountID  string
		setup      func(resolver *mocks.MockIntegrationResolver, factory *mocks.MockFetcherFactory, fetcher *metamocks.MockFetcher)
		validate   func(t *testing.T, report *domain.CreativeReport, err error)
	}{
		{
			name:       "Monta uma linha por anúncio com criativo e resultado oficial",
			campaignID: "c1",
			accountID:  "act_111",
			setup: func(resolver *mocks.MockIntegrationResolver, factory *mocks.MockFetcherFactory, fetcher *metamocks.MockFetcher) {
				resolver.EXPECT().AccessToken(gomock.Any(), "t1").Return("token", nil)
				resolver.EXPECT().AdAccounts(gomock.Any(), "t1").Return(accounts, nil)
				factory.EXPECT().ForToken("token").Return(fetcher, nil)
				fetcher.EXPECT().CampaignAds(gomock.Any(), "c1").Return([]domain.Ad{
					{ID: "ad1", Name: "Vídeo", Status: "ACTIVE", AdsetID: "as1", CreativeID: "cr1"},
					{ID: "ad2", Name: "Carrossel", Status: "PAUSED", AdsetID: "as1", CreativeID: "cr2"},
				}, nil)
				fetcher.EXPECT().CampaignInsights(gomock.Any(), "c1", domain.LevelAd, timeRange).Return([]domain.InsightRow{
					adRow("ad1", "LEAD_GENERATION", 30, 1000, 25, actions("lead", 3.0)),
					adRow("ad2", "LEAD_GENERATION", 60, 3000, 30, actions("lead", 4.0)),
					adRow("ad3", "LEAD_GENERATION", 5, 100, 1, nil),
				}, nil)
				fetcher.EXPECT().Creatives(gomock.Any(), []string{"cr1", "cr2"}).Return(map[string]domain.Creative{
					"cr1": {ID: "cr1", ThumbnailURL: "https://cdn/thumb1.jpg", Title: "Título"},
				}, nil)
			},
			validate: func(t *testing.T, report *domain.CreativeReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, "111", report.AccountID)
				require.NotNil(t, report.DateRange)
				require.Len(t, report.Ads, 3)

				assert.Equal(t, "ad2", report.Ads[0].AdID)
				assert.Equal(t, "Carrossel", report.Ads[0].AdName)
				assert.Equal(t, 15.0, *report.Ads[0].Result.Cost)
				assert.Empty(t, report.Ads[0].ThumbnailURL)

				assert.Equal(t, "ad1", report.Ads[1].AdID)
				assert.Equal(t, "https://cdn/thumb1.jpg", report.Ads[1].ThumbnailURL)
				assert.Equal(t, "lead", report.Ads[1].Result.ActionType)
				assert.Equal(t, 3.0, report.Ads[1].Result.Quantity)
				require.NotNil(t, report.Ads[1].CTR)
				assert.Equal(t, 2.5, *report.Ads[1].CTR)

				// anúncio excluído ainda aparece pelos insights
				assert.Equal(t, "ad3", report.Ads[2].AdID)
				assert.Equal(t, "Anúncio ad3", report.Ads[2].AdName)
			},
		},
		{
			name:       "Falha nos criativos não derruba o relatório",
			campaignID: "c1",
			accountID:  "111",
			setup: func(resolver *mocks.MockIntegrationResolver, factory *mocks.MockFetcherFactory, fetcher *metamocks.MockFetcher) {
				resolver.EXPECT().AccessToken(gomock.Any(), "t1").Return("token", nil)
				resolver.EXPECT().AdAccounts(gomock.Any(), "t1").Return(accounts, nil)
				factory.EXPECT().ForToken("token").Return(fetcher, nil)
				fetcher.EXPECT().CampaignAds(gomock.Any(), "c1").Return([]domain.Ad{{ID: "ad1", CreativeID: "cr1"}}, nil)
				fetcher.EXPECT().CampaignInsights(gomock.Any(), "c1", domain.LevelAd, timeRange).Return(nil, nil)
				fetcher.EXPECT().Creatives(gomock.Any(), []string{"cr1"}).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, report *domain.CreativeReport, err error) {
				require.NoError(t, err)
				require.Len(t, report.Ads, 1)
				assert.Zero(t, report.Ads[0].Spend)
				assert.Nil(t, report.Ads[0].CTR)
				assert.Zero(t, report.Ads[0].Result.Quantity)
			},
		},
		{
			name:       "Conta de outro tenant",
			campaignID: "c1",
			accountID:  "999",
			setup: func(resolver *mocks.MockIntegrationResolver, factory *mocks.MockFetcherFactory, fetcher *metamocks.MockFetcher) {
				resolver.EXPECT().AccessToken(gomock.Any(), "t1").Return("token", nil)
				resolver.EXPECT().AdAccounts(gomock.Any(), "t1").Return(accounts, nil)
			},
			validate: func(t *testing.T, report *domain.CreativeReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, domain.ErrValidation)
			},
		},
		{
			name:       "Conta obrigatória",
			campaignID: "c1",
			accountID:  "",
			setup: func(resolver *mocks.MockIntegrationResolver, factory *mocks.MockFetcherFactory, fetcher *metamocks.MockFetcher) {
			},
			validate: func(t *testing.T, report *domain.CreativeReport, err error) {
				var validationErr *domain.ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, "accountId", validationErr.Field)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			resolver := mocks.NewMockIntegrationResolver(ctrl)
			factory := mocks.NewMockFetcherFactory(ctrl)
			fetcher := metamocks.NewMockFetcher(ctrl)
			tt.setup(resolver, factory, fetcher)

			service := NewService(testConfig(false), factory, resolver, nil)
			report, err := service.GetCampaignCreatives(context.Background(), "t1", tt.campaignID, tt.accountID, timeRange)
			tt.validate(t, report, err)
		})
	}
}
