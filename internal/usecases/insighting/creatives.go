package insighting

import (
	"context"
	"sort"
	"strings"

	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/log"
)

// GetCampaignCreatives monta o relatório por anúncio de uma campanha: métricas do período,
// resultado oficial e dados do criativo. Falha ao buscar criativos não derruba o relatório.
func (s *Service) GetCampaignCreatives(ctx context.Context, tenantID, campaignID, accountID string, timeRange *domain.TimeRange) (*domain.CreativeReport, error) {
	campaignID = strings.TrimSpace(campaignID)
	accountID = strings.TrimSpace(accountID)
	if campaignID == "" {
		return nil, domain.NewValidationError("campaignId", "campanha é obrigatória")
	}
	if accountID == "" {
		return nil, domain.NewValidationError("accountId", "conta é obrigatória")
	}
	if timeRange != nil && timeRange.Until.Before(timeRange.Since) {
		return nil, domain.NewValidationError("startDate", "startDate deve ser anterior ou igual a endDate")
	}

	token, err := s.integrations.AccessToken(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	accounts, err := s.integrations.AdAccounts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	selected, err := selectAccounts(accounts, []string{accountID})
	if err != nil {
		return nil, err
	}

	fetcher, err := s.fetchers.ForToken(token)
	if err != nil {
		return nil, err
	}

	ads, err := fetcher.CampaignAds(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	rows, err := fetcher.CampaignInsights(ctx, campaignID, domain.LevelAd, timeRange)
	if err != nil {
		return nil, err
	}
	aggregated := AggregateAds(rows)

	creativeIDs := make([]string, 0, len(ads))
	for _, ad := range ads {
		if ad.CreativeID != "" {
			creativeIDs = append(creativeIDs, ad.CreativeID)
		}
	}

	creatives, err := fetcher.Creatives(ctx, creativeIDs)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Warn("insights: falha ao buscar criativos, seguindo sem miniaturas")
		creatives = map[string]domain.Creative{}
	}

	report := &domain.CreativeReport{
		CampaignID: campaignID,
		AccountID:  selected[0].ExternalID,
		DateRange:  domain.NewDateRange(&domain.DashboardFilters{Range: timeRange}),
		Ads:        make([]*domain.CreativeRow, 0, len(ads)),
	}

	seen := make(map[string]struct{}, len(ads))
	for _, ad := range ads {
		seen[ad.ID] = struct{}{}

		agg, ok := aggregated[ad.ID]
		if !ok {
			agg = newAggregated(ad.ID)
		}
		row := creativeRow(NewAdsetBundle(agg))
		row.AdName = ad.Name
		row.Status = ad.Status
		row.AdsetID = ad.AdsetID
		row.CreativeID = ad.CreativeID

		if creative, ok := creatives[ad.CreativeID]; ok {
			row.ThumbnailURL = creative.ThumbnailURL
			row.ImageURL = creative.ImageURL
			row.Title = creative.Title
			row.Body = creative.Body
		}

		report.Ads = append(report.Ads, row)
	}

	// anúncios excluídos não aparecem em /ads mas ainda têm investimento no período
	for id, agg := range aggregated {
		if _, ok := seen[id]; ok {
			continue
		}
		row := creativeRow(NewAdsetBundle(agg))
		row.AdName = agg.Name
		report.Ads = append(report.Ads, row)
	}

	sort.Slice(report.Ads, func(i, j int) bool {
		return bySpend(report.Ads[i].Spend, report.Ads[j].Spend, report.Ads[i].AdID, report.Ads[j].AdID)
	})

	return report, nil
}

func creativeRow(b *AdsetBundle) *domain.CreativeRow {
	result := b.OfficialResult
	result.Cost = roundPtr(result.Cost)

	return &domain.CreativeRow{
		AdID:             b.ID,
		AdName:           b.Name,
		OptimizationGoal: string(b.OptimizationGoal),
		Spend:            b.Spend,
		Impressions:      b.Impressions,
		Clicks:           b.Clicks,
		CTR:              roundPtr(b.CTR),
		Result:           result,
	}
}
