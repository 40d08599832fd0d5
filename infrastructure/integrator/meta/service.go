package meta

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/metrics"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/fetcher_mock.go -package=mocks

// Fetcher lê campanhas, insights e criativos do Graph API com um token fixo
type Fetcher interface {
	Campaigns(ctx context.Context, accountID string) ([]domain.Campaign, error)
	AccountInsights(ctx context.Context, accountID string, level domain.InsightLevel, timeRange *domain.TimeRange) ([]domain.InsightRow, error)
	CampaignInsights(ctx context.Context, campaignID string, level domain.InsightLevel, timeRange *domain.TimeRange) ([]domain.InsightRow, error)
	CampaignAds(ctx context.Context, campaignID string) ([]domain.Ad, error)
	Creatives(ctx context.Context, creativeIDs []string) (map[string]domain.Creative, error)
}

type MetaIntegrator struct {
	cfg     *config.Config
	metrics *metrics.Metrics
}

func New(cfg *config.Config, m *metrics.Metrics) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:     cfg,
		metrics: m,
	}
}

// ForToken cria um Fetcher ligado ao token; o appsecret_proof é calculado aqui, uma única vez
func (s *MetaIntegrator) ForToken(accessToken string) (Fetcher, error) {
	client, err := metaclient.NewClient(s.cfg.Meta, accessToken, metaclient.WithMetrics(s.metrics))
	if err != nil {
		return nil, err
	}
	return NewFetcher(client), nil
}

type fetcher struct {
	client metaclient.Client
}

func NewFetcher(client metaclient.Client) Fetcher {
	return &fetcher{client: client}
}

func (f *fetcher) Campaigns(ctx context.Context, accountID string) ([]domain.Campaign, error) {
	resp, err := f.client.GetCampaigns(ctx, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaigns from API")
		return nil, err
	}

	campaigns := make([]domain.Campaign, 0, len(resp))
	for _, c := range resp {
		campaigns = append(campaigns, domain.Campaign{
			ID:        c.ID,
			Name:      c.Name,
			Status:    c.Status,
			Objective: c.Objective,
		})
	}

	return campaigns, nil
}

func (f *fetcher) AccountInsights(ctx context.Context, accountID string, level domain.InsightLevel, timeRange *domain.TimeRange) ([]domain.InsightRow, error) {
	resp, err := f.client.GetAccountInsights(ctx, accountID, level, timeRange)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"level":      level,
			"error":      err.Error(),
		}).Error("insights: failed to get account insights from API")
		return nil, err
	}

	return FactoryInsightRows(resp), nil
}

func (f *fetcher) CampaignInsights(ctx context.Context, campaignID string, level domain.InsightLevel, timeRange *domain.TimeRange) ([]domain.InsightRow, error) {
	resp, err := f.client.GetCampaignInsights(ctx, campaignID, level, timeRange)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"level":       level,
			"error":       err.Error(),
		}).Error("insights: failed to get campaign insights from API")
		return nil, err
	}

	return FactoryInsightRows(resp), nil
}

func (f *fetcher) CampaignAds(ctx context.Context, campaignID string) ([]domain.Ad, error) {
	resp, err := f.client.GetCampaignAds(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	ads := make([]domain.Ad, 0, len(resp))
	for _, a := range resp {
		status := a.EffectiveStatus
		if status == "" {
			status = a.Status
		}
		ad := domain.Ad{
			ID:      a.ID,
			Name:    a.Name,
			Status:  status,
			AdsetID: a.AdsetID,
		}
		if a.Creative != nil {
			ad.CreativeID = a.Creative.ID
		}
		ads = append(ads, ad)
	}

	return ads, nil
}

func (f *fetcher) Creatives(ctx context.Context, creativeIDs []string) (map[string]domain.Creative, error) {
	if len(creativeIDs) == 0 {
		return map[string]domain.Creative{}, nil
	}

	resp, err := f.client.GetCreatives(ctx, creativeIDs)
	if err != nil {
		return nil, err
	}

	creatives := make(map[string]domain.Creative, len(resp))
	for id, c := range resp {
		creatives[id] = domain.Creative{
			ID:           c.ID,
			Name:         c.Name,
			ThumbnailURL: c.ThumbnailURL,
			ImageURL:     c.ImageURL,
			Title:        c.Title,
			Body:         c.Body,
		}
	}

	return creatives, nil
}

// FactoryInsightRows converte as linhas do Graph API (strings) em números.
// Números inválidos viram 0 e custos inválidos são descartados.
func FactoryInsightRows(rows []metadomain.InsightRow) []domain.InsightRow {
	out := make([]domain.InsightRow, 0, len(rows))

	for _, r := range rows {
		row := domain.InsightRow{
			AccountID:        strings.TrimPrefix(r.AccountID, "act_"),
			CampaignID:       r.CampaignID,
			CampaignName:     r.CampaignName,
			AdsetID:          r.AdsetID,
			AdsetName:        r.AdsetName,
			AdID:             r.AdID,
			AdName:           r.AdName,
			Objective:        r.Objective,
			OptimizationGoal: r.OptimizationGoal,
			Spend:            utils.ParseNumber(r.Spend),
			Impressions:      utils.ParseNumber(r.Impressions),
			Clicks:           utils.ParseNumber(r.Clicks),
			Reach:            utils.ParseNumber(r.Reach),
			CTR:              utils.ParseRatio(r.CTR),
			DateStart:        r.DateStart,
			DateStop:         r.DateStop,
		}

		for _, a := range r.Actions {
			if a.ActionType == "" {
				continue
			}
			row.Actions = append(row.Actions, domain.ActionValue{
				Type:  a.ActionType,
				Value: utils.ParseNumber(a.Value),
			})
		}

		for _, a := range r.CostPerActions {
			cost := utils.ParseRatio(a.Value)
			if a.ActionType == "" || cost == nil {
				continue
			}
			row.CostPerAction = append(row.CostPerAction, domain.ActionValue{
				Type:  a.ActionType,
				Value: *cost,
			})
		}

		out = append(out, row)
	}

	return out
}
