package insighting

import (
	"context"

	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// DashboardInsighter calcula as métricas consolidadas do dashboard de um tenant
type DashboardInsighter interface {
	// GetDashboardMetrics usa o cache quando disponível
	GetDashboardMetrics(ctx context.Context, tenantID string, filters *domain.DashboardFilters) (*domain.DashboardMetrics, error)

	// RefreshDashboardMetrics sempre recalcula e regrava o cache
	RefreshDashboardMetrics(ctx context.Context, tenantID string, filters *domain.DashboardFilters) (*domain.DashboardMetrics, error)
}

// CreativeInsighter monta o relatório por anúncio de uma campanha
type CreativeInsighter interface {
	GetCampaignCreatives(ctx context.Context, tenantID, campaignID, accountID string, timeRange *domain.TimeRange) (*domain.CreativeReport, error)
}

// Insighter combina o dashboard e o relatório de criativos
type Insighter interface {
	DashboardInsighter
	CreativeInsighter
}

// FetcherFactory cria um Fetcher para o token do tenant
type FetcherFactory interface {
	ForToken(accessToken string) (meta.Fetcher, error)
}

// IntegrationResolver devolve o token já decifrado e as contas do tenant
type IntegrationResolver interface {
	AccessToken(ctx context.Context, tenantID string) (string, error)
	AdAccounts(ctx context.Context, tenantID string) ([]*domain.AdAccount, error)
}

// DashboardCache guarda respostas já calculadas; Get devolve nil quando não há entrada
type DashboardCache interface {
	Get(ctx context.Context, tenantID string, filters *domain.DashboardFilters) (*domain.DashboardMetrics, error)
	Set(ctx context.Context, tenantID string, filters *domain.DashboardFilters, metrics *domain.DashboardMetrics) error
}
