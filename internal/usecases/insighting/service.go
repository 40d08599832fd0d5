package insighting

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/log"
	"github.com/vfg2006/ads-insights-api/pkg/metrics"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

const (
	refreshOutcomeSuccess = "success"
	refreshOutcomePartial = "partial"
	refreshOutcomeFailure = "failure"
)

// Service implementa DashboardInsighter e CreativeInsighter
type Service struct {
	cfg          *config.Config
	fetchers     FetcherFactory
	integrations IntegrationResolver
	cache        DashboardCache
	metrics      *metrics.Metrics
}

// NewService cria o serviço de insights; o cache é opcional (WithCache)
func NewService(cfg *config.Config, fetchers FetcherFactory, integrations IntegrationResolver, m *metrics.Metrics) *Service {
	return &Service{
		cfg:          cfg,
		fetchers:     fetchers,
		integrations: integrations,
		metrics:      m,
	}
}

// WithCache habilita o cache de respostas do dashboard
func (s *Service) WithCache(cache DashboardCache) *Service {
	s.cache = cache
	return s
}

func (s *Service) GetDashboardMetrics(ctx context.Context, tenantID string, filters *domain.DashboardFilters) (*domain.DashboardMetrics, error) {
	filters, err := prepareFilters(filters)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, tenantID, filters)
		if err != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"tenant_id": tenantID,
				"error":     err.Error(),
			}).Warn("insights: falha ao ler cache do dashboard")
		}
		s.metrics.RecordCacheLookup(cached != nil)
		if cached != nil {
			return cached, nil
		}
	}

	return s.refresh(ctx, tenantID, filters)
}

func (s *Service) RefreshDashboardMetrics(ctx context.Context, tenantID string, filters *domain.DashboardFilters) (*domain.DashboardMetrics, error) {
	filters, err := prepareFilters(filters)
	if err != nil {
		return nil, err
	}

	return s.refresh(ctx, tenantID, filters)
}

func (s *Service) refresh(ctx context.Context, tenantID string, filters *domain.DashboardFilters) (*domain.DashboardMetrics, error) {
	token, err := s.integrations.AccessToken(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	accounts, err := s.integrations.AdAccounts(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	selected, err := selectAccounts(accounts, filters.AccountIDs)
	if err != nil {
		return nil, err
	}

	fetcher, err := s.fetchers.ForToken(token)
	if err != nil {
		return nil, err
	}

	result, err := s.ComputeDashboardMetrics(ctx, fetcher, selected, filters)
	if err != nil {
		return nil, err
	}

	// resultado parcial não vai para o cache; a próxima leitura tenta de novo as contas que falharam
	if s.cache != nil && !result.Partial {
		if err := s.cache.Set(ctx, tenantID, filters, result); err != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"tenant_id": tenantID,
				"error":     err.Error(),
			}).Warn("insights: falha ao gravar cache do dashboard")
		}
	}

	return result, nil
}

type accountOutcome struct {
	account  *domain.AccountMetrics
	previous *domain.MetricTotals
	err      error
}

// ComputeDashboardMetrics calcula o dashboard das contas informadas com um Fetcher já autenticado.
// Por padrão a falha de uma conta vira um aviso e as demais seguem; com fail fast o primeiro erro é devolvido.
func (s *Service) ComputeDashboardMetrics(ctx context.Context, fetcher meta.Fetcher, accounts []*domain.AdAccount, filters *domain.DashboardFilters) (*domain.DashboardMetrics, error) {
	filters, err := prepareFilters(filters)
	if err != nil {
		return nil, err
	}

	refreshID, err := utils.GenerateID()
	if err == nil {
		ctx = log.WithRefreshID(ctx, refreshID)
	}
	logger := log.ForContext(ctx)
	startedAt := time.Now()

	outcomes, err := s.runAccounts(ctx, fetcher, accounts, filters)
	if err != nil {
		s.metrics.RecordDashboardRefresh(refreshOutcomeFailure)
		return nil, err
	}

	result := &domain.DashboardMetrics{
		DateRange:   domain.NewDateRange(filters),
		Accounts:    make([]*domain.AccountMetrics, 0, len(accounts)),
		GeneratedAt: time.Now().UTC(),
	}
	var previous domain.MetricTotals
	var firstErr error

	for i, outcome := range outcomes {
		if outcome.err != nil {
			if firstErr == nil {
				firstErr = outcome.err
			}
			status := errorStatus(outcome.err)
			s.metrics.RecordAccountFailure(status)
			logger.WithFields(log.Fields{
				"account_id": accounts[i].ExternalID,
				"status":     status,
				"error":      outcome.err.Error(),
			}).Warn("insights: conta ignorada no dashboard")

			result.Warnings = append(result.Warnings, domain.AccountWarning{
				AccountID: accounts[i].ExternalID,
				Status:    status,
				Message:   outcome.err.Error(),
			})
			continue
		}

		result.Accounts = append(result.Accounts, outcome.account)
		result.Totals.Add(outcome.account.Metrics)
		if outcome.previous != nil {
			previous.Add(*outcome.previous)
		}
	}

	if len(accounts) > 0 && len(result.Accounts) == 0 {
		s.metrics.RecordDashboardRefresh(refreshOutcomeFailure)
		return nil, firstErr
	}

	if filters.PreviousRange != nil {
		result.PreviousTotals = &previous
	}

	sort.Slice(result.Accounts, func(i, j int) bool {
		return bySpend(result.Accounts[i].Metrics.Spend, result.Accounts[j].Metrics.Spend, result.Accounts[i].ID, result.Accounts[j].ID)
	})

	result.Partial = len(result.Warnings) > 0
	if result.Partial {
		s.metrics.RecordDashboardRefresh(refreshOutcomePartial)
	} else {
		s.metrics.RecordDashboardRefresh(refreshOutcomeSuccess)
	}

	logger.WithFields(log.Fields{
		"accounts":    len(result.Accounts),
		"warnings":    len(result.Warnings),
		"duration_ms": time.Since(startedAt).Milliseconds(),
	}).Info("insights: dashboard calculado")

	return result, nil
}

// runAccounts processa as contas com concorrência limitada; cada posição do slice pertence a uma conta
func (s *Service) runAccounts(ctx context.Context, fetcher meta.Fetcher, accounts []*domain.AdAccount, filters *domain.DashboardFilters) ([]accountOutcome, error) {
	outcomes := make([]accountOutcome, len(accounts))

	if s.failFast() {
		for i, account := range accounts {
			accountMetrics, previous, err := s.computeAccount(ctx, fetcher, account, filters)
			if err != nil {
				return nil, err
			}
			outcomes[i] = accountOutcome{account: accountMetrics, previous: previous}
		}
		return outcomes, nil
	}

	semaphore := make(chan struct{}, s.maxConcurrentAccounts())
	var wg sync.WaitGroup

	for i, account := range accounts {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i int, account *domain.AdAccount) {
			defer wg.Done()
			defer func() { <-semaphore }()

			accountMetrics, previous, err := s.computeAccount(ctx, fetcher, account, filters)
			outcomes[i] = accountOutcome{account: accountMetrics, previous: previous, err: err}
		}(i, account)
	}

	wg.Wait()
	return outcomes, nil
}

// computeAccount busca campanhas uma única vez e os insights de cada período
func (s *Service) computeAccount(ctx context.Context, fetcher meta.Fetcher, account *domain.AdAccount, filters *domain.DashboardFilters) (*domain.AccountMetrics, *domain.MetricTotals, error) {
	campaigns, err := fetcher.Campaigns(ctx, account.ExternalID)
	if err != nil {
		return nil, nil, err
	}

	rows, err := fetcher.AccountInsights(ctx, account.ExternalID, domain.LevelAdset, filters.Range)
	if err != nil {
		return nil, nil, err
	}

	result := &domain.AccountMetrics{
		ID:        account.ExternalID,
		Name:      account.Name,
		Campaigns: buildCampaignMetrics(campaigns, rows, filters),
	}
	for _, c := range result.Campaigns {
		result.Metrics.Add(c.Metrics)
	}
	result.Value = result.Metrics.Spend

	if filters.PreviousRange == nil {
		return result, nil, nil
	}

	previousRows, err := fetcher.AccountInsights(ctx, account.ExternalID, domain.LevelAdset, filters.PreviousRange)
	if err != nil {
		return nil, nil, err
	}

	var previous domain.MetricTotals
	for _, c := range buildCampaignMetrics(campaigns, previousRows, filters) {
		previous.Add(c.Metrics)
	}

	return result, &previous, nil
}

// buildCampaignMetrics monta as campanhas da conta aplicando os filtros.
// Campanhas listadas sem linhas no período entram zeradas; linhas de campanhas
// fora da listagem (ex: excluídas) usam os dados da própria linha.
func buildCampaignMetrics(campaigns []domain.Campaign, rows []domain.InsightRow, filters *domain.DashboardFilters) []*domain.CampaignMetrics {
	byCampaign := make(map[string][]*AdsetBundle)
	for _, b := range BuildAdsetBundles(AggregateAdsets(rows)) {
		byCampaign[b.CampaignID] = append(byCampaign[b.CampaignID], b)
	}

	all := make([]domain.Campaign, 0, len(campaigns))
	listed := make(map[string]struct{}, len(campaigns))
	for _, c := range campaigns {
		listed[c.ID] = struct{}{}
		all = append(all, c)
	}

	orphanIDs := make([]string, 0)
	for id := range byCampaign {
		if _, ok := listed[id]; !ok && id != "" {
			orphanIDs = append(orphanIDs, id)
		}
	}
	sort.Strings(orphanIDs)
	for _, id := range orphanIDs {
		first := byCampaign[id][0]
		all = append(all, domain.Campaign{ID: id, Name: first.CampaignName, Objective: first.Objective})
	}

	goals := goalSet(filters.OptimizationGoals)
	out := make([]*domain.CampaignMetrics, 0, len(all))

	for _, c := range all {
		if !matchesCampaignFilters(c, filters) {
			continue
		}

		bundle := BuildCampaignBundle(c, byCampaign[c.ID])
		if len(goals) > 0 {
			if bundle.Resultado == nil {
				continue
			}
			if _, ok := goals[OptimizationGoal(bundle.Resultado.OptimizationGoal)]; !ok {
				continue
			}
		}

		out = append(out, &domain.CampaignMetrics{
			ID:        c.ID,
			Name:      c.Name,
			Objective: c.Objective,
			Status:    c.Status,
			Metrics:   bundle.Totals,
			Resultado: bundle.Resultado,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return bySpend(out[i].Metrics.Spend, out[j].Metrics.Spend, out[i].ID, out[j].ID)
	})

	return out
}

func matchesCampaignFilters(c domain.Campaign, filters *domain.DashboardFilters) bool {
	if len(filters.CampaignIDs) > 0 && !slices.Contains(filters.CampaignIDs, c.ID) {
		return false
	}

	if len(filters.Objectives) > 0 {
		raw := strings.ToUpper(strings.TrimSpace(c.Objective))
		canonical := string(CanonicalObjective(c.Objective))
		if !slices.Contains(filters.Objectives, raw) && !slices.Contains(filters.Objectives, canonical) {
			return false
		}
	}

	if len(filters.Statuses) > 0 && !slices.Contains(filters.Statuses, strings.ToUpper(c.Status)) {
		return false
	}

	return true
}

func goalSet(values []string) map[OptimizationGoal]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[OptimizationGoal]struct{}, len(values))
	for _, v := range values {
		set[CanonicalGoal(v)] = struct{}{}
	}
	return set
}

// selectAccounts restringe às contas pedidas; uma conta fora do tenant é erro de validação
func selectAccounts(accounts []*domain.AdAccount, requested []string) ([]*domain.AdAccount, error) {
	if len(requested) == 0 {
		return accounts, nil
	}

	byID := make(map[string]*domain.AdAccount, len(accounts))
	for _, a := range accounts {
		byID[strings.TrimPrefix(a.ExternalID, "act_")] = a
	}

	selected := make([]*domain.AdAccount, 0, len(requested))
	seen := make(map[string]struct{}, len(requested))
	for _, id := range requested {
		key := strings.TrimPrefix(id, "act_")
		account, ok := byID[key]
		if !ok {
			return nil, domain.NewValidationError("accountId", "conta não pertence ao tenant: "+id)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		selected = append(selected, account)
	}

	return selected, nil
}

func prepareFilters(filters *domain.DashboardFilters) (*domain.DashboardFilters, error) {
	if filters == nil {
		filters = &domain.DashboardFilters{}
	}
	if err := filters.Validate(); err != nil {
		return nil, err
	}
	filters.Normalize()
	return filters, nil
}

// errorStatus traduz o erro de uma conta para o status exibido no aviso
func errorStatus(err error) int {
	var apiErr *metaclient.UpstreamAPIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}

	var transportErr *metaclient.TransportError
	switch {
	case errors.As(err, &transportErr):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrMissingIntegration):
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

func (s *Service) failFast() bool {
	return s.cfg != nil && s.cfg.Dashboard.FailFast
}

func (s *Service) maxConcurrentAccounts() int {
	if s.cfg == nil || s.cfg.Dashboard.MaxConcurrentAccounts < 1 {
		return 1
	}
	return s.cfg.Dashboard.MaxConcurrentAccounts
}

func bySpend(spendA, spendB float64, idA, idB string) bool {
	if spendA != spendB {
		return spendA > spendB
	}
	return idA < idB
}
