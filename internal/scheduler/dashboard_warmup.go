package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

// TenantLister lista os tenants com integração configurada
type TenantLister interface {
	TenantIDs(ctx context.Context) ([]string, error)
}

// DashboardWarmupConfig representa a configuração do aquecimento do cache do dashboard
type DashboardWarmupConfig struct {
	CronSchedule      string
	LookbackDays      int
	MaxConcurrentJobs int
	Enabled           bool
}

// DashboardWarmupService recalcula periodicamente o dashboard padrão de cada tenant e grava no cache
type DashboardWarmupService struct {
	scheduler *gocron.Scheduler
	config    DashboardWarmupConfig
	tenants   TenantLister
	dashboard insighting.DashboardInsighter
	now       func() time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastTenants         int
	lastFailures        int
}

func NewDashboardWarmupService(
	tenants TenantLister,
	dashboard insighting.DashboardInsighter,
	appConfig *config.Config,
) *DashboardWarmupService {
	warmupConfig := DashboardWarmupConfig{
		CronSchedule:      appConfig.DashboardWarmup.CronSchedule,
		LookbackDays:      appConfig.DashboardWarmup.LookbackDays,
		MaxConcurrentJobs: appConfig.DashboardWarmup.MaxConcurrentJobs,
		Enabled:           appConfig.DashboardWarmup.Enabled,
	}
	if warmupConfig.LookbackDays <= 0 {
		warmupConfig.LookbackDays = 7
	}
	if warmupConfig.MaxConcurrentJobs <= 0 {
		warmupConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       warmupConfig.CronSchedule,
		"lookback_days":       warmupConfig.LookbackDays,
		"max_concurrent_jobs": warmupConfig.MaxConcurrentJobs,
		"enabled":             warmupConfig.Enabled,
	}).Info("Configuração do aquecimento do dashboard carregada")

	return &DashboardWarmupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    warmupConfig,
		tenants:   tenants,
		dashboard: dashboard,
		now:       time.Now,
	}
}

// Start agenda o aquecimento e para o agendador quando o contexto é cancelado
func (s *DashboardWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Aquecimento do dashboard desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// DefaultFilters devolve os filtros do dashboard padrão: últimos N dias até ontem, com comparação.
// As datas são montadas como o handler HTTP as monta para que a chave do cache coincida.
func (s *DashboardWarmupService) DefaultFilters() *domain.DashboardFilters {
	today, _ := time.Parse(time.DateOnly, s.now().Format(time.DateOnly))
	until := today.AddDate(0, 0, -1)
	since := until.AddDate(0, 0, -(s.config.LookbackDays - 1))
	prevSince, prevUntil := utils.PreviousWindow(since, until)

	return &domain.DashboardFilters{
		Range:         &domain.TimeRange{Since: since, Until: until},
		PreviousRange: &domain.TimeRange{Since: prevSince, Until: prevUntil},
	}
}

// RunOnce aquece o cache de todos os tenants; execuções concorrentes são ignoradas
func (s *DashboardWarmupService) RunOnce(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento do dashboard já em andamento, ignorando")
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()

	tenantIDs, err := s.tenants.TenantIDs(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar tenants para o aquecimento do dashboard")
		return true
	}

	filters := s.DefaultFilters()
	failures := s.warmTenants(ctx, tenantIDs, filters)

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastTenants = len(tenantIDs)
	s.lastFailures = failures
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration":   time.Since(startTime).String(),
		"tenants":    len(tenantIDs),
		"failures":   failures,
		"start_date": filters.Range.Since.Format(time.DateOnly),
		"end_date":   filters.Range.Until.Format(time.DateOnly),
	}).Info("Aquecimento do dashboard concluído")

	return true
}

func (s *DashboardWarmupService) warmTenants(ctx context.Context, tenantIDs []string, filters *domain.DashboardFilters) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failures := 0

	for _, tenantID := range tenantIDs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(tenantID string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			// cada tenant recebe sua própria cópia pois o serviço normaliza os filtros
			tenantFilters := *filters
			_, err := s.dashboard.RefreshDashboardMetrics(ctx, tenantID, &tenantFilters)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"tenant_id": tenantID,
					"error":     err.Error(),
				}).Warn("Erro ao aquecer o dashboard do tenant")

				mu.Lock()
				failures++
				mu.Unlock()
				return
			}

			logrus.WithField("tenant_id", tenantID).Debug("Dashboard do tenant aquecido")
		}(tenantID)
	}

	wg.Wait()
	return failures
}

// TriggerManualSync dispara o aquecimento em segundo plano; false quando já existe execução em andamento
func (s *DashboardWarmupService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Aquecimento do dashboard já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando aquecimento manual do dashboard")
	go s.RunOnce(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (s *DashboardWarmupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"lookback_days":          s.config.LookbackDays,
		"max_concurrent_jobs":    s.config.MaxConcurrentJobs,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_tenants":           s.lastTenants,
		"last_failures":          s.lastFailures,
	}
}
