package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-api/infrastructure/cache"
	"github.com/vfg2006/ads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-insights-api/infrastructure/repository"
	"github.com/vfg2006/ads-insights-api/internal/api"
	"github.com/vfg2006/ads-insights-api/internal/api/handler"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/scheduler"
	"github.com/vfg2006/ads-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-api/internal/usecases/integrating"
	"github.com/vfg2006/ads-insights-api/pkg/crypto"
	"github.com/vfg2006/ads-insights-api/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	if strings.TrimSpace(cfg.Meta.AppSecret) == "" {
		logrus.Warn("META_APP_SECRET não configurado: chamadas ao Graph API vão falhar")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.NewMetrics(cfg.Metrics.Namespace, registry)

	integrationRepo := repository.NewIntegrationRepository(pgConn)
	integrationService := integrating.NewService(integrationRepo, tokenCipher(cfg))

	authenticator := authenticating.NewService(cfg)

	metaIntegrator := meta.New(cfg, appMetrics)

	insightService := insighting.NewService(cfg, metaIntegrator, integrationService, appMetrics)

	healthChecks := map[string]handler.Pinger{
		"postgres": pgConn,
	}

	if cfg.Redis.URL != "" {
		redisClient := cache.NewRedisClient(cfg.Redis.URL)
		defer redisClient.Close()

		dashboardCache := cache.NewDashboardCache(redisClient, cfg.Dashboard.CacheTTL)
		if err := dashboardCache.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("Redis indisponível na inicialização, o cache será tentado a cada requisição")
		}

		insightService = insightService.WithCache(dashboardCache)
		healthChecks["redis"] = dashboardCache
		logrus.WithField("ttl", cfg.Dashboard.CacheTTL.String()).Info("Cache do dashboard habilitado")
	} else {
		logrus.Info("REDIS_URL vazio, cache do dashboard desabilitado")
	}

	dashboardWarmup := scheduler.NewDashboardWarmupService(integrationService, insightService, cfg)
	if err := dashboardWarmup.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento do dashboard")
	} else {
		logrus.Info("Agendador de aquecimento do dashboard iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Insights:      insightService,
		Authenticator: authenticator,
		CronJobs:      handler.CronJobServices{DashboardWarmup: dashboardWarmup},
		Metrics:       appMetrics,
		HealthChecks:  healthChecks,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// tokenCipher devolve nil quando TOKEN_ENCRYPTION_KEY está vazia; tokens em texto puro continuam aceitos
func tokenCipher(cfg *config.Config) integrating.TokenDecrypter {
	if strings.TrimSpace(cfg.App.TokenEncryptionKey) == "" {
		logrus.Warn("TOKEN_ENCRYPTION_KEY não configurada, apenas tokens em texto puro serão aceitos")
		return nil
	}

	cipher, err := crypto.NewTokenCipher(cfg.App.TokenEncryptionKey)
	if err != nil {
		logrus.WithError(err).Fatal("TOKEN_ENCRYPTION_KEY inválida")
	}
	return cipher
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
