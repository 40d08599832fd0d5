package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Meta            Meta            `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Redis           Redis           `mapstructure:",squash"`
	Dashboard       Dashboard       `mapstructure:",squash"`
	DashboardWarmup DashboardWarmup `mapstructure:",squash"`
	Metrics         Metrics         `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL            string   `mapstructure:"meta_base_url"`
	URL                string   `mapstructure:"-"`
	Version            string   `mapstructure:"meta_version"`
	AppSecret          string   `mapstructure:"meta_app_secret"`
	RequestTimeoutSecs int      `mapstructure:"meta_request_timeout_seconds"`
	MaxRetries         int      `mapstructure:"meta_max_retries"`
	RetryBackoffMillis int      `mapstructure:"meta_retry_backoff_ms"`
	PageLimit          int      `mapstructure:"meta_page_limit"`
	AttributionWindows []string `mapstructure:"meta_attribution_windows"`
}

// RequestTimeout é o tempo máximo de cada requisição HTTP ao Graph API
func (m Meta) RequestTimeout() time.Duration {
	if m.RequestTimeoutSecs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(m.RequestTimeoutSecs) * time.Second
}

type App struct {
	LogLevel           string `mapstructure:"log_level"`
	TokenEncryptionKey string `mapstructure:"token_encryption_key"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Redis struct {
	URL string `mapstructure:"redis_url"`
}

type Dashboard struct {
	CacheTTL              time.Duration `mapstructure:"dashboard_cache_ttl"`
	FailFast              bool          `mapstructure:"dashboard_fail_fast"`
	MaxConcurrentAccounts int           `mapstructure:"dashboard_max_concurrent_accounts"`
}

type DashboardWarmup struct {
	CronSchedule      string `mapstructure:"dashboard_warmup_cron"`
	LookbackDays      int    `mapstructure:"dashboard_warmup_lookback_days"`
	MaxConcurrentJobs int    `mapstructure:"dashboard_warmup_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"dashboard_warmup_enabled"`
}

type Metrics struct {
	Namespace string `mapstructure:"metrics_namespace"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/insights")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("META_MAX_RETRIES", 0) // sem retry por padrão
	viper.SetDefault("META_RETRY_BACKOFF_MS", 500)
	viper.SetDefault("META_PAGE_LIMIT", 500)
	viper.SetDefault("META_ATTRIBUTION_WINDOWS", "7d_click,1d_view")

	viper.SetDefault("TOKEN_ENCRYPTION_KEY", "")
	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("REDIS_URL", "") // vazio desabilita o cache

	viper.SetDefault("DASHBOARD_CACHE_TTL", "5m")
	viper.SetDefault("DASHBOARD_FAIL_FAST", false)
	viper.SetDefault("DASHBOARD_MAX_CONCURRENT_ACCOUNTS", 3)

	viper.SetDefault("DASHBOARD_WARMUP_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("DASHBOARD_WARMUP_LOOKBACK_DAYS", 7)
	viper.SetDefault("DASHBOARD_WARMUP_MAX_CONCURRENT_JOBS", 2)
	viper.SetDefault("DASHBOARD_WARMUP_ENABLED", false)

	viper.SetDefault("METRICS_NAMESPACE", "ads_insights")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
