package metaclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

type Client interface {
	GetCampaigns(ctx context.Context, accountID string) ([]metadomain.Campaign, error)
	GetAccountInsights(ctx context.Context, accountID string, level domain.InsightLevel, timeRange *domain.TimeRange) ([]metadomain.InsightRow, error)
	GetCampaignInsights(ctx context.Context, campaignID string, level domain.InsightLevel, timeRange *domain.TimeRange) ([]metadomain.InsightRow, error)
	GetCampaignAds(ctx context.Context, campaignID string) ([]metadomain.Ad, error)
	GetCreatives(ctx context.Context, creativeIDs []string) (map[string]metadomain.Creative, error)
}

// RetryPolicy controla novas tentativas para erros transitórios. MaxRetries 0 desliga o retry.
type RetryPolicy struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// MetaClient é ligado a um único token; o appsecret_proof é calculado uma vez na criação
type MetaClient struct {
	baseURL            *url.URL
	accessToken        string
	appSecretProof     string
	httpClient         *http.Client
	retry              RetryPolicy
	pageLimit          int
	attributionWindows []string
	metrics            *metrics.Metrics
	sleep              func(context.Context, time.Duration) error
}

type Option func(*MetaClient)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *MetaClient) {
		c.httpClient = httpClient
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *MetaClient) {
		c.metrics = m
	}
}

func WithRetryPolicy(policy RetryPolicy) Option {
	return func(c *MetaClient) {
		c.retry = policy
	}
}

func NewClient(cfg config.Meta, accessToken string, opts ...Option) (*MetaClient, error) {
	if strings.TrimSpace(cfg.AppSecret) == "" {
		return nil, &domain.MissingConfigurationError{Key: "META_APP_SECRET"}
	}
	if strings.TrimSpace(accessToken) == "" {
		return nil, errors.New("meta: token de acesso vazio")
	}

	proof, err := AppSecretProof(accessToken, cfg.AppSecret)
	if err != nil {
		return nil, err
	}

	rawURL := cfg.URL
	if rawURL == "" {
		rawURL = strings.TrimRight(cfg.BaseURL, "/") + "/" + cfg.Version
	}
	base, err := url.Parse(strings.TrimRight(rawURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "meta: URL base inválida")
	}

	pageLimit := cfg.PageLimit
	if pageLimit <= 0 {
		pageLimit = 500
	}

	client := &MetaClient{
		baseURL:            base,
		accessToken:        accessToken,
		appSecretProof:     proof,
		httpClient:         &http.Client{Timeout: cfg.RequestTimeout()},
		pageLimit:          pageLimit,
		attributionWindows: cfg.AttributionWindows,
		retry: RetryPolicy{
			MaxRetries:     cfg.MaxRetries,
			InitialBackoff: time.Duration(cfg.RetryBackoffMillis) * time.Millisecond,
			MaxBackoff:     30 * time.Second,
		},
		sleep: sleepContext,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// accountPath garante o prefixo act_ exigido pelos endpoints de conta
func accountPath(accountID string) string {
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
