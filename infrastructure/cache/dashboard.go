package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const keyPrefix = "dashboard:v1:"

// NewRedisClient aceita uma URL redis:// ou apenas host:porta
func NewRedisClient(redisURL string) *redis.Client {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return redis.NewClient(&redis.Options{Addr: redisURL})
	}
	return redis.NewClient(opts)
}

// DashboardCache guarda o payload calculado do dashboard por tenant e filtros
type DashboardCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewDashboardCache(client redis.Cmdable, ttl time.Duration) *DashboardCache {
	return &DashboardCache{
		client: client,
		ttl:    ttl,
	}
}

// Key gera a chave do tenant; filtros equivalentes (ordem, caixa, duplicatas) geram a mesma chave
func Key(tenantID string, filters *domain.DashboardFilters) (string, error) {
	canonical := domain.DashboardFilters{}
	if filters != nil {
		canonical = *filters
	}
	canonical.Normalize()

	payload, err := json.Marshal(canonical)
	if err != nil {
		return "", pkgerrors.Wrap(err, "cache: falha ao serializar filtros")
	}

	sum := sha256.Sum256(payload)
	return keyPrefix + tenantID + ":" + hex.EncodeToString(sum[:]), nil
}

// Get devolve nil, nil quando não há entrada
func (c *DashboardCache) Get(ctx context.Context, tenantID string, filters *domain.DashboardFilters) (*domain.DashboardMetrics, error) {
	key, err := Key(tenantID, filters)
	if err != nil {
		return nil, err
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "cache: falha ao ler dashboard")
	}

	var metrics domain.DashboardMetrics
	if err := json.Unmarshal(data, &metrics); err != nil {
		return nil, pkgerrors.Wrap(err, "cache: payload inválido")
	}

	return &metrics, nil
}

func (c *DashboardCache) Set(ctx context.Context, tenantID string, filters *domain.DashboardFilters, metrics *domain.DashboardMetrics) error {
	if c.ttl <= 0 {
		return nil
	}

	key, err := Key(tenantID, filters)
	if err != nil {
		return err
	}

	data, err := json.Marshal(metrics)
	if err != nil {
		return pkgerrors.Wrap(err, "cache: falha ao serializar dashboard")
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return pkgerrors.Wrap(err, "cache: falha ao gravar dashboard")
	}
	return nil
}

// Ping confere a conexão, usado pelo healthcheck
func (c *DashboardCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
