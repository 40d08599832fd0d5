package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return mr, client
}

func TestDashboardCache_SetGet(t *testing.T) {
	mr, client := setupTestRedis(t)
	cache := NewDashboardCache(client, 5*time.Minute)
	ctx := context.Background()

	cost := 12.5
	filters := &domain.DashboardFilters{AccountIDs: []string{"111"}}
	metrics := &domain.DashboardMetrics{
		Totals: domain.MetricTotals{Spend: 125, ResultSpend: 125, Results: 10, CostPerResult: &cost},
		Accounts: []*domain.AccountMetrics{
			{ID: "111", Name: "Conta A", Value: 125},
		},
	}

	cached, err := cache.Get(ctx, "t1", filters)
	require.NoError(t, err)
	assert.Nil(t, cached)

	require.NoError(t, cache.Set(ctx, "t1", filters, metrics))

	cached, err = cache.Get(ctx, "t1", filters)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, 125.0, cached.Totals.Spend)
	require.NotNil(t, cached.Totals.CostPerResult)
	assert.Equal(t, 12.5, *cached.Totals.CostPerResult)
	require.Len(t, cached.Accounts, 1)
	assert.Equal(t, "Conta A", cached.Accounts[0].Name)

	// outro tenant não enxerga a entrada
	other, err := cache.Get(ctx, "t2", filters)
	require.NoError(t, err)
	assert.Nil(t, other)

	mr.FastForward(6 * time.Minute)
	expired, err := cache.Get(ctx, "t1", filters)
	require.NoError(t, err)
	assert.Nil(t, expired)
}

func TestDashboardCache_TTLZeroDesativaEscrita(t *testing.T) {
	mr, client := setupTestRedis(t)
	cache := NewDashboardCache(client, 0)

	require.NoError(t, cache.Set(context.Background(), "t1", nil, &domain.DashboardMetrics{}))
	assert.Empty(t, mr.Keys())
}

func TestDashboardCache_PayloadInvalido(t *testing.T) {
	mr, client := setupTestRedis(t)
	cache := NewDashboardCache(client, time.Minute)

	key, err := Key("t1", nil)
	require.NoError(t, err)
	require.NoError(t, mr.Set(key, "{not json"))

	_, err = cache.Get(context.Background(), "t1", nil)
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	a, err := Key("t1", &domain.DashboardFilters{
		AccountIDs: []string{"222", "111", "111"},
		Statuses:   []string{"active"},
	})
	require.NoError(t, err)

	b, err := Key("t1", &domain.DashboardFilters{
		AccountIDs: []string{"111", "222"},
		Statuses:   []string{"ACTIVE"},
	})
	require.NoError(t, err)

	c, err := Key("t1", &domain.DashboardFilters{AccountIDs: []string{"111"}})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "dashboard:v1:t1:")
}
