package metaclient

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

var insightFields = []string{
	"account_id",
	"account_name",
	"campaign_id",
	"campaign_name",
	"adset_id",
	"adset_name",
	"ad_id",
	"ad_name",
	"objective",
	"optimization_goal",
	"spend",
	"impressions",
	"clicks",
	"reach",
	"ctr",
	"actions",
	"cost_per_action_type",
}

// GetAccountInsights busca todas as páginas de /insights da conta no nível informado.
// Sem intervalo de datas usa date_preset=maximum.
func (c *MetaClient) GetAccountInsights(ctx context.Context, accountID string, level domain.InsightLevel, timeRange *domain.TimeRange) ([]metadomain.InsightRow, error) {
	return c.getInsights(ctx, accountPath(accountID), level, timeRange)
}

// GetCampaignInsights faz o mesmo para uma única campanha
func (c *MetaClient) GetCampaignInsights(ctx context.Context, campaignID string, level domain.InsightLevel, timeRange *domain.TimeRange) ([]metadomain.InsightRow, error) {
	return c.getInsights(ctx, campaignID, level, timeRange)
}

func (c *MetaClient) getInsights(ctx context.Context, objectPath string, level domain.InsightLevel, timeRange *domain.TimeRange) ([]metadomain.InsightRow, error) {
	params := url.Values{}
	params.Set("level", string(level))
	params.Set("fields", strings.Join(insightFields, ","))
	params.Set("limit", strconv.Itoa(c.pageLimit))

	if timeRange != nil {
		encoded, err := json.Marshal(metadomain.TimeRange{
			Since: timeRange.Since.Format(time.DateOnly),
			Until: timeRange.Until.Format(time.DateOnly),
		})
		if err != nil {
			return nil, errors.Wrap(err, "meta: falha ao serializar time_range")
		}
		params.Set("time_range", string(encoded))
	} else {
		params.Set("date_preset", "maximum")
	}

	if len(c.attributionWindows) > 0 {
		encoded, err := json.Marshal(c.attributionWindows)
		if err != nil {
			return nil, errors.Wrap(err, "meta: falha ao serializar action_attribution_windows")
		}
		params.Set("action_attribution_windows", string(encoded))
	}

	return fetchAll[metadomain.InsightRow](ctx, c, objectPath+"/insights", "insights", params)
}
