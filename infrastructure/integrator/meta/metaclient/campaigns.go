package metaclient

import (
	"context"
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
)

const campaignFields = "id,name,status,objective"

func (c *MetaClient) GetCampaigns(ctx context.Context, accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Set("fields", campaignFields)
	params.Set("limit", strconv.Itoa(c.pageLimit))

	return fetchAll[metadomain.Campaign](ctx, c, accountPath(accountID)+"/campaigns", "campaigns", params)
}
