package metaclient

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
)

const (
	adFields       = "id,name,status,effective_status,adset_id,creative{id}"
	creativeFields = "id,name,thumbnail_url,image_url,title,body"

	// limite de IDs por consulta ?ids=
	creativeBatchSize = 50
)

func (c *MetaClient) GetCampaignAds(ctx context.Context, campaignID string) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Set("fields", adFields)
	params.Set("limit", strconv.Itoa(c.pageLimit))

	return fetchAll[metadomain.Ad](ctx, c, campaignID+"/ads", "ads", params)
}

// GetCreatives busca os criativos em lotes usando a consulta ?ids=
func (c *MetaClient) GetCreatives(ctx context.Context, creativeIDs []string) (map[string]metadomain.Creative, error) {
	ids := uniqueIDs(creativeIDs)
	out := make(map[string]metadomain.Creative, len(ids))

	for start := 0; start < len(ids); start += creativeBatchSize {
		end := start + creativeBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		params := url.Values{}
		params.Set("ids", strings.Join(ids[start:end], ","))
		params.Set("fields", creativeFields)

		body, err := c.get(ctx, c.endpointURL("", params), "creatives")
		if err != nil {
			return nil, err
		}

		var batch map[string]metadomain.Creative
		if err := json.Unmarshal(body, &batch); err != nil {
			return nil, errors.Wrap(err, "meta: resposta inválida de creatives")
		}
		for id, creative := range batch {
			if creative.ID == "" {
				creative.ID = id
			}
			out[id] = creative
		}
	}

	return out, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
