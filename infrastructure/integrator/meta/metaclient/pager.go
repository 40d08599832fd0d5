package metaclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
)

type page[T any] struct {
	Data   []T               `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// fetchAll percorre paging.next até o fim e devolve a concatenação de todas as páginas.
// Qualquer erro aborta a leitura inteira.
func fetchAll[T any](ctx context.Context, c *MetaClient, endpoint, metricName string, params url.Values) ([]T, error) {
	all := make([]T, 0)
	next := c.endpointURL(endpoint, params)
	visited := make(map[string]struct{})
	pages := 0

	for next != "" {
		if _, seen := visited[next]; seen {
			logrus.WithField("endpoint", metricName).Warn("meta: paging.next repetido, encerrando paginação")
			break
		}
		visited[next] = struct{}{}

		body, err := c.get(ctx, next, metricName)
		if err != nil {
			return nil, err
		}

		var p page[T]
		if err := json.Unmarshal(body, &p); err != nil {
			return nil, errors.Wrapf(err, "meta: resposta inválida de %s", metricName)
		}

		pages++
		c.metrics.RecordPage(metricName)
		all = append(all, p.Data...)

		if p.Paging.Next == "" {
			break
		}

		next, err = c.restamp(p.Paging.Next)
		if err != nil {
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"endpoint": metricName,
		"pages":    pages,
		"items":    len(all),
	}).Debug("meta: paginação concluída")

	return all, nil
}

// restamp reassina o link da próxima página; links para outro host são recusados
// para não vazar o token.
func (c *MetaClient) restamp(nextURL string) (string, error) {
	parsed, err := url.Parse(nextURL)
	if err != nil {
		return "", errors.Wrapf(err, "meta: paging.next inválido %q", nextURL)
	}
	if parsed.Host != "" && parsed.Host != c.baseURL.Host {
		return "", fmt.Errorf("meta: paging.next aponta para host inesperado %q", parsed.Host)
	}
	if parsed.Host == "" {
		parsed.Scheme = c.baseURL.Scheme
		parsed.Host = c.baseURL.Host
	}

	return c.sign(parsed), nil
}
