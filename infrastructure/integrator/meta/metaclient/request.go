package metaclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
)

// endpointURL monta a URL de um endpoint relativo à versão configurada, já assinada
func (c *MetaClient) endpointURL(endpoint string, params url.Values) string {
	u := *c.baseURL
	u.Path = path.Join(u.Path, strings.TrimPrefix(endpoint, "/"))

	query := url.Values{}
	for key, values := range params {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	u.RawQuery = query.Encode()

	return c.sign(&u)
}

// sign grava access_token e appsecret_proof na query
func (c *MetaClient) sign(u *url.URL) string {
	query := u.Query()
	query.Set("access_token", c.accessToken)
	query.Set("appsecret_proof", c.appSecretProof)
	u.RawQuery = query.Encode()
	return u.String()
}

// get executa um GET aplicando a política de retry
func (c *MetaClient) get(ctx context.Context, rawURL, endpoint string) ([]byte, error) {
	backoff := c.retry.InitialBackoff
	attempt := 0

	for {
		body, err := c.doGet(ctx, rawURL, endpoint)
		if err == nil {
			return body, nil
		}

		if attempt >= c.retry.MaxRetries || !isRetryable(err) {
			return nil, err
		}
		attempt++

		logrus.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"attempt":  attempt,
			"backoff":  backoff.String(),
			"error":    err.Error(),
		}).Warn("meta: erro transitório, tentando novamente")

		if sleepErr := c.sleep(ctx, backoff); sleepErr != nil {
			return nil, sleepErr
		}
		backoff = nextBackoff(backoff, c.retry.MaxBackoff)
	}
}

func (c *MetaClient) doGet(ctx context.Context, rawURL, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	startedAt := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordUpstreamRequest(endpoint, 0, time.Since(startedAt))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	c.metrics.RecordUpstreamRequest(endpoint, resp.StatusCode, time.Since(startedAt))
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}

	var errResp metadomain.ErrorResponse
	decodeErr := json.Unmarshal(body, &errResp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var details *metadomain.ErrorDetails
		if decodeErr == nil {
			details = errResp.Error
		}
		return nil, c.logUpstreamError(newUpstreamAPIError(resp.StatusCode, details), endpoint)
	}

	// O Graph API às vezes responde 200 com um objeto de erro no corpo
	if decodeErr == nil && errResp.Error != nil {
		return nil, c.logUpstreamError(newUpstreamAPIError(resp.StatusCode, errResp.Error), endpoint)
	}

	return body, nil
}

func (c *MetaClient) logUpstreamError(apiErr *UpstreamAPIError, endpoint string) *UpstreamAPIError {
	entry := logrus.WithFields(logrus.Fields{
		"endpoint":        endpoint,
		"status":          apiErr.Status,
		"upstream_status": apiErr.UpstreamStatus,
		"code":            apiErr.Code,
		"fbtrace_id":      apiErr.FBTraceID,
	})
	if apiErr.IsTokenExpired() {
		entry.Warn("meta: token expirado ou revogado")
	} else {
		entry.WithField("error", apiErr.Message).Error("meta: erro retornado pela API")
	}
	return apiErr
}

func isRetryable(err error) bool {
	var apiErr *UpstreamAPIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

func nextBackoff(current, limit time.Duration) time.Duration {
	if current <= 0 {
		return 0
	}
	next := current * 2
	if limit > 0 && next > limit {
		return limit
	}
	return next
}
