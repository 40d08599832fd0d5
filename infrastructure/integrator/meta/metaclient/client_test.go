package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

const (
	testToken  = "EAAB-token"
	testSecret = "app-secret"
)

func newTestClient(t *testing.T, server *httptest.Server, mutate func(cfg *config.Meta)) *MetaClient {
	t.Helper()

	cfg := config.Meta{
		BaseURL:   server.URL,
		Version:   "v22.0",
		AppSecret: testSecret,
		PageLimit: 2,
	}
	if mutate != nil {
		mutate(&cfg)
	}

	client, err := NewClient(cfg, testToken)
	require.NoError(t, err)
	client.sleep = func(ctx context.Context, d time.Duration) error { return nil }
	return client
}

func assertSigned(t *testing.T, r *http.Request) {
	t.Helper()

	proof, err := AppSecretProof(testToken, testSecret)
	require.NoError(t, err)
	assert.Equal(t, testToken, r.URL.Query().Get("access_token"))
	assert.Equal(t, proof, r.URL.Query().Get("appsecret_proof"))
}

func TestAppSecretProof(t *testing.T) {
	proof, err := AppSecretProof("The quick brown fox jumps over the lazy dog", "key")
	require.NoError(t, err)
	assert.Equal(t, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8", proof)

	_, err = AppSecretProof("", "key")
	assert.Error(t, err)

	_, err = AppSecretProof("token", "")
	assert.Error(t, err)
}

func TestNewClient_SemAppSecret(t *testing.T) {
	_, err := NewClient(config.Meta{BaseURL: "https://graph.facebook.com", Version: "v22.0"}, testToken)

	var cfgErr *domain.MissingConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "META_APP_SECRET", cfgErr.Key)
}

func TestMetaClient_GetCampaigns_Paginacao(t *testing.T) {
	var server *httptest.Server
	var calls int32

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assertSigned(t, r)
		assert.Equal(t, "/v22.0/act_111/campaigns", r.URL.Path)

		switch r.URL.Query().Get("after") {
		case "":
			assert.Equal(t, "id,name,status,objective", r.URL.Query().Get("fields"))
			// link sem token nem proof precisa ser reassinado
			fmt.Fprintf(w, `{"data":[{"id":"c1"},{"id":"c2"}],"paging":{"next":"%s/v22.0/act_111/campaigns?after=p2"}}`, server.URL)
		case "p2":
			fmt.Fprint(w, `{"data":[{"id":"c3"}],"paging":{}}`)
		}
	}))
	defer server.Close()

	campaigns, err := newTestClient(t, server, nil).GetCampaigns(context.Background(), "111")
	require.NoError(t, err)

	require.Len(t, campaigns, 3)
	assert.Equal(t, "c3", campaigns[2].ID)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestMetaClient_Paginacao_NextRepetido(t *testing.T) {
	var server *httptest.Server
	var calls int32

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		fmt.Fprintf(w, `{"data":[{"id":"c%d"}],"paging":{"next":"%s/v22.0/act_111/campaigns?after=loop"}}`, atomic.LoadInt32(&calls), server.URL)
	}))
	defer server.Close()

	campaigns, err := newTestClient(t, server, nil).GetCampaigns(context.Background(), "act_111")
	require.NoError(t, err)

	assert.Len(t, campaigns, 2)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestMetaClient_Paginacao_HostEstranho(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[{"id":"c1"}],"paging":{"next":"https://evil.example.com/v22.0/act_111/campaigns?after=x"}}`)
	}))
	defer server.Close()

	campaigns, err := newTestClient(t, server, nil).GetCampaigns(context.Background(), "111")

	assert.Nil(t, campaigns)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evil.example.com")
}

func TestMetaClient_GetAccountInsights_Parametros(t *testing.T) {
	tests := []struct {
		name      string
		timeRange *domain.TimeRange
		validate  func(t *testing.T, r *http.Request)
	}{
		{
			name: "Com intervalo usa time_range",
			timeRange: &domain.TimeRange{
				Since: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				Until: time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
			},
			validate: func(t *testing.T, r *http.Request) {
				assert.JSONEq(t, `{"since":"2024-03-01","until":"2024-03-07"}`, r.URL.Query().Get("time_range"))
				assert.Empty(t, r.URL.Query().Get("date_preset"))
			},
		},
		{
			name:      "Sem intervalo usa date_preset=maximum",
			timeRange: nil,
			validate: func(t *testing.T, r *http.Request) {
				assert.Equal(t, "maximum", r.URL.Query().Get("date_preset"))
				assert.Empty(t, r.URL.Query().Get("time_range"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assertSigned(t, r)
				assert.Equal(t, "/v22.0/act_111/insights", r.URL.Path)
				assert.Equal(t, "adset", r.URL.Query().Get("level"))
				assert.JSONEq(t, `["7d_click","1d_view"]`, r.URL.Query().Get("action_attribution_windows"))
				tt.validate(t, r)

				fmt.Fprint(w, `{"data":[{"adset_id":"as1","spend":"10.5","actions":[{"action_type":"lead","value":"3"}]}]}`)
			}))
			defer server.Close()

			client := newTestClient(t, server, func(cfg *config.Meta) {
				cfg.AttributionWindows = []string{"7d_click", "1d_view"}
			})

			rows, err := client.GetAccountInsights(context.Background(), "111", domain.LevelAdset, tt.timeRange)
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, "10.5", rows[0].Spend)
			assert.Equal(t, "lead", rows[0].Actions[0].ActionType)
		})
	}
}

func TestMetaClient_Erros(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		validate func(t *testing.T, apiErr *UpstreamAPIError)
	}{
		{
			name:   "200 com erro no corpo vira 400",
			status: http.StatusOK,
			body:   `{"error":{"message":"Invalid parameter","type":"OAuthException","code":100,"fbtrace_id":"trace-1"}}`,
			validate: func(t *testing.T, apiErr *UpstreamAPIError) {
				assert.Equal(t, http.StatusBadRequest, apiErr.Status)
				assert.Equal(t, http.StatusOK, apiErr.UpstreamStatus)
				assert.Equal(t, "Invalid parameter", apiErr.Message)
				assert.Equal(t, "trace-1", apiErr.FBTraceID)
			},
		},
		{
			name:   "Status fora de 400..599 vira 500",
			status: http.StatusNotModified,
			body:   ``,
			validate: func(t *testing.T, apiErr *UpstreamAPIError) {
				assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
			},
		},
		{
			name:   "Token expirado mantém o status",
			status: http.StatusUnauthorized,
			body:   `{"error":{"message":"Session has expired","type":"OAuthException","code":190,"error_subcode":463}}`,
			validate: func(t *testing.T, apiErr *UpstreamAPIError) {
				assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
				assert.True(t, apiErr.IsTokenExpired())
				assert.False(t, apiErr.Retryable())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			_, err := newTestClient(t, server, nil).GetCampaigns(context.Background(), "111")

			var apiErr *UpstreamAPIError
			require.True(t, errors.As(err, &apiErr))
			tt.validate(t, apiErr)
		})
	}
}

func TestMetaClient_Retry(t *testing.T) {
	tests := []struct {
		name       string
		maxRetries int
		failures   int32
		status     int
		wantCalls  int32
		wantErr    bool
	}{
		{name: "Sem retry por padrão", maxRetries: 0, failures: 1, status: http.StatusInternalServerError, wantCalls: 1, wantErr: true},
		{name: "5xx é repetido até dar certo", maxRetries: 2, failures: 2, status: http.StatusServiceUnavailable, wantCalls: 3, wantErr: false},
		{name: "429 é repetido", maxRetries: 1, failures: 1, status: http.StatusTooManyRequests, wantCalls: 2, wantErr: false},
		{name: "Tentativas esgotadas", maxRetries: 1, failures: 5, status: http.StatusBadGateway, wantCalls: 2, wantErr: true},
		{name: "4xx não é repetido", maxRetries: 3, failures: 1, status: http.StatusBadRequest, wantCalls: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if atomic.AddInt32(&calls, 1) <= tt.failures {
					w.WriteHeader(tt.status)
					fmt.Fprint(w, `{"error":{"message":"falhou","code":1}}`)
					return
				}
				fmt.Fprint(w, `{"data":[{"id":"c1"}]}`)
			}))
			defer server.Close()

			var slept []time.Duration
			client := newTestClient(t, server, func(cfg *config.Meta) {
				cfg.MaxRetries = tt.maxRetries
				cfg.RetryBackoffMillis = 100
			})
			client.sleep = func(ctx context.Context, d time.Duration) error {
				slept = append(slept, d)
				return nil
			}

			campaigns, err := client.GetCampaigns(context.Background(), "111")

			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&calls))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, campaigns, 1)
			if len(slept) > 1 {
				assert.Equal(t, 2*slept[0], slept[1])
			}
		})
	}
}

func TestMetaClient_FalhaDeRede(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := newTestClient(t, server, nil)
	server.Close()

	_, err := client.GetCampaigns(context.Background(), "111")

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "campaigns", transportErr.Endpoint)
}

func TestMetaClient_Cancelamento(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(t, server, nil).GetCampaigns(ctx, "111")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMetaClient_GetCreatives_Lotes(t *testing.T) {
	var batches int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&batches, 1)
		assertSigned(t, r)
		assert.Equal(t, "/v22.0", r.URL.Path)

		ids := strings.Split(r.URL.Query().Get("ids"), ",")
		assert.LessOrEqual(t, len(ids), creativeBatchSize)

		parts := make([]string, 0, len(ids))
		for _, id := range ids {
			parts = append(parts, fmt.Sprintf(`"%s":{"thumbnail_url":"https://cdn/%s.jpg"}`, id, id))
		}
		fmt.Fprintf(w, "{%s}", strings.Join(parts, ","))
	}))
	defer server.Close()

	ids := make([]string, 0, 52)
	for i := 0; i < 51; i++ {
		ids = append(ids, fmt.Sprintf("cr%02d", i))
	}
	ids = append(ids, "cr00", " ")

	creatives, err := newTestClient(t, server, nil).GetCreatives(context.Background(), ids)
	require.NoError(t, err)

	assert.Len(t, creatives, 51)
	assert.EqualValues(t, 2, atomic.LoadInt32(&batches))
	assert.Equal(t, "cr07", creatives["cr07"].ID)
	assert.Equal(t, "https://cdn/cr07.jpg", creatives["cr07"].ThumbnailURL)
}
