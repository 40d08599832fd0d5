package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta"
	metamocks "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-insights-api/pkg/crypto"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func testDeps(cfg *config.Config, fetcher meta.Fetcher) Deps {
	return Deps{
		LoadConfig: func() (*config.Config, error) { return cfg, nil },
		NewFetcher: func(cfg *config.Config, accessToken string) (meta.Fetcher, error) {
			if accessToken != "EAAB" {
				return nil, errors.New("token inesperado")
			}
			return fetcher, nil
		},
	}
}

func run(t *testing.T, deps Deps, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := NewRootCommand(deps)
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDashboardCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := metamocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().Campaigns(gomock.Any(), "111").Return([]domain.Campaign{
		{ID: "c1", Name: "Leads", Status: "ACTIVE", Objective: "OUTCOME_LEADS"},
	}, nil)
	fetcher.EXPECT().AccountInsights(gomock.Any(), "111", domain.LevelAdset, gomock.Any()).Return([]domain.InsightRow{
		{
			CampaignID:       "c1",
			AdsetID:          "as1",
			OptimizationGoal: "LEAD_GENERATION",
			Spend:            100,
			Impressions:      1000,
			Clicks:           50,
			Actions:          []domain.ActionValue{{Type: "lead", Value: 10}},
		},
	}, nil).Times(2)

	out, err := run(t, testDeps(&config.Config{}, fetcher),
		"dashboard", "--token", "EAAB", "--account", "act_111", "--account", "111",
		"--since", "2024-03-08", "--until", "2024-03-14", "--output", "yaml",
	)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))

	totals := decoded["totals"].(map[string]any)
	assert.EqualValues(t, 100, totals["spend"])
	assert.NotNil(t, decoded["previousTotals"])
	assert.Len(t, decoded["accounts"], 1)
}

func TestDashboardCommand_Validacao(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "Sem conta", args: []string{"dashboard", "--token", "EAAB"}, code: ExitCodeInput},
		{name: "Apenas --since", args: []string{"dashboard", "--token", "EAAB", "--account", "111", "--since", "2024-03-08"}, code: ExitCodeInput},
		{name: "Datas invertidas", args: []string{"dashboard", "--token", "EAAB", "--account", "111", "--since", "2024-03-14", "--until", "2024-03-08"}, code: ExitCodeInput},
		{name: "Saída inválida", args: []string{"dashboard", "--output", "csv"}, code: ExitCodeInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("META_ACCESS_TOKEN", "")

			_, err := run(t, testDeps(&config.Config{}, nil), tt.args...)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, tt.code, exitErr.Code)
		})
	}
}

func TestEncryptTokenCommand(t *testing.T) {
	cfg := &config.Config{App: config.App{TokenEncryptionKey: testKey}}

	out, err := run(t, testDeps(cfg, nil), "encrypt-token", "--token", "EAAB-secret")
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.True(t, crypto.IsEncrypted(decoded["accessToken"]))

	cipher, err := crypto.NewTokenCipher(testKey)
	require.NoError(t, err)
	plain, err := cipher.Decrypt(decoded["accessToken"])
	require.NoError(t, err)
	assert.Equal(t, "EAAB-secret", plain)
}

func TestEncryptTokenCommand_SemChave(t *testing.T) {
	_, err := run(t, testDeps(&config.Config{}, nil), "encrypt-token", "--token", "EAAB")

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitCodeConfig, exitErr.Code)
}

func TestIssueTokenCommand(t *testing.T) {
	cfg := &config.Config{Auth: config.Auth{Secret: "segredo"}}

	out, err := run(t, testDeps(cfg, nil), "issue-token", "--tenant", "t1", "--role", domain.RoleMember)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	claims, err := authenticating.NewService(cfg).ValidateToken(decoded["token"])
	require.NoError(t, err)
	assert.Equal(t, "t1", claims.TenantID)
	assert.Equal(t, domain.RoleMember, claims.Role)

	_, err = run(t, testDeps(cfg, nil), "issue-token")
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitCodeInput, exitErr.Code)
}
