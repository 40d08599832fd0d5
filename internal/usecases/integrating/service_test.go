package integrating

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/crypto"
	"go.uber.org/mock/gomock"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestService_AccessToken(t *testing.T) {
	cipher, err := crypto.NewTokenCipher(testKey)
	require.NoError(t, err)

	encrypted, err := cipher.Encrypt("EAAB-secret")
	require.NoError(t, err)

	otherCipher, err := crypto.NewTokenCipher("ffeeddccbbaa99887766554433221100ffeeddccbbaa99887766554433221100")
	require.NoError(t, err)
	foreign, err := otherCipher.Encrypt("EAAB-secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		cipher   TokenDecrypter
		setup    func(repo *mocks.MockIntegrationRepository)
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:   "Token cifrado é decifrado",
			cipher: cipher,
			setup: func(repo *mocks.MockIntegrationRepository) {
				repo.EXPECT().GetByTenantID(gomock.Any(), "t1").Return(&domain.Integration{TenantID: "t1", AccessToken: encrypted}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "EAAB-secret", token)
			},
		},
		{
			name:   "Token em texto puro é aceito",
			cipher: nil,
			setup: func(repo *mocks.MockIntegrationRepository) {
				repo.EXPECT().GetByTenantID(gomock.Any(), "t1").Return(&domain.Integration{TenantID: "t1", AccessToken: "EAAB-plain"}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "EAAB-plain", token)
			},
		},
		{
			name:   "Tenant sem integração",
			cipher: cipher,
			setup: func(repo *mocks.MockIntegrationRepository) {
				repo.EXPECT().GetByTenantID(gomock.Any(), "t1").Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, domain.ErrMissingIntegration)
			},
		},
		{
			name:   "Token cifrado com outra chave vira integração ausente",
			cipher: cipher,
			setup: func(repo *mocks.MockIntegrationRepository) {
				repo.EXPECT().GetByTenantID(gomock.Any(), "t1").Return(&domain.Integration{TenantID: "t1", AccessToken: foreign}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, domain.ErrMissingIntegration)
				assert.ErrorIs(t, err, ErrTokenDecryptionFailed)
			},
		},
		{
			name:   "Token cifrado sem chave configurada",
			cipher: nil,
			setup: func(repo *mocks.MockIntegrationRepository) {
				repo.EXPECT().GetByTenantID(gomock.Any(), "t1").Return(&domain.Integration{TenantID: "t1", AccessToken: encrypted}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrCipherNotConfigured)
			},
		},
		{
			name:   "Token vazio",
			cipher: cipher,
			setup: func(repo *mocks.MockIntegrationRepository) {
				repo.EXPECT().GetByTenantID(gomock.Any(), "t1").Return(&domain.Integration{TenantID: "t1", AccessToken: "  "}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrEmptyAccessToken)
			},
		},
		{
			name:   "Erro de banco",
			cipher: cipher,
			setup: func(repo *mocks.MockIntegrationRepository) {
				repo.EXPECT().GetByTenantID(gomock.Any(), "t1").Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, token string, err error) {
				var integrationErr *IntegrationError
				require.True(t, errors.As(err, &integrationErr))
				assert.ErrorIs(t, err, ErrFetchIntegration)
				assert.Equal(t, "t1", integrationErr.TenantID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockIntegrationRepository(ctrl)
			tt.setup(repo)

			token, err := NewService(repo, tt.cipher).AccessToken(context.Background(), "t1")
			tt.validate(t, token, err)
		})
	}
}

func TestService_AdAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIntegrationRepository(ctrl)
	repo.EXPECT().ListAdAccounts(gomock.Any(), "t1").Return([]*domain.AdAccount{{ExternalID: "111"}}, nil)
	repo.EXPECT().ListAdAccounts(gomock.Any(), "t2").Return(nil, errors.New("timeout"))

	service := NewService(repo, nil)

	accounts, err := service.AdAccounts(context.Background(), "t1")
	require.NoError(t, err)
	assert.Len(t, accounts, 1)

	_, err = service.AdAccounts(context.Background(), "t2")
	assert.ErrorIs(t, err, ErrFetchAccounts)
}
