package integrating

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-api/infrastructure/repository"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-api/pkg/crypto"
)

// TokenDecrypter decifra o token guardado; valores sem prefixo voltam inalterados
type TokenDecrypter interface {
	Decrypt(value string) (string, error)
}

type Integrator interface {
	AccessToken(ctx context.Context, tenantID string) (string, error)
	AdAccounts(ctx context.Context, tenantID string) ([]*domain.AdAccount, error)
	TenantIDs(ctx context.Context) ([]string, error)
}

type Service struct {
	repo   repository.IntegrationRepository
	cipher TokenDecrypter
}

// NewService cria o serviço; cipher pode ser nil quando nenhum token está cifrado
func NewService(repo repository.IntegrationRepository, cipher TokenDecrypter) *Service {
	return &Service{
		repo:   repo,
		cipher: cipher,
	}
}

// AccessToken devolve o token do tenant já decifrado.
// Integração ausente, token vazio ou indecifrável resultam em MissingIntegrationError.
func (s *Service) AccessToken(ctx context.Context, tenantID string) (string, error) {
	if strings.TrimSpace(tenantID) == "" {
		return "", NewIntegrationError(ErrTenantIDRequired, apiErrors.ErrInvalidRequest, "", "")
	}

	integration, err := s.repo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return "", NewIntegrationError(ErrFetchIntegration, apiErrors.ErrDatabaseOperation, tenantID, err.Error())
	}
	if integration == nil {
		return "", &domain.MissingIntegrationError{TenantID: tenantID}
	}

	stored := strings.TrimSpace(integration.AccessToken)
	if stored == "" {
		return "", &domain.MissingIntegrationError{TenantID: tenantID, Err: ErrEmptyAccessToken}
	}

	if !crypto.IsEncrypted(stored) {
		return stored, nil
	}

	if s.cipher == nil {
		return "", &domain.MissingIntegrationError{TenantID: tenantID, Err: ErrCipherNotConfigured}
	}

	token, err := s.cipher.Decrypt(stored)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"error":     err.Error(),
		}).Warn("integrations: não foi possível decifrar o token do tenant")
		return "", &domain.MissingIntegrationError{TenantID: tenantID, Err: ErrTokenDecryptionFailed}
	}

	return token, nil
}

func (s *Service) AdAccounts(ctx context.Context, tenantID string) ([]*domain.AdAccount, error) {
	accounts, err := s.repo.ListAdAccounts(ctx, tenantID)
	if err != nil {
		return nil, NewIntegrationError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, tenantID, err.Error())
	}
	return accounts, nil
}

// TenantIDs lista os tenants com integração, usado pelo aquecimento do cache
func (s *Service) TenantIDs(ctx context.Context) ([]string, error) {
	tenantIDs, err := s.repo.ListTenantIDs(ctx)
	if err != nil {
		return nil, NewIntegrationError(ErrFetchTenants, apiErrors.ErrDatabaseOperation, "", err.Error())
	}
	return tenantIDs, nil
}
