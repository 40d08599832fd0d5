package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

const (
	integrationsTable = "meta_integrations mi"
	adAccountsTable   = "meta_ad_accounts ma"
)

//go:generate mockgen -source=integration.go -destination=mocks/integration_mock.go -package=mocks

type IntegrationRepository interface {
	GetByTenantID(ctx context.Context, tenantID string) (*domain.Integration, error)
	ListAdAccounts(ctx context.Context, tenantID string) ([]*domain.AdAccount, error)
	ListTenantIDs(ctx context.Context) ([]string, error)
}

type integrationRepository struct {
	conn postgres.Queryer
}

func NewIntegrationRepository(conn postgres.Queryer) IntegrationRepository {
	return &integrationRepository{
		conn: conn,
	}
}

// GetByTenantID devolve nil, nil quando o tenant não tem integração
func (r *integrationRepository) GetByTenantID(ctx context.Context, tenantID string) (*domain.Integration, error) {
	query, args, err := squirrel.
		Select("mi.tenant_id, mi.access_token, mi.updated_at").
		From(integrationsTable).
		Where(squirrel.Eq{"mi.tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var integration domain.Integration
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&integration.TenantID,
		&integration.AccessToken,
		&integration.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"error":     err.Error(),
		}).Error("Erro ao buscar integração Meta")
		return nil, pkgerrors.Wrap(err, "erro ao buscar integração Meta")
	}

	return &integration, nil
}

// ListAdAccounts lista as contas ativas do tenant ordenadas por nome
func (r *integrationRepository) ListAdAccounts(ctx context.Context, tenantID string) ([]*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("ma.tenant_id, ma.external_id, ma.name, ma.status").
		From(adAccountsTable).
		Where(squirrel.Eq{
			"ma.tenant_id": tenantID,
			"ma.status":    string(domain.AdAccountStatusActive),
		}).
		OrderBy("ma.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar contas de anúncio")
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		var account domain.AdAccount
		var status string
		if err := rows.Scan(&account.TenantID, &account.ExternalID, &account.Name, &status); err != nil {
			return nil, pkgerrors.Wrap(err, "erro ao ler conta de anúncio")
		}
		account.Status = domain.AdAccountStatus(status)
		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao iterar contas de anúncio")
	}

	return accounts, nil
}

// ListTenantIDs lista os tenants que possuem integração configurada
func (r *integrationRepository) ListTenantIDs(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("mi.tenant_id").
		From(integrationsTable).
		OrderBy("mi.tenant_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar tenants")
	}
	defer rows.Close()

	tenantIDs := make([]string, 0)
	for rows.Next() {
		var tenantID string
		if err := rows.Scan(&tenantID); err != nil {
			return nil, pkgerrors.Wrap(err, "erro ao ler tenant")
		}
		tenantIDs = append(tenantIDs, tenantID)
	}

	return tenantIDs, rows.Err()
}
