package domain

import "time"

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

// AdAccount é uma conta de anúncios vinculada a um tenant
type AdAccount struct {
	TenantID   string          `json:"tenant_id"`
	ExternalID string          `json:"external_id"`
	Name       string          `json:"name"`
	Status     AdAccountStatus `json:"status"`
}

// Integration guarda o token de acesso (cifrado) de um tenant
type Integration struct {
	TenantID    string    `json:"tenant_id"`
	AccessToken string    `json:"-"`
	UpdatedAt   time.Time `json:"updated_at"`
}
