package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
)

// Authenticator valida os tokens emitidos pelo serviço de usuários.
// A API não emite tokens para usuários finais, apenas GenerateToken para uso operacional.
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg: cfg,
	}
}

func (s *Service) secret() ([]byte, error) {
	if s.cfg == nil || strings.TrimSpace(s.cfg.Auth.Secret) == "" {
		return nil, ErrMissingSecret
	}
	return []byte(s.cfg.Auth.Secret), nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, NewAuthError(ErrMissingToken, apiErrors.ErrInvalidToken, "")
	}

	secret, err := s.secret()
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if strings.TrimSpace(claims.TenantID) == "" {
		return nil, NewAuthError(ErrMissingTenant, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

// GenerateToken assina um token HS256 com o segredo configurado
func (s *Service) GenerateToken(tenantID, userID, role string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(tenantID) == "" {
		return "", ErrMissingTenant
	}

	secret, err := s.secret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &domain.Claims{
		TenantID: tenantID,
		UserID:   userID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
