package cli

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-insights-api/pkg/crypto"
)

func newEncryptTokenCommand(flags *GlobalFlags, deps Deps) *cobra.Command {
	var token, key string

	cmd := &cobra.Command{
		Use:   "encrypt-token",
		Short: "Cifra um token do Graph API no formato enc:v1: gravado em meta_integrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(token) == "" {
				return WrapExit(ExitCodeInput, errors.New("informe --token"))
			}

			if key == "" {
				cfg, err := deps.LoadConfig()
				if err != nil {
					return WrapExit(ExitCodeConfig, err)
				}
				key = cfg.App.TokenEncryptionKey
			}
			if strings.TrimSpace(key) == "" {
				return WrapExit(ExitCodeConfig, errors.New("informe --key ou TOKEN_ENCRYPTION_KEY"))
			}

			cipher, err := crypto.NewTokenCipher(key)
			if err != nil {
				return WrapExit(ExitCodeConfig, err)
			}

			encrypted, err := cipher.Encrypt(strings.TrimSpace(token))
			if err != nil {
				return WrapExit(ExitCodeUnknown, err)
			}

			return writeOutput(cmd.OutOrStdout(), flags.Output, map[string]string{"accessToken": encrypted})
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Token de acesso em texto puro")
	cmd.Flags().StringVar(&key, "key", "", "Chave de 32 bytes (padrão: TOKEN_ENCRYPTION_KEY)")

	return cmd
}

func newIssueTokenCommand(flags *GlobalFlags, deps Deps) *cobra.Command {
	var tenantID, userID, role string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "issue-token",
		Short: "Emite um JWT de serviço assinado com AUTH_SECRET",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := deps.LoadConfig()
			if err != nil {
				return WrapExit(ExitCodeConfig, err)
			}

			token, err := authenticating.NewService(cfg).GenerateToken(tenantID, userID, role, ttl)
			if err != nil {
				if errors.Is(err, authenticating.ErrMissingTenant) {
					return WrapExit(ExitCodeInput, err)
				}
				return WrapExit(ExitCodeConfig, err)
			}

			return writeOutput(cmd.OutOrStdout(), flags.Output, map[string]string{
				"token":     token,
				"expiresAt": time.Now().Add(ttl).Format(time.RFC3339),
			})
		},
	}

	cmd.Flags().StringVar(&tenantID, "tenant", "", "Tenant gravado na claim tenant_id")
	cmd.Flags().StringVar(&userID, "user", "metricsctl", "Usuário gravado na claim user_id")
	cmd.Flags().StringVar(&role, "role", domain.RoleAdmin, "Role do token: admin|member")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Validade do token")

	return cmd
}
