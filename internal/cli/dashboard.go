package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

type dashboardOptions struct {
	token             string
	accounts          []string
	since             string
	until             string
	compare           bool
	campaignIDs       []string
	objectives        []string
	statuses          []string
	optimizationGoals []string
}

func newDashboardCommand(flags *GlobalFlags, deps Deps) *cobra.Command {
	opts := &dashboardOptions{}

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Calcula o dashboard de contas de anúncio direto no Graph API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := opts.filters()
			if err != nil {
				return WrapExit(ExitCodeInput, err)
			}

			token := strings.TrimSpace(opts.token)
			if token == "" {
				token = strings.TrimSpace(os.Getenv("META_ACCESS_TOKEN"))
			}
			if token == "" {
				return WrapExit(ExitCodeInput, errors.New("informe --token ou META_ACCESS_TOKEN"))
			}

			accounts := opts.adAccounts()
			if len(accounts) == 0 {
				return WrapExit(ExitCodeInput, errors.New("informe ao menos uma --account"))
			}

			cfg, err := deps.LoadConfig()
			if err != nil {
				return WrapExit(ExitCodeConfig, err)
			}

			fetcher, err := deps.NewFetcher(cfg, token)
			if err != nil {
				return WrapExit(ExitCodeConfig, err)
			}

			service := insighting.NewService(cfg, nil, nil, nil)
			metrics, err := service.ComputeDashboardMetrics(cmd.Context(), fetcher, accounts, filters)
			if err != nil {
				return WrapExit(exitCodeFor(err), err)
			}

			return writeOutput(cmd.OutOrStdout(), flags.Output, metrics)
		},
	}

	cmd.Flags().StringVar(&opts.token, "token", "", "Token de acesso do Graph API (padrão: META_ACCESS_TOKEN)")
	cmd.Flags().StringSliceVar(&opts.accounts, "account", nil, "Conta de anúncio (com ou sem act_), repetível")
	cmd.Flags().StringVar(&opts.since, "since", "", "Data inicial AAAA-MM-DD")
	cmd.Flags().StringVar(&opts.until, "until", "", "Data final AAAA-MM-DD")
	cmd.Flags().BoolVar(&opts.compare, "compare", true, "Calcula o período anterior de mesmo tamanho")
	cmd.Flags().StringSliceVar(&opts.campaignIDs, "campaign", nil, "Filtra por ID de campanha")
	cmd.Flags().StringSliceVar(&opts.objectives, "objective", nil, "Filtra por objetivo")
	cmd.Flags().StringSliceVar(&opts.statuses, "status", nil, "Filtra por status da campanha")
	cmd.Flags().StringSliceVar(&opts.optimizationGoals, "optimization-goal", nil, "Filtra pela meta de otimização dominante")

	return cmd
}

func (o *dashboardOptions) filters() (*domain.DashboardFilters, error) {
	filters := &domain.DashboardFilters{
		CampaignIDs:       o.campaignIDs,
		Objectives:        o.objectives,
		Statuses:          o.statuses,
		OptimizationGoals: o.optimizationGoals,
	}

	if o.since == "" && o.until == "" {
		return filters, nil
	}
	if o.since == "" || o.until == "" {
		return nil, errors.New("--since e --until devem ser informados juntos")
	}

	since, err := utils.ParseDate(o.since)
	if err != nil {
		return nil, fmt.Errorf("--since inválido: %w", err)
	}
	until, err := utils.ParseDate(o.until)
	if err != nil {
		return nil, fmt.Errorf("--until inválido: %w", err)
	}
	if until.Before(*since) {
		return nil, errors.New("--since deve ser anterior ou igual a --until")
	}

	filters.Range = &domain.TimeRange{Since: *since, Until: *until}
	if o.compare {
		prevSince, prevUntil := utils.PreviousWindow(*since, *until)
		filters.PreviousRange = &domain.TimeRange{Since: prevSince, Until: prevUntil}
	}

	return filters, nil
}

func (o *dashboardOptions) adAccounts() []*domain.AdAccount {
	accounts := make([]*domain.AdAccount, 0, len(o.accounts))
	seen := map[string]struct{}{}
	for _, raw := range o.accounts {
		id := strings.TrimPrefix(strings.TrimSpace(raw), "act_")
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		accounts = append(accounts, &domain.AdAccount{ExternalID: id, Name: id, Status: domain.AdAccountStatusActive})
	}
	return accounts
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return ExitCodeInput
	case errors.Is(err, domain.ErrMissingConfiguration):
		return ExitCodeConfig
	default:
		return ExitCodeAPI
	}
}
