package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-insights-api/internal/config"
)

const appName = "metricsctl"

type GlobalFlags struct {
	Output string
	Debug  bool
}

// Deps permite trocar a configuração e o acesso ao Graph API nos testes
type Deps struct {
	LoadConfig func() (*config.Config, error)
	NewFetcher func(cfg *config.Config, accessToken string) (meta.Fetcher, error)
}

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.NewConfig,
		NewFetcher: func(cfg *config.Config, accessToken string) (meta.Fetcher, error) {
			return meta.New(cfg, nil).ForToken(accessToken)
		},
	}
}

func Execute() error {
	return NewRootCommand(defaultDeps()).Execute()
}

func NewRootCommand(deps Deps) *cobra.Command {
	flags := &GlobalFlags{}

	cmd := &cobra.Command{
		Use:               appName,
		Short:             "Ferramentas operacionais da API de insights",
		Long:              "metricsctl calcula o dashboard direto no Graph API e prepara tokens para o banco.",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: validateGlobalFlags(flags),
	}

	cmd.PersistentFlags().StringVar(&flags.Output, "output", OutputJSON, "Formato de saída: json|yaml")
	cmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Habilita logs de depuração")

	cmd.AddCommand(newDashboardCommand(flags, deps))
	cmd.AddCommand(newEncryptTokenCommand(flags, deps))
	cmd.AddCommand(newIssueTokenCommand(flags, deps))

	return cmd
}

func validateGlobalFlags(flags *GlobalFlags) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		if flags.Debug {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}

		switch flags.Output {
		case OutputJSON, OutputYAML:
			return nil
		default:
			return WrapExit(ExitCodeInput, fmt.Errorf("valor inválido para --output %q; use json|yaml", flags.Output))
		}
	}
}
