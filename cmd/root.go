package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/lymphiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "lymphiz",
	Short: "Quiz de drenagem linfática dos órgãos abdominais",
	Long: `Lymphiz treina a drenagem linfática dos órgãos abdominais no terminal.

Sem subcomando, abre a interface interativa com os modos Próxima etapa,
Caso clínico e Sequência, além do explorador de rotas.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// ExecuteContext runs the root command with ctx, cancelled on interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("dataset", "", "Path to a JSON or YAML drainage dataset (overrides LYMPHIZ_DATASET)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed for reproducible questions (overrides LYMPHIZ_SEED)")
	rootCmd.PersistentFlags().String("env-file", config.DefaultDotEnv, "Dotenv file read before the environment; must exist when given")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(organsCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
