package cli

import (
	"os"

	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	envFile    string
	port       string
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config.yaml"
	}

	cmd := &cobra.Command{
		Use:           "quizserver",
		Short:         "Themed quizzes and personality analyses backed by Gemini",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before the config")
	cmd.PersistentFlags().StringVar(&opts.port, "port", "", "port to listen on (overrides config)")
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newThemesCmd())
	return cmd
}
