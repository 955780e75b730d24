package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	quiet   bool

	rootCmd = &cobra.Command{
		Use:   "youchat",
		Short: "Query You.com's streaming conversational search from the terminal",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if viper.GetBool("debug") {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}

	askCmd = &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a question and stream the answer as it arrives",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAsk, // Defined in cmd_ask.go
	}

	modelsCmd = &cobra.Command{
		Use:   "models",
		Short: "List the models and chat modes the service accepts",
		Run:   runModels, // Defined in cmd_models.go
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP gateway around the streaming search client",
		Run:   runServe, // Defined in cmd_serve.go
	}
)
