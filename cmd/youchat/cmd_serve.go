package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/youchat-dev/youchat-go/internal/config"
	"github.com/youchat-dev/youchat-go/internal/search"
	"github.com/youchat-dev/youchat-go/internal/server"
	"github.com/youchat-dev/youchat-go/internal/youchat"
)

func runServe(cmd *cobra.Command, args []string) {
	level := slog.LevelInfo
	if viper.GetBool("debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	client := youchat.New(
		youchat.WithBaseURL(cfg.YouChat.BaseURL),
		youchat.WithSafeSearch(cfg.YouChat.SafeSearch),
		youchat.WithMarket(cfg.YouChat.Market),
	)

	searcher, err := search.New(client, cfg.YouChat)
	if err != nil {
		log.Fatalf("failed to create searcher: %v", err)
	}

	srv := server.New(*cfg, searcher)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
