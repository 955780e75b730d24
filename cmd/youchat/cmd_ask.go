package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/youchat-dev/youchat-go/internal/youchat"
)

func runAsk(cmd *cobra.Command, args []string) {
	model, err := youchat.ParseModel(viper.GetString("model"))
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	mode, err := youchat.ParseChatMode(viper.GetString("chat_mode"))
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	// Ctrl-C stops the stream instead of killing the process mid-write.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []youchat.Option
	if u := viper.GetString("base_url"); u != "" {
		opts = append(opts, youchat.WithBaseURL(u))
	}
	client := youchat.New(opts...)

	res, err := client.SendRequest(ctx, youchat.Config{
		Model:    model,
		ChatMode: mode,
		Query:    strings.Join(args, " "),
		Verbose:  !quiet,
	})
	if err != nil {
		fmt.Println()
		log.Fatalf("Error: %v", err)
	}

	if quiet {
		fmt.Println(res.Answer)
	} else {
		// The live echo carries no trailing newline.
		fmt.Println()
	}

	if q, ok := res.Query["query"].(string); ok && q != "" {
		fmt.Printf("\nInterpreted query: %s\n", q)
	}
	if len(res.RelatedSearches) > 0 {
		fmt.Println("\nRelated searches:")
		for i, rs := range res.RelatedSearches {
			fmt.Printf("%d. %v\n", i+1, rs)
		}
	}
}
