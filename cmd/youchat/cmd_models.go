package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/youchat-dev/youchat-go/internal/youchat"
)

func runModels(cmd *cobra.Command, args []string) {
	defaultModel := viper.GetString("model")
	defaultMode := viper.GetString("chat_mode")

	fmt.Println("Models:")
	for _, m := range youchat.Models {
		if string(m) == defaultModel {
			fmt.Printf("  %s (default)\n", m)
			continue
		}
		fmt.Printf("  %s\n", m)
	}

	fmt.Println("\nChat modes:")
	for _, cm := range youchat.ChatModes {
		if string(cm) == defaultMode {
			fmt.Printf("  %s (default)\n", cm)
			continue
		}
		fmt.Printf("  %s\n", cm)
	}
}
