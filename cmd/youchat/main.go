// cmd/youchat/main.go
package main

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/youchat-dev/youchat-go/internal/youchat"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $HOME/.config/youchat/config.yaml)")
	rootCmd.PersistentFlags().StringP("model", "m", string(youchat.DefaultModel), "AI model to query")
	rootCmd.PersistentFlags().String("chat-mode", string(youchat.DefaultChatMode), "Chat mode: custom, research, or default")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	_ = viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	_ = viper.BindPFlag("chat_mode", rootCmd.PersistentFlags().Lookup("chat-mode"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	askCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the final answer, without live streaming")

	rootCmd.AddCommand(askCmd, modelsCmd, serveCmd)
}

// initConfig layers an optional config file and YOUCHAT_* environment
// variables under the flags; flags win.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "youchat"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("YOUCHAT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("Using config file", "path", viper.ConfigFileUsed())
	}
}
