package main

import (
	"fmt"
	"os"

	"github.com/estla/skillserver/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "api",
	Short: "Kakao skill server answering from the estla HTML support corpus",
	// serve is the default
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

// flagKeys maps persistent flags to their settings keys.
var flagKeys = map[string]string{
	"listen-addr":  "listen_addr",
	"content-root": "content_root",
	"external-url": "external_url",
	"log-level":    "log_level",
	"production":   "production",
	"admin-token":  "admin_token",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("listen-addr", "", "server listen address (default "+config.ServerListenAddr+" or :$PORT)")
	rootCmd.PersistentFlags().String("content-root", "", "directory holding the category folders (default "+config.DefaultContentRoot+")")
	rootCmd.PersistentFlags().String("external-url", "", "public base URL; enables the keep-alive pinger")
	rootCmd.PersistentFlags().String("log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("production", false, "log as JSON")
	rootCmd.PersistentFlags().String("admin-token", "", "bearer token for /api/reload and /status")
}

// loadSettings merges flags (highest), environment, config file and defaults.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	v := config.NewViper(cfgFile)
	if err := bindFlags(v, cmd); err != nil {
		return config.Settings{}, err
	}
	return config.Load(v)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
