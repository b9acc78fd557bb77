// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the proposal-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/proposal-engine/internal/secrets"
	"github.com/pdiddy/proposal-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the proposal-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "proposal-engine",
	Short: "Generate Indonesian thesis proposals from Google Scholar references and LLM providers",
	Long: `proposal-engine builds "Perancangan Sistem Informasi" proposal documents.
It aggregates Google Scholar references through public CORS relays, compiles
a generation prompt, dispatches it to an LLM provider (Gemini, Groq, Claude,
or OpenRouter/DeepSeek), and merges the result into a fixed-field draft with
local persistence.

Each pipeline stage is a subcommand: search runs reference aggregation only,
generate runs the full session, draft and history manage saved work, and
render assembles the Markdown print view.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q", level)
		}
		log.SetLevel(parsed)

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./proposal-engine.yaml or ~/.config/proposal-engine/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("db", "", "database file (default: ./proposal-engine.db)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("proposal-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "proposal-engine"))
		}
	}

	viper.SetEnvPrefix("PROPOSAL_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the stage configuration from defaults, the
// config file, and loaded secrets, in that precedence order.
func pipelineConfig() types.PipelineConfig {
	cfg := types.DefaultPipelineConfig()

	if v := viper.GetDuration("relay.timeout"); v > 0 {
		cfg.Relay.Timeout = v
	}
	if v := viper.GetString("search.api_key"); v != "" {
		cfg.Search.APIKey = v
	}
	if v := viper.GetInt("search.max_references"); v > 0 {
		cfg.Search.MaxReferences = v
	}
	if v := viper.GetDuration("search.query_delay"); v > 0 {
		cfg.Search.QueryDelay = v
	}
	if v := viper.GetString("provider.name"); v != "" {
		cfg.Provider.Name = v
	}
	if v := viper.GetString("provider.model"); v != "" {
		cfg.Provider.Model = v
	}
	if v := viper.GetInt("provider.max_tokens"); v > 0 {
		cfg.Provider.MaxTokens = v
	}
	if v := viper.GetString("provider.referer"); v != "" {
		cfg.Provider.Referer = v
	}
	if v := viper.GetDuration("provider.timeout"); v > 0 {
		cfg.Provider.Timeout = v
	}
	if v := viper.GetString("store.path"); v != "" {
		cfg.Store.Path = v
	}
	if db, _ := rootCmd.PersistentFlags().GetString("db"); db != "" {
		cfg.Store.Path = db
	}

	// Secrets fill whatever the config file left empty.
	if cfg.Search.APIKey == "" {
		cfg.Search.APIKey = loadedSecrets[secrets.SerpAPIKeyFile]
	}
	cfg.Provider.Credentials = secrets.Credentials(loadedSecrets)

	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// formatTimestamp renders store timestamps for table output.
func formatTimestamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}
