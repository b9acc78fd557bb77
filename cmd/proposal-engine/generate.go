// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/proposal-engine/internal/provider"
	"github.com/pdiddy/proposal-engine/internal/relay"
	"github.com/pdiddy/proposal-engine/internal/scholar"
	"github.com/pdiddy/proposal-engine/internal/session"
	"github.com/pdiddy/proposal-engine/internal/store"
	"github.com/pdiddy/proposal-engine/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run a full generation session: references, prompt, provider, merge",
	Long: `Generate aggregates Google Scholar references for the proposal title,
compiles the generation prompt, dispatches it to the selected provider, and
merges the returned fields into the stored draft. The draft is only written
when the whole session succeeds.

Judul, masalah, and solusi are required. The provider credential is read
from .secrets/ or the config file.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("judul", "", "proposal title (required)")
	generateCmd.Flags().String("masalah", "", "observed problem (required)")
	generateCmd.Flags().String("solusi", "", "proposed solution (required)")
	generateCmd.Flags().String("metode", "Waterfall", "development methodology (Waterfall, Prototype, Agile, RAD)")
	generateCmd.Flags().String("instansi", "", "target institution (empty for a general topic)")
	generateCmd.Flags().String("lokasi", "", "locale of the proposal")
	generateCmd.Flags().String("narasumber", "", "interviewee")
	generateCmd.Flags().String("observasi", "", "what is observed on site")
	generateCmd.Flags().String("fitur", "", "main system features")
	generateCmd.Flags().String("pengguna", "", "system user roles")
	generateCmd.Flags().String("deskripsi-file", "", "file with the detailed system description")
	generateCmd.Flags().String("provider", "", "provider override (gemini, groq, claude, openrouter)")
	generateCmd.Flags().Bool("save-history", false, "snapshot the merged draft into the history")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	input, err := inputFromFlags(cmd)
	if err != nil {
		return err
	}
	if !input.Complete() {
		return session.ErrIncompleteInput
	}

	db, err := store.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer db.Close()

	// Provider precedence: --provider flag, config file, persisted preference.
	if name, _ := cmd.Flags().GetString("provider"); name != "" {
		cfg.Provider.Name = name
	} else if !viper.IsSet("provider.name") {
		if saved, err := db.Setting(store.SettingProvider); err == nil && saved != "" {
			cfg.Provider.Name = saved
		}
	}
	prov, err := provider.New(cfg.Provider)
	if err != nil {
		return err
	}

	aggregator := &scholar.Aggregator{
		Fetcher: relay.NewClient(cfg.Relay),
		Config:  cfg.Search,
		OnQuery: func(i, n int, query string) {
			log.WithFields(log.Fields{"query": query, "n": fmt.Sprintf("%d/%d", i+1, n)}).
				Debug("scholar query")
		},
	}

	ctrl := &session.Controller{
		Refs:     aggregator,
		Provider: prov,
		Store:    db,
		OnProgress: func(percent int, status string) {
			fmt.Fprintf(os.Stderr, "[%3d%%] %s\n", percent, status)
		},
	}

	draft, err := ctrl.Run(cmd.Context(), input)
	if err != nil {
		return err
	}

	filled := 0
	for _, v := range draft.Fields {
		if v != "" {
			filled++
		}
	}
	fmt.Printf("Generated %d of %d fields for %q via %s\n",
		filled, len(draft.Fields), draft.Input.Title, prov.Name())

	if save, _ := cmd.Flags().GetBool("save-history"); save {
		id, err := db.SaveHistory(draft)
		if err != nil {
			return err
		}
		fmt.Printf("Saved history snapshot %d\n", id)
	}
	return nil
}

// inputFromFlags builds the proposal input from the generate flags.
func inputFromFlags(cmd *cobra.Command) (types.ProposalInput, error) {
	get := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return strings.TrimSpace(v)
	}

	input := types.ProposalInput{
		Title:        get("judul"),
		Problem:      get("masalah"),
		Solution:     get("solusi"),
		Method:       types.Methodology(get("metode")),
		Organization: get("instansi"),
		Location:     get("lokasi"),
		Interviewee:  get("narasumber"),
		Observation:  get("observasi"),
		Features:     get("fitur"),
		Users:        get("pengguna"),
	}

	if path := get("deskripsi-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return input, fmt.Errorf("reading system description: %w", err)
		}
		input.SystemDescription = strings.TrimSpace(string(data))
	}
	return input, nil
}
