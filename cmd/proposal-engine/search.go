// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdiddy/proposal-engine/internal/relay"
	"github.com/pdiddy/proposal-engine/internal/scholar"
	"github.com/pdiddy/proposal-engine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [judul]",
	Short: "Aggregate Google Scholar references for a proposal title",
	Long: `Search runs only the reference aggregation stage: it issues the query
battery for the title through the CORS relays, deduplicates and caps the
results, and prints them. A SerpAPI key must be configured in .secrets/
or the config file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("metode", "Waterfall", "development methodology used in the query battery")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("out", "", "save queries and results as a YAML query file")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	title := strings.Join(args, " ")
	method := types.Methodology(mustString(cmd, "metode"))

	aggregator := &scholar.Aggregator{
		Fetcher: relay.NewClient(cfg.Relay),
		Config:  cfg.Search,
		OnQuery: func(i, n int, query string) {
			fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", i+1, n, query)
		},
	}

	refs, err := aggregator.Aggregate(cmd.Context(), title, method)
	if err != nil {
		return err
	}

	if out := mustString(cmd, "out"); out != "" {
		if err := scholar.WriteQueryFile(out, title, method, refs); err != nil {
			return err
		}
		log.WithField("path", out).Info("query file saved")
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(refs)
	}

	if len(refs) == 0 {
		fmt.Println("No references found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-50s  %-25s  %-6s  %s\n", "No", "Judul", "Penulis", "Tahun", "Dikutip")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for _, r := range refs {
		title := r.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		author := r.Author
		if len(author) > 25 {
			author = author[:22] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-50s  %-25s  %-6s  %d\n", r.Index, title, author, r.Year, r.CitedBy)
	}
	fmt.Fprintf(os.Stdout, "\n%d references\n", len(refs))
	return nil
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
