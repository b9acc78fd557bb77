// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/proposal-engine/internal/render"
	"github.com/pdiddy/proposal-engine/internal/store"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Assemble the current draft into the Markdown print view",
	Long: `Render writes the full proposal document as Markdown: cover, chapters,
Mermaid diagram blocks, the schedule table, and the lampiran sections.
The output goes to stdout unless --out is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.Open(pipelineConfig().Store)
		if err != nil {
			return err
		}
		defer db.Close()

		draft, err := db.LoadDraft()
		if err != nil {
			return err
		}
		doc := render.Document(draft)

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Rendered to %s\n", out)
			return nil
		}
		fmt.Print(doc)
		return nil
	},
}

func init() {
	renderCmd.Flags().String("out", "", "write the document to a file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}
