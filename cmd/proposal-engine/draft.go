// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/proposal-engine/internal/proposal"
	"github.com/pdiddy/proposal-engine/internal/store"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Export or import the current draft as a JSON file",
}

var draftExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the current draft to a JSON file",
	Args:  cobra.ExactArgs(1),
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
		if err := proposal.WriteDraft(args[0], draft); err != nil {
			return err
		}
		fmt.Printf("Exported draft to %s\n", args[0])
		return nil
	},
}

var draftImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the current draft with a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := proposal.ReadDraft(args[0])
		if err != nil {
			return err
		}

		db, err := store.Open(pipelineConfig().Store)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.SaveDraft(draft); err != nil {
			return err
		}
		fmt.Printf("Imported draft %q\n", draft.Input.Title)
		return nil
	},
}

func init() {
	draftCmd.AddCommand(draftExportCmd, draftImportCmd)
	rootCmd.AddCommand(draftCmd)
}
