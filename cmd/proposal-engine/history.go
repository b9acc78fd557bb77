// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/proposal-engine/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage generation history snapshots (bounded to the 10 most recent)",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List history snapshots, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.Open(pipelineConfig().Store)
		if err != nil {
			return err
		}
		defer db.Close()

		entries, err := db.ListHistory()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("History is empty.")
			return nil
		}

		fmt.Fprintf(os.Stdout, "%-4s  %-16s  %s\n", "ID", "Disimpan", "Judul")
		fmt.Fprintln(os.Stdout, strings.Repeat("-", 70))
		for _, e := range entries {
			title := e.Title
			if title == "" {
				title = "(tanpa judul)"
			}
			fmt.Fprintf(os.Stdout, "%-4d  %-16s  %s\n", e.ID, formatTimestamp(e.SavedAt), title)
		}
		return nil
	},
}

var historySaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Snapshot the current draft into the history",
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
		id, err := db.SaveHistory(draft)
		if err != nil {
			return err
		}
		fmt.Printf("Saved snapshot %d\n", id)
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Restore a snapshot as the current draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseHistoryID(args[0])
		if err != nil {
			return err
		}

		db, err := store.Open(pipelineConfig().Store)
		if err != nil {
			return err
		}
		defer db.Close()

		entry, err := db.History(id)
		if err != nil {
			return err
		}
		if err := db.SaveDraft(entry.Draft); err != nil {
			return err
		}
		fmt.Printf("Restored snapshot %d (%q, saved %s)\n",
			entry.ID, entry.Title, formatTimestamp(entry.SavedAt))
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseHistoryID(args[0])
		if err != nil {
			return err
		}

		db, err := store.Open(pipelineConfig().Store)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.DeleteHistory(id); err != nil {
			return err
		}
		fmt.Printf("Deleted snapshot %d\n", id)
		return nil
	},
}

func parseHistoryID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid history id %q", arg)
	}
	return id, nil
}

func init() {
	historyCmd.AddCommand(historyListCmd, historySaveCmd, historyShowCmd, historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}
