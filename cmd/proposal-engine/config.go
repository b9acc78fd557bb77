// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/pdiddy/proposal-engine/internal/provider"
	"github.com/pdiddy/proposal-engine/internal/store"
)

// settableKeys are the preferences persisted in the settings table.
var settableKeys = []string{store.SettingTheme, store.SettingProvider}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Get or set persisted preferences (theme, provider)",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a persisted preference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if !slices.Contains(settableKeys, key) {
			return fmt.Errorf("unknown setting %q (known: %v)", key, settableKeys)
		}

		db, err := store.Open(pipelineConfig().Store)
		if err != nil {
			return err
		}
		defer db.Close()

		value, err := db.Setting(key)
		if err != nil {
			return err
		}
		if value == "" {
			fmt.Printf("%s is not set\n", key)
			return nil
		}
		fmt.Println(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist a preference",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if !slices.Contains(settableKeys, key) {
			return fmt.Errorf("unknown setting %q (known: %v)", key, settableKeys)
		}
		if key == store.SettingProvider && !slices.Contains(provider.Names(), value) {
			return fmt.Errorf("unknown provider %q (known: %v)", value, provider.Names())
		}

		db, err := store.Open(pipelineConfig().Store)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.SetSetting(key, value); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
