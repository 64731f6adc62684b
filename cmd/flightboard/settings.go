package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ijuttt/flightboard/internal/settings"
)

func newSettingsCmd(fv *flagValues) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and change persisted display settings",
	}

	open := func(cmd *cobra.Command) (*settings.File, error) {
		c, err := loadConfig(cmd, fv)
		if err != nil {
			return nil, err
		}
		return settings.OpenFile(c.SettingsPath())
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every stored setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open(cmd)
			if err != nil {
				return err
			}
			for _, k := range store.Keys() {
				v, _ := store.Get(k)
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", k, v)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open(cmd)
			if err != nil {
				return err
			}
			v, ok := store.Get(args[0])
			if !ok {
				return fmt.Errorf("setting %q is not set", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a setting; true and false are stored as booleans",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open(cmd)
			if err != nil {
				return err
			}
			if err := store.Set(parseValue(args[1]), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", args[0], store.Path())
			return nil
		},
	})

	return cmd
}

// parseValue keeps booleans typed so the board can read them back.
func parseValue(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
