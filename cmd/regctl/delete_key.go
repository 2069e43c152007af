package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteKeyValuesOnly bool

func init() {
	cmd := newDeleteKeyCmd()
	cmd.Flags().BoolVar(&deleteKeyValuesOnly, "values-only", false,
		"Delete all values but keep the key and its subkeys")
	rootCmd.AddCommand(cmd)
}

func newDeleteKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-key <key>",
		Short: "Delete a registry key and everything below it",
		Long: `The delete-key command deletes a registry key including all of its
values and subkeys. With --values-only, only the key's values are removed
and the key itself stays.

Example:
  regctl delete-key "HKCU\Software\Vendor\Stale"
  regctl delete-key "HKCU\Software\Vendor" --values-only`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteKey(args)
		},
	}
}

func runDeleteKey(args []string) error {
	k, err := parseKey(args[0])
	if err != nil {
		return err
	}

	ch := make(chan error, 1)
	if deleteKeyValuesOnly {
		k.Clear(func(err error) { ch <- err })
	} else {
		k.Destroy(func(err error) { ch <- err })
	}
	if err := <-ch; err != nil {
		return fmt.Errorf("deleting %s: %w", k.Path(), err)
	}
	printInfo("Deleted %s\n", k.Path())
	return nil
}
