package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDeleteValueCmd())
}

func newDeleteValueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-value <key> [name]",
		Short: "Delete one value from a registry key",
		Long: `The delete-value command deletes one value from a registry key.
Omitting the name deletes the key's default value.

Example:
  regctl delete-value "HKCU\Software\Vendor" Version
  regctl delete-value "HKCU\Software\Vendor"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteValue(args)
		},
	}
}

func runDeleteValue(args []string) error {
	k, err := parseKey(args[0])
	if err != nil {
		return err
	}
	name := ""
	if len(args) == 2 {
		name = args[1]
	}

	ch := make(chan error, 1)
	k.Remove(name, func(err error) { ch <- err })
	if err := <-ch; err != nil {
		return fmt.Errorf("deleting %q from %s: %w", name, k.Path(), err)
	}
	printInfo("Deleted %s\\%s\n", k.Path(), name)
	return nil
}
