package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCreateCmd())
}

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <key>",
		Short: "Create a registry key",
		Long: `The create command creates a registry key. Creating a key that
already exists is a no-op.

Example:
  regctl create "HKCU\Software\Vendor\Settings"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args)
		},
	}
}

func runCreate(args []string) error {
	k, err := parseKey(args[0])
	if err != nil {
		return err
	}

	ch := make(chan error, 1)
	k.Create(func(err error) { ch <- err })
	if err := <-ch; err != nil {
		return fmt.Errorf("creating %s: %w", k.Path(), err)
	}
	printInfo("Created %s\n", k.Path())
	return nil
}
