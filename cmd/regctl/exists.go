package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newKeyExistsCmd())
	rootCmd.AddCommand(newValueExistsCmd())
}

func newKeyExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key-exists <key>",
		Short: "Check whether a registry key exists",
		Long: `The key-exists command checks whether a registry key exists.
It prints true or false and exits 0 either way; a genuine failure
(e.g. access denied) exits non-zero.

Example:
  regctl key-exists "HKCU\Software\Vendor"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeyExists(args)
		},
	}
}

func runKeyExists(args []string) error {
	k, err := parseKey(args[0])
	if err != nil {
		return err
	}

	type result struct {
		exists bool
		err    error
	}
	ch := make(chan result, 1)
	k.KeyExists(func(exists bool, err error) { ch <- result{exists, err} })
	res := <-ch
	if res.err != nil {
		return fmt.Errorf("checking %s: %w", k.Path(), res.err)
	}
	printInfo("%t\n", res.exists)
	return nil
}

func newValueExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "value-exists <key> [name]",
		Short: "Check whether a registry value exists",
		Long: `The value-exists command checks whether a value exists on a
registry key. Omitting the name checks the key's default value.

Example:
  regctl value-exists "HKCU\Software\Vendor" Version`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValueExists(args)
		},
	}
}

func runValueExists(args []string) error {
	k, err := parseKey(args[0])
	if err != nil {
		return err
	}
	name := ""
	if len(args) == 2 {
		name = args[1]
	}

	type result struct {
		exists bool
		err    error
	}
	ch := make(chan result, 1)
	k.ValueExists(name, func(exists bool, err error) { ch <- result{exists, err} })
	res := <-ch
	if res.err != nil {
		return fmt.Errorf("checking %q on %s: %w", name, k.Path(), res.err)
	}
	printInfo("%t\n", res.exists)
	return nil
}
