package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/registry"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys <key>",
		Short: "List the direct subkeys of a registry key",
		Long: `The keys command lists the direct subkeys of a registry key.

Example:
  regctl keys "HKCU\Software"
  regctl keys "HKLM\Software\Microsoft" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
}

func runKeys(args []string) error {
	k, err := parseKey(args[0])
	if err != nil {
		return err
	}

	type result struct {
		keys []*registry.Key
		err  error
	}
	ch := make(chan result, 1)
	k.Keys(func(keys []*registry.Key, err error) {
		ch <- result{keys, err}
	})
	res := <-ch
	if res.err != nil {
		return fmt.Errorf("listing subkeys of %s: %w", k.Path(), res.err)
	}

	if jsonOut {
		paths := make([]string, len(res.keys))
		for i, child := range res.keys {
			paths[i] = child.Path()
		}
		return printJSON(paths)
	}

	for _, child := range res.keys {
		printInfo("%s\n", child.Path())
	}
	return nil
}
