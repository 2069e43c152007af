package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/types"
)

var getShowType bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowType, "type", false, "Show type information")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key> [name]",
		Short: "Get a specific registry value",
		Long: `The get command retrieves one value from a registry key.
Omitting the name reads the key's default value.

Example:
  regctl get "HKCU\Software\Vendor" Version
  regctl get "HKCU\Software\Vendor"
  regctl get "HKLM\Software\Vendor" InstallDir --type`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
}

func runGet(args []string) error {
	k, err := parseKey(args[0])
	if err != nil {
		return err
	}
	name := ""
	if len(args) == 2 {
		name = args[1]
	}

	type result struct {
		item *types.Value
		err  error
	}
	ch := make(chan result, 1)
	k.Get(name, func(item *types.Value, err error) {
		ch <- result{item, err}
	})
	res := <-ch
	if res.err != nil {
		return fmt.Errorf("reading %q from %s: %w", name, k.Path(), res.err)
	}
	if res.item == nil {
		return fmt.Errorf("no parseable value in reg.exe output for %q", name)
	}

	if jsonOut {
		return printJSON(map[string]string{
			"name": res.item.Name,
			"type": res.item.Type.String(),
			"data": res.item.Data,
		})
	}
	if getShowType {
		printInfo("%s\t%s\n", res.item.Type, res.item.Data)
		return nil
	}
	printInfo("%s\n", res.item.Data)
	return nil
}
