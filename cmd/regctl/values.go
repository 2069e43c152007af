package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newValuesCmd())
}

func newValuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "values <key>",
		Short: "List all values at a registry key",
		Long: `The values command lists all values at a registry key.

Example:
  regctl values "HKCU\Software\Vendor"
  regctl values "HKLM\Software" --arch x86
  regctl values "HKCU\Software\Vendor" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValues(args)
		},
	}
}

func runValues(args []string) error {
	k, err := parseKey(args[0])
	if err != nil {
		return err
	}

	type result struct {
		vals []types.Value
		err  error
	}
	ch := make(chan result, 1)
	k.Values(func(vals []types.Value, err error) {
		ch <- result{vals, err}
	})
	res := <-ch
	if res.err != nil {
		return fmt.Errorf("listing values of %s: %w", k.Path(), res.err)
	}

	if jsonOut {
		out := make(map[string]interface{}, len(res.vals))
		for _, v := range res.vals {
			name := v.Name
			if name == "" {
				name = "(Default)"
			}
			out[name] = map[string]string{"type": v.Type.String(), "data": v.Data}
		}
		return printJSON(out)
	}

	for _, v := range res.vals {
		printInfo("%s\t%s\t%s\n", v.Name, v.Type, v.Data)
	}
	return nil
}
