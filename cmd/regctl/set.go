package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/types"
)

var setType string

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVarP(&setType, "type", "t", "REG_SZ", "Value type (REG_SZ, REG_DWORD, ...)")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <name> <data>",
		Short: "Write a registry value",
		Long: `The set command writes one value to a registry key. Use an empty
name ("") to write the key's default value.

Example:
  regctl set "HKCU\Software\Vendor" Version 2.0
  regctl set "HKCU\Software\Vendor" Retries 5 --type REG_DWORD
  regctl set "HKCU\Software\Vendor" "" fallback`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
}

func runSet(args []string) error {
	k, err := parseKey(args[0])
	if err != nil {
		return err
	}
	name, data := args[1], args[2]

	t := types.RegType(setType)
	if !t.Valid() {
		return fmt.Errorf("%w: %q", types.ErrBadValueType, setType)
	}

	ch := make(chan error, 1)
	k.Set(name, t, data, func(err error) { ch <- err })
	if err := <-ch; err != nil {
		return fmt.Errorf("writing %q to %s: %w", name, k.Path(), err)
	}
	printInfo("Set %s\\%s = %s (%s)\n", k.Path(), name, data, t)
	return nil
}
