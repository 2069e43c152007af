package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/registry"
	"github.com/joshuapare/regkit/pkg/types"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool

	// Key addressing flags
	hostFlag string
	archFlag string
	utf8Flag bool
)

var rootCmd = &cobra.Command{
	Use:   "regctl",
	Short: "Read and modify the live Windows registry via reg.exe",
	Long: `regctl drives the reg.exe command-line tool to enumerate, read,
write, and delete registry keys and values. Keys are addressed as
HIVE\path, e.g. "HKCU\Software\Vendor"; both short (HKLM) and long
(HKEY_LOCAL_MACHINE) hive names are accepted.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		registry.SetDebug(verbose && !quiet, os.Stderr)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&hostFlag, "host", "", "Remote machine name")
	rootCmd.PersistentFlags().StringVar(&archFlag, "arch", "", "Registry view: x86 or x64")
	rootCmd.PersistentFlags().BoolVar(&utf8Flag, "utf8", false, "Read output through code page 65001")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseKey builds a key descriptor from a HIVE\path argument plus the
// global addressing flags.
func parseKey(arg string) (*registry.Key, error) {
	hiveTok, keyPath, _ := strings.Cut(arg, `\`)
	hive, err := types.ParseHive(hiveTok)
	if err != nil {
		return nil, fmt.Errorf("parsing key %q: %w", arg, err)
	}
	if keyPath != "" {
		keyPath = `\` + strings.TrimSuffix(keyPath, `\`)
	}
	return registry.New(hive, keyPath, registry.Options{
		Host: hostFlag,
		Arch: types.Arch(archFlag),
		UTF8: utf8Flag,
	})
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
