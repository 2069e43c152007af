// Package registry provides read/write access to the live Windows
// registry by driving the reg.exe command-line tool as a subprocess and
// parsing its textual output into typed records.
//
// A Key is an immutable descriptor of one registry key:
//
//	k, err := registry.New(types.HKCU, `\Software\Vendor`, registry.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	k.Values(func(vals []types.Value, err error) {
//	    ...
//	})
//
// Operations return the key immediately so calls can be chained; each one
// spawns an independent reg.exe process and reports through its completion
// callback exactly once. No atomicity is promised across operations:
// concurrent writes to the same key interleave however the OS schedules
// them.
//
// Reading non-ASCII data reliably requires Options.UTF8, which switches
// the console code page to 65001 for each invocation.
package registry
