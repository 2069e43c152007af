// Package types defines the shared vocabulary of regkit: hive and view
// identifiers, the seven registry value type tokens reg.exe understands,
// value records, and the typed error taxonomy operations report through.
//
// Everything here is plain data. Process execution lives in
// internal/regproc, output parsing in internal/regparse, and the public
// operation surface in pkg/registry.
package types
