// Package regcmd turns high-level registry operations into exact reg.exe
// invocations: verb, argument vector, resolved executable path, and the
// chcp code-page pipeline when UTF-8 output is requested.
package regcmd

import (
	"strings"

	"github.com/joshuapare/regkit/pkg/types"
)

// reg.exe verbs.
const (
	VerbQuery  = "QUERY"
	VerbAdd    = "ADD"
	VerbDelete = "DELETE"
)

// UTF8CodePage is the console code page switched to in UTF-8 mode.
const UTF8CodePage = "65001"

// Spec is a fully resolved command ready for the process runner.
type Spec struct {
	Verb string   // reg.exe verb, used in error reporting
	Path string   // executable path, or the full shell command line when Shell is set
	Args []string // argument vector (empty when Shell is set)
	// Shell marks a chcp|reg pipeline that must run through the platform
	// shell instead of being spawned directly.
	Shell bool
}

// Target describes the key a command operates on.
type Target struct {
	Path string     // registry path argument, e.g. \\host\HKLM\Software\Vendor
	Arch types.Arch // optional registry view
	UTF8 bool       // route output through code page 65001
}

// Query builds the listing query used by values and keys operations.
func Query(t Target) (Spec, error) {
	return finalize(t, VerbQuery, []string{VerbQuery, t.Path})
}

// QueryValue builds the single-value query used by get.
// An empty name selects the key's default value (/ve).
func QueryValue(t Target, name string) (Spec, error) {
	args := append([]string{VerbQuery, t.Path}, nameSelector(name)...)
	return finalize(t, VerbQuery, args)
}

// Add builds the value write used by set. The type token must be one of
// the seven recognized tokens; anything else fails before spawning.
func Add(t Target, name string, typ types.RegType, data string) (Spec, error) {
	if !typ.Valid() {
		return Spec{}, types.ErrBadValueType
	}
	args := append([]string{VerbAdd, t.Path}, nameSelector(name)...)
	args = append(args, "/t", typ.String(), "/d", data, "/f")
	return finalize(t, VerbAdd, args)
}

// AddKey builds the key creation used by create. reg.exe itself treats an
// existing key as a no-op under /f.
func AddKey(t Target) (Spec, error) {
	return finalize(t, VerbAdd, []string{VerbAdd, t.Path, "/f"})
}

// DeleteValue builds the value removal used by remove.
// An empty name removes the key's default value.
func DeleteValue(t Target, name string) (Spec, error) {
	args := append([]string{VerbDelete, t.Path, "/f"}, nameSelector(name)...)
	return finalize(t, VerbDelete, args)
}

// DeleteAllValues builds the /va removal used by clear: every value under
// the key is deleted, subkeys are kept.
func DeleteAllValues(t Target) (Spec, error) {
	return finalize(t, VerbDelete, []string{VerbDelete, t.Path, "/f", "/va"})
}

// DeleteKey builds the recursive key removal used by destroy.
func DeleteKey(t Target) (Spec, error) {
	return finalize(t, VerbDelete, []string{VerbDelete, t.Path, "/f"})
}

// nameSelector returns the /v or /ve switch for a value name.
func nameSelector(name string) []string {
	if name == "" {
		return []string{"/ve"}
	}
	return []string{"/v", name}
}

// finalize appends the registry view switch and resolves the executable.
// In UTF-8 mode the result is a shell pipeline that flips the console code
// page before reg.exe runs; the path argument is quoted because it is
// interpolated into the command line.
func finalize(t Target, verb string, args []string) (Spec, error) {
	flag, err := t.Arch.Flag()
	if err != nil {
		return Spec{}, err
	}
	if flag != "" {
		args = append(args, flag)
	}

	if !t.UTF8 {
		return Spec{Verb: verb, Path: regExePath(), Args: args}, nil
	}

	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = quoteArg(a)
	}
	// args[1] is always the registry path.
	quoted[1] = `"` + strings.ReplaceAll(args[1], `"`, `\"`) + `"`

	line := chcpPath() + " " + UTF8CodePage + " | " + regExePath() + " " + strings.Join(quoted, " ")
	return Spec{Verb: verb, Path: line, Shell: true}, nil
}

// quoteArg quotes a single argument for shell interpolation when needed:
// on whitespace, quotes, and the cmd.exe metacharacters that would
// otherwise change the pipeline's meaning.
func quoteArg(a string) string {
	if !strings.ContainsAny(a, " \t\"&|^%<>()") {
		return a
	}
	return `"` + strings.ReplaceAll(a, `"`, `\"`) + `"`
}
