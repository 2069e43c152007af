package types

import (
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindConfig   ErrKind = iota // invalid hive/key/arch/type, caught before spawning
	ErrKindSpawn                   // reg.exe could not be started
	ErrKindTool                    // reg.exe ran and reported a non-zero exit code
	ErrKindNotFound                // missing key/value
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrBadHive indicates a hive token outside the five known hives.
	ErrBadHive = &Error{Kind: ErrKindConfig, Msg: "illegal hive specified"}
	// ErrBadKeyPath indicates a key path that is not backslash-segmented.
	ErrBadKeyPath = &Error{Kind: ErrKindConfig, Msg: "illegal key specified"}
	// ErrBadArch indicates an architecture other than x86/x64.
	ErrBadArch = &Error{Kind: ErrKindConfig, Msg: "illegal architecture specified (use x86 or x64)"}
	// ErrBadValueType indicates a value type outside the seven known tokens.
	ErrBadValueType = &Error{Kind: ErrKindConfig, Msg: "illegal type specified"}
	// ErrNotFound indicates a missing key or value.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
)

// ExitError reports a reg.exe invocation that started but exited non-zero.
// Code carries the subprocess exit code verbatim.
type ExitError struct {
	Cmd    string // verb that failed ("QUERY", "ADD", "DELETE")
	Code   int    // subprocess exit code
	Stdout string // captured standard output, decoded
	Stderr string // captured standard error, decoded
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s command exited with code %d", e.Cmd, e.Code)
	if out := strings.TrimSpace(e.Stdout); out != "" {
		msg += "\n" + out
	}
	if errOut := strings.TrimSpace(e.Stderr); errOut != "" {
		msg += "\n" + errOut
	}
	return msg
}

// NotFound reports whether the exit code means the queried key or value
// does not exist. Exit code 1 is an empirical property of reg.exe across
// observed Windows versions, not a documented guarantee.
func (e *ExitError) NotFound() bool { return e.Code == 1 }

// -----------------------------------------------------------------------------
// Hives
// -----------------------------------------------------------------------------

// Hive identifies a registry root by its short name, as passed to reg.exe.
type Hive string

const (
	HKLM Hive = "HKLM" // HKEY_LOCAL_MACHINE
	HKCU Hive = "HKCU" // HKEY_CURRENT_USER
	HKCR Hive = "HKCR" // HKEY_CLASSES_ROOT
	HKU  Hive = "HKU"  // HKEY_USERS
	HKCC Hive = "HKCC" // HKEY_CURRENT_CONFIG
)

// Hives lists the five known hives in a stable order.
var Hives = []Hive{HKLM, HKCU, HKCR, HKU, HKCC}

// Valid reports whether h is one of the five known hives.
func (h Hive) Valid() bool {
	switch h {
	case HKLM, HKCU, HKCR, HKU, HKCC:
		return true
	}
	return false
}

// LongName returns the full hive name as printed by reg.exe
// (e.g. "HKEY_LOCAL_MACHINE"), or "" for an unknown hive.
func (h Hive) LongName() string {
	switch h {
	case HKLM:
		return "HKEY_LOCAL_MACHINE"
	case HKCU:
		return "HKEY_CURRENT_USER"
	case HKCR:
		return "HKEY_CLASSES_ROOT"
	case HKU:
		return "HKEY_USERS"
	case HKCC:
		return "HKEY_CURRENT_CONFIG"
	}
	return ""
}

func (h Hive) String() string { return string(h) }

// ParseHive maps a short or long hive name to its Hive.
// Returns ErrBadHive for anything else.
func ParseHive(s string) (Hive, error) {
	switch strings.ToUpper(s) {
	case "HKLM", "HKEY_LOCAL_MACHINE":
		return HKLM, nil
	case "HKCU", "HKEY_CURRENT_USER":
		return HKCU, nil
	case "HKCR", "HKEY_CLASSES_ROOT":
		return HKCR, nil
	case "HKU", "HKEY_USERS":
		return HKU, nil
	case "HKCC", "HKEY_CURRENT_CONFIG":
		return HKCC, nil
	}
	return "", ErrBadHive
}

// -----------------------------------------------------------------------------
// Registry views (WOW64 redirection)
// -----------------------------------------------------------------------------

// Arch selects the 32-bit or 64-bit registry view via reg.exe's /reg: switch.
// The zero value means "no explicit view".
type Arch string

const (
	ArchNone Arch = ""
	ArchX86  Arch = "x86"
	ArchX64  Arch = "x64"
)

// Valid reports whether a is empty, x86, or x64.
func (a Arch) Valid() bool {
	return a == ArchNone || a == ArchX86 || a == ArchX64
}

// Flag returns the reg.exe switch for the view ("/reg:32" or "/reg:64"),
// or "" when no view is selected. Returns ErrBadArch for any other value.
func (a Arch) Flag() (string, error) {
	switch a {
	case ArchNone:
		return "", nil
	case ArchX86:
		return "/reg:32", nil
	case ArchX64:
		return "/reg:64", nil
	}
	return "", ErrBadArch
}

func (a Arch) String() string { return string(a) }

// -----------------------------------------------------------------------------
// Value types
// -----------------------------------------------------------------------------

// RegType is a registry value type token as spelled by reg.exe.
// Only the seven tokens reg.exe prints in QUERY output are recognized;
// anything else fails validation before a process is spawned.
type RegType string

const (
	REG_SZ        RegType = "REG_SZ"
	REG_MULTI_SZ  RegType = "REG_MULTI_SZ"
	REG_EXPAND_SZ RegType = "REG_EXPAND_SZ"
	REG_DWORD     RegType = "REG_DWORD"
	REG_QWORD     RegType = "REG_QWORD"
	REG_BINARY    RegType = "REG_BINARY"
	REG_NONE      RegType = "REG_NONE"
)

// RegTypes lists the recognized value type tokens in a stable order.
var RegTypes = []RegType{
	REG_SZ,
	REG_MULTI_SZ,
	REG_EXPAND_SZ,
	REG_DWORD,
	REG_QWORD,
	REG_BINARY,
	REG_NONE,
}

// Valid reports whether t is one of the seven recognized type tokens.
func (t RegType) Valid() bool {
	switch t {
	case REG_SZ, REG_MULTI_SZ, REG_EXPAND_SZ, REG_DWORD, REG_QWORD, REG_BINARY, REG_NONE:
		return true
	}
	return false
}

func (t RegType) String() string { return string(t) }

// -----------------------------------------------------------------------------
// Value records
// -----------------------------------------------------------------------------

// Value is one registry value as parsed from reg.exe QUERY output.
// Data holds the raw textual representation reg.exe printed; no decoding
// to numeric or binary forms is attempted at this layer.
type Value struct {
	Host string  // remote machine ("" for the local registry)
	Hive Hive    // owning hive
	Key  string  // owning key path below the hive
	Name string  // value name ("" for the default value)
	Type RegType // one of the seven recognized tokens
	Data string  // raw data text, verbatim from the tool
	Arch Arch    // registry view the value was read through
}
