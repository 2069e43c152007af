package regparse

const (
	// ============================================================================
	// Line Endings
	// ============================================================================

	// CRLF is the Windows line ending (carriage return + line feed)
	CRLF = "\r\n"

	// CR is the carriage return character
	CR = "\r"

	// LF is the line feed character
	LF = "\n"

	// ============================================================================
	// Output Line Patterns
	// ============================================================================

	// valueTypeAlternatives is the alternation of the seven type tokens
	// reg.exe prints in QUERY output.
	valueTypeAlternatives = "REG_SZ|REG_MULTI_SZ|REG_EXPAND_SZ|REG_DWORD|REG_QWORD|REG_BINARY|REG_NONE"

	// valueLinePattern matches one value listing line:
	// <name> <TYPE> <data>. The data capture starts at the first
	// non-space character and is otherwise taken verbatim, so significant
	// trailing whitespace in string data survives.
	valueLinePattern = `^(.*)\s(` + valueTypeAlternatives + `)\s+([^\s].*)$`

	// subkeyLinePattern matches one subkey listing line: the full hive
	// name followed by the key path.
	subkeyLinePattern = `^(HKEY_LOCAL_MACHINE|HKEY_CURRENT_USER|HKEY_CLASSES_ROOT|HKEY_USERS|HKEY_CURRENT_CONFIG)(.*)$`
)
