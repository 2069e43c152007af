//go:build !windows

package regcmd

// Off Windows there is no real registry; the bare tokens are resolved via
// PATH so tests can substitute a mock tool.

func regExePath() string { return "REG" }

func chcpPath() string { return "CHCP" }
