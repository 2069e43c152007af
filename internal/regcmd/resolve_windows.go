//go:build windows

package regcmd

import (
	"path/filepath"

	"golang.org/x/sys/windows"
)

// systemDir returns the system32 directory of the running Windows install.
func systemDir() string {
	dir, err := windows.GetWindowsDirectory()
	if err != nil || dir == "" {
		dir = `C:\Windows`
	}
	return filepath.Join(dir, "system32")
}

func regExePath() string { return filepath.Join(systemDir(), "reg.exe") }

func chcpPath() string { return filepath.Join(systemDir(), "chcp.com") }
