//go:build !windows

package regproc

import (
	"os/exec"

	"github.com/joshuapare/regkit/internal/regcmd"
)

// command builds the exec.Cmd for a spec. Off Windows, shell specs run
// through sh so the mock-tool pipeline works in tests.
func command(spec regcmd.Spec) *exec.Cmd {
	if !spec.Shell {
		return exec.Command(spec.Path, spec.Args...)
	}
	return exec.Command("/bin/sh", "-c", spec.Path)
}
