//go:build windows

package regproc

import (
	"os/exec"
	"syscall"

	"github.com/joshuapare/regkit/internal/regcmd"
)

// command builds the exec.Cmd for a spec. Shell specs (the chcp pipeline)
// run through cmd.exe with a verbatim command line so the pipe and the
// already-quoted path argument survive Windows argument mangling.
func command(spec regcmd.Spec) *exec.Cmd {
	if !spec.Shell {
		return exec.Command(spec.Path, spec.Args...)
	}
	c := exec.Command("cmd.exe")
	c.SysProcAttr = &syscall.SysProcAttr{CmdLine: `/d /s /c "` + spec.Path + `"`}
	return c
}
