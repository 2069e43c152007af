// Package regproc runs resolved reg.exe commands and reports a single
// Outcome per invocation. Stdout and stderr are drained fully before the
// completion function fires, and the completion function fires exactly
// once no matter which event (spawn failure, IO error, exit) ends the run.
package regproc

import (
	"io"
	"os/exec"
	"sync"

	"github.com/joshuapare/regkit/internal/logging"
	"github.com/joshuapare/regkit/internal/regcmd"
)

// Outcome carries everything one finished invocation produced.
// SpawnErr is set only when the process never started (or its pipes
// broke); in that case ExitCode and the buffers are meaningless.
type Outcome struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	SpawnErr error
}

// Run spawns the command described by spec and returns immediately.
// done is invoked exactly once, from a separate goroutine, when the
// process has exited and both output streams are fully captured, or when
// spawning failed.
func Run(spec regcmd.Spec, done func(Outcome)) {
	var once sync.Once
	report := func(o Outcome) { once.Do(func() { done(o) }) }

	cmd := command(spec)
	cmd.Stdin = nil

	stdout, stderr, err := openPipes(cmd)
	if err != nil {
		go report(Outcome{SpawnErr: err})
		return
	}

	if err := cmd.Start(); err != nil {
		logging.Debug("spawn failed", "path", spec.Path, "err", err)
		go report(Outcome{SpawnErr: err})
		return
	}
	logging.Debug("spawned", "verb", spec.Verb, "path", spec.Path, "args", spec.Args, "pid", cmd.Process.Pid)

	go func() {
		var (
			outBuf, errBuf []byte
			outErr, errErr error
			wg             sync.WaitGroup
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			outBuf, outErr = io.ReadAll(stdout)
		}()
		go func() {
			defer wg.Done()
			errBuf, errErr = io.ReadAll(stderr)
		}()
		// Both pipes must be drained before Wait closes them.
		wg.Wait()

		waitErr := cmd.Wait()

		code := 0
		if exit, ok := waitErr.(*exec.ExitError); ok {
			code = exit.ExitCode()
			waitErr = nil
		}
		if waitErr == nil && outErr != nil {
			waitErr = outErr
		}
		if waitErr == nil && errErr != nil {
			waitErr = errErr
		}
		if waitErr != nil {
			logging.Debug("run failed", "verb", spec.Verb, "err", waitErr)
			report(Outcome{SpawnErr: waitErr})
			return
		}

		logging.Debug("exited", "verb", spec.Verb, "code", code,
			"stdout_bytes", len(outBuf), "stderr_bytes", len(errBuf))
		report(Outcome{ExitCode: code, Stdout: outBuf, Stderr: errBuf})
	}()
}

// openPipes wires up both capture pipes. If the second pipe cannot be
// opened the first is closed again; the process never starts on this path,
// so Wait would never reclaim it.
func openPipes(cmd *exec.Cmd) (stdout, stderr io.ReadCloser, err error) {
	stdout, err = cmd.StdoutPipe()
	if err != nil {
		return nil, nil, err
	}
	stderr, err = cmd.StderrPipe()
	if err != nil {
		stdout.Close()
		return nil, nil, err
	}
	return stdout, stderr, nil
}
