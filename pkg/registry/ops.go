package registry

import (
	"errors"

	"github.com/joshuapare/regkit/internal/regcmd"
	"github.com/joshuapare/regkit/internal/regparse"
	"github.com/joshuapare/regkit/internal/regproc"
	"github.com/joshuapare/regkit/pkg/types"
)

// Every operation below follows the same shape: validate synchronously
// (programmer errors panic before any process is spawned), build the
// argument vector, spawn exactly one reg.exe process, and deliver exactly
// one completion. The receiver is returned immediately for chaining; the
// return value carries no information about the eventual outcome.

// Values lists all values of the key, in registry enumeration order.
func (k *Key) Values(done func([]types.Value, error)) *Key {
	mustCallback(done == nil)
	spec := mustBuild(regcmd.Query(k.target()))
	k.run(spec, func(o regproc.Outcome) {
		if err := k.outcomeErr(spec, o); err != nil {
			done(nil, err)
			return
		}
		lines := regparse.SkipHeader(regparse.Lines(regparse.Decode(o.Stdout, k.utf8)))
		items := regparse.Items(lines)
		vals := make([]types.Value, len(items))
		for i, it := range items {
			vals[i] = k.value(it.Name, it.Type, it.Data)
		}
		done(vals, nil)
	})
	return k
}

// Keys lists the direct subkeys of the key as new descriptors sharing the
// key's host, view, and encoding. The key itself, which reg.exe echoes in
// its own listing, is excluded.
func (k *Key) Keys(done func([]*Key, error)) *Key {
	mustCallback(done == nil)
	spec := mustBuild(regcmd.Query(k.target()))
	k.run(spec, func(o regproc.Outcome) {
		if err := k.outcomeErr(spec, o); err != nil {
			done(nil, err)
			return
		}
		lines := regparse.Lines(regparse.Decode(o.Stdout, k.utf8))
		paths := regparse.SubkeyPaths(lines, k.key)
		children := make([]*Key, len(paths))
		for i, p := range paths {
			children[i] = k.derive(p)
		}
		done(children, nil)
	})
	return k
}

// Get reads a single value. An empty name reads the key's default value.
// A nil record with a nil error means reg.exe succeeded but printed
// nothing parseable; a missing value surfaces as an *types.ExitError with
// code 1.
func (k *Key) Get(name string, done func(*types.Value, error)) *Key {
	mustCallback(done == nil)
	spec := mustBuild(regcmd.QueryValue(k.target(), name))
	k.run(spec, func(o regproc.Outcome) {
		if err := k.outcomeErr(spec, o); err != nil {
			done(nil, err)
			return
		}
		line, ok := regparse.LastLine(regparse.Lines(regparse.Decode(o.Stdout, k.utf8)))
		if !ok {
			done(nil, nil)
			return
		}
		item, ok := regparse.ParseItem(line)
		if !ok {
			done(nil, nil)
			return
		}
		// The requested name wins over the printed token: for /ve reg.exe
		// prints a locale-dependent "(Default)" placeholder.
		v := k.value(name, item.Type, item.Data)
		done(&v, nil)
	})
	return k
}

// Set writes a value. An empty name writes the key's default value. The
// type must be one of the seven recognized tokens; anything else panics
// before a process is spawned.
func (k *Key) Set(name string, t types.RegType, data string, done func(error)) *Key {
	mustCallback(done == nil)
	if !t.Valid() {
		panic("registry: " + types.ErrBadValueType.Msg + ": " + t.String())
	}
	spec := mustBuild(regcmd.Add(k.target(), name, t, data))
	k.runErrOnly(spec, done)
	return k
}

// Remove deletes a value. An empty name deletes the key's default value.
func (k *Key) Remove(name string, done func(error)) *Key {
	mustCallback(done == nil)
	spec := mustBuild(regcmd.DeleteValue(k.target(), name))
	k.runErrOnly(spec, done)
	return k
}

// Clear deletes all values of the key, keeping its subkeys.
func (k *Key) Clear(done func(error)) *Key {
	mustCallback(done == nil)
	spec := mustBuild(regcmd.DeleteAllValues(k.target()))
	k.runErrOnly(spec, done)
	return k
}

// Destroy deletes the key and everything below it.
func (k *Key) Destroy(done func(error)) *Key {
	mustCallback(done == nil)
	spec := mustBuild(regcmd.DeleteKey(k.target()))
	k.runErrOnly(spec, done)
	return k
}

// Create creates the key. reg.exe treats an existing key as a no-op.
func (k *Key) Create(done func(error)) *Key {
	mustCallback(done == nil)
	spec := mustBuild(regcmd.AddKey(k.target()))
	k.runErrOnly(spec, done)
	return k
}

// KeyExists reports whether the key exists, mapping reg.exe's empirical
// "exit code 1" convention to a negative result instead of an error.
func (k *Key) KeyExists(done func(bool, error)) *Key {
	mustCallback(done == nil)
	return k.Values(func(_ []types.Value, err error) {
		done(existence(err))
	})
}

// ValueExists reports whether the named value exists on the key, using
// the same exit-code-1 convention as KeyExists.
func (k *Key) ValueExists(name string, done func(bool, error)) *Key {
	mustCallback(done == nil)
	return k.Get(name, func(item *types.Value, err error) {
		exists, err := existence(err)
		done(exists && item != nil, err)
	})
}

// runErrOnly executes spec for operations whose only payload is an error.
func (k *Key) runErrOnly(spec regcmd.Spec, done func(error)) {
	k.run(spec, func(o regproc.Outcome) {
		done(k.outcomeErr(spec, o))
	})
}

// outcomeErr maps a process outcome to the error the caller sees: the
// platform error unchanged for spawn failures, a typed ExitError for
// non-zero exits, nil otherwise.
func (k *Key) outcomeErr(spec regcmd.Spec, o regproc.Outcome) error {
	if o.SpawnErr != nil {
		return o.SpawnErr
	}
	if o.ExitCode != 0 {
		return &types.ExitError{
			Cmd:    spec.Verb,
			Code:   o.ExitCode,
			Stdout: regparse.Decode(o.Stdout, k.utf8),
			Stderr: regparse.Decode(o.Stderr, k.utf8),
		}
	}
	return nil
}

// value attaches the key's identity to a parsed item.
func (k *Key) value(name string, t types.RegType, data string) types.Value {
	return types.Value{
		Host: k.host,
		Hive: k.hive,
		Key:  k.key,
		Name: name,
		Type: t,
		Data: data,
		Arch: k.arch,
	}
}

// existence reinterprets a read-operation error for the existence checks:
// exit code 1 means "does not exist", anything else is a genuine failure.
func existence(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	var exit *types.ExitError
	if errors.As(err, &exit) && exit.NotFound() {
		return false, nil
	}
	return false, err
}

// mustCallback panics when an operation is issued without a completion
// callback. Results only travel through the callback, so a nil callback is
// always a programming error.
func mustCallback(isNil bool) {
	if isNil {
		panic("registry: nil completion callback")
	}
}

// mustBuild asserts command construction succeeded. Descriptor fields are
// validated at New and the value type at Set, so a builder error here is a
// broken invariant, not a runtime condition.
func mustBuild(spec regcmd.Spec, err error) regcmd.Spec {
	if err != nil {
		panic("registry: " + err.Error())
	}
	return spec
}
