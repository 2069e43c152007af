package registry

import (
	"io"
	"regexp"
	"strings"

	"github.com/joshuapare/regkit/internal/logging"
	"github.com/joshuapare/regkit/internal/regcmd"
	"github.com/joshuapare/regkit/internal/regproc"
	"github.com/joshuapare/regkit/pkg/types"
)

// keyPathRe validates backslash-segmented key paths. The empty path is the
// hive root.
var keyPathRe = regexp.MustCompile(`^(\\[a-zA-Z0-9_\s]+)*$`)

// Options configures an optional host, registry view, and output encoding
// for a key descriptor.
type Options struct {
	// Host names a remote machine. Empty means the local registry.
	Host string

	// Arch selects the 32-bit or 64-bit registry view. Zero value lets
	// reg.exe pick its default.
	Arch types.Arch

	// UTF8 routes reg.exe output through console code page 65001. This is
	// the reliable way to read non-ASCII value data; it costs an extra
	// chcp.com process per operation.
	UTF8 bool
}

// runFunc is the process execution seam; tests substitute it to feed
// canned outcomes without spawning subprocesses.
type runFunc func(regcmd.Spec, func(regproc.Outcome))

// Key is an immutable descriptor of one registry key. All operations on it
// spawn an independent reg.exe process and deliver their result through a
// completion callback; the methods themselves return immediately.
type Key struct {
	host string
	hive types.Hive
	key  string
	arch types.Arch
	utf8 bool
	run  runFunc
}

// New constructs a key descriptor. The hive must be one of the five known
// hives, keyPath must be empty (hive root) or a backslash-segmented path
// like `\Software\Vendor`, and opts.Arch must be empty, x86, or x64.
// Violations fail construction; nothing is validated against the live
// registry until an operation runs.
func New(hive types.Hive, keyPath string, opts Options) (*Key, error) {
	if !hive.Valid() {
		return nil, types.ErrBadHive
	}
	if !keyPathRe.MatchString(keyPath) {
		return nil, types.ErrBadKeyPath
	}
	if !opts.Arch.Valid() {
		return nil, types.ErrBadArch
	}
	return &Key{
		host: opts.Host,
		hive: hive,
		key:  keyPath,
		arch: opts.Arch,
		utf8: opts.UTF8,
		run:  regproc.Run,
	}, nil
}

// Host returns the remote machine name, or "" for the local registry.
func (k *Key) Host() string { return k.host }

// Hive returns the registry hive.
func (k *Key) Hive() types.Hive { return k.hive }

// KeyPath returns the key path below the hive ("" for the hive root).
func (k *Key) KeyPath() string { return k.key }

// Arch returns the selected registry view.
func (k *Key) Arch() types.Arch { return k.arch }

// UTF8 reports whether operations run in UTF-8 output mode.
func (k *Key) UTF8() bool { return k.utf8 }

// IsRoot reports whether the descriptor names a hive root.
func (k *Key) IsRoot() bool { return k.key == "" }

// Path returns the full path argument passed to reg.exe:
// `\\host\` prefix when a host is set, then hive and key.
func (k *Key) Path() string {
	if k.host != "" {
		return `\\` + k.host + `\` + string(k.hive) + k.key
	}
	return string(k.hive) + k.key
}

// Parent returns a descriptor for the enclosing key, sharing host, hive,
// view, and encoding. The parent of a hive root is the root itself; use
// IsRoot to stop walking upward.
func (k *Key) Parent() *Key {
	key := ""
	if i := strings.LastIndex(k.key, `\`); i > 0 {
		key = k.key[:i]
	}
	return k.derive(key)
}

// derive allocates a sibling descriptor with a different key path. Paths
// coming back from reg.exe are taken as-is: the live registry permits
// characters the construction pattern does not.
func (k *Key) derive(keyPath string) *Key {
	return &Key{
		host: k.host,
		hive: k.hive,
		key:  keyPath,
		arch: k.arch,
		utf8: k.utf8,
		run:  k.run,
	}
}

// target bundles the descriptor fields the command builder needs.
func (k *Key) target() regcmd.Target {
	return regcmd.Target{Path: k.Path(), Arch: k.arch, UTF8: k.utf8}
}

// SetDebug switches process-wide diagnostic logging of spawns and exits.
// Output goes to w (os.Stderr when nil). Off by default.
func SetDebug(enabled bool, w io.Writer) {
	logging.Init(logging.Options{Enabled: enabled, Output: w})
}
