package registry

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/joshuapare/regkit/pkg/types"
)

// segmentGen draws key path segments from the characters the construction
// pattern accepts.
var segmentGen = rapid.StringMatching(`[a-zA-Z0-9_ ]{1,12}`)

func genKeyPath(t *rapid.T) string {
	n := rapid.IntRange(0, 6).Draw(t, "depth")
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte('\\')
		b.WriteString(segmentGen.Draw(t, "segment"))
	}
	return b.String()
}

func TestPathRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		hive := rapid.SampledFrom(types.Hives).Draw(rt, "hive")
		keyPath := genKeyPath(rt)

		k, err := New(hive, keyPath, Options{})
		if err != nil {
			rt.Fatalf("constructing key for %q: %v", keyPath, err)
		}
		if got, want := k.Path(), string(hive)+keyPath; got != want {
			rt.Fatalf("Path() = %q, want %q", got, want)
		}
	})
}

func TestParentTruncationProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		hive := rapid.SampledFrom(types.Hives).Draw(rt, "hive")
		keyPath := genKeyPath(rt)

		k, err := New(hive, keyPath, Options{})
		if err != nil {
			rt.Fatalf("constructing key for %q: %v", keyPath, err)
		}

		p := k.Parent()
		if k.IsRoot() {
			if !p.IsRoot() {
				rt.Fatalf("root's parent must stay at the root, got %q", p.KeyPath())
			}
			return
		}

		i := strings.LastIndexByte(keyPath, '\\')
		if got, want := p.KeyPath(), keyPath[:i]; got != want {
			rt.Fatalf("Parent().KeyPath() = %q, want %q", got, want)
		}
		// Walking Parent() repeatedly always terminates at the root.
		steps := 0
		for cur := k; !cur.IsRoot(); cur = cur.Parent() {
			if steps++; steps > strings.Count(keyPath, `\`) {
				rt.Fatalf("parent chain longer than segment count")
			}
		}
	})
}
