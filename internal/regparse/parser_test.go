package regparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regkit/pkg/types"
)

func TestLines(t *testing.T) {
	out := "\r\nHKEY_CURRENT_USER\\Software\r\n    Version    REG_SZ    1.0\r\n\r\n"
	lines := Lines(out)
	require.Len(t, lines, 2)
	assert.Equal(t, `HKEY_CURRENT_USER\Software`, lines[0])
	assert.Equal(t, "Version    REG_SZ    1.0", lines[1])
}

func TestSkipHeader(t *testing.T) {
	assert.Empty(t, SkipHeader(nil))
	assert.Empty(t, SkipHeader([]string{"header"}))
	assert.Equal(t, []string{"a", "b"}, SkipHeader([]string{"header", "a", "b"}))
}

func TestLastLine(t *testing.T) {
	_, ok := LastLine(nil)
	assert.False(t, ok)

	ln, ok := LastLine([]string{"header", "item"})
	require.True(t, ok)
	assert.Equal(t, "item", ln)
}

func TestParseItem(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Item
		ok   bool
	}{
		{
			name: "string value",
			line: "ValueName    REG_SZ    hello",
			want: Item{Name: "ValueName", Type: types.REG_SZ, Data: "hello"},
			ok:   true,
		},
		{
			name: "data with internal spaces",
			line: `InstallDir    REG_EXPAND_SZ    %ProgramFiles%\My App`,
			want: Item{Name: "InstallDir", Type: types.REG_EXPAND_SZ, Data: `%ProgramFiles%\My App`},
			ok:   true,
		},
		{
			name: "dword",
			line: "Enabled    REG_DWORD    0x1",
			want: Item{Name: "Enabled", Type: types.REG_DWORD, Data: "0x1"},
			ok:   true,
		},
		{
			name: "name with spaces",
			line: "My Value Name    REG_QWORD    0x2a",
			want: Item{Name: "My Value Name", Type: types.REG_QWORD, Data: "0x2a"},
			ok:   true,
		},
		{
			name: "binary",
			line: "Blob    REG_BINARY    0102FEFF",
			want: Item{Name: "Blob", Type: types.REG_BINARY, Data: "0102FEFF"},
			ok:   true,
		},
		{
			name: "default value token",
			line: "(Default)    REG_SZ    something",
			want: Item{Name: "(Default)", Type: types.REG_SZ, Data: "something"},
			ok:   true,
		},
		{
			name: "unknown type token dropped",
			line: "Linked    REG_LINK    target",
			ok:   false,
		},
		{
			name: "header path line",
			line: `HKEY_CURRENT_USER\Software\Vendor`,
			ok:   false,
		},
		{
			name: "noise",
			line: "End of search: 3 match(es) found.",
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseItem(tt.line)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestItemsSkipsNoise(t *testing.T) {
	lines := []string{
		"Version    REG_SZ    1.0",
		"some version dependent noise",
		"Count    REG_DWORD    0x5",
	}
	items := Items(lines)
	require.Len(t, items, 2)
	assert.Equal(t, "Version", items[0].Name)
	assert.Equal(t, "Count", items[1].Name)
}

func TestGetStyleParse(t *testing.T) {
	out := "HKEY_CURRENT_USER\\Software\r\nValueName    REG_SZ    hello\r\n"
	ln, ok := LastLine(Lines(out))
	require.True(t, ok)
	item, ok := ParseItem(ln)
	require.True(t, ok)
	assert.Equal(t, "ValueName", item.Name)
	assert.Equal(t, types.REG_SZ, item.Type)
	assert.Equal(t, "hello", item.Data)
}

func TestSubkeyPathsFiltersSelf(t *testing.T) {
	self := `\Software\Vendor`
	lines := []string{
		`HKEY_CURRENT_USER\Software\Vendor`,
		`HKEY_CURRENT_USER\Software\Vendor\Alpha`,
		`HKEY_CURRENT_USER\Software\Vendor\Beta`,
	}
	keys := SubkeyPaths(lines, self)
	assert.Equal(t, []string{`\Software\Vendor\Alpha`, `\Software\Vendor\Beta`}, keys)
}

func TestSubkeyPathsAllHives(t *testing.T) {
	lines := []string{
		`HKEY_LOCAL_MACHINE\A`,
		`HKEY_CLASSES_ROOT\B`,
		`HKEY_USERS\C`,
		`HKEY_CURRENT_CONFIG\D`,
		`not a key line`,
	}
	keys := SubkeyPaths(lines, "")
	assert.Equal(t, []string{`\A`, `\B`, `\C`, `\D`}, keys)
}

func TestSubkeyPathsRootListing(t *testing.T) {
	// Querying the hive root echoes the bare hive name; that line parses
	// to an empty key path and must be filtered as self.
	lines := []string{
		`HKEY_CURRENT_USER`,
		`HKEY_CURRENT_USER\Software`,
	}
	keys := SubkeyPaths(lines, "")
	assert.Equal(t, []string{`\Software`}, keys)
}
