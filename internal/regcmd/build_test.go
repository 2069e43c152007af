package regcmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regkit/pkg/types"
)

const testPath = `HKCU\Software\Vendor`

func TestQuery(t *testing.T) {
	spec, err := Query(Target{Path: testPath})
	require.NoError(t, err)
	assert.Equal(t, VerbQuery, spec.Verb)
	assert.False(t, spec.Shell)
	assert.Equal(t, []string{"QUERY", testPath}, spec.Args)
}

func TestQueryValue(t *testing.T) {
	spec, err := QueryValue(Target{Path: testPath}, "InstallDir")
	require.NoError(t, err)
	assert.Equal(t, []string{"QUERY", testPath, "/v", "InstallDir"}, spec.Args)

	spec, err = QueryValue(Target{Path: testPath}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"QUERY", testPath, "/ve"}, spec.Args)
}

func TestAdd(t *testing.T) {
	spec, err := Add(Target{Path: testPath}, "Version", types.REG_SZ, "1.0")
	require.NoError(t, err)
	assert.Equal(t, VerbAdd, spec.Verb)
	assert.Equal(t,
		[]string{"ADD", testPath, "/v", "Version", "/t", "REG_SZ", "/d", "1.0", "/f"},
		spec.Args)

	spec, err = Add(Target{Path: testPath}, "", types.REG_DWORD, "42")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"ADD", testPath, "/ve", "/t", "REG_DWORD", "/d", "42", "/f"},
		spec.Args)
}

func TestAddRejectsUnknownType(t *testing.T) {
	_, err := Add(Target{Path: testPath}, "Version", types.RegType("REG_LINK"), "x")
	assert.ErrorIs(t, err, types.ErrBadValueType)
}

func TestDeleteVariants(t *testing.T) {
	spec, err := DeleteValue(Target{Path: testPath}, "Version")
	require.NoError(t, err)
	assert.Equal(t, []string{"DELETE", testPath, "/f", "/v", "Version"}, spec.Args)

	spec, err = DeleteValue(Target{Path: testPath}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"DELETE", testPath, "/f", "/ve"}, spec.Args)

	spec, err = DeleteAllValues(Target{Path: testPath})
	require.NoError(t, err)
	assert.Equal(t, []string{"DELETE", testPath, "/f", "/va"}, spec.Args)

	spec, err = DeleteKey(Target{Path: testPath})
	require.NoError(t, err)
	assert.Equal(t, []string{"DELETE", testPath, "/f"}, spec.Args)
}

func TestArchFlagOrdering(t *testing.T) {
	spec, err := Query(Target{Path: testPath, Arch: types.ArchX86})
	require.NoError(t, err)
	assert.Equal(t, []string{"QUERY", testPath, "/reg:32"}, spec.Args)

	spec, err = Add(Target{Path: testPath, Arch: types.ArchX64}, "V", types.REG_SZ, "d")
	require.NoError(t, err)
	assert.Equal(t, "/reg:64", spec.Args[len(spec.Args)-1],
		"view switch must come after /f")
}

func TestArchRejected(t *testing.T) {
	_, err := Query(Target{Path: testPath, Arch: types.Arch("arm64")})
	assert.ErrorIs(t, err, types.ErrBadArch)
}

func TestUTF8Pipeline(t *testing.T) {
	spec, err := Query(Target{Path: testPath, UTF8: true})
	require.NoError(t, err)
	assert.True(t, spec.Shell)
	assert.Empty(t, spec.Args)
	assert.Contains(t, spec.Path, UTF8CodePage+" | ")
	assert.Contains(t, spec.Path, `"`+testPath+`"`, "path argument must be quoted")
}

func TestUTF8PipelineQuotesShellMetacharacters(t *testing.T) {
	spec, err := Add(Target{Path: testPath, UTF8: true}, "Cmd", types.REG_SZ, `a&b|c^d%e`)
	require.NoError(t, err)
	require.True(t, spec.Shell)
	assert.Contains(t, spec.Path, `"a&b|c^d%e"`,
		"cmd.exe metacharacters in data must not reach the shell unquoted")
	assert.NotContains(t, spec.Path, ` a&b|c^d%e `)
}

func TestUTF8PipelineQuotesSpacedData(t *testing.T) {
	spec, err := Add(Target{Path: testPath, UTF8: true}, "Name With Space", types.REG_SZ, "hello world")
	require.NoError(t, err)
	require.True(t, spec.Shell)
	assert.Contains(t, spec.Path, `"Name With Space"`)
	assert.Contains(t, spec.Path, `"hello world"`)
	assert.False(t, strings.HasSuffix(spec.Path, " "))
}
