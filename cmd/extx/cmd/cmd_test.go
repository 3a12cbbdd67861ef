package cmd

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/extx/core/error"
	"github.com/msto63/extx/core/errors"
)

const permissionTOML = `
[[enums]]
name  = "Permission"
flags = true

  [[enums.members]]
  name  = "None"
  value = 0

  [[enums.members]]
  name  = "Read"
  value = 1

  [[enums.members]]
  name  = "Write"
  value = 2

  [[enums.members]]
  name  = "Execute"
  value = 4

  [[enums.members]]
  name  = "All"
  value = 7
  label = "Full Access"

[[enums]]
name = "color"

  [[enums.members]]
  name  = "Red"
  value = 1

  [[enums.members]]
  name  = "Green"
  value = 2
`

const statusYAML = `
enums:
  - name: status
    members:
      - {name: Active, value: 1, label: "Is Active"}
      - {name: Disabled, value: 2}
`

func testFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/enums.toml", []byte(permissionTOML), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/enums.yaml", []byte(statusYAML), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/data.txt", []byte("abc"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/etc/extx.toml", []byte(`
[enum]
catalog   = "/enums.toml"
delimiter = "|"

[log]
level = "error"
`), 0o644))
	return fs
}

// execute runs the root command with fresh flag state and returns stdout.
func execute(t *testing.T, fs afero.Fs, stdin string, args ...string) (string, error) {
	t.Helper()

	appFs = fs
	cfgFile, catalogFile, verbose = "", "", false
	parseSeparators, describeDelimiter, hashFile = "", "", ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func codeOf(t *testing.T, err error) string {
	t.Helper()
	var mdwErr *mdwerror.Error
	require.True(t, stderrors.As(err, &mdwErr), "expected *mdwerror.Error, got %T", err)
	return string(mdwErr.Code())
}

func TestParse(t *testing.T) {
	fs := testFs(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"builtin by alias", []string{"parse", "log.level", "WARNING"}, "3\twarn\n"},
		{"builtin by label", []string{"parse", "hash.algorithm", "sha-256"}, "2\tSHA-256\n"},
		{"flags combined", []string{"--catalog", "/enums.toml", "parse", "permission", "read,", "write"}, "3\tRead Write\n"},
		{"composite collapses", []string{"--catalog", "/enums.toml", "parse", "Permission", "Read|Write|Execute"}, "7\tFull Access\n"},
		{"label with separator", []string{"--catalog", "/enums.toml", "parse", "permission", "full access"}, "7\tFull Access\n"},
		{"unknown tokens skipped", []string{"--catalog", "/enums.toml", "parse", "permission", "read", "admin"}, "1\tRead\n"},
		{"plain takes first match", []string{"--catalog", "/enums.toml", "parse", "color", "green", "red"}, "2\tGreen\n"},
		{"custom separators", []string{"--catalog", "/enums.toml", "parse", "-s", ";", "permission", "Read;Execute"}, "5\tRead Execute\n"},
		{"yaml catalog", []string{"--catalog", "/enums.yaml", "parse", "status", "is active"}, "1\tIs Active\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, fs, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestParseErrors(t *testing.T) {
	fs := testFs(t)

	_, err := execute(t, fs, "", "parse", "nosuch", "x")
	require.Error(t, err)
	assert.Equal(t, errors.CodeEnumxNotEnum, codeOf(t, err))

	_, err = execute(t, fs, "", "--catalog", "/enums.toml", "parse", "permission", "admin")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, codeOf(t, err))

	_, err = execute(t, fs, "", "--catalog", "/missing.toml", "parse", "permission", "read")
	assert.Error(t, err)

	_, err = execute(t, fs, "", "parse", "log.level")
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	fs := testFs(t)

	out, err := execute(t, fs, "", "--catalog", "/enums.toml", "describe", "permission", "5")
	require.NoError(t, err)
	assert.Equal(t, "Read Execute\n", out)

	out, err = execute(t, fs, "", "--catalog", "/enums.toml", "describe", "-d", ", ", "permission", "6")
	require.NoError(t, err)
	assert.Equal(t, "Write, Execute\n", out)

	out, err = execute(t, fs, "", "--catalog", "/enums.toml", "describe", "permission", "0")
	require.NoError(t, err)
	assert.Equal(t, "None\n", out)

	out, err = execute(t, fs, "", "--catalog", "/enums.toml", "describe", "color", "9")
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)

	out, err = execute(t, fs, "", "describe", "log.format", "2")
	require.NoError(t, err)
	assert.Equal(t, "Console\n", out)

	_, err = execute(t, fs, "", "describe", "log.level", "three")
	require.Error(t, err)
	assert.Equal(t, errors.CodeNumberxInvalidNumber, codeOf(t, err))

	out, err = execute(t, fs, "", "describe", "log.level", "--", "-3")
	require.NoError(t, err)
	assert.Equal(t, "-3\n", out)
}

func TestDescribeOutOfRange(t *testing.T) {
	fs := testFs(t)

	out, err := execute(t, fs, "", "describe", "hash.algorithm", "0")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))

	for _, value := range []string{"256", "257", "-1"} {
		_, err := execute(t, fs, "", "describe", "hash.algorithm", "--", value)
		require.Error(t, err, value)
		assert.Equal(t, errors.CodeOutOfRange, codeOf(t, err), value)
	}
}

func TestConfigFile(t *testing.T) {
	fs := testFs(t)

	out, err := execute(t, fs, "", "--config", "/etc/extx.toml", "describe", "permission", "3")
	require.NoError(t, err)
	assert.Equal(t, "Read|Write\n", out)

	// The flag wins over the configured catalog.
	out, err = execute(t, fs, "", "--config", "/etc/extx.toml", "--catalog", "/enums.yaml", "describe", "status", "2")
	require.NoError(t, err)
	assert.Equal(t, "Disabled\n", out)
}

func TestInvalidConfig(t *testing.T) {
	fs := testFs(t)
	require.NoError(t, afero.WriteFile(fs, "/etc/bad.toml", []byte(`
[enum]
catalog   = "/enums.ini"
delimiter = ""
`), 0o644))

	_, err := execute(t, fs, "", "--config", "/etc/bad.toml", "list")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
	assert.Contains(t, err.Error(), "enum.catalog does not match")
	assert.Contains(t, err.Error(), "enum.delimiter must be at least 1")
}

func TestEnvironmentOverride(t *testing.T) {
	fs := testFs(t)
	t.Setenv("EXTX_ENUM_CATALOG", "/enums.toml")
	t.Setenv("EXTX_ENUM_DELIMITER", " + ")

	out, err := execute(t, fs, "", "describe", "permission", "3")
	require.NoError(t, err)
	assert.Equal(t, "Read + Write\n", out)
}

func TestList(t *testing.T) {
	fs := testFs(t)

	out, err := execute(t, fs, "", "--catalog", "/enums.toml", "list")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Permission", "color",
		"config.format", "hash.algorithm", "log.format", "log.level",
	}, strings.Fields(out))

	out, err = execute(t, fs, "", "--catalog", "/enums.toml", "list", "permission")
	require.NoError(t, err)
	assert.Contains(t, out, "permission (flags)")
	for _, want := range []string{"NAME", "VALUE", "LABEL", "Execute", "Full Access"} {
		assert.Contains(t, out, want)
	}

	out, err = execute(t, fs, "", "list", "hash.algorithm")
	require.NoError(t, err)
	assert.NotContains(t, out, "(flags)")
	assert.Contains(t, out, "xxHash64")

	_, err = execute(t, fs, "", "list", "nosuch")
	assert.Error(t, err)
}

func TestHash(t *testing.T) {
	fs := testFs(t)

	out, err := execute(t, fs, "", "hash", "sha256", "abc")
	require.NoError(t, err)
	assert.Equal(t, "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD\n", out)

	out, err = execute(t, fs, "abc", "hash", "MD5")
	require.NoError(t, err)
	assert.Equal(t, "900150983CD24FB0D6963F7D28E17F72\n", out)

	out, err = execute(t, fs, "", "hash", "xxhash", "--file", "/data.txt")
	require.NoError(t, err)
	assert.Equal(t, "44BC2CF5AD770999\n", out)

	_, err = execute(t, fs, "", "hash", "crc32", "abc")
	require.Error(t, err)
	assert.Equal(t, errors.CodeHashxUnknownAlgorithm, codeOf(t, err))

	_, err = execute(t, fs, "", "hash", "sha1", "--file", "/nope.txt")
	require.Error(t, err)
	assert.Equal(t, errors.CodeHashxReadFailed, codeOf(t, err))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "extx v"+Version+"\n"))
}
