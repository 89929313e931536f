package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrig/namekit/config"
)

// runCommand executes the CLI against an isolated config file and returns
// combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "namekit.yaml")
	require.NoError(t, config.DefaultConfig().SaveToFile(path))

	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"--config", path}, args...))

	err := cmd.Execute()
	return buf.String(), err
}

func TestBuildCommand(t *testing.T) {
	out, err := runCommand(t, "build", "descriptor=upper_arm", "side=l", "usage=jnt")
	require.NoError(t, err)
	assert.Equal(t, "upperArm_l_jnt\n", out)
}

func TestBuildCommandInvalidValue(t *testing.T) {
	_, err := runCommand(t, "build", "side=x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid value 'x' for token 'side'.")
}

func TestBuildCommandMalformedArg(t *testing.T) {
	_, err := runCommand(t, "build", "descriptor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token=value")
}

func TestCheckCommand(t *testing.T) {
	t.Run("valid names exit zero", func(t *testing.T) {
		out, err := runCommand(t, "check", "arm_l_jnt", "spine_c_ctl")
		require.NoError(t, err)
		assert.Contains(t, out, "arm_l_jnt")
	})

	t.Run("invalid name exits non-zero with messages", func(t *testing.T) {
		out, err := runCommand(t, "check", "arm_x_jnt")
		require.Error(t, err)
		assert.Contains(t, out, "Invalid value 'x' for token 'side'.")
		assert.Contains(t, err.Error(), "1 of 1 names invalid")
	})

	t.Run("quiet hides valid names", func(t *testing.T) {
		out, err := runCommand(t, "check", "--quiet", "arm_l_jnt")
		require.NoError(t, err)
		assert.NotContains(t, out, "arm_l_jnt")
	})
}

func TestParseCommand(t *testing.T) {
	out, err := runCommand(t, "parse", "arm_l_jnt")
	require.NoError(t, err)
	assert.Equal(t, "descriptor: arm\nside: l\nusage: jnt\n", out)

	out, err = runCommand(t, "parse", "arm_l_jnt", "--token", "side")
	require.NoError(t, err)
	assert.Equal(t, "l\n", out)

	_, err = runCommand(t, "parse", "arm_l_jnt", "--token", "flavor")
	assert.Error(t, err)
}

func TestUpdateCommand(t *testing.T) {
	out, err := runCommand(t, "update", "arm_l_jnt", "side=r")
	require.NoError(t, err)
	assert.Equal(t, "arm_r_jnt\n", out)
}

func TestResolveCommand(t *testing.T) {
	t.Run("string passthrough", func(t *testing.T) {
		out, err := runCommand(t, "resolve", "anything_at_all")
		require.NoError(t, err)
		assert.Equal(t, "anything_at_all\n", out)
	})

	t.Run("assignments build", func(t *testing.T) {
		out, err := runCommand(t, "resolve", "descriptor=arm", "side=l")
		require.NoError(t, err)
		assert.Equal(t, "arm_l\n", out)
	})

	t.Run("positional values build", func(t *testing.T) {
		out, err := runCommand(t, "resolve", "arm", "l", "jnt")
		require.NoError(t, err)
		assert.Equal(t, "arm_l_jnt\n", out)
	})
}

func TestMirrorCommand(t *testing.T) {
	out, err := runCommand(t, "mirror", "arm_l_jnt")
	require.NoError(t, err)
	assert.Equal(t, "arm_r_jnt\n", out)
}

func TestTokensCommand(t *testing.T) {
	out, err := runCommand(t, "tokens")
	require.NoError(t, err)
	assert.Contains(t, out, `separator: "_"`)
	assert.Contains(t, out, "- descriptor")
	assert.Contains(t, out, "normalizer=side")
}

func TestInitConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"init-config", path})
	require.NoError(t, cmd.Execute())

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"descriptor", "side", "usage"}, cfg.Naming.Tokens)

	t.Run("refuses to overwrite without --force", func(t *testing.T) {
		cmd := NewRootCommand()
		cmd.SetOut(buf)
		cmd.SetErr(buf)
		cmd.SetArgs([]string{"init-config", path})
		assert.Error(t, cmd.Execute())
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}
