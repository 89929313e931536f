package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrig/namekit/rule"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	require.NoError(t, config.Validate())
	assert.Equal(t, "_", config.Naming.Separator)
	assert.Equal(t, []string{"descriptor", "side", "usage"}, config.Naming.Tokens)
	assert.Equal(t, 80, config.Naming.Global.MaxLength)

	t.Run("builds a working manager", func(t *testing.T) {
		manager, err := config.BuildManager()
		require.NoError(t, err)

		name, err := manager.BuildName(map[string]string{
			"descriptor": "upper_arm",
			"side":       "l",
			"usage":      "jnt",
		})
		require.NoError(t, err)
		assert.Equal(t, "upperArm_l_jnt", name)
		assert.True(t, manager.IsValid("arm_l_jnt"))
		assert.False(t, manager.IsValid("arm_x_jnt"))
	})
}

func TestParse(t *testing.T) {
	t.Run("custom convention", func(t *testing.T) {
		config, err := Parse([]byte(`
naming:
  separator: "-"
  tokens: [prefix, name]
  rules:
    name:
      type: regex
      pattern: "[a-z]+"
  global:
    max_length: 20
`))
		require.NoError(t, err)
		assert.Equal(t, "-", config.Naming.Separator)
		assert.Equal(t, []string{"prefix", "name"}, config.Naming.Tokens)

		manager, err := config.BuildManager()
		require.NoError(t, err)
		assert.True(t, manager.IsValid("abc-def"))
		assert.False(t, manager.IsValid("abc-DEF"))
	})

	t.Run("empty document yields the defaults", func(t *testing.T) {
		config, err := Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().Naming.Tokens, config.Naming.Tokens)
	})

	t.Run("declaring tokens replaces the default rules", func(t *testing.T) {
		config, err := Parse([]byte(`
naming:
  separator: "_"
  tokens: [alpha, beta]
`))
		require.NoError(t, err)
		assert.Empty(t, config.Naming.Rules)
	})

	t.Run("declared naming section must carry its separator", func(t *testing.T) {
		_, err := Parse([]byte("naming:\n  tokens: [alpha, beta]\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "naming.separator is required")
	})

	t.Run("declared naming section must carry its tokens", func(t *testing.T) {
		_, err := Parse([]byte("naming:\n  separator: \"-\"\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "naming.tokens")
	})

	t.Run("unknown top-level key is rejected", func(t *testing.T) {
		_, err := Parse([]byte("nameing:\n  separator: _\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	invalid := []struct {
		name string
		yaml string
	}{
		{
			"duplicate tokens",
			"naming:\n  separator: _\n  tokens: [a, a]\n",
		},
		{
			"empty token name",
			"naming:\n  separator: _\n  tokens: [a, \"\"]\n",
		},
		{
			"rule bound to undeclared token",
			"naming:\n  separator: _\n  tokens: [a]\n  rules:\n    b: {type: regex, pattern: x}\n",
		},
		{
			"unknown rule type",
			"naming:\n  separator: _\n  tokens: [a]\n  rules:\n    a: {type: fancy}\n",
		},
		{
			"regex rule without pattern",
			"naming:\n  separator: _\n  tokens: [a]\n  rules:\n    a: {type: regex}\n",
		},
		{
			"list rule without values",
			"naming:\n  separator: _\n  tokens: [a]\n  rules:\n    a: {type: list}\n",
		},
		{
			"from_enums with unknown source",
			"naming:\n  separator: _\n  tokens: [a]\n  rules:\n    a: {type: from_enums, sources: [Nope]}\n",
		},
		{
			"unknown normalizer name",
			"naming:\n  separator: _\n  tokens: [a]\n  normalizers:\n    a: nope\n",
		},
		{
			"normalizer bound to undeclared token",
			"naming:\n  separator: _\n  tokens: [a]\n  normalizers:\n    b: lower\n",
		},
		{
			"negative max length",
			"naming:\n  separator: _\n  tokens: [a]\n  global: {max_length: -1}\n",
		},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestBuildManagerInvalidPattern(t *testing.T) {
	config := DefaultConfig()
	config.Naming.Rules["descriptor"] = RuleConfig{Type: "regex", Pattern: "([unclosed"}

	_, err := config.BuildManager()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "namekit.yaml")

	original := DefaultConfig()
	original.Naming.Global.MaxLength = 64
	require.NoError(t, original.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, original.Naming.Tokens, loaded.Naming.Tokens)
	assert.Equal(t, 64, loaded.Naming.Global.MaxLength)
	assert.Equal(t, original.Naming.Rules, loaded.Naming.Rules)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRegisterRuleType(t *testing.T) {
	RegisterRuleType("always", func(rc RuleConfig) (rule.Rule, error) {
		return rule.NewList([]string{"only"}), nil
	})

	config, err := Parse([]byte(`
naming:
  separator: "_"
  tokens: [a]
  rules:
    a: {type: always}
`))
	require.NoError(t, err)

	manager, err := config.BuildManager()
	require.NoError(t, err)
	assert.True(t, manager.IsValid("only"))
	assert.False(t, manager.IsValid("other"))
}

func TestEnvOverrides(t *testing.T) {
	t.Run("separator", func(t *testing.T) {
		t.Setenv(EnvSeparator, "-")
		loader := NewLoader(nil)
		config, err := loader.applyEnvOverrides(DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, "-", config.Naming.Separator)
	})

	t.Run("tokens drop stale bindings", func(t *testing.T) {
		t.Setenv(EnvTokens, "descriptor, side")
		loader := NewLoader(nil)
		config, err := loader.applyEnvOverrides(DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, []string{"descriptor", "side"}, config.Naming.Tokens)
		assert.NotContains(t, config.Naming.Rules, "usage")
	})

	t.Run("side default", func(t *testing.T) {
		t.Setenv(EnvSideDefault, "l")
		loader := NewLoader(nil)
		config, err := loader.applyEnvOverrides(DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, "l", config.Rigging.SideDefault)
	})
}

func TestExplicitConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "namekit.yaml")
	require.NoError(t, DefaultConfig().SaveToFile(path))
	t.Setenv(EnvConfigPath, path)

	config, err := NewLoader(nil).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"descriptor", "side", "usage"}, config.Naming.Tokens)
}

func TestGlobalSingleton(t *testing.T) {
	ResetGlobal()
	t.Cleanup(ResetGlobal)

	first := Global()
	second := Global()
	assert.Same(t, first, second)

	t.Run("rule mutation is visible through every reference", func(t *testing.T) {
		require.NoError(t, first.AddRule("descriptor", rule.NewList([]string{"arm"})))
		assert.False(t, second.IsValid("leg_l_jnt"))
		assert.True(t, second.IsValid("arm_l_jnt"))
		require.NoError(t, first.RemoveRule("descriptor"))
	})
}

func TestInitGlobal(t *testing.T) {
	ResetGlobal()
	t.Cleanup(ResetGlobal)

	custom, err := DefaultConfig().BuildManager()
	require.NoError(t, err)

	InitGlobal(custom)
	assert.Same(t, custom, Global())
}
