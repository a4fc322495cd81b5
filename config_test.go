package jsonvalue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, int64(DefaultMaxJSONSize), config.MaxJSONSize)
	assert.Equal(t, DefaultMaxNestingDepth, config.MaxNestingDepth)
	assert.False(t, config.EscapeHTML)
	assert.False(t, config.EnableMetrics)
	assert.Equal(t, DefaultMetricsNamespace, config.MetricsNamespace)
	require.NoError(t, ValidateConfig(config))
}

func TestValidateConfig(t *testing.T) {
	t.Run("FillsDefaults", func(t *testing.T) {
		config := &Config{MaxNestingDepth: 7}
		require.NoError(t, ValidateConfig(config))

		assert.Equal(t, int64(DefaultMaxJSONSize), config.MaxJSONSize)
		assert.Equal(t, 7, config.MaxNestingDepth)
		assert.Equal(t, DefaultMetricsNamespace, config.MetricsNamespace)
	})

	tests := []struct {
		name   string
		config *Config
	}{
		{"nil", nil},
		{"negative size", &Config{MaxJSONSize: -1}},
		{"negative depth", &Config{MaxNestingDepth: -1}},
		{"size above cap", &Config{MaxJSONSize: MaxAllowedJSONSize + 1}},
		{"depth above cap", &Config{MaxNestingDepth: MaxAllowedNestingDepth + 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, ValidateConfig(tt.config), ErrInvalidConfig)
		})
	}
}

func TestConfigPresets(t *testing.T) {
	secure := HighSecurityConfig()
	require.NoError(t, ValidateConfig(secure))
	assert.Less(t, secure.MaxJSONSize, int64(DefaultMaxJSONSize))
	assert.Less(t, secure.MaxNestingDepth, DefaultMaxNestingDepth)
	assert.True(t, secure.EscapeHTML)

	large := LargeDataConfig()
	require.NoError(t, ValidateConfig(large))
	assert.Equal(t, int64(MaxAllowedJSONSize), large.MaxJSONSize)
	assert.Greater(t, large.MaxNestingDepth, DefaultMaxNestingDepth)
}

func TestConfigClone(t *testing.T) {
	config := DefaultConfig()
	clone := config.Clone()
	clone.MaxNestingDepth = 3

	assert.Equal(t, DefaultMaxNestingDepth, config.MaxNestingDepth)
	assert.Nil(t, (*Config)(nil).Clone())
}

func TestParseConfig(t *testing.T) {
	t.Run("Fields", func(t *testing.T) {
		config, err := ParseConfig([]byte(`
max_json_size: 4096
max_nesting_depth: 12
escape_html: true
enable_metrics: true
metrics_namespace: orders
`))
		require.NoError(t, err)
		assert.Equal(t, &Config{
			MaxJSONSize:      4096,
			MaxNestingDepth:  12,
			EscapeHTML:       true,
			EnableMetrics:    true,
			MetricsNamespace: "orders",
		}, config)
	})

	t.Run("Defaults", func(t *testing.T) {
		config, err := ParseConfig([]byte("enable_metrics: true\n"))
		require.NoError(t, err)
		assert.Equal(t, int64(DefaultMaxJSONSize), config.MaxJSONSize)
		assert.Equal(t, DefaultMaxNestingDepth, config.MaxNestingDepth)
		assert.True(t, config.EnableMetrics)
	})

	t.Run("EmptyDocument", func(t *testing.T) {
		config, err := ParseConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("UnknownField", func(t *testing.T) {
		_, err := ParseConfig([]byte("max_depth: 3\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("BadValue", func(t *testing.T) {
		_, err := ParseConfig([]byte("max_nesting_depth: deep\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := ParseConfig([]byte("max_nesting_depth: -4\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsonvalue.yml")
	require.NoError(t, os.WriteFile(path, []byte("max_nesting_depth: 9\n"), 0o600))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9, config.MaxNestingDepth)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}
