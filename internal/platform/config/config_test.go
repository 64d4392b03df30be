package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagUnmarshalText(t *testing.T) {
	tests := []struct {
		in   string
		want Flag
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{" yes ", true},
		{"On", true},
		{"0", false},
		{"false", false},
		{"", false},
		{"enabled", false},
		{"2", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f := !tt.want
			require.NoError(t, f.UnmarshalText([]byte(tt.in)))
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"ZE_ENABLE_PARAMETER_VALIDATION",
		"ZEL_ENABLE_BASIC_LEAK_CHECKER",
		"ZEL_VALIDATION_CHECKER_ORDER",
		"ZEL_LOADER_LOGGING_LEVEL",
		"ZEL_OTEL_ENDPOINT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.False(t, bool(cfg.Validation.Parameter))
	assert.False(t, bool(cfg.Validation.Leak))
	assert.Empty(t, cfg.Validation.Order)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, bool(cfg.Telemetry.Enabled))
	assert.Empty(t, cfg.Telemetry.Endpoint)
	assert.Equal(t, ":9464", cfg.Server.Addr)
}

func TestFromEnvReadsCheckerSettings(t *testing.T) {
	t.Setenv("ZE_ENABLE_PARAMETER_VALIDATION", "1")
	t.Setenv("ZE_ENABLE_HANDLE_LIFETIME", "yes")
	t.Setenv("ZE_ENABLE_THREADING_VALIDATION", "nope")
	t.Setenv("ZEL_ENABLE_CERTIFICATION_CHECKER", "true")
	t.Setenv("ZEL_CERTIFICATION_CHECKER_VERSION", "1.5")
	t.Setenv("ZEL_VALIDATION_CHECKER_ORDER", "leak,parameter")
	t.Setenv("ZEL_ENABLE_EVENTS_CHECKER", "1")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.True(t, bool(cfg.Validation.Parameter))
	assert.True(t, bool(cfg.Validation.HandleLifetime))
	assert.False(t, bool(cfg.Validation.Threading), "unrecognised values disable")
	assert.True(t, bool(cfg.Validation.Certification))
	assert.Equal(t, "1.5", cfg.Validation.CertificationVersion)
	assert.Equal(t, []string{"leak", "parameter"}, cfg.Validation.Order)
	assert.True(t, bool(cfg.Validation.Events))
}

func TestFromEnvIsResolvedOnce(t *testing.T) {
	t.Setenv("ZE_ENABLE_PARAMETER_VALIDATION", "1")
	cfg, err := FromEnv()
	require.NoError(t, err)

	t.Setenv("ZE_ENABLE_PARAMETER_VALIDATION", "0")

	assert.True(t, bool(cfg.Validation.Parameter))
}

type envTestConfig struct {
	Port int `env:"ZEL_TEST_PORT" envDefault:"123"`
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("ZEL_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
