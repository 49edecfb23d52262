package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goswon/pkg/config"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, config.DefaultIndentWidth, cfg.Format.IndentWidth)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Equal(t, config.ValueJSON, cfg.ValueFormat)
	assert.Equal(t, "info", cfg.LogLevel)

	assert.Nil(t, cfg.Unformat.Seed, "an unset seed lets unfmt draw one per run")
	for _, p := range cfg.Unformat.Probabilities() {
		require.NotNil(t, p.Value, p.Key)
		assert.InDelta(t, config.DefaultProbability, *p.Value, 1e-9, p.Key)
	}
}

func TestModesIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		valid bool
		got   bool
	}{
		{"color auto", true, config.ColorAuto.IsValid()},
		{"color always", true, config.ColorAlways.IsValid()},
		{"color never", true, config.ColorNever.IsValid()},
		{"color unknown", false, config.ColorMode("sometimes").IsValid()},
		{"value json", true, config.ValueJSON.IsValid()},
		{"value yaml", true, config.ValueYAML.IsValid()},
		{"value unknown", false, config.ValueFormat("toml").IsValid()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, tt.got)
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.5, config.Get(nil, 0.5), 1e-9)
	assert.InDelta(t, 0.0, config.Get(config.Ptr(0.0), 0.5), 1e-9)
	assert.Equal(t, uint64(7), config.Get(config.Ptr[uint64](7), 0))
}
