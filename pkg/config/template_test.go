package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goswon/pkg/config"
)

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	t.Run("minimal yaml parses", func(t *testing.T) {
		t.Parallel()
		data, err := config.GenerateTemplate(config.TemplateOptions{})
		require.NoError(t, err)
		assert.Contains(t, string(data), "# swon configuration")

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultIndentWidth, cfg.Format.IndentWidth)
	})

	t.Run("full yaml documents every setting", func(t *testing.T) {
		t.Parallel()
		data, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
		require.NoError(t, err)

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)

		want := config.NewConfig()
		want.Ignore = []string{"vendor/**", ".git/**"}
		assert.Equal(t, want, cfg)

		for _, s := range config.Settings() {
			assert.Contains(t, string(data), s.Description[:20], s.Key)
		}
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		data, err := config.GenerateTemplate(config.TemplateOptions{Full: true, Format: "json"})
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, "auto", doc["color"])
		assert.Contains(t, doc, "unformat")
	})
}
