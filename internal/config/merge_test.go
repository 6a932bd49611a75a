package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecodash/internal/config"
	"github.com/rshade/ecodash/internal/footprint"
)

// newDefaultTarget returns a Config with known non-zero values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	return &config.Config{
		Output: config.OutputConfig{
			DefaultFormat: "table",
			PageSize:      10,
		},
		Logging: config.LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Footprint: config.FootprintConfig{
			Defaults: footprint.DefaultInputs(),
		},
		Marketplace: config.MarketplaceConfig{
			DefaultSort:     "popular",
			DefaultCategory: "all",
		},
	}
}

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: json
  page_size: 5
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "json", target.Output.DefaultFormat)
	assert.Equal(t, 5, target.Output.PageSize)

	assert.Equal(t, "info", target.Logging.Level)
	assert.Equal(t, "text", target.Logging.Format)
	assert.Equal(t, footprint.DefaultInputs(), target.Footprint.Defaults)
}

func TestShallowMergeYAML_SectionIsReplacedWhole(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
footprint:
  defaults:
    car_miles: 300
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	// The overlay section starts from zero values, not from the target.
	assert.Equal(t, footprint.LifestyleInputs{CarMiles: 300}, target.Footprint.Defaults)
	assert.Equal(t, "popular", target.Marketplace.DefaultSort)
}

func TestShallowMergeYAML_MultipleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
logging:
  level: debug
  format: json
marketplace:
  default_sort: price-low
  default_category: kitchen
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "price-low", target.Marketplace.DefaultSort)
	assert.Equal(t, "kitchen", target.Marketplace.Params().Category)
	assert.Equal(t, "table", target.Output.DefaultFormat)
}

func TestShallowMergeYAML_EmptyAndCommentOnly(t *testing.T) {
	for _, content := range []string{"", "# nothing here\n"} {
		target := newDefaultTarget()
		require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, content)))
		assert.Equal(t, newDefaultTarget(), target)
	}
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
plugins:
  aws: {}
output:
  default_format: ndjson
  page_size: 10
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "ndjson", target.Output.DefaultFormat)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("corrupted yaml", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "output: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("nil target", func(t *testing.T) {
		assert.Error(t, config.ShallowMergeYAML(nil, "irrelevant"))
	})

	t.Run("wrong section type", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "logging: [1, 2]\n"))
		assert.Error(t, err)
	})

	t.Run("invalid merged result", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "output:\n  default_format: xml\n"))
		assert.Error(t, err)
	})
}
