package bootstrap

import (
	"context"
	"testing"

	"islamic-quotes-be/internal/config"
	"islamic-quotes-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatasetSource(t *testing.T) {
	t.Run("bundled by default", func(t *testing.T) {
		src, err := NewDatasetSource(config.DatasetConfig{})
		require.NoError(t, err)
		assert.Equal(t, "quotes.json", src.Name())
	})

	t.Run("local file", func(t *testing.T) {
		src, err := NewDatasetSource(config.DatasetConfig{Path: "/srv/data/hadith.yaml.zst"})
		require.NoError(t, err)
		assert.Equal(t, "hadith.yaml.zst", src.Name())
	})

	t.Run("object store wins over path", func(t *testing.T) {
		src, err := NewDatasetSource(config.DatasetConfig{
			Path: "/srv/data/hadith.yaml",
			S3: config.ObjectStoreConfig{
				Endpoint: "localhost:9000",
				Bucket:   "datasets",
				Object:   "quotes/v2/quotes.json.gz",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "quotes.json.gz", src.Name())
	})
}

func TestNewContainer(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{BaseURL: "http://localhost:3000/", ApiPrefix: "/api"}}

	c, err := NewContainer(cfg, WithLogger(logger.NewNopLogger()))
	require.NoError(t, err)

	assert.NotNil(t, c.QuoteController)
	assert.NotNil(t, c.PageController)
	assert.NotNil(t, c.HealthController)
	assert.NotNil(t, c.Views)
	require.NoError(t, c.QuoteRepository.Warm(context.Background()))

	stats, err := c.QuoteService.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, stats.TotalQuotes)
}
