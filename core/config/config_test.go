package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var managedEnv = []string{
	"SERVER_PORT", "SERVER_REVALIDATE_SECRET", "REVALIDATE_SECRET",
	"SERVER_DEPLOY_HOOK", "VERCEL_DEPLOY_HOOK",
	"CONTENTFUL_SPACE_ID", "CONTENTFUL_DELIVERY_TOKEN", "CONTENTFUL_TOKEN", "CONTENTFUL_ACCESS_TOKEN",
	"CONTENTFUL_CONTENT_TYPES_POSTS", "SNAPSHOT_DIR", "SNAPSHOT_PUBLISH", "LOG_LEVEL",
}

// clearEnv unsets the variables under test and restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range managedEnv {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://cdn.contentful.com", cfg.Contentful.BaseURL)
	assert.Equal(t, "master", cfg.Contentful.Environment)
	assert.Equal(t, 1000, cfg.Contentful.Limit)
	assert.Equal(t, "NVpVj8LwkehFy7TfbDiCu", cfg.Contentful.ContentTypes.Products)
	assert.Equal(t, "70oPrCNwUtqI05YuxYLW9D", cfg.Contentful.ContentTypes.Tours)
	assert.Equal(t, "5YmWnOsbaqjCb367hRLpST", cfg.Contentful.ContentTypes.Donations)
	assert.Equal(t, "blog", cfg.Contentful.ContentTypes.Posts)
	assert.Equal(t, "data", cfg.Snapshot.Dir)
	assert.False(t, cfg.Snapshot.Publish)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Database.Enabled)
	assert.Empty(t, cfg.Contentful.DeliveryToken)
}

func TestLoadConfig_TokenPrecedence(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"Access Token Only", map[string]string{"CONTENTFUL_ACCESS_TOKEN": "access"}, "access"},
		{"Token Beats Access", map[string]string{"CONTENTFUL_TOKEN": "token", "CONTENTFUL_ACCESS_TOKEN": "access"}, "token"},
		{"Delivery Beats All", map[string]string{
			"CONTENTFUL_DELIVERY_TOKEN": "delivery",
			"CONTENTFUL_TOKEN":          "token",
			"CONTENTFUL_ACCESS_TOKEN":   "access",
		}, "delivery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig(t.TempDir())
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Contentful.DeliveryToken)
		})
	}
}

func TestLoadConfig_LegacyNames(t *testing.T) {
	clearEnv(t)
	t.Setenv("REVALIDATE_SECRET", "legacy-secret")
	t.Setenv("VERCEL_DEPLOY_HOOK", "https://deploy.example/hook")
	t.Setenv("CONTENTFUL_SPACE_ID", "space42")
	t.Setenv("CONTENTFUL_CONTENT_TYPES_POSTS", "article")
	t.Setenv("SNAPSHOT_PUBLISH", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "legacy-secret", cfg.Server.RevalidateSecret)
	assert.Equal(t, "https://deploy.example/hook", cfg.Server.DeployHook)
	assert.Equal(t, "space42", cfg.Contentful.SpaceID)
	assert.Equal(t, "article", cfg.Contentful.ContentTypes.Posts)
	assert.True(t, cfg.Snapshot.Publish)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("SERVER_PORT=9090\nSNAPSHOT_DIR=out\nLOG_LEVEL=debug\n"), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "out", cfg.Snapshot.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
}
