package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/diary/internal/errors"
	"github.com/conneroisu/diary/internal/logging"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setup       func()
		expectError bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:  "defaults",
			setup: func() {},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultPort, cfg.Server.Port)
				assert.Equal(t, DefaultHost, cfg.Server.Host)
				assert.Equal(t, "light", cfg.UI.Theme)
				assert.Equal(t, DefaultPageSize, cfg.UI.PageSize)
				assert.Equal(t, DefaultPageRange, cfg.UI.PageRange)
				assert.Equal(t, "info", cfg.Log.Level)
				assert.True(t, cfg.IsDevelopment())
				assert.False(t, cfg.Development.HotReload)
				assert.False(t, cfg.UI.DarkModeToggle)
				assert.Equal(t, DefaultOwner, cfg.UI.Owner)
			},
		},
		{
			name: "custom values",
			setup: func() {
				viper.Set("server.port", 3000)
				viper.Set("server.host", "0.0.0.0")
				viper.Set("ui.theme", "dark")
				viper.Set("ui.page_size", 6)
				viper.Set("ui.page_range", 3)
				viper.Set("development.hot_reload", true)
				viper.Set("log.format", "json")
				viper.Set("ui.dark_mode_toggle", "true")
				viper.Set("ui.owner", "지민")
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
				assert.Equal(t, "dark", cfg.UI.Theme)
				assert.Equal(t, 6, cfg.UI.PageSize)
				assert.Equal(t, 3, cfg.UI.PageRange)
				assert.True(t, cfg.Development.HotReload)
				assert.Equal(t, "json", cfg.LoggerConfig().Format)
				assert.True(t, cfg.UI.DarkModeToggle)
				assert.Equal(t, "지민", cfg.UI.Owner)
			},
		},
		{
			name: "log-level flag fallback",
			setup: func() {
				viper.Set("log-level", "debug")
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, logging.LevelDebug, cfg.LoggerConfig().Level)
			},
		},
		{
			name: "invalid port type",
			setup: func() {
				viper.Set("server.port", "invalid_port")
			},
			expectError: true,
		},
		{
			name: "port out of range",
			setup: func() {
				viper.Set("server.port", 70000)
			},
			expectError: true,
		},
		{
			name: "unknown theme",
			setup: func() {
				viper.Set("ui.theme", "sepia")
			},
			expectError: true,
		},
		{
			name: "zero page range",
			setup: func() {
				viper.Set("ui.page_range", 0)
			},
			expectError: true,
		},
		{
			name: "data path traversal",
			setup: func() {
				viper.Set("data.path", "../../etc/passwd")
			},
			expectError: true,
		},
		{
			name: "dangerous host",
			setup: func() {
				viper.Set("server.host", "localhost;rm")
			},
			expectError: true,
		},
		{
			name: "bad log format",
			setup: func() {
				viper.Set("log.format", "xml")
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			tt.setup()

			cfg, err := Load()
			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadReturnsConfigError(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("server.port", 70000)

	_, err := Load()
	require.Error(t, err)

	var de *errors.DiaryError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, errors.ErrorTypeConfig, de.Type)
	assert.Equal(t, errors.ErrCodeConfigInvalid, de.Code)
	assert.False(t, errors.IsRecoverable(err))
	assert.Contains(t, err.Error(), "port 70000")
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, validateConfig(Default()))
}
