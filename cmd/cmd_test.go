package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/diary/internal/config"
	"github.com/conneroisu/diary/internal/logging"
	"github.com/conneroisu/diary/internal/server"
	"github.com/conneroisu/diary/internal/testutils"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestInitConfigReadsDiaryFile(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())

	yml := `server:
  port: 9090
ui:
  theme: dark
  page_size: 5
  owner: 지민
`
	require.NoError(t, os.WriteFile(".diary.yml", []byte(yml), 0o644))

	cfgFile = ""
	initConfig()

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, 5, cfg.UI.PageSize)
	assert.Equal(t, "지민", cfg.UI.Owner)
}

func TestInitConfigPrecedence(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(".diary.yml", []byte("server:\n  port: 9090\n"), 0o644))
	custom := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(custom, []byte("server:\n  port: 7070\n"), 0o644))

	t.Setenv("DIARY_CONFIG_FILE", custom)
	t.Setenv("DIARY_DEVELOPMENT_HOT_RELOAD", "true")

	cfgFile = ""
	initConfig()

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.True(t, cfg.Development.HotReload)
}

func TestInitConfigDotEnv(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())
	// Registers the restore before the variable is cleared.
	t.Setenv("DIARY_UI_OWNER", "")
	require.NoError(t, os.Unsetenv("DIARY_UI_OWNER"))
	t.Setenv("DIARY_LOG_LEVEL", "warn")

	env := "DIARY_UI_OWNER=서연\nDIARY_LOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(".env", []byte(env), 0o644))

	cfgFile = ""
	initConfig()

	assert.Equal(t, "서연", os.Getenv("DIARY_UI_OWNER"))
	// Variables already in the environment win over .env.
	assert.Equal(t, "warn", os.Getenv("DIARY_LOG_LEVEL"))
}

func TestServeThemeFlag(t *testing.T) {
	tests := []struct {
		value   string
		want    string
		wantErr bool
	}{
		{"dark", "dark", false},
		{"LIGHT", "light", false},
		{"sepia", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := serveCmd.Flags().Set("theme", tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, serveTheme.String())
		})
	}
	require.NoError(t, serveCmd.Flags().Set("theme", "light"))
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "render", "version"} {
		assert.True(t, names[want], want)
	}

	for _, flag := range []string{"port", "host", "data", "hot-reload", "page-size", "theme"} {
		assert.NotNil(t, serveCmd.Flags().Lookup(flag), flag)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("log-level"))
}

func newRenderServer(t *testing.T) *server.Server {
	t.Helper()
	srv, err := server.New(testutils.CreateTestConfig(), logging.Discard())
	require.NoError(t, err)
	return srv
}

func TestRenderPage(t *testing.T) {
	srv := newRenderServer(t)

	tests := []struct {
		name       string
		path       string
		mode       string
		withStatus bool
		contains   []string
		wantErr    bool
	}{
		{
			name:     "list",
			path:     "/diaries",
			contains: []string{`data-theme="light"`, "diaryCard"},
		},
		{
			name:     "detail dark without slash",
			path:     "diaries/1",
			mode:     "dark",
			contains: []string{`data-theme="dark"`, "retrospectItem"},
		},
		{
			name:       "redirect reported",
			path:       "/",
			withStatus: true,
			contains:   []string{"302 Found", "Redirect: /diaries"},
		},
		{
			name:       "missing page",
			path:       "/diaries/999",
			withStatus: true,
			contains:   []string{"404 Not Found"},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := renderPage(&out, srv.Handler(), tt.path, tt.mode, tt.withStatus)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			for _, s := range tt.contains {
				assert.Contains(t, out.String(), s)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	run := func(t *testing.T, format string, short, detailed bool) (string, error) {
		t.Helper()
		versionFormat, versionShort, versionDetailed = format, short, detailed
		t.Cleanup(func() { versionFormat, versionShort, versionDetailed = "text", false, false })

		var out bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&out)
		err := runVersionCommand(cmd, nil)
		return out.String(), err
	}

	out, err := run(t, "text", false, false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "diary "))
	assert.Contains(t, out, "Platform: ")

	out, err = run(t, "text", false, true)
	require.NoError(t, err)
	assert.Contains(t, out, "Build type: ")

	out, err = run(t, "json", false, false)
	require.NoError(t, err)
	var info map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "is_release")

	_, err = run(t, "xml", false, false)
	assert.Error(t, err)
}

func TestPrintErrorShowsCode(t *testing.T) {
	resetViper(t)
	viper.Set("server.port", 70000)

	_, err := config.Load()
	require.Error(t, err)

	var out bytes.Buffer
	printError(&out, err)
	assert.True(t, strings.HasPrefix(out.String(), "Error: [ERR_CONFIG_INVALID] invalid configuration"), out.String())
	assert.Contains(t, out.String(), "port 70000")
}
