package version

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withVars(t *testing.T, v, commit, built string) {
	t.Helper()
	oldV, oldC, oldB := Version, GitCommit, BuildTime
	Version, GitCommit, BuildTime = v, commit, built
	t.Cleanup(func() { Version, GitCommit, BuildTime = oldV, oldC, oldB })
}

func TestShortVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		want    string
	}{
		{"release with commit", "v1.2.0", "abcdef1234", "v1.2.0 (abcdef1)"},
		{"dev with commit", "dev", "abcdef1234", "dev-abcdef1"},
		{"release short commit", "v1.2.0", "abc", "v1.2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVars(t, tt.version, tt.commit, "unknown")
			assert.Equal(t, tt.want, GetShortVersion())
		})
	}
}

func TestIsRelease(t *testing.T) {
	withVars(t, "v0.3.0", "unknown", "unknown")
	assert.True(t, IsRelease())

	withVars(t, "dev", "unknown", "unknown")
	assert.False(t, IsRelease())
}

func TestDetailedVersion(t *testing.T) {
	withVars(t, "v0.3.0", "0123456789", "2024-03-12T10:00:00Z")

	out := GetDetailedVersion()
	assert.True(t, strings.HasPrefix(out, "Version: v0.3.0"))
	assert.Contains(t, out, "Commit: 0123456789")
	assert.Contains(t, out, "Built: 2024-03-12T10:00:00Z")
	assert.Contains(t, out, "Go: ")
}

func TestParseBuildTime(t *testing.T) {
	assert.True(t, parseBuildTime("unknown").IsZero())
	assert.True(t, parseBuildTime("yesterday").IsZero())
	assert.Equal(t, time.Date(2024, 3, 12, 8, 30, 0, 0, time.UTC), parseBuildTime("2024-03-12 08:30:00"))
}
