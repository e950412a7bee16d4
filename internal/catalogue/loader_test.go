package catalogue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npellerin/foulee/internal/domain"
)

func TestLoadDefault(t *testing.T) {
	cat, err := LoadDefault()
	require.NoError(t, err)
	assert.Greater(t, cat.Len(), 5, "embedded catalogue must not be empty")

	// Every session type is represented so slot filtering never starves.
	for _, typ := range []domain.SessionType{
		domain.TypeEndurance, domain.TypeTempo, domain.TypeIntervals,
		domain.TypeLong, domain.TypeRecovery,
	} {
		assert.NotEmpty(t, cat.ByType(typ), "type %s missing from defaults", typ)
	}
}

func TestLoadDefault_StableOrder(t *testing.T) {
	a, err := LoadDefault()
	require.NoError(t, err)
	b, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, a.ListAll(), b.ListAll(), "catalogue order must be reproducible")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_second.yaml", `
templates:
  - code: CUSTOM_2
    title: Custom two
    type: tempo
    tags: [T]
    duration_min: 50
`)
	writeFile(t, dir, "a_first.yml", `
templates:
  - code: CUSTOM_1
    title: Custom one
    type: endurance
    tags: [E]
    duration_min: 45
    distance_km: 8.5
    steps:
      - 45min @E
`)
	writeFile(t, dir, "ignored.txt", "not yaml")

	cat, err := LoadDir(dir)
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())

	all := cat.ListAll()
	assert.Equal(t, "CUSTOM_1", all[0].Code, "files load in sorted name order")
	assert.Equal(t, "CUSTOM_2", all[1].Code)
	assert.Equal(t, domain.TypeEndurance, all[0].Type)
	assert.Equal(t, []domain.IntensityTag{domain.TagEasy}, all[0].Tags)
	assert.Equal(t, 8.5, all[0].DistanceKm)
}

func TestLoadDir_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing code", "templates:\n  - title: X\n    type: tempo\n    duration_min: 10\n", "missing code"},
		{"missing title", "templates:\n  - code: X\n    type: tempo\n    duration_min: 10\n", "missing title"},
		{"bad duration", "templates:\n  - code: X\n    title: X\n    type: tempo\n    duration_min: 0\n", "duration_min"},
		{"unknown type", "templates:\n  - code: X\n    title: X\n    type: yoga\n    duration_min: 10\n", "unknown type"},
		{"unknown tag", "templates:\n  - code: X\n    title: X\n    type: tempo\n    tags: [Z]\n    duration_min: 10\n", "unknown intensity tag"},
		{"broken yaml", "templates: [", "parsing catalogue file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "bad.yaml", tt.body)
			_, err := LoadDir(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadDir_MissingDirectory(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}
