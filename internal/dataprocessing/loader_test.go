package dataprocessing

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvproc/internal/config"
	"csvproc/internal/shared/testutil"
)

func newTestLoader(t *testing.T) (*Loader, *config.Paths, *testutil.BufferedSlogHandler) {
	t.Helper()

	paths := config.PathsFrom(t.TempDir())
	logger, handler := testutil.NewTestLogger(t)
	return NewLoader(paths, logger), paths, handler
}

func TestLoadExistingFile(t *testing.T) {
	loader, paths, handler := newTestLoader(t)
	require.NoError(t, os.MkdirAll(paths.DataDir, 0755))

	inputPath := filepath.Join(paths.DataDir, "test_input.csv")
	content := "id,category,value1,value2\n1,X,15,10\n2,Y,25,20\n3,X,35,30\n4,Z,45,40\n5,Y,10,50\n"
	require.NoError(t, os.WriteFile(inputPath, []byte(content), 0644))

	table := loader.Load(context.Background(), inputPath)

	require.Equal(t, 5, table.RowCount())
	assert.Equal(t, BaseColumns(), table.Columns)
	assert.True(t, handler.ContainsMessage("reading input data"))
	assert.True(t, handler.ContainsAttr("component", "loader"), "loader log lines carry the component tag")
}

func TestLoadGeneratesSampleWhenMissing(t *testing.T) {
	loader, paths, handler := newTestLoader(t)

	table := loader.Load(context.Background(), filepath.Join(paths.DataDir, "non_existent.csv"))

	require.False(t, table.Empty())
	assert.Equal(t, 5, table.RowCount())

	// The sample is persisted at the default input locator for the next run
	assert.True(t, config.FileExists(paths.SampleInputCSV))
	assert.True(t, handler.ContainsMessageAtLevel(slog.LevelWarn, "generating sample data"))

	persisted, err := ParseCSV(paths.SampleInputCSV)
	require.NoError(t, err)
	assert.Equal(t, table.Records, persisted.Records)
}

func TestLoadDefaultsToSampleInputPath(t *testing.T) {
	loader, paths, _ := newTestLoader(t)

	table := loader.Load(context.Background(), "")

	require.False(t, table.Empty())
	require.True(t, config.FileExists(paths.SampleInputCSV))

	// A second run reads the persisted sample instead of regenerating
	second := loader.Load(context.Background(), "")
	assert.Equal(t, table.Records, second.Records)
}

func TestLoadEmptyFile(t *testing.T) {
	loader, paths, handler := newTestLoader(t)
	require.NoError(t, os.MkdirAll(paths.DataDir, 0755))

	emptyPath := filepath.Join(paths.DataDir, "empty_input.csv")
	require.NoError(t, os.WriteFile(emptyPath, nil, 0644))

	table := loader.Load(context.Background(), emptyPath)

	assert.True(t, table.Empty())
	assert.Empty(t, table.Columns)
	assert.NotEmpty(t, handler.GetRecordsByLevel(slog.LevelError), "an empty source is reported at error level")
}

func TestLoadMalformedFile(t *testing.T) {
	loader, paths, handler := newTestLoader(t)
	require.NoError(t, os.MkdirAll(paths.DataDir, 0755))

	badPath := filepath.Join(paths.DataDir, "bad_input.csv")
	require.NoError(t, os.WriteFile(badPath, []byte("id,category,value1,value2\n1,A,not-a-number,2\n"), 0644))

	table := loader.Load(context.Background(), badPath)

	assert.True(t, table.Empty())
	assert.True(t, handler.ContainsMessageAtLevel(slog.LevelError, "error reading input data"))
}

func TestLoadCreatesDataDirectory(t *testing.T) {
	loader, paths, _ := newTestLoader(t)

	_, err := os.Stat(paths.DataDir)
	require.True(t, os.IsNotExist(err))

	loader.Load(context.Background(), "")

	info, err := os.Stat(paths.DataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
