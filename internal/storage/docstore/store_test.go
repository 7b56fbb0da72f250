package docstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/finsight/internal/common"
	"github.com/bobmcallan/finsight/internal/interfaces"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	base := t.TempDir()
	store, err := NewStore(common.StorageConfig{
		Input:      filepath.Join(base, "input"),
		Processing: filepath.Join(base, "processing"),
		Output:     filepath.Join(base, "output"),
	}, common.NewTestLogger())
	require.NoError(t, err)
	return store
}

func writeInput(t *testing.T, store *Store, name, content string) string {
	t.Helper()
	path := filepath.Join(store.inputDir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewStoreCreatesDirectories(t *testing.T) {
	store := newTestStore(t)

	for _, dir := range []string{store.inputDir, store.processingDir, store.outputDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestPendingDocumentsSortedExcludingReadme(t *testing.T) {
	store := newTestStore(t)
	writeInput(t, store, "2025-03-11-b.md", "b")
	writeInput(t, store, "2025-03-10-a.md", "a")
	writeInput(t, store, "README.md", "readme")
	writeInput(t, store, "notes.txt", "ignored extension")

	pending, err := store.PendingDocuments()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "2025-03-10-a.md", filepath.Base(pending[0]))
	assert.Equal(t, "2025-03-11-b.md", filepath.Base(pending[1]))
}

func TestDocumentsByDate(t *testing.T) {
	store := newTestStore(t)
	writeInput(t, store, "2025-03-10-news.md", "x")
	writeInput(t, store, "2025-03-11-news.md", "y")

	docs, err := store.DocumentsByDate("2025-03-10", interfaces.AreaInput)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "2025-03-10-news.md", filepath.Base(docs[0]))
}

func TestDocumentsInRange(t *testing.T) {
	store := newTestStore(t)
	writeInput(t, store, "2025-03-09-old.md", "x")
	writeInput(t, store, "2025-03-10-in.md", "y")
	writeInput(t, store, "2025-03-12-in.md", "z")
	writeInput(t, store, "undated.md", "skipped")
	writeInput(t, store, "README.md", "skipped")

	docs, err := store.DocumentsInRange("2025-03-10", "2025-03-14", interfaces.AreaInput)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "2025-03-10-in.md", filepath.Base(docs[0]))
	assert.Equal(t, "2025-03-12-in.md", filepath.Base(docs[1]))
}

func TestDocumentsInRangeRejectsBadDates(t *testing.T) {
	store := newTestStore(t)

	_, err := store.DocumentsInRange("not-a-date", "2025-03-14", interfaces.AreaInput)
	assert.Error(t, err)
}

func TestUnknownAreaFails(t *testing.T) {
	store := newTestStore(t)

	_, err := store.DocumentsByDate("2025-03-10", "staging")
	assert.Error(t, err)
}

func TestSaveAndReadRoundtrip(t *testing.T) {
	store := newTestStore(t)

	path, err := store.SaveProcessing("# 报告", "2025-03-10-新闻分析.md")
	require.NoError(t, err)

	content, err := store.ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "# 报告", content)
}

func TestSaveOutputWithSubfolder(t *testing.T) {
	store := newTestStore(t)

	path, err := store.SaveOutput("note", "2025-03-10-投资笔记.md", "notes")
	require.NoError(t, err)
	assert.Equal(t, "notes", filepath.Base(filepath.Dir(path)))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestArchiveMovesDocument(t *testing.T) {
	store := newTestStore(t)
	original, err := store.SaveProcessing("done", "2025-03-10-新闻分析.md")
	require.NoError(t, err)

	archived, err := store.Archive(original)
	require.NoError(t, err)

	_, err = os.Stat(original)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, "archive", filepath.Base(filepath.Dir(archived)))

	content, err := store.ReadDocument(archived)
	require.NoError(t, err)
	assert.Equal(t, "done", content)
}

func TestListAllAreas(t *testing.T) {
	store := newTestStore(t)
	writeInput(t, store, "2025-03-10-a.md", "a")
	_, err := store.SaveProcessing("p", "2025-03-10-新闻分析.md")
	require.NoError(t, err)
	_, err = store.SaveOutput("n", "2025-03-10-投资笔记.md", "notes")
	require.NoError(t, err)

	listing, err := store.ListAll("all")
	require.NoError(t, err)

	assert.Len(t, listing[interfaces.AreaInput], 1)
	assert.Len(t, listing[interfaces.AreaProcessing], 1)
	// subfolder contents are included recursively
	assert.Len(t, listing[interfaces.AreaOutput], 1)
	assert.Positive(t, listing[interfaces.AreaInput][0].Size)
}
