package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waleedthermon/Doctracking/internal/entity"
	"github.com/xuri/excelize/v2"
)

func newDocumentRepo(t *testing.T) *DocumentRepository {
	t.Helper()
	return NewDocumentRepository(filepath.Join(t.TempDir(), "documents.xlsx"))
}

func uploadWorkbook(t *testing.T, header []string, rows [][]string) *excelize.File {
	t.Helper()
	f, err := buildWorkbook(DocumentSheet, header, rows)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestDocumentAllMissingFile(t *testing.T) {
	repo := newDocumentRepo(t)

	docs, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestImportMergeAddsAndOverrides(t *testing.T) {
	repo := newDocumentRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveAll(ctx, []entity.Document{
		{Number: "D1", Revision: "1"},
		{Number: "D2", Revision: "1"},
	}))

	upload := uploadWorkbook(t,
		[]string{DocumentColumnNumber, DocumentColumnRevision},
		[][]string{
			{"D2", "2"}, // existing key: last write wins
			{"D3", "1"}, // net-new
		})

	merged, added, err := repo.ImportMerge(ctx, upload)
	require.NoError(t, err)
	assert.Equal(t, 2, merged)
	assert.Equal(t, 1, added)

	docs, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.Document{
		{Number: "D1", Revision: "1"},
		{Number: "D2", Revision: "2"},
		{Number: "D3", Revision: "1"},
	}, docs, "existing order kept, duplicate replaced in place, new keys appended")
}

func TestImportMergeIdempotent(t *testing.T) {
	repo := newDocumentRepo(t)
	ctx := context.Background()

	header := []string{DocumentColumnNumber, DocumentColumnRevision}
	rows := [][]string{{"D1", "1"}, {"D2", "2"}}

	_, added, err := repo.ImportMerge(ctx, uploadWorkbook(t, header, rows))
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	merged, added, err := repo.ImportMerge(ctx, uploadWorkbook(t, header, rows))
	require.NoError(t, err)
	assert.Equal(t, 2, merged)
	assert.Equal(t, 0, added, "second import of the same file adds nothing")

	docs, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestImportMergeMissingColumn(t *testing.T) {
	repo := newDocumentRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveAll(ctx, []entity.Document{{Number: "D1", Revision: "1"}}))

	upload := uploadWorkbook(t, []string{"Doc", "Rev"}, [][]string{{"D9", "3"}})

	_, _, err := repo.ImportMerge(ctx, upload)
	assert.ErrorIs(t, err, ErrMissingColumn)

	docs, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1, "failed import leaves the registry untouched")
}

func TestRevisionsFor(t *testing.T) {
	repo := newDocumentRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveAll(ctx, []entity.Document{
		{Number: "D1", Revision: "1"},
		{Number: "D2", Revision: "2"},
		{Number: "D3", Revision: "1"},
	}))

	revisions, err := repo.RevisionsFor(ctx, []string{"D1", "D3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, revisions)

	revisions, err = repo.RevisionsFor(ctx, []string{"D1", "D2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, revisions)

	revisions, err = repo.RevisionsFor(ctx, []string{"D9"})
	require.NoError(t, err)
	assert.Empty(t, revisions, "unknown numbers contribute no revisions")
}
