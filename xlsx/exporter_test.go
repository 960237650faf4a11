package xlsx_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/sheetscrape"
	ssxlsx "github.com/fwojciec/sheetscrape/xlsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func testMeta() sheetscrape.RunMetadata {
	return sheetscrape.RunMetadata{
		Timestamp: time.Date(2024, 3, 1, 14, 5, 9, 0, time.UTC),
		SourceURL: "https://example.test/quotes",
	}
}

func openSheet(t *testing.T, path string) *xlsx.Sheet {
	t.Helper()
	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)
	return f.Sheets[0]
}

func cellValue(sheet *xlsx.Sheet, row, col int) string {
	if row >= len(sheet.Rows) || col >= len(sheet.Rows[row].Cells) {
		return ""
	}
	return sheet.Rows[row].Cells[col].String()
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	t.Run("writes fragments and metadata", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.xlsx")
		fragments := make([]sheetscrape.Fragment, 10)
		for i := range fragments {
			fragments[i] = sheetscrape.Fragment(fmt.Sprintf("Quote %d", i+1))
		}

		err := ssxlsx.NewExporter().Export(context.Background(), path, fragments, testMeta())
		require.NoError(t, err)

		sheet := openSheet(t, path)
		assert.Equal(t, ssxlsx.SheetName, sheet.Name)
		assert.Equal(t, ssxlsx.HeaderLabel, cellValue(sheet, 0, 0))
		for i := 0; i < 10; i++ {
			assert.Equal(t, fmt.Sprintf("Quote %d", i+1), cellValue(sheet, i+1, 0))
		}
		assert.Equal(t, "", cellValue(sheet, 11, 0))
		assert.Equal(t, ssxlsx.ScrapedOnLabel, cellValue(sheet, 0, 2))
		assert.Equal(t, "2024-03-01 14:05:09", cellValue(sheet, 0, 3))
		assert.Equal(t, ssxlsx.SourceURLLabel, cellValue(sheet, 1, 2))
		assert.Equal(t, "https://example.test/quotes", cellValue(sheet, 1, 3))
	})

	t.Run("writes header and metadata for empty fragments", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.xlsx")

		err := ssxlsx.NewExporter().Export(context.Background(), path, nil, testMeta())
		require.NoError(t, err)

		sheet := openSheet(t, path)
		assert.Equal(t, ssxlsx.HeaderLabel, cellValue(sheet, 0, 0))
		assert.Equal(t, "", cellValue(sheet, 1, 0))
		assert.Equal(t, "https://example.test/quotes", cellValue(sheet, 1, 3))
	})

	t.Run("persists column width and header style", func(t *testing.T) {
		t.Parallel()

		for _, n := range []int{0, 3} {
			path := filepath.Join(t.TempDir(), fmt.Sprintf("styled-%d.xlsx", n))
			fragments := make([]sheetscrape.Fragment, n)
			for i := range fragments {
				fragments[i] = "row"
			}

			require.NoError(t, ssxlsx.NewExporter().Export(context.Background(), path, fragments, testMeta()))

			sheet := openSheet(t, path)
			col := sheet.Col(0)
			require.NotNil(t, col, "column A has no definition with %d rows", n)
			assert.Equal(t, ssxlsx.ContentColumnWidth, col.Width)

			style := sheet.Cell(0, 0).GetStyle()
			assert.True(t, style.Font.Bold, "header bold with %d rows", n)
			assert.Equal(t, "center", style.Alignment.Horizontal, "header centered with %d rows", n)
		}
	})

	t.Run("uses configured sheet name", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "named.xlsx")

		err := ssxlsx.NewExporter(ssxlsx.WithSheetName("Data")).Export(context.Background(), path, []sheetscrape.Fragment{"a"}, testMeta())
		require.NoError(t, err)

		sheet := openSheet(t, path)
		assert.Equal(t, "Data", sheet.Name)
		assert.Equal(t, "a", cellValue(sheet, 1, 0))
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "out.xlsx")

		err := ssxlsx.NewExporter().Export(context.Background(), path, []sheetscrape.Fragment{"a"}, testMeta())
		require.NoError(t, err)

		assert.FileExists(t, path)
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.xlsx")
		exporter := ssxlsx.NewExporter()

		require.NoError(t, exporter.Export(context.Background(), path, []sheetscrape.Fragment{"old"}, testMeta()))
		require.NoError(t, exporter.Export(context.Background(), path, []sheetscrape.Fragment{"new"}, testMeta()))

		sheet := openSheet(t, path)
		assert.Equal(t, "new", cellValue(sheet, 1, 0))
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.xlsx")

		require.NoError(t, ssxlsx.NewExporter().Export(context.Background(), path, []sheetscrape.Fragment{"a"}, testMeta()))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "out.xlsx", entries[0].Name())
	})

	t.Run("returns export error when destination is unwritable", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		// A regular file where a directory is expected makes MkdirAll fail.
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
		path := filepath.Join(blocker, "out.xlsx")

		err := ssxlsx.NewExporter().Export(context.Background(), path, []sheetscrape.Fragment{"a"}, testMeta())

		require.Error(t, err)
		assert.Equal(t, sheetscrape.EEXPORT, sheetscrape.ErrorCode(err))
		assert.NoFileExists(t, path)
	})

	t.Run("keeps previous file when rename target is a directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.xlsx")
		require.NoError(t, os.Mkdir(path, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), []byte("x"), 0644))

		err := ssxlsx.NewExporter().Export(context.Background(), path, []sheetscrape.Fragment{"a"}, testMeta())

		require.Error(t, err)
		assert.Equal(t, sheetscrape.EEXPORT, sheetscrape.ErrorCode(err))
		assert.FileExists(t, filepath.Join(path, "keep"))
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary file should be removed")
	})

	t.Run("returns export error for canceled context", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.xlsx")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := ssxlsx.NewExporter().Export(ctx, path, []sheetscrape.Fragment{"a"}, testMeta())

		require.Error(t, err)
		assert.Equal(t, sheetscrape.EEXPORT, sheetscrape.ErrorCode(err))
		assert.NoFileExists(t, path)
	})
}

// Compile-time verification that Exporter implements sheetscrape.Exporter
var _ sheetscrape.Exporter = (*ssxlsx.Exporter)(nil)
