// Package xlsx implements sheetscrape.Exporter by writing XLSX workbooks
// with tealeg/xlsx.
package xlsx

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/sheetscrape"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// Workbook layout.
const (
	// SheetName is the default worksheet name.
	SheetName       = "Scraped Data"
	HeaderLabel     = "Scraped Content"
	ScrapedOnLabel  = "Scraped on:"
	SourceURLLabel  = "Source URL:"
	TimestampLayout = "2006-01-02 15:04:05"

	// ContentColumnWidth is the width of column A, in characters.
	ContentColumnWidth = 50.0

	headerFontSize = 12
)

// Ensure Exporter implements sheetscrape.Exporter at compile time.
var _ sheetscrape.Exporter = (*Exporter)(nil)

// Exporter writes fragments to a single-sheet workbook. Column A holds the
// header and one fragment per row; columns C and D of the first two rows
// hold the run metadata.
type Exporter struct {
	sheetName string
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithSheetName overrides SheetName. An empty name keeps the default.
func WithSheetName(name string) Option {
	return func(e *Exporter) {
		if name != "" {
			e.sheetName = name
		}
	}
}

// NewExporter creates a new Exporter.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{sheetName: SheetName}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export builds the workbook and atomically replaces path with it.
// The workbook is written to a temporary file next to path and renamed
// into place, so a failed export never leaves a partial file at path.
func (e *Exporter) Export(ctx context.Context, path string, fragments []sheetscrape.Fragment, meta sheetscrape.RunMetadata) error {
	if err := ctx.Err(); err != nil {
		return sheetscrape.WrapError(sheetscrape.EEXPORT, err, "export to %s", path)
	}

	file, err := buildWorkbook(e.sheetName, fragments, meta)
	if err != nil {
		return sheetscrape.WrapError(sheetscrape.EEXPORT, err, "export to %s", path)
	}

	if err := writeAtomic(path, file); err != nil {
		return sheetscrape.WrapError(sheetscrape.EEXPORT, err, "export to %s", path)
	}
	return nil
}

// buildWorkbook lays out fragments and metadata in a new in-memory file.
func buildWorkbook(sheetName string, fragments []sheetscrape.Fragment, meta sheetscrape.RunMetadata) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: add sheet")
	}

	header := sheet.Cell(0, 0)
	header.SetString(HeaderLabel)
	header.SetStyle(headerStyle())

	for i, fragment := range fragments {
		sheet.Cell(i+1, 0).SetString(string(fragment))
	}

	sheet.Cell(0, 2).SetString(ScrapedOnLabel)
	sheet.Cell(0, 3).SetString(meta.Timestamp.Format(TimestampLayout))
	sheet.Cell(1, 2).SetString(SourceURLLabel)
	sheet.Cell(1, 3).SetString(meta.SourceURL)

	// Column ranges are 1-based, as in the OOXML <col> element.
	sheet.SetColWidth(1, 1, ContentColumnWidth)

	return file, nil
}

func headerStyle() *xlsx.Style {
	style := xlsx.NewStyle()
	style.Font.Bold = true
	style.Font.Size = headerFontSize
	style.Alignment.Horizontal = "center"
	style.ApplyFont = true
	style.ApplyAlignment = true
	return style
}

// writeAtomic saves file to a temporary path in the destination directory
// and renames it over path.
func writeAtomic(path string, file *xlsx.File) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return eris.Wrapf(err, "xlsx: create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return eris.Wrap(err, "xlsx: create temp file")
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := file.Write(tmp); err != nil {
		return eris.Wrap(err, "xlsx: write workbook")
	}
	if err := tmp.Sync(); err != nil {
		return eris.Wrap(err, "xlsx: sync temp file")
	}
	if err := tmp.Close(); err != nil {
		return eris.Wrap(err, "xlsx: close temp file")
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return eris.Wrap(err, "xlsx: chmod temp file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return eris.Wrapf(err, "xlsx: rename to %s", path)
	}
	return nil
}
