package export

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/gulfbridge/leads-cli/internal/model"
)

// WriteXLSX writes rows to an XLSX workbook with the same column contract
// as WriteCSV. One sheet, header row first.
func WriteXLSX(rows []model.Record, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "export: create dir for %s", path)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("leads")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range model.OutputColumns {
		header.AddCell().Value = col
	}

	for _, r := range rows {
		row := sheet.AddRow()
		for _, value := range buildRow(r) {
			row.AddCell().Value = value
		}
	}

	if err := file.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}
