// Package export writes merged lead lists in the formats the
// business-development consumers ingest.
package export

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/gulfbridge/leads-cli/internal/model"
)

// WriteCSV writes rows to path with the exact OutputColumns header.
// Downstream consumers address columns by name, not position; the header
// set is a contract and must not grow or reorder silently.
func WriteCSV(rows []model.Record, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "export: create dir for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(model.OutputColumns); err != nil {
		return eris.Wrap(err, "export: write header")
	}

	for _, row := range rows {
		if err := w.Write(buildRow(row)); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}

	w.Flush()
	return eris.Wrap(w.Error(), "export: flush")
}

func buildRow(r model.Record) []string {
	row := make([]string, len(model.OutputColumns))
	for i, col := range model.OutputColumns {
		row[i] = r.Field(col)
	}
	return row
}
