package ingest

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LoadExpectedCodes reads the activity-code control list used by the
// coverage diagnostic. The file is a CSV with an activity_code column
// (case-insensitive header, BOM tolerated). A missing file yields an empty
// list: the diagnostic is optional.
func LoadExpectedCodes(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: open codes %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(transform.NewReader(f, unicode.BOMOverride(transform.Nop)))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: read codes %s", path)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	codeCol := -1
	for i, col := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(col), "activity_code") {
			codeCol = i
			break
		}
	}
	if codeCol < 0 {
		return nil, nil
	}

	var codes []string
	for _, row := range rows[1:] {
		if codeCol >= len(row) {
			continue
		}
		code := strings.TrimSpace(row[codeCol])
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes, nil
}
