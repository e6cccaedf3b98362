// Package ingest turns external raw-record drops into ordered Record batches.
//
// Portal scrapers are environment-coupled (DOM probing, CAPTCHA pauses) and
// live outside this repository; their contract with the pipeline is a CSV
// drop per source under the raw directory. Any scraping technology can be
// swapped in without touching the merge core as long as it writes drops.
package ingest

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/gulfbridge/leads-cli/internal/model"
)

// Producer supplies raw records for one source.
type Producer interface {
	Name() string
	Produce(ctx context.Context) ([]model.Record, error)
}

// CSVProducer reads every *.csv drop under a source's raw directory.
// Files are read in lexical name order so ingestion order is reproducible.
type CSVProducer struct {
	source  string
	dir     string
	charset string // optional; "" means UTF-8 (with or without BOM)
}

// NewCSVProducer creates a producer for one source's raw directory.
func NewCSVProducer(source, dir, charset string) *CSVProducer {
	return &CSVProducer{source: source, dir: dir, charset: charset}
}

func (p *CSVProducer) Name() string { return p.source }

// Produce reads all drops for the source. A missing directory is not an
// error; the source simply contributed nothing this run.
func (p *CSVProducer) Produce(ctx context.Context) ([]model.Record, error) {
	entries, err := os.ReadDir(p.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: read dir %s", p.dir)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		paths = append(paths, filepath.Join(p.dir, e.Name()))
	}
	sort.Strings(paths)

	var records []model.Record
	for _, path := range paths {
		if ctx.Err() != nil {
			return nil, eris.Wrap(ctx.Err(), "ingest: cancelled")
		}
		rows, err := p.readFile(path)
		if err != nil {
			return nil, err
		}
		records = append(records, rows...)
	}

	zap.L().Debug("ingest: source produced",
		zap.String("source", p.source),
		zap.Int("files", len(paths)),
		zap.Int("records", len(records)),
	)
	return records, nil
}

func (p *CSVProducer) readFile(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: open %s", path)
	}
	defer f.Close()

	r, err := decodeReader(f, p.charset)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // portals omit columns freely

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: read %s", path)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	colIdx := make(map[string]int, len(rows[0]))
	for i, col := range rows[0] {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	records := make([]model.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var rec model.Record
		for _, col := range model.OutputColumns {
			idx, ok := colIdx[col]
			if !ok || idx >= len(row) {
				continue
			}
			rec.SetField(col, row[idx])
		}
		// The drop's own source column wins when present; otherwise the
		// record belongs to the directory's source.
		if rec.Source == "" {
			rec.Source = p.source
		}
		records = append(records, rec)
	}
	return records, nil
}

// decodeReader wraps r so the CSV reader always sees UTF-8. A leading BOM is
// stripped in all cases; portals exporting legacy charsets (e.g.
// windows-1256) are handled via the configured charset name.
func decodeReader(r io.Reader, charset string) (io.Reader, error) {
	if charset != "" && !strings.EqualFold(charset, "utf-8") {
		enc, err := htmlindex.Get(charset)
		if err != nil {
			return nil, eris.Wrapf(err, "ingest: unsupported charset %q", charset)
		}
		return enc.NewDecoder().Reader(r), nil
	}
	return transform.NewReader(r, unicode.BOMOverride(transform.Nop)), nil
}
