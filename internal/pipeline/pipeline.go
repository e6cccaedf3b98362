package pipeline

import (
	"strings"

	"go.uber.org/zap"

	"github.com/gulfbridge/leads-cli/internal/model"
)

// Result is the output of one pipeline pass.
type Result struct {
	// Rows are the projected output records, in first-seen entity order.
	Rows []model.Record
	// SourceCounts counts cleaned input rows per source identifier.
	SourceCounts map[string]int
	// MissingCodes lists expected activity codes with zero output rows,
	// in control-list order. A missing code signals silent scraper
	// breakage rather than genuine zero results.
	MissingCodes []string
	// Dropped counts records excluded for an empty company name.
	Dropped int
	// ExactDuplicates counts verbatim duplicate rows suppressed pre-merge.
	ExactDuplicates int
}

// Run executes the full merge pass: clean, exact-duplicate suppression,
// identity-keyed merging, and projection to the output column set. records
// must be in ingestion order; the order is a correctness input (it fixes
// synthetic unique keys, first-occurrence dedup, and tie-break stability),
// so the pass is strictly sequential. expectedCodes is the control list for
// the coverage diagnostic and may be empty.
func Run(records []model.Record, expectedCodes []string) Result {
	res := Result{SourceCounts: make(map[string]int)}

	var cleaned []model.Record
	for _, r := range records {
		if !Clean(&r) {
			res.Dropped++
			continue
		}
		res.SourceCounts[r.Source]++
		cleaned = append(cleaned, r)
	}

	merged := make(map[string]*model.Record)
	var order []string
	seenExact := make(map[string]bool)

	for idx, r := range cleaned {
		sig := ExactSignature(r)
		if seenExact[sig] {
			res.ExactDuplicates++
			continue
		}
		seenExact[sig] = true

		key := IdentityKey(r, idx)
		if existing, ok := merged[key]; ok {
			Merge(existing, r)
			continue
		}
		entity := r
		merged[key] = &entity
		order = append(order, key)
	}

	// Map iteration order is unstable; project in first-seen key order so
	// the output is deterministic for a given input ordering.
	codeCounts := make(map[string]int)
	for _, key := range order {
		row := project(*merged[key])
		if row.ActivityCode != "" {
			codeCounts[row.ActivityCode]++
		}
		res.Rows = append(res.Rows, row)
	}

	for _, code := range expectedCodes {
		if codeCounts[code] == 0 {
			res.MissingCodes = append(res.MissingCodes, code)
		}
	}

	return res
}

// project trims every output column. Missing fields stay empty strings,
// never absent.
func project(r model.Record) model.Record {
	var out model.Record
	for _, col := range model.OutputColumns {
		out.SetField(col, strings.TrimSpace(r.Field(col)))
	}
	return out
}

// LogDiagnostics reports per-source counts and coverage gaps the way the
// merge command surfaces them.
func LogDiagnostics(res Result) {
	for source, count := range res.SourceCounts {
		if source == "" {
			source = "(unknown)"
		}
		zap.L().Info("source rows", zap.String("source", source), zap.Int("rows", count))
	}
	for _, code := range res.MissingCodes {
		zap.L().Warn("no rows captured for expected activity code; verify portal availability or update selectors",
			zap.String("activity_code", code),
		)
	}
}
