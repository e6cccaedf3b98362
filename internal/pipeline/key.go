package pipeline

import (
	"strconv"
	"strings"

	"github.com/gulfbridge/leads-cli/internal/model"
	"github.com/gulfbridge/leads-cli/internal/normalize"
)

// IdentityKey derives the deduplication key for a cleaned record. Priority
// order: name+email, then name+phone, then a synthetic per-row key that
// guarantees a record without strong identifiers never merges with another.
// idx is the record's position in ingestion order; callers compute the key
// once per record, not per comparison.
func IdentityKey(r model.Record, idx int) string {
	normName := normalize.CompanyName(r.CompanyName)
	normEmail := strings.ToLower(strings.TrimSpace(r.Email))
	normPhone := normalize.Phone(r.Phone)

	switch {
	case normName != "" && normEmail != "":
		return normName + "|" + normEmail
	case normName != "" && normPhone != "":
		return normName + "|" + normPhone
	default:
		return "unique|" + strconv.Itoa(idx)
	}
}

// ExactSignature identifies byte-for-byte duplicate rows across all key
// fields. It is used only to drop verbatim re-scrapes before identity-keyed
// merging, never to merge distinct-but-similar rows.
func ExactSignature(r model.Record) string {
	fields := []string{
		normalize.CompanyName(r.CompanyName),
		strings.ToLower(strings.TrimSpace(r.Email)),
		normalize.Phone(r.Phone),
		strings.ToLower(strings.TrimSpace(r.BusinessActivity)),
		strings.ToLower(strings.TrimSpace(r.Source)),
		strings.ToLower(strings.TrimSpace(r.ActivityCode)),
		strings.ToLower(strings.TrimSpace(r.SourceURL)),
		strings.ToLower(strings.TrimSpace(r.Emirate)),
	}
	return strings.Join(fields, "\x1f")
}
