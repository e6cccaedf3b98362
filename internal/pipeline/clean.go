// Package pipeline merges, cleans, and deduplicates raw portal records into
// a canonical lead list.
package pipeline

import (
	"strings"

	"github.com/gulfbridge/leads-cli/internal/model"
	"github.com/gulfbridge/leads-cli/internal/normalize"
)

// NoteEmailInvalidRemoved tags records whose email failed validation and was
// stripped during cleaning.
const NoteEmailInvalidRemoved = "email_invalid_removed"

// Clean sanitizes one raw record in place. It returns false when the record
// must be dropped (empty company name after trimming); dropping is silent,
// not an error. Invalid emails are stripped to empty and tagged in notes,
// phones are trimmed but not normalized (normalization is key/merge-side
// only), and a missing last-seen stamp is filled with the current UTC time.
func Clean(r *model.Record) bool {
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	if r.CompanyName == "" {
		return false
	}

	original := strings.TrimSpace(r.Email)
	r.Email = normalize.Email(original)
	if original != "" && r.Email == "" {
		r.Notes = normalize.MergeNotes(r.Notes, NoteEmailInvalidRemoved)
	}

	r.Phone = strings.TrimSpace(r.Phone)

	if r.LastSeenUTC == "" {
		r.LastSeenUTC = normalize.UTCNow()
	}

	return true
}
