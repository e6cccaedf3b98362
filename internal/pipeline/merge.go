package pipeline

import (
	"github.com/gulfbridge/leads-cli/internal/model"
	"github.com/gulfbridge/leads-cli/internal/normalize"
)

// PrioritySource is the single authoritative source for contact details and
// activity descriptions. Chamber listings are maintained by the companies
// themselves, so their contact data wins conflicts.
const PrioritySource = model.SourceDubaiChamber

// Merge folds incoming into existing, which survives. Both records are
// believed to represent the same entity (same identity key). Field rules:
// contact fields fill when empty and are otherwise only overwritten by the
// priority source; the longer activity text wins unless the priority source
// supplies one; activity_code and source_url fill once and are never
// overwritten; notes union; latest last-seen stamp wins.
func Merge(existing *model.Record, incoming model.Record) {
	fromPriority := incoming.Source == PrioritySource
	atPriority := existing.Source == PrioritySource

	if existing.Phone == "" {
		existing.Phone = incoming.Phone
	} else if !atPriority && fromPriority && incoming.Phone != "" {
		existing.Phone = incoming.Phone
	}

	if existing.Email == "" {
		existing.Email = incoming.Email
	} else if !atPriority && fromPriority && incoming.Email != "" {
		existing.Email = incoming.Email
	}

	existing.BusinessActivity = bestActivity(existing.BusinessActivity, incoming.BusinessActivity, fromPriority)

	if existing.ActivityCode == "" && incoming.ActivityCode != "" {
		existing.ActivityCode = incoming.ActivityCode
	}
	if existing.SourceURL == "" && incoming.SourceURL != "" {
		existing.SourceURL = incoming.SourceURL
	}

	// The authoritative source label wins visibly.
	if fromPriority {
		existing.Source = incoming.Source
	}

	existing.Notes = normalize.MergeNotes(existing.Notes, incoming.Notes)

	// Fixed-width UTC stamps compare lexicographically.
	if incoming.LastSeenUTC != "" && (existing.LastSeenUTC == "" || incoming.LastSeenUTC > existing.LastSeenUTC) {
		existing.LastSeenUTC = incoming.LastSeenUTC
	}
}

// bestActivity picks the more authoritative activity description: priority
// source wins outright, otherwise longer text is assumed more descriptive.
func bestActivity(existing, incoming string, fromPriority bool) string {
	if existing == "" {
		return incoming
	}
	if fromPriority {
		if incoming != "" {
			return incoming
		}
		return existing
	}
	if incoming != "" && len(incoming) > len(existing) {
		return incoming
	}
	return existing
}
