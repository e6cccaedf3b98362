// Package normalize canonicalizes company names, phone numbers, and emails
// so records from different portals become comparable.
package normalize

import (
	"regexp"
	"strings"
	"time"
)

var (
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)
	nonDigitRe = regexp.MustCompile(`\D+`)
)

// TimestampLayout is the fixed-width UTC stamp carried by every record.
// Lexicographic comparison of two stamps equals chronological comparison.
const TimestampLayout = "2006-01-02T15:04:05Z"

// CompanyName lowercases, trims, and collapses runs of non-alphanumeric
// characters to single spaces. Idempotent; empty in, empty out.
func CompanyName(s string) string {
	if s == "" {
		return ""
	}
	lowered := strings.ToLower(strings.TrimSpace(s))
	collapsed := nonAlnumRe.ReplaceAllString(lowered, " ")
	return strings.Join(strings.Fields(collapsed), " ")
}

// Phone strips non-digits and canonicalizes the UAE international prefix:
// 00971… becomes +971…, bare 971… gains a +, and any other digit string is
// returned with a + prepended. Best effort only; callers must not assume
// the result is a dialable number.
func Phone(s string) string {
	if s == "" {
		return ""
	}
	digits := nonDigitRe.ReplaceAllString(s, "")
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, "00971") {
		digits = "971" + digits[5:]
	}
	return "+" + digits
}

// Email returns the trimmed input unchanged when it has a local@domain.tld
// shape, and "" otherwise. Invalid input silently becomes absence of data.
func Email(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if emailRe.MatchString(s) {
		return s
	}
	return ""
}

// MergeNotes joins semicolon-separated note tags from all inputs,
// preserving first-seen order and suppressing duplicates.
func MergeNotes(values ...string) string {
	var parts []string
	seen := make(map[string]bool)
	for _, value := range values {
		if value == "" {
			continue
		}
		for _, item := range strings.Split(value, ";") {
			item = strings.TrimSpace(item)
			if item == "" || seen[item] {
				continue
			}
			seen[item] = true
			parts = append(parts, item)
		}
	}
	return strings.Join(parts, ";")
}

// UTCNow returns the current UTC time in TimestampLayout.
func UTCNow() string {
	return time.Now().UTC().Format(TimestampLayout)
}
