package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompanyName_CollapsesPunctuationAndCase(t *testing.T) {
	assert.Equal(t, "gulf oil field services llc", CompanyName("  Gulf Oil-Field   Services (L.L.C) "))
	assert.Equal(t, "acme", CompanyName("ACME"))
	assert.Equal(t, "", CompanyName(""))
	assert.Equal(t, "", CompanyName("  ***  "))
}

func TestCompanyName_Idempotent(t *testing.T) {
	inputs := []string{"Al-Futtaim & Sons", "  PETRO/GAS  ", "شركة", "a  b\tc"}
	for _, s := range inputs {
		once := CompanyName(s)
		assert.Equal(t, once, CompanyName(once), "input %q", s)
	}
}

func TestPhone_UAEPrefixes(t *testing.T) {
	assert.Equal(t, "+97150123456", Phone("0097150123456"))
	assert.Equal(t, "+97142211111", Phone("971 4 221 1111"))
	assert.Equal(t, "+0501234567", Phone("050-123-4567"))
	assert.Equal(t, "", Phone(""))
	assert.Equal(t, "", Phone("ext."))
}

func TestEmail_StrictShape(t *testing.T) {
	assert.Equal(t, "a@acme.com", Email(" a@acme.com "))
	assert.Equal(t, "", Email("not-an-email"))
	assert.Equal(t, "", Email("a@b"))
	assert.Equal(t, "", Email("a b@acme.com"))
	assert.Equal(t, "", Email(""))
}

func TestEmail_Idempotent(t *testing.T) {
	for _, s := range []string{"a@acme.com", "bad", ""} {
		assert.Equal(t, Email(s), Email(Email(s)))
	}
}

func TestMergeNotes_UnionPreservesOrder(t *testing.T) {
	assert.Equal(t, "a;b;c", MergeNotes("a;b", "b;c"))
	assert.Equal(t, "email_invalid_removed", MergeNotes("", "email_invalid_removed"))
	assert.Equal(t, "x;y", MergeNotes("x; y ;", "x"))
	assert.Equal(t, "", MergeNotes("", ""))
}

func TestUTCNow_Layout(t *testing.T) {
	stamp := UTCNow()
	parsed, err := time.Parse(TimestampLayout, stamp)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, 5*time.Second)
}
