// Package model defines the record types shared across the lead pipeline.
package model

// Record is one observed company listing from one portal. All fields are
// strings; empty means the portal did not supply the value. Records are
// value objects owned by a single sequential pipeline pass.
type Record struct {
	CompanyName      string `json:"company_name"`
	BusinessActivity string `json:"business_activity"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Source           string `json:"source"`
	Emirate          string `json:"emirate"`
	ActivityCode     string `json:"activity_code"`
	SourceURL        string `json:"source_url"`
	LastSeenUTC      string `json:"last_seen_utc"`
	Notes            string `json:"notes"`
}

// Known source identifiers.
const (
	SourceDubaiChamber = "dubai_chamber"
	SourceDubaiDED     = "dubai_ded"
	SourceSharjahSEDD  = "sharjah_sedd"
	SourceMOEGrowth    = "moe_growth_manual"
)

// Sources lists every known source identifier in sweep order.
var Sources = []string{
	SourceDubaiChamber,
	SourceSharjahSEDD,
	SourceDubaiDED,
	SourceMOEGrowth,
}

// RequiredColumns are the output columns downstream consumers depend on
// being populated for usable leads.
var RequiredColumns = []string{"company_name", "business_activity", "phone", "email"}

// RecommendedColumns carry provenance and freshness metadata.
var RecommendedColumns = []string{"source", "emirate", "activity_code", "source_url", "last_seen_utc", "notes"}

// OutputColumns is the exact ordered header of the exported file. External
// consumers address columns by name, so the set is a contract.
var OutputColumns = append(append([]string{}, RequiredColumns...), RecommendedColumns...)

// Field returns the value of the named output column, or "" for an
// unknown column name.
func (r Record) Field(column string) string {
	switch column {
	case "company_name":
		return r.CompanyName
	case "business_activity":
		return r.BusinessActivity
	case "phone":
		return r.Phone
	case "email":
		return r.Email
	case "source":
		return r.Source
	case "emirate":
		return r.Emirate
	case "activity_code":
		return r.ActivityCode
	case "source_url":
		return r.SourceURL
	case "last_seen_utc":
		return r.LastSeenUTC
	case "notes":
		return r.Notes
	}
	return ""
}

// SetField sets the value of the named output column. Unknown columns are
// ignored so producers may carry extra portal columns without breaking
// ingestion.
func (r *Record) SetField(column, value string) {
	switch column {
	case "company_name":
		r.CompanyName = value
	case "business_activity":
		r.BusinessActivity = value
	case "phone":
		r.Phone = value
	case "email":
		r.Email = value
	case "source":
		r.Source = value
	case "emirate":
		r.Emirate = value
	case "activity_code":
		r.ActivityCode = value
	case "source_url":
		r.SourceURL = value
	case "last_seen_utc":
		r.LastSeenUTC = value
	case "notes":
		r.Notes = value
	}
}
