package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/gulfbridge/leads-cli/internal/model"
)

var sampleRows = []model.Record{
	{
		CompanyName:      "Acme Oil",
		BusinessActivity: "oilfield services",
		Phone:            "050-1111111",
		Email:            "a@acme.com",
		Source:           model.SourceDubaiChamber,
		Emirate:          "dubai",
		ActivityCode:     "0910",
		LastSeenUTC:      "2026-08-15T12:30:00Z",
	},
	{CompanyName: "Gulf Drilling", Source: model.SourceSharjahSEDD},
}

func TestWriteCSV_HeaderContract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "leads.csv")
	require.NoError(t, WriteCSV(sampleRows, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, model.OutputColumns, rows[0])
	assert.Equal(t, "Acme Oil", rows[1][0])
	assert.Equal(t, "a@acme.com", rows[1][3])
	// Missing fields are empty strings, never dropped columns.
	assert.Len(t, rows[2], len(model.OutputColumns))
	assert.Equal(t, "", rows[2][3])
}

func TestWriteCSV_EmptyStillWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.csv")
	require.NoError(t, WriteCSV(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "company_name,business_activity,phone,email,source,emirate,activity_code,source_url,last_seen_utc,notes\n", string(data))
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.xlsx")
	require.NoError(t, WriteXLSX(sampleRows, path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)

	sheet := f.Sheets[0]
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "company_name", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "Acme Oil", sheet.Rows[1].Cells[0].Value)
	assert.Equal(t, "0910", sheet.Rows[1].Cells[6].Value)
}
