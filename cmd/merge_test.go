package main

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

func sampleRows() []model.Record {
	return []model.Record{
		{
			CompanyName:      "Gulf Energy Services LLC",
			BusinessActivity: "Oilfield services",
			Phone:            "+97143334444",
			Email:            "info@gulfenergy.ae",
			Source:           model.SourceDubaiChamber,
			Emirate:          "Dubai",
			LastSeenUTC:      "2026-08-30T10:00:00Z",
		},
	}
}

func TestWriteOutputs_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.csv")
	require.NoError(t, writeOutputs(sampleRows(), path, "csv"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, model.OutputColumns, recs[0])
	assert.Equal(t, "Gulf Energy Services LLC", recs[1][0])
}

func TestWriteOutputs_Both(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "leads.csv")
	require.NoError(t, writeOutputs(sampleRows(), csvPath, "both"))

	_, err := os.Stat(csvPath)
	assert.NoError(t, err)

	wb, err := xlsx.OpenFile(filepath.Join(dir, "leads.xlsx"))
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 1)
	assert.Equal(t, len(sampleRows())+1, len(wb.Sheets[0].Rows))
}

func TestWriteOutputs_UnknownFormat(t *testing.T) {
	err := writeOutputs(sampleRows(), filepath.Join(t.TempDir(), "leads.csv"), "parquet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
