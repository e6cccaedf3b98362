package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExpectedCodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.csv")
	require.NoError(t, os.WriteFile(path, []byte("activity_code,description\n0610,Crude petroleum extraction\n0910, Support activities \n,orphan\n"), 0o644))

	codes, err := LoadExpectedCodes(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"0610", "0910"}, codes)
}

func TestLoadExpectedCodes_BOMAndCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.csv")
	require.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbfActivity_Code\n1920\n"), 0o644))

	codes, err := LoadExpectedCodes(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1920"}, codes)
}

func TestLoadExpectedCodes_MissingFileOrColumn(t *testing.T) {
	codes, err := LoadExpectedCodes(filepath.Join(t.TempDir(), "absent.csv"))
	require.NoError(t, err)
	assert.Empty(t, codes)

	path := filepath.Join(t.TempDir(), "codes.csv")
	require.NoError(t, os.WriteFile(path, []byte("code\n0610\n"), 0o644))
	codes, err = LoadExpectedCodes(path)
	require.NoError(t, err)
	assert.Empty(t, codes)
}
