package feeder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "values.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeCSV(t, "dataElement,period,value\nfbfJHSPpUQD,202401,10\ncYeuwXTCPkU,202401,20\n")

	records, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Record{"dataElement": "fbfJHSPpUQD", "period": "202401", "value": "10"}, records[0])
	assert.Equal(t, Record{"dataElement": "cYeuwXTCPkU", "period": "202401", "value": "20"}, records[1])
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "dataElement,period,value\n")

	records, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadCSV_RowArityMismatch(t *testing.T) {
	path := writeCSV(t, "a,b\n1,2,3\n")

	_, err := ReadCSV(path)
	require.Error(t, err)
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}
