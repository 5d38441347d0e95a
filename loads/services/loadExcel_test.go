package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLoadsExcel(t *testing.T) {
	f, err := GenerateLoadsExcel(testLoads(t))
	require.NoError(t, err)
	defer f.Close()

	assert.NotContains(t, f.GetSheetList(), "Sheet1")
	require.Contains(t, f.GetSheetList(), "Cargas")

	header, err := f.GetCellValue("Cargas", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Data", header)

	date, err := f.GetCellValue("Cargas", "A2")
	require.NoError(t, err)
	assert.Equal(t, "02/05/2024", date)

	number, err := f.GetCellValue("Cargas", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1042", number)

	status, err := f.GetCellValue("Cargas", "H3")
	require.NoError(t, err)
	assert.Equal(t, "Problema", status)
}

func TestGenerateLoadsExcelEmpty(t *testing.T) {
	_, err := GenerateLoadsExcel(nil)

	assert.ErrorIs(t, err, ErrNoLoadsToExport)
}
