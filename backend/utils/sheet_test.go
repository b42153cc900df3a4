package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadSheetCSV(t *testing.T) {
	data := "\ufeffktu_id,student_name,batch_id\nS1, Alice,B1\nS2,Bob\n"

	rows, err := ReadSheet("roster.CSV", strings.NewReader(data))
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ktu_id", "student_name", "batch_id"}, rows[0])
	assert.Equal(t, []string{"S1", "Alice", "B1"}, rows[1])
	assert.Equal(t, []string{"S2", "Bob"}, rows[2])
}

func TestReadSheetCSVKeepsLineNumbers(t *testing.T) {
	data := "ktu_id,student_name,batch_id\nS1,Alice,B1\n\nS2,Bob,B9\n\n\nS3,\"Cara\nMae\",B1\nS4,Dan,B1\n"

	rows, err := ReadSheet("roster.csv", strings.NewReader(data))
	require.NoError(t, err)

	require.Len(t, rows, 9)
	assert.Equal(t, []string{"S1", "Alice", "B1"}, rows[1])
	assert.Empty(t, rows[2])
	assert.Equal(t, []string{"S2", "Bob", "B9"}, rows[3])
	assert.Empty(t, rows[4])
	assert.Empty(t, rows[5])
	assert.Equal(t, []string{"S3", "Cara\nMae", "B1"}, rows[6])
	assert.Empty(t, rows[7])
	assert.Equal(t, []string{"S4", "Dan", "B1"}, rows[8])
}

func TestReadSheetWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"ktu_id", "student_name", "batch_id"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"S1", "Alice", "B1"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := ReadSheet("roster.xlsx", &buf)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"ktu_id", "student_name", "batch_id"},
		{"S1", "Alice", "B1"},
	}, rows)
}

func TestReadSheetRejects(t *testing.T) {
	_, err := ReadSheet("roster.xls", strings.NewReader("anything"))
	assert.ErrorIs(t, err, ErrUnsupportedSheet)

	_, err = ReadSheet("roster.xlsx", strings.NewReader("not a zip"))
	assert.Error(t, err)

	_, err = ReadSheet("roster.csv", strings.NewReader("a,\"b\nc"))
	assert.Error(t, err)
}
