package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return Table{
		Title: "Students",
		Columns: []Column{
			{Key: "name", Header: "Name", Width: 2},
			{Key: "country", Header: "Country"},
		},
		Rows: []map[string]string{
			{"name": "Alice, Jr.", "country": "USA"},
			{"name": "=HYPERLINK(\"x\")", "country": "Canada"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleTable())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Name", "Country"}, records[0])
	assert.Equal(t, []string{"Alice, Jr.", "USA"}, records[1])
	assert.True(t, strings.HasPrefix(records[2][0], "'="))
}

func TestExportersRequireColumns(t *testing.T) {
	_, err := NewCSVExporter().Render(Table{})
	assert.Error(t, err)
	_, err = NewPDFExporter().Render(Table{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	table := sampleTable()
	for i := 0; i < 80; i++ {
		table.Rows = append(table.Rows, map[string]string{"name": strings.Repeat("long name ", 20), "country": "Kenya"})
	}

	out, err := NewPDFExporter().Render(table)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestColumnWidths(t *testing.T) {
	widths := columnWidths(sampleTable().Columns)
	assert.InDelta(t, pdfUsableWidth*2/3, widths[0], 0.001)
	assert.InDelta(t, pdfUsableWidth/3, widths[1], 0.001)
}
