package export_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dmitrymomot/personagen/pkg/export"
	"github.com/dmitrymomot/personagen/pkg/persona"
)

func testBatch(t *testing.T) ([]persona.Persona, persona.Report) {
	t.Helper()
	now := func() time.Time { return time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC) }
	gen := persona.New(nil, persona.WithSeed(42), persona.WithNow(now))
	personas, err := gen.Generate(3, "Wyoming")
	require.NoError(t, err)
	return personas, gen.Report()
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]export.Format{
		"csv":   export.FormatCSV,
		"CSV":   export.FormatCSV,
		"json":  export.FormatJSON,
		"xlsx":  export.FormatXLSX,
		"excel": export.FormatXLSX,
		" csv ": export.FormatCSV,
	} {
		got, err := export.ParseFormat(input)
		require.NoErrorf(t, err, "input %q must parse", input)
		assert.Equal(t, want, got)
	}

	_, err := export.ParseFormat("pdf")
	require.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

func TestCSV(t *testing.T) {
	personas, _ := testBatch(t)

	var buf bytes.Buffer
	require.NoError(t, export.CSV(&buf, personas))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "header plus one row per persona")

	assert.Equal(t, export.Columns, records[0])
	assert.Equal(t, personas[0].ID, records[1][0])
	assert.Equal(t, personas[0].Email, records[1][3])
	assert.Equal(t, "2025-06-01 12:30:45", records[1][12])
}

func TestJSON(t *testing.T) {
	personas, _ := testBatch(t)

	var buf bytes.Buffer
	require.NoError(t, export.JSON(&buf, personas))

	var records []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, personas[0].ID, first["ID"])
	assert.Equal(t, personas[0].FirstName, first["First Name"])
	assert.Equal(t, personas[0].FullAddress, first["Full Address"])
	assert.Equal(t, "Public Place", first["Type"])
	assert.Len(t, first, len(export.Columns), "JSON records carry every tabular column")
}

func TestExcel(t *testing.T) {
	personas, report := testBatch(t)

	var buf bytes.Buffer
	require.NoError(t, export.Excel(&buf, personas, report))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Personas")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, export.Columns, rows[0])
	assert.Equal(t, personas[2].ID, rows[3][0])

	reportRows, err := f.GetRows("Report")
	require.NoError(t, err)
	require.Len(t, reportRows, 2)
	assert.Equal(t, "Total Generated", reportRows[0][0])
	assert.Equal(t, "3", reportRows[1][0])
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	personas, report := testBatch(t)

	var buf bytes.Buffer
	err := export.Write(&buf, export.Format("pdf"), personas, report)
	require.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

func TestFilename(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)
	assert.Equal(t, "personas_20250601_123045.csv", export.Filename(export.FormatCSV, at))
	assert.Equal(t, "personas_20250601_123045.xlsx", export.Filename(export.FormatXLSX, at))
}

func TestPersonaText(t *testing.T) {
	personas, _ := testBatch(t)
	p := personas[0]

	text := export.PersonaText(p)
	assert.Contains(t, text, "Name: "+p.FirstName+" "+p.LastName)
	assert.Contains(t, text, "Email: "+p.Email)
	assert.Contains(t, text, "Phone: "+p.Phone)
	assert.Contains(t, text, "Address: "+p.FullAddress)
}

func TestBulkText(t *testing.T) {
	personas, _ := testBatch(t)

	text := export.BulkText(personas)
	entries := strings.Split(strings.TrimSuffix(text, "\n\n"), "\n\n")
	require.Len(t, entries, 3)
	for i, p := range personas {
		assert.Contains(t, entries[i], p.Phone)
		assert.Contains(t, entries[i], p.FullAddress)
	}
}
