// Package export serializes generated persona batches and their uniqueness
// report into the formats the original tool offered for download: CSV, JSON,
// and Excel workbooks, plus the plain-text "quick copy" blocks.
//
// All tabular encoders share one stable column set (see Columns), so a CSV
// file, a JSON record list and an Excel sheet of the same batch line up
// column for column.
//
//	var buf bytes.Buffer
//	if err := export.Write(&buf, export.FormatCSV, personas, report); err != nil {
//		// export.ErrUnsupportedFormat for unknown formats
//	}
//	name := export.Filename(export.FormatCSV, time.Now())
package export
