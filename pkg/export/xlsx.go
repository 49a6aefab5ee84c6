package export

import (
	"errors"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/dmitrymomot/personagen/pkg/persona"
)

const (
	personasSheet = "Personas"
	reportSheet   = "Report"
)

var reportColumns = []string{
	"Total Generated", "Unique Names", "Unique Emails", "Unique Phones",
	"Unique Addresses Used", "Collision Attempts", "Fallback Regenerations",
	"Uniqueness Rate",
}

// Excel writes an xlsx workbook with a Personas sheet and a single-row
// Report sheet, mirroring the original tool's Excel download.
func Excel(w io.Writer, personas []persona.Persona, report persona.Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	f.SetSheetName(f.GetSheetName(0), personasSheet)
	if err := writeRows(f, personasSheet, Columns, personaRows(personas)); err != nil {
		return err
	}

	if _, err := f.NewSheet(reportSheet); err != nil {
		return errors.Join(ErrEncodeFailed, err)
	}
	reportRow := []any{
		report.TotalGenerated, report.UniqueNames, report.UniqueEmails,
		report.UniquePhones, report.UniqueAddressesUsed, report.CollisionAttempts,
		report.FallbackRegenerations, report.UniquenessRate,
	}
	if err := writeRows(f, reportSheet, reportColumns, [][]any{reportRow}); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return errors.Join(ErrEncodeFailed, err)
	}
	return nil
}

func personaRows(personas []persona.Persona) [][]any {
	rows := make([][]any, 0, len(personas))
	for _, p := range personas {
		cells := record(p)
		row := make([]any, len(cells))
		for i, c := range cells {
			row[i] = c
		}
		rows = append(rows, row)
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, header []string, rows [][]any) error {
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return errors.Join(ErrEncodeFailed, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Join(ErrEncodeFailed, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Join(ErrEncodeFailed, err)
		}
	}
	return nil
}
