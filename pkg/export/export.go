package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrymomot/personagen/pkg/persona"
)

// Format identifies an export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// ParseFormat normalizes a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatXLSX, "excel":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// ContentType returns the MIME type served for downloads of this format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv"
	}
}

// Write encodes the batch in the given format. The report is only embedded
// where the format has room for it (the Excel workbook's Report sheet).
func Write(w io.Writer, format Format, personas []persona.Persona, report persona.Report) error {
	switch format {
	case FormatCSV:
		return CSV(w, personas)
	case FormatJSON:
		return JSON(w, personas)
	case FormatXLSX:
		return Excel(w, personas, report)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Filename composes the download name the original tool used:
// personas_YYYYMMDD_HHMMSS.<ext>.
func Filename(format Format, at time.Time) string {
	return fmt.Sprintf("personas_%s.%s", at.Format("20060102_150405"), format)
}

// timeLayout matches the original tool's "Generated At" rendering.
const timeLayout = "2006-01-02 15:04:05"

// Columns is the stable tabular header shared by every encoder.
var Columns = []string{
	"ID", "First Name", "Last Name", "Email", "Phone",
	"Location Name", "Street Address", "City", "State", "ZIP Code",
	"Full Address", "Type", "Generated At",
}

func record(p persona.Persona) []string {
	return []string{
		p.ID, p.FirstName, p.LastName, p.Email, p.Phone,
		p.LocationName, p.StreetAddress, p.City, p.State, p.ZipCode,
		p.FullAddress, p.Type, p.GeneratedAt.Format(timeLayout),
	}
}
