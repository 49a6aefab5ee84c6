package export

import (
	"encoding/csv"
	"errors"
	"io"

	"github.com/dmitrymomot/personagen/pkg/persona"
)

// CSV writes the batch as comma-separated values with the stable header row.
func CSV(w io.Writer, personas []persona.Persona) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return errors.Join(ErrEncodeFailed, err)
	}
	for _, p := range personas {
		if err := cw.Write(record(p)); err != nil {
			return errors.Join(ErrEncodeFailed, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Join(ErrEncodeFailed, err)
	}
	return nil
}
