package export

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/dmitrymomot/personagen/pkg/persona"
)

// jsonRecord carries the tabular column names as JSON keys so the JSON
// export lines up with the CSV and Excel outputs.
type jsonRecord struct {
	ID            string `json:"ID"`
	FirstName     string `json:"First Name"`
	LastName      string `json:"Last Name"`
	Email         string `json:"Email"`
	Phone         string `json:"Phone"`
	LocationName  string `json:"Location Name"`
	StreetAddress string `json:"Street Address"`
	City          string `json:"City"`
	State         string `json:"State"`
	ZipCode       string `json:"ZIP Code"`
	FullAddress   string `json:"Full Address"`
	Type          string `json:"Type"`
	GeneratedAt   string `json:"Generated At"`
}

// JSON writes the batch as an indented array of column-keyed records.
func JSON(w io.Writer, personas []persona.Persona) error {
	records := make([]jsonRecord, 0, len(personas))
	for _, p := range personas {
		records = append(records, jsonRecord{
			ID:            p.ID,
			FirstName:     p.FirstName,
			LastName:      p.LastName,
			Email:         p.Email,
			Phone:         p.Phone,
			LocationName:  p.LocationName,
			StreetAddress: p.StreetAddress,
			City:          p.City,
			State:         p.State,
			ZipCode:       p.ZipCode,
			FullAddress:   p.FullAddress,
			Type:          p.Type,
			GeneratedAt:   p.GeneratedAt.Format(timeLayout),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return errors.Join(ErrEncodeFailed, err)
	}
	return nil
}
