package export

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/personagen/pkg/persona"
)

// PersonaText renders the single-persona copy block:
//
//	Name: First Last
//	Email: ...
//	Phone: ...
//	Address: ...
func PersonaText(p persona.Persona) string {
	return fmt.Sprintf("Name: %s %s\nEmail: %s\nPhone: %s\nAddress: %s",
		p.FirstName, p.LastName, p.Email, p.Phone, p.FullAddress)
}

// BulkText renders the multi-persona copy block, one two-line entry per
// persona separated by blank lines.
func BulkText(personas []persona.Persona) string {
	var b strings.Builder
	for _, p := range personas {
		fmt.Fprintf(&b, "%s %s | %s | %s\n%s\n\n",
			p.FirstName, p.LastName, p.Phone, p.Email, p.FullAddress)
	}
	return b.String()
}
