package persona

import "time"

// TypePublicPlace is the address type of every catalog-backed persona.
const TypePublicPlace = "Public Place"

// Persona is one generated test identity. The generator retains no reference
// to returned values; the caller owns them.
type Persona struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	LocationName  string    `json:"location_name"`
	StreetAddress string    `json:"street_address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	ZipCode       string    `json:"zip_code"`
	FullAddress   string    `json:"full_address"`
	Type          string    `json:"type"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// FullName returns the display name, including any synthetic middle initial
// added by the fallback path.
func (p Persona) FullName() string {
	return p.FirstName + " " + p.LastName
}
