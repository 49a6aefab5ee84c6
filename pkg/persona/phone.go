package persona

import "fmt"

const phoneAttempts = 100

// placeholderAreaCodes serves states absent from the catalog's area-code
// table; the catalog validates its own states, so this only fires for custom
// catalogs with partial data.
var placeholderAreaCodes = []string{"555"}

// uniquePhone returns a phone number not previously issued in this lineage,
// formatted "(AAA) EEE-SSSS" with a state-registered area code, an exchange
// in [200,999] and a subscriber number in [1000,9999]. The fallback reuses
// the last attempted area code with a "999" exchange and the tracked-phone
// count as subscriber; it stays unique only while that count is below 10000.
// Caller holds g.mu.
func (g *Generator) uniquePhone(state string) string {
	codes := g.catalog.areaCodes[state]
	if len(codes) == 0 {
		codes = placeholderAreaCodes
	}

	var area string
	phone, accepted := retry(g, phoneAttempts,
		func(int) string {
			area = pick(g.rnd, codes)
			return fmt.Sprintf("(%s) %d-%d", area, 200+g.rnd.Intn(800), 1000+g.rnd.Intn(9000))
		},
		func(p string, _ int) bool {
			_, seen := g.phones[p]
			return !seen
		})

	if !accepted {
		phone = fmt.Sprintf("(%s) 999-%04d", area, len(g.phones))
	}

	g.phones[phone] = struct{}{}
	return phone
}
