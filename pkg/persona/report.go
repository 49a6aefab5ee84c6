package persona

import "fmt"

// Report is a read-only snapshot of one generator lineage's statistics.
type Report struct {
	TotalGenerated        int    `json:"total_generated"`
	UniqueNames           int    `json:"unique_names"`
	UniqueEmails          int    `json:"unique_emails"`
	UniquePhones          int    `json:"unique_phones"`
	UniqueAddressesUsed   int    `json:"unique_addresses_used"`
	CollisionAttempts     int    `json:"collision_attempts"`
	FallbackRegenerations int    `json:"fallback_regenerations"`
	UniquenessRate        string `json:"uniqueness_rate"`
}

// Report returns current uniqueness statistics without mutating any state.
// The uniqueness rate is 1 - regenerations/max(total, 1), as a percentage.
func (g *Generator) Report() Report {
	g.mu.Lock()
	defer g.mu.Unlock()

	denom := g.total
	if denom < 1 {
		denom = 1
	}
	rate := (1 - float64(g.regenerations)/float64(denom)) * 100

	return Report{
		TotalGenerated:        g.total,
		UniqueNames:           len(g.fullNames),
		UniqueEmails:          len(g.emails),
		UniquePhones:          len(g.phones),
		UniqueAddressesUsed:   len(g.addresses),
		CollisionAttempts:     g.collisions,
		FallbackRegenerations: g.regenerations,
		UniquenessRate:        fmt.Sprintf("%.2f%%", rate),
	}
}
