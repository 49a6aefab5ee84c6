package persona

// pickPlace chooses a public place for an already-resolved state, preferring
// full addresses not yet issued in this lineage. Unlike the other fields,
// repeats are allowed: each state registers only a handful of places, and
// once the attempt index passes the place count any pick is accepted.
// Caller holds g.mu.
func (g *Generator) pickPlace(state string) Place {
	places := g.catalog.places[state]

	place, accepted := retry(g, 2*len(places),
		func(int) Place { return pick(g.rnd, places) },
		func(p Place, attempt int) bool {
			full := g.fullAddress(p, state)
			if _, seen := g.addresses[full]; !seen {
				g.addresses[full] = struct{}{}
				return true
			}
			// Catalog exhausted for this state, reuse is fine.
			return attempt > len(places)
		})
	if !accepted {
		place = pick(g.rnd, places)
	}
	return place
}
