package persona

import "fmt"

// nameAttempts bounds the unique-name retry loop. The first×last name space
// holds 84×48 combinations, so exhaustion is only practical once most of it
// has been issued.
const nameAttempts = 200

type namePair struct {
	first, last string
}

// uniqueName returns a (first, last) pair not previously issued in this
// lineage. Both the composed "first last" string and an independent content
// hash of the pair must be untracked for a candidate to be accepted.
// Caller holds g.mu.
func (g *Generator) uniqueName() (string, string) {
	pair, accepted := retry(g, nameAttempts,
		func(int) namePair {
			gender := pick(g.rnd, g.catalog.genders)
			return namePair{
				first: pick(g.rnd, g.catalog.firstNames[gender]),
				last:  pick(g.rnd, g.catalog.lastNames),
			}
		},
		func(p namePair, _ int) bool {
			if _, seen := g.fullNames[p.first+" "+p.last]; seen {
				return false
			}
			_, seen := g.nameHashes[contentHash(p.first, p.last)]
			return !seen
		})

	if !accepted {
		// Name space exhausted: append a synthetic middle initial cycling
		// A-Z on the running unique-name count. The count is monotonic, so
		// when the 26-letter cycle wraps into an already-issued name the
		// count itself disambiguates.
		g.regenerations++
		n := len(g.fullNames)
		initial := rune('A' + n%26)
		withInitial := fmt.Sprintf("%s %c", pair.first, initial)
		if _, seen := g.fullNames[withInitial+" "+pair.last]; seen {
			withInitial = fmt.Sprintf("%s %c%d", pair.first, initial, n)
		}
		pair.first = withInitial
	}

	g.fullNames[pair.first+" "+pair.last] = struct{}{}
	g.nameHashes[contentHash(pair.first, pair.last)] = struct{}{}
	return pair.first, pair.last
}
