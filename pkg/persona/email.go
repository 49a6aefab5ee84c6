package persona

import (
	"fmt"
	"strings"
)

const (
	emailAttempts = 50
	// Short numeric suffixes (1-99) keep early candidates readable; later
	// attempts widen to 1-9999.
	emailEarlyAttempts = 10
)

// emailDomains are placeholder domains; none of them route to real inboxes
// the generator cares about.
var emailDomains = []string{
	"email.com", "mail.com", "inbox.com", "webmail.com",
	"postbox.com", "fastmail.com", "promail.com", "workmail.com",
}

// uniqueEmail returns an email not previously issued in this lineage, built
// from one of four lowercase patterns over the given name plus a numeric
// suffix and a placeholder domain. The post-exhaustion fallback derives its
// suffix from the millisecond clock and is therefore best-effort only, not a
// hard uniqueness guarantee. Caller holds g.mu.
func (g *Generator) uniqueEmail(first, last string) string {
	first = strings.ToLower(first)
	last = strings.ToLower(last)

	email, accepted := retry(g, emailAttempts,
		func(attempt int) string {
			patterns := [...]string{
				first + "." + last,
				first[:1] + last,
				first + last[:1],
				first + "_" + last,
			}
			limit := 99
			if attempt > emailEarlyAttempts {
				limit = 9999
			}
			return fmt.Sprintf("%s%d@%s",
				pick(g.rnd, patterns[:]), 1+g.rnd.Intn(limit), pick(g.rnd, emailDomains))
		},
		func(e string, _ int) bool {
			_, seen := g.emails[e]
			return !seen
		})

	if !accepted {
		ts := g.now().UnixMilli() % 1_000_000
		email = fmt.Sprintf("%s.%s%d@%s", first, last, ts, emailDomains[0])
	}

	g.emails[email] = struct{}{}
	return email
}
