// Package persona generates synthetic test persona records (name, email,
// phone, address) drawn from a fixed catalog of real public-place addresses
// across all 50 US states, with best-effort uniqueness guarantees.
//
// Each Generator instance owns its own uniqueness tracking state, so multiple
// independent generation sessions can run side by side without
// cross-contamination. The reference catalog is immutable and shared.
//
// # Uniqueness model
//
// Names, emails and phone numbers are unique within one generator lifetime:
// every field is produced by a bounded retry loop against the tracker and,
// when the retry budget is exhausted, by a deterministic fallback that is
// still unique (documented per field, with known bounds). Addresses are the
// one field allowed to repeat: the catalog holds five public places per
// state, and once a state's places are used up they are reused.
//
// A composite SHA-256 fingerprint over name, email, phone and full address is
// checked for every assembled persona; a collision triggers a single
// corrective email regeneration.
//
// # Usage
//
//	gen := persona.New(persona.DefaultCatalog())
//
//	personas, err := gen.Generate(10, "Wyoming")
//	if err != nil {
//		// persona.ErrInvalidCount or persona.ErrUnknownState
//	}
//
//	report := gen.Report() // uniqueness statistics snapshot
//	gen.Reset()            // fresh lineage, previously issued values reusable
//
// Passing an empty state or "Mixed" picks a state uniformly per persona.
//
// # Concurrency
//
// A Generator serializes its own mutations with an internal mutex, so a
// single instance is safe for concurrent callers. Sessions that must not
// share uniqueness history still need separate instances.
package persona
