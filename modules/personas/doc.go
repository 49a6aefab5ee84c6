// Package personas exposes the persona generator over HTTP as a mountable
// chi router.
//
// Each client session owns an independent generator instance, so uniqueness
// lineages never cross sessions. The last generated batch is retained per
// session to back the export endpoints.
//
//	store := personas.NewStore(nil, 30*time.Minute)
//	r := chi.NewRouter()
//	r.Mount("/api/v1", personas.New(store, log).Router())
//
// Endpoints:
//
//	POST   /sessions                      create a generation session
//	DELETE /sessions/{id}                 drop a session
//	GET    /states                        catalog state names
//	POST   /sessions/{id}/personas        generate a batch {count, state}
//	GET    /sessions/{id}/personas        last generated batch
//	GET    /sessions/{id}/report          uniqueness report
//	POST   /sessions/{id}/reset           start a fresh lineage
//	GET    /sessions/{id}/export?format=  download csv, json or xlsx
package personas
