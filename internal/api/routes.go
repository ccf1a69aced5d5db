package api

import "github.com/go-chi/chi/v5"

// Routes registers the library endpoints on r.
func (h *LibraryHandler) Routes(r chi.Router) {
	r.Get("/collections", h.ListCollections)
	r.Route("/collections/{name}", func(r chi.Router) {
		r.Get("/", h.GetCollection)
		r.Get("/records", h.ListRecords)
		r.Get("/records/{id}", h.GetRecord)
		r.Get("/records/{id}/neighbors", h.GetRecordNeighbors)
		r.Get("/search", h.Search)
		r.Get("/facets/{facet}", h.Facet)
		r.Get("/categories", h.ListCategories)
	})
	r.Get("/records/{id}", h.ResolveRecord)
	r.Get("/records/{id}/neighbors", h.GetNeighbors)
}
