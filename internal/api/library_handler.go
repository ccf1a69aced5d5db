package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/medkb/internal/api/shared"
	"github.com/phrazzld/medkb/internal/catalog"
	"github.com/phrazzld/medkb/internal/domain"
	"github.com/phrazzld/medkb/internal/library"
	"github.com/phrazzld/medkb/internal/platform/logger"
	"github.com/phrazzld/medkb/internal/query"
)

// LibraryHandler serves read-only requests over a loaded library.
type LibraryHandler struct {
	lib    *library.Library
	logger *slog.Logger
}

// NewLibraryHandler creates a new LibraryHandler.
func NewLibraryHandler(lib *library.Library, log *slog.Logger) *LibraryHandler {
	if lib == nil {
		panic("library cannot be nil for LibraryHandler")
	}
	if log == nil {
		panic("logger cannot be nil for LibraryHandler")
	}
	return &LibraryHandler{
		lib:    lib,
		logger: log,
	}
}

// requestLogger returns the request-scoped logger, which carries the trace
// id, tagged with this handler's component.
func (h *LibraryHandler) requestLogger(r *http.Request) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), h.logger).
		With(slog.String("component", "library_handler"))
}

func (h *LibraryHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, h.requestLogger(r), MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// ListCollections handles GET /api/collections.
func (h *LibraryHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	names := h.lib.Names()
	out := make([]CollectionResponse, 0, len(names))
	for _, name := range names {
		c, _ := h.lib.Collection(name)
		out = append(out, collectionToResponse(c))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// GetCollection handles GET /api/collections/{name}.
func (h *LibraryHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	c, err := h.collectionFromPath(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, collectionToResponse(c))
}

// ListRecords handles GET /api/collections/{name}/records. The optional
// category and status parameters narrow the list; both must match.
func (h *LibraryHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	c, err := h.collectionFromPath(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	status, hasStatus, err := parseStatus(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	records := c.All()
	if category := shared.QueryParam(r, "category"); category != "" {
		records = query.FilterByCategory(c, domain.Category(category))
	}
	if hasStatus {
		records = keepStatus(records, status)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, recordsToList(records))
}

func keepStatus(records []*domain.Record, status domain.Status) []*domain.Record {
	out := make([]*domain.Record, 0, len(records))
	for _, rec := range records {
		if rec.Status == status {
			out = append(out, rec)
		}
	}
	return out
}

// GetRecord handles GET /api/collections/{name}/records/{id}. The optional
// max_level parameter limits the depth of explanation returned.
func (h *LibraryHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	c, err := h.collectionFromPath(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	maxLevel, err := parseMaxLevel(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	id := chi.URLParam(r, "id")
	rec, ok := c.GetByID(id)
	if !ok {
		h.handleError(w, r, fmt.Errorf("%w: %q in %s", catalog.ErrRecordNotFound, id, c.Name()))
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, RecordResponse{
		Collection: c.Name(),
		Record:     truncateLevels(rec, maxLevel),
	})
}

// Search handles GET /api/collections/{name}/search?q=&fields=. Without a
// fields parameter the general text fields are searched.
func (h *LibraryHandler) Search(w http.ResponseWriter, r *http.Request) {
	c, err := h.collectionFromPath(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	fields := query.TextFields()
	if shared.QueryParamSet(r, "fields") {
		fields, err = query.ParseFields(shared.QueryParam(r, "fields"))
		if err != nil {
			h.handleError(w, r, err)
			return
		}
	}

	q := shared.QueryParam(r, "q")
	results := query.Search(c, q, fields...)

	h.requestLogger(r).Debug("search",
		slog.String("collection", c.Name()),
		slog.String("query", q),
		slog.Int("fields", len(fields)),
		slog.Int("results", len(results)))

	shared.RespondWithJSON(w, r, http.StatusOK, recordsToList(results))
}

// Facet handles GET /api/collections/{name}/facets/{facet}. With a value
// parameter it returns the matching records, otherwise the distinct
// values present under the facet.
func (h *LibraryHandler) Facet(w http.ResponseWriter, r *http.Request) {
	c, err := h.collectionFromPath(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	facet, err := query.ParseFacet(chi.URLParam(r, "facet"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if shared.QueryParamSet(r, "value") {
		records := query.FilterByTag(c, facet, shared.QueryParam(r, "value"))
		shared.RespondWithJSON(w, r, http.StatusOK, recordsToList(records))
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, FacetValuesResponse{
		Facet:  string(facet),
		Values: query.FacetValues(c, facet),
	})
}

// ListCategories handles GET /api/collections/{name}/categories. Every
// category of the enumeration is listed, including unused ones.
func (h *LibraryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	c, err := h.collectionFromPath(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	cats := c.Schema().Categories
	out := CategoriesResponse{Categories: make([]CategoryCount, len(cats))}
	for i, cat := range cats {
		out.Categories[i] = CategoryCount{Category: cat, Count: len(query.FilterByCategory(c, cat))}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// ResolveRecord handles GET /api/records/{id}, finding a record in any
// collection.
func (h *LibraryHandler) ResolveRecord(w http.ResponseWriter, r *http.Request) {
	maxLevel, err := parseMaxLevel(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	n, err := h.lib.Resolve(chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, RecordResponse{
		Collection: n.Collection,
		Record:     truncateLevels(n.Record, maxLevel),
	})
}

// GetNeighbors handles GET /api/records/{id}/neighbors?relationship=.
// Only edges declared by the record itself are returned.
func (h *LibraryHandler) GetNeighbors(w http.ResponseWriter, r *http.Request) {
	n, err := h.lib.Resolve(chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithNeighbors(w, r, n.Collection, n.Record.ID)
}

// GetRecordNeighbors handles
// GET /api/collections/{name}/records/{id}/neighbors?relationship=.
func (h *LibraryHandler) GetRecordNeighbors(w http.ResponseWriter, r *http.Request) {
	c, err := h.collectionFromPath(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	id := chi.URLParam(r, "id")
	if _, ok := c.GetByID(id); !ok {
		h.handleError(w, r, fmt.Errorf("%w: %q in %s", catalog.ErrRecordNotFound, id, c.Name()))
		return
	}
	h.respondWithNeighbors(w, r, c.Name(), id)
}

func (h *LibraryHandler) respondWithNeighbors(w http.ResponseWriter, r *http.Request, collection, id string) {
	rels, err := parseRelationships(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	neighbors := h.lib.Graph().NeighborsIn(collection, id, rels...)
	out := NeighborsResponse{
		Collection: collection,
		ID:         id,
		Neighbors:  make([]NeighborResponse, len(neighbors)),
	}
	for i, n := range neighbors {
		out.Neighbors[i] = neighborToResponse(n)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}
