package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/medkb/internal/api/shared"
	"github.com/phrazzld/medkb/internal/catalog"
	"github.com/phrazzld/medkb/internal/domain"
)

// collectionFromPath resolves the {name} path parameter.
func (h *LibraryHandler) collectionFromPath(r *http.Request) (*catalog.Collection, error) {
	name := chi.URLParam(r, "name")
	c, ok := h.lib.Collection(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCollectionNotFound, name)
	}
	return c, nil
}

func parseStatus(r *http.Request) (domain.Status, bool, error) {
	raw := shared.QueryParam(r, "status")
	if raw == "" {
		return "", false, nil
	}
	s := domain.Status(strings.ToLower(raw))
	if !s.Valid() {
		return "", false, fmt.Errorf("%w: status %q", ErrInvalidQueryParam, raw)
	}
	return s, true, nil
}

// parseRelationships reads a comma-separated relationship filter. An
// absent parameter means every relationship.
func parseRelationships(r *http.Request) ([]domain.Relationship, error) {
	raw := shared.QueryParam(r, "relationship")
	var out []domain.Relationship
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		rel := domain.Relationship(part)
		if !rel.Valid() {
			return nil, fmt.Errorf("%w: relationship %q", ErrInvalidQueryParam, part)
		}
		out = append(out, rel)
	}
	return out, nil
}

// parseMaxLevel reads the optional max_level parameter. Zero means no limit.
func parseMaxLevel(r *http.Request) (int, error) {
	raw := shared.QueryParam(r, "max_level")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < domain.MinLevel || n > domain.MaxLevel {
		return 0, fmt.Errorf("%w: max_level must be between %d and %d",
			ErrInvalidQueryParam, domain.MinLevel, domain.MaxLevel)
	}
	return n, nil
}

// truncateLevels returns a copy of rec holding only levels up to maxLevel.
func truncateLevels(rec *domain.Record, maxLevel int) *domain.Record {
	out := rec.Clone()
	if maxLevel == 0 {
		return out
	}
	for n := range out.Levels {
		if n > maxLevel {
			delete(out.Levels, n)
		}
	}
	return out
}
