package query

import (
	"fmt"
	"strings"

	"github.com/phrazzld/medkb/internal/catalog"
	"github.com/phrazzld/medkb/internal/domain"
)

// FilterByCategory returns the records whose category is exactly category.
func FilterByCategory(c *catalog.Collection, category domain.Category) []*domain.Record {
	return filter(c, func(r *domain.Record) bool {
		return r.Category == category
	})
}

// FilterByStatus returns the records in the given lifecycle status.
func FilterByStatus(c *catalog.Collection, status domain.Status) []*domain.Record {
	return filter(c, func(r *domain.Record) bool {
		return r.Status == status
	})
}

// FilterByTag returns the records having at least one entry under facet
// that contains value, compared case-insensitively. This covers "filter by
// risk factor", "filter by topic keyword" and similar lookups. Records with
// no entries under the facet never match, even for an empty value.
func FilterByTag(c *catalog.Collection, facet Facet, value string) []*domain.Record {
	needle := strings.ToLower(value)
	return filter(c, func(r *domain.Record) bool {
		return anyContains(facet.values(r), needle)
	})
}

// Search returns the records where at least one of the requested fields
// contains query as a case-insensitive substring. Fields not listed are
// never consulted. An empty query matches every record.
//
// Passing a Field that is not one of the declared constants is a
// programming error and panics; use ParseField for untrusted names.
func Search(c *catalog.Collection, query string, fields ...Field) []*domain.Record {
	for _, f := range fields {
		if !f.valid() {
			panic(fmt.Errorf("%w: %q", ErrUnknownField, f))
		}
	}
	if query == "" {
		return c.All()
	}

	needle := strings.ToLower(query)
	return filter(c, func(r *domain.Record) bool {
		for _, f := range fields {
			if anyContains(f.values(r), needle) {
				return true
			}
		}
		return false
	})
}

// Count returns the number of records in the collection. It does not scan.
func Count(c *catalog.Collection) int {
	return c.Count()
}

// FacetValues returns the distinct entries under facet across the
// collection, deduplicated case-insensitively and in order of first
// appearance. It backs "list all chief complaints" style lookups.
func FacetValues(c *catalog.Collection, facet Facet) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, r := range c.All() {
		for _, v := range facet.values(r) {
			key := strings.ToLower(v)
			if v == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, v)
		}
	}
	return out
}

func filter(c *catalog.Collection, keep func(*domain.Record) bool) []*domain.Record {
	all := c.All()
	out := make([]*domain.Record, 0, len(all))
	for _, r := range all {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func anyContains(values []string, lowerNeedle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), lowerNeedle) {
			return true
		}
	}
	return false
}
