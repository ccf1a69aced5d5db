package api

import (
	"github.com/phrazzld/medkb/internal/catalog"
	"github.com/phrazzld/medkb/internal/domain"
	"github.com/phrazzld/medkb/internal/graph"
)

// CollectionResponse summarizes one collection.
type CollectionResponse struct {
	Name       string            `json:"name"`
	Kind       domain.Kind       `json:"kind"`
	Count      int               `json:"count"`
	Categories []domain.Category `json:"categories"`
}

// RecordSummary is the list form of a record.
type RecordSummary struct {
	ID       string          `json:"id"`
	Kind     domain.Kind     `json:"kind"`
	Name     string          `json:"name"`
	Category domain.Category `json:"category"`
	Status   domain.Status   `json:"status"`
	Summary  string          `json:"summary,omitempty"`
}

// RecordListResponse wraps a list of records.
type RecordListResponse struct {
	Count   int             `json:"count"`
	Records []RecordSummary `json:"records"`
}

// RecordResponse is a full record and the collection it was found in.
type RecordResponse struct {
	Collection string         `json:"collection"`
	Record     *domain.Record `json:"record"`
}

// FacetValuesResponse lists the distinct values under one facet.
type FacetValuesResponse struct {
	Facet  string   `json:"facet"`
	Values []string `json:"values"`
}

// CategoriesResponse lists a collection's category enumeration.
type CategoriesResponse struct {
	Categories []CategoryCount `json:"categories"`
}

// CategoryCount is one category and how many records use it.
type CategoryCount struct {
	Category domain.Category `json:"category"`
	Count    int             `json:"count"`
}

// NeighborResponse is one outgoing cross-reference.
type NeighborResponse struct {
	Collection   string              `json:"collection"`
	ID           string              `json:"id"`
	Kind         domain.Kind         `json:"kind"`
	Name         string              `json:"name"`
	Relationship domain.Relationship `json:"relationship"`
	Label        string              `json:"label,omitempty"`
}

// NeighborsResponse lists the outgoing cross-references of a record.
type NeighborsResponse struct {
	Collection string             `json:"collection"`
	ID         string             `json:"id"`
	Neighbors  []NeighborResponse `json:"neighbors"`
}

func collectionToResponse(c *catalog.Collection) CollectionResponse {
	return CollectionResponse{
		Name:       c.Name(),
		Kind:       c.Kind(),
		Count:      c.Count(),
		Categories: c.Schema().Categories,
	}
}

func recordToSummary(r *domain.Record) RecordSummary {
	s := RecordSummary{
		ID:       r.ID,
		Kind:     r.Kind,
		Name:     r.Name,
		Category: r.Category,
		Status:   r.Status,
	}
	if levels := r.OrderedLevels(); len(levels) > 0 {
		s.Summary = levels[0].Summary
	}
	return s
}

func recordsToList(records []*domain.Record) RecordListResponse {
	out := RecordListResponse{
		Count:   len(records),
		Records: make([]RecordSummary, len(records)),
	}
	for i, r := range records {
		out.Records[i] = recordToSummary(r)
	}
	return out
}

func neighborToResponse(n graph.Neighbor) NeighborResponse {
	return NeighborResponse{
		Collection:   n.Collection,
		ID:           n.Record.ID,
		Kind:         n.Record.Kind,
		Name:         n.Record.Name,
		Relationship: n.Relationship,
		Label:        n.Label,
	}
}
