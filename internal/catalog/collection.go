package catalog

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/phrazzld/medkb/internal/domain"
)

// Collection is an immutable keyed set of records for one content domain.
// All accessors are safe for concurrent use. Returned records are shared
// with the collection and must be treated as read-only.
type Collection struct {
	name    string
	schema  domain.Schema
	records []*domain.Record
	byID    map[string]*domain.Record
	count   int
}

// Build validates every record against schema and returns the collection.
// Construction is all-or-nothing: on any problem no collection is returned
// and the error wraps a domain.ValidationErrors report listing every
// problem found, in an order independent of the input order.
//
// Records are copied; later changes to the inputs do not affect the
// collection. A nil record is a programming error and panics.
func Build(name string, schema domain.Schema, records []*domain.Record) (*Collection, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyCollectionName
	}
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("build collection %q: %w", name, err)
	}

	var problems domain.ValidationErrors
	occurrences := make(map[string]int, len(records))
	for _, r := range records {
		problems = append(problems, schema.Check(r)...)
		if r.ID != "" {
			occurrences[r.ID]++
		}
	}
	for id, n := range occurrences {
		if n > 1 {
			problems = append(problems, domain.NewFieldError(id, "id", domain.ErrDuplicateID,
				fmt.Sprintf("declared %d times", n)))
		}
	}
	if err := problems.Err(); err != nil {
		return nil, fmt.Errorf("build collection %q: %w", name, err)
	}

	c := &Collection{
		name:    name,
		schema:  domain.Schema{Kind: schema.Kind, Categories: slices.Clone(schema.Categories)},
		records: make([]*domain.Record, 0, len(records)),
		byID:    make(map[string]*domain.Record, len(records)),
	}
	for _, r := range records {
		c.add(r.Clone())
	}
	c.count = len(c.records)
	return c, nil
}

func (c *Collection) add(r *domain.Record) {
	c.records = append(c.records, r)
	c.byID[r.ID] = r
}

func (c *Collection) ready() {
	if c == nil || c.byID == nil {
		panic(ErrCollectionNotBuilt)
	}
}

// Name returns the collection name.
func (c *Collection) Name() string {
	c.ready()
	return c.name
}

// Kind returns the kind shared by every record in the collection.
func (c *Collection) Kind() domain.Kind {
	c.ready()
	return c.schema.Kind
}

// Schema returns a copy of the collection schema.
func (c *Collection) Schema() domain.Schema {
	c.ready()
	return domain.Schema{Kind: c.schema.Kind, Categories: slices.Clone(c.schema.Categories)}
}

// GetByID returns the record with exactly this id. The lookup is
// case-sensitive; ok is false when no such record exists.
func (c *Collection) GetByID(id string) (*domain.Record, bool) {
	c.ready()
	r, ok := c.byID[id]
	return r, ok
}

// All returns the records in declaration order. The slice is a fresh copy.
func (c *Collection) All() []*domain.Record {
	c.ready()
	return slices.Clone(c.records)
}

// Count returns the number of records. It is fixed at build time.
func (c *Collection) Count() int {
	c.ready()
	return c.count
}

// Categories returns the distinct categories in use, in the order they
// first appear in All.
func (c *Collection) Categories() []domain.Category {
	c.ready()
	seen := make(map[domain.Category]bool, len(c.schema.Categories))
	out := make([]domain.Category, 0, len(c.schema.Categories))
	for _, r := range c.records {
		if !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	return out
}

// Replace returns a new collection in which the record with next's id is
// replaced by next. The receiver is unchanged. The replacement must be a
// valid revision of the existing record: same id, higher version and the
// original creation time.
func (c *Collection) Replace(next *domain.Record) (*Collection, error) {
	c.ready()
	if next == nil {
		panic(domain.ErrNilRecord)
	}
	prev, ok := c.byID[next.ID]
	if !ok {
		return nil, fmt.Errorf("replace %q in %q: %w", next.ID, c.name, ErrRecordNotFound)
	}
	if err := domain.CheckRevision(prev, next); err != nil {
		return nil, fmt.Errorf("replace %q in %q: %w", next.ID, c.name, err)
	}
	if err := c.schema.Check(next).Err(); err != nil {
		return nil, fmt.Errorf("replace %q in %q: %w", next.ID, c.name, err)
	}

	out := &Collection{
		name:    c.name,
		schema:  c.schema,
		records: make([]*domain.Record, 0, len(c.records)),
		byID:    make(map[string]*domain.Record, len(c.byID)),
		count:   c.count,
	}
	for _, r := range c.records {
		if r.ID == next.ID {
			r = next.Clone()
		}
		out.add(r)
	}
	return out, nil
}

// Deprecate returns a new collection in which the record is marked
// deprecated as of at. Records are never removed.
func (c *Collection) Deprecate(id string, at time.Time) (*Collection, error) {
	c.ready()
	prev, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("deprecate %q in %q: %w", id, c.name, ErrRecordNotFound)
	}
	next, err := prev.Deprecated(at)
	if err != nil {
		return nil, fmt.Errorf("deprecate %q in %q: %w", id, c.name, err)
	}
	return c.Replace(next)
}
