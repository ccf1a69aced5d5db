package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/phrazzld/medkb/internal/catalog"
	"github.com/phrazzld/medkb/internal/content"
	"github.com/phrazzld/medkb/internal/graph"
)

// Library is the set of published collections and the graph over them.
type Library struct {
	collections []*catalog.Collection
	byName      map[string]*catalog.Collection
	graph       *graph.Graph
}

// New assembles a library from already built collections.
func New(collections ...*catalog.Collection) (*Library, error) {
	byName := make(map[string]*catalog.Collection, len(collections))
	for _, c := range collections {
		if _, dup := byName[c.Name()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCollection, c.Name())
		}
		byName[c.Name()] = c
	}

	g, err := graph.New(collections...)
	if err != nil {
		return nil, err
	}
	return &Library{
		collections: slices.Clone(collections),
		byName:      byName,
		graph:       g,
	}, nil
}

// Load reads every collection the loader can find, builds each one and
// then the cross-reference graph. Failures of all collections are gathered
// into a *Report. The graph is only validated once every collection built,
// since a missing collection would surface as spurious dangling references.
func Load(ctx context.Context, loader *content.Loader, logger *slog.Logger) (*Library, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dirs, err := loader.Dirs()
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		return nil, ErrNoCollections
	}

	var (
		report      Report
		collections []*catalog.Collection
		seen        = make(map[string]string)
	)
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c, err := buildCollection(loader, dir)
		if err != nil {
			logger.WarnContext(ctx, "collection rejected",
				slog.String("dir", dir),
				slog.String("error", err.Error()))
			report.add(dir, err)
			continue
		}
		if other, dup := seen[c.Name()]; dup {
			report.add(dir, fmt.Errorf("%w: %q also declared by %s", ErrDuplicateCollection, c.Name(), other))
			continue
		}
		seen[c.Name()] = dir
		collections = append(collections, c)

		logger.InfoContext(ctx, "collection built",
			slog.String("collection", c.Name()),
			slog.String("kind", string(c.Kind())),
			slog.Int("records", c.Count()))
	}

	if err := report.err(); err != nil {
		return nil, err
	}

	lib, err := New(collections...)
	if err != nil {
		report.Graph = err
		logger.WarnContext(ctx, "cross-reference graph rejected", slog.String("error", err.Error()))
		return nil, report.err()
	}

	logger.InfoContext(ctx, "library loaded",
		slog.Int("collections", len(collections)),
		slog.Int("edges", len(lib.graph.Edges())))
	return lib, nil
}

// buildCollection validates the records that did decode even when some
// files did not, so decode and validation problems are reported together.
func buildCollection(loader *content.Loader, dir string) (*catalog.Collection, error) {
	m, records, loadErr := loader.LoadCollection(dir)
	if m.Name == "" {
		return nil, loadErr
	}
	schema, err := m.Schema()
	if err != nil {
		return nil, errors.Join(loadErr, fmt.Errorf("collection %s: %w", dir, err))
	}
	c, buildErr := catalog.Build(m.Name, schema, records)
	if err := errors.Join(loadErr, buildErr); err != nil {
		return nil, err
	}
	return c, nil
}

// Collection returns the named collection.
func (l *Library) Collection(name string) (*catalog.Collection, bool) {
	c, ok := l.byName[name]
	return c, ok
}

// Names returns the collection names in sorted order.
func (l *Library) Names() []string {
	return slices.Sorted(maps.Keys(l.byName))
}

// Collections returns the collections in load order.
func (l *Library) Collections() []*catalog.Collection {
	return slices.Clone(l.collections)
}

// Graph returns the cross-reference graph over all collections.
func (l *Library) Graph() *graph.Graph {
	return l.graph
}

// Resolve finds a record by id across all collections.
func (l *Library) Resolve(id string) (graph.Node, error) {
	n, ok := l.graph.Lookup(id)
	if !ok {
		return graph.Node{}, fmt.Errorf("%w: %q", catalog.ErrRecordNotFound, id)
	}
	return n, nil
}

// IsReport reports whether err carries a load Report.
func IsReport(err error) bool {
	var r *Report
	return errors.As(err, &r)
}
