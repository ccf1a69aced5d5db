package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phrazzld/medkb/internal/domain"
)

// Loader reads collections from a file system, typically os.DirFS or the
// embedded seed library.
type Loader struct {
	fsys   fs.FS
	logger *slog.Logger
}

// NewLoader creates a Loader reading from fsys. A nil logger falls back to
// slog.Default.
func NewLoader(fsys fs.FS, logger *slog.Logger) *Loader {
	if fsys == nil {
		panic("content: nil file system")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		fsys:   fsys,
		logger: logger.With(slog.String("component", "content_loader")),
	}
}

// Dirs returns the top-level directories that contain a manifest, in
// lexical order.
func (l *Loader) Dirs() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("list content root: %w", err)
	}

	var dirs []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if _, err := fs.Stat(l.fsys, path.Join(e.Name(), ManifestFile)); err != nil {
			l.logger.Debug("skipping directory without manifest", slog.String("dir", e.Name()))
			continue
		}
		dirs = append(dirs, e.Name())
	}
	return dirs, nil
}

// LoadCollection decodes the manifest and every record file of dir. Record
// files are read in lexical order, and documents within a file in stream
// order, which fixes the declaration order of the collection. Decode
// failures of all files are joined into the returned error; records from
// files that decoded cleanly are still returned alongside it.
func (l *Loader) LoadCollection(dir string) (Manifest, []*domain.Record, error) {
	manifest, err := l.loadManifest(dir)
	if err != nil {
		return Manifest{}, nil, err
	}

	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return Manifest{}, nil, fmt.Errorf("list collection %s: %w", dir, err)
	}

	var (
		records []*domain.Record
		errs    []error
	)
	for _, e := range entries {
		if e.IsDir() || e.Name() == ManifestFile || !isRecordFile(e.Name()) {
			continue
		}
		p := path.Join(dir, e.Name())
		decoded, err := l.loadRecords(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		records = append(records, decoded...)
	}

	l.logger.Debug("collection decoded",
		slog.String("dir", dir),
		slog.String("collection", manifest.Name),
		slog.Int("records", len(records)),
		slog.Int("file_errors", len(errs)))

	return manifest, records, errors.Join(errs...)
}

func (l *Loader) loadManifest(dir string) (Manifest, error) {
	p := path.Join(dir, ManifestFile)
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Manifest{}, fmt.Errorf("%w: %s", ErrNoManifest, p)
		}
		return Manifest{}, fmt.Errorf("read manifest %s: %w", p, err)
	}

	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return Manifest{}, &FileError{Path: p, Err: err}
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, &FileError{Path: p, Err: err}
	}
	return m, nil
}

func (l *Loader) loadRecords(p string) ([]*domain.Record, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, &FileError{Path: p, Err: err}
	}

	// Node.Decode ignores KnownFields; docs only detects empty documents.
	docs := yaml.NewDecoder(bytes.NewReader(data))
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var out []*domain.Record
	for doc := 0; ; doc++ {
		var node yaml.Node
		err := docs.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &FileError{Path: fmt.Sprintf("%s#%d", p, doc), Err: err}
		}

		var r domain.Record
		if err := dec.Decode(&r); err != nil {
			return nil, &FileError{Path: fmt.Sprintf("%s#%d", p, doc), Err: err}
		}
		if isEmptyDocument(&node) {
			continue
		}
		out = append(out, &r)
	}
	return out, nil
}

// isEmptyDocument reports whether a document holds nothing but comments,
// whitespace or an explicit null.
func isEmptyDocument(n *yaml.Node) bool {
	if len(n.Content) == 0 {
		return true
	}
	root := n.Content[0]
	return root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null"
}

func isRecordFile(name string) bool {
	switch path.Ext(name) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
