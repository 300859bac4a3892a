package model

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/snifferhu/RIDE/pkg/errors"
	"github.com/snifferhu/RIDE/pkg/format"
	"github.com/snifferhu/RIDE/pkg/logging"
	"github.com/snifferhu/RIDE/pkg/types"
)

// dataFile holds the state shared by suites and resources
type dataFile struct {
	fsys  types.FS
	cache *ResourceCache

	// source identifies the file; for directory suites it is the directory
	source string

	// path is the file read and written; empty for a directory suite
	// without an init file
	path string

	name  string
	codec format.Codec
	doc   *format.Document
	dirty bool
}

func (d *dataFile) Source() string { return d.source }

func (d *dataFile) Name() string { return d.name }

func (d *dataFile) IsDirty() bool { return d.dirty }

// MarkDirty flags the file as having unsaved edits
func (d *dataFile) MarkDirty() { d.dirty = true }

// Path returns the file written on save, empty when none is known yet
func (d *dataFile) Path() string { return d.path }

// Format returns the format name, or "" when the file has none
func (d *dataFile) Format() string {
	if d.codec == nil {
		return ""
	}
	return d.codec.Name()
}

// Document exposes the parsed content. Callers editing it directly must
// call MarkDirty.
func (d *dataFile) Document() *format.Document { return d.doc }

func (d *dataFile) Documentation() string { return d.doc.Documentation() }

func (d *dataFile) SetDocumentation(doc string) {
	d.doc.EnsureSettings().Documentation = doc
	d.dirty = true
}

func (d *dataFile) Keywords() []*types.Keyword {
	kws := make([]*types.Keyword, 0, len(d.doc.Keywords))
	for _, kw := range d.doc.Keywords {
		kws = append(kws, &types.Keyword{
			Name:   kw.Name,
			Source: d.name,
			Path:   d.source,
			Args:   kw.Args,
			Doc:    kw.Doc,
		})
	}
	return kws
}

// AddKeyword appends a user keyword
func (d *dataFile) AddKeyword(kw format.Keyword) {
	d.doc.Keywords = append(d.doc.Keywords, kw)
	d.dirty = true
}

// RemoveKeyword deletes the first keyword called name and reports whether
// one was found
func (d *dataFile) RemoveKeyword(name string) bool {
	for i, kw := range d.doc.Keywords {
		if kw.Name == name {
			d.doc.Keywords = append(d.doc.Keywords[:i], d.doc.Keywords[i+1:]...)
			d.dirty = true
			return true
		}
	}
	return false
}

// ResourceImports returns the declared resource paths, unresolved
func (d *dataFile) ResourceImports() []string { return d.doc.ResourceImports() }

// AddResourceImport declares a new resource import
func (d *dataFile) AddResourceImport(path string) {
	s := d.doc.EnsureSettings()
	s.Resources = append(s.Resources, path)
	d.dirty = true
}

// resolveResources loads every import through the cache. owner is the
// outer suite or resource so that relative paths resolve against it.
func (d *dataFile) resolveResources(owner types.DataFile) []types.Resource {
	imports := d.doc.ResourceImports()
	if d.cache == nil || len(imports) == 0 {
		return nil
	}

	logger := logging.GetLogger("model.imports")
	var resources []types.Resource
	for _, imp := range imports {
		res, err := d.cache.LoadResource(imp, owner)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("import", imp).
				Str("owner", d.source).
				Msg("Cannot load imported resource, skipping")
			continue
		}
		if res == nil {
			continue
		}
		resources = append(resources, res)
	}
	return resources
}

// write encodes the document and stores it at path
func (d *dataFile) write() error {
	if d.codec == nil || d.path == "" {
		return errors.New(errors.ErrSerialization, "file has no format").
			WithDetail("path", d.source)
	}

	out, err := d.codec.Encode(d.doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrSerialization, "cannot encode file").
			WithDetail("path", d.path)
	}

	if err := d.fsys.MkdirAll(filepath.Dir(d.path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "cannot create directory").
			WithDetail("path", d.path)
	}
	if err := d.fsys.WriteFile(d.path, out, 0644); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "cannot write file").
			WithDetail("path", d.path)
	}

	logger := logging.GetLogger("model.serialize")
	logger.Debug().
		Str("path", d.path).
		Str("format", d.codec.Name()).
		Int("bytes", len(out)).
		Msg("File saved")

	d.dirty = false
	return nil
}

// readDocument loads and decodes path with the codec for its extension
func readDocument(fsys types.FS, path string) (*format.Document, format.Codec, error) {
	codec, ok := format.ByPath(path)
	if !ok {
		return nil, nil, errors.New(errors.ErrDataInvalid, "unsupported file type").
			WithDetail("path", path)
	}

	src, err := fsys.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read file").
			WithDetail("path", path)
	}

	doc, err := codec.Decode(src, path)
	if err != nil {
		return nil, nil, err
	}
	return doc, codec, nil
}

// baseName strips the directory and the data file extension
func baseName(path string) string {
	base := filepath.Base(path)
	if format.IsDataFile(base) {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base
}

// suiteName turns a file or directory name into a suite name:
// "login_tests.toml" -> "Login Tests"
func suiteName(path string) string {
	words := strings.Fields(strings.ReplaceAll(baseName(path), "_", " "))
	for i, w := range words {
		if strings.ToLower(w) == w {
			r, size := utf8.DecodeRuneInString(w)
			words[i] = string(unicode.ToUpper(r)) + w[size:]
		}
	}
	return strings.Join(words, " ")
}
