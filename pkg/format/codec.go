package format

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/snifferhu/RIDE/pkg/errors"
)

// Codec converts between a Document and one file syntax
type Codec interface {
	// Name is the format name used in configuration, e.g. "toml"
	Name() string

	// Extensions lists recognised file extensions; the first is used
	// when creating new files.
	Extensions() []string

	Decode(src []byte, filename string) (*Document, error)
	Encode(doc *Document) ([]byte, error)
}

var registry = []Codec{
	tomlCodec{},
	yamlCodec{},
	hclCodec{},
}

// ByName returns the codec registered under name
func ByName(name string) (Codec, error) {
	for _, c := range registry {
		if strings.EqualFold(c.Name(), name) {
			return c, nil
		}
	}
	return nil, errors.Newf(errors.ErrFormatUnknown, "unknown format %q", name).
		WithDetail("available", Names())
}

// ByPath returns the codec handling the extension of path
func ByPath(path string) (Codec, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, false
	}
	for _, c := range registry {
		for _, e := range c.Extensions() {
			if e == ext {
				return c, true
			}
		}
	}
	return nil, false
}

// IsDataFile reports whether path has a test data extension
func IsDataFile(path string) bool {
	_, ok := ByPath(path)
	return ok
}

// Names returns the registered format names, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, c := range registry {
		names = append(names, c.Name())
	}
	sort.Strings(names)
	return names
}

// FileName returns base with the default extension of c appended
func FileName(base string, c Codec) string {
	return base + c.Extensions()[0]
}

func decodeError(err error, filename string) error {
	return errors.Wrap(err, errors.ErrDataInvalid, "cannot parse test data").
		WithDetail("path", filename)
}
