package format

import (
	"bytes"
	"io"

	"github.com/snifferhu/RIDE/pkg/errors"
	"gopkg.in/yaml.v3"
)

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Extensions() []string { return []string{".yaml", ".yml"} }

func (yamlCodec) Decode(src []byte, filename string) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, decodeError(err, filename)
	}
	return &doc, nil
}

func (yamlCodec) Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrSerialization, "cannot encode yaml")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrSerialization, "cannot encode yaml")
	}
	return buf.Bytes(), nil
}
