package format

import (
	"bytes"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/snifferhu/RIDE/pkg/errors"
)

type tomlCodec struct{}

func (tomlCodec) Name() string { return "toml" }

func (tomlCodec) Extensions() []string { return []string{".toml"} }

func (tomlCodec) Decode(src []byte, filename string) (*Document, error) {
	var doc Document
	dec := toml.NewDecoder(bytes.NewReader(src))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, decodeError(err, filename)
	}
	return &doc, nil
}

func (tomlCodec) Encode(doc *Document) ([]byte, error) {
	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSerialization, "cannot encode toml")
	}
	return out, nil
}
