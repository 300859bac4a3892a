// Package kwspec exports keyword lists as keyword spec XML and reads such
// specs back, so library keywords can be listed next to user keywords.
//
// The document shape is:
//
//	<keywordspec name="common" type="resource" generated="2024-01-02T15:04:05Z">
//	  <kw name="Login As" source="/path/common.toml">
//	    <arguments>
//	      <arg>${user}</arg>
//	    </arguments>
//	    <doc>Logs in.</doc>
//	  </kw>
//	</keywordspec>
package kwspec

import (
	"io"
	"time"

	"github.com/beevik/etree"
	"github.com/snifferhu/RIDE/pkg/errors"
	"github.com/snifferhu/RIDE/pkg/types"
)

const (
	rootTag      = "keywordspec"
	keywordTag   = "kw"
	argumentsTag = "arguments"
	argTag       = "arg"
	docTag       = "doc"
)

// Spec is a named set of keywords
type Spec struct {
	Name      string
	Type      string
	Generated time.Time
	Keywords  []*types.Keyword
}

// New creates a spec of the given keywords stamped with the current time
func New(name string, kws []*types.Keyword) *Spec {
	return &Spec{
		Name:      name,
		Type:      "resource",
		Generated: time.Now().UTC().Truncate(time.Second),
		Keywords:  kws,
	}
}

// Document builds the XML document for s
func (s *Spec) Document() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement(rootTag)
	root.CreateAttr("name", s.Name)
	if s.Type != "" {
		root.CreateAttr("type", s.Type)
	}
	if !s.Generated.IsZero() {
		root.CreateAttr("generated", s.Generated.Format(time.RFC3339))
	}

	for _, kw := range s.Keywords {
		el := root.CreateElement(keywordTag)
		el.CreateAttr("name", kw.Name)
		if kw.Path != "" {
			el.CreateAttr("source", kw.Path)
		}
		args := el.CreateElement(argumentsTag)
		for _, a := range kw.Args {
			args.CreateElement(argTag).SetText(a)
		}
		el.CreateElement(docTag).SetText(kw.Doc)
	}

	doc.Indent(2)
	return doc
}

// WriteTo writes the indented XML document to w
func (s *Spec) WriteTo(w io.Writer) (int64, error) {
	n, err := s.Document().WriteTo(w)
	if err != nil {
		return n, errors.Wrap(err, errors.ErrFileWrite, "cannot write keyword spec")
	}
	return n, nil
}

// Bytes returns the indented XML document
func (s *Spec) Bytes() ([]byte, error) {
	out, err := s.Document().WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSerialization, "cannot encode keyword spec")
	}
	return out, nil
}

// Parse reads a keyword spec document. Keywords take the spec name as
// their source.
func Parse(data []byte) (*Spec, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrDataInvalid, "invalid keyword spec XML")
	}

	root := doc.SelectElement(rootTag)
	if root == nil {
		return nil, errors.Newf(errors.ErrDataInvalid, "missing <%s> root element", rootTag)
	}

	spec := &Spec{
		Name: root.SelectAttrValue("name", ""),
		Type: root.SelectAttrValue("type", ""),
	}
	if spec.Name == "" {
		return nil, errors.New(errors.ErrDataInvalid, "keyword spec has no name")
	}
	if ts := root.SelectAttrValue("generated", ""); ts != "" {
		generated, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrDataInvalid, "invalid generated timestamp").
				WithDetail("value", ts)
		}
		spec.Generated = generated
	}

	for _, el := range root.SelectElements(keywordTag) {
		name := el.SelectAttrValue("name", "")
		if name == "" {
			return nil, errors.New(errors.ErrDataInvalid, "keyword without a name").
				WithDetail("spec", spec.Name)
		}
		kw := &types.Keyword{
			Name:   name,
			Source: spec.Name,
			Path:   el.SelectAttrValue("source", ""),
		}
		for _, arg := range el.FindElements("./" + argumentsTag + "/" + argTag) {
			kw.Args = append(kw.Args, arg.Text())
		}
		if d := el.SelectElement(docTag); d != nil {
			kw.Doc = d.Text()
		}
		spec.Keywords = append(spec.Keywords, kw)
	}
	return spec, nil
}

// ReadFile parses the keyword spec stored at path
func ReadFile(fsys types.FS, path string) (*Spec, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read keyword spec").
			WithDetail("path", path)
	}
	spec, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDataInvalid, "cannot load keyword spec").
			WithDetail("path", path)
	}
	return spec, nil
}
