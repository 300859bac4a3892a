package format

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

type hclCodec struct{}

func (hclCodec) Name() string { return "hcl" }

func (hclCodec) Extensions() []string { return []string{".hcl"} }

func (hclCodec) Decode(src []byte, filename string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, decodeError(diags, filename)
	}

	var doc Document
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, decodeError(diags, filename)
	}
	return &doc, nil
}

// Encode writes blocks by hand rather than through gohcl so that empty
// optional attributes are left out instead of being written as null.
func (hclCodec) Encode(doc *Document) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	if s := doc.Settings; s != nil {
		b := body.AppendNewBlock("settings", nil).Body()
		setString(b, "documentation", s.Documentation)
		setList(b, "resources", s.Resources)
		setList(b, "libraries", s.Libraries)
	}

	for _, v := range doc.Variables {
		b := body.AppendNewBlock("variable", nil).Body()
		b.SetAttributeValue("name", cty.StringVal(v.Name))
		b.SetAttributeValue("value", cty.StringVal(v.Value))
	}

	for _, tc := range doc.Tests {
		b := body.AppendNewBlock("test", nil).Body()
		b.SetAttributeValue("name", cty.StringVal(tc.Name))
		setString(b, "doc", tc.Doc)
		setList(b, "tags", tc.Tags)
		appendSteps(b, tc.Steps)
	}

	for _, kw := range doc.Keywords {
		b := body.AppendNewBlock("keyword", nil).Body()
		b.SetAttributeValue("name", cty.StringVal(kw.Name))
		setString(b, "doc", kw.Doc)
		setList(b, "args", kw.Args)
		appendSteps(b, kw.Steps)
	}

	return f.Bytes(), nil
}

func appendSteps(body *hclwrite.Body, steps []Step) {
	for _, st := range steps {
		b := body.AppendNewBlock("step", nil).Body()
		b.SetAttributeValue("keyword", cty.StringVal(st.Keyword))
		setList(b, "args", st.Args)
		setList(b, "assign", st.Assign)
	}
}

func setString(body *hclwrite.Body, name, value string) {
	if value == "" {
		return
	}
	body.SetAttributeValue(name, cty.StringVal(value))
}

func setList(body *hclwrite.Body, name string, values []string) {
	if len(values) == 0 {
		return
	}
	vals := make([]cty.Value, len(values))
	for i, v := range values {
		vals[i] = cty.StringVal(v)
	}
	body.SetAttributeValue(name, cty.ListVal(vals))
}
