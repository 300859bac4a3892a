// Package text renders results as plain text without styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/snifferhu/RIDE/pkg/ui/display"
)

// Renderer writes unstyled, line oriented output
type Renderer struct {
	output io.Writer
}

// New creates a text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders the display result types; other values are printed
// with %+v
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.ModelReport:
		return r.renderModel(v)
	case *display.KeywordList:
		return r.renderKeywords(v)
	case *display.KeywordDoc:
		return r.renderDoc(v)
	case *display.SaveReport:
		return r.renderSave(v)
	case *display.SpecReport:
		return r.printf("Wrote %d keyword(s) of %s to %s\n", v.Keywords, v.Name, v.Output)
	default:
		return r.printf("%+v\n", result)
	}
}

func (r *Renderer) RenderError(err error) error {
	return r.printf("Error: %v\n", err)
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.printf("%s\n", msg)
}

func (r *Renderer) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(r.output, format, args...)
	return err
}

func (r *Renderer) renderModel(m *display.ModelReport) error {
	if m.Root != nil {
		if err := r.printf("Suites (%s)\n", m.RootDir); err != nil {
			return err
		}
		if err := r.renderFile(*m.Root, 1); err != nil {
			return err
		}
	}

	if err := r.printf("Resources (%d)\n", len(m.Resources)); err != nil {
		return err
	}
	for _, res := range m.Resources {
		if err := r.renderFile(res, 1); err != nil {
			return err
		}
	}

	for _, src := range m.WithoutFormat {
		if err := r.printf("No format: %s\n", src); err != nil {
			return err
		}
	}
	if m.Dirty {
		return r.printf("Unsaved changes\n")
	}
	return nil
}

func (r *Renderer) renderFile(f display.FileReport, depth int) error {
	flags := f.Kind
	if f.Format != "" {
		flags += ", " + f.Format
	}
	if f.Dirty {
		flags += ", modified"
	}
	indent := strings.Repeat("  ", depth)
	if err := r.printf("%s%s [%s] %s\n", indent, f.Name, flags, f.Source); err != nil {
		return err
	}
	for _, child := range f.Children {
		if err := r.renderFile(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderKeywords(l *display.KeywordList) error {
	if len(l.Keywords) == 0 {
		return r.printf("No keywords found\n")
	}
	for _, kw := range l.Keywords {
		line := kw.LongName()
		if len(kw.Args) > 0 {
			line += "  " + strings.Join(kw.Args, " | ")
		}
		if err := r.printf("%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderDoc(d *display.KeywordDoc) error {
	kw := d.Keyword
	if err := r.printf("%s\n", kw.LongName()); err != nil {
		return err
	}
	if len(kw.Args) > 0 {
		if err := r.printf("Arguments: %s\n", strings.Join(kw.Args, ", ")); err != nil {
			return err
		}
	}
	if kw.Path != "" {
		if err := r.printf("Defined in: %s\n", kw.Path); err != nil {
			return err
		}
	}
	if kw.Doc == "" {
		return nil
	}
	return r.printf("\n%s\n", kw.Doc)
}

func (r *Renderer) renderSave(s *display.SaveReport) error {
	for _, src := range s.Formatted {
		if err := r.printf("Format set: %s\n", src); err != nil {
			return err
		}
	}
	for _, src := range s.Saved {
		if err := r.printf("Saved: %s\n", src); err != nil {
			return err
		}
	}
	for _, f := range s.Failed {
		if err := r.printf("Failed: %s: %s\n", f.Source, f.Error); err != nil {
			return err
		}
	}
	if len(s.Saved) == 0 && len(s.Failed) == 0 {
		return r.printf("Nothing to save\n")
	}
	return nil
}
