// Package terminal renders results with colors, tables and formatted
// keyword documentation
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
	"github.com/snifferhu/RIDE/pkg/errors"
	"github.com/snifferhu/RIDE/pkg/ui/display"
	"github.com/snifferhu/RIDE/pkg/ui/styles"
)

// DocWidth is the wrap width of rendered keyword documentation
const DocWidth = 80

// Renderer writes styled output for interactive terminals
type Renderer struct {
	output io.Writer
	width  int
}

// New creates a terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w, width: DocWidth}, nil
}

// RenderResult renders the display result types; other values are printed
// with %+v
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.ModelReport:
		return r.write(r.model(v))
	case *display.KeywordList:
		return r.keywords(v)
	case *display.KeywordDoc:
		return r.write(r.doc(v))
	case *display.SaveReport:
		return r.write(r.save(v))
	case *display.SpecReport:
		return r.write(fmt.Sprintf("%s %d keyword(s) of %s to %s\n",
			styles.Render("Clean", "Wrote"), v.Keywords, v.Name, styles.Render("Path", v.Output)))
	default:
		return r.write(fmt.Sprintf("%+v\n", result))
	}
}

// RenderError shows the error code, when there is one, before the message
func (r *Renderer) RenderError(err error) error {
	label := styles.Render("Error", "Error")
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		label += " " + styles.Render("ErrorCode", "["+string(code)+"]")
	}
	return r.write(fmt.Sprintf("%s %v\n", label, err))
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.write(msg + "\n")
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.output, s)
	return err
}

func (r *Renderer) model(m *display.ModelReport) string {
	var b strings.Builder
	if m.Root != nil {
		b.WriteString(styles.Render("Header", "Suites") + "\n")
		writeFile(&b, *m.Root, 1, "Suite")
	}

	b.WriteString(styles.Render("Header", fmt.Sprintf("Resources (%d)", len(m.Resources))) + "\n")
	if len(m.Resources) == 0 {
		b.WriteString("  " + styles.Render("Muted", "none") + "\n")
	}
	for _, res := range m.Resources {
		writeFile(&b, res, 1, "Resource")
	}

	for _, src := range m.WithoutFormat {
		b.WriteString(styles.Render("Dirty", "No format") + " " + styles.Render("Path", src) + "\n")
	}
	if m.Dirty {
		b.WriteString(styles.Render("Dirty", "Unsaved changes") + "\n")
	} else {
		b.WriteString(styles.Render("Clean", "All changes saved") + "\n")
	}
	return b.String()
}

func writeFile(b *strings.Builder, f display.FileReport, depth int, style string) {
	line := strings.Repeat("  ", depth) + styles.Render(style, f.Name)
	if f.Format != "" {
		line += " " + styles.Render("Muted", f.Format)
	}
	if f.Dirty {
		line += " " + styles.Render("Dirty", "*")
	}
	line += "  " + styles.Render("Path", f.Source)
	b.WriteString(line + "\n")

	for _, child := range f.Children {
		writeFile(b, child, depth+1, style)
	}
}

func (r *Renderer) keywords(l *display.KeywordList) error {
	if len(l.Keywords) == 0 {
		return r.write(styles.Render("Muted", "No keywords found") + "\n")
	}

	data := pterm.TableData{{"Keyword", "Source", "Arguments"}}
	for _, kw := range l.Keywords {
		data = append(data, []string{kw.Name, kw.Source, strings.Join(kw.Args, ", ")})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	return r.write(table + "\n")
}

func (r *Renderer) doc(d *display.KeywordDoc) string {
	kw := d.Keyword

	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", kw.Name)
	fmt.Fprintf(&md, "*%s*\n\n", kw.LongName())
	if len(kw.Args) > 0 {
		md.WriteString("## Arguments\n\n")
		for _, a := range kw.Args {
			fmt.Fprintf(&md, "- `%s`\n", a)
		}
		md.WriteString("\n")
	}
	if kw.Doc != "" {
		md.WriteString(kw.Doc + "\n")
	}

	return renderMarkdown(md.String(), r.width)
}

// renderMarkdown formats content with glamour, returning it unchanged if
// glamour fails
func renderMarkdown(content string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}

func (r *Renderer) save(s *display.SaveReport) string {
	var b strings.Builder
	for _, src := range s.Formatted {
		b.WriteString(styles.Render("Muted", "format set") + "  " + styles.Render("Path", src) + "\n")
	}
	for _, src := range s.Saved {
		b.WriteString(styles.Render("Clean", "saved") + "  " + styles.Render("Path", src) + "\n")
	}
	for _, f := range s.Failed {
		b.WriteString(styles.Render("Error", "failed") + " " + styles.Render("Path", f.Source) + ": " + f.Error + "\n")
	}
	if len(s.Saved) == 0 && len(s.Failed) == 0 {
		b.WriteString(styles.Render("Muted", "Nothing to save") + "\n")
	}
	return b.String()
}
