package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/abhisek/learncode/internal/catalog"
)

// mdRenderer converts markdown to HTML. Raw HTML in the input is escaped
// because WithUnsafe is not set.
var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// Document is a named text download.
type Document struct {
	Filename string
	Title    string
	Markdown string
}

// CheatSheet returns the cheat sheet download for course.
func CheatSheet(course catalog.Course, f Format) Document {
	return Document{
		Filename: CheatSheetFilename(course.Title, f),
		Title:    course.Title + " Cheat Sheet",
		Markdown: course.CheatSheet,
	}
}

// ResourceDocument returns the download for a reference resource.
func ResourceDocument(r catalog.Resource, f Format) Document {
	return Document{
		Filename: ResourceFilename(r.Title, f),
		Title:    r.Title,
		Markdown: r.Content,
	}
}

// Write writes d in format f: markdown verbatim, or a standalone HTML page.
func (d Document) Write(w io.Writer, f Format) error {
	if f == FormatMarkdown {
		if _, err := io.WriteString(w, d.Markdown); err != nil {
			return fmt.Errorf("write %s: %w", d.Filename, err)
		}
		return nil
	}

	body, err := RenderMarkdown(d.Markdown)
	if err != nil {
		return err
	}
	if err := pageTmpl.Execute(w, struct {
		Title string
		Body  template.HTML
	}{d.Title, body}); err != nil {
		return fmt.Errorf("write %s: %w", d.Filename, err)
	}
	return nil
}

// RenderMarkdown converts markdown to an HTML fragment.
func RenderMarkdown(md string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; max-width: 860px; margin: 40px auto; padding: 0 20px; color: #111827; line-height: 1.6; }
  pre { background: #f3f4f6; padding: 12px; border-radius: 6px; overflow-x: auto; }
  code { font-family: "SFMono-Regular", Menlo, monospace; font-size: 0.9em; }
  table { border-collapse: collapse; }
  th, td { border: 1px solid #e5e7eb; padding: 6px 10px; text-align: left; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))
