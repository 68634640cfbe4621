package runner

import (
	"context"
	"html/template"
	"strings"
)

// Markup handles HTML and CSS lessons. Nothing is executed; the learner
// looks at Preview instead.
type Markup struct{}

// NewMarkup creates a Markup runner.
func NewMarkup() *Markup {
	return &Markup{}
}

func (m *Markup) Language() string { return "markup" }

func (m *Markup) Execute(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return PreviewMessage, nil
}

var cssPreviewTmpl = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Preview</title>
<style>
{{.}}
</style>
</head>
<body>
  <div class="container">
    <h1>Heading</h1>
    <p class="intro">A paragraph of sample text with a <a href="#">link</a>.</p>
    <ul>
      <li class="item">First item</li>
      <li class="item">Second item</li>
    </ul>
    <button class="button">Button</button>
  </div>
</body>
</html>
`))

// Preview returns a standalone HTML document for source. HTML is returned
// as-is; a stylesheet is applied to a small sample page.
func Preview(source string) string {
	if looksLikeHTML(source) {
		return source
	}
	var b strings.Builder
	// The template only fails on writer errors, which strings.Builder never returns.
	_ = cssPreviewTmpl.Execute(&b, template.CSS(source))
	return b.String()
}

func looksLikeHTML(source string) bool {
	s := strings.TrimSpace(source)
	return strings.HasPrefix(s, "<") || strings.Contains(strings.ToLower(s), "<html")
}
