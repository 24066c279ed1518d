package sendgrid

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/net/html"

	"github.com/tumieblackace/The-Kop-AI/internal/domain/model"
)

const briefingTemplate = `<html>
<body>
  <div style="font-family: sans-serif; max-width: 600px; margin: auto; border: 1px solid #ddd; padding: 20px;">
    <h2>The Kop AI Daily Briefing</h2>
    <p><strong>AI-Generated Summary:</strong></p>
    <p>{{.SummaryHTML}}</p>
    <hr>
    <p><strong>Today&#39;s Top Headlines:</strong></p>
    <ul>
{{- range .Articles}}
      <li><a href="{{.URL}}">{{.Title}}</a> ({{.Source}})</li>
{{- end}}
    </ul>
  </div>
</body>
</html>`

var bodyTemplate = template.Must(template.New("briefing").Parse(briefingTemplate))

// renderHTML produces the email body: heading, summary paragraph and
// one list item per headline.
func renderHTML(briefing model.Briefing) (string, error) {
	data := struct {
		SummaryHTML template.HTML
		Articles    []model.Article
	}{
		SummaryHTML: summaryHTML(briefing.Summary),
		Articles:    briefing.Articles,
	}

	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute briefing template: %w", err)
	}
	return buf.String(), nil
}

// summaryHTML escapes the summary text and converts line breaks into
// <br> tags so the paragraph keeps its shape in mail clients.
func summaryHTML(summary string) template.HTML {
	summary = strings.ReplaceAll(summary, "\r\n", "\n")
	lines := strings.Split(summary, "\n")
	for i, line := range lines {
		lines[i] = template.HTMLEscapeString(line)
	}
	return template.HTML(strings.Join(lines, "<br>"))
}

// plainText flattens the rendered HTML into a text/plain alternative
// part for clients that refuse HTML mail.
func plainText(input string) string {
	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	writeText(node, &builder)
	return strings.TrimSpace(builder.String())
}

func writeText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		switch node.Data {
		case "style", "script":
			return
		case "br":
			builder.WriteRune('\n')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		writeText(child, builder)
	}

	if node.Type == html.ElementNode {
		switch node.Data {
		case "h2", "p", "li", "ul", "hr":
			builder.WriteRune('\n')
		}
	}
}
