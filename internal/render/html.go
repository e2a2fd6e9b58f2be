package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// markdown converter shared by both exporters. Raw HTML stays enabled: the
// summaries embed figure tags pointing at the API host.
var gm = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(htmlrenderer.WithUnsafe()),
)

func markdownToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := gm.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

func headerHTML(h Header) string {
	if h.Empty() {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<header class="paper-header">` + "\n")
	if h.Title != "" {
		fmt.Fprintf(&b, `<div class="paper-title">%s</div>`+"\n", html.EscapeString(h.Title))
	}
	if len(h.Authors) > 0 {
		escaped := make([]string, len(h.Authors))
		for i, a := range h.Authors {
			escaped[i] = html.EscapeString(a)
		}
		fmt.Fprintf(&b, `<div class="paper-authors">%s</div>`+"\n", strings.Join(escaped, ", "))
	}
	if len(h.Institutions) > 0 {
		b.WriteString(`<ul class="paper-inst">` + "\n")
		for _, inst := range h.Institutions {
			fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(inst))
		}
		b.WriteString("</ul>\n")
	}
	b.WriteString("</header>")
	return b.String()
}

// document extracts the header from md and assembles the complete HTML page
// handed to the rendering engine: bold front matter, then the body flowed
// into two columns under the given stylesheet.
func document(md, css string) (string, error) {
	header, body := ExtractHeader(md)

	bodyHTML, err := markdownToHTML(body)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8" />
<style>
%s
</style>
</head>
<body>
  <div class="page">
    %s
    <div class="content">
      %s
    </div>
  </div>
</body>
</html>
`, css, headerHTML(header), bodyHTML), nil
}

// imageCSS is the single-page stylesheet for PNG export, parameterized by
// page width.
func imageCSS(widthPx int) string {
	return fmt.Sprintf(`:root {
  --text: #111;
  --muted: #444;
  --border: #e3e3e3;
}

html, body {
  margin: 0;
  padding: 0;
  background: #fff;
  color: var(--text);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Arial, Helvetica, sans-serif;
}

.page {
  width: %dpx;
  margin: 0 auto;
  padding: 32px 28px;
  box-sizing: border-box;
}

.paper-header {
  margin-bottom: 26px;
  padding-bottom: 16px;
  border-bottom: 3px solid var(--border);
}

.paper-title {
  font-size: 56px;
  font-weight: 900;
  line-height: 1.08;
  margin-bottom: 12px;
}

.paper-authors {
  font-size: 22px;
  font-weight: 800;
  line-height: 1.35;
  color: #222;
  margin-bottom: 10px;
}

.paper-inst {
  list-style: none;
  padding: 0;
  margin: 0;
  font-size: 14px;
  color: #555;
}

.paper-inst li {
  margin: 2px 0;
}

.content {
  column-count: 2;
  column-gap: 28px;
}

h1 {
  column-span: all;
  font-size: 30px;
  margin: 0 0 14px 0;
  font-weight: 850;
}

h2 {
  font-size: 20px;
  margin: 18px 0 8px 0;
  font-weight: 800;
}

h3 {
  font-size: 16px;
  margin: 12px 0 6px 0;
  font-weight: 800;
}

p, li {
  font-size: 14px;
  line-height: 1.45;
  margin: 6px 0;
}

ul, ol {
  padding-left: 18px;
}

img {
  max-width: 100%%;
  display: block;
  margin: 10px auto;
  break-inside: avoid;
}

table {
  width: 100%%;
  border-collapse: collapse;
  margin: 10px 0;
  break-inside: avoid;
  font-size: 13px;
}

th, td {
  border: 1px solid #ddd;
  padding: 6px 8px;
}

pre {
  background: #f5f5f5;
  padding: 10px 12px;
  border-radius: 8px;
  font-size: 13px;
  break-inside: avoid;
}`, widthPx)
}

// posterCSS is the A2 portrait stylesheet for PDF export. The @page rule is
// honored by the engine when printing with CSS page size preferred.
const posterCSS = `@page {
    size: A2 portrait;
    margin: 12mm;
}

html, body {
    margin: 0;
    padding: 0;
}

body {
    font-family: Arial, Helvetica, sans-serif;
    font-size: 12pt;
    line-height: 1.35;
    color: #111;
}

.paper-header {
    margin-bottom: 8mm;
    padding-bottom: 4mm;
    border-bottom: 1mm solid #e3e3e3;
}

.paper-title {
    font-size: 30pt;
    font-weight: 900;
    line-height: 1.1;
    margin-bottom: 3mm;
}

.paper-authors {
    font-size: 14pt;
    font-weight: 800;
    margin-bottom: 2mm;
}

.paper-inst {
    list-style: none;
    padding: 0;
    margin: 0;
    font-size: 10pt;
    color: #555;
}

.content {
    column-count: 2;
    column-gap: 12mm;
}

h1 {
    column-span: all;
    font-size: 26pt;
    margin: 0 0 8mm 0;
}

h2 {
    font-size: 16pt;
    margin: 6mm 0 3mm 0;
    font-weight: bold;
}

h3 {
    font-size: 13pt;
    margin: 4mm 0 2mm 0;
    font-weight: bold;
}

p, li {
    margin: 2mm 0;
}

ul, ol {
    padding-left: 5mm;
}

img {
    max-width: 100%;
    height: auto;
    display: block;
    margin: 4mm auto;
    break-inside: avoid;
}

table {
    width: 100%;
    border-collapse: collapse;
    break-inside: avoid;
    margin: 4mm 0;
    font-size: 11pt;
}

th, td {
    border: 0.3mm solid #ccc;
    padding: 2mm;
    vertical-align: top;
}

pre {
    font-size: 11pt;
    line-height: 1.3;
    break-inside: avoid;
}

figcaption {
    font-size: 11pt;
    text-align: center;
    margin-top: 1mm;
}`
