// Package docs renders an extracted comment-block model as Markdown or HTML
// documentation.
package docs

import (
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/example/optsgen/internal/generator"
)

var optionsHeaderPattern = regexp.MustCompile(`^\s*Options:`)

// prose returns the free-text part of the help block, i.e. everything before
// the Options: header. The structured option list is rendered separately.
func prose(help string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(help, "\n"), "\n") {
		if optionsHeaderPattern.MatchString(line) {
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// cellEscaper keeps multi-line descriptions inside one Markdown table cell.
var cellEscaper = strings.NewReplacer("|", `\|`, "\n", "<br>")

// Markdown renders the model as a Markdown document: the help prose followed
// by an options table.
func Markdown(doc *generator.Document) string {
	var b strings.Builder
	if p := prose(doc.Help); p != "" {
		b.WriteString(p)
		b.WriteString("\n\n")
	}
	b.WriteString("## Options\n\n")
	b.WriteString("| Option | Argument | Default | Description |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for i := range doc.Options {
		o := &doc.Options[i]
		arg := ""
		if o.Argument != "" {
			arg = "`" + o.Argument + "`"
		}
		def := ""
		if o.Value != "" {
			def = "`" + cellEscaper.Replace(o.Value) + "`"
		}
		fmt.Fprintf(&b, "| `-%s`, `--%s` | %s | %s | %s |\n",
			o.Short, o.Long, arg, def, cellEscaper.Replace(o.Description))
	}
	return b.String()
}

var htmlTemplate = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Options</title>
</head>
<body>
<pre>{{.Prose}}</pre>
<h2>Options</h2>
<table>
<tr><th>Option</th><th>Argument</th><th>Default</th><th>Description</th></tr>
{{- range .Options}}
<tr><td><code>-{{.Short}}</code>, <code>--{{.Long}}</code></td><td>{{.Argument}}</td><td>{{.Value}}</td><td>{{.Description}}</td></tr>
{{- end}}
</table>
</body>
</html>
`))

// HTML renders the model as a standalone HTML page.
func HTML(doc *generator.Document) (string, error) {
	var b strings.Builder
	data := struct {
		Prose   string
		Options []generator.Option
	}{
		Prose:   prose(doc.Help),
		Options: doc.Options,
	}
	if err := htmlTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return b.String(), nil
}
