// Package renderer turns bookkeeping records into markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/tallybook/tallybook"
)

//go:embed templates/*.md
var templates embed.FS

// RenderSalarySlip renders a salary slip to a markdown string.
func RenderSalarySlip(s *tallybook.SalarySlip) string {
	partials := map[string]string{
		"slip_title":    "templates/slip_title.md",
		"slip_earnings": "templates/slip_earnings.md",
		"slip_payment":  "templates/slip_payment.md",
	}
	return renderTemplate("salarySlip", "templates/slip.md", partials, s)
}

// RenderClientStatement renders a client statement to a markdown string.
func RenderClientStatement(s *tallybook.ClientStatement) string {
	partials := map[string]string{
		"statement_title":    "templates/statement_title.md",
		"statement_projects": "templates/statement_projects.md",
		"statement_totals":   "templates/statement_totals.md",
	}
	return renderTemplate("clientStatement", "templates/statement.md", partials, s)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
