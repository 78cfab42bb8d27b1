package html

import (
	_ "embed" // use go embed to import template
	"html/template"
	"io"

	"github.com/zirafica98/neatcommit"
)

//go:embed template.html
var templateContent string

// WriteReport write a report in html format to the output writer
func WriteReport(w io.Writer, data *neatcommit.ReportInfo) error {
	t, err := template.New("neatcommit").Parse(templateContent)
	if err != nil {
		return err
	}
	return t.Execute(w, data)
}
