package text

import (
	_ "embed" // use go embed to import template
	"fmt"
	"io"
	"text/template"

	"github.com/gookit/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zirafica98/neatcommit"
	"github.com/zirafica98/neatcommit/issue"
)

var (
	criticalTheme = color.New(color.FgLightWhite, color.BgRed, color.OpBold)
	errorTheme    = color.New(color.FgLightWhite, color.BgRed)
	warningTheme  = color.New(color.FgBlack, color.BgYellow)
	defaultTheme  = color.New(color.FgWhite, color.BgBlack)

	//go:embed template.txt
	templateContent string
)

// WriteReport write a (colorized) report in text format
func WriteReport(w io.Writer, data *neatcommit.ReportInfo, enableColor bool) error {
	t, err := template.
		New("neatcommit").
		Funcs(plainTextFuncMap(enableColor)).
		Parse(templateContent)
	if err != nil {
		return err
	}
	return t.Execute(w, data)
}

func plainTextFuncMap(enableColor bool) template.FuncMap {
	funcs := template.FuncMap{
		"title": func(s string) string {
			return cases.Title(language.English).String(s)
		},
	}
	if enableColor {
		funcs["highlight"] = highlight
		funcs["danger"] = color.Danger.Render
		funcs["notice"] = color.Notice.Render
		funcs["success"] = color.Success.Render
		return funcs
	}

	// by default those functions return the given content untouched
	funcs["highlight"] = func(t string, _ issue.Severity) string {
		return t
	}
	funcs["danger"] = fmt.Sprint
	funcs["notice"] = fmt.Sprint
	funcs["success"] = fmt.Sprint
	return funcs
}

// highlight returns content t colored based on the severity
func highlight(t string, s issue.Severity) string {
	switch s {
	case issue.Critical:
		return criticalTheme.Sprint(t)
	case issue.High:
		return errorTheme.Sprint(t)
	case issue.Medium:
		return warningTheme.Sprint(t)
	default:
		return defaultTheme.Sprint(t)
	}
}
