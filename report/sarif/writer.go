package sarif

import (
	"io"
	"strings"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/zirafica98/neatcommit"
	"github.com/zirafica98/neatcommit/issue"
)

const (
	// ToolName is the driver name of the SARIF run
	ToolName = "neatcommit"
	// InformationURI points to the project home
	InformationURI = "https://github.com/zirafica98/neatcommit"
)

// GenerateReport converts the report into a SARIF 2.1.0 log with a single run.
func GenerateReport(rootPaths []string, data *neatcommit.ReportInfo) (*sarif.Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, err
	}

	run := sarif.NewRunWithInformationURI(ToolName, InformationURI)
	for _, i := range data.Issues {
		rule := run.AddRule(i.RuleID).
			WithName(i.Title).
			WithDescription(i.Title).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{
				Level: level(i.Severity),
			})
		if i.Cwe != nil {
			rule.WithHelpURI(i.Cwe.SprintURL())
		}

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(relativePath(i.File, rootPaths))).
				WithRegion(sarif.NewRegion().WithStartLine(i.Line).WithStartColumn(i.Column)),
		)

		result := sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(i.Message)).
			WithLevel(level(i.Severity)).
			WithLocations([]*sarif.Location{location})
		run.AddResult(result)
	}
	report.AddRun(run)
	return report, nil
}

// WriteReport write a report in SARIF format to the output writer
func WriteReport(w io.Writer, data *neatcommit.ReportInfo, rootPaths []string) error {
	report, err := GenerateReport(rootPaths, data)
	if err != nil {
		return err
	}
	return report.PrettyWrite(w)
}

func relativePath(file string, rootPaths []string) string {
	for _, rootPath := range rootPaths {
		prefix := strings.TrimSuffix(rootPath, "/") + "/"
		if strings.HasPrefix(file, prefix) {
			return strings.TrimPrefix(file, prefix)
		}
	}
	return file
}

func level(s issue.Severity) string {
	switch s {
	case issue.Critical, issue.High:
		return "error"
	case issue.Medium:
		return "warning"
	case issue.Low:
		return "note"
	default:
		return "none"
	}
}
