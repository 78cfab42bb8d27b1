package sonar

import (
	"strings"

	"github.com/zirafica98/neatcommit"
	"github.com/zirafica98/neatcommit/issue"
)

const (
	// EngineID identifies the analyzer in the external issues report
	EngineID = "neatcommit"
	// EffortMinutes effort to fix in minutes
	EffortMinutes = 5
)

// GenerateReport converts the report into SonarQube external issues. Issues
// outside of every root path are left out; with no root paths every file
// keeps its reported path.
func GenerateReport(rootPaths []string, data *neatcommit.ReportInfo) *Report {
	si := &Report{Issues: []*Issue{}}
	for _, i := range data.Issues {
		sonarFilePath := parseFilePath(i, rootPaths)
		if sonarFilePath == "" {
			continue
		}
		primaryLocation := NewLocation(i.Message, sonarFilePath, NewTextRange(i.Line, i.Column))
		s := NewIssue(EngineID, i.RuleID, primaryLocation, "VULNERABILITY", getSonarSeverity(i.Severity), EffortMinutes)
		si.Issues = append(si.Issues, s)
	}
	return si
}

func parseFilePath(i *issue.Issue, rootPaths []string) string {
	if len(rootPaths) == 0 {
		return i.File
	}
	var sonarFilePath string
	for _, rootPath := range rootPaths {
		rootPath = strings.TrimSuffix(rootPath, "/")
		if strings.HasPrefix(i.File, rootPath+"/") {
			sonarFilePath = strings.TrimPrefix(i.File, rootPath+"/")
		}
	}
	return sonarFilePath
}

func getSonarSeverity(s issue.Severity) string {
	switch s {
	case issue.Critical:
		return "BLOCKER"
	case issue.High:
		return "CRITICAL"
	case issue.Medium:
		return "MAJOR"
	case issue.Low:
		return "MINOR"
	default:
		return "INFO"
	}
}
