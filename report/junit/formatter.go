package junit

import (
	"fmt"

	"github.com/zirafica98/neatcommit"
	"github.com/zirafica98/neatcommit/issue"
)

func generatePlaintext(i *issue.Issue) string {
	cweID := "none"
	if i.Cwe != nil {
		cweID = i.Cwe.SprintID()
	}
	return fmt.Sprintf("Results:\n[%s:%d:%d] - %s (Severity: %s, CWE: %s)\n> %s\n",
		i.File, i.Line, i.Column, i.Message, i.Severity, cweID, i.Snippet)
}

// GenerateReport converts the report to JUnit, one testsuite per rule and
// one failing testcase per issue.
func GenerateReport(data *neatcommit.ReportInfo) Report {
	var xmlReport Report
	suites := map[string]int{}

	for _, i := range data.Issues {
		index, ok := suites[i.RuleID]
		if !ok {
			xmlReport.Testsuites = append(xmlReport.Testsuites, NewTestsuite(i.RuleID))
			index = len(xmlReport.Testsuites) - 1
			suites[i.RuleID] = index
		}
		failure := NewFailure(i.Title, i.Severity.String(), generatePlaintext(i))
		testcase := NewTestcase(fmt.Sprintf("%s:%d", i.File, i.Line), failure)

		suite := xmlReport.Testsuites[index]
		suite.Testcases = append(suite.Testcases, testcase)
		suite.Tests++
		suite.Failures++
	}
	return xmlReport
}
