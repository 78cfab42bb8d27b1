package golint

import (
	"fmt"
	"io"
	"strings"

	"github.com/zirafica98/neatcommit"
)

// WriteReport write a report in golint format to the output writer
func WriteReport(w io.Writer, data *neatcommit.ReportInfo) error {
	// Output Sample:
	// app/cleanup.py:4:5: [CWE-78] Shell command executed with dynamic content: ... (Rule:python-command-injection, Severity:CRITICAL)

	for _, issue := range data.Issues {
		what := issue.Message
		if issue.Cwe != nil && issue.Cwe.ID != "" {
			what = fmt.Sprintf("[%s] %s", issue.Cwe.SprintID(), issue.Message)
		}
		_, err := fmt.Fprintf(w, "%s:%d:%d: %s (Rule:%s, Severity:%s)\n",
			issue.File,
			issue.Line,
			issue.Column,
			what,
			issue.RuleID,
			strings.ToUpper(issue.Severity.String()),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
