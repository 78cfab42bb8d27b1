package csv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/zirafica98/neatcommit"
)

// Header names the columns written by WriteReport.
var Header = []string{"file", "line", "column", "rule", "severity", "category", "message", "snippet", "cwe"}

// WriteReport write a report in csv format to the output writer
func WriteReport(w io.Writer, data *neatcommit.ReportInfo) error {
	out := csv.NewWriter(w)
	if err := out.Write(Header); err != nil {
		return err
	}
	for _, issue := range data.Issues {
		cweID := ""
		if issue.Cwe != nil {
			cweID = issue.Cwe.SprintID()
		}
		err := out.Write([]string{
			issue.File,
			strconv.Itoa(issue.Line),
			strconv.Itoa(issue.Column),
			issue.RuleID,
			issue.Severity.String(),
			string(issue.Category),
			issue.Message,
			issue.Snippet,
			cweID,
		})
		if err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}
