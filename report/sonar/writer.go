package sonar

import (
	"encoding/json"
	"io"

	"github.com/zirafica98/neatcommit"
)

// WriteReport write a report in sonar format to the output writer
func WriteReport(w io.Writer, data *neatcommit.ReportInfo, rootPaths []string) error {
	raw, err := json.MarshalIndent(GenerateReport(rootPaths, data), "", "\t")
	if err != nil {
		return err
	}
	_, err = w.Write(raw)
	return err
}
