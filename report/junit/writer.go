package junit

import (
	"encoding/xml"
	"io"

	"github.com/zirafica98/neatcommit"
)

// WriteReport write a report in JUnit format to the output writer
func WriteReport(w io.Writer, data *neatcommit.ReportInfo) error {
	raw, err := xml.MarshalIndent(GenerateReport(data), "", "\t")
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	_, err = w.Write(raw)
	return err
}
