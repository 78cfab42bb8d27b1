package yaml

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zirafica98/neatcommit"
)

// WriteReport write a report in yaml format to the output writer
func WriteReport(w io.Writer, data *neatcommit.ReportInfo) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}
