// (c) Copyright 2016 Hewlett Packard Enterprise Development LP
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"fmt"
	"io"

	"github.com/zirafica98/neatcommit"
	"github.com/zirafica98/neatcommit/report/csv"
	"github.com/zirafica98/neatcommit/report/golint"
	"github.com/zirafica98/neatcommit/report/html"
	"github.com/zirafica98/neatcommit/report/json"
	"github.com/zirafica98/neatcommit/report/junit"
	"github.com/zirafica98/neatcommit/report/sarif"
	"github.com/zirafica98/neatcommit/report/sonar"
	"github.com/zirafica98/neatcommit/report/text"
	"github.com/zirafica98/neatcommit/report/yaml"
)

// Formats lists the accepted report formats. The first one is the default.
var Formats = []string{"text", "json", "yaml", "csv", "junit-xml", "html", "sonarqube", "golint", "sarif"}

// CreateReport generates a report for the supplied results in the specified
// format. rootPaths are used to make file paths relative for the formats
// that require it.
func CreateReport(w io.Writer, format string, enableColor bool, rootPaths []string, data *neatcommit.ReportInfo) error {
	switch format {
	case "json":
		return json.WriteReport(w, data)
	case "yaml":
		return yaml.WriteReport(w, data)
	case "csv":
		return csv.WriteReport(w, data)
	case "junit-xml":
		return junit.WriteReport(w, data)
	case "html":
		return html.WriteReport(w, data)
	case "sonarqube":
		return sonar.WriteReport(w, data, rootPaths)
	case "golint":
		return golint.WriteReport(w, data)
	case "sarif":
		return sarif.WriteReport(w, data, rootPaths)
	case "text", "":
		return text.WriteReport(w, data, enableColor)
	}
	return fmt.Errorf("unknown report format %q", format)
}
