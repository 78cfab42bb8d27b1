package sonar_test

import (
	"bytes"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zirafica98/neatcommit"
	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/report/sonar"
	"github.com/zirafica98/neatcommit/testutils"
)

func reportWith(issues ...*issue.Issue) *neatcommit.ReportInfo {
	data := neatcommit.NewReportInfo(nil, nil)
	data.Issues = issues
	return data
}

var _ = Describe("Sonar Formatter", func() {
	Context("when converting to Sonarqube issues", func() {
		It("it should parse the report info", func() {
			data := reportWith(&issue.Issue{
				Severity: issue.High,
				RuleID:   "php-sql-concat",
				Message:  "test",
				File:     "/home/src/project/db.php",
				Line:     3,
				Column:   7,
			})
			want := &sonar.Report{
				Issues: []*sonar.Issue{
					{
						EngineID: "neatcommit",
						RuleID:   "php-sql-concat",
						PrimaryLocation: &sonar.Location{
							Message:  "test",
							FilePath: "db.php",
							TextRange: &sonar.TextRange{
								StartLine:   3,
								EndLine:     3,
								StartColumn: 7,
							},
						},
						Type:          "VULNERABILITY",
						Severity:      "CRITICAL",
						EffortMinutes: sonar.EffortMinutes,
					},
				},
			}
			Expect(*sonar.GenerateReport([]string{"/home/src/project"}, data)).To(Equal(*want))
		})

		It("it should keep subfolders relative to the root", func() {
			data := reportWith(&issue.Issue{
				Severity: issue.Critical,
				RuleID:   "python-eval",
				File:     "/home/src/project/sub/run.py",
				Line:     1,
			})
			report := sonar.GenerateReport([]string{"/home/src/project/"}, data)
			Expect(report.Issues).To(HaveLen(1))
			Expect(report.Issues[0].PrimaryLocation.FilePath).To(Equal("sub/run.py"))
			Expect(report.Issues[0].Severity).To(Equal("BLOCKER"))
		})

		It("it should not parse the report info for files from other projects", func() {
			data := reportWith(&issue.Issue{
				Severity: issue.Low,
				RuleID:   "python-eval",
				File:     "/home/src/project1/run.py",
				Line:     1,
			})
			report := sonar.GenerateReport([]string{"/home/src/project2"}, data)
			Expect(report.Issues).To(BeEmpty())
		})

		It("it should keep paths as reported without root paths", func() {
			report := sonar.GenerateReport(nil, testutils.NewReportInfo())
			Expect(report.Issues).To(HaveLen(2))
			Expect(report.Issues[1].PrimaryLocation.FilePath).To(Equal("web/auth.js"))
			Expect(report.Issues[1].Severity).To(Equal("MAJOR"))
		})

		It("it should write the report as JSON", func() {
			buf := new(bytes.Buffer)
			Expect(sonar.WriteReport(buf, testutils.NewReportInfo(), []string{"app", "web"})).To(Succeed())
			var decoded sonar.Report
			Expect(json.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
			Expect(decoded.Issues).To(HaveLen(2))
			Expect(decoded.Issues[0].PrimaryLocation.FilePath).To(Equal("cleanup.py"))
		})
	})
})
