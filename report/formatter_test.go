package report_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zirafica98/neatcommit/report"
	"github.com/zirafica98/neatcommit/testutils"
)

var _ = Describe("CreateReport", func() {
	DescribeTable("should dispatch to the writer of each format",
		func(format, marker string) {
			buf := new(bytes.Buffer)
			err := report.CreateReport(buf, format, false, []string{"app"}, testutils.NewReportInfo())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(buf.String()).To(ContainSubstring(marker))
		},
		Entry("text", "text", "Summary:"),
		Entry("default", "", "Summary:"),
		Entry("json", "json", `"NeatcommitVersion": "1.0.0"`),
		Entry("yaml", "yaml", "ruleId: python-command-injection"),
		Entry("csv", "csv", "app/cleanup.py,4,5,python-command-injection"),
		Entry("junit", "junit-xml", "<testsuites>"),
		Entry("html", "html", "<html"),
		Entry("sonarqube", "sonarqube", `"engineId": "neatcommit"`),
		Entry("golint", "golint", "app/cleanup.py:4:5:"),
		Entry("sarif", "sarif", `"version": "2.1.0"`),
	)

	It("should list every format", func() {
		for _, format := range report.Formats {
			err := report.CreateReport(new(bytes.Buffer), format, false, nil, testutils.NewReportInfo())
			Expect(err).ShouldNot(HaveOccurred(), format)
		}
	})

	It("should reject unknown formats", func() {
		err := report.CreateReport(new(bytes.Buffer), "pdf", false, nil, testutils.NewReportInfo())
		Expect(err).To(MatchError(ContainSubstring(`unknown report format "pdf"`)))
	})
})
