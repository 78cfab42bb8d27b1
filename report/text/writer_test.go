package text_test

import (
	"bytes"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zirafica98/neatcommit"
	"github.com/zirafica98/neatcommit/report/text"
	"github.com/zirafica98/neatcommit/testutils"
)

func TestText(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Text Writer Suite")
}

var _ = Describe("Text Writer", func() {
	It("should write issues in text format", func() {
		buf := new(bytes.Buffer)
		Expect(text.WriteReport(buf, testutils.NewReportInfo(), false)).To(Succeed())

		result := buf.String()
		Expect(result).To(ContainSubstring("[app/cleanup.py:4] - python-command-injection (CWE-78): Shell command executed with dynamic content"))
		Expect(result).To(ContainSubstring("(Severity: Critical)"))
		Expect(result).To(ContainSubstring(`  > os.system("rm -rf " + filename)`))
		Expect(result).To(ContainSubstring("  Fix: Call subprocess.run"))
		Expect(result).To(ContainSubstring("[web/auth.js:7] - js-insecure-random (CWE-338)"))
	})

	It("should write errors and the summary", func() {
		buf := new(bytes.Buffer)
		Expect(text.WriteReport(buf, testutils.NewReportInfo(), false)).To(Succeed())

		result := buf.String()
		Expect(result).To(ContainSubstring("Errors in file: [web/broken.rb]"))
		Expect(result).To(ContainSubstring("> [line 0 : column 0] - file is not valid UTF-8"))
		Expect(result).To(ContainSubstring("Version  : 1.0.0"))
		Expect(result).To(ContainSubstring("Files    : 2"))
		Expect(result).To(ContainSubstring("Lines    : 42"))
		Expect(result).To(ContainSubstring("Nosec    : 1"))
		Expect(result).To(ContainSubstring("Critical : 1"))
		Expect(result).To(ContainSubstring("Medium   : 1"))
		Expect(result).To(ContainSubstring("Issues   : 2"))
		Expect(result).To(ContainSubstring("Score    : 88"))
	})

	It("should handle a report without issues", func() {
		buf := new(bytes.Buffer)
		Expect(text.WriteReport(buf, neatcommit.NewReportInfo(nil, nil), false)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("Issues   : 0"))
		Expect(buf.String()).To(ContainSubstring("Score    : 100"))
	})

	It("should colorize when enabled", func() {
		buf := new(bytes.Buffer)
		Expect(text.WriteReport(buf, testutils.NewReportInfo(), true)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("app/cleanup.py:4"))
	})
})
