package issue_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/zirafica98/neatcommit/issue"
)

var _ = Describe("Issue", func() {
	Context("when parsing severities", func() {
		It("should accept names in any case", func() {
			s, err := issue.ParseSeverity("CRITICAL")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s).Should(Equal(issue.Critical))

			s, err = issue.ParseSeverity(" medium ")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s).Should(Equal(issue.Medium))
		})

		It("should reject unknown names", func() {
			_, err := issue.ParseSeverity("severe")
			Expect(err).Should(HaveOccurred())
		})

		It("should order severities from low to critical", func() {
			Expect(issue.Critical > issue.High).Should(BeTrue())
			Expect(issue.High > issue.Medium).Should(BeTrue())
			Expect(issue.Medium > issue.Low).Should(BeTrue())
			Expect(issue.Severity(7).Valid()).Should(BeFalse())
		})

		It("should encode severities by name", func() {
			out, err := json.Marshal(map[string]issue.Severity{"s": issue.High})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(string(out)).Should(Equal(`{"s":"high"}`))

			var decoded map[string]issue.Severity
			Expect(json.Unmarshal([]byte(`{"s":"low"}`), &decoded)).Should(Succeed())
			Expect(decoded["s"]).Should(Equal(issue.Low))

			var fromYAML map[string]issue.Severity
			Expect(yaml.Unmarshal([]byte("s: critical\n"), &fromYAML)).Should(Succeed())
			Expect(fromYAML["s"]).Should(Equal(issue.Critical))
		})
	})

	Context("when rendering messages", func() {
		It("should fill the template with the match", func() {
			md, err := issue.NewMetaData("py-x", "X", issue.High, issue.XSS, "79", "Unescaped output {{.Match}} on line {{.Line}}", "")
			Expect(err).ShouldNot(HaveOccurred())
			msg := md.Render(issue.MessageData{RuleID: "py-x", Line: 3, Match: "print(x)"})
			Expect(msg).Should(Equal("Unescaped output print(x) on line 3"))
		})

		It("should fail on a broken template", func() {
			_, err := issue.NewMetaData("bad", "Bad", issue.Low, issue.XSS, "", "{{.Match", "")
			Expect(err).Should(HaveOccurred())
		})

		It("should fall back to the raw message when not compiled", func() {
			md := issue.MetaData{ID: "raw", Message: "plain {{.Match}}"}
			Expect(md.Render(issue.MessageData{Match: "m"})).Should(Equal("plain {{.Match}}"))
		})
	})

	Context("when counting", func() {
		It("should bucket issues by severity", func() {
			issues := []*issue.Issue{
				{Severity: issue.Critical},
				{Severity: issue.Critical},
				{Severity: issue.Medium},
				{Severity: issue.Low},
			}
			counts := issue.CountBySeverity(issues)
			Expect(counts.Critical).Should(Equal(2))
			Expect(counts.High).Should(Equal(0))
			Expect(counts.Of(issue.Medium)).Should(Equal(1))
			Expect(counts.Total()).Should(Equal(len(issues)))
		})
	})

	Context("when locating", func() {
		It("should print file and line", func() {
			i := &issue.Issue{File: "app.py", Line: 12}
			Expect(i.FileLocation()).Should(Equal("app.py:12"))
		})
	})
})
