package neatcommit_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zirafica98/neatcommit"
	"github.com/zirafica98/neatcommit/issue"
)

var _ = Describe("ReportInfo", func() {
	var results []*neatcommit.Result

	BeforeEach(func() {
		results = []*neatcommit.Result{
			{
				Filename:       "b.py",
				IsSupported:    true,
				TotalIssues:    1,
				CriticalIssues: 1,
				Issues:         []*issue.Issue{{RuleID: "python-eval", File: "b.py", Severity: issue.Critical, Line: 3}},
				Suppressed:     2,
				Lines:          10,
				CorpusVersion:  "1.4.0+abc",
			},
			{
				Filename:     "a.js",
				IsSupported:  true,
				TotalIssues:  2,
				MediumIssues: 1,
				LowIssues:    1,
				Issues: []*issue.Issue{
					{RuleID: "js-insecure-random", File: "a.js", Severity: issue.Medium, Line: 1},
					{RuleID: "debug-mode-enabled", File: "a.js", Severity: issue.Low, Line: 8},
				},
				Partial:       true,
				SkippedRules:  []string{"js-xss"},
				Lines:         20,
				CorpusVersion: "1.4.0+abc",
			},
			{Filename: "notes.txt", Lines: 0, CorpusVersion: "1.4.0+abc"},
		}
	})

	Describe("NewReportInfo", func() {
		It("should aggregate issues by file name", func() {
			report := neatcommit.NewReportInfo(results, nil)
			Expect(report.Results).To(HaveLen(3))
			Expect(report.Results[0].Filename).To(Equal("a.js"))
			Expect(report.Issues).To(HaveLen(3))
			Expect(report.Issues[0].RuleID).To(Equal("js-insecure-random"))
			Expect(report.Issues[2].RuleID).To(Equal("python-eval"))
			Expect(report.CorpusVersion).To(Equal("1.4.0+abc"))
		})

		It("should compute metrics", func() {
			report := neatcommit.NewReportInfo(results, nil)
			Expect(*report.Stats).To(Equal(neatcommit.Metrics{
				NumFiles:       3,
				NumLines:       30,
				NumNosec:       2,
				NumFound:       3,
				NumUnsupported: 1,
				NumPartial:     1,
				NumSkipped:     1,
				Score:          100 - 10 - 2 - 1,
			}))
		})

		It("should handle an empty scan", func() {
			report := neatcommit.NewReportInfo(nil, map[string][]neatcommit.Error{})
			Expect(report.Issues).To(BeEmpty())
			Expect(report.Stats.Score).To(Equal(neatcommit.MaxScore))
		})

		It("should sort errors by position", func() {
			errs := map[string][]neatcommit.Error{
				"x.py": {{Line: 4, Column: 1, Err: "b"}, {Line: 2, Column: 9, Err: "a"}},
			}
			report := neatcommit.NewReportInfo(nil, errs)
			Expect(report.Errors["x.py"][0].Err).To(Equal("a"))
		})
	})

	Describe("WithVersion", func() {
		It("should set the version", func() {
			report := neatcommit.NewReportInfo(results, nil)
			Expect(report.WithVersion("1.2.3")).To(BeIdenticalTo(report))
			Expect(report.Version).To(Equal("1.2.3"))
		})
	})

	Describe("Gate", func() {
		It("should fail on critical issues", func() {
			report := neatcommit.NewReportInfo(results, nil)
			reasons := report.Gate(neatcommit.QualityGate{BlockOnCritical: true})
			Expect(reasons).To(ConsistOf("1 critical issue(s) found"))
		})

		It("should fail below the minimum score", func() {
			report := neatcommit.NewReportInfo(results, nil)
			minScore := 90
			reasons := report.Gate(neatcommit.QualityGate{MinScore: &minScore})
			Expect(reasons).To(ConsistOf("score 87 is below the minimum of 90"))
		})

		It("should pass otherwise", func() {
			report := neatcommit.NewReportInfo(results[1:], nil)
			minScore := 80
			Expect(report.Gate(neatcommit.QualityGate{BlockOnCritical: true, MinScore: &minScore})).To(BeEmpty())
		})
	})
})
