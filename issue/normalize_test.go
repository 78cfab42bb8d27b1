package issue_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zirafica98/neatcommit/issue"
)

type describer map[string]*issue.MetaData

func (d describer) Describe(id string) (*issue.MetaData, bool) {
	md, ok := d[id]
	return md, ok
}

func meta(id string, severity issue.Severity) *issue.MetaData {
	md, err := issue.NewMetaData(id, strings.ToUpper(id), severity, issue.SQLInjection, "89", "found {{.Match}}", "use parameters")
	Expect(err).ShouldNot(HaveOccurred())
	return &md
}

var _ = Describe("Normalize", func() {
	var rules describer

	BeforeEach(func() {
		rules = describer{
			"a-crit": meta("a-crit", issue.Critical),
			"b-high": meta("b-high", issue.High),
			"c-low":  meta("c-low", issue.Low),
			"d-crit": meta("d-crit", issue.Critical),
		}
	})

	It("should dedupe by rule and line keeping the left-most match", func() {
		matches := []issue.Match{
			{RuleID: "a-crit", Line: 2, Column: 9, Text: "second"},
			{RuleID: "a-crit", Line: 2, Column: 3, Text: "first"},
			{RuleID: "b-high", Line: 2, Column: 1, Text: "other rule"},
		}
		issues := issue.Normalize(matches, rules, issue.Options{})
		Expect(issues).Should(HaveLen(2))
		Expect(issues[0].RuleID).Should(Equal("a-crit"))
		Expect(issues[0].Column).Should(Equal(3))
		Expect(issues[0].Snippet).Should(Equal("first"))
		Expect(issues[0].Message).Should(Equal("found first"))
		Expect(issues[0].Title).Should(Equal("A-CRIT"))
		Expect(issues[0].Cwe.ID).Should(Equal("89"))
	})

	It("should order by severity, then line, then rule", func() {
		matches := []issue.Match{
			{RuleID: "c-low", Line: 1, Column: 1, Text: "x"},
			{RuleID: "d-crit", Line: 5, Column: 1, Text: "x"},
			{RuleID: "b-high", Line: 1, Column: 1, Text: "x"},
			{RuleID: "a-crit", Line: 5, Column: 1, Text: "x"},
			{RuleID: "a-crit", Line: 4, Column: 1, Text: "x"},
		}
		issues := issue.Normalize(matches, rules, issue.Options{})
		var order []string
		for _, i := range issues {
			order = append(order, i.RuleID)
		}
		Expect(order).Should(Equal([]string{"a-crit", "a-crit", "d-crit", "b-high", "c-low"}))
		Expect(issues[0].Line).Should(Equal(4))
	})

	It("should not depend on match order", func() {
		matches := []issue.Match{
			{RuleID: "b-high", Line: 3, Column: 2, Text: "q"},
			{RuleID: "a-crit", Line: 1, Column: 1, Text: "p"},
			{RuleID: "a-crit", Line: 1, Column: 4, Text: "r"},
		}
		reversed := []issue.Match{matches[2], matches[1], matches[0]}
		Expect(issue.Normalize(reversed, rules, issue.Options{})).Should(Equal(issue.Normalize(matches, rules, issue.Options{})))
	})

	It("should be idempotent", func() {
		long := strings.Repeat("x", 300)
		matches := []issue.Match{
			{RuleID: "a-crit", Line: 1, Column: 1, Text: long},
			{RuleID: "c-low", Line: 2, Column: 5, Text: "  spaced \n  text "},
		}
		once := issue.Normalize(matches, rules, issue.Options{MaxSnippetLength: 40})
		twice := issue.Normalize(issue.Matches(once), rules, issue.Options{MaxSnippetLength: 40})
		Expect(twice).Should(Equal(once))
		Expect(once[1].Snippet).Should(Equal("spaced text"))
	})

	It("should truncate long snippets", func() {
		matches := []issue.Match{{RuleID: "a-crit", Line: 1, Column: 1, Text: strings.Repeat("y", 500)}}
		issues := issue.Normalize(matches, rules, issue.Options{})
		Expect([]rune(issues[0].Snippet)).Should(HaveLen(issue.DefaultMaxSnippetLength))
		Expect(issues[0].Snippet).Should(HaveSuffix("…"))
	})

	It("should apply severity overrides", func() {
		matches := []issue.Match{{RuleID: "c-low", Line: 1, Column: 1, Text: "x"}}
		issues := issue.Normalize(matches, rules, issue.Options{
			SeverityOverrides: map[string]issue.Severity{"c-low": issue.Critical},
		})
		Expect(issues[0].Severity).Should(Equal(issue.Critical))
	})

	It("should drop matches of unknown rules", func() {
		matches := []issue.Match{{RuleID: "ghost", Line: 1, Column: 1, Text: "x"}}
		Expect(issue.Normalize(matches, rules, issue.Options{})).Should(BeEmpty())
	})

	It("should derive stable ids", func() {
		Expect(issue.ID("r", 1, 2, "s")).Should(Equal(issue.ID("r", 1, 2, "s")))
		Expect(issue.ID("r", 1, 2, "s")).ShouldNot(Equal(issue.ID("r", 2, 2, "s")))
	})
})
