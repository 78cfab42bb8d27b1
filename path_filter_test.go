package neatcommit_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zirafica98/neatcommit"
	"github.com/zirafica98/neatcommit/issue"
)

var _ = Describe("PathExclusionFilter", func() {
	Describe("NewPathExclusionFilter", func() {
		It("should compile valid rules", func() {
			filter, err := neatcommit.NewPathExclusionFilter([]neatcommit.PathExcludeRule{
				{Path: "tests/.*", Rules: []string{"hardcoded-password"}},
				{Path: "scripts/.*", Rules: []string{"*"}},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(filter.String()).To(Equal("PathExclusionFilter{tests/.*:[hardcoded-password]; scripts/.*:*}"))
		})

		It("should accept no rules", func() {
			filter, err := neatcommit.NewPathExclusionFilter(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(filter.String()).To(Equal("PathExclusionFilter{empty}"))
		})

		It("should reject an empty path", func() {
			_, err := neatcommit.NewPathExclusionFilter([]neatcommit.PathExcludeRule{{Path: " ", Rules: []string{"x-y"}}})
			Expect(err).To(MatchError(ContainSubstring("path cannot be empty")))
		})

		It("should reject an invalid regex", func() {
			_, err := neatcommit.NewPathExclusionFilter([]neatcommit.PathExcludeRule{{Path: "[oops", Rules: []string{"x-y"}}})
			Expect(err).To(MatchError(ContainSubstring("invalid path regex")))
		})
	})

	Describe("ShouldExclude", func() {
		var filter *neatcommit.PathExclusionFilter

		BeforeEach(func() {
			var err error
			filter, err = neatcommit.NewPathExclusionFilter([]neatcommit.PathExcludeRule{
				{Path: `^tests/`, Rules: []string{"hardcoded-password", "python-eval"}},
				{Path: `\.sql$`, Rules: []string{"*"}},
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should exclude listed rules for matching paths", func() {
			Expect(filter.ShouldExclude("tests/fixtures.py", "python-eval")).To(BeTrue())
			Expect(filter.ShouldExclude("tests/fixtures.py", "python-sql-injection")).To(BeFalse())
			Expect(filter.ShouldExclude("app/fixtures.py", "python-eval")).To(BeFalse())
		})

		It("should exclude every rule for wildcard entries", func() {
			Expect(filter.ShouldExclude("db/seed.sql", "sql-grant-all")).To(BeTrue())
		})

		It("should normalize windows separators", func() {
			Expect(filter.ShouldExclude(`tests\fixtures.py`, "hardcoded-password")).To(BeTrue())
		})

		It("should never exclude with a nil filter", func() {
			var empty *neatcommit.PathExclusionFilter
			Expect(empty.ShouldExclude("tests/a.py", "python-eval")).To(BeFalse())
		})
	})

	Describe("FilterIssues", func() {
		It("should drop excluded issues and count them", func() {
			filter, err := neatcommit.NewPathExclusionFilter([]neatcommit.PathExcludeRule{
				{Path: `^tests/`, Rules: []string{"python-eval"}},
			})
			Expect(err).NotTo(HaveOccurred())
			issues := []*issue.Issue{
				{RuleID: "python-eval", File: "tests/a.py"},
				{RuleID: "python-eval", File: "app/a.py"},
				{RuleID: "python-xss", File: "tests/a.py"},
			}
			kept, excluded := filter.FilterIssues(issues)
			Expect(excluded).To(Equal(1))
			Expect(kept).To(HaveLen(2))
			Expect(kept[0].File).To(Equal("app/a.py"))
		})
	})

	Describe("ParseCLIExcludeRules", func() {
		It("should parse several entries", func() {
			parsed, err := neatcommit.ParseCLIExcludeRules("tests/.*:hardcoded-password, python-eval ; scripts/.*:*;")
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal([]neatcommit.PathExcludeRule{
				{Path: "tests/.*", Rules: []string{"hardcoded-password", "python-eval"}},
				{Path: "scripts/.*", Rules: []string{"*"}},
			}))
		})

		It("should return nothing for empty input", func() {
			parsed, err := neatcommit.ParseCLIExcludeRules("")
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(BeEmpty())
		})

		DescribeTable("should reject malformed input",
			func(input, message string) {
				_, err := neatcommit.ParseCLIExcludeRules(input)
				Expect(err).To(MatchError(ContainSubstring(message)))
			},
			Entry("missing separator", "tests/.*", "missing ':' separator"),
			Entry("missing path", ":python-eval", "path pattern cannot be empty"),
			Entry("missing rules", "tests/.*: , ", "no rules specified"),
		)
	})

	Describe("MergeExcludeRules", func() {
		It("should put command line rules first", func() {
			cfg := []neatcommit.PathExcludeRule{{Path: "a", Rules: []string{"x-y"}}}
			cli := []neatcommit.PathExcludeRule{{Path: "b", Rules: []string{"*"}}}
			Expect(neatcommit.MergeExcludeRules(cfg, cli)).To(Equal(append(cli, cfg...)))
		})
	})
})
