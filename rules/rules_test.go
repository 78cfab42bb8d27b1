package rules_test

import (
	"fmt"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/language"
	"github.com/zirafica98/neatcommit/rules"
	"github.com/zirafica98/neatcommit/testutils"
)

var sampleSets = []map[string][]testutils.CodeSample{
	testutils.SampleCodeUniversal,
	testutils.SampleCodeJavaScript,
	testutils.SampleCodeTypeScript,
	testutils.SampleCodeJava,
	testutils.SampleCodePython,
	testutils.SampleCodePHP,
	testutils.SampleCodeCSharp,
	testutils.SampleCodeSQL,
	testutils.SampleCodeGo,
	testutils.SampleCodeRuby,
}

func sortedIDs(samples map[string][]testutils.CodeSample) []string {
	ids := make([]string, 0, len(samples))
	for id := range samples {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

var _ = Describe("built-in rules", func() {
	var runner func(string, []testutils.CodeSample)

	BeforeEach(func() {
		runner = func(ruleID string, samples []testutils.CodeSample) {
			corpus, err := rules.Default(rules.NewRuleFilter(false, ruleID))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(corpus.Len()).Should(Equal(1))
			for n, sample := range samples {
				lang, ok := language.FromExtension(sample.Filename)
				Expect(ok).Should(BeTrue(), sample.Filename)
				src := rules.NewSource(lang, sample.Code)
				var matches []issue.Match
				for _, r := range corpus.RulesFor(lang) {
					found, err := r.Find(src, rules.Unlimited())
					Expect(err).ShouldNot(HaveOccurred())
					matches = append(matches, found...)
				}
				issues := issue.Normalize(matches, corpus, issue.Options{})
				if len(issues) != sample.Errors {
					fmt.Printf("%s sample %d:\n%s\n", ruleID, n, sample.Code)
				}
				Expect(issues).Should(HaveLen(sample.Errors))
			}
		}
	})

	Context("report correct errors for all samples", func() {
		for _, set := range sampleSets {
			for _, id := range sortedIDs(set) {
				id, samples := id, set[id]
				It("should work for "+id+" samples", func() {
					runner(id, samples)
				})
			}
		}
	})

	It("should have samples for every rule", func() {
		covered := make(map[string]bool)
		for _, set := range sampleSets {
			for id := range set {
				covered[id] = true
			}
		}
		for _, id := range rules.Generate().IDs() {
			Expect(covered).Should(HaveKey(id))
		}
	})

	It("should only produce ids of existing rules in samples", func() {
		known := make(map[string]bool)
		for _, id := range rules.Generate().IDs() {
			known[id] = true
		}
		for _, set := range sampleSets {
			for id := range set {
				Expect(known).Should(HaveKey(id))
			}
		}
	})
})
