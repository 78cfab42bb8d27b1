package rules_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/language"
	"github.com/zirafica98/neatcommit/rules"
)

func newRule(id string, lang language.Language, pattern rules.Pattern) *rules.Rule {
	return &rules.Rule{
		MetaData: issue.MetaData{
			ID:       id,
			Name:     id,
			Severity: issue.High,
			Category: issue.XSS,
			CWE:      "79",
			Message:  "found {{.Match}}",
		},
		Language: lang,
		Pattern:  pattern,
	}
}

var _ = Describe("Corpus", func() {
	It("should load the built-in rules", func() {
		corpus, err := rules.Default()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(corpus.Len()).Should(Equal(len(rules.Generate().IDs())))
		Expect(corpus.Version()).Should(HavePrefix(rules.CorpusVersion + "+"))
	})

	It("should give every supported language its own rules plus the shared ones", func() {
		corpus, err := rules.Default()
		Expect(err).ShouldNot(HaveOccurred())
		shared := len(corpus.AnyRules())
		Expect(shared).Should(BeNumerically(">", 0))
		for _, lang := range language.Supported() {
			Expect(len(corpus.RulesFor(lang))).Should(BeNumerically(">", shared), string(lang))
		}
		Expect(corpus.RulesFor(language.Unknown)).Should(BeEmpty())
	})

	It("should keep declaration order", func() {
		a := newRule("a", language.Python, rules.Regex(`a`))
		shared := newRule("any", language.Any, rules.Regex(`b`))
		b := newRule("b", language.Python, rules.Regex(`c`))
		corpus, err := rules.NewCorpus("1", []*rules.Rule{a, shared, b})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(corpus.RulesFor(language.Python)).Should(Equal([]*rules.Rule{a, shared, b}))
		Expect(corpus.RulesFor(language.Go)).Should(Equal([]*rules.Rule{shared}))
	})

	It("should produce a stable version that changes with the rules", func() {
		first, err := rules.Default()
		Expect(err).ShouldNot(HaveOccurred())
		second, err := rules.Default()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(first.Version()).Should(Equal(second.Version()))

		extended, err := first.With(rules.CorpusVersion, []*rules.Rule{newRule("extra", language.Go, rules.Regex(`x`))})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(extended.Version()).ShouldNot(Equal(first.Version()))
		Expect(extended.Len()).Should(Equal(first.Len() + 1))
	})

	It("should collect every problem in a CorpusError", func() {
		dup := newRule("dup", language.Go, rules.Regex(`x`))
		badRegex := newRule("bad-regex", language.Go, rules.Regex(`(`))
		badLang := newRule("bad-lang", language.Language("cobol"), rules.Regex(`x`))
		badCWE := newRule("bad-cwe", language.Go, rules.Regex(`x`))
		badCWE.CWE = "99999"
		noPattern := newRule("no-pattern", language.Go, nil)
		badTemplate := newRule("bad-template", language.Go, rules.Regex(`x`))
		badTemplate.Message = "{{.Match"
		badSeverity := newRule("bad-severity", language.Go, rules.Regex(`x`))
		badSeverity.Severity = issue.Severity(42)

		_, err := rules.NewCorpus("1", []*rules.Rule{dup, dup, badRegex, badLang, badCWE, noPattern, badTemplate, badSeverity})
		Expect(err).Should(HaveOccurred())
		var corpusErr *rules.CorpusError
		Expect(errors.As(err, &corpusErr)).Should(BeTrue())
		Expect(corpusErr.Problems).Should(HaveLen(7))
		Expect(err.Error()).Should(ContainSubstring(`duplicate id "dup"`))
	})

	It("should reject an empty corpus", func() {
		_, err := rules.NewCorpus("1", nil)
		Expect(err).Should(HaveOccurred())
	})

	It("should describe rules for the normalizer", func() {
		corpus, err := rules.Default()
		Expect(err).ShouldNot(HaveOccurred())
		md, ok := corpus.Describe("python-command-injection")
		Expect(ok).Should(BeTrue())
		Expect(md.Severity).Should(Equal(issue.Critical))
		Expect(md.Category).Should(Equal(issue.CommandInjection))
		_, ok = corpus.Describe("missing")
		Expect(ok).Should(BeFalse())
	})

	It("should filter rules by id and language", func() {
		ids := rules.Generate(rules.NewRuleFilter(true, "insecure-http")).IDs()
		Expect(ids).ShouldNot(ContainElement("insecure-http"))

		pyOnly := rules.Generate(rules.NewLanguageFilter(language.Python)).IDs()
		Expect(pyOnly).Should(ContainElement("python-eval"))
		Expect(pyOnly).Should(ContainElement("insecure-http"))
		Expect(pyOnly).ShouldNot(ContainElement("go-xss"))
	})
})
