package rules_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/language"
	"github.com/zirafica98/neatcommit/rules"
)

const customRules = `
rules:
  - id: acme-legacy-crypto
    language: java
    severity: high
    category: weak-crypto
    cwe: "327"
    message: "Legacy cipher helper: {{.Match}}"
    regex: 'LegacyCrypto\.(?P<hit>encrypt)\('
    unless: ['@SuppressLegacy']
  - id: acme-todo-secret
    severity: low
    category: hardcoded-secret
    message: "Secret left in a TODO"
    regex: 'TODO.*secret'
    raw: true
`

var _ = Describe("custom rules", func() {
	It("should load YAML rule definitions", func() {
		loaded, err := rules.LoadCustomRules(strings.NewReader(customRules))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(loaded).Should(HaveLen(2))
		Expect(loaded[0].Language).Should(Equal(language.Java))
		Expect(loaded[0].Severity).Should(Equal(issue.High))
		Expect(loaded[0].Name).Should(Equal("acme-legacy-crypto"))
		Expect(loaded[1].Language).Should(Equal(language.Any))
	})

	It("should extend the built-in corpus", func() {
		loaded, err := rules.LoadCustomRules(strings.NewReader(customRules))
		Expect(err).ShouldNot(HaveOccurred())
		base, err := rules.Default()
		Expect(err).ShouldNot(HaveOccurred())
		corpus, err := base.With(rules.CorpusVersion, loaded)
		Expect(err).ShouldNot(HaveOccurred())

		r, ok := corpus.Lookup("acme-legacy-crypto")
		Expect(ok).Should(BeTrue())
		src := rules.NewSource(language.Java, "byte[] c = LegacyCrypto.encrypt(data);\n@SuppressLegacy byte[] d = LegacyCrypto.encrypt(data);\n")
		matches, err := r.Find(src, rules.Unlimited())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(matches).Should(HaveLen(1))
		Expect(matches[0].Text).Should(Equal("encrypt"))

		r, ok = corpus.Lookup("acme-todo-secret")
		Expect(ok).Should(BeTrue())
		matches, err = r.Find(rules.NewSource(language.Go, "// TODO remove secret\n"), rules.Unlimited())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(matches).Should(HaveLen(1))
	})

	It("should reject unknown keys and languages", func() {
		_, err := rules.LoadCustomRules(strings.NewReader("rules:\n  - id: x\n    pattern: y\n"))
		Expect(err).Should(HaveOccurred())
		_, err = rules.LoadCustomRules(strings.NewReader("rules:\n  - id: x\n    language: cobol\n    regex: y\n"))
		Expect(err).Should(HaveOccurred())
	})

	It("should fail corpus validation for broken rules", func() {
		loaded, err := rules.LoadCustomRules(strings.NewReader("rules:\n  - id: broken\n    category: xss\n    message: m\n    regex: '('\n"))
		Expect(err).ShouldNot(HaveOccurred())
		base, err := rules.Default()
		Expect(err).ShouldNot(HaveOccurred())
		_, err = base.With(rules.CorpusVersion, loaded)
		Expect(err).Should(BeAssignableToTypeOf(&rules.CorpusError{}))
	})

	It("should read rule files from disk", func() {
		path := filepath.Join(GinkgoT().TempDir(), "rules.yml")
		Expect(os.WriteFile(path, []byte(customRules), 0o600)).Should(Succeed())
		loaded, err := rules.LoadCustomRuleFiles(path)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(loaded).Should(HaveLen(2))

		_, err = rules.LoadCustomRuleFiles(filepath.Join(GinkgoT().TempDir(), "missing.yml"))
		Expect(err).Should(HaveOccurred())
	})
})
