package rules_test

import (
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zirafica98/neatcommit/language"
	"github.com/zirafica98/neatcommit/rules"
)

func find(p rules.Pattern, lang language.Language, code string) []rules.Span {
	spans, err := p.Find(rules.NewSource(lang, code), rules.Unlimited())
	Expect(err).ShouldNot(HaveOccurred())
	return spans
}

var _ = Describe("Patterns", func() {
	Context("Regex", func() {
		It("should report 1-based columns of the hit group", func() {
			spans := find(rules.Regex(`x = (?P<hit>eval)\(`), language.Python, "y = 1\nx = eval(s)\n")
			Expect(spans).Should(Equal([]rules.Span{{Line: 2, Column: 5, EndColumn: 9, Text: "eval"}}))
		})

		It("should ignore commented out code", func() {
			Expect(find(rules.Regex(`eval\(`), language.Python, "# eval(s)\n")).Should(BeEmpty())
			Expect(find(rules.Regex(`eval\(`), language.JavaScript, "/* eval(s) */\n")).Should(BeEmpty())
		})

		It("should leave trailing comments out of the span", func() {
			spans := find(rules.Regex(`(?P<hit>run\(.*)`), language.Python, "run(x)   # go\n")
			Expect(spans).Should(HaveLen(1))
			Expect(spans[0].Text).Should(Equal("run(x)"))
		})

		It("should fail validation on a bad expression", func() {
			Expect(rules.Regex(`(`).Validate()).Should(HaveOccurred())
			Expect(rules.Regex(` `).Validate()).Should(HaveOccurred())
		})
	})

	Context("Call", func() {
		It("should not fire on calls named inside strings", func() {
			p := rules.Call(`(?P<hit>eval\(.*)`)
			Expect(find(p, language.Python, "msg = \"never eval(x)\"\n")).Should(BeEmpty())
			Expect(find(p, language.Python, "\"\"\"\neval(x) is unsafe\n\"\"\"\n")).Should(BeEmpty())
		})

		It("should report the unmasked text of real calls", func() {
			spans := find(rules.Call(`(?P<hit>os\.system\(.*)`), language.Python, "os.system(\"ls \" + d)  # run\n")
			Expect(spans).Should(Equal([]rules.Span{{Line: 1, Column: 1, EndColumn: 21, Text: "os.system(\"ls \" + d)"}}))
		})
	})

	It("should search comments with Raw", func() {
		Expect(find(rules.Raw(`secret`), language.Go, "// secret\n")).Should(HaveLen(1))
	})

	It("should match statements split over lines with Window", func() {
		code := "call(\n  a,\n  shell=True)\n"
		Expect(find(rules.Window(`call\([^)]*shell=True`, 3), language.Python, code)).Should(HaveLen(1))
		Expect(find(rules.Window(`call\([^)]*shell=True`, 2), language.Python, code)).Should(BeEmpty())
	})

	It("should drop spans on lines matching Unless", func() {
		p := rules.Unless(rules.Regex(`open\(`), `basename`)
		Expect(find(p, language.Python, "open(a)\nopen(basename(a))\n")).Should(HaveLen(1))
	})

	It("should drop spans whose text matches Reject", func() {
		p := rules.Reject(rules.Regex(`http://\S+`), `localhost`)
		Expect(find(p, language.Go, "a := \"http://localhost\" + \"http://x.io\"\n")).Should(HaveLen(1))
	})

	It("should require context nearby with Near", func() {
		p := rules.Near(rules.Regex(`rand\(\)`), `token`, 1)
		Expect(find(p, language.Ruby, "token = nil\nx = rand()\n")).Should(HaveLen(1))
		Expect(find(p, language.Ruby, "token = nil\n\n\nx = rand()\n")).Should(BeEmpty())
	})

	It("should gate on the whole file with RequireFile and UnlessFile", func() {
		code := "import \"unsafe\"\nunsafe.Pointer(p)\n"
		Expect(find(rules.RequireFile(rules.Regex(`unsafe\.Pointer`), `"unsafe"`), language.Go, code)).Should(HaveLen(1))
		Expect(find(rules.UnlessFile(rules.Regex(`unsafe\.Pointer`), `"unsafe"`), language.Go, code)).Should(BeEmpty())
	})

	It("should merge spans with AnyOf", func() {
		p := rules.AnyOf(rules.Regex(`b`), rules.Regex(`a`), rules.Regex(`a`))
		spans := find(p, language.Go, "ab\n")
		Expect(spans).Should(HaveLen(2))
		Expect(spans[0].Text).Should(Equal("a"))
		Expect(spans[1].Text).Should(Equal("b"))
		Expect(rules.AnyOf().Validate()).Should(HaveOccurred())
	})

	It("should find statements missing a clause", func() {
		p := rules.MissingClause(`(?i)^\s*delete\s+from`, `(?i)\bwhere\b`, 5)
		spans := find(p, language.SQL, "DELETE FROM a;\nDELETE FROM b\nWHERE id = 1;\n")
		Expect(spans).Should(HaveLen(1))
		Expect(spans[0].Line).Should(Equal(1))
		Expect(spans[0].Text).Should(Equal("DELETE FROM a"))
	})

	It("should render patterns deterministically", func() {
		p := rules.Unless(rules.Window(`a`, 2), `b`)
		Expect(p.(interface{ String() string }).String()).Should(Equal("unless(window(2, a), b)"))
	})

	Context("budgets", func() {
		It("should stop with ErrBudgetExceeded when steps run out", func() {
			code := strings.Repeat("x = 1\n", 100)
			budget := rules.NewBudget(context.Background(), 0, 10)
			_, err := rules.Regex(`y`).Find(rules.NewSource(language.Python, code), budget)
			Expect(errors.Is(err, rules.ErrBudgetExceeded)).Should(BeTrue())
		})

		It("should report context cancellation as such", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			budget := rules.NewBudget(ctx, 0, 0)
			_, err := rules.Regex(`y`).Find(rules.NewSource(language.Python, "x\n"), budget)
			Expect(errors.Is(err, context.Canceled)).Should(BeTrue())
			Expect(errors.Is(err, rules.ErrBudgetExceeded)).Should(BeFalse())
		})
	})
})
