package rules

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/zirafica98/neatcommit/cwe"
	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/language"
)

// CorpusVersion is the version of the built-in rule set.
const CorpusVersion = "1.4.0"

// CorpusError lists every problem found while loading a corpus.
type CorpusError struct {
	Problems []string
}

func (e *CorpusError) Error() string {
	return fmt.Sprintf("invalid rule corpus: %s", strings.Join(e.Problems, "; "))
}

// Corpus is an immutable, validated set of rules. It is safe for
// concurrent use.
type Corpus struct {
	version string
	rules   []*Rule
	byID    map[string]*Rule
	byLang  map[language.Language][]*Rule
	anyLang []*Rule
}

// NewCorpus validates rules and indexes them by language. The declaration
// order of rules is kept and is the order in which they are evaluated.
func NewCorpus(version string, rules []*Rule) (*Corpus, error) {
	c := &Corpus{
		byID:   make(map[string]*Rule, len(rules)),
		byLang: make(map[language.Language][]*Rule),
	}

	var problems []string
	fingerprint := sha256.New()
	for i, r := range rules {
		if err := validate(r); err != nil {
			problems = append(problems, fmt.Sprintf("rule #%d: %v", i, err))
			continue
		}
		if _, dup := c.byID[r.ID]; dup {
			problems = append(problems, fmt.Sprintf("rule #%d: duplicate id %q", i, r.ID))
			continue
		}
		c.byID[r.ID] = r
		c.rules = append(c.rules, r)
		fmt.Fprintf(fingerprint, "%s|%s|%s|%s|%s|%s\n", r.ID, r.Language, r.Severity, r.Category, r.Message, describe(r.Pattern))
	}
	if len(problems) > 0 {
		return nil, &CorpusError{Problems: problems}
	}
	if len(c.rules) == 0 {
		return nil, &CorpusError{Problems: []string{"no rules"}}
	}

	for _, lang := range language.Supported() {
		for _, r := range c.rules {
			if r.AppliesTo(lang) {
				c.byLang[lang] = append(c.byLang[lang], r)
			}
		}
	}
	for _, r := range c.rules {
		if r.Language == language.Any {
			c.anyLang = append(c.anyLang, r)
		}
	}
	c.version = fmt.Sprintf("%s+%s", version, hex.EncodeToString(fingerprint.Sum(nil))[:8])
	return c, nil
}

func validate(r *Rule) error {
	if r == nil {
		return fmt.Errorf("nil rule")
	}
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("missing id")
	}
	if r.Language != language.Any && !r.Language.IsSupported() {
		return fmt.Errorf("%s: unsupported language %q", r.ID, r.Language)
	}
	if !r.Severity.Valid() {
		return fmt.Errorf("%s: invalid severity %d", r.ID, r.Severity)
	}
	if r.Category == "" {
		return fmt.Errorf("%s: missing category", r.ID)
	}
	if r.CWE != "" && cwe.Get(r.CWE) == nil {
		return fmt.Errorf("%s: unknown CWE %q", r.ID, r.CWE)
	}
	if r.Pattern == nil {
		return fmt.Errorf("%s: missing pattern", r.ID)
	}
	if err := r.Pattern.Validate(); err != nil {
		return fmt.Errorf("%s: %w", r.ID, err)
	}
	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("%s: missing message", r.ID)
	}
	if r.Compiled() {
		return nil
	}
	return r.Compile()
}

// Default builds the corpus of built-in rules.
func Default(filters ...RuleFilter) (*Corpus, error) {
	return NewCorpus(CorpusVersion, Generate(filters...).Rules())
}

// DescribePattern renders a rule's pattern for listings.
func DescribePattern(r *Rule) string {
	return describe(r.Pattern)
}

// Version identifies the rule set; it changes whenever a rule does.
func (c *Corpus) Version() string {
	return c.version
}

// RulesFor returns the rules applicable to lang, including rules scoped to
// any language, in declaration order.
func (c *Corpus) RulesFor(lang language.Language) []*Rule {
	return c.byLang[lang]
}

// AnyRules returns the rules scoped to every language.
func (c *Corpus) AnyRules() []*Rule {
	return c.anyLang
}

// All returns every rule in declaration order.
func (c *Corpus) All() []*Rule {
	return c.rules
}

// Len is the number of rules.
func (c *Corpus) Len() int {
	return len(c.rules)
}

// Lookup finds a rule by ID.
func (c *Corpus) Lookup(id string) (*Rule, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// Describe implements issue.Describer.
func (c *Corpus) Describe(id string) (*issue.MetaData, bool) {
	r, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &r.MetaData, true
}

// With returns a new corpus holding the rules of c followed by extra.
func (c *Corpus) With(version string, extra []*Rule) (*Corpus, error) {
	all := make([]*Rule, 0, len(c.rules)+len(extra))
	all = append(all, c.rules...)
	all = append(all, extra...)
	return NewCorpus(version, all)
}
