package rules

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/language"
)

// CustomRule is the YAML form of a user supplied regex rule.
//
//	rules:
//	  - id: acme-legacy-crypto
//	    language: java
//	    severity: high
//	    category: weak-crypto
//	    cwe: "327"
//	    message: "Legacy cipher helper: {{.Match}}"
//	    regex: 'LegacyCrypto\.(?P<hit>encrypt)\('
//	    unless: ['@Deprecated']
type CustomRule struct {
	ID       string         `yaml:"id"`
	Name     string         `yaml:"name,omitempty"`
	Language string         `yaml:"language"`
	Severity issue.Severity `yaml:"severity"`
	Category string         `yaml:"category"`
	CWE      string         `yaml:"cwe,omitempty"`
	Message  string         `yaml:"message"`
	Fix      string         `yaml:"fix,omitempty"`
	Regex    string         `yaml:"regex"`
	Raw      bool           `yaml:"raw,omitempty"`
	Window   int            `yaml:"window,omitempty"`
	Unless   []string       `yaml:"unless,omitempty"`
	Near     string         `yaml:"near,omitempty"`
	Radius   int            `yaml:"radius,omitempty"`
}

type customRuleFile struct {
	Rules []CustomRule `yaml:"rules"`
}

// Build converts the definition into a Rule. The rule is validated when it
// is added to a Corpus.
func (c CustomRule) Build() (*Rule, error) {
	lang := language.Any
	if c.Language != "" && c.Language != string(language.Any) {
		var ok bool
		if lang, ok = language.Parse(c.Language); !ok {
			return nil, fmt.Errorf("rule %s: unknown language %q", c.ID, c.Language)
		}
	}

	var p Pattern
	switch {
	case c.Window > 1:
		p = Window(c.Regex, c.Window)
	case c.Raw:
		p = Raw(c.Regex)
	default:
		p = Regex(c.Regex)
	}
	if len(c.Unless) > 0 {
		p = Unless(p, c.Unless...)
	}
	if c.Near != "" {
		radius := c.Radius
		if radius == 0 {
			radius = 2
		}
		p = Near(p, c.Near, radius)
	}

	name := c.Name
	if name == "" {
		name = c.ID
	}
	return &Rule{
		MetaData: issue.MetaData{
			ID:       c.ID,
			Name:     name,
			Severity: c.Severity,
			Category: issue.Category(c.Category),
			CWE:      c.CWE,
			Message:  c.Message,
			Fix:      c.Fix,
		},
		Language: lang,
		Pattern:  p,
	}, nil
}

// LoadCustomRules decodes a YAML rule file. Unknown keys are rejected.
func LoadCustomRules(r io.Reader) ([]*Rule, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var file customRuleFile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding custom rules: %w", err)
	}
	out := make([]*Rule, 0, len(file.Rules))
	for _, def := range file.Rules {
		r, err := def.Build()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// LoadCustomRuleFiles reads every file in paths, in order.
func LoadCustomRuleFiles(paths ...string) ([]*Rule, error) {
	var out []*Rule
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		loaded, err := LoadCustomRules(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		out = append(out, loaded...)
	}
	return out, nil
}
