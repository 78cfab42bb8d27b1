package rules

import (
	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/language"
)

// Rule is an immutable detection rule. Rules are shared by every analysis
// and must never be modified once added to a Corpus.
type Rule struct {
	issue.MetaData
	Language language.Language
	Pattern  Pattern
}

// AppliesTo reports whether the rule runs on snippets of lang.
func (r *Rule) AppliesTo(lang language.Language) bool {
	return r.Language == language.Any || r.Language == lang
}

// Find runs the rule's pattern and tags the spans with the rule ID.
func (r *Rule) Find(src *Source, budget *Budget) ([]issue.Match, error) {
	spans, err := r.Pattern.Find(src, budget)
	if err != nil {
		return nil, err
	}
	matches := make([]issue.Match, 0, len(spans))
	for _, s := range spans {
		matches = append(matches, issue.Match{
			RuleID:    r.ID,
			Line:      s.Line,
			Column:    s.Column,
			EndColumn: s.EndColumn,
			Text:      s.Text,
		})
	}
	return matches, nil
}
