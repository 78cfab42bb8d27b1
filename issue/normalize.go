package issue

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/zirafica98/neatcommit/cwe"
)

// DefaultMaxSnippetLength is the number of runes kept in a snippet.
const DefaultMaxSnippetLength = 120

const ellipsis = "…"

// Describer resolves the metadata of the rule that produced a match.
type Describer interface {
	Describe(ruleID string) (*MetaData, bool)
}

// Options tune normalization.
type Options struct {
	MaxSnippetLength  int
	SeverityOverrides map[string]Severity
}

// Normalize turns raw matches into ordered, deduplicated issues. Matches of
// rules the describer does not know are dropped. The output only depends on
// the set of matches, not on their order.
func Normalize(matches []Match, rules Describer, opts Options) []*Issue {
	if opts.MaxSnippetLength <= 0 {
		opts.MaxSnippetLength = DefaultMaxSnippetLength
	}

	ordered := make([]Match, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.RuleID != b.RuleID {
			return a.RuleID < b.RuleID
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.Text < b.Text
	})

	type key struct {
		rule string
		line int
	}
	seen := make(map[key]bool, len(ordered))
	issues := make([]*Issue, 0, len(ordered))
	for _, m := range ordered {
		k := key{m.RuleID, m.Line}
		if seen[k] {
			continue
		}
		md, ok := rules.Describe(m.RuleID)
		if !ok {
			continue
		}
		seen[k] = true
		issues = append(issues, newIssue(m, md, opts))
	}
	Sort(issues)
	return issues
}

func newIssue(m Match, md *MetaData, opts Options) *Issue {
	severity := md.Severity
	if override, ok := opts.SeverityOverrides[m.RuleID]; ok && override.Valid() {
		severity = override
	}
	snippet := Truncate(collapse(m.Text), opts.MaxSnippetLength)
	return &Issue{
		ID:       ID(m.RuleID, m.Line, m.Column, snippet),
		RuleID:   m.RuleID,
		Title:    md.Name,
		Severity: severity,
		Category: md.Category,
		Line:     m.Line,
		Column:   m.Column,
		Message:  md.Render(MessageData{RuleID: m.RuleID, Line: m.Line, Match: snippet}),
		Snippet:  snippet,
		Cwe:      cwe.Get(md.CWE),
		Fix:      md.Fix,
	}
}

// Sort orders issues by severity (most severe first), then line, then rule.
func Sort(issues []*Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i], issues[j]
		if a.Severity != b.Severity {
			return a.Severity > b.Severity
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.RuleID != b.RuleID {
			return a.RuleID < b.RuleID
		}
		return a.Column < b.Column
	})
}

// Matches recovers the matches an issue list was built from.
func Matches(issues []*Issue) []Match {
	out := make([]Match, 0, len(issues))
	for _, i := range issues {
		out = append(out, Match{RuleID: i.RuleID, Line: i.Line, Column: i.Column, Text: i.Snippet})
	}
	return out
}

// ID derives a stable identifier for an issue.
func ID(ruleID string, line, column int, snippet string) string {
	return uuid.NewMD5(uuid.Nil, []byte(fmt.Sprintf("%s:%d:%d:%s", ruleID, line, column, snippet))).String()
}

// Truncate shortens s to at most max runes, marking the cut with an
// ellipsis. Truncating an already truncated string is a no-op.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + ellipsis
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
