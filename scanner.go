package neatcommit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/rules"
)

// ScanOptions bounds the evaluation of each rule.
type ScanOptions struct {
	RuleTimeout time.Duration
	MaxSteps    int
	IgnoreNosec bool
}

// ScanOutcome is the raw output of running a rule set over one source.
type ScanOutcome struct {
	Matches []issue.Match
	// Skipped lists the rules that were abandoned. Their matches are not
	// part of Matches.
	Skipped []*RuleError
	// Suppressed counts the (rule, line) pairs silenced by #nosec.
	Suppressed int
	// Partial is set when the context ended before every rule ran.
	Partial bool
}

// SkippedRuleIDs returns the IDs of the abandoned rules in evaluation order.
func (o *ScanOutcome) SkippedRuleIDs() []string {
	ids := make([]string, 0, len(o.Skipped))
	for _, s := range o.Skipped {
		ids = append(ids, s.RuleID)
	}
	return ids
}

// Scan evaluates the rules in order. A rule that exceeds its budget or
// panics is skipped and recorded; the other rules still run. When ctx ends,
// the matches of the rules completed so far are kept and the outcome is
// marked partial.
func Scan(ctx context.Context, src *rules.Source, ruleset []*rules.Rule, opts ScanOptions) *ScanOutcome {
	out := &ScanOutcome{}
	var directives nosec
	if !opts.IgnoreNosec {
		directives = parseNosec(src)
	}
	type key struct {
		rule string
		line int
	}
	suppressed := make(map[key]bool)

	for _, r := range ruleset {
		if ctx.Err() != nil {
			out.Partial = true
			break
		}
		matches, err := runRule(ctx, r, src, opts)
		if err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				out.Partial = true
				break
			}
			out.Skipped = append(out.Skipped, &RuleError{RuleID: r.ID, Err: err})
			continue
		}
		for _, m := range matches {
			if directives.suppresses(m.Line, m.RuleID) {
				suppressed[key{m.RuleID, m.Line}] = true
				continue
			}
			out.Matches = append(out.Matches, m)
		}
	}
	out.Suppressed = len(suppressed)
	return out
}

func runRule(ctx context.Context, r *rules.Rule, src *rules.Source, opts ScanOptions) (matches []issue.Match, err error) {
	defer func() {
		if p := recover(); p != nil {
			matches = nil
			err = fmt.Errorf("panic during evaluation: %v", p)
		}
	}()
	return r.Find(src, rules.NewBudget(ctx, opts.RuleTimeout, opts.MaxSteps))
}
