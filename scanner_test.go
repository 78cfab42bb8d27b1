package neatcommit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zirafica98/neatcommit"
	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/language"
	"github.com/zirafica98/neatcommit/rules"
)

type panicPattern struct{}

func (panicPattern) Find(*rules.Source, *rules.Budget) ([]rules.Span, error) {
	panic("index out of range")
}

func (panicPattern) Validate() error { return nil }

func customRule(t *testing.T, id, regex string) *rules.Rule {
	t.Helper()
	r, err := rules.CustomRule{
		ID:       id,
		Language: "python",
		Severity: issue.High,
		Category: "code-injection",
		Message:  "matched {{.Match}}",
		Regex:    regex,
	}.Build()
	require.NoError(t, err)
	require.NoError(t, r.Compile())
	return r
}

func TestScanRecoversPanickingRules(t *testing.T) {
	boom := &rules.Rule{
		MetaData: issue.MetaData{ID: "boom", Severity: issue.Low, Category: issue.DebugConfig, Message: "boom"},
		Language: language.Any,
		Pattern:  panicPattern{},
	}
	evalRule := customRule(t, "test-eval", `eval\(`)
	src := rules.NewSource(language.Python, "eval(x)\n")

	out := neatcommit.Scan(context.Background(), src, []*rules.Rule{boom, evalRule}, neatcommit.ScanOptions{})
	require.Len(t, out.Skipped, 1)
	assert.Equal(t, "boom", out.Skipped[0].RuleID)
	assert.ErrorContains(t, out.Skipped[0], "panic during evaluation")
	assert.Equal(t, []string{"boom"}, out.SkippedRuleIDs())
	require.Len(t, out.Matches, 1)
	assert.Equal(t, "test-eval", out.Matches[0].RuleID)
	assert.False(t, out.Partial)
}

func TestScanBudgetExceeded(t *testing.T) {
	r := customRule(t, "test-eval", `eval\(`)
	src := rules.NewSource(language.Python, "a = 1\nb = 2\neval(x)\n")

	out := neatcommit.Scan(context.Background(), src, []*rules.Rule{r}, neatcommit.ScanOptions{MaxSteps: 2})
	require.Len(t, out.Skipped, 1)
	assert.True(t, errors.Is(out.Skipped[0], rules.ErrBudgetExceeded))
	assert.Empty(t, out.Matches)

	out = neatcommit.Scan(context.Background(), src, []*rules.Rule{r}, neatcommit.ScanOptions{MaxSteps: 100})
	assert.Empty(t, out.Skipped)
	assert.Len(t, out.Matches, 1)
}

func TestScanStopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := customRule(t, "test-eval", `eval\(`)
	out := neatcommit.Scan(ctx, rules.NewSource(language.Python, "eval(x)\n"), []*rules.Rule{r}, neatcommit.ScanOptions{})
	assert.True(t, out.Partial)
	assert.Empty(t, out.Matches)
	assert.Empty(t, out.Skipped)
}

func TestScanNosec(t *testing.T) {
	evalRule := customRule(t, "test-eval", `eval\(`)
	execRule := customRule(t, "test-exec", `exec\(`)
	ruleset := []*rules.Rule{evalRule, execRule}

	tests := []struct {
		name       string
		lang       language.Language
		code       string
		opts       neatcommit.ScanOptions
		want       []string
		suppressed int
	}{
		{
			name:       "blanket",
			lang:       language.Python,
			code:       "eval(x); exec(y)  # nosec\n",
			suppressed: 2,
		},
		{
			name:       "listed rule only",
			lang:       language.Python,
			code:       "eval(x); exec(y)  # nosec test-eval -- reviewed\n",
			want:       []string{"test-exec"},
			suppressed: 1,
		},
		{
			name:       "several rules",
			lang:       language.Python,
			code:       "eval(x); exec(y)  # NOSEC test-eval, test-exec\n",
			suppressed: 2,
		},
		{
			name: "inside a string",
			lang: language.Python,
			code: "eval(\"# nosec\")\n",
			want: []string{"test-eval"},
		},
		{
			name:       "string before comment",
			lang:       language.Python,
			code:       "eval(\"#nosec\")  # nosec\n",
			suppressed: 1,
		},
		{
			name:       "string before listed rule",
			lang:       language.Python,
			code:       "eval(\"# nosec test-exec\")  # nosec test-eval\n",
			suppressed: 1,
		},
		{
			name: "other line",
			lang: language.Python,
			code: "# nosec\neval(x)\n",
			want: []string{"test-eval"},
		},
		{
			name: "ignored",
			lang: language.Python,
			code: "eval(x)  # nosec\n",
			opts: neatcommit.ScanOptions{IgnoreNosec: true},
			want: []string{"test-eval"},
		},
		{
			name:       "slash comment",
			lang:       language.JavaScript,
			code:       "eval(x) // #nosec\n",
			suppressed: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := neatcommit.Scan(context.Background(), rules.NewSource(tt.lang, tt.code), ruleset, tt.opts)
			var got []string
			for _, m := range out.Matches {
				got = append(got, m.RuleID)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.suppressed, out.Suppressed)
		})
	}
}
