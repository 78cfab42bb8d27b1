package rules

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Span is one place where a pattern fired. Line and Column are 1-based;
// EndColumn is exclusive. Text is taken from the unmasked source.
type Span struct {
	Line      int
	Column    int
	EndColumn int
	Text      string
}

// Pattern is a structural predicate over a Source. Find must be pure: the
// same source always yields the same spans in the same order.
type Pattern interface {
	Find(src *Source, budget *Budget) ([]Span, error)
	Validate() error
}

var errEmptyPattern = errors.New("empty pattern")

// hitGroup names the capture group that narrows a match to its trigger.
const hitGroup = "hit"

type view int

const (
	codeView view = iota
	rawView
	strippedView
)

type regexPattern struct {
	expr string
	re   *regexp.Regexp
	err  error
	view view
}

func compile(expr string) *regexPattern {
	p := &regexPattern{expr: expr}
	if strings.TrimSpace(expr) == "" {
		p.err = errEmptyPattern
		return p
	}
	p.re, p.err = regexp.Compile(expr)
	return p
}

// Regex matches expr against every masked line. When expr has a group named
// "hit" the span covers that group only.
func Regex(expr string) Pattern {
	return compile(expr)
}

// Raw matches expr against the unmasked lines, so comments are searched too.
func Raw(expr string) Pattern {
	p := compile(expr)
	p.view = rawView
	return p
}

// Call matches expr against the masked lines with string contents blanked,
// so a call named inside a string or docstring does not fire. Quotes stay,
// which keeps shapes like `"..." + x` matchable.
func Call(expr string) Pattern {
	p := compile(expr)
	p.view = strippedView
	return p
}

func (p *regexPattern) Validate() error {
	if p.err != nil {
		return fmt.Errorf("pattern %q: %w", p.expr, p.err)
	}
	return nil
}

func (p *regexPattern) String() string {
	if p.view == strippedView {
		return "call(" + p.expr + ")"
	}
	return p.expr
}

func (p *regexPattern) Find(src *Source, budget *Budget) ([]Span, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	lines := src.Code
	switch p.view {
	case rawView:
		lines = src.Lines
	case strippedView:
		lines = src.Stripped
	}
	var spans []Span
	for i, line := range lines {
		if err := budget.spendOn(line); err != nil {
			return nil, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		trim := line
		if p.view == strippedView {
			trim = src.Code[i]
		}
		for _, loc := range p.re.FindAllStringSubmatchIndex(line, -1) {
			if s, ok := p.span(loc, i+1, trim, src.Lines[i]); ok {
				spans = append(spans, s)
			}
		}
	}
	return spans, nil
}

// span converts a submatch index into a span on line. Blanked comments at
// the end of the match are left out of the span.
func (p *regexPattern) span(loc []int, line int, masked, rawText string) (Span, bool) {
	start, end := loc[0], loc[1]
	if hit := p.re.SubexpIndex(hitGroup); hit > 0 && loc[2*hit] >= 0 {
		start, end = loc[2*hit], loc[2*hit+1]
	}
	for end > start && end <= len(masked) && (masked[end-1] == ' ' || masked[end-1] == '\t') {
		end--
	}
	if end <= start || end > len(rawText) {
		return Span{}, false
	}
	return Span{Line: line, Column: start + 1, EndColumn: end + 1, Text: rawText[start:end]}, true
}

type windowPattern struct {
	*regexPattern
	lines int
}

// Window matches expr against every run of n consecutive masked lines
// joined by newlines. A span is reported on the line where the match
// starts, so statements split over several lines are found once.
func Window(expr string, n int) Pattern {
	if n < 1 {
		n = 1
	}
	return &windowPattern{regexPattern: compile(expr), lines: n}
}

func (p *windowPattern) Find(src *Source, budget *Budget) ([]Span, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var spans []Span
	for i := range src.Code {
		end := i + p.lines
		if end > len(src.Code) {
			end = len(src.Code)
		}
		text := strings.Join(src.Code[i:end], "\n")
		if err := budget.spendOn(text); err != nil {
			return nil, err
		}
		if strings.TrimSpace(src.Code[i]) == "" {
			continue
		}
		rawText := strings.Join(src.Lines[i:end], "\n")
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			s, ok := p.span(loc, i+1, text, rawText)
			if !ok || s.Column-1 >= len(src.Code[i]) {
				continue
			}
			spans = append(spans, s)
		}
	}
	return spans, nil
}

type filterPattern struct {
	inner     Pattern
	negatives []*regexPattern
	onText    bool
}

// Unless drops spans whose masked line matches any of the negative
// expressions.
func Unless(p Pattern, negatives ...string) Pattern {
	return newFilter(p, false, negatives)
}

// Reject drops spans whose matched text matches any of the negative
// expressions.
func Reject(p Pattern, negatives ...string) Pattern {
	return newFilter(p, true, negatives)
}

func newFilter(p Pattern, onText bool, negatives []string) *filterPattern {
	f := &filterPattern{inner: p, onText: onText}
	for _, n := range negatives {
		f.negatives = append(f.negatives, compile(n))
	}
	return f
}

func (f *filterPattern) Validate() error {
	if f.inner == nil {
		return errEmptyPattern
	}
	if err := f.inner.Validate(); err != nil {
		return err
	}
	for _, n := range f.negatives {
		if err := n.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (f *filterPattern) Find(src *Source, budget *Budget) ([]Span, error) {
	spans, err := f.inner.Find(src, budget)
	if err != nil {
		return nil, err
	}
	kept := spans[:0]
	for _, s := range spans {
		subject := s.Text
		if !f.onText {
			subject = src.Code[s.Line-1]
		}
		if err := budget.spendOn(subject); err != nil {
			return nil, err
		}
		if !f.matchesAny(subject) {
			kept = append(kept, s)
		}
	}
	return kept, nil
}

func (f *filterPattern) matchesAny(subject string) bool {
	for _, n := range f.negatives {
		if RegexMatch(n.re, subject) {
			return true
		}
	}
	return false
}

type nearPattern struct {
	inner   Pattern
	context *regexPattern
	radius  int
}

// Near keeps spans that have a masked line matching context within radius
// lines, the span's own line included.
func Near(p Pattern, context string, radius int) Pattern {
	if radius < 0 {
		radius = 0
	}
	return &nearPattern{inner: p, context: compile(context), radius: radius}
}

func (n *nearPattern) Validate() error {
	if n.inner == nil {
		return errEmptyPattern
	}
	if err := n.inner.Validate(); err != nil {
		return err
	}
	return n.context.Validate()
}

func (n *nearPattern) Find(src *Source, budget *Budget) ([]Span, error) {
	spans, err := n.inner.Find(src, budget)
	if err != nil {
		return nil, err
	}
	kept := spans[:0]
	for _, s := range spans {
		from, to := s.Line-1-n.radius, s.Line-1+n.radius
		if from < 0 {
			from = 0
		}
		if to >= len(src.Code) {
			to = len(src.Code) - 1
		}
		for i := from; i <= to; i++ {
			if err := budget.spendOn(src.Code[i]); err != nil {
				return nil, err
			}
			if RegexMatch(n.context.re, src.Code[i]) {
				kept = append(kept, s)
				break
			}
		}
	}
	return kept, nil
}

type filePattern struct {
	inner    Pattern
	cond     *regexPattern
	required bool
}

// RequireFile only evaluates p when the whole masked source matches expr.
func RequireFile(p Pattern, expr string) Pattern {
	return &filePattern{inner: p, cond: compile(expr), required: true}
}

// UnlessFile skips p when the whole masked source matches expr.
func UnlessFile(p Pattern, expr string) Pattern {
	return &filePattern{inner: p, cond: compile(expr)}
}

func (f *filePattern) Validate() error {
	if f.inner == nil {
		return errEmptyPattern
	}
	if err := f.inner.Validate(); err != nil {
		return err
	}
	return f.cond.Validate()
}

func (f *filePattern) Find(src *Source, budget *Budget) ([]Span, error) {
	if err := budget.spendOn(src.Text()); err != nil {
		return nil, err
	}
	if f.cond.re.MatchString(src.Text()) != f.required {
		return nil, nil
	}
	return f.inner.Find(src, budget)
}

type anyOf []Pattern

// AnyOf reports the union of the spans of ps, ordered by position. Spans
// found by more than one pattern at the same position are reported once.
func AnyOf(ps ...Pattern) Pattern {
	return anyOf(ps)
}

func (a anyOf) Validate() error {
	if len(a) == 0 {
		return errEmptyPattern
	}
	for _, p := range a {
		if p == nil {
			return errEmptyPattern
		}
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (a anyOf) Find(src *Source, budget *Budget) ([]Span, error) {
	var all []Span
	for _, p := range a {
		spans, err := p.Find(src, budget)
		if err != nil {
			return nil, err
		}
		all = append(all, spans...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Line != all[j].Line {
			return all[i].Line < all[j].Line
		}
		return all[i].Column < all[j].Column
	})
	out := all[:0]
	for i, s := range all {
		if i > 0 && s.Line == all[i-1].Line && s.Column == all[i-1].Column {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type missingClause struct {
	start    *regexPattern
	clause   *regexPattern
	maxLines int
}

// MissingClause reports statements that begin with start and reach their
// terminating semicolon (or maxLines lines, or the end of the source)
// without clause appearing.
func MissingClause(start, clause string, maxLines int) Pattern {
	if maxLines < 1 {
		maxLines = 1
	}
	return &missingClause{start: compile(start), clause: compile(clause), maxLines: maxLines}
}

func (m *missingClause) Validate() error {
	if err := m.start.Validate(); err != nil {
		return err
	}
	return m.clause.Validate()
}

func (m *missingClause) Find(src *Source, budget *Budget) ([]Span, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	var spans []Span
	for i, line := range src.Code {
		if err := budget.spendOn(line); err != nil {
			return nil, err
		}
		loc := m.start.re.FindStringIndex(line)
		if loc == nil {
			continue
		}
		stmt := m.statement(src.Code, i, loc[0])
		if err := budget.spendOn(stmt); err != nil {
			return nil, err
		}
		if m.clause.re.MatchString(stmt) {
			continue
		}
		text := strings.TrimRight(src.Lines[i][loc[0]:], " \t;")
		spans = append(spans, Span{Line: i + 1, Column: loc[0] + 1, EndColumn: loc[0] + len(text) + 1, Text: text})
	}
	return spans, nil
}

func (m *missingClause) statement(lines []string, first, col int) string {
	var sb strings.Builder
	for i := first; i < len(lines) && i < first+m.maxLines; i++ {
		text := lines[i]
		if i == first {
			text = text[col:]
		}
		if end := strings.IndexByte(text, ';'); end >= 0 {
			sb.WriteString(text[:end])
			break
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (p *windowPattern) String() string {
	return fmt.Sprintf("window(%d, %s)", p.lines, p.expr)
}

func (f *filterPattern) String() string {
	kind := "unless"
	if f.onText {
		kind = "reject"
	}
	return fmt.Sprintf("%s(%s, %s)", kind, describe(f.inner), describeAll(f.negatives))
}

func (n *nearPattern) String() string {
	return fmt.Sprintf("near(%s, %s, %d)", describe(n.inner), n.context.expr, n.radius)
}

func (f *filePattern) String() string {
	kind := "unless-file"
	if f.required {
		kind = "require-file"
	}
	return fmt.Sprintf("%s(%s, %s)", kind, describe(f.inner), f.cond.expr)
}

func (a anyOf) String() string {
	parts := make([]string, 0, len(a))
	for _, p := range a {
		parts = append(parts, describe(p))
	}
	return "any(" + strings.Join(parts, ", ") + ")"
}

func (m *missingClause) String() string {
	return fmt.Sprintf("missing(%s, %s, %d)", m.start.expr, m.clause.expr, m.maxLines)
}

// describe renders a pattern deterministically for fingerprints and listings.
func describe(p Pattern) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", p)
}

func describeAll(ps []*regexPattern) string {
	exprs := make([]string, 0, len(ps))
	for _, p := range ps {
		exprs = append(exprs, p.expr)
	}
	return strings.Join(exprs, " | ")
}
