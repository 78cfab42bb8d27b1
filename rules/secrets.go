package rules

import (
	"regexp"
	"strings"
	"unicode"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

const (
	entropyThreshold = 80.0
	perCharThreshold = 3.0
	entropyTruncate  = 16
)

var (
	assignment = regexp.MustCompile("(?P<name>[A-Za-z_$@][\\w$.\\-]*)[\"']?\\s*(?::=|=>|=|:)\\s*(?:[rRbBuU]|@)?[\"'`](?P<value>[^\"'`\\n]*)[\"'`]")

	placeholder = regexp.MustCompile(`(?i)^(\$\{.*\}|\{\{.*\}\}|\{[^}]*\}|<[^>]*>|%\(?\w*\)?s|\$\w+|[*x.]+|(your|example|dummy|fake|sample)[_-]?\w*|placeholder|null|none|nil|undefined|true|false|env\b.*)$`)

	knownSecretPrefix = regexp.MustCompile(`^((sk|pk|rk)[-_](live_|test_)?[A-Za-z0-9]{12,}|AKIA[0-9A-Z]{16}|gh[pousr]_[A-Za-z0-9]{30,}|xox[abprs]-[A-Za-z0-9-]{10,}|AIza[0-9A-Za-z_\-]{35}|glpat-[A-Za-z0-9_\-]{20}|SG\.[A-Za-z0-9_\-]{16,})`)
)

type secretAssign struct {
	names  *regexPattern
	accept func(value string) bool
}

// SecretAssign reports literal assignments (or key/value pairs) whose
// identifier matches names and whose value passes accept.
func SecretAssign(names string, accept func(value string) bool) Pattern {
	return &secretAssign{names: compile(names), accept: accept}
}

func (s *secretAssign) Validate() error {
	if s.accept == nil {
		return errEmptyPattern
	}
	return s.names.Validate()
}

func (s *secretAssign) Find(src *Source, budget *Budget) ([]Span, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	nameIdx := assignment.SubexpIndex("name")
	valueIdx := assignment.SubexpIndex("value")

	var spans []Span
	for i, line := range src.Code {
		if err := budget.spendOn(line); err != nil {
			return nil, err
		}
		if !strings.ContainsAny(line, "=:") {
			continue
		}
		for _, loc := range assignment.FindAllStringSubmatchIndex(line, -1) {
			name := line[loc[2*nameIdx]:loc[2*nameIdx+1]]
			value := line[loc[2*valueIdx]:loc[2*valueIdx+1]]
			if !RegexMatch(s.names.re, name) || !s.accept(value) {
				continue
			}
			spans = append(spans, Span{
				Line:      i + 1,
				Column:    loc[0] + 1,
				EndColumn: loc[1] + 1,
				Text:      src.Lines[i][loc[0]:loc[1]],
			})
		}
	}
	return spans, nil
}

// IsPlaceholder reports values that are templates or masks rather than
// real credentials.
func IsPlaceholder(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || placeholder.MatchString(v)
}

// HasKnownSecretPrefix reports values shaped like a provider issued key.
func HasKnownSecretPrefix(value string) bool {
	return knownSecretPrefix.MatchString(value)
}

// IsHighEntropy estimates whether value looks randomly generated.
func IsHighEntropy(value string) bool {
	s := value
	if len(s) > entropyTruncate {
		s = s[:entropyTruncate]
	}
	if s == "" {
		return false
	}
	entropy := entropyResults.GetOrCompute(s, func() float64 {
		return zxcvbn.PasswordStrength(s, []string{}).Entropy
	})
	perChar := entropy / float64(len(s))
	return entropy >= entropyThreshold ||
		(entropy >= entropyThreshold/2 && perChar >= perCharThreshold)
}

// LooksLikePassword accepts literals that are not placeholders and are
// either high entropy or mix letters with digits, symbols or case.
func LooksLikePassword(value string) bool {
	if IsPlaceholder(value) || len(value) < 6 || strings.ContainsAny(value, " \t") {
		return false
	}
	if IsHighEntropy(value) {
		return true
	}
	var lower, upper, digit, other bool
	for _, r := range value {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsSpace(r):
			other = true
		}
	}
	return digit || other || (lower && upper)
}

// LooksLikeSecret accepts provider keys and high entropy literals.
func LooksLikeSecret(value string) bool {
	if IsPlaceholder(value) || len(value) < 8 {
		return false
	}
	return HasKnownSecretPrefix(value) || IsHighEntropy(value)
}

func (s *secretAssign) String() string {
	return "secret(" + s.names.expr + ")"
}
