package neatcommit

import (
	"regexp"
	"strings"

	"github.com/zirafica98/neatcommit/rules"
)

var (
	nosecDirective = regexp.MustCompile(`(?i)(?:#|//|--|/\*)\s*nosec\b(.*)$`)
	nosecRuleID    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)+$`)
)

// nosec holds the suppression directives of one snippet keyed by line. A nil
// rule set suppresses every rule on the line.
type nosec map[int]map[string]bool

// parseNosec collects "#nosec" directives. A directive only counts when it
// sits in a comment; the same text inside a string literal is ignored. Rule
// IDs may follow the directive; anything after them is a justification:
//
//	os.system(cmd)  # nosec python-command-injection -- input is a constant
func parseNosec(src *rules.Source) nosec {
	var directives nosec
	for i, line := range src.Lines {
		if !strings.Contains(strings.ToLower(line), "nosec") {
			continue
		}
		loc := commentDirective(src, i)
		if loc == nil {
			continue
		}
		if directives == nil {
			directives = make(nosec)
		}
		var ids map[string]bool
		tail := strings.TrimSuffix(strings.TrimSpace(line[loc[2]:loc[3]]), "*/")
		for _, field := range strings.FieldsFunc(tail, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' }) {
			if !nosecRuleID.MatchString(field) {
				break
			}
			if ids == nil {
				ids = make(map[string]bool)
			}
			ids[field] = true
		}
		directives[i+1] = ids
	}
	return directives
}

// commentDirective returns the submatch index of the first directive on
// line i that starts inside a comment. Earlier hits inside string literals
// are skipped.
func commentDirective(src *rules.Source, i int) []int {
	line := src.Lines[i]
	for off := 0; off < len(line); {
		loc := nosecDirective.FindStringSubmatchIndex(line[off:])
		if loc == nil {
			return nil
		}
		if masked(src, i, off+loc[0]) {
			for k := range loc {
				if loc[k] >= 0 {
					loc[k] += off
				}
			}
			return loc
		}
		off += loc[0] + 1
	}
	return nil
}

// masked reports whether the byte at col of line i was blanked as a comment.
func masked(src *rules.Source, i, col int) bool {
	return i < len(src.Code) && col < len(src.Code[i]) && src.Code[i][col] == ' ' && src.Lines[i][col] != ' '
}

func (n nosec) suppresses(line int, ruleID string) bool {
	ids, ok := n[line]
	if !ok {
		return false
	}
	return ids == nil || ids[ruleID]
}
