package neatcommit

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/zirafica98/neatcommit/issue"
)

// PathExcludeRule disables rules for the files whose path matches a regular
// expression.
type PathExcludeRule struct {
	Path  string   `json:"path" yaml:"path"`   // Regex pattern for matching file paths
	Rules []string `json:"rules" yaml:"rules"` // Rule IDs to exclude. Use "*" to exclude all rules
}

type compiledPathRule struct {
	path  *regexp.Regexp
	rules map[string]bool
	all   bool
	raw   PathExcludeRule
}

// PathExclusionFilter drops issues by path and rule ID.
type PathExclusionFilter struct {
	rules []compiledPathRule
}

// NewPathExclusionFilter compiles the exclusion rules. An error is returned
// for an empty or invalid path expression.
func NewPathExclusionFilter(excludes []PathExcludeRule) (*PathExclusionFilter, error) {
	f := &PathExclusionFilter{}
	for i, rule := range excludes {
		if strings.TrimSpace(rule.Path) == "" {
			return nil, fmt.Errorf("exclude-rules[%d]: path cannot be empty", i)
		}
		re, err := regexp.Compile(rule.Path)
		if err != nil {
			return nil, fmt.Errorf("exclude-rules[%d]: invalid path regex %q: %w", i, rule.Path, err)
		}
		c := compiledPathRule{path: re, rules: make(map[string]bool), raw: rule}
		for _, id := range rule.Rules {
			switch id = strings.TrimSpace(id); id {
			case "":
			case "*":
				c.all = true
			default:
				c.rules[id] = true
			}
		}
		f.rules = append(f.rules, c)
	}
	return f, nil
}

// ShouldExclude reports whether issues of ruleID are disabled for filePath.
func (f *PathExclusionFilter) ShouldExclude(filePath, ruleID string) bool {
	if f == nil {
		return false
	}
	normalized := strings.ReplaceAll(filePath, "\\", "/")
	for _, rule := range f.rules {
		if (rule.all || rule.rules[ruleID]) && rule.path.MatchString(normalized) {
			return true
		}
	}
	return false
}

// FilterIssues returns the issues that survive the exclusions and the number
// of issues that were dropped.
func (f *PathExclusionFilter) FilterIssues(issues []*issue.Issue) ([]*issue.Issue, int) {
	if f == nil || len(f.rules) == 0 || len(issues) == 0 {
		return issues, 0
	}
	kept := make([]*issue.Issue, 0, len(issues))
	for _, iss := range issues {
		if !f.ShouldExclude(iss.File, iss.RuleID) {
			kept = append(kept, iss)
		}
	}
	return kept, len(issues) - len(kept)
}

// ParseCLIExcludeRules parses the command line form of exclude-rules:
// "path:rule,rule;path:rule". For example
// "test/.*:hardcoded-password;scripts/.*:*".
func ParseCLIExcludeRules(input string) ([]PathExcludeRule, error) {
	var excludes []PathExcludeRule
	for i, part := range strings.Split(input, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sep := strings.LastIndex(part, ":")
		if sep == -1 {
			return nil, fmt.Errorf("exclude-rules part %d: missing ':' separator in %q", i+1, part)
		}
		path := strings.TrimSpace(part[:sep])
		if path == "" {
			return nil, fmt.Errorf("exclude-rules part %d: path pattern cannot be empty", i+1)
		}
		var ids []string
		for _, id := range strings.Split(part[sep+1:], ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			return nil, fmt.Errorf("exclude-rules part %d: no rules specified", i+1)
		}
		excludes = append(excludes, PathExcludeRule{Path: path, Rules: ids})
	}
	return excludes, nil
}

// MergeExcludeRules puts the command line rules before the configured ones.
func MergeExcludeRules(configRules, cliRules []PathExcludeRule) []PathExcludeRule {
	merged := make([]PathExcludeRule, 0, len(cliRules)+len(configRules))
	merged = append(merged, cliRules...)
	return append(merged, configRules...)
}

func (f *PathExclusionFilter) String() string {
	if f == nil || len(f.rules) == 0 {
		return "PathExclusionFilter{empty}"
	}
	parts := make([]string, 0, len(f.rules))
	for _, rule := range f.rules {
		if rule.all {
			parts = append(parts, rule.raw.Path+":*")
			continue
		}
		ids := make([]string, 0, len(rule.rules))
		for id := range rule.rules {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		parts = append(parts, fmt.Sprintf("%s:[%s]", rule.raw.Path, strings.Join(ids, ",")))
	}
	return fmt.Sprintf("PathExclusionFilter{%s}", strings.Join(parts, "; "))
}
