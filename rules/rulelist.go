// (c) Copyright 2016 Hewlett Packard Enterprise Development LP
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rules

import "github.com/zirafica98/neatcommit/language"

// RuleDefinition contains the description of a rule and a mechanism to
// create it.
type RuleDefinition struct {
	ID          string
	Language    language.Language
	Description string
	Create      func() *Rule
}

// RuleList is an ordered list of rule definitions.
type RuleList struct {
	Definitions []RuleDefinition
}

// Rules creates every rule of the list, in order.
func (rl RuleList) Rules() []*Rule {
	out := make([]*Rule, 0, len(rl.Definitions))
	for _, def := range rl.Definitions {
		out = append(out, def.Create())
	}
	return out
}

// IDs returns the rule identifiers, in order.
func (rl RuleList) IDs() []string {
	ids := make([]string, 0, len(rl.Definitions))
	for _, def := range rl.Definitions {
		ids = append(ids, def.ID)
	}
	return ids
}

// RuleFilter can be used to include or exclude a rule depending on the
// return value of the function. A rule is dropped when the filter returns
// true.
type RuleFilter func(string) bool

// NewRuleFilter is a closure that will include/exclude the rule ID passed
// in as arguments. If action is false the filter keeps only the listed
// rules; if it is true the listed rules are dropped.
func NewRuleFilter(action bool, ruleIDs ...string) RuleFilter {
	rulelist := make(map[string]bool)
	for _, rule := range ruleIDs {
		rulelist[rule] = true
	}
	return func(rule string) bool {
		if _, found := rulelist[rule]; found {
			return action
		}
		return !action
	}
}

// NewLanguageFilter drops rules that cannot apply to any of langs.
func NewLanguageFilter(langs ...language.Language) RuleFilter {
	byID := make(map[string]language.Language)
	for _, def := range definitions() {
		byID[def.ID] = def.Language
	}
	keep := make(map[language.Language]bool, len(langs)+1)
	keep[language.Any] = true
	for _, l := range langs {
		keep[l] = true
	}
	return func(rule string) bool {
		return !keep[byID[rule]]
	}
}

// Generate the list of rules to use
func Generate(filters ...RuleFilter) RuleList {
	var kept []RuleDefinition
next:
	for _, def := range definitions() {
		for _, filter := range filters {
			if filter(def.ID) {
				continue next
			}
		}
		kept = append(kept, def)
	}
	return RuleList{Definitions: kept}
}

func definitions() []RuleDefinition {
	var defs []RuleDefinition
	groups := [][]*Rule{
		universalRules(),
		scriptRules(language.JavaScript, "js"),
		scriptRules(language.TypeScript, "ts"),
		javaRules(),
		pythonRules(),
		phpRules(),
		csharpRules(),
		sqlRules(),
		goRules(),
		rubyRules(),
	}
	for _, group := range groups {
		for _, r := range group {
			r := r
			defs = append(defs, RuleDefinition{
				ID:          r.ID,
				Language:    r.Language,
				Description: r.Name,
				Create:      func() *Rule { return r },
			})
		}
	}
	return defs
}
