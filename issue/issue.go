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

package issue

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/zirafica98/neatcommit/cwe"
)

// Severity of an issue
type Severity int

const (
	// Low severity
	Low Severity = iota
	// Medium severity
	Medium
	// High severity
	High
	// Critical severity
	Critical
)

var severityNames = [...]string{"low", "medium", "high", "critical"}

// Severities lists every severity from the most to the least severe.
var Severities = []Severity{Critical, High, Medium, Low}

// ParseSeverity converts a case-insensitive severity name.
func ParseSeverity(s string) (Severity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range severityNames {
		if n == name {
			return Severity(i), nil
		}
	}
	return Low, fmt.Errorf("unknown severity %q", s)
}

// Valid reports whether the severity is one of the declared levels.
func (s Severity) Valid() bool {
	return s >= Low && s <= Critical
}

func (s Severity) String() string {
	if !s.Valid() {
		return "undefined"
	}
	return severityNames[s]
}

// MarshalJSON is used convert a Severity object into a JSON representation
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses a severity name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML renders the severity name.
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML parses a severity name.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseSeverity(value.Value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Category groups issues by vulnerability class.
type Category string

// Built-in categories.
const (
	SQLInjection            Category = "sql-injection"
	CommandInjection        Category = "command-injection"
	CodeInjection           Category = "code-injection"
	XSS                     Category = "xss"
	InsecureDeserialization Category = "insecure-deserialization"
	InsecureRandom          Category = "insecure-random"
	WeakCrypto              Category = "weak-crypto"
	HardcodedSecret         Category = "hardcoded-secret"
	InsecureTransport       Category = "insecure-transport"
	PathTraversal           Category = "path-traversal"
	DebugConfig             Category = "debug-config"
	UnsafeDML               Category = "unsafe-dml"
	ExcessivePrivilege      Category = "excessive-privilege"
	MemorySafety            Category = "memory-safety"
)

// Match is the raw output of a rule: where it fired and on what text.
type Match struct {
	RuleID    string
	Line      int
	Column    int
	EndColumn int
	Text      string
}

// MessageData is what a rule's message template is rendered with.
type MessageData struct {
	RuleID string
	Line   int
	Match  string
}

// MetaData is embedded in all rules. The Severity, Category and rendered
// Message will be passed through to reported issues.
type MetaData struct {
	ID       string
	Name     string
	Severity Severity
	Category Category
	CWE      string
	Message  string
	Fix      string

	tmpl *template.Template
}

// NewMetaData creates rule metadata and compiles its message template.
func NewMetaData(id, name string, severity Severity, category Category, cweID, message, fix string) (MetaData, error) {
	md := MetaData{
		ID:       id,
		Name:     name,
		Severity: severity,
		Category: category,
		CWE:      cweID,
		Message:  message,
		Fix:      fix,
	}
	return md, md.Compile()
}

// Compile parses the message template. It must be called before the
// metadata is shared between goroutines.
func (m *MetaData) Compile() error {
	tmpl, err := template.New(m.ID).Option("missingkey=error").Parse(m.Message)
	if err != nil {
		return fmt.Errorf("rule %s: invalid message template: %w", m.ID, err)
	}
	m.tmpl = tmpl
	return nil
}

// Compiled reports whether Compile succeeded.
func (m *MetaData) Compiled() bool {
	return m.tmpl != nil
}

// Render fills the message template. The raw template is returned when it
// was never compiled or fails to execute.
func (m *MetaData) Render(data MessageData) string {
	if m.tmpl == nil {
		return m.Message
	}
	var sb strings.Builder
	if err := m.tmpl.Execute(&sb, data); err != nil {
		return m.Message
	}
	return sb.String()
}

// Issue is a normalized finding reported for one analyzed snippet.
type Issue struct {
	ID       string        `json:"id" yaml:"id"`
	RuleID   string        `json:"ruleId" yaml:"ruleId"`
	Title    string        `json:"title" yaml:"title"`
	Severity Severity      `json:"severity" yaml:"severity"`
	Category Category      `json:"category" yaml:"category"`
	File     string        `json:"file,omitempty" yaml:"file,omitempty"`
	Line     int           `json:"line" yaml:"line"`
	Column   int           `json:"column" yaml:"column"`
	Message  string        `json:"message" yaml:"message"`
	Snippet  string        `json:"snippet" yaml:"snippet"`
	Cwe      *cwe.Weakness `json:"cwe,omitempty" yaml:"cwe,omitempty"`
	Fix      string        `json:"fix,omitempty" yaml:"fix,omitempty"`
}

// FileLocation point out the file path and line number in file
func (i *Issue) FileLocation() string {
	return fmt.Sprintf("%s:%d", i.File, i.Line)
}

// Counts holds the number of issues per severity.
type Counts struct {
	Critical int
	High     int
	Medium   int
	Low      int
}

// Total is the number of counted issues.
func (c Counts) Total() int {
	return c.Critical + c.High + c.Medium + c.Low
}

// Of returns the count for one severity.
func (c Counts) Of(s Severity) int {
	switch s {
	case Critical:
		return c.Critical
	case High:
		return c.High
	case Medium:
		return c.Medium
	case Low:
		return c.Low
	}
	return 0
}

// CountBySeverity buckets issues by severity.
func CountBySeverity(issues []*Issue) Counts {
	var c Counts
	for _, i := range issues {
		switch i.Severity {
		case Critical:
			c.Critical++
		case High:
			c.High++
		case Medium:
			c.Medium++
		case Low:
			c.Low++
		}
	}
	return c
}
