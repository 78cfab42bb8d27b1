package neatcommit

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/rules"
)

// ConfigFile is the name of the repository configuration file.
const ConfigFile = ".neatcommit.yml"

// Config is the repository level configuration. It is loaded from YAML via
// c.ReadFrom(strings.NewReader("config data")) or from a *os.File.
type Config struct {
	// Categories enabled for analysis. Empty enables every category.
	Categories   []issue.Category  `yaml:"categories,omitempty"`
	Rules        RulesConfig       `yaml:"rules"`
	QualityGate  QualityGate       `yaml:"qualityGate"`
	Ignore       IgnoreConfig      `yaml:"ignore"`
	ExcludeRules []PathExcludeRule `yaml:"exclude-rules,omitempty"`
	Analysis     AnalysisConfig    `yaml:"analysis"`
	CustomRules  []string          `yaml:"customRules,omitempty"`
}

// RulesConfig selects and tunes rules by ID.
type RulesConfig struct {
	Include           []string                  `yaml:"include,omitempty"`
	Disable           []string                  `yaml:"disable,omitempty"`
	SeverityOverrides map[string]issue.Severity `yaml:"severityOverrides,omitempty"`
}

// QualityGate decides whether a scan fails.
type QualityGate struct {
	BlockOnCritical bool `yaml:"blockOnCritical"`
	MinScore        *int `yaml:"minScore,omitempty"`
}

// IgnoreConfig lists glob patterns of paths that are never analyzed.
type IgnoreConfig struct {
	Paths []string `yaml:"paths,omitempty"`
}

// AnalysisConfig bounds the work done for a single request. MaxSteps is
// the per-rule budget and does not depend on machine load. RuleTimeout adds
// a wall-clock limit per rule and is off by default, since a rule dropped
// under CPU contention would change the result for the same input.
type AnalysisConfig struct {
	RuleTimeout      time.Duration `yaml:"ruleTimeout"`
	MaxSteps         int           `yaml:"maxSteps"`
	RequestTimeout   time.Duration `yaml:"requestTimeout"`
	MaxSnippetLength int           `yaml:"maxSnippetLength"`
	Concurrency      int           `yaml:"concurrency"`
	IgnoreNosec      bool          `yaml:"ignoreNosec"`
}

// Defaults for AnalysisConfig.
const (
	DefaultMaxSteps       = 200000
	DefaultRequestTimeout = 10 * time.Second
	DefaultConcurrency    = 5
)

// NewConfig initializes a configuration with the default settings.
func NewConfig() Config {
	return Config{
		QualityGate: QualityGate{BlockOnCritical: true},
		Analysis: AnalysisConfig{
			MaxSteps:         DefaultMaxSteps,
			RequestTimeout:   DefaultRequestTimeout,
			MaxSnippetLength: issue.DefaultMaxSnippetLength,
			Concurrency:      DefaultConcurrency,
		},
	}
}

// ReadFrom implements the io.ReaderFrom interface. Settings missing from the
// document keep their current value. An empty document is not an error.
func (c *Config) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return int64(len(data)), nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return int64(len(data)), fmt.Errorf("parsing %s: %w", ConfigFile, err)
	}
	return int64(len(data)), c.Validate()
}

// WriteTo implements the io.WriterTo interface. This should
// be used to save or print out the configuration information.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return 0, err
	}
	return io.Copy(w, bytes.NewReader(data))
}

// Validate checks the settings that the YAML decoder cannot.
func (c *Config) Validate() error {
	if ms := c.QualityGate.MinScore; ms != nil && (*ms < 0 || *ms > MaxScore) {
		return fmt.Errorf("qualityGate.minScore must be between 0 and %d, got %d", MaxScore, *ms)
	}
	a := c.Analysis
	if a.RuleTimeout < 0 || a.RequestTimeout < 0 {
		return fmt.Errorf("analysis timeouts cannot be negative")
	}
	if a.MaxSteps < 0 || a.MaxSnippetLength < 0 || a.Concurrency < 0 {
		return fmt.Errorf("analysis limits cannot be negative")
	}
	for i, cat := range c.Categories {
		if cat == "" {
			return fmt.Errorf("categories[%d] is empty", i)
		}
	}
	if _, err := NewPathExclusionFilter(c.ExcludeRules); err != nil {
		return err
	}
	if _, err := NewFileList(c.Ignore.Paths...); err != nil {
		return err
	}
	return nil
}

// RuleFilters converts the include and disable lists to corpus filters.
func (c *Config) RuleFilters() []rules.RuleFilter {
	var filters []rules.RuleFilter
	if len(c.Rules.Include) > 0 {
		filters = append(filters, rules.NewRuleFilter(false, c.Rules.Include...))
	}
	if len(c.Rules.Disable) > 0 {
		filters = append(filters, rules.NewRuleFilter(true, c.Rules.Disable...))
	}
	return filters
}

// LoadCorpus builds the rule corpus selected by the configuration: the
// built-in rules followed by the custom rule files, narrowed to the enabled
// rules and categories. A *rules.CorpusError is returned when any rule is
// invalid.
func (c *Config) LoadCorpus() (*rules.Corpus, error) {
	selected := rules.Generate(c.RuleFilters()...).Rules()
	custom, err := rules.LoadCustomRuleFiles(c.CustomRules...)
	if err != nil {
		return nil, err
	}
	for _, r := range custom {
		if c.keepsRule(r) {
			selected = append(selected, r)
		}
	}
	kept := selected[:0]
	for _, r := range selected {
		if c.categoryEnabled(r.Category) {
			kept = append(kept, r)
		}
	}
	return rules.NewCorpus(rules.CorpusVersion, kept)
}

func (c *Config) keepsRule(r *rules.Rule) bool {
	for _, filter := range c.RuleFilters() {
		if filter(r.ID) {
			return false
		}
	}
	return true
}

func (c *Config) categoryEnabled(cat issue.Category) bool {
	if len(c.Categories) == 0 {
		return true
	}
	for _, enabled := range c.Categories {
		if enabled == cat {
			return true
		}
	}
	return false
}

// Gate evaluates the quality gate against a scan summary and returns the
// reasons it failed. An empty slice means the gate passed.
func (g QualityGate) Gate(counts issue.Counts, score int) []string {
	var reasons []string
	if g.BlockOnCritical && counts.Critical > 0 {
		reasons = append(reasons, fmt.Sprintf("%d critical issue(s) found", counts.Critical))
	}
	if g.MinScore != nil && score < *g.MinScore {
		reasons = append(reasons, fmt.Sprintf("score %d is below the minimum of %d", score, *g.MinScore))
	}
	return reasons
}
