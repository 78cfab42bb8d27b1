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

// Package neatcommit holds the analysis pipeline: language detection, rule
// evaluation, issue normalization and scoring of source snippets.
package neatcommit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/language"
	"github.com/zirafica98/neatcommit/rules"
)

// Request is one snippet to analyze. Code may be empty; Filename may lack an
// extension but must not be blank.
type Request struct {
	Code     string `json:"code" yaml:"code"`
	Filename string `json:"filename" yaml:"filename"`
}

// Result is the outcome of analyzing one snippet. It only depends on the
// request and the corpus version.
type Result struct {
	Filename       string            `json:"filename" yaml:"filename"`
	Language       language.Language `json:"language" yaml:"language"`
	IsSupported    bool              `json:"isSupported" yaml:"isSupported"`
	TotalIssues    int               `json:"totalIssues" yaml:"totalIssues"`
	CriticalIssues int               `json:"criticalIssues" yaml:"criticalIssues"`
	HighIssues     int               `json:"highIssues" yaml:"highIssues"`
	MediumIssues   int               `json:"mediumIssues" yaml:"mediumIssues"`
	LowIssues      int               `json:"lowIssues" yaml:"lowIssues"`
	Score          int               `json:"score" yaml:"score"`
	Issues         []*issue.Issue    `json:"issues" yaml:"issues"`
	CorpusVersion  string            `json:"corpusVersion" yaml:"corpusVersion"`
	Partial        bool              `json:"partial" yaml:"partial"`
	SkippedRules   []string          `json:"skippedRules" yaml:"skippedRules"`
	Suppressed     int               `json:"suppressed" yaml:"suppressed"`

	// Lines is the number of lines analyzed, used for scan metrics.
	Lines int `json:"-" yaml:"-"`
}

// Counts returns the issue counts of the result.
func (r *Result) Counts() issue.Counts {
	return issue.Counts{
		Critical: r.CriticalIssues,
		High:     r.HighIssues,
		Medium:   r.MediumIssues,
		Low:      r.LowIssues,
	}
}

func (r *Result) setIssues(issues []*issue.Issue) {
	c := issue.CountBySeverity(issues)
	r.Issues = issues
	r.TotalIssues = c.Total()
	r.CriticalIssues = c.Critical
	r.HighIssues = c.High
	r.MediumIssues = c.Medium
	r.LowIssues = c.Low
	r.Score = Score(c)
}

// Analyzer runs the analysis pipeline. It is safe for concurrent use; the
// rule corpus can be replaced with Reload while requests are in flight.
type Analyzer struct {
	corpus   atomic.Pointer[rules.Corpus]
	detector *language.Detector
	config   Config
	exclude  *PathExclusionFilter
	ignore   *FileList
	logger   *zap.Logger
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithDetector replaces the language detector.
func WithDetector(d *language.Detector) AnalyzerOption {
	return func(a *Analyzer) {
		a.detector = d
	}
}

// NewAnalyzer builds a new analyzer over corpus.
func NewAnalyzer(conf Config, corpus *rules.Corpus, logger *zap.Logger, opts ...AnalyzerOption) (*Analyzer, error) {
	if corpus == nil {
		return nil, errors.New("analyzer requires a rule corpus")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	exclude, err := NewPathExclusionFilter(conf.ExcludeRules)
	if err != nil {
		return nil, err
	}
	ignore, err := NewFileList(conf.Ignore.Paths...)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Analyzer{
		config:  conf,
		exclude: exclude,
		ignore:  ignore,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.detector == nil {
		a.detector = language.NewDetector()
	}
	a.corpus.Store(corpus)
	return a, nil
}

// Corpus returns the rule corpus currently in use.
func (a *Analyzer) Corpus() *rules.Corpus {
	return a.corpus.Load()
}

// Config returns the configuration the analyzer was built with.
func (a *Analyzer) Config() Config {
	return a.config
}

// Reload swaps the rule corpus. Requests already running finish with the
// corpus they started with.
func (a *Analyzer) Reload(corpus *rules.Corpus) error {
	if corpus == nil {
		return errors.New("cannot reload a nil rule corpus")
	}
	old := a.corpus.Swap(corpus)
	a.logger.Info("rule corpus reloaded",
		zap.String("from", old.Version()),
		zap.String("to", corpus.Version()),
		zap.Int("rules", corpus.Len()))
	return nil
}

// Ignored reports whether path is excluded by the ignore patterns.
func (a *Analyzer) Ignored(path string) bool {
	return a.ignore.Contains(path)
}

// Analyze detects the language of the request, runs the rules of that
// language and scores the findings. Only invalid requests yield an error:
// unsupported languages, skipped rules and deadlines are reported in the
// result.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Filename) == "" {
		return nil, &InputError{Field: "filename", Reason: "must not be blank"}
	}
	if timeout := a.config.Analysis.RequestTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	corpus := a.corpus.Load()
	detection := a.detector.DetectContext(ctx, req.Filename, req.Code)
	res := &Result{
		Filename:      req.Filename,
		Language:      detection.Language,
		Issues:        []*issue.Issue{},
		CorpusVersion: corpus.Version(),
		SkippedRules:  []string{},
	}
	if !detection.Language.IsSupported() {
		a.logger.Debug("unsupported language",
			zap.String("filename", req.Filename),
			zap.Int("bytes", len(req.Code)))
		return res, nil
	}
	res.IsSupported = true

	src := rules.NewSource(detection.Language, req.Code)
	res.Lines = src.Len()
	outcome := Scan(ctx, src, corpus.RulesFor(detection.Language), a.scanOptions())
	for _, skipped := range outcome.Skipped {
		a.logger.Warn("rule skipped",
			zap.String("filename", req.Filename),
			zap.String("rule", skipped.RuleID),
			zap.Error(skipped.Err))
	}

	issues := issue.Normalize(outcome.Matches, corpus, issue.Options{
		MaxSnippetLength:  a.config.Analysis.MaxSnippetLength,
		SeverityOverrides: a.config.Rules.SeverityOverrides,
	})
	for _, i := range issues {
		i.File = req.Filename
	}
	issues, excluded := a.exclude.FilterIssues(issues)
	res.setIssues(issues)
	res.Partial = outcome.Partial
	res.SkippedRules = append(res.SkippedRules, outcome.SkippedRuleIDs()...)
	res.Suppressed = outcome.Suppressed

	a.logger.Debug("analysis finished",
		zap.String("filename", req.Filename),
		zap.String("language", detection.Language.String()),
		zap.String("detection", detection.Method),
		zap.Int("issues", res.TotalIssues),
		zap.Int("excluded", excluded),
		zap.Int("score", res.Score),
		zap.Bool("partial", res.Partial),
		zap.Duration("duration", time.Since(start)))
	return res, nil
}

// AnalyzeBatch analyzes requests in parallel, at most
// Analysis.Concurrency at a time. Results are returned in request order. The
// first invalid request cancels the batch.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, reqs []Request) ([]*Result, error) {
	results := make([]*Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency())
	for i, req := range reqs {
		g.Go(func() error {
			res, err := a.Analyze(gctx, req)
			if err != nil {
				return fmt.Errorf("request %d (%s): %w", i, req.Filename, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *Analyzer) concurrency() int {
	if n := a.config.Analysis.Concurrency; n > 0 {
		return n
	}
	return DefaultConcurrency
}

func (a *Analyzer) scanOptions() ScanOptions {
	return ScanOptions{
		RuleTimeout: a.config.Analysis.RuleTimeout,
		MaxSteps:    a.config.Analysis.MaxSteps,
		IgnoreNosec: a.config.Analysis.IgnoreNosec,
	}
}
