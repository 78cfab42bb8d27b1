package neatcommit

import (
	"sort"

	"github.com/zirafica98/neatcommit/issue"
)

// Metrics used when reporting information about a scanning run.
type Metrics struct {
	NumFiles       int `json:"files" yaml:"files"`
	NumLines       int `json:"lines" yaml:"lines"`
	NumNosec       int `json:"nosec" yaml:"nosec"`
	NumFound       int `json:"found" yaml:"found"`
	NumUnsupported int `json:"unsupported" yaml:"unsupported"`
	NumPartial     int `json:"partial" yaml:"partial"`
	NumSkipped     int `json:"skippedRules" yaml:"skippedRules"`
	Score          int `json:"score" yaml:"score"`
}

// ReportInfo this is report information
type ReportInfo struct {
	Errors        map[string][]Error `json:"Errors" yaml:"errors"`
	Issues        []*issue.Issue     `json:"Issues" yaml:"issues"`
	Results       []*Result          `json:"Results" yaml:"results"`
	Stats         *Metrics           `json:"Stats" yaml:"stats"`
	Version       string             `json:"NeatcommitVersion" yaml:"version"`
	CorpusVersion string             `json:"CorpusVersion" yaml:"corpusVersion"`
}

// NewReportInfo aggregates per-file results. Results and issues are ordered
// by file name; issues of one file keep their severity order.
func NewReportInfo(results []*Result, errors map[string][]Error) *ReportInfo {
	ordered := make([]*Result, 0, len(results))
	for _, r := range results {
		if r != nil {
			ordered = append(ordered, r)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Filename < ordered[j].Filename
	})
	sortErrors(errors)

	info := &ReportInfo{
		Errors:  errors,
		Issues:  []*issue.Issue{},
		Results: ordered,
		Stats:   &Metrics{},
	}
	for _, r := range ordered {
		info.Issues = append(info.Issues, r.Issues...)
		info.Stats.NumFiles++
		info.Stats.NumLines += r.Lines
		info.Stats.NumNosec += r.Suppressed
		info.Stats.NumSkipped += len(r.SkippedRules)
		if !r.IsSupported {
			info.Stats.NumUnsupported++
		}
		if r.Partial {
			info.Stats.NumPartial++
		}
		if info.CorpusVersion == "" {
			info.CorpusVersion = r.CorpusVersion
		}
	}
	info.Stats.NumFound = len(info.Issues)
	info.Stats.Score = Score(info.Counts())
	return info
}

// WithVersion defines the version of the tool that produced the report
func (r *ReportInfo) WithVersion(version string) *ReportInfo {
	r.Version = version
	return r
}

// Counts returns the issue counts over every file.
func (r *ReportInfo) Counts() issue.Counts {
	return issue.CountBySeverity(r.Issues)
}

// Gate evaluates the quality gate over the whole report.
func (r *ReportInfo) Gate(g QualityGate) []string {
	return g.Gate(r.Counts(), Score(r.Counts()))
}
