package testutils

import (
	"github.com/zirafica98/neatcommit"
	"github.com/zirafica98/neatcommit/cwe"
	"github.com/zirafica98/neatcommit/issue"
)

// NewReportInfo returns a report over two files with one critical and one
// medium issue, used by the report writer tests
func NewReportInfo() *neatcommit.ReportInfo {
	results := []*neatcommit.Result{
		{
			Filename:       "app/cleanup.py",
			Language:       "Python",
			IsSupported:    true,
			TotalIssues:    1,
			CriticalIssues: 1,
			Score:          90,
			CorpusVersion:  "1.4.0+0badc0de",
			Lines:          12,
			Issues: []*issue.Issue{{
				ID:       "5f0c2c8e-2d0a-5b51-9c41-0d6cbb1b7d11",
				RuleID:   "python-command-injection",
				Title:    "Shell command built from input",
				Severity: issue.Critical,
				Category: issue.CommandInjection,
				File:     "app/cleanup.py",
				Line:     4,
				Column:   5,
				Message:  `Shell command executed with dynamic content: os.system("rm -rf " + filename)`,
				Snippet:  `os.system("rm -rf " + filename)`,
				Cwe:      cwe.Get("78"),
				Fix:      "Call subprocess.run with an argument list and shell=False, or quote input with shlex.quote.",
			}},
		},
		{
			Filename:      "web/auth.js",
			Language:      "JavaScript",
			IsSupported:   true,
			TotalIssues:   1,
			MediumIssues:  1,
			Score:         98,
			CorpusVersion: "1.4.0+0badc0de",
			Lines:         30,
			Suppressed:    1,
			Issues: []*issue.Issue{{
				ID:       "9a4e1f3b-7c55-5e0a-8a7e-3f1d2b6c4e22",
				RuleID:   "js-insecure-random",
				Title:    "Predictable random value",
				Severity: issue.Medium,
				Category: issue.InsecureRandom,
				File:     "web/auth.js",
				Line:     7,
				Column:   15,
				Message:  "Math.random is not cryptographically secure: Math.random()",
				Snippet:  "Math.random()",
				Cwe:      cwe.Get("338"),
			}},
		},
	}
	errors := map[string][]neatcommit.Error{
		"web/broken.rb": {{Line: 0, Column: 0, Err: "file is not valid UTF-8"}},
	}
	return neatcommit.NewReportInfo(results, errors).WithVersion("1.0.0")
}
