package rules

import (
	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/language"
)

var goString = quoted(`{nq}*`, `"`, "`")

func goRules() []*Rule {
	return []*Rule{
		{
			MetaData: issue.MetaData{
				ID:       "go-sql-injection",
				Name:     "SQL string formatting",
				Severity: issue.Critical,
				Category: issue.SQLInjection,
				CWE:      "89",
				Message:  "SQL string built from dynamic values: {{.Match}}",
				Fix:      "Pass arguments to Query/Exec with placeholders instead of building the string.",
			},
			Language: language.Go,
			Pattern: AnyOf(
				Regex(`(?P<hit>\.(?:Query|QueryRow|Exec|QueryContext|QueryRowContext|ExecContext|Prepare|PrepareContext)\s*\((?:\w+,\s*)?`+goString+`\s*\+.*)`),
				Regex(`(?i)(?P<hit>fmt\.Sprintf\s*\(\s*`+quoted(`{nq}*\b`+sqlVerb+`\b{nq}*%[sv]{nq}*`, `"`, "`")+`.*)`),
				Regex(`(?i)(?P<hit>`+quoted(`{nq}*\b`+sqlStatement+`\b{nq}*`, `"`, "`")+`\s*\+\s*[\w.(]+.*)`),
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "go-command-injection",
				Name:     "Subprocess launched with variable",
				Severity: issue.High,
				Category: issue.CommandInjection,
				CWE:      "78",
				Message:  "Command built from dynamic values: {{.Match}}",
				Fix:      "Run a fixed binary with separate, validated arguments and no shell.",
			},
			Language: language.Go,
			Pattern: AnyOf(
				Regex(`(?P<hit>exec\.Command(?:Context)?\s*\([^)]*(?:\+|fmt\.Sprintf).*)`),
				Regex(`(?P<hit>exec\.Command(?:Context)?\s*\((?:\w+,\s*)?"(?:sh|bash|/bin/sh|/bin/bash|cmd)"\s*,\s*"(?:-c|/c|/C)"\s*,\s*[^")\s].*)`),
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "go-unsafe-pointer",
				Name:     "Use of unsafe",
				Severity: issue.Medium,
				Category: issue.MemorySafety,
				CWE:      "242",
				Message:  "unsafe.Pointer bypasses Go memory safety: {{.Match}}",
				Fix:      "Avoid unsafe unless the conversion is audited and documented.",
			},
			Language: language.Go,
			Pattern:  RequireFile(Regex(`\b(?P<hit>unsafe\.Pointer)\b`), `"unsafe"`),
		},
		{
			MetaData: issue.MetaData{
				ID:       "go-insecure-random",
				Name:     "math/rand for secrets",
				Severity: issue.Medium,
				Category: issue.InsecureRandom,
				CWE:      "338",
				Message:  "math/rand is not a secure source: {{.Match}}",
				Fix:      "Use crypto/rand.",
			},
			Language: language.Go,
			Pattern: RequireFile(
				Near(Regex(`\b(?P<hit>rand\.(?:Int|Intn|Int31|Int31n|Int63|Int63n|Uint32|Uint64|Float32|Float64|Read|Perm|N|IntN)\s*\([^)]*\))`), securityContext, 2),
				`"math/rand(/v2)?"`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "go-tls-insecure-skip-verify",
				Name:     "TLS InsecureSkipVerify",
				Severity: issue.High,
				Category: issue.InsecureTransport,
				CWE:      "295",
				Message:  "TLS certificate verification disabled: {{.Match}}",
				Fix:      "Remove InsecureSkipVerify and configure RootCAs for private CAs.",
			},
			Language: language.Go,
			Pattern:  Regex(`(?P<hit>InsecureSkipVerify\s*:\s*true)`),
		},
		{
			MetaData: issue.MetaData{
				ID:       "go-path-traversal",
				Name:     "File path from request",
				Severity: issue.High,
				Category: issue.PathTraversal,
				CWE:      "22",
				Message:  "File opened with a request controlled path: {{.Match}}",
				Fix:      "Clean the path with filepath.Clean and check it stays under the base directory, or use os.Root.",
			},
			Language: language.Go,
			Pattern: Unless(
				Regex(`(?P<hit>(?:os\.(?:Open|OpenFile|ReadFile|Create|Remove|RemoveAll)|ioutil\.ReadFile|http\.ServeFile)\s*\([^)]*(?:\+\s*\w|\.URL\.Query\(\)|\.URL\.Path|\.FormValue\(|\.PathValue\().*)`),
				`filepath\.(?:Clean|Base)\s*\(|securejoin`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "go-xss",
				Name:     "Unescaped template content",
				Severity: issue.High,
				Category: issue.XSS,
				CWE:      "79",
				Message:  "Dynamic value marked as safe HTML: {{.Match}}",
				Fix:      "Pass plain strings to html/template and let it escape them.",
			},
			Language: language.Go,
			Pattern:  Regex(`(?P<hit>template\.(?:HTML|JS|HTMLAttr|URL)\s*\(\s*[^")` + "`" + `\s][^)]*\))`),
		},
	}
}
