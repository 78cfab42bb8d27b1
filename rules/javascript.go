package rules

import (
	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/language"
)

var jsString = quoted(`{nq}*`, `"`, `'`)

// scriptRules returns the rules shared by JavaScript and TypeScript, with
// IDs prefixed by prefix.
func scriptRules(lang language.Language, prefix string) []*Rule {
	return []*Rule{
		{
			MetaData: issue.MetaData{
				ID:       prefix + "-sql-injection",
				Name:     "SQL built from strings",
				Severity: issue.Critical,
				Category: issue.SQLInjection,
				CWE:      "89",
				Message:  "SQL statement assembled from dynamic values: {{.Match}}",
				Fix:      "Use placeholders (? or $1) and pass values separately to the driver.",
			},
			Language: lang,
			Pattern: AnyOf(
				Window(`(?i)\b(?P<hit>(?:query|execute|raw|exec)\s*\(\s*`+"`"+`[^`+"`"+`]*\b`+sqlVerb+`\b[^`+"`"+`]*\$\{)`, 3),
				Regex(`(?i)\b(?P<hit>(?:query|execute|raw)\s*\(\s*`+quoted(`{nq}*\b`+sqlVerb+`\b{nq}*`, `"`, `'`)+`\s*\+.*)`),
				Regex(`(?i)(?P<hit>`+quoted(`{nq}*\b`+sqlStatement+`\b{nq}*`, `"`, `'`)+`\s*\+\s*[\w.(\[]+.*)`),
				Regex(`(?i)(?P<hit>`+quoted(`{nq}*\b`+sqlStatement+`\b{nq}*\$\{[^}]+\}{nq}*`, "`")+`)`),
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       prefix + "-xss",
				Name:     "Unescaped HTML sink",
				Severity: issue.High,
				Category: issue.XSS,
				CWE:      "79",
				Message:  "Dynamic content written as HTML: {{.Match}}",
				Fix:      "Assign to textContent, or sanitize with DOMPurify.sanitize before inserting HTML.",
			},
			Language: lang,
			Pattern: Unless(
				AnyOf(
					Regex(`(?P<hit>\.(?:innerHTML|outerHTML)\s*\+?=\s*(?:[^"'\s;`+"`"+`][^;]*|`+"`[^`]*\\$\\{[^`]*`"+`|`+jsString+`\s*\+[^;]*))`),
					Regex(`\b(?P<hit>document\.write(?:ln)?\s*\(\s*(?:[^"'\s)][^)]*|`+jsString+`\s*\+[^)]*)\))`),
					Regex(`(?P<hit>dangerouslySetInnerHTML\s*=\s*\{\{?\s*__html\s*:\s*[^}]+)`),
					Regex(`(?P<hit>\.insertAdjacentHTML\s*\([^,]+,\s*[^"'\s)][^)]*\))`),
				),
				`DOMPurify\.sanitize|sanitizeHtml\s*\(|escapeHtml\s*\(`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       prefix + "-insecure-random",
				Name:     "Math.random for secrets",
				Severity: issue.Medium,
				Category: issue.InsecureRandom,
				CWE:      "338",
				Message:  "Math.random is predictable: {{.Match}}",
				Fix:      "Use crypto.getRandomValues or crypto.randomBytes/randomUUID.",
			},
			Language: lang,
			Pattern:  Near(Regex(`\b(?P<hit>Math\.random\s*\(\s*\))`), securityContext, 2),
		},
		{
			MetaData: issue.MetaData{
				ID:       prefix + "-eval",
				Name:     "Dynamic code evaluation",
				Severity: issue.Critical,
				Category: issue.CodeInjection,
				CWE:      "95",
				Message:  "String evaluated as code: {{.Match}}",
				Fix:      "Remove eval/new Function; parse data with JSON.parse and pass functions to timers.",
			},
			Language: lang,
			Pattern: AnyOf(
				Call(`(?:^|[^.\w$])(?P<hit>(?:eval|new\s+Function)\s*\([^)]*\)?)`),
				Call(`\b(?P<hit>set(?:Timeout|Interval)\s*\(\s*["'`+"`"+`])`),
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       prefix + "-command-injection",
				Name:     "Shell command built from input",
				Severity: issue.Critical,
				Category: issue.CommandInjection,
				CWE:      "78",
				Message:  "Child process started with dynamic command: {{.Match}}",
				Fix:      "Use execFile/spawn with an argument array and no shell.",
			},
			Language: lang,
			Pattern: AnyOf(
				Regex(`(?:^|[^.\w]|child_process\.)(?P<hit>(?:exec|execSync|spawn|spawnSync|execFile)\s*\(\s*(?:`+"`[^`]*\\$\\{"+`|`+jsString+`\s*\+|[\w.]*req\.(?:query|body|params)).*)`),
				Window(`\b(?P<hit>spawn(?:Sync)?\s*\([^)]*shell\s*:\s*true)`, 3),
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       prefix + "-path-traversal",
				Name:     "File path from request data",
				Severity: issue.High,
				Category: issue.PathTraversal,
				CWE:      "22",
				Message:  "File system access with a caller controlled path: {{.Match}}",
				Fix:      "Resolve the path with path.resolve and verify it starts with the allowed base directory.",
			},
			Language: lang,
			Pattern: Unless(
				Regex(`\b(?P<hit>(?:readFile|readFileSync|createReadStream|writeFile|writeFileSync|sendFile|unlink|unlinkSync)\s*\([^)]*(?:req\.(?:query|params|body)|\+\s*[\w.]+|\$\{).*)`),
				`path\.basename\s*\(|sanitize`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       prefix + "-insecure-deserialization",
				Name:     "Unsafe deserialization",
				Severity: issue.Critical,
				Category: issue.InsecureDeserialization,
				CWE:      "502",
				Message:  "Deserializer that can run code: {{.Match}}",
				Fix:      "Use JSON.parse for untrusted input.",
			},
			Language: lang,
			Pattern: AnyOf(
				Call(`\b(?P<hit>(?:serialize\.)?unserialize\s*\(.*)`),
				Regex(`\b(?P<hit>require\s*\(\s*['"]node-serialize['"]\s*\))`),
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       prefix + "-tls-disabled",
				Name:     "TLS verification disabled",
				Severity: issue.High,
				Category: issue.InsecureTransport,
				CWE:      "295",
				Message:  "Certificate validation turned off: {{.Match}}",
				Fix:      "Remove rejectUnauthorized: false and trust the issuing CA through the ca option.",
			},
			Language: lang,
			Pattern:  Regex(`(?P<hit>rejectUnauthorized\s*:\s*false|NODE_TLS_REJECT_UNAUTHORIZED\s*=\s*['"]?0)`),
		},
	}
}
