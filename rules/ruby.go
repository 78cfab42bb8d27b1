package rules

import (
	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/language"
)

func rubyRules() []*Rule {
	return []*Rule{
		{
			MetaData: issue.MetaData{
				ID:       "ruby-sql-injection",
				Name:     "SQL string interpolation",
				Severity: issue.Critical,
				Category: issue.SQLInjection,
				CWE:      "89",
				Message:  "SQL fragment interpolates values: {{.Match}}",
				Fix:      `Use bound conditions, e.g. where("name = ?", name) or where(name: name).`,
			},
			Language: language.Ruby,
			Pattern: AnyOf(
				Regex(`(?P<hit>\.(?:where|having|order|group|pluck|select|joins|find_by_sql|exists\?|execute|exec_query|select_all|select_value|delete_all|update_all)\s*\(?\s*"[^"]*#\{.*)`),
				Regex(`(?i)(?P<hit>`+quoted(`{nq}*\b`+sqlStatement+`\b{nq}*#\{[^}]+\}{nq}*`, `"`)+`)`),
				Regex(`(?P<hit>\.(?:where|order|find_by_sql|execute)\s*\(?\s*params\[.*)`),
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "ruby-command-injection",
				Name:     "Shell command interpolation",
				Severity: issue.Critical,
				Category: issue.CommandInjection,
				CWE:      "78",
				Message:  "Shell command interpolates values: {{.Match}}",
				Fix:      `Call system with separate arguments, e.g. system("ls", dir), or use Shellwords.escape.`,
			},
			Language: language.Ruby,
			Pattern: Unless(
				AnyOf(
					Regex(`(?:^|[^.\w])(?P<hit>(?:system|exec|spawn)\s*\(?\s*"[^"]*#\{.*)`),
					Regex(`(?P<hit>(?:IO\.popen|Open3\.\w+|Kernel\.(?:system|exec|spawn))\s*\(?\s*"[^"]*#\{.*)`),
					Regex("(?P<hit>`[^`]*#\\{[^`]*`)"),
					Regex(`(?P<hit>%x[({\[][^)}\]]*#\{.*)`),
				),
				`Shellwords\.escape|shellescape`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "ruby-xss",
				Name:     "Output marked HTML safe",
				Severity: issue.High,
				Category: issue.XSS,
				CWE:      "79",
				Message:  "Escaping bypassed for dynamic content: {{.Match}}",
				Fix:      "Let the view escape output; sanitize rich text with sanitize().",
			},
			Language: language.Ruby,
			Pattern: AnyOf(
				Regex(`(?P<hit><%==.*%>)`),
				Regex(`\b(?P<hit>raw\s*\(?\s*(?:params|@\w+).*)`),
				Regex(`(?P<hit>[\w\])@]+\.html_safe\b)`),
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "ruby-eval",
				Name:     "Dynamic code evaluation",
				Severity: issue.Critical,
				Category: issue.CodeInjection,
				CWE:      "95",
				Message:  "Code evaluated at runtime: {{.Match}}",
				Fix:      "Replace eval with public_send on an allow list of method names.",
			},
			Language: language.Ruby,
			Pattern: AnyOf(
				Call(`(?:^|[^.\w])(?P<hit>(?:eval\s*\(?\s*(?:params|@?[A-Za-z_])|(?:instance|class|module)_eval\s*\(?\s*params).*)`),
				Regex(`(?:^|[^.\w])(?P<hit>(?:eval|(?:instance|class|module)_eval)\s*\(?\s*"[^"]*#\{.*)`),
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "ruby-insecure-deserialization",
				Name:     "Unsafe deserialization",
				Severity: issue.Critical,
				Category: issue.InsecureDeserialization,
				CWE:      "502",
				Message:  "Loader that can instantiate arbitrary objects: {{.Match}}",
				Fix:      "Use JSON.parse or YAML.safe_load with permitted_classes.",
			},
			Language: language.Ruby,
			Pattern: Unless(
				Call(`\b(?P<hit>(?:Marshal\.(?:load|restore)|YAML\.(?:load|unsafe_load)|Psych\.(?:load|unsafe_load)|Oj\.load)\b.*)`),
				`safe_load|permitted_classes|mode:\s*:strict`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "ruby-insecure-random",
				Name:     "Predictable random value",
				Severity: issue.Medium,
				Category: issue.InsecureRandom,
				CWE:      "330",
				Message:  "Kernel#rand is not a secure source: {{.Match}}",
				Fix:      "Use SecureRandom.hex or SecureRandom.random_number.",
			},
			Language: language.Ruby,
			Pattern: Near(
				Regex(`(?:^|[^.\w])(?P<hit>(?:rand|srand)\s*\([^)]*\)|Random\.(?:rand|new)\b[^\s]*)`),
				securityContext, 2,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "ruby-path-traversal",
				Name:     "File path from params",
				Severity: issue.High,
				Category: issue.PathTraversal,
				CWE:      "22",
				Message:  "File access with a request controlled path: {{.Match}}",
				Fix:      "Apply File.basename and check the expanded path stays under the base directory.",
			},
			Language: language.Ruby,
			Pattern: Unless(
				Regex(`\b(?P<hit>(?:File\.(?:read|open|write|delete|readlines|join)|IO\.read|send_file)\s*\(?[^)]*(?:params\[|#\{).*)`),
				`File\.basename|sanitize_filename`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "ruby-tls-verify-none",
				Name:     "TLS verification disabled",
				Severity: issue.High,
				Category: issue.InsecureTransport,
				CWE:      "295",
				Message:  "Peer certificate not verified: {{.Match}}",
				Fix:      "Use OpenSSL::SSL::VERIFY_PEER.",
			},
			Language: language.Ruby,
			Pattern:  Regex(`(?P<hit>verify_mode\s*(?:=|:)\s*OpenSSL::SSL::VERIFY_NONE|ssl_verify_mode:\s*:none)`),
		},
	}
}
