package rules

import (
	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/language"
)

const (
	// phpCall excludes method calls and variables named like builtins.
	phpCall = `(?:^|[^>\w$:])`

	phpInput = `\$_(?:GET|POST|REQUEST|COOKIE|FILES)\b`
)

var phpString = quoted(`{nq}*`, `"`, `'`)

func phpRules() []*Rule {
	return []*Rule{
		{
			MetaData: issue.MetaData{
				ID:       "php-sql-injection",
				Name:     "SQL built from variables",
				Severity: issue.Critical,
				Category: issue.SQLInjection,
				CWE:      "89",
				Message:  "SQL statement built from PHP variables: {{.Match}}",
				Fix:      "Use PDO or mysqli prepared statements with bound parameters.",
			},
			Language: language.PHP,
			Pattern: Unless(
				AnyOf(
					Regex(`(?i)(?P<hit>\b(?:(?:mysql_query|pg_query|sqlite_query|mssql_query)\s*\(\s*|mysqli_query\s*\(\s*\$\w+\s*,\s*)(?:"[^"]*\$\w|`+phpString+`\s*\.\s*\$).*)`),
					Regex(`(?P<hit>->(?:query|exec|rawQuery)\s*\(\s*(?:"[^"]*\$\w|`+phpString+`\s*\.\s*\$).*)`),
					Regex(`(?i)(?P<hit>`+quoted(`{nq}*\b`+sqlStatement+`\b{nq}*`, `"`, `'`)+`\s*\.\s*\$\w+.*)`),
					Regex(`(?i)(?P<hit>`+quoted(`{nq}*\b`+sqlStatement+`\b{nq}*\$\w+{nq}*`, `"`)+`)`),
				),
				`->prepare\s*\(|bind_param|bindParam|bindValue`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "php-xss",
				Name:     "Request data echoed",
				Severity: issue.High,
				Category: issue.XSS,
				CWE:      "79",
				Message:  "Superglobal written to the page without escaping: {{.Match}}",
				Fix:      "Wrap output in htmlspecialchars($value, ENT_QUOTES, 'UTF-8').",
			},
			Language: language.PHP,
			Pattern: Unless(
				AnyOf(
					Regex(`\b(?P<hit>(?:echo|print)\b[^;]*`+phpInput+`.*)`),
					Regex(`(?P<hit><\?=\s*`+phpInput+`.*)`),
				),
				`htmlspecialchars|htmlentities|strip_tags|intval\s*\(|filter_var|\(int\)`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "php-file-inclusion",
				Name:     "File inclusion from request",
				Severity: issue.Critical,
				Category: issue.PathTraversal,
				CWE:      "98",
				Message:  "Included file path controlled by the request: {{.Match}}",
				Fix:      "Map request values to a fixed allow list of files.",
			},
			Language: language.PHP,
			Pattern:  Regex(`\b(?P<hit>(?:include|require)(?:_once)?\b\s*\(?[^;]*` + phpInput + `.*)`),
		},
		{
			MetaData: issue.MetaData{
				ID:       "php-eval",
				Name:     "Dynamic code evaluation",
				Severity: issue.Critical,
				Category: issue.CodeInjection,
				CWE:      "95",
				Message:  "Code evaluated at runtime: {{.Match}}",
				Fix:      "Remove eval/create_function and the /e modifier; use callbacks.",
			},
			Language: language.PHP,
			Pattern: AnyOf(
				Call(phpCall+`(?P<hit>(?:eval|create_function)\s*\(.*)`),
				Regex(`(?P<hit>preg_replace\s*\(\s*["']/[^"']*/[a-zA-Z]*e[a-zA-Z]*["'].*)`),
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "php-command-injection",
				Name:     "Shell command built from variables",
				Severity: issue.Critical,
				Category: issue.CommandInjection,
				CWE:      "78",
				Message:  "Shell command includes PHP variables: {{.Match}}",
				Fix:      "Escape every argument with escapeshellarg or avoid the shell.",
			},
			Language: language.PHP,
			Pattern: Unless(
				AnyOf(
					Regex(phpCall+`(?P<hit>(?:system|exec|shell_exec|passthru|popen|proc_open|pcntl_exec)\s*\([^;]*\$.*)`),
					Regex("(?P<hit>`[^`]*\\$[^`]*`)"),
				),
				`escapeshellarg|escapeshellcmd`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "php-insecure-deserialization",
				Name:     "unserialize on input",
				Severity: issue.Critical,
				Category: issue.InsecureDeserialization,
				CWE:      "502",
				Message:  "unserialize can instantiate arbitrary objects: {{.Match}}",
				Fix:      "Use json_decode, or pass ['allowed_classes' => false].",
			},
			Language: language.PHP,
			Pattern: Unless(
				Call(phpCall+`(?P<hit>unserialize\s*\(.*)`),
				`allowed_classes['"]?\s*=>\s*false`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "php-insecure-random",
				Name:     "Predictable random value",
				Severity: issue.Medium,
				Category: issue.InsecureRandom,
				CWE:      "330",
				Message:  "Non-cryptographic random source used for a secret: {{.Match}}",
				Fix:      "Use random_bytes or random_int.",
			},
			Language: language.PHP,
			Pattern: Near(
				Regex(phpCall+`(?P<hit>(?:rand|mt_rand|uniqid|lcg_value|str_shuffle)\s*\([^)]*\))`),
				securityContext, 2,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "php-path-traversal",
				Name:     "File path from request data",
				Severity: issue.High,
				Category: issue.PathTraversal,
				CWE:      "22",
				Message:  "File access with a request controlled path: {{.Match}}",
				Fix:      "Apply basename() and check realpath() stays under the base directory.",
			},
			Language: language.PHP,
			Pattern: Unless(
				Regex(phpCall+`(?P<hit>(?:file_get_contents|fopen|readfile|file|unlink|file_put_contents)\s*\([^;]*`+phpInput+`.*)`),
				`basename\s*\(|realpath\s*\(`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "php-display-errors",
				Name:     "Errors displayed to clients",
				Severity: issue.Low,
				Category: issue.DebugConfig,
				CWE:      "489",
				Message:  "Error output sent to the browser: {{.Match}}",
				Fix:      "Log errors instead and keep display_errors off in production.",
			},
			Language: language.PHP,
			Pattern:  Regex(`(?i)(?P<hit>ini_set\s*\(\s*['"]display_errors['"]\s*,\s*['"]?(?:1|on|true)['"]?\s*\))`),
		},
	}
}
