package rules

import (
	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/language"
)

var pyString = quoted(`{nq}*`, `"`, `'`)

func pythonRules() []*Rule {
	return []*Rule{
		{
			MetaData: issue.MetaData{
				ID:       "python-sql-injection",
				Name:     "SQL built with string formatting",
				Severity: issue.Critical,
				Category: issue.SQLInjection,
				CWE:      "89",
				Message:  "SQL statement assembled from untrusted values: {{.Match}}",
				Fix:      "Pass values as query parameters, e.g. cursor.execute(\"... WHERE id = %s\", (user_id,)).",
			},
			Language: language.Python,
			Pattern: AnyOf(
				Regex(`(?i)(?P<hit>`+quoted(`{nq}*\b`+sqlVerb+`\b{nq}*(?:%s|%d|%r|%\(\w+\)s){nq}*`, `"`, `'`)+`\s*%\s*[\w(\[{].*)`),
				Regex(`(?i)(?P<hit>`+quoted(`{nq}*\b`+sqlVerb+`\b{nq}*\{\w*\}{nq}*`, `"`, `'`)+`\s*\.format\s*\(.*)`),
				Regex(`(?i)(?P<hit>\bf`+quoted(`{nq}*\b`+sqlVerb+`\b{nq}*\{[^}]+\}{nq}*`, `"`, `'`)+`)`),
				Regex(`(?i)(?P<hit>`+quoted(`{nq}*\b`+sqlStatement+`\b{nq}*`, `"`, `'`)+`\s*\+\s*[\w.(\[]+.*)`),
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "python-command-injection",
				Name:     "Shell command built from input",
				Severity: issue.Critical,
				Category: issue.CommandInjection,
				CWE:      "78",
				Message:  "Shell command executed with dynamic content: {{.Match}}",
				Fix:      "Call subprocess.run with an argument list and shell=False, or quote input with shlex.quote.",
			},
			Language: language.Python,
			Pattern: Unless(
				AnyOf(
					Call(`\b(?P<hit>os\.(system|popen|popen2|popen3)\s*\(\s*(?:f["']|`+pyString+`\s*(?:\+|%|\.format)|[A-Za-z_][\w.]*\s*[,)+%]).*)`),
					Call(`\b(?P<hit>commands\.(getoutput|getstatusoutput)\s*\(.*)`),
				),
				`shlex\.quote\s*\(`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "python-subprocess-shell",
				Name:     "subprocess with shell=True",
				Severity: issue.High,
				Category: issue.CommandInjection,
				CWE:      "78",
				Message:  "Process started through the shell: {{.Match}}",
				Fix:      "Pass the command as a list and drop shell=True.",
			},
			Language: language.Python,
			Pattern:  Window(`\b(?P<hit>subprocess\.(call|run|Popen|check_output|check_call)\s*\([^)]*shell\s*=\s*True)`, 4),
		},
		{
			MetaData: issue.MetaData{
				ID:       "python-insecure-deserialization",
				Name:     "Unsafe deserialization",
				Severity: issue.Critical,
				Category: issue.InsecureDeserialization,
				CWE:      "502",
				Message:  "Deserializing data can execute arbitrary code: {{.Match}}",
				Fix:      "Use json for untrusted data, or yaml.safe_load for YAML.",
			},
			Language: language.Python,
			Pattern: Unless(
				Call(`\b(?P<hit>(?:(?:c?pickle|_pickle|dill|marshal|jsonpickle)\.(?:loads?|Unpickler|decode)|shelve\.open|yaml\.(?:load|load_all|unsafe_load))\s*\(.*)`),
				`Loader\s*=\s*(yaml\.)?(Safe|Base)Loader`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "python-insecure-random",
				Name:     "Predictable random value",
				Severity: issue.Medium,
				Category: issue.InsecureRandom,
				CWE:      "330",
				Message:  "The random module is not cryptographically secure: {{.Match}}",
				Fix:      "Use the secrets module, e.g. secrets.token_hex() or secrets.randbelow().",
			},
			Language: language.Python,
			Pattern: Near(
				Regex(`\b(?P<hit>random\.(random|randint|randrange|choice|choices|getrandbits|uniform|sample|shuffle)\s*\([^)]*\)?)`),
				securityContext, 2,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "python-eval",
				Name:     "Dynamic code evaluation",
				Severity: issue.Critical,
				Category: issue.CodeInjection,
				CWE:      "95",
				Message:  "Code evaluated at runtime: {{.Match}}",
				Fix:      "Use ast.literal_eval for literals or an explicit dispatch table.",
			},
			Language: language.Python,
			Pattern:  Call(`(?:^|[^.\w])(?P<hit>(?:eval|exec)\s*\(.*)`),
		},
		{
			MetaData: issue.MetaData{
				ID:       "python-path-traversal",
				Name:     "File path from request data",
				Severity: issue.High,
				Category: issue.PathTraversal,
				CWE:      "22",
				Message:  "File access with a caller controlled path: {{.Match}}",
				Fix:      "Normalize with os.path.basename or werkzeug.utils.secure_filename and check the result stays under the base directory.",
			},
			Language: language.Python,
			Pattern: Unless(
				Regex(`(?:^|[^.\w])(?P<hit>(?:open|send_file|send_from_directory|os\.remove|os\.unlink|shutil\.rmtree)\s*\(\s*(?:f["'][^"']*\{|[^)]*\+\s*[A-Za-z_]|[^)]*request\.(?:args|form|files|values)).*)`),
				`secure_filename|os\.path\.basename|safe_join`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "python-tls-verify-disabled",
				Name:     "TLS verification disabled",
				Severity: issue.High,
				Category: issue.InsecureTransport,
				CWE:      "295",
				Message:  "Certificate verification is turned off: {{.Match}}",
				Fix:      "Keep verify=True and point it at a CA bundle when a private CA is used.",
			},
			Language: language.Python,
			Pattern:  Regex(`(?P<hit>\bverify\s*=\s*False\b|ssl\._create_unverified_context\s*\(|\bCERT_NONE\b|check_hostname\s*=\s*False)`),
		},
		{
			MetaData: issue.MetaData{
				ID:       "python-xss",
				Name:     "Unescaped HTML response",
				Severity: issue.High,
				Category: issue.XSS,
				CWE:      "79",
				Message:  "HTML rendered from unescaped input: {{.Match}}",
				Fix:      "Render through a template with autoescaping and avoid Markup/mark_safe on user data.",
			},
			Language: language.Python,
			Pattern:  Regex(`\b(?P<hit>(?:render_template_string|Markup|mark_safe|make_response)\s*\(\s*(?:f["']|` + pyString + `\s*(?:\+|%|\.format)|[^)"']*request\.).*)`),
		},
	}
}
