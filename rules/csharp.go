package rules

import (
	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/language"
)

const csRequest = `Request(?:\.(?:QueryString|Form|Params|Cookies|Query)|\s*\[)`

func csharpRules() []*Rule {
	return []*Rule{
		{
			MetaData: issue.MetaData{
				ID:       "csharp-sql-injection",
				Name:     "SQL built from strings",
				Severity: issue.Critical,
				Category: issue.SQLInjection,
				CWE:      "89",
				Message:  "SQL command text built from dynamic values: {{.Match}}",
				Fix:      "Use SqlParameter (cmd.Parameters.AddWithValue) or FromSqlInterpolated.",
			},
			Language: language.CSharp,
			Pattern: Unless(
				AnyOf(
					Regex(`(?P<hit>new\s+(?:SqlCommand|OleDbCommand|OdbcCommand|MySqlCommand|NpgsqlCommand|SqliteCommand)\s*\(\s*(?:"[^"]*"\s*\+|\$"[^"]*\{|[Ss]tring\.Format|[A-Za-z_]\w*\s*\+).*)`),
					Regex(`(?i)(?P<hit>\$@?`+quoted(`{nq}*\b`+sqlStatement+`\b{nq}*\{[^}]+\}{nq}*`, `"`)+`)`),
					Regex(`(?i)(?P<hit>string\.format\s*\(\s*@?"[^"]*\b`+sqlVerb+`\b[^"]*\{\d+\}.*)`),
					Regex(`(?i)(?P<hit>@?`+quoted(`{nq}*\b`+sqlStatement+`\b{nq}*`, `"`)+`\s*\+\s*[\w.(]+.*)`),
					Regex(`(?P<hit>\.(?:ExecuteSqlRaw|FromSqlRaw|ExecuteSqlCommand|SqlQuery)\s*\(\s*(?:\$"|"[^"]*"\s*\+|[Ss]tring\.Format).*)`),
				),
				`FromSqlInterpolated|ExecuteSqlInterpolated`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "csharp-xss",
				Name:     "Unencoded output",
				Severity: issue.High,
				Category: issue.XSS,
				CWE:      "79",
				Message:  "Request data rendered without encoding: {{.Match}}",
				Fix:      "Use HttpUtility.HtmlEncode or Razor's default encoding instead of Html.Raw.",
			},
			Language: language.CSharp,
			Pattern: Unless(
				AnyOf(
					Regex(`(?P<hit>Response\.Write\s*\([^;]*`+csRequest+`.*)`),
					Regex(`(?P<hit>Html\.Raw\s*\([^)]*\))`),
				),
				`HtmlEncode|AntiXss|Encoder\.Encode`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "csharp-insecure-deserialization",
				Name:     "Unsafe formatter",
				Severity: issue.Critical,
				Category: issue.InsecureDeserialization,
				CWE:      "502",
				Message:  "Formatter that deserializes arbitrary types: {{.Match}}",
				Fix:      "Use System.Text.Json with fixed types; keep TypeNameHandling.None.",
			},
			Language: language.CSharp,
			Pattern: AnyOf(
				Call(`(?P<hit>new\s+(?:BinaryFormatter|NetDataContractSerializer|LosFormatter|SoapFormatter|ObjectStateFormatter)\s*\(\s*\))`),
				Regex(`(?P<hit>TypeNameHandling\s*=\s*TypeNameHandling\.(?:All|Objects|Auto|Arrays))`),
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "csharp-insecure-random",
				Name:     "System.Random for secrets",
				Severity: issue.Medium,
				Category: issue.InsecureRandom,
				CWE:      "330",
				Message:  "System.Random is predictable: {{.Match}}",
				Fix:      "Use RandomNumberGenerator.GetBytes or GetInt32.",
			},
			Language: language.CSharp,
			Pattern:  Near(Regex(`(?P<hit>new\s+Random\s*\([^)]*\))`), securityContext, 2),
		},
		{
			MetaData: issue.MetaData{
				ID:       "csharp-command-injection",
				Name:     "Process started with dynamic arguments",
				Severity: issue.Critical,
				Category: issue.CommandInjection,
				CWE:      "78",
				Message:  "Process command line built from dynamic values: {{.Match}}",
				Fix:      "Use ProcessStartInfo.ArgumentList with validated values and UseShellExecute = false.",
			},
			Language: language.CSharp,
			Pattern: AnyOf(
				Regex(`(?P<hit>Process\.Start\s*\(\s*(?:"[^"]*"\s*,\s*)?(?:"[^"]*"\s*\+|\$"[^"]*\{).*)`),
				Regex(`\b(?P<hit>Arguments\s*=\s*(?:\$"[^"]*\{|"[^"]*"\s*\+).*)`),
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "csharp-tls-disabled",
				Name:     "Certificate validation disabled",
				Severity: issue.High,
				Category: issue.InsecureTransport,
				CWE:      "295",
				Message:  "Server certificate accepted unconditionally: {{.Match}}",
				Fix:      "Remove the custom validation callback or check the certificate chain in it.",
			},
			Language: language.CSharp,
			Pattern:  Regex(`(?P<hit>(?:ServerCertificateValidationCallback|ServerCertificateCustomValidationCallback|RemoteCertificateValidationCallback)\s*\+?=\s*[^;]*=>\s*true|DangerousAcceptAnyServerCertificateValidator)`),
		},
		{
			MetaData: issue.MetaData{
				ID:       "csharp-path-traversal",
				Name:     "File path from request data",
				Severity: issue.High,
				Category: issue.PathTraversal,
				CWE:      "22",
				Message:  "File access with a request controlled path: {{.Match}}",
				Fix:      "Use Path.GetFileName and verify Path.GetFullPath stays under the base directory.",
			},
			Language: language.CSharp,
			Pattern: Unless(
				Regex(`\b(?P<hit>(?:File\.(?:ReadAllText|ReadAllBytes|ReadAllLines|OpenRead|OpenWrite|WriteAllText|Delete|Open)|Path\.Combine|new\s+FileStream)\s*\([^;]*`+csRequest+`.*)`),
				`Path\.GetFileName\s*\(|GetFullPath`,
			),
		},
	}
}
