package rules

import (
	"regexp"
	"strings"

	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/language"
)

// Shared building blocks for the per-language rule sets.
const (
	// securityContext marks lines where a random value ends up in a
	// credential, token or similar secret.
	securityContext = `(?i)(token|secret|passw|nonce|salt|otp|session|csrf|api_?key|auth|reset|verif|credential|signature|\bpin\b|\bkey\b|uuid|guid)`

	sqlVerb = `(?:select|insert|update|delete)`

	// sqlStatement uses {nq} so it can be embedded in quoted.
	sqlStatement = `(?:select\s{nq}*?\sfrom|insert\s+into|update\s+[\w.\[\]]+\s+set|delete\s+from|replace\s+into)`
)

// quoted builds an expression for a string literal delimited by one of
// quotes whose body matches inner. In inner, {nq} stands for any character
// but the delimiter. Only backtick literals may span lines.
func quoted(inner string, quotes ...string) string {
	alts := make([]string, 0, len(quotes))
	for _, q := range quotes {
		nq := "[^" + q + "\\n]"
		if q == "`" {
			nq = "[^`]"
		}
		body := strings.ReplaceAll(inner, "{nq}", nq)
		alts = append(alts, regexp.QuoteMeta(q)+body+regexp.QuoteMeta(q))
	}
	return "(?:" + strings.Join(alts, "|") + ")"
}

func universalRules() []*Rule {
	return []*Rule{
		{
			MetaData: issue.MetaData{
				ID:       "hardcoded-password",
				Name:     "Hardcoded password",
				Severity: issue.Critical,
				Category: issue.HardcodedSecret,
				CWE:      "798",
				Message:  "Password literal committed to source: {{.Match}}",
				Fix:      "Read the password from the environment or a secret manager and rotate the exposed value.",
			},
			Language: language.Any,
			Pattern:  SecretAssign(`(?i)(passw(or)?d|passwd|pwd|passphrase)`, LooksLikePassword),
		},
		{
			MetaData: issue.MetaData{
				ID:       "hardcoded-secret",
				Name:     "Hardcoded API key or token",
				Severity: issue.Critical,
				Category: issue.HardcodedSecret,
				CWE:      "798",
				Message:  "Credential literal committed to source: {{.Match}}",
				Fix:      "Move the secret to configuration outside the repository and rotate it.",
			},
			Language: language.Any,
			Pattern:  SecretAssign(`(?i)(secret|api[_-]?key|apikey|access[_-]?key|private[_-]?key|auth[_-]?key|client[_-]?secret|token|credential)`, LooksLikeSecret),
		},
		{
			MetaData: issue.MetaData{
				ID:       "secret-aws-access-key",
				Name:     "AWS access key",
				Severity: issue.Critical,
				Category: issue.HardcodedSecret,
				CWE:      "798",
				Message:  "AWS access key ID found: {{.Match}}",
				Fix:      "Deactivate the key in IAM and load credentials through the AWS SDK credential chain.",
			},
			Language: language.Any,
			Pattern:  Raw(`\b(?P<hit>(AKIA|ASIA)[0-9A-Z]{16})\b`),
		},
		{
			MetaData: issue.MetaData{
				ID:       "secret-github-token",
				Name:     "GitHub token",
				Severity: issue.Critical,
				Category: issue.HardcodedSecret,
				CWE:      "798",
				Message:  "GitHub token found: {{.Match}}",
				Fix:      "Revoke the token and inject it at runtime.",
			},
			Language: language.Any,
			Pattern:  Raw(`\b(?P<hit>gh[pousr]_[A-Za-z0-9]{36,})`),
		},
		{
			MetaData: issue.MetaData{
				ID:       "secret-slack-token",
				Name:     "Slack token",
				Severity: issue.Critical,
				Category: issue.HardcodedSecret,
				CWE:      "798",
				Message:  "Slack token found: {{.Match}}",
				Fix:      "Revoke the token and inject it at runtime.",
			},
			Language: language.Any,
			Pattern:  Raw(`\b(?P<hit>xox[abprs]-[A-Za-z0-9-]{10,})`),
		},
		{
			MetaData: issue.MetaData{
				ID:       "secret-private-key",
				Name:     "Private key block",
				Severity: issue.Critical,
				Category: issue.HardcodedSecret,
				CWE:      "798",
				Message:  "Private key material embedded in source: {{.Match}}",
				Fix:      "Remove the key, issue a new key pair and load it from a protected file or vault.",
			},
			Language: language.Any,
			Pattern:  Raw(`-----BEGIN (RSA |EC |DSA |OPENSSH |PGP |ENCRYPTED )?PRIVATE KEY( BLOCK)?-----`),
		},
		{
			MetaData: issue.MetaData{
				ID:       "secret-jwt",
				Name:     "JSON Web Token",
				Severity: issue.High,
				Category: issue.HardcodedSecret,
				CWE:      "798",
				Message:  "Signed JWT embedded in source: {{.Match}}",
				Fix:      "Do not commit bearer tokens; request them at runtime.",
			},
			Language: language.Any,
			Pattern:  Raw(`\b(?P<hit>eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,})`),
		},
		{
			MetaData: issue.MetaData{
				ID:       "insecure-http",
				Name:     "Cleartext HTTP URL",
				Severity: issue.Medium,
				Category: issue.InsecureTransport,
				CWE:      "319",
				Message:  "Plain HTTP endpoint: {{.Match}}",
				Fix:      "Use https:// so traffic is encrypted and the server is authenticated.",
			},
			Language: language.Any,
			Pattern: Reject(
				Regex(`(?P<hit>http://[^\s"'<>()\x60]+)`),
				`^http://(localhost|127\.\d+\.\d+\.\d+|0\.0\.0\.0|\[::1\])(:\d+)?([/?#]|$)`,
				`^http://([\w-]+\.)*(w3\.org|xmlsoap\.org|apache\.org|schemas\.microsoft\.com|schemas\.android\.com|example\.(com|org|net))(:\d+)?([/?#]|$)`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "weak-hash-md5",
				Name:     "MD5 hash",
				Severity: issue.High,
				Category: issue.WeakCrypto,
				CWE:      "328",
				Message:  "MD5 is broken for security use: {{.Match}}",
				Fix:      "Use SHA-256 or better; for passwords use bcrypt, scrypt or Argon2.",
			},
			Language: language.Any,
			Pattern: Unless(
				Regex(`(?i)(?P<hit>\bmd5\s*\(|\bmd5\.(new|sum|create)\b|\bdigest::md5\b|(getinstance|createhash|hashlib\.new)\(\s*["']md5["'])`),
				`usedforsecurity\s*=\s*False`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "weak-hash-sha1",
				Name:     "SHA-1 hash",
				Severity: issue.High,
				Category: issue.WeakCrypto,
				CWE:      "328",
				Message:  "SHA-1 is deprecated for security use: {{.Match}}",
				Fix:      "Use SHA-256 or better.",
			},
			Language: language.Any,
			Pattern: Unless(
				Regex(`(?i)(?P<hit>\bsha1\s*\(|\bsha1\.(new|sum|create)\b|\bdigest::sha1\b|\bsha1managed\b|(getinstance|createhash|hashlib\.new)\(\s*["']sha-?1["'])`),
				`usedforsecurity\s*=\s*False`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "debug-mode-enabled",
				Name:     "Debug mode enabled",
				Severity: issue.Low,
				Category: issue.DebugConfig,
				CWE:      "489",
				Message:  "Debug mode switched on: {{.Match}}",
				Fix:      "Drive debug flags from the environment and keep them off in production.",
			},
			Language: language.Any,
			Pattern:  Regex(`(?i)(?P<hit>\b(debug|debug_mode)["']?\s*[:=]\s*(true|1|on|yes)\b)`),
		},
	}
}
