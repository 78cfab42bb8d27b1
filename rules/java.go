package rules

import (
	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/language"
)

func javaRules() []*Rule {
	return []*Rule{
		{
			MetaData: issue.MetaData{
				ID:       "java-sql-injection",
				Name:     "SQL built by concatenation",
				Severity: issue.Critical,
				Category: issue.SQLInjection,
				CWE:      "89",
				Message:  "SQL statement concatenated with dynamic values: {{.Match}}",
				Fix:      "Use PreparedStatement with ? placeholders and setString/setInt.",
			},
			Language: language.Java,
			Pattern: AnyOf(
				Window(`\b(?P<hit>(?:executeQuery|executeUpdate|execute|addBatch|prepareStatement|createQuery|createNativeQuery|queryForList|queryForObject)\s*\(\s*"[^"]*"\s*\+)`, 2),
				Regex(`(?i)(?P<hit>`+quoted(`{nq}*\b`+sqlStatement+`\b{nq}*`, `"`)+`\s*\+\s*[\w.(]+.*)`),
				Regex(`(?i)(?P<hit>String\.format\s*\(\s*"[^"]*\b`+sqlVerb+`\b[^"]*%s.*)`),
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "java-command-injection",
				Name:     "OS command built from input",
				Severity: issue.Critical,
				Category: issue.CommandInjection,
				CWE:      "78",
				Message:  "Process started with a dynamic command line: {{.Match}}",
				Fix:      "Pass a fixed executable and a String[] of validated arguments to ProcessBuilder.",
			},
			Language: language.Java,
			Pattern: AnyOf(
				Regex(`(?P<hit>Runtime\.getRuntime\(\)\.exec\s*\(\s*(?:[^")\s][^;]*|"[^"]*"\s*\+[^;]*))`),
				Regex(`(?P<hit>new\s+ProcessBuilder\s*\([^;]*(?:"(?:sh|bash|cmd(?:\.exe)?)"\s*,\s*"(?:-c|/c)"|"[^"]*"\s*\+)[^;]*)`),
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "java-xss",
				Name:     "Request data written to response",
				Severity: issue.High,
				Category: issue.XSS,
				CWE:      "79",
				Message:  "Request parameter echoed without encoding: {{.Match}}",
				Fix:      "Encode output with OWASP Encoder (Encode.forHtml) or render through an escaping template.",
			},
			Language: language.Java,
			Pattern: Unless(
				Window(`(?P<hit>getWriter\(\)\s*\.\s*(?:print|println|write|append|printf)\s*\([^;]*request\.getParameter)`, 2),
				`escapeHtml|encodeForHTML|forHtml|htmlEscape`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "java-insecure-deserialization",
				Name:     "Java native deserialization",
				Severity: issue.Critical,
				Category: issue.InsecureDeserialization,
				CWE:      "502",
				Message:  "Object stream deserialization of untrusted data: {{.Match}}",
				Fix:      "Avoid ObjectInputStream on external data or install an ObjectInputFilter allow list.",
			},
			Language: language.Java,
			Pattern: Unless(
				Call(`(?P<hit>new\s+(?:ObjectInputStream|XMLDecoder)\s*\([^;]*|\.readObject\s*\(\s*\)|\.readUnshared\s*\(\s*\))`),
				`ValidatingObjectInputStream|ObjectInputFilter|setObjectInputFilter`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "java-insecure-random",
				Name:     "java.util.Random for secrets",
				Severity: issue.Medium,
				Category: issue.InsecureRandom,
				CWE:      "330",
				Message:  "Predictable random generator used for a secret: {{.Match}}",
				Fix:      "Use java.security.SecureRandom.",
			},
			Language: language.Java,
			Pattern: Near(
				Regex(`(?P<hit>new\s+Random\s*\([^)]*\)|\bMath\.random\s*\(\s*\)|ThreadLocalRandom\.current\(\))`),
				securityContext, 2,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "java-weak-cipher",
				Name:     "Weak cipher",
				Severity: issue.High,
				Category: issue.WeakCrypto,
				CWE:      "327",
				Message:  "Broken cipher or mode requested: {{.Match}}",
				Fix:      `Use "AES/GCM/NoPadding" with a random 12 byte IV.`,
			},
			Language: language.Java,
			Pattern:  Regex(`(?P<hit>Cipher\.getInstance\s*\(\s*"(?:(?:DES|DESede|TripleDES|RC2|RC4|ARCFOUR|Blowfish)(?:/[^"]*)?|AES|[^"]*/ECB/[^"]*)")`),
		},
		{
			MetaData: issue.MetaData{
				ID:       "java-tls-disabled",
				Name:     "TLS verification disabled",
				Severity: issue.High,
				Category: issue.InsecureTransport,
				CWE:      "295",
				Message:  "Hostname or certificate checks bypassed: {{.Match}}",
				Fix:      "Use the default HostnameVerifier and TrustManager.",
			},
			Language: language.Java,
			Pattern:  Regex(`(?P<hit>ALLOW_ALL_HOSTNAME_VERIFIER|NoopHostnameVerifier|setHostnameVerifier\s*\(\s*\(\s*\w+\s*,\s*\w+\s*\)\s*->\s*true|TrustAllStrategy|TrustSelfSignedStrategy)`),
		},
		{
			MetaData: issue.MetaData{
				ID:       "java-path-traversal",
				Name:     "File path from request data",
				Severity: issue.High,
				Category: issue.PathTraversal,
				CWE:      "22",
				Message:  "File opened with a caller controlled path: {{.Match}}",
				Fix:      "Canonicalize the path and check it stays under the base directory.",
			},
			Language: language.Java,
			Pattern: Unless(
				Regex(`(?P<hit>(?:new\s+(?:File|FileInputStream|FileOutputStream|FileReader|FileWriter)|Paths\.get|Path\.of)\s*\([^;]*(?:request\.getParameter|"[^"]*"\s*\+\s*\w+)[^;]*)`),
				`getCanonicalPath|normalize\(\)|FilenameUtils\.getName`,
			),
		},
	}
}
