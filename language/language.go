// Package language classifies source snippets into the languages the
// analyzer has rules for.
package language

import (
	"path/filepath"
	"sort"
	"strings"
)

// Language is the display name of a supported language.
type Language string

const (
	// JavaScript covers .js, .jsx, .mjs and .cjs sources.
	JavaScript Language = "JavaScript"
	// TypeScript covers .ts, .tsx, .mts and .cts sources.
	TypeScript Language = "TypeScript"
	// Java source files
	Java Language = "Java"
	// Python covers .py, .pyi and .pyw sources.
	Python Language = "Python"
	// PHP covers .php, .phtml and the legacy .php3 to .php5 sources.
	PHP Language = "PHP"
	// CSharp is reported as "C#".
	CSharp Language = "C#"
	// SQL scripts and migrations
	SQL Language = "SQL"
	// Go source files
	Go Language = "Go"
	// Ruby covers .rb, .rbw and .rake sources.
	Ruby Language = "Ruby"

	// Unknown is reported for snippets that could not be classified.
	Unknown Language = "unknown"
	// Any scopes a rule to every supported language.
	Any Language = "*"
)

var supported = []Language{JavaScript, TypeScript, Java, Python, PHP, CSharp, SQL, Go, Ruby}

var extensions = map[string]Language{
	".js":    JavaScript,
	".jsx":   JavaScript,
	".mjs":   JavaScript,
	".cjs":   JavaScript,
	".ts":    TypeScript,
	".tsx":   TypeScript,
	".mts":   TypeScript,
	".cts":   TypeScript,
	".java":  Java,
	".py":    Python,
	".pyw":   Python,
	".pyi":   Python,
	".php":   PHP,
	".phtml": PHP,
	".php3":  PHP,
	".php4":  PHP,
	".php5":  PHP,
	".cs":    CSharp,
	".csx":   CSharp,
	".sql":   SQL,
	".go":    Go,
	".rb":    Ruby,
	".rbw":   Ruby,
	".rake":  Ruby,
}

// Supported returns the supported languages in a fixed order.
func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether rules exist for the language.
func (l Language) IsSupported() bool {
	for _, s := range supported {
		if s == l {
			return true
		}
	}
	return false
}

func (l Language) String() string {
	return string(l)
}

// Parse resolves a language by display name or common alias.
func Parse(name string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "javascript", "js":
		return JavaScript, true
	case "typescript", "ts":
		return TypeScript, true
	case "java":
		return Java, true
	case "python", "py":
		return Python, true
	case "php":
		return PHP, true
	case "c#", "csharp", "cs":
		return CSharp, true
	case "sql":
		return SQL, true
	case "go", "golang":
		return Go, true
	case "ruby", "rb":
		return Ruby, true
	case "*", "any":
		return Any, true
	}
	return Unknown, false
}

// FromExtension maps a file name to a language using its extension only.
func FromExtension(filename string) (Language, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return Unknown, false
	}
	lang, ok := extensions[ext]
	return lang, ok
}

// Extensions returns the file extensions registered for a language.
func Extensions(l Language) []string {
	var out []string
	for ext, lang := range extensions {
		if lang == l {
			out = append(out, ext)
		}
	}
	sort.Strings(out)
	return out
}
