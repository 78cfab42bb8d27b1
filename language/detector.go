package language

import (
	"context"
	"regexp"
	"sort"
)

const (
	// maxSniffInput bounds how much content the fingerprints look at.
	maxSniffInput = 64 << 10
	// minContentScore is the least fingerprint weight a candidate needs.
	minContentScore = 3
	// maxFingerprintHits caps how often one fingerprint is counted.
	maxFingerprintHits = 3
)

// Detection methods.
const (
	MethodExtension = "extension"
	MethodShebang   = "shebang"
	MethodContent   = "content"
	MethodSyntax    = "syntax"
	MethodNone      = "none"
)

// Detection is the outcome of classifying a snippet. Confidence is only
// used internally for logging.
type Detection struct {
	Language   Language
	Method     string
	Confidence float64
}

type fingerprint struct {
	lang   Language
	re     *regexp.Regexp
	weight int
}

var (
	shebang = regexp.MustCompile(`^#![^\n]*?\b(python[0-9.]*|node|nodejs|ruby|php|ts-node|deno)\b`)
	phpOpen = regexp.MustCompile(`<\?php\b`)

	shebangLanguages = map[string]Language{
		"node":    JavaScript,
		"nodejs":  JavaScript,
		"ruby":    Ruby,
		"php":     PHP,
		"ts-node": TypeScript,
		"deno":    TypeScript,
	}
)

var fingerprints = []fingerprint{
	// Python
	{Python, regexp.MustCompile(`(?m)^\s*def\s+\w+\s*\([^)]*\)\s*(->\s*[^:]+)?:\s*$`), 3},
	{Python, regexp.MustCompile(`(?m)^\s*(from\s+[\w.]+\s+)?import\s+[\w.]+(\s+as\s+\w+)?(\s*,\s*[\w.]+)*\s*$`), 2},
	{Python, regexp.MustCompile(`(?m)^\s*(if|elif|while|for|with|try|except)\b[^{;\n]*:\s*$`), 2},
	{Python, regexp.MustCompile(`(?m)^\s*class\s+\w+(\([^)]*\))?:\s*$`), 3},
	{Python, regexp.MustCompile(`\bself\.\w+`), 1},
	{Python, regexp.MustCompile(`\b(None|True|False)\b`), 1},
	{Python, regexp.MustCompile(`\b(os\.system|subprocess\.\w+|pickle\.loads?|hashlib\.\w+|random\.\w+)\s*\(`), 2},

	// JavaScript
	{JavaScript, regexp.MustCompile(`\b(const|let)\s+[\w{\[]`), 2},
	{JavaScript, regexp.MustCompile(`\bfunction\s*\w*\s*\([^$)]*\)\s*\{`), 2},
	{JavaScript, regexp.MustCompile(`\brequire\s*\(\s*['"]`), 3},
	{JavaScript, regexp.MustCompile(`\bconsole\.\w+\s*\(`), 3},
	{JavaScript, regexp.MustCompile(`\b(document|window)\.\w+`), 2},
	{JavaScript, regexp.MustCompile(`\bmodule\.exports\b|\bexport\s+(default|const|function|class)\b`), 2},
	{JavaScript, regexp.MustCompile(`===|!==`), 1},
	{JavaScript, regexp.MustCompile(`=>\s*[{(]`), 1},

	// TypeScript only; JavaScript signals count towards TypeScript once one of these matched.
	{TypeScript, regexp.MustCompile(`(?m)^\s*(export\s+)?(interface|type)\s+\w+(\s*<[^>]*>)?\s*(=|\{|extends)`), 3},
	{TypeScript, regexp.MustCompile(`\w\s*:\s*(string|number|boolean|any|void|unknown|never)\b`), 3},
	{TypeScript, regexp.MustCompile(`\b(private|public|readonly)\s+\w+\s*:`), 2},
	{TypeScript, regexp.MustCompile(`\bas\s+(string|number|any|const)\b`), 2},

	// Java
	{Java, regexp.MustCompile(`(?m)^\s*import\s+javax?\.[\w.*]+;`), 5},
	{Java, regexp.MustCompile(`(?m)^\s*package\s+[\w.]+;\s*$`), 4},
	{Java, regexp.MustCompile(`\bSystem\.(out|err)\.print`), 4},
	{Java, regexp.MustCompile(`\bpublic\s+static\s+void\s+main\s*\(\s*String`), 4},
	{Java, regexp.MustCompile(`@(Override|Autowired|Entity|RestController)\b`), 2},
	{Java, regexp.MustCompile(`\bthrows\s+[A-Z]\w*`), 3},
	{Java, regexp.MustCompile(`\bString\s+\w+\s*=`), 1},

	// PHP
	{PHP, regexp.MustCompile(`\$_(GET|POST|REQUEST|SERVER|COOKIE|SESSION)\b`), 5},
	{PHP, regexp.MustCompile(`\$\w+\s*=[^=]`), 2},
	{PHP, regexp.MustCompile(`\$\w+->\w+`), 2},
	{PHP, regexp.MustCompile(`\bfunction\s+\w+\s*\(\s*\$`), 4},
	{PHP, regexp.MustCompile(`\b(echo|print)\s+["'$]`), 1},

	// C#
	{CSharp, regexp.MustCompile(`(?m)^\s*using\s+System(\.[\w.]+)?;`), 5},
	{CSharp, regexp.MustCompile(`(?m)^\s*namespace\s+[\w.]+\s*[{;]?\s*$`), 3},
	{CSharp, regexp.MustCompile(`\bConsole\.Write(Line)?\s*\(`), 4},
	{CSharp, regexp.MustCompile(`\{\s*get;\s*(private\s+)?(set;)?\s*\}`), 4},
	{CSharp, regexp.MustCompile(`\bvar\s+\w+\s*=\s*new\b`), 2},
	{CSharp, regexp.MustCompile(`\bstring\s+\w+\s*=`), 2},
	{CSharp, regexp.MustCompile(`\[(HttpGet|HttpPost|Route|ApiController)\b`), 3},

	// SQL
	{SQL, regexp.MustCompile(`(?im)^\s*select\s+.+\s+from\s+\w+`), 3},
	{SQL, regexp.MustCompile(`(?im)^\s*(insert\s+into|update\s+\w+\s+set|delete\s+from|create\s+(or\s+replace\s+)?(table|view|index|procedure|function|user)|drop\s+table|alter\s+table|grant\s+\w+)`), 3},
	{SQL, regexp.MustCompile(`(?im)^\s*(begin|commit|rollback)\s*;`), 2},
	{SQL, regexp.MustCompile(`(?m)^\s*--\s`), 1},

	// Go
	{Go, regexp.MustCompile(`(?m)^package\s+\w+\s*$`), 5},
	{Go, regexp.MustCompile(`\bfunc\s+(\(\w+\s+\*?\w+\)\s*)?\w+\s*\(`), 4},
	{Go, regexp.MustCompile(`\w\s*:=`), 2},
	{Go, regexp.MustCompile(`\bfmt\.\w+\(`), 3},
	{Go, regexp.MustCompile(`(?m)^import\s+(\(|")`), 3},
	{Go, regexp.MustCompile(`\berr\s*!=\s*nil\b`), 4},

	// Ruby
	{Ruby, regexp.MustCompile(`(?m)^\s*def\s+\w+[?!]?(\s*\([^)]*\))?\s*$`), 2},
	{Ruby, regexp.MustCompile(`(?m)^\s*end\s*$`), 3},
	{Ruby, regexp.MustCompile(`\bputs\s+`), 3},
	{Ruby, regexp.MustCompile(`(?m)^\s*require\s+['"]`), 2},
	{Ruby, regexp.MustCompile(`\battr_(accessor|reader|writer)\b`), 4},
	{Ruby, regexp.MustCompile(`#\{[^}]*\}`), 2},
	{Ruby, regexp.MustCompile(`\bdo\s*(\|[^|]*\|)?\s*$`), 2},
	{Ruby, regexp.MustCompile(`:\w+\s*=>`), 2},
}

// Option configures a Detector.
type Option func(*Detector)

// WithSyntaxChecker replaces the checker used to break ties.
func WithSyntaxChecker(c SyntaxChecker) Option {
	return func(d *Detector) {
		d.syntax = c
	}
}

// Detector classifies snippets by extension, then by content.
type Detector struct {
	syntax SyntaxChecker
}

// NewDetector creates a detector backed by tree-sitter for tie-breaks.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{syntax: NewTreeSitterChecker()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect returns the language of a snippet. It never fails: snippets that
// cannot be classified yield Unknown.
func (d *Detector) Detect(filename, code string) Language {
	return d.DetectContext(context.Background(), filename, code).Language
}

// DetectContext classifies a snippet and reports how the decision was made.
func (d *Detector) DetectContext(ctx context.Context, filename, code string) Detection {
	if lang, ok := FromExtension(filename); ok {
		return Detection{Language: lang, Method: MethodExtension, Confidence: 1}
	}
	if len(code) > maxSniffInput {
		code = code[:maxSniffInput]
	}
	if m := shebang.FindStringSubmatch(code); m != nil {
		interp := m[1]
		if lang, ok := shebangLanguages[interp]; ok {
			return Detection{Language: lang, Method: MethodShebang, Confidence: 1}
		}
		return Detection{Language: Python, Method: MethodShebang, Confidence: 1}
	}
	if phpOpen.MatchString(code) {
		return Detection{Language: PHP, Method: MethodShebang, Confidence: 1}
	}
	return d.sniff(ctx, code)
}

type candidate struct {
	lang  Language
	score int
}

func (d *Detector) sniff(ctx context.Context, code string) Detection {
	scores := Scores(code)
	ranked := make([]candidate, 0, len(scores))
	total := 0
	for _, lang := range supported {
		if s := scores[lang]; s > 0 {
			ranked = append(ranked, candidate{lang, s})
			total += s
		}
	}
	if len(ranked) == 0 {
		return Detection{Language: Unknown, Method: MethodNone}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	best := ranked[0]
	if best.score < minContentScore {
		return Detection{Language: Unknown, Method: MethodNone}
	}
	confidence := float64(best.score) / float64(total)
	if len(ranked) == 1 || ranked[1].score < best.score {
		return Detection{Language: best.lang, Method: MethodContent, Confidence: confidence}
	}

	var tied []Language
	for _, c := range ranked {
		if c.score == best.score {
			tied = append(tied, c.lang)
		}
	}
	return d.breakTie(ctx, tied, code)
}

func (d *Detector) breakTie(ctx context.Context, tied []Language, code string) Detection {
	if d.syntax == nil {
		return Detection{Language: Unknown, Method: MethodNone}
	}
	var clean []Language
	for _, lang := range tied {
		if d.syntax.Parses(ctx, lang, []byte(code)) {
			clean = append(clean, lang)
		}
	}
	if len(clean) != 1 {
		return Detection{Language: Unknown, Method: MethodNone}
	}
	return Detection{Language: clean[0], Method: MethodSyntax, Confidence: 1 / float64(len(tied))}
}

// Scores returns the fingerprint weight each language collected for code.
// A fingerprint counts once per occurrence, up to maxFingerprintHits.
func Scores(code string) map[Language]int {
	scores := make(map[Language]int, len(supported))
	for _, fp := range fingerprints {
		if hits := len(fp.re.FindAllStringIndex(code, maxFingerprintHits)); hits > 0 {
			scores[fp.lang] += fp.weight * hits
		}
	}
	if ts := scores[TypeScript]; ts > 0 {
		scores[TypeScript] = ts + scores[JavaScript]
	}
	return scores
}
