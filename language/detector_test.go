package language_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zirafica98/neatcommit/language"
)

type stubChecker map[language.Language]bool

func (s stubChecker) Parses(_ context.Context, lang language.Language, _ []byte) bool {
	return s[lang]
}

func TestDetectByExtension(t *testing.T) {
	d := language.NewDetector(language.WithSyntaxChecker(stubChecker{}))

	cases := map[string]language.Language{
		"app.py":        language.Python,
		"tool.pyw":      language.Python,
		"index.js":      language.JavaScript,
		"component.jsx": language.JavaScript,
		"server.mjs":    language.JavaScript,
		"main.ts":       language.TypeScript,
		"view.tsx":      language.TypeScript,
		"Main.java":     language.Java,
		"index.php":     language.PHP,
		"page.phtml":    language.PHP,
		"Program.cs":    language.CSharp,
		"schema.sql":    language.SQL,
		"main.go":       language.Go,
		"app.rb":        language.Ruby,
		"Rakefile.rake": language.Ruby,
		"UPPER.PY":      language.Python,
		"dir/nested.Go": language.Go,
	}
	for filename, want := range cases {
		assert.Equal(t, want, d.Detect(filename, ""), filename)
	}
}

func TestExtensionWinsOverContent(t *testing.T) {
	d := language.NewDetector(language.WithSyntaxChecker(stubChecker{}))
	assert.Equal(t, language.Python, d.Detect("script.py", "package main\nfunc main() {}\n"))
}

func TestDetectUnknown(t *testing.T) {
	d := language.NewDetector(language.WithSyntaxChecker(stubChecker{}))

	assert.Equal(t, language.Unknown, d.Detect("notes.txt", "hello world, nothing to see here"))
	assert.Equal(t, language.Unknown, d.Detect("README", ""))
	assert.False(t, language.Unknown.IsSupported())
}

func TestDetectShebangAndPHPTag(t *testing.T) {
	d := language.NewDetector(language.WithSyntaxChecker(stubChecker{}))

	assert.Equal(t, language.Python, d.Detect("run", "#!/usr/bin/env python3\nprint('x')\n"))
	assert.Equal(t, language.JavaScript, d.Detect("run", "#!/usr/bin/env node\nconsole.log(1)\n"))
	assert.Equal(t, language.Ruby, d.Detect("run", "#!/usr/bin/ruby\nputs 1\n"))
	assert.Equal(t, language.PHP, d.Detect("page", "<html><?php echo $title; ?></html>"))
}

func TestDetectByContent(t *testing.T) {
	d := language.NewDetector(language.WithSyntaxChecker(stubChecker{}))

	goCode := "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n"
	assert.Equal(t, language.Go, d.Detect("snippet", goCode))

	sqlCode := "SELECT id, name FROM users WHERE id = 1;\nDELETE FROM sessions;\n"
	assert.Equal(t, language.SQL, d.Detect("query", sqlCode))

	jsCode := "const fs = require('fs');\nconsole.log(fs);\n"
	assert.Equal(t, language.JavaScript, d.Detect("snippet", jsCode))

	tsCode := "interface User {\n  name: string;\n}\nconst u: User = { name: 'a' };\nconsole.log(u);\n"
	assert.Equal(t, language.TypeScript, d.Detect("snippet", tsCode))

	javaCode := "import java.util.List;\n\npublic class Main {\n  public static void main(String[] args) {\n    System.out.println(\"x\");\n  }\n}\n"
	assert.Equal(t, language.Java, d.Detect("snippet", javaCode))

	csCode := "using System;\n\nnamespace Demo\n{\n  class P { static void Main() { Console.WriteLine(\"x\"); } }\n}\n"
	assert.Equal(t, language.CSharp, d.Detect("snippet", csCode))

	pyCode := "import os\n\ndef run(name):\n    os.system(name)\n"
	assert.Equal(t, language.Python, d.Detect("snippet", pyCode))
}

func TestScoresCountRepeatedFingerprints(t *testing.T) {
	d := language.NewDetector(language.WithSyntaxChecker(stubChecker{}))

	rubyCode := "log \"loaded #{user.name}\"\nlog \"role #{user.role}\"\nlog \"team #{user.team}\"\nlog \"plan #{user.plan}\"\n"
	assert.Equal(t, 6, language.Scores(rubyCode)[language.Ruby])
	assert.Equal(t, language.Ruby, d.Detect("snippet", rubyCode))

	jsCode := "items.forEach((item) => {\n  if (item.id === id) { found = item; }\n  if (item.name !== name) { skipped += 1; }\n});\n"
	assert.Equal(t, 3, language.Scores(jsCode)[language.JavaScript])
	assert.Equal(t, language.JavaScript, d.Detect("snippet", jsCode))

	single := "log \"loaded #{user.name}\"\n"
	assert.Equal(t, 2, language.Scores(single)[language.Ruby])
	assert.Equal(t, language.Unknown, d.Detect("snippet", single))
}

func TestDetectTieBreak(t *testing.T) {
	code := "puts x\nconsole.log(x)\n"
	scores := language.Scores(code)
	require.Equal(t, scores[language.Ruby], scores[language.JavaScript])

	rubyOnly := language.NewDetector(language.WithSyntaxChecker(stubChecker{language.Ruby: true}))
	detection := rubyOnly.DetectContext(context.Background(), "snippet", code)
	assert.Equal(t, language.Ruby, detection.Language)
	assert.Equal(t, language.MethodSyntax, detection.Method)

	both := language.NewDetector(language.WithSyntaxChecker(stubChecker{language.Ruby: true, language.JavaScript: true}))
	assert.Equal(t, language.Unknown, both.Detect("snippet", code))

	neither := language.NewDetector(language.WithSyntaxChecker(stubChecker{}))
	assert.Equal(t, language.Unknown, neither.Detect("snippet", code))
}

func TestParseLanguage(t *testing.T) {
	lang, ok := language.Parse("csharp")
	assert.True(t, ok)
	assert.Equal(t, language.CSharp, lang)

	lang, ok = language.Parse("any")
	assert.True(t, ok)
	assert.Equal(t, language.Any, lang)

	_, ok = language.Parse("cobol")
	assert.False(t, ok)
}

func TestSupportedIsStable(t *testing.T) {
	first := language.Supported()
	first[0] = language.Unknown
	assert.Equal(t, language.JavaScript, language.Supported()[0])
	assert.Len(t, language.Supported(), 9)
	assert.Equal(t, []string{".py", ".pyi", ".pyw"}, language.Extensions(language.Python))
}
