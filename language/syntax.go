package language

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/php"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/sql"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// maxSyntaxInput bounds how much of a snippet is handed to a parser.
const maxSyntaxInput = 64 << 10

// SyntaxChecker reports whether code parses cleanly as the given language.
type SyntaxChecker interface {
	Parses(ctx context.Context, lang Language, code []byte) bool
}

// TreeSitterChecker parses snippets with the tree-sitter grammars.
type TreeSitterChecker struct {
	grammars map[Language]func() *sitter.Language
}

// NewTreeSitterChecker returns a checker for every supported language.
func NewTreeSitterChecker() *TreeSitterChecker {
	return &TreeSitterChecker{
		grammars: map[Language]func() *sitter.Language{
			JavaScript: javascript.GetLanguage,
			TypeScript: typescript.GetLanguage,
			Java:       java.GetLanguage,
			Python:     python.GetLanguage,
			PHP:        php.GetLanguage,
			CSharp:     csharp.GetLanguage,
			SQL:        sql.GetLanguage,
			Go:         golang.GetLanguage,
			Ruby:       ruby.GetLanguage,
		},
	}
}

// Parses returns false when the grammar is unknown, parsing fails or the
// resulting tree contains error nodes.
func (c *TreeSitterChecker) Parses(ctx context.Context, lang Language, code []byte) bool {
	grammar, ok := c.grammars[lang]
	if !ok {
		return false
	}
	if len(code) > maxSyntaxInput {
		code = code[:maxSyntaxInput]
	}

	// Parsers are not safe for concurrent use, so each call owns one.
	p := sitter.NewParser()
	defer p.Close()
	p.SetLanguage(grammar())

	tree, err := p.ParseCtx(ctx, nil, code)
	if err != nil || tree == nil {
		return false
	}
	defer tree.Close()

	root := tree.RootNode()
	return root != nil && !root.HasError()
}
