package rules

import (
	"strings"

	"github.com/zirafica98/neatcommit/language"
)

// Source is the read-only view of a snippet shared by every rule of one
// analysis. Code holds the same lines as Lines with comments blanked out.
// Stripped additionally blanks the contents of string literals, keeping the
// quotes. Byte columns line up across all three.
type Source struct {
	Language language.Language
	Lines    []string
	Code     []string
	Stripped []string

	joined string
}

// NewSource splits code into lines and masks the comments of lang.
func NewSource(lang language.Language, code string) *Source {
	masked, stripped := mask(lang, code)
	src := &Source{
		Language: lang,
		Lines:    splitLines(code),
		Code:     splitLines(masked),
		Stripped: splitLines(stripped),
		joined:   masked,
	}
	return src
}

// Len returns the number of lines.
func (s *Source) Len() int {
	return len(s.Lines)
}

// Text returns the masked code as a single string.
func (s *Source) Text() string {
	return s.joined
}

func splitLines(code string) []string {
	if code == "" {
		return nil
	}
	lines := strings.Split(code, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

type commentStyle struct {
	line        []string
	block       [][2]string
	quotes      string
	rawQuotes   string
	multiline   string
	tripleQuote bool
	verbatim    bool
	// hashKeeps lists characters that turn a following '#' into code.
	hashKeeps string
}

var (
	cStyle = &commentStyle{
		line:   []string{"//"},
		block:  [][2]string{{"/*", "*/"}},
		quotes: `"'`,
	}
	scriptStyle = &commentStyle{
		line:      []string{"//"},
		block:     [][2]string{{"/*", "*/"}},
		quotes:    "\"'`",
		multiline: "`",
	}
	goStyle = &commentStyle{
		line:      []string{"//"},
		block:     [][2]string{{"/*", "*/"}},
		quotes:    "\"'`",
		rawQuotes: "`",
		multiline: "`",
	}
	csharpStyle = &commentStyle{
		line:     []string{"//"},
		block:    [][2]string{{"/*", "*/"}},
		quotes:   `"'`,
		verbatim: true,
	}
	phpStyle = &commentStyle{
		line:      []string{"//", "#"},
		block:     [][2]string{{"/*", "*/"}},
		quotes:    `"'`,
		hashKeeps: "[",
	}
	pythonStyle = &commentStyle{
		line:        []string{"#"},
		quotes:      `"'`,
		tripleQuote: true,
	}
	rubyStyle = &commentStyle{
		line:      []string{"#"},
		quotes:    "\"'`",
		multiline: "`",
		hashKeeps: "{",
	}
	sqlStyle = &commentStyle{
		line:      []string{"--"},
		block:     [][2]string{{"/*", "*/"}},
		quotes:    `"'`,
		rawQuotes: `'"`,
	}

	styles = map[language.Language]*commentStyle{
		language.JavaScript: scriptStyle,
		language.TypeScript: scriptStyle,
		language.Java:       cStyle,
		language.CSharp:     csharpStyle,
		language.Go:         goStyle,
		language.PHP:        phpStyle,
		language.Python:     pythonStyle,
		language.Ruby:       rubyStyle,
		language.SQL:        sqlStyle,
	}
)

// Mask replaces the comments of code with spaces, keeping newlines and the
// length of every line. String literals are left untouched. Languages
// without a known comment syntax are returned unchanged.
func Mask(lang language.Language, code string) string {
	masked, _ := mask(lang, code)
	return masked
}

// StripStrings is Mask with the contents of string literals blanked too.
// Quotes and prefixes stay in place.
func StripStrings(lang language.Language, code string) string {
	_, stripped := mask(lang, code)
	return stripped
}

func mask(lang language.Language, code string) (string, string) {
	style, ok := styles[lang]
	if !ok || code == "" {
		return code, code
	}

	const (
		normal = iota
		inString
		inLineComment
		inBlockComment
	)

	out := []byte(code)
	str := []byte(code)
	state := normal
	var quote, closer string
	raw := false

	blank := func(from, to int) {
		for k := from; k < to && k < len(out); k++ {
			if out[k] != '\n' {
				out[k] = ' '
				str[k] = ' '
			}
		}
	}
	blankString := func(from, to int) {
		for k := from; k < to && k < len(str); k++ {
			if str[k] != '\n' {
				str[k] = ' '
			}
		}
	}

	for i := 0; i < len(code); {
		c := code[i]
		switch state {
		case normal:
			if style.tripleQuote && (strings.HasPrefix(code[i:], `"""`) || strings.HasPrefix(code[i:], `'''`)) {
				state, quote, raw = inString, code[i:i+3], false
				i += 3
				continue
			}
			if n := style.lineCommentAt(code, i); n > 0 {
				state = inLineComment
				blank(i, i+n)
				i += n
				continue
			}
			if open, end, found := style.blockCommentAt(code, i); found {
				state, closer = inBlockComment, end
				blank(i, i+len(open))
				i += len(open)
				continue
			}
			if strings.IndexByte(style.quotes, c) >= 0 {
				state, quote = inString, string(c)
				raw = strings.IndexByte(style.rawQuotes, c) >= 0 || (style.verbatim && c == '"' && i > 0 && code[i-1] == '@')
			}
			i++
		case inString:
			if c == '\\' && !raw {
				blankString(i, i+2)
				i += 2
				continue
			}
			if strings.HasPrefix(code[i:], quote) {
				state = normal
				i += len(quote)
				continue
			}
			if c == '\n' && len(quote) == 1 && strings.IndexByte(style.multiline, quote[0]) < 0 {
				state = normal
			}
			blankString(i, i+1)
			i++
		case inLineComment:
			if c == '\n' {
				state = normal
			} else {
				out[i] = ' '
				str[i] = ' '
			}
			i++
		case inBlockComment:
			if strings.HasPrefix(code[i:], closer) {
				blank(i, i+len(closer))
				i += len(closer)
				state = normal
				continue
			}
			blank(i, i+1)
			i++
		}
	}
	return string(out), string(str)
}

func (s *commentStyle) lineCommentAt(code string, i int) int {
	for _, marker := range s.line {
		if !strings.HasPrefix(code[i:], marker) {
			continue
		}
		if marker == "#" && i+1 < len(code) && strings.IndexByte(s.hashKeeps, code[i+1]) >= 0 {
			continue
		}
		return len(marker)
	}
	return 0
}

func (s *commentStyle) blockCommentAt(code string, i int) (string, string, bool) {
	for _, b := range s.block {
		if strings.HasPrefix(code[i:], b[0]) {
			return b[0], b[1], true
		}
	}
	return "", "", false
}
