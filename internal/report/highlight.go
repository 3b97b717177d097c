package report

import (
	"bytes"
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlight colors an element or fix snippet for the terminal, choosing the
// lexer from the issue's file name. It returns code unchanged on failure.
func Highlight(code, filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		if ext := filepath.Ext(filename); ext != "" {
			lexer = lexers.Match("file" + ext)
		}
	}
	if lexer == nil {
		lexer = lexers.Get("html")
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}
