// Package codeview renders shader sources for the gallery's code pane with
// chroma syntax highlighting.
package codeview

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gekko3d/gallery/core"
)

const (
	DefaultStyle  = "monokai"
	DefaultFormat = "terminal256"
)

// Highlighter tokenises GLSL and formats it with a chroma style.
type Highlighter struct {
	StyleName  string
	FormatName string

	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

// New returns a GLSL highlighter. Unknown style or format names fall back to
// chroma's defaults; "noop" formats plain text.
func New(style, format string) *Highlighter {
	if style == "" {
		style = DefaultStyle
	}
	if format == "" {
		format = DefaultFormat
	}
	lexer := lexers.Get("glsl")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &Highlighter{
		StyleName:  style,
		FormatName: format,
		lexer:      chroma.Coalesce(lexer),
		style:      styles.Get(style),
		formatter:  formatters.Get(format),
	}
}

// Styles lists the registered style names.
func Styles() []string {
	return styles.Names()
}

func (h *Highlighter) Highlight(src string) (string, error) {
	it, err := h.lexer.Tokenise(nil, src)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := h.formatter.Format(&sb, h.style, it); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Render lays out the code pane: the shader name, then the vertex and
// fragment sources. A hidden pane renders as "".
func (h *Highlighter) Render(cv core.CodeView) (string, error) {
	if !cv.Visible {
		return "", nil
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "== %s ==\n", cv.ShaderName)
	for _, part := range []struct{ title, src string }{
		{"vertex", cv.VertexSource},
		{"fragment", cv.FragmentSource},
	} {
		fmt.Fprintf(&sb, "-- %s --\n", part.title)
		out, err := h.Highlight(part.src)
		if err != nil {
			return "", fmt.Errorf("%s %s source: %w", cv.ShaderName, part.title, err)
		}
		sb.WriteString(out)
		if !strings.HasSuffix(out, "\n") {
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}
