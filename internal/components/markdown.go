package components

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// Markdown converts page prose into nodes wrapped in a div of the given class.
// Raw HTML in the source is not passed through.
func Markdown(class, source string) (*html.Node, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	wrapper := El(atom.Div, A("class", class))
	nodes, err := html.ParseFragment(&buf, wrapper)
	if err != nil {
		return nil, fmt.Errorf("parsing rendered markdown: %w", err)
	}
	Append(wrapper, nodes...)
	return wrapper, nil
}

// CodeBlock renders source as a highlighted fenced block in lang.
func CodeBlock(lang, source string) (*html.Node, error) {
	return Markdown("code-block", "```"+lang+"\n"+source+"\n```\n")
}
