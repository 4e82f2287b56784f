package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Ordered list
// markers are written back in front of their items because the outline
// levels depend on them.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	doc := &Document{Name: baseName(filename)}

	// prefix is prepended to the first line of the next text block.
	var walk func(n ast.Node, prefix string)
	walk = func(n ast.Node, prefix string) {
		if list, ok := n.(*ast.List); ok {
			num := list.Start
			for item := list.FirstChild(); item != nil; item = item.NextSibling() {
				marker := ""
				if list.IsOrdered() {
					marker = fmt.Sprintf("%d%c ", num, list.Marker)
					num++
				}
				walk(item, marker)
			}
			return
		}

		if lines := n.Lines(); n.Type() == ast.TypeBlock && lines.Len() > 0 {
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				line := strings.TrimRight(string(seg.Value(src)), "\r\n")
				if i == 0 {
					line = prefix + line
				}
				if strings.TrimSpace(line) != "" {
					doc.Lines = append(doc.Lines, line)
				}
			}
			return
		}

		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c, prefix)
			prefix = ""
		}
	}
	walk(root, "")

	return doc, nil
}
