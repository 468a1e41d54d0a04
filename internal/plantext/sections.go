package plantext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Section is one heading-delimited chunk of a plan, for display only.
type Section struct {
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

var markdown = goldmark.New()

// SplitSections splits plan text at every top-level heading and renders each
// section body to HTML. The top level is the shallowest heading level used in
// the document, so "# Title" and "### Title" style plans both split per
// section. Text before the first heading and headings with empty bodies are
// dropped.
func SplitSections(planText string) ([]Section, error) {
	src := []byte(planText)
	doc := markdown.Parser().Parse(text.NewReader(src))

	type boundary struct {
		title     string
		lineStart int
		bodyStart int
		level     int
	}

	var headings []boundary
	topLevel := 0
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Lines().Len() == 0 {
			continue
		}
		first := h.Lines().At(0)
		last := h.Lines().At(h.Lines().Len() - 1)
		headings = append(headings, boundary{
			title:     headingTitle(h, src),
			lineStart: lineStart(src, first.Start),
			bodyStart: lineEnd(src, last.Stop),
			level:     h.Level,
		})
		if topLevel == 0 || h.Level < topLevel {
			topLevel = h.Level
		}
	}

	var top []boundary
	for _, h := range headings {
		if h.level == topLevel {
			top = append(top, h)
		}
	}

	sections := make([]Section, 0, len(top))
	for i, h := range top {
		end := len(src)
		if i+1 < len(top) {
			end = top[i+1].lineStart
		}
		body := strings.TrimSpace(skipSetextUnderline(string(src[h.bodyStart:end])))
		if h.title == "" || body == "" {
			continue
		}

		var buf bytes.Buffer
		if err := markdown.Convert([]byte(body), &buf); err != nil {
			return nil, fmt.Errorf("render section %q: %w", h.title, err)
		}
		sections = append(sections, Section{
			Title:    h.title,
			Markdown: body,
			HTML:     buf.String(),
		})
	}
	return sections, nil
}

func headingTitle(h *ast.Heading, src []byte) string {
	var sb strings.Builder
	lines := h.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
	return strings.TrimSpace(sb.String())
}

func lineStart(src []byte, offset int) int {
	if i := bytes.LastIndexByte(src[:offset], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

func lineEnd(src []byte, offset int) int {
	if offset >= len(src) {
		return len(src)
	}
	if i := bytes.IndexByte(src[offset:], '\n'); i >= 0 {
		return offset + i + 1
	}
	return len(src)
}

// skipSetextUnderline drops a leading "===" or "---" line left behind by
// setext-style headings.
func skipSetextUnderline(body string) string {
	first, rest, _ := strings.Cut(body, "\n")
	underline := strings.TrimSpace(first)
	if underline == "" {
		return body
	}
	if strings.Trim(underline, "=") == "" || strings.Trim(underline, "-") == "" {
		return rest
	}
	return body
}
