package blockdoc

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// HTMLRenderer converts stored block document JSON to a standalone HTML
// fragment, used by the note export endpoint.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

func (r *HTMLRenderer) Render(jsonContent string) (string, error) {
	var root DocumentRoot
	if err := json.Unmarshal([]byte(jsonContent), &root); err != nil {
		return "", fmt.Errorf("failed to parse document json: %w", err)
	}

	var sb strings.Builder
	r.walkNode(root.Root, &sb)
	return sb.String(), nil
}

// ToHTML renders content as HTML, falling back to an escaped <pre> block for
// plain-text notes that never went through the block editor.
func ToHTML(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, `{"root":`) {
		return "<pre>" + html.EscapeString(content) + "</pre>"
	}

	r := NewHTMLRenderer()
	out, err := r.Render(trimmed)
	if err != nil {
		return "<pre>" + html.EscapeString(content) + "</pre>"
	}
	return out
}

func (r *HTMLRenderer) walkNode(node Node, sb *strings.Builder) {
	switch node.Type {
	case "root":
		for _, child := range node.Children {
			r.walkNode(child, sb)
		}

	case "paragraph":
		align := blockAlignment(node)
		if align != "" {
			sb.WriteString(fmt.Sprintf("<p style=\"text-align:%s\">", align))
		} else {
			sb.WriteString("<p>")
		}
		for _, child := range node.Children {
			r.walkNode(child, sb)
		}
		sb.WriteString("</p>\n")

	case "heading":
		tag := node.Tag
		if len(tag) != 2 || tag[0] != 'h' || tag[1] < '1' || tag[1] > '6' {
			tag = "h1"
		}
		sb.WriteString("<" + tag + ">")
		for _, child := range node.Children {
			r.walkNode(child, sb)
		}
		sb.WriteString("</" + tag + ">\n")

	case "quote":
		sb.WriteString("<blockquote>")
		for _, child := range node.Children {
			r.walkNode(child, sb)
		}
		sb.WriteString("</blockquote>\n")

	case "code":
		sb.WriteString("<pre><code")
		if node.Language != "" {
			sb.WriteString(fmt.Sprintf(" class=\"language-%s\"", node.Language))
		}
		sb.WriteString(">")
		for _, child := range node.Children {
			if child.Type == "text" {
				sb.WriteString(html.EscapeString(child.Text))
			} else if child.Type == "linebreak" {
				sb.WriteString("\n")
			}
		}
		sb.WriteString("</code></pre>\n")

	case "text":
		r.handleText(node, sb)

	case "list":
		r.handleList(node, sb)

	case "listitem":
		for _, child := range node.Children {
			r.walkNode(child, sb)
		}

	case "link":
		sb.WriteString(fmt.Sprintf("<a href=\"%s\">", html.EscapeString(node.URL)))
		for _, child := range node.Children {
			r.walkNode(child, sb)
		}
		sb.WriteString("</a>")

	case "image":
		sb.WriteString(fmt.Sprintf("<img src=\"%s\" alt=\"%s\">\n",
			html.EscapeString(node.Src), html.EscapeString(node.AltText)))

	case "table":
		r.handleTable(node, sb)

	case "linebreak":
		sb.WriteString("<br>")

	case "horizontalrule":
		sb.WriteString("<hr>\n")

	default:
		for _, child := range node.Children {
			r.walkNode(child, sb)
		}
	}
}

func (r *HTMLRenderer) handleText(node Node, sb *strings.Builder) {
	fmtInt := formatBits(node)

	var open, closing []string
	if fmtInt&FormatCode != 0 {
		open = append(open, "<code>")
		closing = append([]string{"</code>"}, closing...)
	}
	if fmtInt&FormatBold != 0 {
		open = append(open, "<strong>")
		closing = append([]string{"</strong>"}, closing...)
	}
	if fmtInt&FormatItalic != 0 {
		open = append(open, "<em>")
		closing = append([]string{"</em>"}, closing...)
	}
	if fmtInt&FormatUnderline != 0 {
		open = append(open, "<u>")
		closing = append([]string{"</u>"}, closing...)
	}
	if fmtInt&FormatStrikethrough != 0 {
		open = append(open, "<s>")
		closing = append([]string{"</s>"}, closing...)
	}
	if fmtInt&FormatHighlight != 0 {
		open = append(open, "<mark>")
		closing = append([]string{"</mark>"}, closing...)
	}

	styles := ParseStyle(node.Style)
	spanTag := styles.BuildAnnotatedOpenTag()
	if spanTag != "" {
		sb.WriteString(spanTag)
	}

	for _, t := range open {
		sb.WriteString(t)
	}
	sb.WriteString(html.EscapeString(node.Text))
	for _, t := range closing {
		sb.WriteString(t)
	}

	if spanTag != "" {
		sb.WriteString("</span>")
	}
}

func (r *HTMLRenderer) handleList(node Node, sb *strings.Builder) {
	tag := "ul"
	if node.ListType == "number" {
		tag = "ol"
	}

	sb.WriteString("<" + tag + ">\n")
	for _, child := range node.Children {
		if child.Type != "listitem" {
			continue
		}
		sb.WriteString("<li>")
		if node.ListType == "check" {
			if child.Checked {
				sb.WriteString("<input type=\"checkbox\" checked disabled> ")
			} else {
				sb.WriteString("<input type=\"checkbox\" disabled> ")
			}
		}
		for _, grandChild := range child.Children {
			r.walkNode(grandChild, sb)
		}
		sb.WriteString("</li>\n")
	}
	sb.WriteString("</" + tag + ">\n")
}

func (r *HTMLRenderer) handleTable(node Node, sb *strings.Builder) {
	sb.WriteString("<table>\n")
	for _, row := range node.Children {
		if row.Type != "tablerow" {
			continue
		}
		sb.WriteString("<tr>")
		for _, cell := range row.Children {
			cellTag := "td"
			if cell.HeaderState == 1 {
				cellTag = "th"
			}
			sb.WriteString("<" + cellTag + ">")
			for _, content := range cell.Children {
				r.walkNode(content, sb)
			}
			sb.WriteString("</" + cellTag + ">")
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</table>\n")
}
