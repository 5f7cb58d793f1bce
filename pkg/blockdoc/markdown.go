package blockdoc

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MarkdownRenderer converts stored block document JSON to Markdown.
type MarkdownRenderer struct{}

func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts a block document JSON string to Markdown.
func (r *MarkdownRenderer) Render(jsonContent string) (string, error) {
	var root DocumentRoot
	if err := json.Unmarshal([]byte(jsonContent), &root); err != nil {
		return "", fmt.Errorf("failed to parse document json: %w", err)
	}

	var sb strings.Builder
	r.walkNode(root.Root, &sb, 0)
	return sb.String(), nil
}

// ToMarkdown attempts to render content as a block document; if it is not
// one (plain text notes predate the editor), the original string comes back.
func ToMarkdown(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, `{"root":`) {
		return content
	}

	r := NewMarkdownRenderer()
	md, err := r.Render(trimmed)
	if err != nil {
		return content
	}
	return md
}

func (r *MarkdownRenderer) walkNode(node Node, sb *strings.Builder, depth int) {
	switch node.Type {
	case "root":
		for _, child := range node.Children {
			r.walkNode(child, sb, depth)
			sb.WriteString("\n")
		}

	case "paragraph":
		r.handleParagraph(node, sb, depth)

	case "heading":
		r.handleHeading(node, sb)

	case "quote":
		sb.WriteString("> ")
		for _, child := range node.Children {
			r.walkNode(child, sb, depth)
		}
		sb.WriteString("\n")

	case "code":
		r.handleCodeBlock(node, sb)

	case "text":
		r.handleText(node, sb)

	case "list":
		r.handleList(node, sb, depth)

	// ListItems are handled by handleList to ensure correct marking
	case "listitem":
		for _, child := range node.Children {
			r.walkNode(child, sb, depth)
		}

	case "table":
		r.handleTable(node, sb)

	case "link":
		r.handleLink(node, sb)

	case "image":
		sb.WriteString(fmt.Sprintf("![%s](%s)\n", node.AltText, node.Src))

	case "horizontalrule":
		sb.WriteString("---\n")

	default:
		for _, child := range node.Children {
			r.walkNode(child, sb, depth)
		}
	}
}

func (r *MarkdownRenderer) handleParagraph(node Node, sb *strings.Builder, depth int) {
	align := blockAlignment(node)

	if align != "" {
		sb.WriteString(fmt.Sprintf("<div align=\"%s\">", align))
	}

	for _, child := range node.Children {
		r.walkNode(child, sb, depth)
	}

	if align != "" {
		sb.WriteString("</div>")
	}
	sb.WriteString("\n")
}

func (r *MarkdownRenderer) handleHeading(node Node, sb *strings.Builder) {
	level := 1
	if len(node.Tag) == 2 && node.Tag[0] == 'h' {
		level = int(node.Tag[1] - '0')
		if level < 1 || level > 6 {
			level = 1
		}
	}

	sb.WriteString(strings.Repeat("#", level))
	sb.WriteString(" ")
	for _, child := range node.Children {
		r.walkNode(child, sb, 0)
	}
	sb.WriteString("\n")
}

func (r *MarkdownRenderer) handleCodeBlock(node Node, sb *strings.Builder) {
	sb.WriteString("```")
	sb.WriteString(node.Language)
	sb.WriteString("\n")
	for _, child := range node.Children {
		if child.Type == "text" {
			sb.WriteString(child.Text)
		} else if child.Type == "linebreak" {
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n```\n")
}

func (r *MarkdownRenderer) handleText(node Node, sb *strings.Builder) {
	text := node.Text

	styles := ParseStyle(node.Style)
	openTag := styles.BuildAnnotatedOpenTag()
	if openTag != "" {
		sb.WriteString(openTag)
	}

	fmtInt := formatBits(node)

	isBold := (fmtInt & FormatBold) != 0
	isItalic := (fmtInt & FormatItalic) != 0
	isUnderline := (fmtInt & FormatUnderline) != 0
	isCode := (fmtInt & FormatCode) != 0
	isStrike := (fmtInt & FormatStrikethrough) != 0

	// Wrapper order: Code > Bold > Italic > Underline > Strike.
	// Underline has no portable Markdown form, HTML <u> is used.
	if isCode {
		sb.WriteString("`")
	}
	if isBold {
		sb.WriteString("**")
	}
	if isItalic {
		sb.WriteString("_")
	}
	if isUnderline {
		sb.WriteString("<u>")
	}
	if isStrike {
		sb.WriteString("~~")
	}

	sb.WriteString(text)

	if isStrike {
		sb.WriteString("~~")
	}
	if isUnderline {
		sb.WriteString("</u>")
	}
	if isItalic {
		sb.WriteString("_")
	}
	if isBold {
		sb.WriteString("**")
	}
	if isCode {
		sb.WriteString("`")
	}

	if openTag != "" {
		sb.WriteString("</span>")
	}
}

func (r *MarkdownRenderer) handleLink(node Node, sb *strings.Builder) {
	sb.WriteString("[")
	for _, child := range node.Children {
		r.walkNode(child, sb, 0)
	}
	sb.WriteString(fmt.Sprintf("](%s)", node.URL))
}

func (r *MarkdownRenderer) handleList(node Node, sb *strings.Builder, depth int) {
	listType := node.ListType
	index := 1
	if node.Start > 0 {
		index = node.Start
	}

	for _, child := range node.Children {
		if child.Type != "listitem" {
			continue
		}

		// Two spaces of indentation per nesting level
		sb.WriteString(strings.Repeat("  ", depth))

		switch listType {
		case "number":
			sb.WriteString(fmt.Sprintf("%d. ", index))
			index++
		case "check":
			if child.Checked {
				sb.WriteString("- [x] ")
			} else {
				sb.WriteString("- [ ] ")
			}
		default:
			sb.WriteString("- ")
		}

		// A nested list appears as a child of the listitem node
		for _, grandChild := range child.Children {
			if grandChild.Type == "list" {
				sb.WriteString("\n")
				r.handleList(grandChild, sb, depth+1)
			} else {
				r.walkNode(grandChild, sb, depth)
			}
		}
		sb.WriteString("\n")
	}
	if depth == 0 {
		sb.WriteString("\n")
	}
}

func (r *MarkdownRenderer) handleTable(node Node, sb *strings.Builder) {
	var rows [][]string
	maxCols := 0

	for _, row := range node.Children {
		if row.Type != "tablerow" {
			continue
		}

		var rowData []string
		for _, cell := range row.Children {
			var cellSb strings.Builder
			for _, content := range cell.Children {
				r.walkNode(content, &cellSb, 0)
			}
			// Newlines inside cells break Markdown tables
			cleanContent := strings.ReplaceAll(cellSb.String(), "\n", " ")
			rowData = append(rowData, cleanContent)
		}
		rows = append(rows, rowData)
		if len(rowData) > maxCols {
			maxCols = len(rowData)
		}
	}

	if len(rows) == 0 {
		return
	}

	// First row doubles as the header
	sb.WriteString("|")
	for i := 0; i < maxCols; i++ {
		if i < len(rows[0]) {
			sb.WriteString(" " + rows[0][i] + " |")
		} else {
			sb.WriteString("  |")
		}
	}
	sb.WriteString("\n")

	sb.WriteString("|")
	for i := 0; i < maxCols; i++ {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")

	for i := 1; i < len(rows); i++ {
		sb.WriteString("|")
		for j := 0; j < maxCols; j++ {
			if j < len(rows[i]) {
				sb.WriteString(" " + rows[i][j] + " |")
			} else {
				sb.WriteString("  |")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}
