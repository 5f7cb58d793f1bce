package blockdoc

import (
	"encoding/json"
	"strings"
)

// ToPlainText strips all structure from a block document, yielding the raw
// text used for excerpts and search previews. Non-document content passes
// through unchanged.
func ToPlainText(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, `{"root":`) {
		return content
	}

	var root DocumentRoot
	if err := json.Unmarshal([]byte(trimmed), &root); err != nil {
		return content
	}

	var sb strings.Builder
	collectText(root.Root, &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(node Node, sb *strings.Builder) {
	if node.Type == "text" {
		sb.WriteString(node.Text)
		return
	}
	if node.Type == "linebreak" {
		sb.WriteString("\n")
		return
	}

	isBlock := node.Type == "paragraph" || node.Type == "heading" ||
		node.Type == "quote" || node.Type == "listitem" || node.Type == "code"

	for _, child := range node.Children {
		collectText(child, sb)
	}

	if isBlock {
		sb.WriteString("\n")
	}
}
