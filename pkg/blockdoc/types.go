package blockdoc

// DocumentRoot represents the top-level structure of a stored document.
type DocumentRoot struct {
	Root Node `json:"root"`
}

// Node represents any node in the block document tree.
// Nullable fields use omitempty so stored JSON stays compact.
type Node struct {
	Type     string `json:"type"`
	Version  int    `json:"version"`
	Children []Node `json:"children,omitempty"`

	// Text specific
	Text   string      `json:"text,omitempty"`
	Format interface{} `json:"format,omitempty"` // int (bitmask) on text nodes, string (alignment) on blocks
	Style  string      `json:"style,omitempty"`
	Mode   string      `json:"mode,omitempty"`
	Detail int         `json:"detail,omitempty"`

	// Block specific
	Direction  string `json:"direction,omitempty"`
	Indent     int    `json:"indent,omitempty"`
	TextFormat int    `json:"textFormat,omitempty"`

	// Heading specific
	Tag string `json:"tag,omitempty"` // h1..h6

	// Link specific
	URL    string `json:"url,omitempty"`
	Rel    string `json:"rel,omitempty"`
	Target string `json:"target,omitempty"`
	Title  string `json:"title,omitempty"`

	// List specific
	ListType string `json:"listType,omitempty"` // check, bullet, number
	Start    int    `json:"start,omitempty"`

	// ListItem specific
	Checked bool `json:"checked,omitempty"`
	Value   int  `json:"value,omitempty"`

	// Code block specific
	Language string `json:"language,omitempty"`

	// Image specific
	Src     string `json:"src,omitempty"`
	AltText string `json:"altText,omitempty"`

	// Table specific
	ColSpan     int `json:"colSpan,omitempty"`
	RowSpan     int `json:"rowSpan,omitempty"`
	HeaderState int `json:"headerState,omitempty"` // 1 = header, 0 = normal
}

// Constants for the text format bitmask
const (
	FormatBold          = 1
	FormatItalic        = 2
	FormatStrikethrough = 4
	FormatUnderline     = 8
	FormatCode          = 16
	FormatSubscript     = 32
	FormatSuperscript   = 64
	FormatHighlight     = 1 << 7
)

// formatBits normalizes the Format field, which decodes as float64 from JSON.
func formatBits(node Node) int {
	switch f := node.Format.(type) {
	case float64:
		return int(f)
	case int:
		return f
	}
	return 0
}

// blockAlignment returns the alignment string when a block carries one.
func blockAlignment(node Node) string {
	if s, ok := node.Format.(string); ok && s != "" && s != "left" {
		return s
	}
	return ""
}
