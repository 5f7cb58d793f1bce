package blockdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleDoc = `{"root":{"type":"root","version":1,"children":[
	{"type":"heading","version":1,"tag":"h1","children":[
		{"type":"text","version":1,"text":"Trip Planning"}
	]},
	{"type":"paragraph","version":1,"children":[
		{"type":"text","version":1,"text":"Pack "},
		{"type":"text","version":1,"text":"warm","format":1},
		{"type":"text","version":1,"text":" clothes."}
	]},
	{"type":"list","version":1,"listType":"check","children":[
		{"type":"listitem","version":1,"checked":true,"children":[
			{"type":"text","version":1,"text":"Book flights"}
		]},
		{"type":"listitem","version":1,"checked":false,"children":[
			{"type":"text","version":1,"text":"Reserve hotel"}
		]}
	]},
	{"type":"code","version":1,"language":"go","children":[
		{"type":"text","version":1,"text":"fmt.Println(\"hi\")"}
	]}
]}}`

func TestToMarkdown(t *testing.T) {
	md := ToMarkdown(sampleDoc)

	assert.Contains(t, md, "# Trip Planning")
	assert.Contains(t, md, "Pack **warm** clothes.")
	assert.Contains(t, md, "- [x] Book flights")
	assert.Contains(t, md, "- [ ] Reserve hotel")
	assert.Contains(t, md, "```go")
	assert.Contains(t, md, `fmt.Println("hi")`)
}

func TestToMarkdownPlainTextPassthrough(t *testing.T) {
	plain := "just some notes\nwith two lines"
	assert.Equal(t, plain, ToMarkdown(plain))
}

func TestToMarkdownInvalidJsonFallsBack(t *testing.T) {
	broken := `{"root": not-json`
	assert.Equal(t, broken, ToMarkdown(broken))
}

func TestToHTML(t *testing.T) {
	out := ToHTML(sampleDoc)

	assert.Contains(t, out, "<h1>Trip Planning</h1>")
	assert.Contains(t, out, "<strong>warm</strong>")
	assert.Contains(t, out, "checked")
	assert.Contains(t, out, "<code")
}

func TestToHTMLEscapesPlainText(t *testing.T) {
	out := ToHTML("1 < 2 & 3 > 2")

	assert.Contains(t, out, "<pre>")
	assert.Contains(t, out, "1 &lt; 2 &amp; 3 &gt; 2")
	assert.NotContains(t, out, "1 < 2")
}

func TestToPlainText(t *testing.T) {
	text := ToPlainText(sampleDoc)

	assert.Contains(t, text, "Trip Planning")
	assert.Contains(t, text, "Pack warm clothes.")
	assert.Contains(t, text, "Book flights")
	assert.NotContains(t, text, "#")
	assert.NotContains(t, text, "**")
}

func TestToPlainTextPassthrough(t *testing.T) {
	assert.Equal(t, "hello", ToPlainText("hello"))
}

func TestMarkdownNestedList(t *testing.T) {
	doc := `{"root":{"type":"root","version":1,"children":[
		{"type":"list","version":1,"listType":"bullet","children":[
			{"type":"listitem","version":1,"children":[
				{"type":"text","version":1,"text":"parent"},
				{"type":"list","version":1,"listType":"bullet","children":[
					{"type":"listitem","version":1,"children":[
						{"type":"text","version":1,"text":"child"}
					]}
				]}
			]}
		]}
	]}}`

	md := ToMarkdown(doc)
	assert.Contains(t, md, "- parent")
	assert.Contains(t, md, "  - child")
}

func TestMarkdownLinkAndImage(t *testing.T) {
	doc := `{"root":{"type":"root","version":1,"children":[
		{"type":"paragraph","version":1,"children":[
			{"type":"link","version":1,"url":"https://example.com","children":[
				{"type":"text","version":1,"text":"site"}
			]}
		]},
		{"type":"image","version":1,"src":"https://example.com/a.png","altText":"diagram"}
	]}}`

	md := ToMarkdown(doc)
	assert.Contains(t, md, "[site](https://example.com)")
	assert.Contains(t, md, "![diagram](https://example.com/a.png)")
}
