package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcerptShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "short note", Excerpt("short note", 50))
}

func TestExcerptTrimsWhitespace(t *testing.T) {
	assert.Equal(t, "padded", Excerpt("  padded  ", 50))
}

func TestExcerptTruncatesWithEllipsis(t *testing.T) {
	long := strings.Repeat("abcde ", 20)
	out := Excerpt(long, 30)

	assert.True(t, strings.HasSuffix(out, "…"))
	assert.LessOrEqual(t, len([]rune(out)), 31)
}

func TestExcerptBreaksAtWordBoundary(t *testing.T) {
	out := Excerpt("the quick brown fox jumps over the lazy dog", 25)

	// The 25-rune cut ends right after "jumps"; the break backs up to the
	// last space so no partial word survives
	assert.Equal(t, "the quick brown fox…", out)
}

func TestExcerptMultibyteWordBoundary(t *testing.T) {
	// The space sits at rune 4 but byte 12; a byte-based boundary check
	// would trim the excerpt down to the first word
	out := Excerpt("日本語語 "+strings.Repeat("x", 40), 12)

	assert.True(t, strings.HasSuffix(out, "…"))
	assert.Equal(t, 13, len([]rune(out)))
	assert.Contains(t, out, "xxxxxxx")
}

func TestExcerptMultibyteSafe(t *testing.T) {
	out := Excerpt(strings.Repeat("日本語テキスト", 10), 12)

	assert.True(t, strings.HasSuffix(out, "…"))
	assert.Equal(t, 13, len([]rune(out)))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "Title", FirstLine("Title\nbody text"))
	assert.Equal(t, "Title", FirstLine("\n\n  Title  \nrest"))
	assert.Equal(t, "", FirstLine("   \n\n"))
}
