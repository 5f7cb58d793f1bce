package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQueryPlainText(t *testing.T) {
	f := ParseQuery("meeting notes from monday")

	assert.Equal(t, "meeting notes from monday", f.SearchQuery)
	assert.Empty(t, f.FolderName)
	assert.Empty(t, f.NoteTitle)
	assert.Empty(t, f.TagName)
}

func TestParseQueryFolderFilter(t *testing.T) {
	f := ParseQuery("/in:work quarterly report")

	assert.Equal(t, "work", f.FolderName)
	assert.Equal(t, "quarterly report", f.SearchQuery)
}

func TestParseQueryFolderAlias(t *testing.T) {
	f := ParseQuery("/folder:personal recipes")

	assert.Equal(t, "personal", f.FolderName)
	assert.Equal(t, "recipes", f.SearchQuery)
}

func TestParseQueryNoteAndTag(t *testing.T) {
	f := ParseQuery("/note:roadmap /tag:planning deadline")

	assert.Equal(t, "roadmap", f.NoteTitle)
	assert.Equal(t, "planning", f.TagName)
	assert.Equal(t, "deadline", f.SearchQuery)
}

func TestParseQueryCaseInsensitivePrefix(t *testing.T) {
	f := ParseQuery("/TAG:Urgent fix")

	assert.Equal(t, "urgent", f.TagName)
	assert.Equal(t, "fix", f.SearchQuery)
}

func TestParseQueryOnlyFilters(t *testing.T) {
	f := ParseQuery("/in:archive /tag:old")

	assert.Equal(t, "archive", f.FolderName)
	assert.Equal(t, "old", f.TagName)
	assert.Empty(t, f.SearchQuery)
}

func TestParseQueryEmpty(t *testing.T) {
	f := ParseQuery("")

	assert.Empty(t, f.SearchQuery)
	assert.Empty(t, f.FolderName)
}
