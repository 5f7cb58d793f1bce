package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteTitleKeepsExplicitTitle(t *testing.T) {
	assert.Equal(t, "Meeting notes", noteTitle("Meeting notes", "irrelevant"))
	assert.Equal(t, "Trimmed", noteTitle("  Trimmed  ", ""))
}

func TestNoteTitleFallsBackToFirstLine(t *testing.T) {
	assert.Equal(t, "Groceries", noteTitle("", "Groceries\nmilk\neggs"))
	assert.Equal(t, "Groceries", noteTitle("   ", "\n\n  Groceries  \nmilk"))
}

func TestNoteTitleUntitledWhenEmpty(t *testing.T) {
	assert.Equal(t, "Untitled", noteTitle("", ""))
	assert.Equal(t, "Untitled", noteTitle(" ", "   \n  "))
}
