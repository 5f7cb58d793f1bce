package search

import (
	"strings"
)

// SearchFilters holds the extracted filters and the remaining clean query
type SearchFilters struct {
	FolderName  string
	NoteTitle   string
	TagName     string
	SearchQuery string // The remaining text to search in Content/Title
}

// ParseQuery extracts slash commands from the raw query string
// Supported:
// /in:<term> OR /folder:<term> -> Filter by Folder Name
// /note:<term> -> Filter by Note Title
// /tag:<term> -> Filter by Tag Name
// <text> -> Remaining text is the SearchQuery
func ParseQuery(raw string) SearchFilters {
	filters := SearchFilters{}
	parts := strings.Fields(raw)
	var cleanParts []string

	for _, part := range parts {
		lowerPart := strings.ToLower(part)

		if strings.HasPrefix(lowerPart, "/in:") {
			filters.FolderName = strings.TrimPrefix(lowerPart, "/in:")
		} else if strings.HasPrefix(lowerPart, "/folder:") {
			// Alias for /in:
			filters.FolderName = strings.TrimPrefix(lowerPart, "/folder:")
		} else if strings.HasPrefix(lowerPart, "/note:") {
			filters.NoteTitle = strings.TrimPrefix(lowerPart, "/note:")
		} else if strings.HasPrefix(lowerPart, "/tag:") {
			filters.TagName = strings.TrimPrefix(lowerPart, "/tag:")
		} else {
			cleanParts = append(cleanParts, part)
		}
	}

	filters.SearchQuery = strings.Join(cleanParts, " ")
	return filters
}
