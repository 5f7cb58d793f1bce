package dto

import "time"

type DailyCountPoint struct {
	Day   time.Time `json:"day"`
	Count int64     `json:"count"`
}

type StatsOverviewResponse struct {
	TotalNotes        int64             `json:"total_notes"`
	TotalFolders      int64             `json:"total_folders"`
	TotalTags         int64             `json:"total_tags"`
	TotalComments     int64             `json:"total_comments"`
	TrashedNotes      int64             `json:"trashed_notes"`
	PinnedNotes       int64             `json:"pinned_notes"`
	NotesCreatedDaily []DailyCountPoint `json:"notes_created_daily"`
	NotesUpdatedDaily []DailyCountPoint `json:"notes_updated_daily"`
	RecentActivity    []ActivityLogItem  `json:"recent_activity"`
	GeneratedAt       time.Time         `json:"generated_at"`
}

type ActivityLogItem struct {
	Action     string                 `json:"action"`
	EntityType string                 `json:"entity_type"`
	EntityId   string                 `json:"entity_id,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

type ActivityLogResponse struct {
	Items []ActivityLogItem `json:"items"`
	Total int64             `json:"total"`
}
