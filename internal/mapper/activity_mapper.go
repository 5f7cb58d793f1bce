package mapper

import (
	"encoding/json"

	"notevault-be/internal/entity"
	"notevault-be/internal/model"

	"gorm.io/datatypes"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.ActivityEvent) *entity.ActivityEvent {
	if a == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(a.Metadata) > 0 {
		// Malformed rows degrade to nil metadata rather than failing the read
		_ = json.Unmarshal(a.Metadata, &metadata)
	}

	return &entity.ActivityEvent{
		Id:         a.Id,
		UserId:     a.UserId,
		Action:     a.Action,
		EntityType: a.EntityType,
		EntityId:   a.EntityId,
		Metadata:   metadata,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *ActivityMapper) ToModel(a *entity.ActivityEvent) *model.ActivityEvent {
	if a == nil {
		return nil
	}

	var metadata datatypes.JSON
	if a.Metadata != nil {
		if raw, err := json.Marshal(a.Metadata); err == nil {
			metadata = raw
		}
	}

	return &model.ActivityEvent{
		Id:         a.Id,
		UserId:     a.UserId,
		Action:     a.Action,
		EntityType: a.EntityType,
		EntityId:   a.EntityId,
		Metadata:   metadata,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *ActivityMapper) ToEntities(events []*model.ActivityEvent) []*entity.ActivityEvent {
	entities := make([]*entity.ActivityEvent, len(events))
	for i, a := range events {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
