package mapper

import (
	"smart-tools-be/internal/entity"
	"smart-tools-be/internal/model"
)

type AnalyticsMapper struct{}

func NewAnalyticsMapper() *AnalyticsMapper {
	return &AnalyticsMapper{}
}

func (m *AnalyticsMapper) ToEntity(e *model.AnalyticsEvent) *entity.AnalyticsEvent {
	if e == nil {
		return nil
	}
	return &entity.AnalyticsEvent{
		Id:         e.Id,
		UserId:     e.UserId,
		Type:       e.Type,
		ToolSlug:   e.ToolSlug,
		Payload:    fromJSON(e.Payload),
		OccurredAt: e.OccurredAt,
	}
}

func (m *AnalyticsMapper) ToModel(e *entity.AnalyticsEvent) *model.AnalyticsEvent {
	if e == nil {
		return nil
	}
	return &model.AnalyticsEvent{
		Id:         e.Id,
		UserId:     e.UserId,
		Type:       e.Type,
		ToolSlug:   e.ToolSlug,
		Payload:    toJSON(e.Payload),
		OccurredAt: e.OccurredAt,
	}
}
