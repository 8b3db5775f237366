package mapper

import (
	"smart-tools-be/internal/entity"
	"smart-tools-be/internal/model"
)

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ToEntity(p *model.SavedProject) *entity.SavedProject {
	if p == nil {
		return nil
	}
	return &entity.SavedProject{
		Id:             p.Id,
		UserId:         p.UserId,
		ToolSlug:       p.ToolSlug,
		Title:          p.Title,
		InputSnapshot:  fromJSON(p.InputSnapshot),
		OutputSnapshot: fromJSON(p.OutputSnapshot),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *ProjectMapper) ToModel(p *entity.SavedProject) *model.SavedProject {
	if p == nil {
		return nil
	}
	return &model.SavedProject{
		Id:             p.Id,
		UserId:         p.UserId,
		ToolSlug:       p.ToolSlug,
		Title:          p.Title,
		InputSnapshot:  toJSON(p.InputSnapshot),
		OutputSnapshot: toJSON(p.OutputSnapshot),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
