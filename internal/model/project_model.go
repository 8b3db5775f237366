package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SavedProject struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	ToolSlug       string         `gorm:"type:varchar(100);not null;index"`
	Title          string         `gorm:"type:varchar(255);not null"`
	InputSnapshot  datatypes.JSON `gorm:"type:jsonb"`
	OutputSnapshot datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
}

func (SavedProject) TableName() string {
	return "saved_projects"
}
