package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SessionNote struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PatientId string         `gorm:"type:varchar(64);not null;index"`
	RawInput  string         `gorm:"type:text"`
	Result    datatypes.JSON `gorm:"type:jsonb"`
	RiskLevel string         `gorm:"type:varchar(16);index"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (SessionNote) TableName() string {
	return "session_notes"
}
