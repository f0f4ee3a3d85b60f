package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByPatientID struct {
	PatientID string
}

func (s ByPatientID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("patient_id = ?", s.PatientID)
}

type BySessionNoteID struct {
	SessionNoteID uuid.UUID
}

func (s BySessionNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_note_id = ?", s.SessionNoteID)
}

type ByRiskLevel struct {
	Level string
}

func (s ByRiskLevel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("risk_level = ?", s.Level)
}
