package mapper

import (
	"encoding/json"
	"time"

	"clinical-notes-be/internal/entity"
	"clinical-notes-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SessionNoteMapper struct{}

func NewSessionNoteMapper() *SessionNoteMapper {
	return &SessionNoteMapper{}
}

func (m *SessionNoteMapper) ToEntity(n *model.SessionNote) *entity.SessionNote {
	if n == nil {
		return nil
	}

	var deletedAt *time.Time
	if n.DeletedAt.Valid {
		t := n.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	return &entity.SessionNote{
		Id:        n.Id,
		PatientId: n.PatientId,
		RawInput:  n.RawInput,
		Result:    json.RawMessage(n.Result),
		RiskLevel: n.RiskLevel,
		CreatedAt: n.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: n.DeletedAt.Valid,
	}
}

func (m *SessionNoteMapper) ToModel(n *entity.SessionNote) *model.SessionNote {
	if n == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if n.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *n.DeletedAt, Valid: true}
	} else if n.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	return &model.SessionNote{
		Id:        n.Id,
		PatientId: n.PatientId,
		RawInput:  n.RawInput,
		Result:    datatypes.JSON(n.Result),
		RiskLevel: n.RiskLevel,
		CreatedAt: n.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *SessionNoteMapper) ToEntities(notes []*model.SessionNote) []*entity.SessionNote {
	entities := make([]*entity.SessionNote, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

func (m *SessionNoteMapper) ToModels(notes []*entity.SessionNote) []*model.SessionNote {
	models := make([]*model.SessionNote, len(notes))
	for i, n := range notes {
		models[i] = m.ToModel(n)
	}
	return models
}
