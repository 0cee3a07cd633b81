package subjectapimodels

import (
	"console-backend/models"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New()

type SubjectData struct {
	Name        string `json:"name" validate:"required,max=255"`         // Логин субъекта
	DisplayName string `json:"display_name" validate:"max=255"`          // Отображаемое имя
	Email       string `json:"email" validate:"omitempty,email,max=255"` // Email
	Type        string `json:"type"`                                     // Тип субъекта
	Status      string `json:"status"`                                   // Статус субъекта
}

type CreateSubject struct {
	SubjectData
}

func (r SubjectData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано имя субъекта")
	}
	if err := validate.Struct(r); err != nil {
		return errors.Wrap(err, "некорректные данные субъекта")
	}
	if !r.GetType().IsValid() {
		return errors.Errorf("некорректный тип субъекта: %v", r.Type)
	}
	if !r.GetStatus().IsValid() {
		return errors.Errorf("некорректный статус субъекта: %v", r.Status)
	}
	return nil
}

func (r SubjectData) GetType() models.SubjectType {
	if r.Type == "" {
		return models.SubjectTypeUser
	}
	return models.SubjectType(r.Type)
}

func (r SubjectData) GetStatus() models.SubjectStatus {
	if r.Status == "" {
		return models.SubjectEnabledStatus
	}
	return models.SubjectStatus(r.Status)
}

type SubjectView struct {
	ID string `json:"id"`
	SubjectData
	TypeName   string     `json:"type_name"`
	StatusName string     `json:"status_name"`
	ScopeID    string     `json:"scope_id"`
	CreatedAt  time.Time  `json:"created_at"`
	AssignedAt *time.Time `json:"assigned_at,omitempty"` // Дата назначения роли
}
