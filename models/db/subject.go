package dbmodels

import (
	"console-backend/models"
	subjectapimodels "console-backend/models/api/subject"
	"time"
)

type Subject struct {
	BaseModel
	ScopeID     string               `gorm:"type:varchar(36);index"`
	Name        string               `gorm:"type:varchar(255)"`
	DisplayName string               `gorm:"type:varchar(255)"`
	Email       string               `gorm:"type:varchar(255)"`
	Type        models.SubjectType   `gorm:"type:varchar(50)"`
	Status      models.SubjectStatus `gorm:"type:varchar(50)"`
}

func (r Subject) ToModel() subjectapimodels.SubjectView {
	return subjectapimodels.SubjectView{
		ID: r.ID,
		SubjectData: subjectapimodels.SubjectData{
			Name:        r.Name,
			DisplayName: r.DisplayName,
			Email:       r.Email,
			Type:        string(r.Type),
			Status:      string(r.Status),
		},
		TypeName:   r.Type.ToHuman(),
		StatusName: r.Status.ToHuman(),
		ScopeID:    r.ScopeID,
		CreatedAt:  r.CreatedAt,
	}
}

// RoleSubject субъект с датой назначения роли
type RoleSubject struct {
	Subject
	AssignedAt time.Time
}

func (r RoleSubject) ToModel() subjectapimodels.SubjectView {
	view := r.Subject.ToModel()
	assignedAt := r.AssignedAt
	view.AssignedAt = &assignedAt
	return view
}

func (r RoleSubject) GetName() string {
	if r.DisplayName != "" {
		return r.DisplayName
	}
	return r.Name
}
