package dbmodels

// AccessRole привязка субъекта к роли
type AccessRole struct {
	BaseModel
	ScopeID   string   `gorm:"type:varchar(36);index"`
	RoleID    string   `gorm:"type:uuid;uniqueIndex:idx_access_role_subject"`
	Role      *Role    `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
	SubjectID string   `gorm:"type:uuid;uniqueIndex:idx_access_role_subject"`
	Subject   *Subject `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE"`
}
