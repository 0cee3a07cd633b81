package accessstore

import (
	dbmodels "console-backend/models/db"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrDuplicate субъект уже назначен на роль (нарушение idx_access_role_subject)
var ErrDuplicate = errors.New("назначение роли уже существует")

const uniqueViolationCode = "23505"

type Provider interface {
	Assign(rec dbmodels.AccessRole) (string, error)
	Unassign(scopeID, roleID, subjectID string) (bool, error)
	Exist(roleID, subjectID string) (bool, error)
	ListSubjects(scopeID, roleID string, page, limit int) (list []dbmodels.RoleSubject, err error)
	CountSubjects(scopeID, roleID string) (int64, error)
	DeleteByRole(roleID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Assign(rec dbmodels.AccessRole) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrDuplicate
		}
		return "", err
	}
	return rec.ID, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}
	return false
}

func (i impl) Unassign(scopeID, roleID, subjectID string) (bool, error) {
	tx := i.db.
		Where("scope_id = ?", scopeID).
		Where("role_id = ?", roleID).
		Where("subject_id = ?", subjectID).
		Delete(&dbmodels.AccessRole{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) Exist(roleID, subjectID string) (bool, error) {
	err := i.db.
		Where("role_id = ?", roleID).
		Where("subject_id = ?", subjectID).
		First(&dbmodels.AccessRole{}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) ListSubjects(scopeID, roleID string, page, limit int) (list []dbmodels.RoleSubject, err error) {
	tx := i.subjectsQuery(scopeID, roleID)
	if page > 0 && limit > 0 {
		tx = tx.Limit(limit).Offset((page - 1) * limit)
	}
	err = tx.
		Select("subjects.*, access_roles.created_at as assigned_at").
		Order("subjects.name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountSubjects(scopeID, roleID string) (int64, error) {
	var rowCount int64
	err := i.subjectsQuery(scopeID, roleID).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) DeleteByRole(roleID string) error {
	return i.db.
		Where("role_id = ?", roleID).
		Delete(&dbmodels.AccessRole{}).
		Error
}

func (i impl) subjectsQuery(scopeID, roleID string) *gorm.DB {
	return i.db.
		Table("subjects").
		Joins("join access_roles on access_roles.subject_id = subjects.id").
		Where("access_roles.role_id = ?", roleID).
		Where("access_roles.scope_id = ?", scopeID)
}
