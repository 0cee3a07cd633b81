package subjectstore

import (
	dbmodels "console-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Subject) (string, error)
	GetByID(scopeID, subjectID string) (rec *dbmodels.Subject, err error)
	GetList(scopeID string, page, limit int) (list []dbmodels.Subject, err error)
	Count(scopeID string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Subject) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(scopeID, subjectID string) (rec *dbmodels.Subject, err error) {
	err = i.db.Model(dbmodels.Subject{}).
		Where("id = ?", subjectID).
		Where("scope_id = ?", scopeID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetList(scopeID string, page, limit int) (list []dbmodels.Subject, err error) {
	tx := i.db.Model(dbmodels.Subject{})
	if page > 0 && limit > 0 {
		tx.Limit(limit).Offset((page - 1) * limit)
	}
	err = tx.
		Where("scope_id = ?", scopeID).
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Count(scopeID string) (int64, error) {
	var rowCount int64
	err := i.db.Model(dbmodels.Subject{}).
		Where("scope_id = ?", scopeID).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}
