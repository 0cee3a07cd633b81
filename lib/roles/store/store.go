package rolestore

import (
	dbmodels "console-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Role) (string, error)
	GetByID(scopeID, roleID string) (rec *dbmodels.Role, err error)
	GetList(scopeID string, page, limit int) (list []dbmodels.Role, err error)
	Count(scopeID string) (int64, error)
	Delete(scopeID, roleID string) error
	ExistByName(scopeID, name string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Role) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(scopeID, roleID string) (rec *dbmodels.Role, err error) {
	err = i.db.Model(dbmodels.Role{}).
		Where("id = ?", roleID).
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

func (i impl) GetList(scopeID string, page, limit int) (list []dbmodels.Role, err error) {
	tx := i.db.Model(dbmodels.Role{})
	i.setPage(tx, page, limit)
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
	err := i.db.Model(dbmodels.Role{}).
		Where("scope_id = ?", scopeID).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) Delete(scopeID, roleID string) error {
	return i.db.
		Where("id = ?", roleID).
		Where("scope_id = ?", scopeID).
		Delete(&dbmodels.Role{}).
		Error
}

func (i impl) ExistByName(scopeID, name string) (bool, error) {
	var rowCount int64
	err := i.db.Model(dbmodels.Role{}).
		Where("scope_id = ?", scopeID).
		Where("name = ?", name).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount > 0, nil
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	if page == 0 || limit == 0 {
		return
	}
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
