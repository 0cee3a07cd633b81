package rolehandler

import (
	"bytes"
	"console-backend/db"
	pdfexport "console-backend/lib/export/pdf"
	xlsexport "console-backend/lib/export/xls"
	accessstore "console-backend/lib/roles/access-store"
	rolestore "console-backend/lib/roles/store"
	subjectstore "console-backend/lib/subjects/store"
	initchecker "console-backend/lib/utils/init-checker"
	"console-backend/models"
	apimodels "console-backend/models/api"
	roleapimodels "console-backend/models/api/role"
	subjectapimodels "console-backend/models/api/subject"
	dbmodels "console-backend/models/db"
	"fmt"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrRoleNotFound    = errors.New("роль не найдена")
	ErrSubjectNotFound = errors.New("субъект не найден")
	ErrRoleExists      = errors.New("роль с таким наименованием уже существует")
	ErrAlreadyAssigned = errors.New("субъект уже назначен на роль")
	ErrNotAssigned     = errors.New("субъект не назначен на роль")
	ErrExportFormat    = errors.New("неподдерживаемый формат выгрузки")
)

type Provider interface {
	Create(scopeID string, request roleapimodels.CreateRole) (string, error)
	GetByID(scopeID, roleID string) (roleapimodels.RoleView, error)
	List(scopeID string, pagination apimodels.Pagination) (list []roleapimodels.RoleView, rowCount int64, err error)
	Delete(scopeID, roleID string) error
	ListSubjects(scopeID, roleID string, pagination apimodels.Pagination) (list []subjectapimodels.SubjectView, rowCount int64, err error)
	AssignSubject(scopeID, roleID, subjectID string) error
	UnassignSubject(scopeID, roleID, subjectID string) error
	ExportSubjects(scopeID, roleID string, format models.ExportFormat) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"db", db.DB,
		"xlsexport", xlsexport.Instance,
		"pdfexport", pdfexport.Instance,
	)
	Instance = impl{
		roleStore:    rolestore.NewInstance(db.DB),
		accessStore:  accessstore.NewInstance(db.DB),
		subjectStore: subjectstore.NewInstance(db.DB),
		xlsExporter:  xlsexport.Instance,
		pdfExporter:  pdfexport.Instance,
		inTx:         gormTx(db.DB),
	}
}

type txFunc func(fn func(roleStore rolestore.Provider, accessStore accessstore.Provider) error) error

func gormTx(DB *gorm.DB) txFunc {
	return func(fn func(roleStore rolestore.Provider, accessStore accessstore.Provider) error) error {
		return DB.Transaction(func(tx *gorm.DB) error {
			return fn(rolestore.NewInstance(tx), accessstore.NewInstance(tx))
		})
	}
}

type impl struct {
	roleStore    rolestore.Provider
	accessStore  accessstore.Provider
	subjectStore subjectstore.Provider
	xlsExporter  xlsexport.Provider
	pdfExporter  pdfexport.Provider
	inTx         txFunc
}

func (i impl) Create(scopeID string, request roleapimodels.CreateRole) (string, error) {
	logger := log.
		WithField("scope_id", scopeID).
		WithField("role_name", request.Name)
	exist, err := i.roleStore.ExistByName(scopeID, request.Name)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки существования роли")
		return "", err
	}
	if exist {
		return "", ErrRoleExists
	}
	rec := dbmodels.Role{
		ScopeID:     scopeID,
		Name:        request.Name,
		Description: request.Description,
		Permissions: pq.StringArray(request.Permissions),
	}
	id, err := i.roleStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания роли")
		return "", err
	}
	logger.WithField("role_id", id).Info("роль создана")
	return id, nil
}

func (i impl) GetByID(scopeID, roleID string) (roleapimodels.RoleView, error) {
	rec, err := i.getRole(scopeID, roleID)
	if err != nil {
		return roleapimodels.RoleView{}, err
	}
	return rec.ToModel(), nil
}

func (i impl) List(scopeID string, pagination apimodels.Pagination) (list []roleapimodels.RoleView, rowCount int64, err error) {
	logger := log.WithField("scope_id", scopeID)
	rowCount, err = i.roleStore.Count(scopeID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения количества ролей")
		return nil, 0, err
	}
	page, limit := pagination.GetPage()
	recList, err := i.roleStore.GetList(scopeID, page, limit)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка ролей")
		return nil, 0, err
	}
	list = make([]roleapimodels.RoleView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func (i impl) Delete(scopeID, roleID string) error {
	if _, err := i.getRole(scopeID, roleID); err != nil {
		return err
	}
	err := i.inTx(func(roleStore rolestore.Provider, accessStore accessstore.Provider) error {
		if err := accessStore.DeleteByRole(roleID); err != nil {
			return errors.Wrap(err, "ошибка удаления назначений роли")
		}
		if err := roleStore.Delete(scopeID, roleID); err != nil {
			return errors.Wrap(err, "ошибка удаления роли")
		}
		return nil
	})
	if err != nil {
		log.
			WithField("scope_id", scopeID).
			WithField("role_id", roleID).
			WithError(err).
			Error("ошибка удаления роли")
		return err
	}
	return nil
}

func (i impl) ListSubjects(scopeID, roleID string, pagination apimodels.Pagination) (list []subjectapimodels.SubjectView, rowCount int64, err error) {
	if _, err = i.getRole(scopeID, roleID); err != nil {
		return nil, 0, err
	}
	logger := log.
		WithField("scope_id", scopeID).
		WithField("role_id", roleID)
	rowCount, err = i.accessStore.CountSubjects(scopeID, roleID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения количества субъектов роли")
		return nil, 0, err
	}
	page, limit := pagination.GetPage()
	recList, err := i.accessStore.ListSubjects(scopeID, roleID, page, limit)
	if err != nil {
		logger.WithError(err).Error("ошибка получения субъектов роли")
		return nil, 0, err
	}
	list = make([]subjectapimodels.SubjectView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func (i impl) AssignSubject(scopeID, roleID, subjectID string) error {
	if _, err := i.getRole(scopeID, roleID); err != nil {
		return err
	}
	logger := log.
		WithField("scope_id", scopeID).
		WithField("role_id", roleID).
		WithField("subject_id", subjectID)
	subject, err := i.subjectStore.GetByID(scopeID, subjectID)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска субъекта")
		return err
	}
	if subject == nil {
		return ErrSubjectNotFound
	}
	exist, err := i.accessStore.Exist(roleID, subjectID)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки назначения роли")
		return err
	}
	if exist {
		return ErrAlreadyAssigned
	}
	_, err = i.accessStore.Assign(dbmodels.AccessRole{
		ScopeID:   scopeID,
		RoleID:    roleID,
		SubjectID: subjectID,
	})
	if err != nil {
		// параллельное назначение между проверкой и вставкой
		if errors.Is(err, accessstore.ErrDuplicate) {
			return ErrAlreadyAssigned
		}
		logger.WithError(err).Error("ошибка назначения роли субъекту")
		return err
	}
	logger.Info("роль назначена субъекту")
	return nil
}

func (i impl) UnassignSubject(scopeID, roleID, subjectID string) error {
	if _, err := i.getRole(scopeID, roleID); err != nil {
		return err
	}
	deleted, err := i.accessStore.Unassign(scopeID, roleID, subjectID)
	if err != nil {
		log.
			WithField("scope_id", scopeID).
			WithField("role_id", roleID).
			WithField("subject_id", subjectID).
			WithError(err).
			Error("ошибка снятия роли с субъекта")
		return err
	}
	if !deleted {
		return ErrNotAssigned
	}
	return nil
}

func (i impl) ExportSubjects(scopeID, roleID string, format models.ExportFormat) (*bytes.Buffer, error) {
	role, err := i.getRole(scopeID, roleID)
	if err != nil {
		return nil, err
	}
	// выгружаем без пагинации
	list, err := i.accessStore.ListSubjects(scopeID, roleID, 0, 0)
	if err != nil {
		log.
			WithField("scope_id", scopeID).
			WithField("role_id", roleID).
			WithError(err).
			Error("ошибка получения субъектов роли для выгрузки")
		return nil, err
	}
	switch format {
	case models.ExportXlsx:
		return i.xlsExporter.ExportRoleSubjects(role.Name, list)
	case models.ExportPdf:
		return i.pdfExporter.ExportRoleSubjects(role.Name, list)
	}
	return nil, errors.Wrap(ErrExportFormat, fmt.Sprintf("формат %q", format))
}

func (i impl) getRole(scopeID, roleID string) (*dbmodels.Role, error) {
	rec, err := i.roleStore.GetByID(scopeID, roleID)
	if err != nil {
		log.
			WithField("scope_id", scopeID).
			WithField("role_id", roleID).
			WithError(err).
			Error("ошибка поиска роли")
		return nil, err
	}
	if rec == nil {
		return nil, ErrRoleNotFound
	}
	return rec, nil
}
